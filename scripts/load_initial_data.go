package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"home-services-backend/internal/config"
	"home-services-backend/internal/database"
	"home-services-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type TechnicianData struct {
	FirstName      string  `yaml:"first_name"`
	LastName       string  `yaml:"last_name"`
	Email          string  `yaml:"email"`
	Phone          string  `yaml:"phone,omitempty"`
	Role           string  `yaml:"role"`
	PayRate        float64 `yaml:"pay_rate"`
	HireDate       string  `yaml:"hire_date,omitempty"`
	Status         string  `yaml:"status,omitempty"`
	Certifications string  `yaml:"certifications,omitempty"`
}

type ServiceData struct {
	Category      string  `yaml:"category"`
	JobName       string  `yaml:"job_name"`
	JobDesc       string  `yaml:"job_desc,omitempty"`
	Price         float64 `yaml:"service_price"`
	DurationHours float64 `yaml:"duration_hours"`
}

type WorkOrderData struct {
	Code            string  `yaml:"work_order_id"`
	Date            string  `yaml:"date"`
	CustomerName    string  `yaml:"customer"`
	Service         string  `yaml:"service"`
	Revenue         float64 `yaml:"revenue"`
	LaborCost       float64 `yaml:"labor_cost"`
	MaterialCost    float64 `yaml:"material_cost"`
	Status          string  `yaml:"status,omitempty"`
	DurationHrs     float64 `yaml:"duration_hours,omitempty"`
	TechnicianEmail string  `yaml:"technician_email,omitempty"`
}

type WarrantyData struct {
	CustomerName  string `yaml:"customer_name"`
	CustomerEmail string `yaml:"customer_email"`
	CustomerPhone string `yaml:"customer_phone,omitempty"`
	Service       string `yaml:"service"`
	WorkOrderCode string `yaml:"work_order_id"`
	StartDate     string `yaml:"start_date"`
	EndDate       string `yaml:"end_date"`
	Status        string `yaml:"status,omitempty"`
	Notes         string `yaml:"notes,omitempty"`
}

// File structures
type TechniciansFile struct {
	Technicians []TechnicianData `yaml:"technicians"`
}

type ServicesFile struct {
	Services []ServiceData `yaml:"services"`
}

type WorkOrdersFile struct {
	WorkOrders []WorkOrderData `yaml:"work_orders"`
}

type WarrantiesFile struct {
	Warranties []WarrantyData `yaml:"warranties"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent, // suppress SQL and "record not found" noise during loading
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	technicians, err := loadTechnicians(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load technicians: %w", err)
	}

	services, err := loadServices(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load services: %w", err)
	}

	workOrders, err := loadWorkOrders(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load work orders: %w", err)
	}

	warranties, err := loadWarranties(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load warranties: %w", err)
	}

	// Create technicians first; work orders reference them by email
	techMap := make(map[string]*models.Technician)
	techCreated := 0
	for _, data := range technicians {
		tech, created, err := createTechnician(db, data)
		if err != nil {
			return fmt.Errorf("failed to create technician %s: %w", data.Email, err)
		}
		techMap[data.Email] = tech
		if created {
			techCreated++
		}
	}
	log.Printf("Technicians: %d created, %d total", techCreated, len(technicians))

	serviceCreated := 0
	for _, data := range services {
		created, err := createService(db, data)
		if err != nil {
			return fmt.Errorf("failed to create service %s: %w", data.JobName, err)
		}
		if created {
			serviceCreated++
		}
	}
	log.Printf("Services: %d created, %d total", serviceCreated, len(services))

	orderCreated := 0
	for _, data := range workOrders {
		created, err := createWorkOrder(db, data, techMap)
		if err != nil {
			log.Printf("Warning: failed to create work order %s: %v", data.Code, err)
			continue
		}
		if created {
			orderCreated++
		}
	}
	log.Printf("Work orders: %d created, %d total", orderCreated, len(workOrders))

	warrantyCreated := 0
	for _, data := range warranties {
		created, err := createWarranty(db, data)
		if err != nil {
			log.Printf("Warning: failed to create warranty %s: %v", data.WorkOrderCode, err)
			continue
		}
		if created {
			warrantyCreated++
		}
	}
	log.Printf("Warranties: %d created, %d total", warrantyCreated, len(warranties))

	return nil
}

func loadTechnicians(dataDir string) ([]TechnicianData, error) {
	var all []TechnicianData

	err := walkYAML(dataDir, "technicians", func(data []byte) error {
		var file TechniciansFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		all = append(all, file.Technicians...)
		return nil
	})

	return all, err
}

func loadServices(dataDir string) ([]ServiceData, error) {
	var all []ServiceData

	err := walkYAML(dataDir, "services", func(data []byte) error {
		var file ServicesFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		all = append(all, file.Services...)
		return nil
	})

	return all, err
}

func loadWorkOrders(dataDir string) ([]WorkOrderData, error) {
	var all []WorkOrderData

	err := walkYAML(dataDir, "work_orders", func(data []byte) error {
		var file WorkOrdersFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		all = append(all, file.WorkOrders...)
		return nil
	})

	return all, err
}

func loadWarranties(dataDir string) ([]WarrantyData, error) {
	var all []WarrantyData

	err := walkYAML(dataDir, "warranties", func(data []byte) error {
		var file WarrantiesFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		all = append(all, file.Warranties...)
		return nil
	})

	return all, err
}

func walkYAML(dataDir, keyword string, handle func([]byte) error) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, keyword) {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			return handle(data)
		}
		return nil
	})
}

func createTechnician(db *gorm.DB, data TechnicianData) (*models.Technician, bool, error) {
	var tech models.Technician
	if err := db.Where("email = ?", data.Email).First(&tech).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			status := models.TechnicianStatusActive
			if data.Status != "" {
				status = models.TechnicianStatus(data.Status)
			}

			var hireDate time.Time
			if data.HireDate != "" {
				hireDate, _ = time.Parse("2006-01-02", data.HireDate)
			}

			tech = models.Technician{
				FirstName:      data.FirstName,
				LastName:       data.LastName,
				Email:          data.Email,
				Phone:          data.Phone,
				Role:           data.Role,
				PayRate:        data.PayRate,
				HireDate:       hireDate,
				Status:         status,
				Certifications: data.Certifications,
			}

			if err := db.Create(&tech).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create technician: %w", err)
			}
			return &tech, true, nil
		}
		return nil, false, fmt.Errorf("failed to query technician: %w", err)
	}

	return &tech, false, nil
}

func createService(db *gorm.DB, data ServiceData) (bool, error) {
	var serviceType models.ServiceType
	if err := db.Where("name = ?", data.Category).First(&serviceType).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return false, fmt.Errorf("failed to query service type: %w", err)
		}
		serviceType = models.ServiceType{Name: data.Category}
		if err := db.Create(&serviceType).Error; err != nil {
			return false, fmt.Errorf("failed to create service type: %w", err)
		}
	}

	var svc models.Service
	if err := db.Where("job_name = ? AND service_type_id = ?", data.JobName, serviceType.ID).First(&svc).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			svc = models.Service{
				ServiceTypeID: serviceType.ID,
				JobName:       data.JobName,
				JobDesc:       data.JobDesc,
				Price:         data.Price,
				DurationHours: data.DurationHours,
			}
			if err := db.Create(&svc).Error; err != nil {
				return false, fmt.Errorf("failed to create service: %w", err)
			}
			return true, nil
		}
		return false, fmt.Errorf("failed to query service: %w", err)
	}

	return false, nil
}

func createWorkOrder(db *gorm.DB, data WorkOrderData, techMap map[string]*models.Technician) (bool, error) {
	var order models.WorkOrder
	if err := db.Where("code = ?", data.Code).First(&order).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			date, perr := time.Parse("2006-01-02", data.Date)
			if perr != nil {
				return false, fmt.Errorf("bad date %q: %w", data.Date, perr)
			}

			status := models.WorkOrderStatusPending
			if data.Status != "" {
				status = models.WorkOrderStatus(data.Status)
			}

			order = models.WorkOrder{
				Code:         data.Code,
				Date:         date,
				CustomerName: data.CustomerName,
				Service:      data.Service,
				Revenue:      data.Revenue,
				LaborCost:    data.LaborCost,
				MaterialCost: data.MaterialCost,
				Status:       status,
				DurationHrs:  data.DurationHrs,
			}
			if data.TechnicianEmail != "" {
				if tech := techMap[data.TechnicianEmail]; tech != nil {
					order.TechnicianID = &tech.ID
				} else {
					log.Printf("Warning: technician %s not found for work order %s", data.TechnicianEmail, data.Code)
				}
			}

			if err := db.Create(&order).Error; err != nil {
				return false, fmt.Errorf("failed to create work order: %w", err)
			}
			return true, nil
		}
		return false, fmt.Errorf("failed to query work order: %w", err)
	}

	return false, nil
}

func createWarranty(db *gorm.DB, data WarrantyData) (bool, error) {
	var warranty models.Warranty
	if err := db.Where("work_order_code = ?", data.WorkOrderCode).First(&warranty).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			startDate, perr := time.Parse("2006-01-02", data.StartDate)
			if perr != nil {
				return false, fmt.Errorf("bad start_date %q: %w", data.StartDate, perr)
			}
			endDate, perr := time.Parse("2006-01-02", data.EndDate)
			if perr != nil {
				return false, fmt.Errorf("bad end_date %q: %w", data.EndDate, perr)
			}

			status := models.WarrantyStatusActive
			if data.Status != "" {
				status = models.WarrantyStatus(data.Status)
			}

			warranty = models.Warranty{
				CustomerName:  data.CustomerName,
				CustomerEmail: data.CustomerEmail,
				CustomerPhone: data.CustomerPhone,
				Service:       data.Service,
				WorkOrderCode: data.WorkOrderCode,
				StartDate:     startDate,
				EndDate:       endDate,
				Status:        status,
				Notes:         data.Notes,
			}

			if err := db.Create(&warranty).Error; err != nil {
				return false, fmt.Errorf("failed to create warranty: %w", err)
			}
			return true, nil
		}
		return false, fmt.Errorf("failed to query warranty: %w", err)
	}

	return false, nil
}
