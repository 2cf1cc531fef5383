package service

import (
	"fmt"
	"time"

	"home-services-backend/internal/database/models"
	apperrors "home-services-backend/internal/errors"
	"home-services-backend/internal/report"
	"home-services-backend/internal/repository"
)

// FinancialService builds the four admin report shapes and their CSV exports
// over the work order records. The clock is injected so report ranges are
// deterministic under test.
type FinancialService struct {
	workOrderRepo repository.WorkOrderRepositoryInterface
	now           func() time.Time
}

// NewFinancialService creates a new financial service
func NewFinancialService(workOrderRepo repository.WorkOrderRepositoryInterface, now func() time.Time) *FinancialService {
	if now == nil {
		now = time.Now
	}
	return &FinancialService{
		workOrderRepo: workOrderRepo,
		now:           now,
	}
}

// ReportRequest selects a report shape and date range
type ReportRequest struct {
	Type      report.Type  `json:"type"`
	Range     report.Range `json:"range"`
	StartDate string       `json:"start_date,omitempty"`
	EndDate   string       `json:"end_date,omitempty"`
}

// CSVExport is a rendered CSV download
type CSVExport struct {
	FileName string `json:"file_name"`
	Content  string `json:"content"`
}

// BuildReport renders the requested report over the stored work orders
func (s *FinancialService) BuildReport(req *ReportRequest) (*report.Report, error) {
	if !report.ValidType(req.Type) {
		return nil, apperrors.ErrInvalidReportType
	}
	if !report.ValidRange(req.Range) {
		return nil, apperrors.ErrInvalidDateRange
	}

	spec, err := s.rangeSpec(req)
	if err != nil {
		return nil, err
	}

	records, err := s.records(spec)
	if err != nil {
		return nil, err
	}

	return report.Build(records, req.Type, spec, s.now())
}

// ExportCSV renders the requested report as a CSV download
func (s *FinancialService) ExportCSV(req *ReportRequest) (*CSVExport, error) {
	r, err := s.BuildReport(req)
	if err != nil {
		return nil, err
	}

	return &CSVExport{
		FileName: report.FileName(req.Type, req.Range, s.now()),
		Content:  report.ToCSV(r),
	}, nil
}

// rangeSpec parses the optional custom bounds into a RangeSpec
func (s *FinancialService) rangeSpec(req *ReportRequest) (report.RangeSpec, error) {
	spec := report.RangeSpec{Range: req.Range}
	if req.Range != report.RangeCustom {
		return spec, nil
	}

	if req.StartDate != "" {
		start, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return spec, apperrors.NewValidationError("start_date", err.Error())
		}
		spec.Start = &start
	}
	if req.EndDate != "" {
		end, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return spec, apperrors.NewValidationError("end_date", err.Error())
		}
		spec.End = &end
	}
	return spec, nil
}

// records fetches the work orders a report will aggregate. Bounded ranges
// load only the rows in range; a custom range with missing bounds falls
// back to the full record set, mirroring the permissive filter semantics.
func (s *FinancialService) records(spec report.RangeSpec) ([]models.WorkOrder, error) {
	if start, end, ok := spec.Bounds(s.now()); ok {
		records, err := s.workOrderRepo.GetByDateRange(start, end)
		if err != nil {
			return nil, fmt.Errorf("failed to load work orders: %w", err)
		}
		return records, nil
	}

	records, _, err := s.workOrderRepo.GetAll(-1, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load work orders: %w", err)
	}
	return records, nil
}
