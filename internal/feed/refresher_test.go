package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	apperrors "home-services-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientFetchSnapshot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/snapshot", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"work_orders": [
				{"work_order_id": "WO-2025-001", "customer": "John Smith", "service": "HVAC Repair", "revenue": 450}
			],
			"availability": [
				{"technician_name": "Mike Rodriguez", "start_minute": 480, "end_minute": 720, "status": "available"}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	snap, err := client.FetchSnapshot(context.Background())

	require.NoError(t, err)
	require.Len(t, snap.WorkOrders, 1)
	assert.Equal(t, "WO-2025-001", snap.WorkOrders[0].Code)
	assert.Equal(t, 450.0, snap.WorkOrders[0].Revenue)
	require.Len(t, snap.Availability, 1)
	assert.Equal(t, 480, snap.Availability[0].StartMinute)
	assert.False(t, snap.FetchedAt.IsZero())
}

func TestClientFetchSnapshotServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.FetchSnapshot(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status=502")
}

func TestRefresherDiscardsSupersededResponse(t *testing.T) {
	var calls int32
	firstStarted := make(chan struct{})
	release := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		if n == 1 {
			close(firstStarted)
			// hold the first response until the second refresh has finished
			select {
			case <-release:
			case <-r.Context().Done():
			}
			w.Write([]byte(`{"work_orders": [{"work_order_id": "WO-OLD"}], "availability": []}`))
			return
		}
		w.Write([]byte(`{"work_orders": [{"work_order_id": "WO-NEW"}], "availability": []}`))
	}))
	defer server.Close()

	refresher := NewRefresher(NewClient(server.URL, 5*time.Second))

	firstErr := make(chan error, 1)
	go func() {
		_, err := refresher.Refresh(context.Background())
		firstErr <- err
	}()

	<-firstStarted

	// second refresh supersedes the first while it is still in flight
	snap, err := refresher.Refresh(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.WorkOrders, 1)
	assert.Equal(t, "WO-NEW", snap.WorkOrders[0].Code)

	close(release)
	err = <-firstErr
	assert.ErrorIs(t, err, apperrors.ErrStaleResponse)

	// the published snapshot belongs to the last requested refresh
	latest, updatedAt := refresher.Latest()
	require.NotNil(t, latest)
	assert.Equal(t, "WO-NEW", latest.WorkOrders[0].Code)
	assert.False(t, updatedAt.IsZero())
}

func TestRefresherPublishesOnSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"work_orders": [], "availability": []}`))
	}))
	defer server.Close()

	refresher := NewRefresher(NewClient(server.URL, 5*time.Second))

	latest, _ := refresher.Latest()
	assert.Nil(t, latest)

	snap, err := refresher.Refresh(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, snap)

	latest, _ = refresher.Latest()
	assert.Equal(t, snap, latest)
}
