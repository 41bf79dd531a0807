package jobs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"quickorder/internal/models"
)

type fakeLister struct {
	services []models.Service
	err      error
}

func (f fakeLister) ListActiveServices(context.Context, string) ([]models.Service, error) {
	return f.services, f.err
}

type countingWarmer struct {
	mu    sync.Mutex
	calls int
}

func (w *countingWarmer) Warm(services []models.Service) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.calls++
	return len(services)
}

func (w *countingWarmer) Calls() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.calls
}

func TestWarmAll(t *testing.T) {
	services := []models.Service{{Platform: "instagram", ServiceType: "followers"}, {Platform: "tiktok", ServiceType: "views"}}

	tests := []struct {
		name      string
		lister    fakeLister
		wantCount int
		wantCalls int
	}{
		{"warms every service", fakeLister{services: services}, 2, 1},
		{"empty catalog", fakeLister{}, 0, 0},
		{"list error", fakeLister{err: errors.New("db down")}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warmer := &countingWarmer{}
			w := NewCatalogWarmer(tt.lister, warmer, time.Minute)
			assert.Equal(t, tt.wantCount, w.warmAll(context.Background()))
			assert.Equal(t, tt.wantCalls, warmer.Calls())
		})
	}
}

func TestStartStopsOnCancel(t *testing.T) {
	warmer := &countingWarmer{}
	w := NewCatalogWarmer(fakeLister{services: []models.Service{{}}}, warmer, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return warmer.Calls() >= 2 }, 2*time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("warmer did not stop after cancel")
	}
}
