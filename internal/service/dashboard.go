package service

import (
	"context"
	"sync"
	"time"

	"github.com/ceylontrip/ceylontrip/internal/domain"
	"github.com/ceylontrip/ceylontrip/internal/logger"
)

type DashboardService interface {
	Stats() DashboardStats
	Refresh() error
}

// DashboardStorage exposes the aggregate queries behind the admin
// dashboard. Read-only.
type DashboardStorage interface {
	CountUsers() (int64, error)
	CountDestinations() (int64, error)
	CountAttractions() (int64, error)
	CountHotels() (int64, error)
	CountEvents() (int64, error)
	CountContacts() (int64, error)
	CountActiveSubscriptions() (int64, error)
	RecentUsers(n int) ([]domain.User, error)
	RecentContacts(n int) ([]domain.Contact, error)
	MonthlySignups(since time.Time) ([]domain.MonthlySignupCount, error)
}

type DashboardStats struct {
	TotalUsers                 int64
	TotalDestinations          int64
	TotalAttractions           int64
	TotalHotels                int64
	TotalEvents                int64
	TotalContacts              int64
	TotalNewsletterSubscribers int64
	RecentUsers                []domain.User
	RecentContacts             []domain.Contact
	MonthlySignups             []domain.MonthlySignupCount
	RefreshedAt                time.Time
}

// Dashboard serves admin statistics from an in-process cache that a
// background goroutine refreshes, so the seven count queries don't run
// on every dashboard view. The cache may lag by one refresh interval;
// that is acceptable for trend data.
type Dashboard struct {
	storage DashboardStorage
	mu      sync.RWMutex
	stats   DashboardStats
}

func NewDashboard(storage DashboardStorage) *Dashboard {
	return &Dashboard{storage: storage}
}

func (d *Dashboard) Stats() DashboardStats {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.stats
}

// Refresh recomputes all statistics and atomically replaces the cache.
func (d *Dashboard) Refresh() error {
	var stats DashboardStats
	var err error

	counts := []struct {
		dst  *int64
		load func() (int64, error)
	}{
		{&stats.TotalUsers, d.storage.CountUsers},
		{&stats.TotalDestinations, d.storage.CountDestinations},
		{&stats.TotalAttractions, d.storage.CountAttractions},
		{&stats.TotalHotels, d.storage.CountHotels},
		{&stats.TotalEvents, d.storage.CountEvents},
		{&stats.TotalContacts, d.storage.CountContacts},
		{&stats.TotalNewsletterSubscribers, d.storage.CountActiveSubscriptions},
	}
	for _, c := range counts {
		if *c.dst, err = c.load(); err != nil {
			return err
		}
	}

	if stats.RecentUsers, err = d.storage.RecentUsers(5); err != nil {
		return err
	}
	if stats.RecentContacts, err = d.storage.RecentContacts(5); err != nil {
		return err
	}
	sixMonthsAgo := time.Now().UTC().AddDate(0, -6, 0)
	if stats.MonthlySignups, err = d.storage.MonthlySignups(sixMonthsAgo); err != nil {
		return err
	}
	stats.RefreshedAt = time.Now().UTC()

	d.mu.Lock()
	d.stats = stats
	d.mu.Unlock()

	logger.Log.Info("dashboard stats refreshed",
		"component", "dashboard_cache",
		"total_users", stats.TotalUsers)
	return nil
}

// StartBackgroundRefresh periodically recomputes the statistics until
// ctx is cancelled.
func (d *Dashboard) StartBackgroundRefresh(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	logger.Log.Info("started dashboard cache background refresh",
		"component", "dashboard_cache",
		"interval", interval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := d.Refresh(); err != nil {
					logger.Log.Error("dashboard cache refresh failed",
						"component", "dashboard_cache",
						"error", err)
				}
			case <-ctx.Done():
				logger.Log.Info("dashboard cache shutting down gracefully",
					"component", "dashboard_cache")
				return
			}
		}
	}()
}
