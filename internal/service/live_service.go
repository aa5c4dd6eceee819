package service

import (
	"context"
	"log"
	"time"

	"go-sales-dashboard/internal/events"
)

// LivePusher periodically publishes today's stock counters so open
// dashboards refresh without polling.
type LivePusher struct {
	dashboard DashboardService
	publisher events.Publisher
	interval  time.Duration
}

func NewLivePusher(dashboard DashboardService, publisher events.Publisher, interval time.Duration) *LivePusher {
	return &LivePusher{dashboard: dashboard, publisher: publisher, interval: interval}
}

// PushOnce reads the counters and publishes them
func (p *LivePusher) PushOnce() error {
	stock, err := p.dashboard.GetStockToday()
	if err != nil {
		return err
	}
	p.publisher.Publish(events.EventStockToday, stock.Tanggal, stock)
	return nil
}

// Run pushes every interval until ctx is cancelled. A non-positive interval
// disables pushing.
func (p *LivePusher) Run(ctx context.Context) {
	if p.interval <= 0 {
		return
	}
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := p.PushOnce(); err != nil {
				log.Printf("live: push stock counters: %v", err)
			}
		}
	}
}
