package metrics

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const collectInterval = 60 * time.Second

// BusinessMetricsCollector refreshes the board and card gauges periodically
type BusinessMetricsCollector struct {
	db       *gorm.DB
	metrics  *Metrics
	logger   *zap.Logger
	interval time.Duration
	done     chan struct{}
	stopOnce sync.Once
}

// NewBusinessMetricsCollector creates a new collector
func NewBusinessMetricsCollector(db *gorm.DB, metrics *Metrics, logger *zap.Logger) *BusinessMetricsCollector {
	return &BusinessMetricsCollector{
		db:       db,
		metrics:  metrics,
		logger:   logger,
		interval: collectInterval,
		done:     make(chan struct{}),
	}
}

// Start collects once immediately and then on every tick until Stop
func (c *BusinessMetricsCollector) Start() {
	go func() {
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		c.collect()
		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.done:
				return
			}
		}
	}()
}

// Stop stops the collector. It is safe to call more than once.
func (c *BusinessMetricsCollector) Stop() {
	c.stopOnce.Do(func() { close(c.done) })
}

func (c *BusinessMetricsCollector) collect() {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Panic in business metrics collection",
				zap.Any("panic", r),
			)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	gauges := []struct {
		table string
		set   func(int64)
	}{
		{"boards", c.metrics.SetBoardsTotal},
		{"cards", c.metrics.SetCardsTotal},
	}

	for _, g := range gauges {
		var count int64
		if err := c.db.WithContext(ctx).Table(g.table).Count(&count).Error; err != nil {
			c.logger.Error("Failed to count rows", zap.String("table", g.table), zap.Error(err))
			continue
		}
		g.set(count)
	}
}
