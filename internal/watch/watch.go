// Package watch periodically re-acquires the deployments document and
// reports entry-level changes. The parsed model is rebuilt from scratch on
// every check; there is no incremental update.
package watch

import (
	"context"
	"time"

	"github.com/gerunddev/contractbook/internal/config"
	"github.com/gerunddev/contractbook/internal/diff"
	"github.com/gerunddev/contractbook/internal/logger"
	"github.com/gerunddev/contractbook/internal/registry"
	"github.com/gerunddev/contractbook/internal/source"
)

// Monitor watches the deployments document for changes
type Monitor struct {
	cfg     *config.Config
	log     *logger.Logger
	fetcher *source.Fetcher

	// OnChange, if set, is called after every check that found changes
	OnChange func(c diff.Changes, reg *registry.Registry)

	current *registry.Registry
}

// NewMonitor creates a monitor for the configured document
func NewMonitor(cfg *config.Config, log *logger.Logger) *Monitor {
	return &Monitor{
		cfg:     cfg,
		log:     log,
		fetcher: source.NewFetcher(cfg, log),
	}
}

// Current returns the most recently parsed registry, or nil before the first
// successful check
func (m *Monitor) Current() *registry.Registry {
	return m.current
}

// Run performs an initial check and then re-checks on the configured
// interval until the context is cancelled.
func (m *Monitor) Run(ctx context.Context) error {
	m.log.MonitorStarted(m.cfg.DocumentURL, m.cfg.Interval)

	if err := m.Check(ctx); err != nil {
		m.log.Error("initial check failed", "error", err)
	}

	ticker := time.NewTicker(m.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := m.Check(ctx); err != nil {
				m.log.Error("check failed", "error", err)
			}
		case <-ctx.Done():
			m.log.MonitorStopped(ctx.Err().Error())
			return ctx.Err()
		}
	}
}

// Check fetches and parses the document once, replacing the current model
// and reporting what changed since the previous one.
func (m *Monitor) Check(ctx context.Context) error {
	start := time.Now()

	res, err := m.fetcher.Fetch(ctx)
	if err != nil {
		return err
	}

	reg := registry.Parse(res.Text)
	m.log.ParseCompleted(len(reg.Entries), rowCount(reg), len(reg.Networks), len(reg.Categories))

	if m.current == nil {
		m.current = reg
		m.log.CheckCompleted(0, 0, time.Since(start))
		return nil
	}

	changes := diff.Compare(m.current, reg)
	m.current = reg

	m.log.CheckCompleted(len(changes.Added), len(changes.Removed), time.Since(start))
	for _, key := range changes.Added {
		m.log.Info("entry added", "entry", key)
	}
	for _, key := range changes.Removed {
		m.log.Warn("entry removed", "entry", key)
	}
	for _, key := range changes.Changed {
		m.log.Info("entry changed", "entry", key)
	}

	if !changes.Empty() && m.OnChange != nil {
		m.OnChange(changes, reg)
	}

	return nil
}

func rowCount(reg *registry.Registry) int {
	n := 0
	for _, e := range reg.Entries {
		n += len(e.Rows)
	}
	return n
}
