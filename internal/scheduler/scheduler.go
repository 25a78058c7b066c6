package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ClementNdome/agri-insight/internal/models"
	"github.com/ClementNdome/agri-insight/internal/service"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CheckOutcome reports the result of one scheduled (area, index) check.
type CheckOutcome struct {
	ConfigID       uuid.UUID
	AreaID         uuid.UUID
	IndexCode      string
	RecordsCreated int
	AlertsRaised   int
	Err            error
}

// Scheduler periodically finds due monitoring configurations and runs the
// pipeline for each through a bounded worker pool. A failing pair never
// stops the sweep: its error is recorded and the remaining pairs proceed.
type Scheduler struct {
	monitoring service.MonitoringService
	provider   service.AcquisitionProvider
	interval   time.Duration
	workers    int
	log        *logrus.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func New(monitoring service.MonitoringService, provider service.AcquisitionProvider, interval time.Duration, workers int, log *logrus.Logger) *Scheduler {
	if workers < 1 {
		workers = 1
	}
	return &Scheduler{
		monitoring: monitoring,
		provider:   provider,
		interval:   interval,
		workers:    workers,
		log:        log,
		inFlight:   make(map[string]struct{}),
	}
}

// Start launches the scheduling loop. The first sweep runs immediately,
// then once per interval until the context is canceled.
func (s *Scheduler) Start(ctx context.Context) {
	s.log.WithFields(logrus.Fields{
		"interval": s.interval,
		"workers":  s.workers,
	}).Info("Starting monitoring scheduler...")

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.sweep(ctx)
		for {
			select {
			case <-ctx.Done():
				s.log.Info("Stopping monitoring scheduler.")
				return
			case <-ticker.C:
				s.sweep(ctx)
			}
		}
	}()
}

func (s *Scheduler) sweep(ctx context.Context) {
	outcomes := s.RunDueChecks(ctx, time.Now().UTC())

	var created, alerts, failed int
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
			continue
		}
		created += o.RecordsCreated
		alerts += o.AlertsRaised
	}
	s.log.WithFields(logrus.Fields{
		"pairs":   len(outcomes),
		"created": created,
		"alerts":  alerts,
		"failed":  failed,
	}).Info("Scheduler sweep finished")
}

// RunDueChecks processes every configuration due at now and returns one
// outcome per pair attempted. Pairs already being processed by an earlier
// sweep are skipped so no (area, index) pair ever runs concurrently with
// itself.
func (s *Scheduler) RunDueChecks(ctx context.Context, now time.Time) []CheckOutcome {
	due, err := s.monitoring.ListDueConfigurations(ctx, now)
	if err != nil {
		s.log.WithError(err).Error("Failed to list due configurations")
		return nil
	}
	if len(due) == 0 {
		return nil
	}

	// A quota response from the provider leaves a throttle window behind;
	// waiting it out up front avoids burning every pair in the sweep on
	// the same quota error.
	if delay := s.provider.ThrottleDelay(); delay > 0 {
		s.log.WithField("delay", delay).Warn("Provider throttled, delaying sweep")
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(delay):
		}
	}

	jobs := make(chan *models.MonitoringConfiguration)
	results := make(chan CheckOutcome, len(due))

	var wg sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for cfg := range jobs {
				results <- s.runOne(ctx, cfg, now)
			}
		}()
	}

dispatch:
	for _, cfg := range due {
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- cfg:
		}
	}
	close(jobs)
	wg.Wait()
	close(results)

	outcomes := make([]CheckOutcome, 0, len(due))
	for o := range results {
		outcomes = append(outcomes, o)
	}
	return outcomes
}

func (s *Scheduler) runOne(ctx context.Context, cfg *models.MonitoringConfiguration, now time.Time) CheckOutcome {
	outcome := CheckOutcome{
		ConfigID:  cfg.ID,
		AreaID:    cfg.AreaID,
		IndexCode: cfg.IndexCode,
	}

	key := pairKey(cfg.AreaID, cfg.IndexCode)
	if !s.acquire(key) {
		outcome.Err = fmt.Errorf("pair %s is already being processed", key)
		return outcome
	}
	defer s.release(key)

	if err := ctx.Err(); err != nil {
		outcome.Err = err
		return outcome
	}

	created, alerts, err := s.monitoring.ProcessPair(ctx, cfg, now)
	if err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"area_id": cfg.AreaID,
			"index":   cfg.IndexCode,
		}).Error("Scheduled check failed")
		outcome.Err = err
		return outcome
	}

	outcome.RecordsCreated = created
	outcome.AlertsRaised = alerts
	return outcome
}

func (s *Scheduler) acquire(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[key]; busy {
		return false
	}
	s.inFlight[key] = struct{}{}
	return true
}

func (s *Scheduler) release(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, key)
}

func pairKey(areaID uuid.UUID, indexCode string) string {
	return fmt.Sprintf("%s:%s", areaID, indexCode)
}
