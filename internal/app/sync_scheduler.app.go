package app

import (
	"coinwatch/internal/logger"
	"coinwatch/internal/service"
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// SyncScheduler drives the background price sync on a fixed interval.
// The composition root owns it: construct, Start, and Stop on shutdown.
// A failed run is logged and swallowed so the schedule keeps going.
type SyncScheduler struct {
	CryptoService service.CryptoService
	Interval      time.Duration
	Log           *zap.SugaredLogger

	c *cron.Cron
}

func NewSyncScheduler(cryptoService service.CryptoService, interval time.Duration) *SyncScheduler {
	return &SyncScheduler{
		CryptoService: cryptoService,
		Interval:      interval,
		Log:           logger.New(),
	}
}

func (s *SyncScheduler) Start() error {
	if s.c != nil {
		return fmt.Errorf("sync scheduler already started")
	}

	s.c = cron.New()
	_, err := s.c.AddFunc(fmt.Sprintf("@every %s", s.Interval), s.runOnce)
	if err != nil {
		return fmt.Errorf("failed to schedule sync: %w", err)
	}

	s.c.Start()
	s.Log.Infof("price sync scheduled every %s", s.Interval)
	return nil
}

// Stop halts the schedule and waits for an in-flight run to finish.
func (s *SyncScheduler) Stop() {
	if s.c == nil {
		return
	}
	<-s.c.Stop().Done()
	s.c = nil
}

func (s *SyncScheduler) runOnce() {
	ctx := context.WithValue(context.Background(), logger.ContextKey, s.Log)

	result, err := s.CryptoService.Sync(ctx)
	if err != nil {
		s.Log.Warnf("scheduled sync failed: %v", err)
		return
	}

	s.Log.Infof("scheduled sync finished: %s", result.Message)
}
