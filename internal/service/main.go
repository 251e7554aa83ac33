package service

import (
	"context"
	"time"

	"gitlab.com/distributed_lab/logan/v3"
	"gitlab.com/distributed_lab/running"

	"github.com/tondeal/offer-flow-svc/internal/config"
	"github.com/tondeal/offer-flow-svc/internal/data"
	"github.com/tondeal/offer-flow-svc/internal/data/postgres"
)

type service struct {
	log     *logan.Entry
	journal data.FlowJournal
	period  time.Duration
}

func (s *service) run() error {
	s.log.Info("Reconciler started")
	running.WithBackOff(context.Background(), s.log, "reconciler", s.worker, s.period, s.period, time.Minute)

	return nil
}

func newService(cfg config.Config) *service {
	return &service{
		log:     cfg.Log(),
		journal: postgres.NewFlowJournal(cfg.DB()),
		period:  cfg.Reconciler().Period,
	}
}

func Run(cfg config.Config) {
	if err := newService(cfg).run(); err != nil {
		panic(err)
	}
}
