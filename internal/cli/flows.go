package cli

import (
	"context"

	"gitlab.com/distributed_lab/logan/v3"

	"github.com/tondeal/offer-flow-svc/internal/config"
	"github.com/tondeal/offer-flow-svc/internal/data/postgres"
	"github.com/tondeal/offer-flow-svc/internal/flow"
	"github.com/tondeal/offer-flow-svc/internal/marketplace"
	"github.com/tondeal/offer-flow-svc/internal/ton"
)

func newController(cfg config.Config) *flow.Controller {
	return flow.NewController(
		cfg.Log(),
		marketplace.NewClient(cfg.Marketplace()),
		postgres.NewFlowJournal(cfg.DB()),
	)
}

func viewerAddress(cfg config.Config) string {
	if s := cfg.TON().Signer; s != nil {
		return s.Address()
	}
	return ""
}

func show(cfg config.Config, id string) bool {
	log := cfg.Log().WithField("offer_id", id)

	offer, err := newController(cfg).Resolve(context.Background(), id, nil)
	if err != nil {
		log.WithError(err).Error("unable to load offer")
		return false
	}

	d := flow.Project(offer)
	log.WithFields(logan.F{
		"title":      d.Title,
		"budget_ton": d.BudgetTON,
		"status":     d.Status,
		"created_at": d.CreatedAt,
	}).Info("offer")

	return true
}

func message(cfg config.Config, id string) bool {
	log := cfg.Log().WithField("offer_id", id)
	ctx := context.Background()
	c := newController(cfg)

	offer, err := c.Resolve(ctx, id, nil)
	if err != nil {
		log.WithError(err).Error("unable to load offer")
		return false
	}

	return report(log, c.MessageMaker(ctx, offer, id, viewerAddress(cfg)))
}

func take(cfg config.Config, id string, noWallet bool) bool {
	log := cfg.Log().WithField("offer_id", id)
	ctx := context.Background()
	c := newController(cfg)

	offer, err := c.Resolve(ctx, id, nil)
	if err != nil {
		log.WithError(err).Error("unable to load offer")
		return false
	}

	var signer ton.Signer
	if s := cfg.TON().Signer; s != nil && !noWallet {
		signer = s
	}

	return report(log, c.TakeOffer(ctx, offer, id, viewerAddress(cfg), signer))
}

func report(log *logan.Entry, out flow.Outcome) bool {
	for _, n := range out.Notices {
		log.Warn(string(n))
	}
	if out.Failed() {
		if out.Err != nil {
			log.WithError(out.Err).Error("flow failed")
		}
		return false
	}

	log.WithField("chat_id", out.ChatID).Info("navigate to chat")
	return true
}
