package service

import (
	"context"

	"gitlab.com/distributed_lab/logan/v3"
	"gitlab.com/distributed_lab/logan/v3/errors"
)

// worker reports take flows whose stake transaction did not land, so the
// escrow can be reconciled out-of-band. It never resends anything itself.
func (s *service) worker(ctx context.Context) error {
	records, err := s.journal.Unreported()
	if err != nil {
		return errors.Wrap(err, "failed to get unreported flow records")
	}

	for _, rec := range records {
		if err = ctx.Err(); err != nil {
			return errors.Wrap(err, "context was cancelled")
		}

		s.log.WithFields(logan.F{
			"order_id": rec.OrderID,
			"offer_id": rec.OfferID,
			"taker":    rec.TakerAddress,
		}).Warn("taker stake was not sent, escrow needs reconciliation")

		if err = s.journal.MarkReported(rec.ID); err != nil {
			return errors.Wrap(err, "failed to mark flow record reported")
		}
	}

	return nil
}
