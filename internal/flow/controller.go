package flow

import (
	"context"

	"gitlab.com/distributed_lab/logan/v3"
	"gitlab.com/distributed_lab/logan/v3/errors"

	"github.com/tondeal/offer-flow-svc/internal/data"
	"github.com/tondeal/offer-flow-svc/internal/marketplace"
	"github.com/tondeal/offer-flow-svc/internal/ton"
)

// Controller drives the offer page flows against the marketplace API and an
// optional wallet signer.
type Controller struct {
	log     *logan.Entry
	api     marketplace.Client
	journal data.FlowJournal
}

// NewController creates a controller. journal may be nil, flow outcomes are
// then not recorded.
func NewController(log *logan.Entry, api marketplace.Client, journal data.FlowJournal) *Controller {
	return &Controller{
		log:     log,
		api:     api,
		journal: journal,
	}
}

// Resolve returns the offer driving the page: the navigation seed when one is
// present (no network call is made), otherwise the record fetched from the
// marketplace. A canceled ctx discards a fetched result instead of surfacing it.
func (c *Controller) Resolve(ctx context.Context, id string, seed *marketplace.Offer) (*marketplace.Offer, error) {
	if seed != nil {
		return seed, nil
	}

	o, err := c.api.Offer(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load offer", logan.F{"offer_id": id})
	}
	if err = ctx.Err(); err != nil {
		// the caller is gone, drop the result
		return nil, err
	}

	return o, nil
}

// MessageMaker opens a chat around the offer: the viewer's self chat when they
// are the maker, otherwise a fresh order keyed to the offer.
func (c *Controller) MessageMaker(ctx context.Context, offer *marketplace.Offer, offerID, viewer string) Outcome {
	out := c.messageMaker(ctx, offer, viewer, offerID)
	c.record(data.FlowMessage, offerID, viewer, out)
	return out
}

func (c *Controller) messageMaker(ctx context.Context, offer *marketplace.Offer, viewer, offerID string) Outcome {
	maker := ""
	if offer != nil {
		maker = offer.MakerAddress
	}

	if viewer != "" && maker != "" && viewer == maker {
		chatID, err := c.api.CreateSelfChat(ctx, viewer)
		if err != nil {
			return Outcome{
				State:   StateFailed,
				Notices: []Notice{NoticeChatFailed},
				Err:     errors.Wrap(err, "failed to open self chat"),
			}
		}
		return Outcome{State: StateNavigated, ChatID: chatID}
	}

	created, err := c.api.CreateOrder(ctx, orderRequest(offer, offerID))
	if err != nil {
		return Outcome{
			State:   StateFailed,
			Notices: []Notice{NoticeChatFailed},
			Err:     errors.Wrap(err, "failed to create order"),
		}
	}

	return Outcome{State: StateNavigated, ChatID: created.ID}
}

// TakeOffer runs the take flow state machine, see take.go.
func (c *Controller) TakeOffer(ctx context.Context, offer *marketplace.Offer, offerID, viewer string, signer ton.Signer) Outcome {
	t := &takeFlow{
		c:       c,
		ctx:     ctx,
		offer:   offer,
		offerID: offerID,
		viewer:  viewer,
		signer:  signer,
	}
	out := t.run()
	c.record(data.FlowTake, offerID, viewer, out)
	return out
}

// orderRequest applies the same defaulting as the display projection to the
// order-creation payload.
func orderRequest(o *marketplace.Offer, offerID string) marketplace.OrderRequest {
	req := marketplace.OrderRequest{Title: "Order", OfferID: offerID}
	if o == nil {
		return req
	}

	if o.Title != "" {
		req.Title = o.Title
	}
	req.MakerAddress = o.MakerAddress
	if budget, err := o.BudgetTON.Float64(); err == nil {
		req.PriceTON = budget
	}
	if id := o.ID.String(); id != "" {
		req.OfferID = id
	}

	return req
}

func (c *Controller) record(kind data.FlowKind, offerID, viewer string, out Outcome) {
	if c.journal == nil {
		return
	}

	warning := ""
	for _, n := range out.Notices {
		if warning != "" {
			warning += "; "
		}
		warning += string(n)
	}

	rec := data.FlowRecord{
		OfferID:      offerID,
		OrderID:      out.ChatID,
		Kind:         kind,
		State:        out.State.String(),
		TakerAddress: viewer,
		StakeFailed:  out.HasNotice(NoticeStakeFailed),
		Warning:      warning,
	}
	if err := c.journal.Insert(rec); err != nil {
		c.log.WithError(err).Warn("failed to journal flow outcome")
	}
}
