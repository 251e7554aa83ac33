package flow

import (
	"context"
	"time"

	"gitlab.com/distributed_lab/logan/v3/errors"

	"github.com/tondeal/offer-flow-svc/internal/marketplace"
	"github.com/tondeal/offer-flow-svc/internal/ton"
)

// stakeValidity is the window the wallet gets to sign the stake transaction.
const stakeValidity = 300 * time.Second

// takeFlow is one run of the take-offer state machine:
// Validating -> OrderCreating -> StakePending -> OrderPatching -> Navigated,
// failing into StateFailed from any step that returns an error. The stake
// step never fails the flow: settlement is reconciled out-of-band, so the
// order is marked taken even when the stake did not land.
type takeFlow struct {
	c       *Controller
	ctx     context.Context
	offer   *marketplace.Offer
	offerID string
	viewer  string
	signer  ton.Signer

	created *marketplace.CreatedOrder
	notices []Notice
}

func (t *takeFlow) run() Outcome {
	state := StateValidating
	for {
		var next State
		var err error

		switch state {
		case StateValidating:
			next, err = t.validate()
		case StateOrderCreating:
			next, err = t.createOrder()
		case StateStakePending:
			next, err = t.sendStake()
		case StateOrderPatching:
			next, err = t.patchOrder()
		case StateNavigated:
			return t.outcome(StateNavigated, nil)
		default:
			return t.outcome(StateFailed, errors.New("flow reached an unknown state"))
		}

		if err != nil {
			return t.outcome(StateFailed, err)
		}
		state = next
	}
}

func (t *takeFlow) validate() (State, error) {
	if t.viewer == "" {
		t.notices = append(t.notices, NoticeConnectWallet)
		return StateFailed, errors.New("wallet is not connected")
	}
	return StateOrderCreating, nil
}

func (t *takeFlow) createOrder() (State, error) {
	created, err := t.c.api.CreateOrder(t.ctx, orderRequest(t.offer, t.offerID))
	if err != nil {
		t.notices = append(t.notices, NoticeTakeFailed)
		return StateFailed, errors.Wrap(err, "failed to create order")
	}
	t.created = created
	return StateStakePending, nil
}

func (t *takeFlow) sendStake() (State, error) {
	switch {
	case t.created.ContractAddr == "":
		t.notices = append(t.notices, NoticeNoEscrow)
	case t.created.TakerStake > 0 && t.signer != nil:
		if err := t.submitStake(); err != nil {
			t.c.log.WithError(err).WithField("order_id", t.created.ID).
				Warn("taker stake transaction failed")
			t.notices = append(t.notices, NoticeStakeFailed)
		}
	}
	return StateOrderPatching, nil
}

func (t *takeFlow) submitStake() error {
	amount, err := ton.ToNanoStr(t.created.TakerStake)
	if err != nil {
		return errors.Wrap(err, "failed to convert stake amount")
	}

	payload, err := t.c.api.StakePayload(t.ctx, ton.OpTakerStake)
	if err != nil {
		// the contract accepts a bare transfer, proceed without a payload
		t.c.log.WithError(err).Debug("failed to fetch stake payload, sending without it")
		payload = ""
	}

	tx := ton.Transaction{
		ValidUntil: time.Now().Add(stakeValidity).Unix(),
		Messages: []ton.Message{{
			Address: t.created.ContractAddr,
			Amount:  amount,
			Payload: payload,
		}},
	}

	return t.signer.SendTransaction(t.ctx, tx)
}

func (t *takeFlow) patchOrder() (State, error) {
	if err := t.c.api.TakeOrder(t.ctx, t.created.ID, t.viewer); err != nil {
		t.notices = append(t.notices, NoticeTakeFailed)
		return StateFailed, errors.Wrap(err, "failed to mark order taken")
	}
	return StateNavigated, nil
}

func (t *takeFlow) outcome(state State, err error) Outcome {
	out := Outcome{State: state, Notices: t.notices, Err: err}
	if state == StateNavigated && t.created != nil {
		out.ChatID = t.created.ID
	}
	return out
}
