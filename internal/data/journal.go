package data

import "time"

type FlowKind string

const (
	FlowMessage FlowKind = "message"
	FlowTake    FlowKind = "take"
)

// FlowJournal records terminal flow outcomes. Stake failures stay in the
// journal until the reconciler reports them, escrow settlement for those
// orders happens out-of-band.
type FlowJournal interface {
	Insert(FlowRecord) error
	Unreported() ([]FlowRecord, error)
	MarkReported(id int64) error
}

type FlowRecord struct {
	// ID surrogate key
	ID           int64     `structs:"-" db:"id"`
	OfferID      string    `structs:"offer_id" db:"offer_id"`
	OrderID      string    `structs:"order_id" db:"order_id"`
	Kind         FlowKind  `structs:"kind" db:"kind"`
	State        string    `structs:"state" db:"state"`
	TakerAddress string    `structs:"taker_address" db:"taker_address"`
	StakeFailed  bool      `structs:"stake_failed" db:"stake_failed"`
	Reported     bool      `structs:"reported" db:"reported"`
	Warning      string    `structs:"warning" db:"warning"`
	CreatedAt    time.Time `structs:"created_at,omitnested" db:"created_at"`
}
