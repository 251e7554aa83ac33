package flow

// State enumerates the steps of an action flow. A flow either reaches
// StateNavigated with a chat id, or StateFailed; there is nothing to retry.
type State uint8

const (
	StateIdle State = iota
	StateValidating
	StateOrderCreating
	StateStakePending
	StateOrderPatching
	StateNavigated
	StateFailed
)

var stateNames = map[State]string{
	StateIdle:          "idle",
	StateValidating:    "validating",
	StateOrderCreating: "order_creating",
	StateStakePending:  "stake_pending",
	StateOrderPatching: "order_patching",
	StateNavigated:     "navigated",
	StateFailed:        "failed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Notice is a user-facing message emitted by a flow. The texts are generic on
// purpose, diagnostics travel in the wrapped error chain instead.
type Notice string

const (
	NoticeChatFailed    Notice = "Unable to start chat"
	NoticeConnectWallet Notice = "Connect wallet to take the offer"
	NoticeTakeFailed    Notice = "Unable to take offer"
	NoticeStakeFailed   Notice = "TON transaction failed. Stake not sent."
	NoticeNoEscrow      Notice = "Escrow contract address is not set. Contact admin to initialize escrow for this offer."
)

// Outcome is the terminal result of an action flow.
type Outcome struct {
	State   State
	ChatID  string
	Notices []Notice
	Err     error
}

func (o Outcome) Failed() bool {
	return o.State == StateFailed
}

func (o Outcome) HasNotice(n Notice) bool {
	for _, got := range o.Notices {
		if got == n {
			return true
		}
	}
	return false
}
