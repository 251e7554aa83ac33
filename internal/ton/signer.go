package ton

import "context"

// Message is a single outgoing transfer inside a wallet transaction.
// Amount is a decimal nanoton string, Payload is an optional base64 BOC.
type Message struct {
	Address string
	Amount  string
	Payload string
}

// Transaction is what the flows hand to the wallet: a validity deadline in
// unix seconds and the transfers to sign.
type Transaction struct {
	ValidUntil int64
	Messages   []Message
}

// Signer sends transactions on behalf of the connected wallet.
type Signer interface {
	Address() string
	SendTransaction(ctx context.Context, tx Transaction) error
}
