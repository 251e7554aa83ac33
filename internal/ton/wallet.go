package ton

import (
	"context"
	"encoding/base64"
	"math/big"
	"strings"
	"time"

	"github.com/xssnick/tonutils-go/address"
	"github.com/xssnick/tonutils-go/liteclient"
	"github.com/xssnick/tonutils-go/tlb"
	tonsdk "github.com/xssnick/tonutils-go/ton"
	"github.com/xssnick/tonutils-go/ton/wallet"
	"github.com/xssnick/tonutils-go/tvm/cell"
	"gitlab.com/distributed_lab/logan/v3/errors"
)

// WalletSigner signs and sends stake transactions with a V4R2 wallet over a
// lite-client connection pool.
type WalletSigner struct {
	w *wallet.Wallet
}

func NewWalletSigner(ctx context.Context, configURL, seedPhrase string) (*WalletSigner, error) {
	pool := liteclient.NewConnectionPool()
	if err := pool.AddConnectionsFromConfigUrl(ctx, configURL); err != nil {
		return nil, errors.Wrap(err, "failed to connect to liteservers")
	}

	w, err := wallet.FromSeed(tonsdk.NewAPIClient(pool), strings.Fields(seedPhrase), wallet.V4R2)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open wallet from seed")
	}

	return &WalletSigner{w: w}, nil
}

func (s *WalletSigner) Address() string {
	return s.w.WalletAddress().String()
}

func (s *WalletSigner) SendTransaction(ctx context.Context, tx Transaction) error {
	if tx.ValidUntil > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithDeadline(ctx, time.Unix(tx.ValidUntil, 0))
		defer cancel()
	}

	msgs := make([]*wallet.Message, 0, len(tx.Messages))
	for _, m := range tx.Messages {
		msg, err := buildMessage(m)
		if err != nil {
			return err
		}
		msgs = append(msgs, msg)
	}

	err := s.w.SendMany(ctx, msgs, true)
	return errors.Wrap(err, "failed to send wallet transaction")
}

func buildMessage(m Message) (*wallet.Message, error) {
	dst, err := address.ParseAddr(m.Address)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse destination address")
	}

	nano, ok := new(big.Int).SetString(m.Amount, 10)
	if !ok {
		return nil, errors.New("invalid nanoton amount")
	}

	var body *cell.Cell
	if m.Payload != "" {
		boc, err := base64.StdEncoding.DecodeString(m.Payload)
		if err != nil {
			return nil, errors.Wrap(err, "failed to decode payload")
		}
		if body, err = cell.FromBOC(boc); err != nil {
			return nil, errors.Wrap(err, "failed to parse payload cell")
		}
	}

	return wallet.SimpleMessage(dst, tlb.FromNanoTON(nano), body), nil
}
