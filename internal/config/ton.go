package config

import (
	"context"
	"time"

	"gitlab.com/distributed_lab/figure/v3"
	"gitlab.com/distributed_lab/kit/kv"
	"gitlab.com/distributed_lab/logan/v3/errors"

	"github.com/tondeal/offer-flow-svc/internal/ton"
)

// TON carries the wallet side of the config. Signer is nil when no wallet seed
// is configured, flows then run without the stake transaction.
type TON struct {
	Signer         ton.Signer
	ConnectTimeout time.Duration
}

const defaultConnectTimeout = 30 * time.Second

func (c *config) TON() TON {
	return c.tonOnce.Do(func() interface{} {
		var cfg struct {
			ConfigURL      string        `fig:"config_url,required"`
			WalletSeed     string        `fig:"wallet_seed"`
			ConnectTimeout time.Duration `fig:"connect_timeout"`
		}

		err := figure.Out(&cfg).
			From(kv.MustGetStringMap(c.getter, "ton")).
			Please()
		if err != nil {
			panic(errors.Wrap(err, "failed to figure out ton"))
		}

		if cfg.ConnectTimeout == 0 {
			cfg.ConnectTimeout = defaultConnectTimeout
		}
		if cfg.WalletSeed == "" {
			return TON{ConnectTimeout: cfg.ConnectTimeout}
		}

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
		defer cancel()

		signer, err := ton.NewWalletSigner(ctx, cfg.ConfigURL, cfg.WalletSeed)
		if err != nil {
			panic(errors.Wrap(err, "failed to open TON wallet"))
		}

		return TON{Signer: signer, ConnectTimeout: cfg.ConnectTimeout}
	}).(TON)
}
