package config

import (
	"time"

	"gitlab.com/distributed_lab/figure/v3"
	"gitlab.com/distributed_lab/kit/kv"
	"gitlab.com/distributed_lab/logan/v3/errors"
)

type Reconciler struct {
	Period time.Duration
}

const defaultReconcilerPeriod = time.Minute

func (c *config) Reconciler() Reconciler {
	return c.reconcilerOnce.Do(func() interface{} {
		var cfg struct {
			Period time.Duration `fig:"period"`
		}
		err := figure.Out(&cfg).
			From(kv.MustGetStringMap(c.getter, "reconciler")).
			Please()
		if err != nil {
			panic(errors.Wrap(err, "failed to figure out reconciler"))
		}

		if cfg.Period == 0 {
			cfg.Period = defaultReconcilerPeriod
		}

		return Reconciler{Period: cfg.Period}
	}).(Reconciler)
}
