package config

import (
	jsonapi "gitlab.com/distributed_lab/json-api-connector"
	"gitlab.com/distributed_lab/kit/comfig"
	"gitlab.com/distributed_lab/kit/kv"
	"gitlab.com/distributed_lab/kit/pgdb"
)

type Config interface {
	comfig.Logger
	pgdb.Databaser

	Marketplace() *jsonapi.Connector
	TON() TON
	Reconciler() Reconciler
}

type config struct {
	comfig.Logger
	pgdb.Databaser
	getter kv.Getter

	marketplaceOnce comfig.Once
	tonOnce         comfig.Once
	reconcilerOnce  comfig.Once
}

func New(getter kv.Getter) Config {
	return &config{
		getter:    getter,
		Databaser: pgdb.NewDatabaser(getter),
		Logger:    comfig.NewLogger(getter, comfig.LoggerOpts{}),
	}
}
