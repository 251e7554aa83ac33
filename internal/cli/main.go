package cli

import (
	"github.com/alecthomas/kingpin"
	"gitlab.com/distributed_lab/kit/kv"
	"gitlab.com/distributed_lab/logan/v3"

	"github.com/tondeal/offer-flow-svc/internal/config"
	"github.com/tondeal/offer-flow-svc/internal/service"
)

func Run(args []string) bool {
	log := logan.New()

	defer func() {
		if rvr := recover(); rvr != nil {
			log.WithRecover(rvr).Error("app panicked")
		}
	}()

	cfg := config.New(kv.MustFromEnv())
	log = cfg.Log()

	app := kingpin.New("offer-flow-svc", "marketplace offer-to-order flow client")

	runCmd := app.Command("run", "run a background service")
	reconcilerCmd := runCmd.Command("reconciler", "report stake transfers that did not land")

	showCmd := app.Command("show", "load an offer and print its display projection")
	showID := showCmd.Arg("offer-id", "offer identifier").Required().String()

	messageCmd := app.Command("message", "open a chat with the offer maker")
	messageID := messageCmd.Arg("offer-id", "offer identifier").Required().String()

	takeCmd := app.Command("take", "take an offer, staking via the configured wallet")
	takeID := takeCmd.Arg("offer-id", "offer identifier").Required().String()
	noWallet := takeCmd.Flag("no-wallet", "skip the stake transaction").Bool()

	cmd, err := app.Parse(args[1:])
	if err != nil {
		log.WithError(err).Error("failed to parse arguments")
		return false
	}

	switch cmd {
	case reconcilerCmd.FullCommand():
		service.Run(cfg)
	case showCmd.FullCommand():
		return show(cfg, *showID)
	case messageCmd.FullCommand():
		return message(cfg, *messageID)
	case takeCmd.FullCommand():
		return take(cfg, *takeID, *noWallet)
	default:
		log.Errorf("unknown command %s", cmd)
		return false
	}

	return true
}
