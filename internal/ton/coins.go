package ton

import (
	"math/big"
	"strconv"

	"github.com/xssnick/tonutils-go/tlb"
	"gitlab.com/distributed_lab/logan/v3/errors"
)

// OpTakerStake is the escrow contract op code the taker stake message carries.
const OpTakerStake uint32 = 0x1002

// ToNano converts a TON amount into nanoton.
func ToNano(amount float64) (*big.Int, error) {
	coins, err := tlb.FromTON(strconv.FormatFloat(amount, 'f', 9, 64))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse TON amount")
	}
	return coins.NanoTON(), nil
}

// ToNanoStr converts a TON amount into the decimal nanoton string the wallet
// message format expects.
func ToNanoStr(amount float64) (string, error) {
	nano, err := ToNano(amount)
	if err != nil {
		return "", err
	}
	return nano.String(), nil
}

// FromNanoStr converts a decimal nanoton string back into a TON amount.
func FromNanoStr(nano string) (float64, error) {
	n, ok := new(big.Int).SetString(nano, 10)
	if !ok {
		return 0, errors.New("invalid nanoton amount")
	}

	amount, err := strconv.ParseFloat(tlb.FromNanoTON(n).TON(), 64)
	return amount, errors.Wrap(err, "failed to parse TON amount")
}
