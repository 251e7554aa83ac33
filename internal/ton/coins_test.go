package ton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToNanoStr(t *testing.T) {
	cases := map[float64]string{
		0:           "0",
		2:           "2000000000",
		2.5:         "2500000000",
		0.000000001: "1",
		123.456789:  "123456789000",
	}

	for amount, want := range cases {
		got, err := ToNanoStr(amount)
		require.NoError(t, err)
		assert.Equal(t, want, got, "amount %v", amount)
	}
}

func TestNanoRoundTrip(t *testing.T) {
	for _, amount := range []float64{0, 0.000000001, 0.2, 2, 2.5, 123.456789, 1000000} {
		nano, err := ToNanoStr(amount)
		require.NoError(t, err)

		back, err := FromNanoStr(nano)
		require.NoError(t, err)
		assert.InDelta(t, amount, back, 1e-9, "round trip of %v", amount)
	}
}

func TestFromNanoStrInvalid(t *testing.T) {
	_, err := FromNanoStr("not-a-number")
	assert.Error(t, err)
}

func TestOpTakerStakeWireValue(t *testing.T) {
	assert.Equal(t, uint32(4098), OpTakerStake)
}
