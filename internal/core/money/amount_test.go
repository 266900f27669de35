package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAmount_NoFloatDrift is spec.md S3: ten thousand iterations of
// (+0.01, -0.01) against a balance of 10000 must leave it unchanged.
func TestAmount_NoFloatDrift(t *testing.T) {
	balance, err := NewFromString("10000")
	require.NoError(t, err)

	plus, err := NewFromString("0.01")
	require.NoError(t, err)
	minus, err := NewFromString("-0.01")
	require.NoError(t, err)

	for i := 0; i < 10000; i++ {
		balance = balance.Add(plus)
		balance = balance.Add(minus)
	}

	want, _ := NewFromString("10000")
	assert.True(t, balance.Equal(want), "expected 10000, got %s", balance.StringExact())
}

func TestAmount_DivBankersRounding(t *testing.T) {
	a, _ := NewFromString("0.125")
	b := New(1)
	got := a.Div(b).Round(2)
	assert.Equal(t, "0.12", got.StringExact())
}

func TestAmount_ClampMaxMin(t *testing.T) {
	lo, hi := New(300), New(850)
	assert.True(t, Clamp(New(200), lo, hi).Equal(lo))
	assert.True(t, Clamp(New(900), lo, hi).Equal(hi))
	assert.True(t, Clamp(New(500), lo, hi).Equal(New(500)))

	assert.True(t, Max(New(1), New(2)).Equal(New(2)))
	assert.True(t, Min(New(1), New(2)).Equal(New(1)))
}

func TestAmount_JSONRoundTrip(t *testing.T) {
	a, _ := NewFromString("1234.5600")
	b, err := a.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1234.56"`, string(b))

	var out Amount
	require.NoError(t, out.UnmarshalJSON(b))
	assert.True(t, a.Equal(out))
}
