//go:build unit

package money_test

import (
	"encoding/json"
	"testing"

	"lumina-hotel-api/internal/pkg/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name      string
		input     string
		wantCents int64
		wantErr   bool
	}{
		{name: "integer amount", input: "249", wantCents: 24900},
		{name: "one fractional digit", input: "249.9", wantCents: 24990},
		{name: "two fractional digits", input: "249.00", wantCents: 24900},
		{name: "zero", input: "0", wantCents: 0},
		{name: "leading whitespace", input: "  12.50", wantCents: 1250},
		{name: "explicit plus sign", input: "+5.00", wantCents: 500},
		{name: "negative amount parses", input: "-3.25", wantCents: -325},
		{name: "three fractional digits rejected", input: "249.001", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "bare sign", input: "-", wantErr: true},
		{name: "missing integer part", input: ".50", wantErr: true},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "double decimal point", input: "1.2.3", wantErr: true},
		{name: "non-numeric fraction", input: "1.x", wantErr: true},
		{name: "minus sign inside fraction", input: "1.-5", wantErr: true},
		{name: "plus sign inside fraction", input: "1.+5", wantErr: true},
		{name: "signed single-digit fraction", input: "1.-1", wantErr: true},
		{name: "doubled leading sign", input: "--5", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := money.Parse(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, money.ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantCents, got.Cents())
		})
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		name  string
		cents int64
		want  string
	}{
		{name: "whole units", cents: 24900, want: "249.00"},
		{name: "with fraction", cents: 24990, want: "249.90"},
		{name: "single cent", cents: 1, want: "0.01"},
		{name: "zero", cents: 0, want: "0.00"},
		{name: "negative", cents: -325, want: "-3.25"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, money.FromCents(tc.cents).String())
		})
	}
}

func TestArithmetic(t *testing.T) {
	t.Run("MulInt scales exactly", func(t *testing.T) {
		nightly := money.FromCents(24900)
		assert.Equal(t, int64(49800), nightly.MulInt(2).Cents())
		assert.Equal(t, "498.00", nightly.MulInt(2).String())
	})

	t.Run("MulInt by zero", func(t *testing.T) {
		assert.Equal(t, int64(0), money.FromCents(24900).MulInt(0).Cents())
	})

	t.Run("Add", func(t *testing.T) {
		sum := money.FromCents(100).Add(money.FromCents(250))
		assert.Equal(t, int64(350), sum.Cents())
	})

	t.Run("IsPositive", func(t *testing.T) {
		assert.True(t, money.FromCents(1).IsPositive())
		assert.False(t, money.FromCents(0).IsPositive())
		assert.False(t, money.FromCents(-1).IsPositive())
	})
}

func TestJSON(t *testing.T) {
	t.Run("marshals as decimal string", func(t *testing.T) {
		b, err := json.Marshal(money.FromCents(49800))
		require.NoError(t, err)
		assert.Equal(t, `"498.00"`, string(b))
	})

	t.Run("unmarshals quoted string", func(t *testing.T) {
		var m money.Money
		require.NoError(t, json.Unmarshal([]byte(`"249.00"`), &m))
		assert.Equal(t, int64(24900), m.Cents())
	})

	t.Run("unmarshals number literal", func(t *testing.T) {
		var m money.Money
		require.NoError(t, json.Unmarshal([]byte(`249.5`), &m))
		assert.Equal(t, int64(24950), m.Cents())
	})

	t.Run("rejects sub-cent precision", func(t *testing.T) {
		var m money.Money
		err := json.Unmarshal([]byte(`"249.001"`), &m)
		require.Error(t, err)
	})
}
