//go:build unit

package pgconv_test

import (
	"math/big"
	"testing"

	"lumina-hotel-api/internal/pkg/money"
	"lumina-hotel-api/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyFromNumeric(t *testing.T) {
	cases := []struct {
		name      string
		numeric   pgtype.Numeric
		wantCents int64
		wantErr   bool
	}{
		{
			name:      "scale two",
			numeric:   pgtype.Numeric{Int: big.NewInt(24900), Exp: -2, Valid: true},
			wantCents: 24900,
		},
		{
			name:      "scale zero",
			numeric:   pgtype.Numeric{Int: big.NewInt(249), Exp: 0, Valid: true},
			wantCents: 24900,
		},
		{
			name:      "scale one",
			numeric:   pgtype.Numeric{Int: big.NewInt(2499), Exp: -1, Valid: true},
			wantCents: 24990,
		},
		{
			name:      "positive exponent",
			numeric:   pgtype.Numeric{Int: big.NewInt(3), Exp: 2, Valid: true},
			wantCents: 30000,
		},
		{
			name:      "sub-cent digits that round exactly",
			numeric:   pgtype.Numeric{Int: big.NewInt(249000), Exp: -3, Valid: true},
			wantCents: 24900,
		},
		{
			name:    "sub-cent digits that lose precision",
			numeric: pgtype.Numeric{Int: big.NewInt(249001), Exp: -3, Valid: true},
			wantErr: true,
		},
		{
			name:    "null value",
			numeric: pgtype.Numeric{Valid: false},
			wantErr: true,
		},
		{
			name:    "NaN",
			numeric: pgtype.Numeric{NaN: true, Valid: true},
			wantErr: true,
		},
		{
			name:    "infinity",
			numeric: pgtype.Numeric{Int: big.NewInt(1), InfinityModifier: pgtype.Infinity, Valid: true},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := pgconv.MoneyFromNumeric(tc.numeric)
			if tc.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, pgconv.ErrInvalidNumericValue)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantCents, got.Cents())
		})
	}
}

func TestMoneyToNumeric(t *testing.T) {
	t.Run("renders cents at scale two", func(t *testing.T) {
		n := pgconv.MoneyToNumeric(money.FromCents(49800))
		require.True(t, n.Valid)
		assert.Equal(t, int64(49800), n.Int.Int64())
		assert.Equal(t, int32(-2), n.Exp)
	})

	t.Run("round trips", func(t *testing.T) {
		orig := money.FromCents(24990)
		back, err := pgconv.MoneyFromNumeric(pgconv.MoneyToNumeric(orig))
		require.NoError(t, err)
		assert.Equal(t, orig, back)
	})
}

func TestNullableHelpers(t *testing.T) {
	t.Run("string pointer round trip", func(t *testing.T) {
		s := "hello"
		pt := pgconv.StringPtrToPgtype(&s)
		require.True(t, pt.Valid)
		assert.Equal(t, &s, pgconv.StringPtrFromPgtype(pt))
	})

	t.Run("nil string pointer maps to null", func(t *testing.T) {
		pt := pgconv.StringPtrToPgtype(nil)
		assert.False(t, pt.Valid)
		assert.Nil(t, pgconv.StringPtrFromPgtype(pt))
	})

	t.Run("int32 pointer round trip", func(t *testing.T) {
		v := int32(3)
		pi := pgconv.Int32PtrToPgtype(&v)
		require.True(t, pi.Valid)
		assert.Equal(t, &v, pgconv.Int32PtrFromPgtype(pi))
		assert.Nil(t, pgconv.Int32PtrFromPgtype(pgconv.Int32PtrToPgtype(nil)))
	})
}
