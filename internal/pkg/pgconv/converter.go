package pgconv

import (
	"errors"
	"math/big"
	"time"

	"lumina-hotel-api/internal/pkg/money"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var ErrInvalidNumericValue = errors.New("invalid numeric value")

func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func StringPtrFromPgtype(pt pgtype.Text) *string {
	if !pt.Valid {
		return nil
	}
	return &pt.String
}

func StringPtrToPgtype(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func StringToPgtype(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func Int32PtrFromPgtype(pi pgtype.Int4) *int32 {
	if !pi.Valid {
		return nil
	}
	return &pi.Int32
}

func Int32PtrToPgtype(i *int32) pgtype.Int4 {
	if i == nil {
		return pgtype.Int4{Valid: false}
	}
	return pgtype.Int4{Int32: *i, Valid: true}
}

// MoneyFromNumeric converts a NUMERIC(10,2) column to integer cents without
// any float intermediate.
func MoneyFromNumeric(pn pgtype.Numeric) (money.Money, error) {
	if !pn.Valid || pn.NaN || pn.InfinityModifier != pgtype.Finite {
		return money.Money{}, ErrInvalidNumericValue
	}

	// cents = Int * 10^(Exp+2); Exp > 0 never occurs for a scale-2 column
	// but is handled for completeness.
	shift := int(pn.Exp) + 2
	v := new(big.Int).Set(pn.Int)
	switch {
	case shift > 0:
		v.Mul(v, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(shift)), nil))
	case shift < 0:
		div := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-shift)), nil)
		rem := new(big.Int)
		v.QuoRem(v, div, rem)
		if rem.Sign() != 0 {
			return money.Money{}, ErrInvalidNumericValue
		}
	}

	if !v.IsInt64() {
		return money.Money{}, ErrInvalidNumericValue
	}
	return money.FromCents(v.Int64()), nil
}

// MoneyToNumeric renders integer cents as a NUMERIC with scale 2.
func MoneyToNumeric(m money.Money) pgtype.Numeric {
	return pgtype.Numeric{
		Int:   big.NewInt(m.Cents()),
		Exp:   -2,
		Valid: true,
	}
}
