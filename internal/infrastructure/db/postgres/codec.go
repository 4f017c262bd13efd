package postgres

import (
	"fmt"
	"math/big"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/cabeleireiro/agenda-api/internal/core/domain"
)

// Conversions between domain value types and the pgtype values pgx encodes.
// NULL columns decode to the zero value.

func numericFromAmount(a domain.Amount) pgtype.Numeric {
	return pgtype.Numeric{Int: big.NewInt(a.Cents()), Exp: -2, Valid: true}
}

func amountFromNumeric(n pgtype.Numeric) (domain.Amount, error) {
	if !n.Valid {
		return 0, nil
	}
	if n.NaN || n.InfinityModifier != pgtype.Finite {
		return 0, fmt.Errorf("valor is not a finite number")
	}

	v := new(big.Int).Set(n.Int)
	ten := big.NewInt(10)
	for shift := n.Exp + 2; shift != 0; {
		if shift > 0 {
			v.Mul(v, ten)
			shift--
		} else {
			v.Quo(v, ten)
			shift++
		}
	}
	if !v.IsInt64() {
		return 0, fmt.Errorf("valor %s out of range", n.Int)
	}
	return domain.Amount(v.Int64()), nil
}

func pgTime(t domain.TimeOfDay) pgtype.Time {
	return pgtype.Time{Microseconds: t.Microseconds(), Valid: true}
}

func timeOfDay(t pgtype.Time) domain.TimeOfDay {
	if !t.Valid {
		return domain.TimeOfDay{}
	}
	return domain.TimeOfDayFromMicroseconds(t.Microseconds)
}

func pgDate(d domain.Date) pgtype.Date {
	if d.IsZero() {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: d.Time(), Valid: true}
}

func date(d pgtype.Date) domain.Date {
	if !d.Valid || d.InfinityModifier != pgtype.Finite {
		return domain.Date{}
	}
	return domain.DateOf(d.Time)
}
