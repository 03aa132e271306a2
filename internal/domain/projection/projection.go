// Package projection maps loosely-typed positional rows returned by
// aggregation queries into typed read models. Field order is fixed per query
// and is the only addressing mechanism; every constructor states its expected
// arity and per-index kinds explicitly instead of casting at use sites.
package projection

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Row is one result row: ordered, heterogeneous field values exactly as the
// data source produced them.
type Row []any

// Kind names the value shape a constructor expects at a given index.
type Kind string

const (
	KindString  Kind = "string"
	KindTime    Kind = "timestamp"
	KindInt     Kind = "integer"
	KindDecimal Kind = "decimal"
)

// Error reports a malformed row: wrong arity or an incompatible value at a
// field index. A correct collaborator never triggers one.
type Error struct {
	Index    int
	Expected Kind
	Actual   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("row field %d: expected %s, got %s", e.Index, e.Expected, e.Actual)
}

func kindError(index int, expected Kind, value any) *Error {
	actual := "null"
	if value != nil {
		actual = fmt.Sprintf("%T", value)
	}
	return &Error{Index: index, Expected: expected, Actual: actual}
}

// ArityError reports a row with the wrong number of fields.
type ArityError struct {
	Expected int
	Actual   int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("row has %d fields, expected %d", e.Actual, e.Expected)
}

func (r Row) checkArity(n int) error {
	if len(r) != n {
		return &ArityError{Expected: n, Actual: len(r)}
	}
	return nil
}

// stringAt returns the string at index i. The empty string passes through
// verbatim and stays distinct from a null column, which is a mapping error:
// every string-valued field in these projections comes from a non-null
// column.
func (r Row) stringAt(i int) (string, error) {
	s, ok := r[i].(string)
	if !ok {
		return "", kindError(i, KindString, r[i])
	}
	return s, nil
}

// timeAt returns the timestamp at index i, or nil when the column is null.
// The wall-clock value passes through unchanged; no timezone conversion.
func (r Row) timeAt(i int) (*time.Time, error) {
	if r[i] == nil {
		return nil, nil
	}
	t, ok := r[i].(time.Time)
	if !ok {
		return nil, kindError(i, KindTime, r[i])
	}
	return &t, nil
}

// requiredTimeAt is timeAt for columns that may not be null.
func (r Row) requiredTimeAt(i int) (time.Time, error) {
	t, err := r.timeAt(i)
	if err != nil {
		return time.Time{}, err
	}
	if t == nil {
		return time.Time{}, kindError(i, KindTime, nil)
	}
	return *t, nil
}

// intAt accepts any integer-like numeric representation and narrows it to
// int. Aggregation counts arrive as int64 (or driver-dependent widths);
// Go's int is 64-bit on every supported platform, so the narrowing cannot
// lose count values in practice.
func (r Row) intAt(i int) (int, error) {
	switch v := r[i].(type) {
	case int64:
		return int(v), nil
	case int32:
		return int(v), nil
	case int:
		return v, nil
	case int16:
		return int(v), nil
	case uint32:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float64:
		// Drivers may hand counts back as float64; a fractional value is
		// not a count.
		if v != math.Trunc(v) {
			return 0, kindError(i, KindInt, r[i])
		}
		return int(v), nil
	default:
		return 0, kindError(i, KindInt, r[i])
	}
}

// int64At is intAt without narrowing, for counts kept wide.
func (r Row) int64At(i int) (int64, error) {
	n, err := r.intAt(i)
	if err != nil {
		return 0, err
	}
	return int64(n), nil
}

// decimalAt converts a numeric column to a decimal value.
func (r Row) decimalAt(i int) (decimal.Decimal, error) {
	switch v := r[i].(type) {
	case decimal.Decimal:
		return v, nil
	case float64:
		return decimal.NewFromFloat(v), nil
	case float32:
		return decimal.NewFromFloat32(v), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case int32:
		return decimal.NewFromInt32(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Decimal{}, kindError(i, KindDecimal, r[i])
		}
		return d, nil
	default:
		return decimal.Decimal{}, kindError(i, KindDecimal, r[i])
	}
}
