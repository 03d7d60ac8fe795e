package jsonutil

import (
	"fmt"
	"math/big"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// Normalize converts a database-sourced value into one that encoding/json
// can represent without driver-specific types leaking across the boundary:
// timestamps become ISO-8601 strings, arbitrary-precision decimals become
// float64, byte slices become strings, and containers are walked
// recursively. Anything outside the closed set falls back to its string
// representation.
func Normalize(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case bool, string, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return val
	case []byte:
		return string(val)
	case [16]byte:
		// pgx returns raw UUID bytes when no codec is registered.
		return fmt.Sprintf("%x-%x-%x-%x-%x", val[0:4], val[4:6], val[6:8], val[8:10], val[10:16])
	case time.Time:
		return val.UTC().Format(time.RFC3339)
	case pgtype.Numeric:
		f, err := val.Float64Value()
		if err != nil || !f.Valid {
			return fmt.Sprint(v)
		}
		return f.Float64
	case *big.Int:
		f, _ := new(big.Float).SetInt(val).Float64()
		return f
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = Normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Normalize(item)
		}
		return out
	default:
		return fmt.Sprint(v)
	}
}

// NormalizeSlice applies Normalize to every element.
func NormalizeSlice(values []any) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = Normalize(v)
	}
	return out
}
