package jsonutil

import (
	"encoding/json"
	"math/big"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_Scalars(t *testing.T) {
	assert.Nil(t, Normalize(nil))
	assert.Equal(t, true, Normalize(true))
	assert.Equal(t, "active", Normalize("active"))
	assert.Equal(t, int64(42), Normalize(int64(42)))
	assert.Equal(t, 3.14, Normalize(3.14))
}

func TestNormalize_Bytes(t *testing.T) {
	assert.Equal(t, "raw", Normalize([]byte("raw")))
}

func TestNormalize_UUIDBytes(t *testing.T) {
	raw := [16]byte{0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc, 0xde, 0xf0,
		0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc, 0xde, 0xf0}
	assert.Equal(t, "12345678-9abc-def0-1234-56789abcdef0", Normalize(raw))
}

func TestNormalize_Time(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	ts := time.Date(2024, 3, 15, 14, 30, 0, 0, loc)
	assert.Equal(t, "2024-03-15T12:30:00Z", Normalize(ts))
}

func TestNormalize_Numeric(t *testing.T) {
	var n pgtype.Numeric
	require.NoError(t, n.Scan("12.50"))
	assert.Equal(t, 12.5, Normalize(n))
}

func TestNormalize_BigInt(t *testing.T) {
	assert.Equal(t, float64(9000000000), Normalize(big.NewInt(9000000000)))
}

func TestNormalize_Containers(t *testing.T) {
	in := map[string]any{
		"when": time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		"tags": []any{[]byte("a"), "b"},
	}
	out := Normalize(in)
	assert.Equal(t, map[string]any{
		"when": "2024-01-01T00:00:00Z",
		"tags": []any{"a", "b"},
	}, out)
}

func TestNormalize_UnknownTypeFallsBackToString(t *testing.T) {
	type custom struct{ V int }
	out := Normalize(custom{V: 7})
	_, isString := out.(string)
	assert.True(t, isString)
}

func TestNormalizeSlice_OutputIsJSONEncodable(t *testing.T) {
	values := []any{
		"active",
		[]byte("bytes"),
		time.Now(),
		big.NewInt(10),
		nil,
	}
	_, err := json.Marshal(NormalizeSlice(values))
	assert.NoError(t, err)
}
