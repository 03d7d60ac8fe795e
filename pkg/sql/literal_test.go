package sql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoteLiteral(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"active", "'active'"},
		{"", "''"},
		{"o'brien", "'o''brien'"},
		{"it''s", "'it''''s'"},
		{`with "quotes"`, `'with "quotes"'`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, QuoteLiteral(tt.in))
	}
}

func TestQuoteIdentifier(t *testing.T) {
	assert.Equal(t, `"status"`, QuoteIdentifier("status"))
	assert.Equal(t, `"order status"`, QuoteIdentifier("order status"))
	assert.Equal(t, `"we""ird"`, QuoteIdentifier(`we"ird`))
}
