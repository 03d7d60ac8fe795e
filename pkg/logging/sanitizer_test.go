package logging

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeConnectionString(t *testing.T) {
	out := SanitizeConnectionString("host=db port=5432 user=app password=hunter2 dbname=catalog")
	assert.NotContains(t, out, "hunter2")
	assert.Contains(t, out, "password="+RedactedText)

	out = SanitizeConnectionString("postgres://app:hunter2@db:5432/catalog")
	assert.NotContains(t, out, "hunter2")

	assert.Empty(t, SanitizeConnectionString(""))
}

func TestSanitizeError(t *testing.T) {
	err := errors.New(`failed to connect to "postgres://app:hunter2@db:5432/catalog"`)
	assert.NotContains(t, SanitizeError(err), "hunter2")
	assert.Empty(t, SanitizeError(nil))
}

func TestSanitizeQuery_Truncates(t *testing.T) {
	long := "SELECT " + strings.Repeat("x", 200)
	out := SanitizeQuery(long)
	assert.Len(t, out, MaxQueryLogLength+3)
	assert.True(t, strings.HasSuffix(out, "..."))

	assert.Equal(t, "SELECT 1", SanitizeQuery("SELECT 1"))
}
