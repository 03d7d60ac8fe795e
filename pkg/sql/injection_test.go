package sql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSuspectValue(t *testing.T) {
	suspect := []string{
		"' OR 1=1 --",
		"'; DROP TABLE users; --",
		"1' UNION SELECT password FROM users--",
	}
	for _, v := range suspect {
		assert.True(t, IsSuspectValue(v), "expected %q to fingerprint as SQLi", v)
	}

	benign := []string{
		"active",
		"pending_review",
		"San Francisco",
	}
	for _, v := range benign {
		assert.False(t, IsSuspectValue(v), "expected %q to pass", v)
	}
}

func TestIsSuspectValue_NonStrings(t *testing.T) {
	assert.False(t, IsSuspectValue(42))
	assert.False(t, IsSuspectValue(nil))
	assert.False(t, IsSuspectValue(true))
}
