package sql

import (
	libinjection "github.com/corazawaf/libinjection-go"
)

// IsSuspectValue uses libinjection to detect SQL injection patterns in a
// value observed in the database. Categorical values get embedded into
// filter-condition literals, so anything that fingerprints as SQLi is
// excluded from entity mapping rather than quoted through.
//
// Only strings are checked; other value kinds cannot carry injection
// payloads and report false.
func IsSuspectValue(value any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	isSQLi, _ := libinjection.IsSQLi(s)
	return isSQLi
}
