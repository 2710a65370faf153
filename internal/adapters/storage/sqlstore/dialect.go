// Package sqlstore implements the catalog repositories and unit of work on
// database/sql. Driver differences (placeholder style, isolation level, and
// error codes) are supplied by a Dialect from the sqlite or postgres adapter.
package sqlstore

import (
	"database/sql"
	"strconv"
	"strings"
)

// ErrorClass is the storage-neutral category of a driver error.
type ErrorClass int

// Error classes recognized by the repositories and the unit of work.
const (
	ClassOther ErrorClass = iota
	// ClassConflict is a lock timeout, deadlock, or serialization failure.
	// The transaction may succeed if retried.
	ClassConflict
	ClassUnique
	ClassForeignKey
)

// Dialect describes one SQL backend.
type Dialect struct {
	// Name identifies the backend in logs and health checks.
	Name string

	// NumberedParams rewrites ? placeholders to $1, $2, ...
	NumberedParams bool

	// TxOptions is passed to BeginTx for every unit of work.
	TxOptions sql.TxOptions

	// Classify inspects err (which may be wrapped) and returns its class.
	Classify func(err error) ErrorClass
}

func (d Dialect) classify(err error) ErrorClass {
	if err == nil || d.Classify == nil {
		return ClassOther
	}
	return d.Classify(err)
}

// Rebind rewrites ? placeholders for dialects with numbered parameters.
// Queries in this package never carry a literal ? inside strings.
func (d Dialect) Rebind(query string) string {
	if !d.NumberedParams || !strings.Contains(query, "?") {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r != '?' {
			b.WriteRune(r)
			continue
		}
		n++
		b.WriteByte('$')
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}
