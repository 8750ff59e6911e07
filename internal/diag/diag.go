// Package diag provides the non-fatal runtime logging used across the solver packages.
//
// Construction-time failures (bad covariance, empty target, non-positive sample counts) are
// reported as errors via gosl/chk and are not this package's concern; diag exists for the
// conditions §7 of the specification calls "numerical edge conditions" and "unwinnable
// states" — situations that are a normal return value, not an exception, but still worth a
// trace when a caller has logging enabled.
package diag

import (
	"log"

	"github.com/cpmech/gosl/utl"
)

// LogErr logs err, prefixed by msg, and reports whether a problem was logged.
func LogErr(err error, msg string) (logged bool) {
	if err != nil {
		log.Printf("WARN: %s: %v", msg, err)
		return true
	}
	return false
}

// LogErrCond logs a formatted message when condition is true and reports whether it fired.
func LogErrCond(condition bool, msg string, prm ...interface{}) (logged bool) {
	if condition {
		log.Printf("WARN: %s", utl.Sf(msg, prm...))
		return true
	}
	return false
}
