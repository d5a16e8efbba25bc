// Package obs holds the tracing and invariant-checking helpers shared by
// the inlined and hopscotch engines. It generalizes the debug-gated
// fmt.Printf style used throughout cockroachdb-swiss's map.go into two
// small functions instead of repeating the `if debug { fmt.Printf(...) }`
// idiom at every call site.
package obs

import "fmt"

// Debug gates Tracef. It is a plain var, not a build-tag, matching
// cockroachdb-swiss's runtime-checked `debug` constant rather than a
// compile-time flag, since flipping it is useful from a failing test.
var Debug = false

// Tracef prints a diagnostic line when Debug is set. It costs nothing at
// the call site when Debug is false beyond the varargs boxing.
func Tracef(format string, args ...any) {
	if Debug {
		fmt.Printf(format+"\n", args...)
	}
}

// Invariant panics with a formatted diagnostic if cond is false. Sentinel
// misuse, duplicate-on-rehash, and HT placement exhaustion are all contract
// violations, not ordinary outcomes.
func Invariant(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
