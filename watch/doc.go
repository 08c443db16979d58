/*
Package watch broadcasts component tree assembly events.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package watch

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'composite'
func tracer() tracing.Trace {
	return tracing.Select("composite")
}
