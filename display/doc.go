/*
Package display renders component trees for the console.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package display

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'composite'
func tracer() tracing.Trace {
	return tracing.Select("composite")
}
