/*
Package format renders pair lists for humans, either as a table on a console
with a fixed-width font or as an HTML table.

Both renderers are debugging aids, much like List.String(), and are not meant
as a serialization format. Keys and values are converted to text with the
%v verb of package fmt.

Console output measures text in display cells (“en”s) according to UAX#11,
so that keys or values with East Asian wide characters keep the columns
aligned. Cells too wide for the configured line width are cut and marked
with an ellipsis.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package format

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pairlist'
func tracer() tracing.Trace {
	return tracing.Select("pairlist")
}
