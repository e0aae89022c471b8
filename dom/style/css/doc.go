/*
Package css parses the two kinds of typed property values effects and
computed styles depend on: "display" modes (to decide if an element is
hidden) and dimensions measured in CSS pixels (to set heights of sliding
boxes).

Other property values are kept as strings by package style.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'jbase.style'.
func tracer() tracing.Trace {
	return tracing.Select("jbase.style")
}
