/*
Package gen generates Go accessor source code from icon fonts.

A generation pass walks the code-points a font's character map claims to
cover, derives one canonical identifier per glyph from the glyph's
PostScript name, drops identifiers which repeat or contain characters
unsuitable for source code, and assembles the survivors into one output
module: a Go package with an accessor function per icon, a Count constant
and a font reference. Optionally a nested sub-package with raw-content
accessors is produced for clients which bypass widget construction.

Each pass is self-contained. The registry of claimed names is created
empty, grows while the font is walked and is discarded with the pass;
passes for different fonts share no state.
*/
package gen

import (
	"github.com/iconogen/iconogen/core"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'iconogen.gen'
func tracer() tracing.Trace {
	return tracing.Select("iconogen.gen")
}

// errConfig produces user level errors for invalid pass configurations.
func errConfig(format string, v ...interface{}) error {
	return core.Error(core.ECONFIG, format, v...)
}
