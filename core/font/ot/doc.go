/*
Package ot reads the OpenType font tables which drive icon-accessor
generation.

This is deliberately a narrow parser: it understands the sfnt container,
the character-to-glyph mapping ('cmap', Unicode subtables only), glyph
names ('post'), the naming table ('name') and the glyph count ('maxp').
Everything a generator needs to enumerate the glyphs a font claims to
map, and nothing a text shaper or rasterizer would ask for. Clients who
need metrics or layout tables should reach for a full-blown font
library; package ot will hand them the raw bytes of any table it does
not interpret, but won't help beyond that.

Some of the cmap lookup code started its life in
golang.org/x/image/font/sfnt, which does not expose the cmap routines
through its API.

	Copyright 2017 The Go Authors. All rights reserved.
	Use of this source code is governed by a BSD-style
	license that can be found in the LICENSE file.
*/
package ot

import (
	"github.com/iconogen/iconogen/core"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'iconogen.fonts'
func tracer() tracing.Trace {
	return tracing.Select("iconogen.fonts")
}

// errFontFormat produces user level errors for font parsing.
func errFontFormat(x string) error {
	return core.Error(core.EINVALID, "OpenType font format: %s", x)
}

// errNoCharacterMap flags fonts without a usable Unicode character map.
// Distinguishable from format errors through core.Code (EMISSING).
func errNoCharacterMap(x string) error {
	return core.Error(core.EMISSING, "OpenType character map: %s", x)
}
