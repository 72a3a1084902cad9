package gen

import (
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iconogen/iconogen/icon"
)

// AccessorEntry is the per-glyph record flowing through a generation pass:
// the canonical identifier, the glyph name as found in the font, and the
// code-point the font maps to the glyph. Both rendered accessor flavours
// (widget and raw) are produced from the same entry.
type AccessorEntry struct {
	Name      string // canonical identifier, sanitized and deduplicated
	RawName   string // glyph name as stored in the font
	Codepoint rune
}

// Symbol returns the Go function name emitted for this entry. The canonical
// name itself never changes (deduplication and counting happen on it); the
// symbol is its exported form: first letter upper-cased, a leading
// underscore prefixed with 'X', and a trailing '_' should the result still
// be a Go keyword.
func (e AccessorEntry) Symbol() string {
	sym := e.Name
	if strings.HasPrefix(sym, "_") {
		sym = "X" + sym
	} else if r, size := utf8.DecodeRuneInString(sym); size > 0 {
		sym = string(unicode.ToUpper(r)) + sym[size:]
	}
	if token.IsKeyword(sym) {
		sym += "_"
	}
	return sym
}

// Content returns the entry's code-point as a string, the payload of the
// raw accessor flavour.
func (e AccessorEntry) Content() string {
	return string(e.Codepoint)
}

// Module is the assembled result of a generation pass, ready to be
// rendered as source text. Built once, immutable thereafter.
type Module struct {
	Name     string          // generated package name
	FontName string          // font family the accessors select
	DocLink  string          // optional base URL for per-icon documentation
	Shaping  icon.Shaping    // shaping mode baked into the accessors
	Advanced bool            // whether the raw-accessor sub-package is emitted
	Entries  []AccessorEntry // surviving entries, in font enumeration order
	Count    int             // == len(Entries)
	Dropped  []string        // duplicate names dropped during the pass; diagnostic
}
