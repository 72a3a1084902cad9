/*
Package font is for loading and identifying icon fonts.

An icon font is an ordinary scalable font (OpenType or TrueType) which maps
code-points, usually from the Private Use Area, to pictographic glyphs.
Everything this package does applies to text fonts just as well; the
distinction is one of intent, not of format.

Identification of a font (full name, family) is done with the sfnt package
from golang.org/x/image. Glyph enumeration and naming need access to tables
which sfnt does not expose; that part lives in the ot sub-package.
*/
package font

import (
	"os"
	"strings"
	"sync"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// IconFont is a font, loaded into memory, with its raw bytes retained.
// The raw bytes stay accessible because table-level parsing (see the ot
// sub-package) operates on them directly.
type IconFont struct {
	Fontname string
	Filepath string     // file path, or "internal" for compiled-in fonts
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container
}

// LoadIconFont reads a font from a file.
func LoadIconFont(fontfile string) (*IconFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseIconFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseIconFont identifies a font given as a byte slice.
func ParseIconFont(fbytes []byte) (f *IconFont, err error) {
	f = &IconFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	return
}

// --- Fallback font ---------------------------------------------------------

// FallbackFont returns a font to be used if everything else failes. It is
// always present. Currently we use Go Sans.
func FallbackFont() *IconFont {
	fallbackFontLoading.Do(func() {
		fallbackFont = loadFallbackFont()
	})
	return fallbackFont
}

var fallbackFontLoading sync.Once

// fallbackFont is a font that is used if everything else failes.
// Currently we use Go Sans.
var fallbackFont *IconFont

func loadFallbackFont() *IconFont {
	var err error
	gofont := &IconFont{
		Fontname: "Go Sans",
		Filepath: "internal",
		Binary:   goregular.TTF,
	}
	gofont.SFNT, err = sfnt.Parse(gofont.Binary)
	if err != nil {
		panic("cannot load default font") // this cannot happen
	}
	return gofont
}

// --- Font Registry ---------------------------------------------------------

// Registry caches loaded fonts under their normalized name. Useful for
// clients which generate accessors for a batch of fonts and may reference
// the same font more than once.
type Registry struct {
	sync.Mutex
	fonts map[string]*IconFont
}

var globalFontRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is a singleton instance of a font registry.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewRegistry()
	})
	return globalFontRegistry
}

// NewRegistry creates an empty font registry.
func NewRegistry() *Registry {
	fr := &Registry{
		fonts: make(map[string]*IconFont),
	}
	return fr
}

// StoreFont puts a font into the registry, keyed by its normalized name.
func (fr *Registry) StoreFont(f *IconFont) {
	if f == nil {
		T().Errorf("registry cannot store null font")
		return
	}
	fr.Lock()
	defer fr.Unlock()
	fname := NormalizeFontname(f.Fontname)
	T().Debugf("registry stores font %s as %s", f.Fontname, fname)
	fr.fonts[fname] = f
}

// Font returns a registered font by name, or nil.
func (fr *Registry) Font(name string) *IconFont {
	fr.Lock()
	defer fr.Unlock()
	return fr.fonts[NormalizeFontname(name)]
}

// DebugList logs all registered fonts.
func (fr *Registry) DebugList() {
	T().Debugf("--- registered fonts ---")
	for k, v := range fr.fonts {
		T().Debugf("font [%s] = %v", k, v.Fontname)
	}
	T().Debugf("------------------------")
}

// NormalizeFontname trims a font name down to a registry key: lower-case,
// spaces replaced, file extension cut off.
func NormalizeFontname(fname string) string {
	fname = strings.TrimSpace(fname)
	fname = strings.ReplaceAll(fname, " ", "_")
	if dot := strings.LastIndex(fname, "."); dot > 0 {
		fname = fname[:dot]
	}
	fname = strings.ToLower(fname)
	return fname
}
