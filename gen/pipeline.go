package gen

import (
	"go/token"
	"strings"
	"unicode"

	"github.com/iconogen/iconogen/core/font/ot"
	"github.com/iconogen/iconogen/icon"
)

// Config describes one generation pass. The zero value is usable for
// fonts carrying a name table: module name and font name are then derived
// from the font itself.
type Config struct {
	ModuleName string // generated package name; derived from the font family if empty
	FontName   string // font family the accessors select; from the name table if empty
	DocLink    string // optional base URL; per-icon doc comments link <DocLink>/<raw name>
	Shaping    string // "basic" (default) or "advanced"
	Advanced   bool   // emit the raw-accessor sub-package
}

func parseShaping(s string) (icon.Shaping, error) {
	switch s {
	case "", "basic":
		return icon.ShapingBasic, nil
	case "advanced":
		return icon.ShapingAdvanced, nil
	}
	return 0, errConfig("unknown shaping mode %q, want 'basic' or 'advanced'", s)
}

// Generate runs a complete generation pass over a font: parse, walk the
// character map, resolve and sanitize glyph names, deduplicate, assemble.
// It either returns a complete Module or an error; there is no partial
// result. Configuration problems surface before the font is even parsed.
//
// Glyphs are processed in the font's own enumeration order, which makes
// the resulting module, and everything rendered from it, deterministic
// for a given font and configuration.
func Generate(fontBytes []byte, cfg Config) (*Module, error) {
	shaping, err := parseShaping(cfg.Shaping)
	if err != nil {
		return nil, err
	}
	if cfg.ModuleName != "" && !token.IsIdentifier(cfg.ModuleName) {
		return nil, errConfig("module name %q is not a legal package name", cfg.ModuleName)
	}
	otf, err := ot.Parse(fontBytes)
	if err != nil {
		return nil, err
	}
	registry := NewNameRegistry()
	var entries []AccessorEntry
	otf.CMap.GlyphIndexMap.Codepoints(func(r rune, gid ot.GlyphIndex) bool {
		if gid == 0 { // no glyph for this code-point
			return true
		}
		raw := resolveGlyphName(otf, gid)
		name, ok := SanitizeName(raw)
		if !ok {
			tracer().Debugf("glyph name %q contains disallowed characters, dropped", raw)
			return true
		}
		if !registry.Claim(name) {
			return true
		}
		entries = append(entries, AccessorEntry{
			Name:      name,
			RawName:   raw,
			Codepoint: r,
		})
		return true
	})
	fontName := cfg.FontName
	if fontName == "" {
		fontName = fontFamily(otf)
	}
	moduleName := cfg.ModuleName
	if moduleName == "" {
		moduleName = derivePackageName(fontName)
	}
	tracer().Infof("generated %d accessors for font %q, dropped %d duplicates",
		len(entries), fontName, len(registry.Dropped()))
	return &Module{
		Name:     moduleName,
		FontName: fontName,
		DocLink:  cfg.DocLink,
		Shaping:  shaping,
		Advanced: cfg.Advanced,
		Entries:  entries,
		Count:    len(entries),
		Dropped:  registry.Dropped(),
	}, nil
}

// resolveGlyphName returns a glyph's PostScript name, or "unnamed" if the
// font does not carry one. Unnamed glyphs are common in icon fonts and are
// enumerable like any other; with first-wins deduplication at most one
// "unnamed" accessor survives per pass.
func resolveGlyphName(otf *ot.Font, gid ot.GlyphIndex) string {
	if otf.Post != nil {
		if name, ok := otf.Post.GlyphName(gid); ok && name != "" {
			return name
		}
	}
	return "unnamed"
}

// fontFamily reads the family name from the font's name table, falling
// back to the full font name, falling back to "icons".
func fontFamily(otf *ot.Font) string {
	if otf.Names != nil {
		if family := otf.Names.Entry(ot.NameFamily); family != "" {
			return family
		}
		if full := otf.Names.Entry(ot.NameFull); full != "" {
			return full
		}
	}
	return "icons"
}

// derivePackageName squeezes a font family name into a Go package name:
// lower-cased, letters and digits only. "Test Icons" becomes "testicons".
func derivePackageName(family string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(family) {
		if unicode.IsLetter(r) || (unicode.IsDigit(r) && b.Len() > 0) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "icons"
	}
	return b.String()
}
