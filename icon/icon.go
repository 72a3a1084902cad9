/*
Package icon holds the small runtime surface which generated icon-accessor
code links against.

Generated accessors come in two flavours: a widget form, returning a
ready-made Text, and a raw form, returning the building blocks (the
icon's code-point as a string, the font to render it with, and the text
shaping the font needs). Both flavours funnel through the types in this
package, keeping generated files free of any other dependency.
*/
package icon

import "fmt"

// Font selects a font by family name. Rendering layers are expected to
// match the name against their font registry.
type Font struct {
	Name string
}

// FontWithName creates a Font selector for a family name.
func FontWithName(name string) Font {
	return Font{Name: name}
}

// Shaping tells a rendering layer how much shaping work glyphs of a font
// require. Most icon fonts map one code-point to one glyph and get along
// with basic shaping; fonts using ligatures or marks need advanced shaping.
type Shaping int

const (
	ShapingBasic Shaping = iota
	ShapingAdvanced
)

func (s Shaping) String() string {
	switch s {
	case ShapingBasic:
		return "basic"
	case ShapingAdvanced:
		return "advanced"
	}
	return fmt.Sprintf("Shaping(%d)", int(s))
}

// Text is a piece of renderable text: an icon's code-point together with
// its font and shaping requirements.
type Text struct {
	Content string
	Font    Font
	Shaping Shaping
}

// NewText creates a Text for a single code-point.
func NewText(codepoint rune, font Font, shaping Shaping) Text {
	return Text{
		Content: string(codepoint),
		Font:    font,
		Shaping: shaping,
	}
}
