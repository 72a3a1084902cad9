package gen

import (
	"testing"

	"github.com/iconogen/iconogen/core"
	"github.com/iconogen/iconogen/core/font/ot/otbuild"
	"github.com/iconogen/iconogen/icon"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type PipelineTestEnviron struct {
	suite.Suite
	fontBytes []byte // a small icon font with a mixed bag of glyph names
}

// listen for 'go test' command --> run test methods
func TestPipeline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iconogen.gen")
	defer teardown()
	suite.Run(t, new(PipelineTestEnviron))
}

// run once, before test suite methods
func (env *PipelineTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	env.fontBytes = otbuild.New().
		MapRune(0xe800, 1).
		MapRune(0xe801, 2).
		MapRune(0xe802, 3).
		MapRune(0xe803, 4).
		NameGlyph(1, "heart").
		NameGlyph(2, "heart-fill").
		NameGlyph(3, "1").
		// glyph 4 stays unnamed
		FullName("Test Icons Regular").
		Family("Test Icons").
		Bytes()
}

// --- Tests -----------------------------------------------------------------

func (env *PipelineTestEnviron) TestGenerateEndToEnd() {
	m, err := Generate(env.fontBytes, Config{})
	env.Require().NoError(err)
	env.Equal(4, m.Count, "expected 4 surviving accessors")
	names := make([]string, len(m.Entries))
	for i, e := range m.Entries {
		names[i] = e.Name
	}
	env.Equal([]string{"heart", "heart_fill", "one", "unnamed"}, names,
		"expected canonical names in font enumeration order")
	env.Equal(len(m.Entries), m.Count, "count must equal the number of entries")
	env.Empty(m.Dropped, "no duplicates in this font")
}

func (env *PipelineTestEnviron) TestGenerateDerivesNames() {
	m, err := Generate(env.fontBytes, Config{})
	env.Require().NoError(err)
	env.Equal("Test Icons", m.FontName, "expected family name from the name table")
	env.Equal("testicons", m.Name, "expected package name derived from the family")
}

func (env *PipelineTestEnviron) TestGenerateConfigOverrides() {
	m, err := Generate(env.fontBytes, Config{
		ModuleName: "myicons",
		FontName:   "My Icons",
		Shaping:    "advanced",
	})
	env.Require().NoError(err)
	env.Equal("myicons", m.Name)
	env.Equal("My Icons", m.FontName)
	env.Equal(icon.ShapingAdvanced, m.Shaping)
}

func (env *PipelineTestEnviron) TestGenerateDuplicatesCollapse() {
	// two distinct glyphs, both named 'star'
	bin := otbuild.New().
		MapRune(0xe800, 1).
		MapRune(0xe801, 2).
		NameGlyph(1, "star").
		NameGlyph(2, "star").
		Family("Stars").
		Bytes()
	m, err := Generate(bin, Config{})
	env.Require().NoError(err)
	env.Equal(1, m.Count, "expected duplicates to collapse into one accessor")
	env.Equal("star", m.Entries[0].Name)
	env.Equal(rune(0xe800), m.Entries[0].Codepoint, "expected the first glyph to win")
	env.Equal([]string{"star"}, m.Dropped, "expected the dropped name to be observable")
}

func (env *PipelineTestEnviron) TestGenerateDropsDisallowedNames() {
	bin := otbuild.New().
		MapRune(0xe800, 1).
		MapRune(0xe801, 2).
		NameGlyph(1, "file.txt").
		NameGlyph(2, "folder").
		Family("Files").
		Bytes()
	m, err := Generate(bin, Config{})
	env.Require().NoError(err)
	env.Equal(1, m.Count, "expected 'file.txt' to be dropped")
	env.Equal("folder", m.Entries[0].Name)
	env.Empty(m.Dropped, "disallowed names are not duplicates")
}

func (env *PipelineTestEnviron) TestGenerateUnnamedWithoutPostTable() {
	bin := otbuild.New().
		MapRune(0xe800, 1).
		MapRune(0xe801, 2).
		OmitPost().
		Family("Nameless").
		Bytes()
	m, err := Generate(bin, Config{})
	env.Require().NoError(err)
	env.Equal(1, m.Count, "expected all unnamed glyphs to collapse to one 'unnamed'")
	env.Equal("unnamed", m.Entries[0].Name)
}

func (env *PipelineTestEnviron) TestGenerateAndRenderDeterministic() {
	render := func() []byte {
		m, err := Generate(env.fontBytes, Config{Advanced: true})
		env.Require().NoError(err)
		files, err := m.Render()
		env.Require().NoError(err)
		out := make([]byte, 0, 1024)
		for _, f := range files {
			out = append(out, f.Content...)
		}
		return out
	}
	env.Equal(render(), render(),
		"expected two full passes over identical font bytes to render identically")
}

func (env *PipelineTestEnviron) TestGenerateMalformedFontIsFatal() {
	m, err := Generate([]byte("garbage, definitely not a font"), Config{})
	env.Require().Error(err)
	env.Nil(m, "no partial module on fatal errors")
	env.Equal(core.EINVALID, core.Code(err))
}

func (env *PipelineTestEnviron) TestGenerateMissingCMapIsFatal() {
	bin := otbuild.New().MapRune(0xe800, 1).OmitCMap().Bytes()
	m, err := Generate(bin, Config{})
	env.Require().Error(err)
	env.Nil(m)
	env.Equal(core.EMISSING, core.Code(err))
}

func (env *PipelineTestEnviron) TestGenerateInvalidShapingFailsFirst() {
	// configuration is checked before the font is even looked at
	m, err := Generate([]byte("garbage"), Config{Shaping: "fancy"})
	env.Require().Error(err)
	env.Nil(m)
	env.Equal(core.ECONFIG, core.Code(err))
}

func (env *PipelineTestEnviron) TestGenerateInvalidModuleNameFails() {
	m, err := Generate(env.fontBytes, Config{ModuleName: "not a package"})
	env.Require().Error(err)
	env.Nil(m)
	env.Equal(core.ECONFIG, core.Code(err))
}
