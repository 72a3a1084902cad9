package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/derekparker/trie"
	"github.com/flopp/go-findfont"
	"github.com/iconogen/iconogen/core"
	"github.com/iconogen/iconogen/core/font"
	"github.com/iconogen/iconogen/gen"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'iconogen.gen'
func tracer() tracing.Trace {
	return tracing.Select("iconogen.gen")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":      "go",
		"trace.iconogen.fonts": "Info",
		"trace.iconogen.gen":   "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "", "Icon font(s) to process, comma-separated (file paths or installed font names)")
	outdir := flag.String("out", ".", "Directory to write generated packages into")
	module := flag.String("module", "", "Name of the generated package (default: derived from font family)")
	family := flag.String("fontname", "", "Font family the accessors select (default: from the font)")
	doclink := flag.String("doclink", "", "Base URL for per-icon doc links")
	shaping := flag.String("shaping", "basic", "Shaping mode baked into accessors [basic|advanced]")
	advanced := flag.Bool("advanced", false, "Also emit the advancedtext sub-package with raw accessors")
	demo := flag.Bool("demo", false, "Print the surviving accessor names instead of writing files")
	list := flag.String("list", "", "Print accessor names with the given prefix instead of writing files")
	flag.Parse()
	setTraceLevel(*tlevel)
	pterm.Info.Println("icon accessor generator")
	if *fontname == "" {
		pterm.Error.Println("no font given, use -font")
		os.Exit(2)
	}
	// each font is an independent generation pass; resolved fonts are
	// cached in the global registry so a name appearing twice in a batch
	// is loaded once
	for _, name := range strings.Split(*fontname, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		f, err := resolveFont(name)
		if err != nil {
			tracer().Errorf(err.Error())
			pterm.Error.Printfln("cannot load font %q: %v", name, err)
			os.Exit(3)
		}
		pterm.Printfln("font: %s", f.Fontname)
		m, err := gen.Generate(f.Binary, gen.Config{
			ModuleName: *module,
			FontName:   *family,
			DocLink:    *doclink,
			Shaping:    *shaping,
			Advanced:   *advanced,
		})
		if err != nil {
			core.UserError(err)
			pterm.Error.Printfln("generation for font %q failed", f.Fontname)
			os.Exit(4)
		}
		pterm.Printfln("%d icons, %d duplicate names dropped", m.Count, len(m.Dropped))
		switch {
		case *list != "":
			listAccessors(m, *list)
		case *demo:
			printDemo(m)
		default:
			if err := writeModule(m, *outdir); err != nil {
				core.UserError(err)
				os.Exit(5)
			}
			pterm.Info.Printfln("package %s written to %s", m.Name, *outdir)
		}
	}
	font.GlobalRegistry().DebugList()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func setTraceLevel(level string) {
	l := tracing.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		l = tracing.LevelDebug
	case "error":
		l = tracing.LevelError
	}
	tracing.Select("iconogen.fonts").SetTraceLevel(l)
	tracing.Select("iconogen.gen").SetTraceLevel(l)
}

// resolveFont loads a font from a file path, or, if the argument is not a
// file, asks the system font directories for a matching font file. Loaded
// fonts land in the global registry, which is consulted first.
func resolveFont(name string) (*font.IconFont, error) {
	registry := font.GlobalRegistry()
	if f := registry.Font(name); f != nil {
		tracer().Infof("font %q already loaded", name)
		return f, nil
	}
	path := name
	if _, err := os.Stat(name); err != nil {
		path, err = findfont.Find(name)
		if err != nil {
			return nil, err
		}
		tracer().Infof("found font file %s", path)
	}
	f, err := font.LoadIconFont(path)
	if err != nil {
		return nil, err
	}
	registry.StoreFont(f)
	return f, nil
}

// writeModule writes the rendered source files below dir.
func writeModule(m *gen.Module, dir string) error {
	files, err := m.Render()
	if err != nil {
		return err
	}
	for _, f := range files {
		target := filepath.Join(dir, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return core.WrapError(err, core.EINTERNAL, "cannot create output directory")
		}
		if err := os.WriteFile(target, f.Content, 0644); err != nil {
			return core.WrapError(err, core.EINTERNAL, "cannot write %s", target)
		}
		tracer().Infof("wrote %s (%d bytes)", target, len(f.Content))
	}
	return nil
}

// printDemo prints the surviving accessor names in rows, a quick way to
// eyeball what a font will provide.
func printDemo(m *gen.Module) {
	const columns = 4
	row := make([]string, 0, columns)
	for _, e := range m.Entries {
		row = append(row, fmt.Sprintf("%-24s", e.Name))
		if len(row) == columns {
			pterm.Println(strings.Join(row, " "))
			row = row[:0]
		}
	}
	if len(row) > 0 {
		pterm.Println(strings.Join(row, " "))
	}
	if len(m.Dropped) > 0 {
		pterm.Printfln("dropped duplicates: %s", strings.Join(m.Dropped, ", "))
	}
}

// listAccessors prints the accessor names matching a prefix.
func listAccessors(m *gen.Module, prefix string) {
	index := trie.New()
	for _, e := range m.Entries {
		index.Add(e.Name, e.Codepoint)
	}
	matches := index.PrefixSearch(prefix)
	if len(matches) == 0 {
		pterm.Printfln("no accessors with prefix %q", prefix)
		return
	}
	for _, name := range matches {
		node, _ := index.Find(name)
		pterm.Printfln("%-24s %#U", name, node.Meta().(rune))
	}
}
