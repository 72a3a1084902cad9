/*
Package otbuild assembles minimal OpenType fonts from scratch.

Fonts built by this package contain just enough tables to drive glyph
enumeration: a 'cmap' (format 4), a 'post' (version 2.0), a 'name' and a
'maxp' table. No outlines, no metrics. That makes them useless for
rendering, but ideal as fixtures: a test can map exactly the code-points
it wants, attach exactly the glyph names it wants, and know that nothing
else is in the font.
*/
package otbuild

import (
	"bytes"
	"encoding/binary"
	"sort"

	"golang.org/x/text/encoding/unicode"
)

// Builder collects code-point mappings and glyph names and serializes them
// as an OpenType font. The zero value is not usable; call New.
type Builder struct {
	glyphs    map[rune]uint16
	names     map[uint16]string
	fullName  string
	family    string
	numGlyphs uint16
	omitPost  bool
	omitCMap  bool
	postV3    bool
}

// New creates an empty font builder.
func New() *Builder {
	return &Builder{
		glyphs: make(map[rune]uint16),
		names:  make(map[uint16]string),
	}
}

// MapRune maps a code-point to a glyph. Code-points end up in the cmap in
// ascending order, each in a segment of its own. gid 0 is reserved for the
// missing-glyph and should not be mapped.
func (b *Builder) MapRune(r rune, gid uint16) *Builder {
	b.glyphs[r] = gid
	if gid >= b.numGlyphs {
		b.numGlyphs = gid + 1
	}
	return b
}

// NameGlyph attaches a PostScript name to a glyph. Glyphs without a name
// get the index of '.notdef'.
func (b *Builder) NameGlyph(gid uint16, name string) *Builder {
	b.names[gid] = name
	if gid >= b.numGlyphs {
		b.numGlyphs = gid + 1
	}
	return b
}

// FullName sets the full font name (name ID 4).
func (b *Builder) FullName(n string) *Builder {
	b.fullName = n
	return b
}

// Family sets the font family name (name ID 1).
func (b *Builder) Family(n string) *Builder {
	b.family = n
	return b
}

// OmitPost drops the post table from the output, leaving the font without
// glyph names.
func (b *Builder) OmitPost() *Builder {
	b.omitPost = true
	return b
}

// PostVersion3 emits a version 3.0 post table, which by definition carries
// no glyph names.
func (b *Builder) PostVersion3() *Builder {
	b.postV3 = true
	return b
}

// OmitCMap drops the cmap table, producing a font without a character map.
func (b *Builder) OmitCMap() *Builder {
	b.omitCMap = true
	return b
}

// Bytes serializes the font.
func (b *Builder) Bytes() []byte {
	type table struct {
		tag  string
		data []byte
	}
	tables := make([]table, 0, 4)
	if !b.omitCMap {
		tables = append(tables, table{"cmap", b.cmapTable()})
	}
	tables = append(tables, table{"maxp", b.maxpTable()})
	if b.fullName != "" || b.family != "" {
		tables = append(tables, table{"name", b.nameTable()})
	}
	if !b.omitPost {
		tables = append(tables, table{"post", b.postTable()})
	}
	sort.Slice(tables, func(i, j int) bool { return tables[i].tag < tables[j].tag })

	// Offset table, then one 16-byte record per table, sorted by tag,
	// then the table data, each table aligned to 4 bytes.
	out := &bytes.Buffer{}
	w16 := func(v uint16) { binary.Write(out, binary.BigEndian, v) }
	w32 := func(v uint32) { binary.Write(out, binary.BigEndian, v) }
	w32(0x00010000) // sfnt version: TrueType outlines (we have none, nobody checks)
	w16(uint16(len(tables)))
	w16(0) // searchRange
	w16(0) // entrySelector
	w16(0) // rangeShift
	offset := 12 + 16*len(tables)
	for _, t := range tables {
		out.WriteString(t.tag)
		w32(0) // checksum, not verified by readers we care about
		w32(uint32(offset))
		w32(uint32(len(t.data)))
		offset += (len(t.data) + 3) &^ 3
	}
	for _, t := range tables {
		out.Write(t.data)
		for pad := (4 - len(t.data)&3) & 3; pad > 0; pad-- {
			out.WriteByte(0)
		}
	}
	return out.Bytes()
}

// cmapTable builds a cmap with a single (3,1) format 4 subtable. Every
// mapped code-point gets a segment of its own, with a delta pointing at
// its glyph; the mandatory 0xFFFF sentinel segment closes the list.
func (b *Builder) cmapTable() []byte {
	runes := make([]rune, 0, len(b.glyphs))
	for r := range b.glyphs {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })

	sub := &bytes.Buffer{}
	w16 := func(v uint16) { binary.Write(sub, binary.BigEndian, v) }
	segCount := len(runes) + 1 // plus sentinel
	length := 14 + 8*segCount + 2
	w16(4) // format
	w16(uint16(length))
	w16(0) // language
	w16(uint16(segCount * 2))
	w16(0) // searchRange
	w16(0) // entrySelector
	w16(0) // rangeShift
	for _, r := range runes { // endCode[]
		w16(uint16(r))
	}
	w16(0xffff)
	w16(0) // reservedPad
	for _, r := range runes { // startCode[]
		w16(uint16(r))
	}
	w16(0xffff)
	for _, r := range runes { // idDelta[]
		w16(b.glyphs[r] - uint16(r))
	}
	w16(1)
	for range runes { // idRangeOffset[]
		w16(0)
	}
	w16(0)

	out := &bytes.Buffer{}
	binary.Write(out, binary.BigEndian, uint16(0)) // version
	binary.Write(out, binary.BigEndian, uint16(1)) // one encoding record
	binary.Write(out, binary.BigEndian, uint16(3)) // platform: Windows
	binary.Write(out, binary.BigEndian, uint16(1)) // encoding: Unicode BMP
	binary.Write(out, binary.BigEndian, uint32(12))
	out.Write(sub.Bytes())
	return out.Bytes()
}

func (b *Builder) maxpTable() []byte {
	out := &bytes.Buffer{}
	binary.Write(out, binary.BigEndian, uint32(0x00005000)) // version 0.5
	binary.Write(out, binary.BigEndian, b.numGlyphs)
	binary.Write(out, binary.BigEndian, uint16(0)) // padding
	return out.Bytes()
}

// postTable builds a version 2.0 post table. Named glyphs reference Pascal
// strings (indexes 258 and up). Glyphs without a name get an empty Pascal
// string, except glyph 0, which stays '.notdef'.
func (b *Builder) postTable() []byte {
	out := &bytes.Buffer{}
	if b.postV3 {
		binary.Write(out, binary.BigEndian, uint32(0x00030000))
		out.Write(make([]byte, 28))
		return out.Bytes()
	}
	binary.Write(out, binary.BigEndian, uint32(0x00020000))
	out.Write(make([]byte, 28)) // italic angle, underline, memory usage: all zero
	binary.Write(out, binary.BigEndian, b.numGlyphs)
	next := uint16(258)
	strings := &bytes.Buffer{}
	for gid := uint16(0); gid < b.numGlyphs; gid++ {
		name, ok := b.names[gid]
		if !ok && gid == 0 {
			binary.Write(out, binary.BigEndian, uint16(0))
			continue
		}
		binary.Write(out, binary.BigEndian, next)
		next++
		strings.WriteByte(byte(len(name)))
		strings.WriteString(name)
	}
	out.Write(strings.Bytes())
	return out.Bytes()
}

func (b *Builder) nameTable() []byte {
	type rec struct {
		id  uint16
		val string
	}
	recs := make([]rec, 0, 2)
	if b.family != "" {
		recs = append(recs, rec{1, b.family})
	}
	if b.fullName != "" {
		recs = append(recs, rec{4, b.fullName})
	}
	utf16be := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	out := &bytes.Buffer{}
	w16 := func(v uint16) { binary.Write(out, binary.BigEndian, v) }
	w16(0) // format
	w16(uint16(len(recs)))
	w16(uint16(6 + 12*len(recs))) // storage offset
	storage := &bytes.Buffer{}
	for _, r := range recs {
		encoded, _ := utf16be.NewEncoder().Bytes([]byte(r.val))
		w16(3)      // platform: Windows
		w16(1)      // encoding: Unicode BMP
		w16(0x0409) // language: en-US
		w16(r.id)
		w16(uint16(len(encoded)))
		w16(uint16(storage.Len()))
		storage.Write(encoded)
	}
	out.Write(storage.Bytes())
	return out.Bytes()
}
