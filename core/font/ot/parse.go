package ot

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Code comments often cite passages from the OpenType specification
// version 1.8.4;
// see https://docs.microsoft.com/en-us/typography/opentype/spec/.

// Parse parses an OpenType font from a byte slice.
// An ot.Font needs ongoing access to the font's byte-data after the Parse
// function returns. Its elements are assumed immutable while the ot.Font
// remains in use.
//
// Parse returns an error with core.Code EINVALID if the bytes do not form
// a valid font container, and an error with core.Code EMISSING if the font
// carries no supported Unicode character map.
func Parse(font []byte) (*Font, error) {
	// https://www.microsoft.com/typography/otspec/otff.htm: Offset Table is 12 bytes.
	r := bytes.NewReader(font)
	h := FontHeader{}
	if err := binary.Read(r, binary.BigEndian, &h); err != nil {
		return nil, errFontFormat("font header")
	}
	tracer().Debugf("header = %v, tag = %x|%s", h, h.FontType, Tag(h.FontType).String())
	if !(h.FontType == 0x4f54544f || // OTTO
		h.FontType == 0x00010000 || // TrueType
		h.FontType == 0x74727565) { // true
		return nil, errFontFormat(fmt.Sprintf("font type not supported: %x", h.FontType))
	}
	otf := &Font{Header: &h, tables: make(map[Tag]Table)}
	src := binarySegm(font)
	// "The Offset Table is followed immediately by the Table Record entries …
	// sorted in ascending order by tag", 16 bytes each.
	buf, err := src.view(12, 16*int(h.TableCount))
	if err != nil {
		return nil, errFontFormat("table record entries")
	}
	for b, prevTag := buf, Tag(0); len(b) > 0; b = b[16:] {
		tag := MakeTag(b)
		if tag < prevTag {
			return nil, errFontFormat("table order")
		}
		prevTag = tag
		off, size := u32(b[8:12]), u32(b[12:16])
		if off&3 != 0 { // ignore checksums, but "all tables must begin on four byte boundries".
			return nil, errFontFormat("invalid table offset")
		}
		if uint64(off)+uint64(size) > uint64(len(src)) {
			return nil, errFontFormat("table bounds overflow")
		}
		otf.tables[tag], err = parseTable(tag, src[off:off+size], off, size)
		if err != nil {
			return nil, err
		}
	}
	if err := extractTableInfo(otf); err != nil {
		return nil, err
	}
	return otf, nil
}

// Consistency check and shortcuts to the tables we interpret. The only
// table a font absolutely must have for glyph enumeration is 'cmap';
// 'post', 'name' and 'maxp' are tolerated to be absent.
func extractTableInfo(otf *Font) error {
	c := otf.tables[T("cmap")]
	if c == nil {
		return errNoCharacterMap("font has no cmap table")
	}
	otf.CMap = c.Self().AsCMap()
	if p := otf.tables[T("post")]; p != nil {
		otf.Post = p.Self().AsPost()
	}
	if n := otf.tables[T("name")]; n != nil {
		otf.Names = n.Self().AsName()
	}
	if m := otf.tables[T("maxp")]; m != nil {
		if maxp := m.Self().AsMaxP(); maxp != nil {
			otf.NumGlyphs = maxp.NumGlyphs
		}
	}
	return nil
}

func parseTable(t Tag, b binarySegm, offset, size uint32) (Table, error) {
	switch t {
	case T("cmap"):
		return parseCMap(t, b, offset, size)
	case T("post"):
		return parsePost(t, b, offset, size)
	case T("name"):
		return parseName(t, b, offset, size)
	case T("maxp"):
		return parseMaxP(t, b, offset, size)
	}
	tracer().Debugf("font contains table (%s), will not be interpreted", t)
	return newTable(t, b, offset, size), nil
}

// --- MaxP table ------------------------------------------------------------

// This table establishes the memory requirements for this font. Fonts with
// CFF data must use Version 0.5 of this table, specifying only the numGlyphs
// field. Fonts with TrueType outlines must use Version 1.0 of this table,
// where all data is required.
func parseMaxP(tag Tag, b binarySegm, offset, size uint32) (Table, error) {
	if size <= 6 {
		return nil, nil
	}
	t := newMaxPTable(tag, b, offset, size)
	n, _ := b.u16(4)
	t.NumGlyphs = int(n)
	return t, nil
}
