package ot

// PostTable represents an OpenType post table, i.e. the table carrying
// PostScript information, most notably glyph names.
//
// See https://docs.microsoft.com/en-us/typography/opentype/spec/post
//
// Versions 1.0 and 2.0 of the table carry glyph names; versions 2.5 and 3.0
// do not (2.5 names cannot be resolved without the font program, 3.0 names
// are absent by definition). A font without resolvable glyph names is not an
// error; clients are expected to fall back to a substitute name.
type PostTable struct {
	tableBase
	Version   uint32
	nameIndex []uint16   // glyph name indexes, version 2.0 only
	names     binarySegm // Pascal string storage, version 2.0 only
}

func newPostTable(tag Tag, b binarySegm, offset, size uint32) *PostTable {
	t := &PostTable{}
	base := tableBase{
		data:   b,
		name:   tag,
		offset: offset,
		length: size,
	}
	t.tableBase = base
	t.self = t
	return t
}

// Version numbers for the post table as they appear in fonts, as 16.16
// fixed-point values.
const (
	postVersion10 uint32 = 0x00010000
	postVersion20 uint32 = 0x00020000
	postVersion25 uint32 = 0x00025000
	postVersion30 uint32 = 0x00030000
)

const postHeaderSize = 32

func parsePost(tag Tag, b binarySegm, offset, size uint32) (Table, error) {
	if postHeaderSize > b.Size() {
		return nil, errFontFormat("size of post table")
	}
	t := newPostTable(tag, b, offset, size)
	t.Version, _ = b.u32(0)
	tracer().Debugf("post table has version %x", t.Version)
	switch t.Version {
	case postVersion10, postVersion25, postVersion30:
		// version 1.0 needs no extra data; 2.5 and 3.0 carry no names
	case postVersion20:
		if err := parsePostNames(t, b); err != nil {
			return nil, err
		}
	default:
		return nil, errFontFormat("post table version")
	}
	return t, nil
}

// Version 2.0 appends a glyph-count, an index per glyph, and a run of Pascal
// strings to the standard header. An index below 258 selects a name from the
// standard Macintosh glyph order, an index of 258 or above selects Pascal
// string number index-258.
func parsePostNames(t *PostTable, b binarySegm) error {
	numGlyphs, err := b.u16(postHeaderSize)
	if err != nil {
		return errFontFormat("post table glyph count")
	}
	indexes, err := b.view(postHeaderSize+2, int(numGlyphs)*2)
	if err != nil {
		return errFontFormat("post table name index")
	}
	t.nameIndex = make([]uint16, numGlyphs)
	arr := viewArray16(indexes)
	for i := 0; i < int(numGlyphs); i++ {
		t.nameIndex[i] = arr.Get(i).U16(0)
	}
	t.names = b[postHeaderSize+2+int(numGlyphs)*2:]
	return nil
}

// GlyphName returns the PostScript name of a glyph, if the font carries one.
// The boolean return indicates whether a name could be resolved.
func (t *PostTable) GlyphName(gid GlyphIndex) (string, bool) {
	switch t.Version {
	case postVersion10:
		if int(gid) < len(macGlyphNames) {
			return macGlyphNames[gid], true
		}
	case postVersion20:
		if int(gid) >= len(t.nameIndex) {
			return "", false
		}
		inx := t.nameIndex[gid]
		if inx < 258 {
			return macGlyphNames[inx], true
		}
		return t.pascalString(int(inx) - 258)
	}
	return "", false
}

// pascalString walks the Pascal string storage to string number n.
// There is no index for the storage area, fonts expect readers to hop from
// length byte to length byte.
func (t *PostTable) pascalString(n int) (string, bool) {
	pos := 0
	for i := 0; pos < t.names.Size(); i++ {
		l := int(t.names[pos])
		if pos+1+l > t.names.Size() {
			return "", false
		}
		if i == n {
			return string(t.names[pos+1 : pos+1+l]), true
		}
		pos += 1 + l
	}
	return "", false
}
