package ot

import (
	"golang.org/x/text/encoding/unicode"
)

// NameTable represents an OpenType name table, i.e. the naming table with
// human-readable strings for font name, family, version, and so on.
//
// See https://docs.microsoft.com/en-us/typography/opentype/spec/name
type NameTable struct {
	tableBase
	records []nameRecord
	storage binarySegm
}

func newNameTable(tag Tag, b binarySegm, offset, size uint32) *NameTable {
	t := &NameTable{}
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

// Name IDs we care about, from the spec's pre-defined set.
const (
	NameFamily     = 1 // font family name
	NameSubfamily  = 2 // font subfamily (style) name
	NameFull       = 4 // full font name
	NameVersion    = 5 // version string
	NamePostScript = 6 // PostScript name
)

type nameRecord struct {
	platformId uint16
	encodingId uint16
	languageId uint16
	nameId     uint16
	length     uint16
	offset     uint16
}

func parseName(tag Tag, b binarySegm, offset, size uint32) (Table, error) {
	const headerSize, recordSize = 6, 12
	if headerSize > b.Size() {
		return nil, errFontFormat("size of name table")
	}
	count, _ := b.u16(2)
	storage, _ := b.u16(4)
	if headerSize+recordSize*int(count) > b.Size() || int(storage) > b.Size() {
		return nil, errFontFormat("name table record count")
	}
	t := newNameTable(tag, b, offset, size)
	t.storage = b[storage:]
	recs := viewArray(b[headerSize:headerSize+recordSize*int(count)], recordSize)
	t.records = make([]nameRecord, count)
	for i := range t.records {
		r := recs.Get(i)
		t.records[i] = nameRecord{
			platformId: r.U16(0),
			encodingId: r.U16(2),
			languageId: r.U16(4),
			nameId:     r.U16(6),
			length:     r.U16(8),
			offset:     r.U16(10),
		}
	}
	return t, nil
}

// Entry returns the string for a given name ID, or "" if the font does not
// carry one we can decode. Unicode and Windows platform entries are stored
// as UTF-16BE; for the Windows platform we prefer US English. Macintosh
// entries are accepted as a last resort and treated as ASCII.
func (t *NameTable) Entry(nameID int) string {
	best, bestRank := -1, 0
	for i, r := range t.records {
		if int(r.nameId) != nameID {
			continue
		}
		rank := 0
		switch {
		case r.platformId == 3 && (r.encodingId == 1 || r.encodingId == 10):
			rank = 3
			if r.languageId == 0x0409 { // en-US
				rank = 4
			}
		case r.platformId == 0:
			rank = 2
		case r.platformId == 1 && r.encodingId == 0:
			rank = 1
		}
		if rank > bestRank {
			best, bestRank = i, rank
		}
	}
	if best < 0 {
		return ""
	}
	r := t.records[best]
	raw, err := t.storage.view(int(r.offset), int(r.length))
	if err != nil {
		return ""
	}
	if r.platformId == 1 {
		return string(raw)
	}
	utf16be := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	decoded, err := utf16be.NewDecoder().Bytes(raw)
	if err != nil {
		tracer().Infof("name table entry %d is not valid UTF-16", nameID)
		return ""
	}
	return string(decoded)
}
