package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/hupe1980/glyphinfo/model"
	"github.com/hupe1980/glyphinfo/store"
)

// Presence flags of the optional record fields.
const (
	hasUnicode uint8 = 1 << iota
	hasDescription
	hasProductionName
	hasAltNames

	knownFlags = hasUnicode | hasDescription | hasProductionName | hasAltNames
)

// minEntrySize is the encoding size of an entry with a one-byte name and no
// optional fields: name length, name, flags and five classification bytes.
const minEntrySize = 1 + 1 + 1 + 5

// encodeBinary writes the binary payload:
//
//	Count uvarint
//	Entries...
//	  Name         string
//	  Flags        1 byte
//	  Category     1 byte
//	  SubCategory  1 byte
//	  Case         1 byte
//	  Script       1 byte
//	  Direction    1 byte
//	  Unicode      uvarint  if hasUnicode
//	  Description  string   if hasDescription
//	  Production   string   if hasProductionName
//	  AltNames     uvarint count, strings  if hasAltNames
//
// Strings are a uvarint byte length followed by the bytes.
func encodeBinary(entries []store.Entry) []byte {
	pb := newPayloadBuffer(make([]byte, 0, 16+len(entries)*48))
	pb.writeUvarint(uint64(len(entries)))

	for _, e := range entries {
		r := &e.Record

		var flags uint8
		if r.HasUnicode {
			flags |= hasUnicode
		}
		if r.Description != "" {
			flags |= hasDescription
		}
		if r.ProductionName != "" {
			flags |= hasProductionName
		}
		if len(r.AltNames) > 0 {
			flags |= hasAltNames
		}

		pb.writeString(e.Name)
		pb.writeByte(flags)
		pb.writeByte(uint8(r.Category))
		pb.writeByte(uint8(r.SubCategory))
		pb.writeByte(uint8(r.Case))
		pb.writeByte(uint8(r.Script))
		pb.writeByte(uint8(r.Direction))

		if flags&hasUnicode != 0 {
			pb.writeUvarint(uint64(r.Unicode))
		}
		if flags&hasDescription != 0 {
			pb.writeString(r.Description)
		}
		if flags&hasProductionName != 0 {
			pb.writeString(r.ProductionName)
		}
		if flags&hasAltNames != 0 {
			pb.writeUvarint(uint64(len(r.AltNames)))
			for _, alt := range r.AltNames {
				pb.writeString(alt)
			}
		}
	}
	return pb.buf
}

// decodeBinary parses a payload written by encodeBinary.
func decodeBinary(payload []byte) ([]store.Entry, error) {
	pb := newPayloadBuffer(payload)

	count := pb.readUvarint()
	if pb.err == nil && count > uint64(len(payload)/minEntrySize) {
		return nil, corruptf("entry count %d exceeds payload", count)
	}
	entries := make([]store.Entry, 0, count)

	for i := uint64(0); i < count && pb.err == nil; i++ {
		var e store.Entry
		r := &e.Record

		e.Name = pb.readString()
		flags := pb.readByte()
		r.Category = model.Category(pb.readByte())
		r.SubCategory = model.SubCategory(pb.readByte())
		r.Case = model.Case(pb.readByte())
		r.Script = model.Script(pb.readByte())
		r.Direction = model.Direction(pb.readByte())
		if pb.err != nil {
			break
		}
		if flags&^knownFlags != 0 {
			return nil, corruptf("entry %d: unknown flags %#x", i, flags)
		}

		if flags&hasUnicode != 0 {
			cp := pb.readUvarint()
			if pb.err == nil && (cp > 0x10FFFF || !r.SetCodepoint(rune(cp))) {
				return nil, corruptf("entry %d: invalid codepoint %#x", i, cp)
			}
		}
		if flags&hasDescription != 0 {
			r.Description = pb.readString()
		}
		if flags&hasProductionName != 0 {
			r.ProductionName = pb.readString()
		}
		if flags&hasAltNames != 0 {
			n := pb.readUvarint()
			if pb.err == nil && (n == 0 || n > uint64(pb.remaining())) {
				return nil, corruptf("entry %d: invalid alternative name count %d", i, n)
			}
			r.AltNames = make([]string, 0, n)
			for j := uint64(0); j < n && pb.err == nil; j++ {
				r.AltNames = append(r.AltNames, pb.readString())
			}
		}
		if pb.err != nil {
			break
		}

		if err := validateEntry(i, &e); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if pb.err != nil {
		return nil, corrupt("binary payload", pb.err)
	}
	if pb.remaining() != 0 {
		return nil, corruptf("%d trailing bytes", pb.remaining())
	}
	return entries, nil
}

// validateEntry checks the invariants every decoded entry must satisfy.
func validateEntry(i uint64, e *store.Entry) error {
	if err := checkEntry(e); err != nil {
		return corruptf("entry %d: %v", i, err)
	}
	return nil
}

// checkEntry reports why e cannot be part of a snapshot.
func checkEntry(e *store.Entry) error {
	r := &e.Record
	switch {
	case e.Name == "":
		return errors.New("empty name")
	case !r.Category.Valid():
		return fmt.Errorf("invalid category %d", r.Category)
	case r.SubCategory != model.SubCategoryNone && !r.SubCategory.Valid():
		return fmt.Errorf("invalid subcategory %d", r.SubCategory)
	case r.Case != model.CaseNone && !r.Case.Valid():
		return fmt.Errorf("invalid case %d", r.Case)
	case r.Script != model.ScriptNone && !r.Script.Valid():
		return fmt.Errorf("invalid script %d", r.Script)
	case r.Direction != model.DirectionNone && !r.Direction.Valid():
		return fmt.Errorf("invalid direction %d", r.Direction)
	case r.HasUnicode && !utf8.ValidRune(r.Unicode):
		return fmt.Errorf("invalid codepoint %#x", r.Unicode)
	}
	return nil
}

// payloadBuffer appends and consumes payload fields. The first read error
// sticks and turns every later call into a no-op.
type payloadBuffer struct {
	buf []byte
	pos int
	err error
}

func newPayloadBuffer(b []byte) *payloadBuffer {
	return &payloadBuffer{buf: b}
}

func (p *payloadBuffer) remaining() int {
	return len(p.buf) - p.pos
}

func (p *payloadBuffer) writeByte(v uint8) {
	p.buf = append(p.buf, v)
}

func (p *payloadBuffer) writeUvarint(v uint64) {
	p.buf = binary.AppendUvarint(p.buf, v)
}

func (p *payloadBuffer) writeString(s string) {
	p.writeUvarint(uint64(len(s)))
	p.buf = append(p.buf, s...)
}

func (p *payloadBuffer) readByte() uint8 {
	if p.err != nil {
		return 0
	}
	if p.pos >= len(p.buf) {
		p.err = io.ErrUnexpectedEOF
		return 0
	}
	v := p.buf[p.pos]
	p.pos++
	return v
}

func (p *payloadBuffer) readUvarint() uint64 {
	if p.err != nil {
		return 0
	}
	v, n := binary.Uvarint(p.buf[p.pos:])
	if n <= 0 {
		p.err = io.ErrUnexpectedEOF
		return 0
	}
	p.pos += n
	return v
}

func (p *payloadBuffer) readString() string {
	l := p.readUvarint()
	if p.err != nil {
		return ""
	}
	if l > uint64(p.remaining()) {
		p.err = io.ErrUnexpectedEOF
		return ""
	}
	s := string(p.buf[p.pos : p.pos+int(l)])
	p.pos += int(l)
	return s
}
