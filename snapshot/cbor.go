package snapshot

import (
	"github.com/fxamacker/cbor/v2"
	"github.com/hupe1980/glyphinfo/model"
	"github.com/hupe1980/glyphinfo/store"
)

// cborEntry is one entry of a FormatCBOR payload. It is encoded as a CBOR
// array, so field order is part of the format.
type cborEntry struct {
	_              struct{} `cbor:",toarray"`
	Name           string
	Category       uint8
	SubCategory    uint8
	Case           uint8
	Script         uint8
	Direction      uint8
	Unicode        *uint32
	Description    string
	ProductionName string
	AltNames       []string
}

var (
	cborEnc cbor.EncMode
	cborDec cbor.DecMode
)

func init() {
	var err error
	if cborEnc, err = (cbor.EncOptions{Sort: cbor.SortNone}).EncMode(); err != nil {
		panic(err)
	}
	if cborDec, err = (cbor.DecOptions{MaxArrayElements: 1 << 27}).DecMode(); err != nil {
		panic(err)
	}
}

func encodeCBOR(entries []store.Entry) ([]byte, error) {
	out := make([]cborEntry, len(entries))
	for i, e := range entries {
		r := &e.Record
		out[i] = cborEntry{
			Name:           e.Name,
			Category:       uint8(r.Category),
			SubCategory:    uint8(r.SubCategory),
			Case:           uint8(r.Case),
			Script:         uint8(r.Script),
			Direction:      uint8(r.Direction),
			Description:    r.Description,
			ProductionName: r.ProductionName,
			AltNames:       r.AltNames,
		}
		if r.HasUnicode {
			cp := uint32(r.Unicode)
			out[i].Unicode = &cp
		}
	}
	return cborEnc.Marshal(out)
}

func decodeCBOR(payload []byte) ([]store.Entry, error) {
	var in []cborEntry
	if err := cborDec.Unmarshal(payload, &in); err != nil {
		return nil, corrupt("cbor payload", err)
	}

	entries := make([]store.Entry, len(in))
	for i, c := range in {
		e := &entries[i]
		e.Name = c.Name
		e.Record = model.Record{
			Category:       model.Category(c.Category),
			SubCategory:    model.SubCategory(c.SubCategory),
			Case:           model.Case(c.Case),
			Script:         model.Script(c.Script),
			Direction:      model.Direction(c.Direction),
			Description:    c.Description,
			ProductionName: c.ProductionName,
		}
		if len(c.AltNames) > 0 {
			e.Record.AltNames = c.AltNames
		}
		if c.Unicode != nil {
			if *c.Unicode > 0x10FFFF || !e.Record.SetCodepoint(rune(*c.Unicode)) {
				return nil, corruptf("entry %d: invalid codepoint %#x", i, *c.Unicode)
			}
		}
		if err := validateEntry(uint64(i), e); err != nil {
			return nil, err
		}
	}
	return entries, nil
}
