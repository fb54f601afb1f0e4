package glyphinfo

import (
	"fmt"
	"io"

	"github.com/hupe1980/glyphinfo/codec"
	"github.com/hupe1980/glyphinfo/model"
)

// ExportRecord is the exported view of one record. Classification fields
// carry their canonical GlyphData spellings.
type ExportRecord struct {
	Name           string            `json:"name"`
	Unicode        string            `json:"unicode,omitempty"`
	Category       model.Category    `json:"category"`
	SubCategory    model.SubCategory `json:"subCategory,omitempty"`
	Case           model.Case        `json:"case,omitempty"`
	Script         model.Script      `json:"script,omitempty"`
	Direction      model.Direction   `json:"direction,omitempty"`
	Description    string            `json:"description,omitempty"`
	ProductionName string            `json:"production,omitempty"`
	AltNames       []string          `json:"altNames,omitempty"`
}

// NewExportRecord returns the exported view of e.
func NewExportRecord(e Entry) ExportRecord {
	out := ExportRecord{
		Name:           e.Name,
		Category:       e.Record.Category,
		SubCategory:    e.Record.SubCategory,
		Case:           e.Record.Case,
		Script:         e.Record.Script,
		Direction:      e.Record.Direction,
		Description:    e.Record.Description,
		ProductionName: e.Record.ProductionName,
		AltNames:       e.Record.AltNames,
	}
	if cp, ok := e.Record.Codepoint(); ok {
		out.Unicode = fmt.Sprintf("%04X", cp)
	}
	return out
}

// Export writes one record per line to w using c. Only records reachable by
// name are written, in ingestion order.
func (g *GlyphData) Export(w io.Writer, c codec.Codec) (int, error) {
	if c == nil {
		c = codec.Default
	}
	enc := c.NewEncoder(w)

	n := 0
	for name := range g.Names() {
		rec, _ := g.RecordForName(name)
		if err := enc.Encode(NewExportRecord(Entry{Name: name, Record: rec})); err != nil {
			return n, fmt.Errorf("export %s: %w", name, err)
		}
		n++
	}
	return n, nil
}
