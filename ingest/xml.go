package ingest

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
)

// glyphElement is the element name carrying one record.
const glyphElement = "glyph"

// glyphFunc receives each glyph element's attributes and its line number.
type glyphFunc func(attrs Attributes, line int) error

// scanGlyphs streams r and calls fn for every glyph element in document order.
// Glyph elements may appear at any depth.
func scanGlyphs(r io.Reader, fn glyphFunc) error {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != glyphElement {
			continue
		}

		line, _ := dec.InputPos()
		attrs, err := readGlyph(dec, start)
		if err != nil {
			return err
		}
		if err := fn(attrs, line); err != nil {
			return err
		}
	}
}

// readGlyph collects the attributes of start and the text of its direct child
// elements, consuming tokens up to the matching end element. A child element
// overrides an attribute of the same name.
func readGlyph(dec *xml.Decoder, start xml.StartElement) (Attributes, error) {
	attrs := make(Attributes, len(start.Attr))
	for _, a := range start.Attr {
		attrs[a.Name.Local] = a.Value
	}

	var (
		depth int
		field string
		text  strings.Builder
	)
	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if depth == 1 {
				field = t.Name.Local
				text.Reset()
			}
		case xml.CharData:
			if depth >= 1 {
				text.Write(t)
			}
		case xml.EndElement:
			if depth == 0 {
				return attrs, nil
			}
			if depth == 1 {
				attrs[field] = strings.TrimSpace(text.String())
			}
			depth--
		}
	}
}

// charsetReader decodes sources that declare a non-UTF-8 encoding.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", label)
	}
	return enc.NewDecoder().Reader(input), nil
}
