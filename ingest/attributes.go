package ingest

import (
	"strconv"
	"strings"

	"github.com/hupe1980/glyphinfo/model"
)

// Attributes is the flat attribute set of one glyph element.
type Attributes map[string]string

// Attribute names recognized on a glyph element. Others are ignored.
const (
	AttrUnicode     = "unicode"
	AttrName        = "name"
	AttrCategory    = "category"
	AttrSubCategory = "subCategory"
	AttrCase        = "case"
	AttrScript      = "script"
	AttrDirection   = "direction"
	AttrDescription = "description"
	AttrProduction  = "production"
	AttrAltNames    = "altNames"
)

// ParseAttributes builds the record described by attrs and returns it with
// its glyph name.
//
// Vocabulary errors are returned as *model.ErrUnknownVocabularyValue and take
// precedence over *ErrInvalidRecord.
func ParseAttributes(attrs Attributes, opts Options) (string, model.Record, error) {
	var rec model.Record

	if v, ok := attrs[AttrUnicode]; ok {
		if cp, err := strconv.ParseUint(v, 16, 32); err == nil {
			rec.SetCodepoint(rune(cp))
		}
	}

	var err error
	if v, ok := attrs[AttrSubCategory]; ok {
		if rec.SubCategory, err = model.ParseSubCategory(v); err != nil {
			return "", model.Record{}, err
		}
	}
	if v, ok := attrs[AttrCase]; ok {
		if rec.Case, err = model.ParseCase(v); err != nil {
			return "", model.Record{}, err
		}
	}
	if v, ok := attrs[AttrScript]; ok {
		if rec.Script, err = model.ParseScript(v); err != nil {
			return "", model.Record{}, err
		}
	}
	if v, ok := attrs[AttrDirection]; ok {
		if rec.Direction, err = model.ParseDirection(v); err != nil {
			return "", model.Record{}, err
		}
	}

	name := attrs[AttrName]
	category, hasCategory := attrs[AttrCategory]
	if hasCategory {
		if rec.Category, err = model.ParseCategory(category); err != nil {
			return "", model.Record{}, err
		}
	}

	switch {
	case name == "":
		return "", model.Record{}, &ErrInvalidRecord{Reason: "missing name"}
	case !hasCategory:
		return "", model.Record{}, &ErrInvalidRecord{Name: name, Reason: "missing category"}
	}

	rec.Description = attrs[AttrDescription]
	if opts.RequireDescription && rec.Description == "" {
		return "", model.Record{}, &ErrInvalidRecord{Name: name, Reason: "missing description"}
	}

	rec.ProductionName = attrs[AttrProduction]
	rec.AltNames = splitAltNames(attrs[AttrAltNames])

	return name, rec, nil
}

func splitAltNames(s string) []string {
	if s == "" {
		return nil
	}
	var names []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}
