package ingest

import (
	"testing"

	"github.com/hupe1980/glyphinfo/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func khmerAttrs() Attributes {
	return Attributes{
		AttrName:        "lekattakpramMuoy-khmer",
		AttrUnicode:     "17F6",
		AttrCategory:    "Number",
		AttrSubCategory: "Decimal Digit",
		AttrScript:      "khmer",
		AttrProduction:  "uni17F6",
		AttrAltNames:    "pramMuoyLekattak-khmer",
		AttrDescription: "KHMER SYMBOL LEK ATTAK PRAM-MUOY",
	}
}

func TestParseAttributes(t *testing.T) {
	name, rec, err := ParseAttributes(khmerAttrs(), Options{})
	require.NoError(t, err)

	assert.Equal(t, "lekattakpramMuoy-khmer", name)
	assert.Equal(t, model.Record{
		Unicode:        0x17F6,
		HasUnicode:     true,
		Category:       model.CategoryNumber,
		SubCategory:    model.SubCategoryDecimalDigit,
		Script:         model.ScriptKhmer,
		Description:    "KHMER SYMBOL LEK ATTAK PRAM-MUOY",
		ProductionName: "uni17F6",
		AltNames:       []string{"pramMuoyLekattak-khmer"},
	}, rec)
}

func TestParseAttributes_Unicode(t *testing.T) {
	tests := []struct {
		value string
		want  rune
		ok    bool
	}{
		{"0041", 'A', true},
		{"1F600", 0x1F600, true},
		{"10FFFF", 0x10FFFF, true},
		{"0000", 0, true},
		{"D800", 0, false},
		{"110000", 0, false},
		{"FFFFFFFFF", 0, false},
		{"zz", 0, false},
		{"", 0, false},
		{"0x41", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			attrs := Attributes{AttrName: "g", AttrCategory: "Letter", AttrUnicode: tt.value}
			_, rec, err := ParseAttributes(attrs, Options{})
			require.NoError(t, err, "a bad codepoint never rejects the record")
			cp, ok := rec.Codepoint()
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, cp)
			}
		})
	}
}

func TestParseAttributes_AltNames(t *testing.T) {
	tests := []struct {
		value string
		want  []string
	}{
		{"a", []string{"a"}},
		{"a, b ,c", []string{"a", "b", "c"}},
		{" , a,,b, ", []string{"a", "b"}},
		{"b,a,b", []string{"b", "a", "b"}},
		{"", nil},
		{" , ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			attrs := Attributes{AttrName: "g", AttrCategory: "Letter", AttrAltNames: tt.value}
			_, rec, err := ParseAttributes(attrs, Options{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, rec.AltNames)
		})
	}
}

func TestParseAttributes_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		attrs  Attributes
		opts   Options
		reason string
	}{
		{"missing name", Attributes{AttrCategory: "Letter"}, Options{}, "missing name"},
		{"empty name", Attributes{AttrName: "", AttrCategory: "Letter"}, Options{}, "missing name"},
		{"missing category", Attributes{AttrName: "g"}, Options{}, "missing category"},
		{"missing description", Attributes{AttrName: "g", AttrCategory: "Letter"}, Options{RequireDescription: true}, "missing description"},
		{"empty description", Attributes{AttrName: "g", AttrCategory: "Letter", AttrDescription: ""}, Options{RequireDescription: true}, "missing description"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseAttributes(tt.attrs, tt.opts)
			var invalid *ErrInvalidRecord
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.reason, invalid.Reason)
		})
	}
}

func TestParseAttributes_DescriptionOptional(t *testing.T) {
	_, rec, err := ParseAttributes(Attributes{AttrName: "g", AttrCategory: "Letter"}, Options{})
	require.NoError(t, err)
	assert.Empty(t, rec.Description)
}

func TestParseAttributes_UnknownVocabulary(t *testing.T) {
	tests := []struct {
		attr string
		axis string
	}{
		{AttrCategory, "category"},
		{AttrSubCategory, "subCategory"},
		{AttrCase, "case"},
		{AttrScript, "script"},
		{AttrDirection, "direction"},
	}

	for _, tt := range tests {
		t.Run(tt.attr, func(t *testing.T) {
			attrs := khmerAttrs()
			attrs[tt.attr] = "Klingon"
			_, _, err := ParseAttributes(attrs, Options{})
			var uv *model.ErrUnknownVocabularyValue
			require.ErrorAs(t, err, &uv)
			assert.Equal(t, tt.axis, uv.Axis)
			assert.Equal(t, "Klingon", uv.Value)
		})
	}

	// Vocabulary errors win over shape errors.
	_, _, err := ParseAttributes(Attributes{AttrScript: "Klingon"}, Options{})
	var uv *model.ErrUnknownVocabularyValue
	assert.ErrorAs(t, err, &uv)
}

func TestParseAttributes_IgnoresUnknownAttributes(t *testing.T) {
	attrs := khmerAttrs()
	attrs["anchors"] = "top,bottom"
	attrs["sortName"] = "whatever"

	name, _, err := ParseAttributes(attrs, Options{})
	require.NoError(t, err)
	assert.Equal(t, "lekattakpramMuoy-khmer", name)
}
