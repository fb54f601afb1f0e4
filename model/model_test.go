package model

import (
	"encoding/json"
	"testing"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVocabulary(t *testing.T) {
	tests := []struct {
		name  string
		parse func(string) (uint8, error)
		input string
		want  uint8
	}{
		{"category", wrap(ParseCategory), "Number", uint8(CategoryNumber)},
		{"subcategory canonical", wrap(ParseSubCategory), "Decimal Digit", uint8(SubCategoryDecimalDigit)},
		{"subcategory alias", wrap(ParseSubCategory), "Decimal digit", uint8(SubCategoryDecimalDigit)},
		{"subcategory spacing combining", wrap(ParseSubCategory), "Spacing Combining", uint8(SubCategorySpacingCombining)},
		{"case camel", wrap(ParseCase), "smallCaps", uint8(CaseSmallCaps)},
		{"script lowercase", wrap(ParseScript), "khmer", uint8(ScriptKhmer)},
		{"script black letter", wrap(ParseScript), "Black Letter", uint8(ScriptBlackLetter)},
		{"script phaistos", wrap(ParseScript), "phaistosDisc", uint8(ScriptPhaistosDisc)},
		{"script spaced", wrap(ParseScript), "nyiakeng puachue hmong", uint8(ScriptNyiakengPuachueHmong)},
		{"direction", wrap(ParseDirection), "RTL", uint8(DirectionRTL)},
		{"direction vertical", wrap(ParseDirection), "TTB", uint8(DirectionTTB)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func wrap[T ~uint8](fn func(string) (T, error)) func(string) (uint8, error) {
	return func(s string) (uint8, error) {
		v, err := fn(s)
		return uint8(v), err
	}
}

func TestParseVocabulary_Unknown(t *testing.T) {
	tests := []struct {
		axis  string
		parse func(string) (uint8, error)
		input string
	}{
		{"category", wrap(ParseCategory), "letter"},
		{"subCategory", wrap(ParseSubCategory), "decimal digit"},
		{"case", wrap(ParseCase), "Upper"},
		{"script", wrap(ParseScript), "Khmer"},
		{"script", wrap(ParseScript), "black letter"},
		{"direction", wrap(ParseDirection), "ltr"},
		{"category", wrap(ParseCategory), ""},
	}

	for _, tt := range tests {
		t.Run(tt.axis+"/"+tt.input, func(t *testing.T) {
			_, err := tt.parse(tt.input)
			var uv *ErrUnknownVocabularyValue
			require.ErrorAs(t, err, &uv)
			assert.Equal(t, tt.axis, uv.Axis)
			assert.Equal(t, tt.input, uv.Value)
		})
	}
}

func TestVocabulary_RoundTripAllVariants(t *testing.T) {
	for s := ScriptAdlam; s <= ScriptYi; s++ {
		got, err := ParseScript(s.String())
		require.NoError(t, err, "script %d", s)
		assert.Equal(t, s, got)
	}
	for c := SubCategoryArrow; c <= SubCategorySyllable; c++ {
		got, err := ParseSubCategory(c.String())
		require.NoError(t, err, "subcategory %d", c)
		assert.Equal(t, c, got)
	}
	for c := CategoryLetter; c <= CategorySymbol; c++ {
		got, err := ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	assert.False(t, ScriptNone.Valid())
	assert.False(t, Script(ScriptYi+1).Valid())
	assert.Equal(t, "", Script(200).String())
}

func TestVocabulary_TextMarshaling(t *testing.T) {
	type view struct {
		Category    Category    `json:"category"`
		SubCategory SubCategory `json:"subCategory,omitempty"`
		Script      Script      `json:"script"`
	}

	b, err := json.Marshal(view{Category: CategoryNumber, SubCategory: SubCategoryDecimalDigit, Script: ScriptKhmer})
	require.NoError(t, err)
	assert.JSONEq(t, `{"category":"Number","subCategory":"Decimal Digit","script":"khmer"}`, string(b))

	var v view
	require.NoError(t, json.Unmarshal([]byte(`{"category":"Mark","subCategory":"Decimal digit","script":""}`), &v))
	assert.Equal(t, CategoryMark, v.Category)
	assert.Equal(t, SubCategoryDecimalDigit, v.SubCategory)
	assert.Equal(t, ScriptNone, v.Script)

	err = json.Unmarshal([]byte(`{"category":"Nope"}`), &v)
	var uv *ErrUnknownVocabularyValue
	assert.ErrorAs(t, err, &uv)
}

func TestScript_ISO15924(t *testing.T) {
	tag, ok := ScriptKhmer.ISO15924()
	require.True(t, ok)
	assert.Equal(t, language.LookupScript('៶'), tag)

	tag, ok = ScriptLatin.ISO15924()
	require.True(t, ok)
	assert.Equal(t, language.LookupScript('A'), tag)

	_, ok = ScriptMahjong.ISO15924()
	assert.False(t, ok)
	_, ok = ScriptNone.ISO15924()
	assert.False(t, ok)
}

func TestDirection_TextDirection(t *testing.T) {
	d, ok := DirectionRTL.TextDirection()
	assert.True(t, ok)
	assert.Equal(t, di.DirectionRTL, d)

	_, ok = DirectionNone.TextDirection()
	assert.False(t, ok)
}

func TestRecord_SetCodepoint(t *testing.T) {
	var r Record
	assert.False(t, r.SetCodepoint(0xD800))
	assert.False(t, r.SetCodepoint(0x110000))
	_, ok := r.Codepoint()
	assert.False(t, ok)

	assert.True(t, r.SetCodepoint(0x17F6))
	cp, ok := r.Codepoint()
	assert.True(t, ok)
	assert.Equal(t, rune(0x17F6), cp)
}
