package model

// Category is the mandatory top-level classification of a glyph.
type Category uint8

const (
	CategoryNone Category = iota
	CategoryLetter
	CategoryMark
	CategoryNumber
	CategoryOther
	CategoryPunctuation
	CategorySeparator
	CategorySymbol
)

var categories = newVocabulary[Category]("category", []string{
	"",
	"Letter",
	"Mark",
	"Number",
	"Other",
	"Punctuation",
	"Separator",
	"Symbol",
}, nil)

// ParseCategory parses the GlyphData spelling of a category.
func ParseCategory(s string) (Category, error) { return categories.parse(s) }

// String returns the canonical spelling, or "" for CategoryNone.
func (c Category) String() string { return categories.name(c) }

// Valid reports whether c is a known, non-absent category.
func (c Category) Valid() bool { return categories.valid(c) }

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error { return categories.unmarshal(c, text) }

// SubCategory refines a Category. No consistency between the two is enforced.
type SubCategory uint8

const (
	SubCategoryNone SubCategory = iota
	SubCategoryArrow
	SubCategoryCompatibility
	SubCategoryCurrency
	SubCategoryDash
	SubCategoryDecimalDigit
	SubCategoryEmoji
	SubCategoryEnclosing
	SubCategoryFormat
	SubCategoryFraction
	SubCategoryGeometry
	SubCategoryHalfform
	SubCategoryJamo
	SubCategoryLetter
	SubCategoryLigature
	SubCategoryMath
	SubCategoryMatra
	SubCategoryModifier
	SubCategoryNonspacing
	SubCategoryNumber
	SubCategoryParenthesis
	SubCategoryQuote
	SubCategoryRadical
	SubCategorySmall
	SubCategorySpace
	SubCategorySpacing
	SubCategorySpacingCombining
	SubCategorySuperscript
	SubCategorySyllable
)

var subCategories = newVocabulary("subCategory", []string{
	"",
	"Arrow",
	"Compatibility",
	"Currency",
	"Dash",
	"Decimal Digit",
	"Emoji",
	"Enclosing",
	"Format",
	"Fraction",
	"Geometry",
	"Halfform",
	"Jamo",
	"Letter",
	"Ligature",
	"Math",
	"Matra",
	"Modifier",
	"Nonspacing",
	"Number",
	"Parenthesis",
	"Quote",
	"Radical",
	"Small",
	"Space",
	"Spacing",
	"Spacing Combining",
	"Superscript",
	"Syllable",
}, map[string]SubCategory{
	"Decimal digit": SubCategoryDecimalDigit,
})

// ParseSubCategory parses the GlyphData spelling of a subcategory.
func ParseSubCategory(s string) (SubCategory, error) { return subCategories.parse(s) }

// String returns the canonical spelling, or "" for SubCategoryNone.
func (s SubCategory) String() string { return subCategories.name(s) }

// Valid reports whether s is a known, non-absent subcategory.
func (s SubCategory) Valid() bool { return subCategories.valid(s) }

// MarshalText implements encoding.TextMarshaler.
func (s SubCategory) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *SubCategory) UnmarshalText(text []byte) error { return subCategories.unmarshal(s, text) }

// Case is the letter case of a glyph.
type Case uint8

const (
	CaseNone Case = iota
	CaseLower
	CaseMinor
	CaseSmallCaps
	CaseUpper
)

var cases = newVocabulary[Case]("case", []string{
	"",
	"lower",
	"minor",
	"smallCaps",
	"upper",
}, nil)

// ParseCase parses the GlyphData spelling of a case.
func ParseCase(s string) (Case, error) { return cases.parse(s) }

// String returns the canonical spelling, or "" for CaseNone.
func (c Case) String() string { return cases.name(c) }

// Valid reports whether c is a known, non-absent case.
func (c Case) Valid() bool { return cases.valid(c) }

// MarshalText implements encoding.TextMarshaler.
func (c Case) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Case) UnmarshalText(text []byte) error { return cases.unmarshal(c, text) }
