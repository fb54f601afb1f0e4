package model

import "github.com/go-text/typesetting/language"

// Script is the writing system a glyph belongs to.
type Script uint8

const (
	ScriptNone Script = iota
	ScriptAdlam
	ScriptAlchemical
	ScriptArabic
	ScriptArmenian
	ScriptAvestan
	ScriptBalinese
	ScriptBamum
	ScriptBatak
	ScriptBengali
	ScriptBlackLetter
	ScriptBopomofo
	ScriptBraille
	ScriptBuginese
	ScriptCanadian
	ScriptChakma
	ScriptCham
	ScriptCherokee
	ScriptChorasmian
	ScriptCyrillic
	ScriptDentistry
	ScriptDeseret
	ScriptDevanagari
	ScriptDivesakuru
	ScriptElbasan
	ScriptElymaic
	ScriptEthiopic
	ScriptGeorgian
	ScriptGlagolitic
	ScriptGothic
	ScriptGreek
	ScriptGujarati
	ScriptGurmukhi
	ScriptHan
	ScriptHangul
	ScriptHebrew
	ScriptJavanese
	ScriptKana
	ScriptKannada
	ScriptKayahli
	ScriptKhmer
	ScriptKhojki
	ScriptLao
	ScriptLatin
	ScriptLepcha
	ScriptLue
	ScriptMahjong
	ScriptMalayalam
	ScriptMandaic
	ScriptMath
	ScriptMongolian
	ScriptMusical
	ScriptMyanmar
	ScriptNko
	ScriptNyiakengPuachueHmong
	ScriptOriya
	ScriptOsage
	ScriptOsmanya
	ScriptPahawhHmong
	ScriptPhaistosDisc
	ScriptRovas
	ScriptRunic
	ScriptSamaritan
	ScriptShavian
	ScriptSinhala
	ScriptSyriac
	ScriptTamil
	ScriptTelugu
	ScriptThaana
	ScriptThai
	ScriptTham
	ScriptTibet
	ScriptTifinagh
	ScriptYi
)

type scriptInfo struct {
	name string
	iso  string // ISO 15924 code, empty for symbol sets
}

var scriptTable = []scriptInfo{
	{"", ""},
	{"adlam", "adlm"},
	{"alchemical", ""},
	{"arabic", "arab"},
	{"armenian", "armn"},
	{"avestan", "avst"},
	{"balinese", "bali"},
	{"bamum", "bamu"},
	{"batak", "batk"},
	{"bengali", "beng"},
	{"Black Letter", ""},
	{"bopomofo", "bopo"},
	{"braille", "brai"},
	{"buginese", "bugi"},
	{"canadian", "cans"},
	{"chakma", "cakm"},
	{"cham", "cham"},
	{"cherokee", "cher"},
	{"chorasmian", "chrs"},
	{"cyrillic", "cyrl"},
	{"dentistry", ""},
	{"deseret", "dsrt"},
	{"devanagari", "deva"},
	{"divesakuru", "diak"},
	{"elbasan", "elba"},
	{"elymaic", "elym"},
	{"ethiopic", "ethi"},
	{"georgian", "geor"},
	{"glagolitic", "glag"},
	{"gothic", "goth"},
	{"greek", "grek"},
	{"gujarati", "gujr"},
	{"gurmukhi", "guru"},
	{"han", "hani"},
	{"hangul", "hang"},
	{"hebrew", "hebr"},
	{"javanese", "java"},
	{"kana", "kana"},
	{"kannada", "knda"},
	{"kayahli", "kali"},
	{"khmer", "khmr"},
	{"khojki", "khoj"},
	{"lao", "laoo"},
	{"latin", "latn"},
	{"lepcha", "lepc"},
	{"lue", "talu"},
	{"mahjong", ""},
	{"malayalam", "mlym"},
	{"mandaic", "mand"},
	{"math", "zmth"},
	{"mongolian", "mong"},
	{"musical", ""},
	{"myanmar", "mymr"},
	{"nko", "nkoo"},
	{"nyiakeng puachue hmong", "hmnp"},
	{"oriya", "orya"},
	{"osage", "osge"},
	{"osmanya", "osma"},
	{"pahawh hmong", "hmng"},
	{"phaistosDisc", ""},
	{"rovas", "hung"},
	{"runic", "runr"},
	{"samaritan", "samr"},
	{"shavian", "shaw"},
	{"sinhala", "sinh"},
	{"syriac", "syrc"},
	{"tamil", "taml"},
	{"telugu", "telu"},
	{"thaana", "thaa"},
	{"thai", "thai"},
	{"tham", "lana"},
	{"tibet", "tibt"},
	{"tifinagh", "tfng"},
	{"yi", "yiii"},
}

var scripts = func() *vocabulary[Script] {
	names := make([]string, len(scriptTable))
	for i, s := range scriptTable {
		names[i] = s.name
	}
	return newVocabulary[Script]("script", names, nil)
}()

// ParseScript parses the GlyphData spelling of a script. Spellings are
// lowercase except for "Black Letter" and "phaistosDisc".
func ParseScript(s string) (Script, error) { return scripts.parse(s) }

// String returns the canonical spelling, or "" for ScriptNone.
func (s Script) String() string { return scripts.name(s) }

// Valid reports whether s is a known, non-absent script.
func (s Script) Valid() bool { return scripts.valid(s) }

// MarshalText implements encoding.TextMarshaler.
func (s Script) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Script) UnmarshalText(text []byte) error { return scripts.unmarshal(s, text) }

// ISO15924 returns the ISO 15924 script tag for s. Symbol sets without a
// registered code (alchemical, dentistry, mahjong, ...) report false.
func (s Script) ISO15924() (language.Script, bool) {
	if !s.Valid() || scriptTable[s].iso == "" {
		return 0, false
	}
	tag, err := language.ParseScript(scriptTable[s].iso)
	if err != nil {
		return 0, false
	}
	return tag, true
}
