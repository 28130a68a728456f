// Copyright 2024 The langid Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package langid

import (
	"fmt"
	"strings"
)

// Language identifies one of the languages in the built-in catalogue, or
// Unknown. Values are small dense ordinals so that per-language state
// (scores, counts, model holders) can live in plain slices indexed by the
// ordinal rather than in a map.
type Language int

// catalogEntry is the immutable metadata record for one Language.
type catalogEntry struct {
	name    string
	iso1    string
	iso3    string
	scripts []Script
	// unique is the set of characters that point at this language. Most
	// occur in no other entry's string; a few are shared with one other
	// language. Empty for most languages.
	unique string
}

// The full catalogue, in ordinal order. Unknown is always ordinal 0 and
// carries no scripts, matching the sentinel contract in the data model.
const (
	Unknown Language = iota
	Afrikaans
	Albanian
	Arabic
	Armenian
	Azerbaijani
	Basque
	Belarusian
	Bengali
	Bokmal
	Bosnian
	Bulgarian
	Catalan
	Chinese
	Croatian
	Czech
	Danish
	Dutch
	English
	Esperanto
	Estonian
	Finnish
	French
	Ganda
	Georgian
	German
	Greek
	Gujarati
	Hebrew
	Hindi
	Hungarian
	Icelandic
	Indonesian
	Irish
	Italian
	Japanese
	Kazakh
	Korean
	Latin
	Latvian
	Lithuanian
	Macedonian
	Malay
	Maori
	Marathi
	Mongolian
	Nynorsk
	Persian
	Polish
	Portuguese
	Punjabi
	Romanian
	Russian
	Serbian
	Shona
	Slovak
	Slovene
	Somali
	Sotho
	Spanish
	Swahili
	Swedish
	Tagalog
	Tamil
	Telugu
	Thai
	Tsonga
	Tswana
	Turkish
	Ukrainian
	Urdu
	Vietnamese
	Welsh
	Xhosa
	Yoruba
	Zulu

	// numLanguages is the count of catalogue entries, including the
	// Unknown sentinel.
	numLanguages
)

var catalog = [numLanguages]catalogEntry{
	Unknown:     {name: "UNKNOWN"},
	Afrikaans:   {name: "AFRIKAANS", iso1: "af", iso3: "afr", scripts: []Script{ScriptLatin}},
	Albanian:    {name: "ALBANIAN", iso1: "sq", iso3: "sqi", scripts: []Script{ScriptLatin}},
	Arabic:      {name: "ARABIC", iso1: "ar", iso3: "ara", scripts: []Script{ScriptArabic}},
	Armenian:    {name: "ARMENIAN", iso1: "hy", iso3: "hye", scripts: []Script{ScriptArmenian}},
	Azerbaijani: {name: "AZERBAIJANI", iso1: "az", iso3: "aze", scripts: []Script{ScriptLatin}, unique: "əƏ"},
	Basque:      {name: "BASQUE", iso1: "eu", iso3: "eus", scripts: []Script{ScriptLatin}},
	Belarusian:  {name: "BELARUSIAN", iso1: "be", iso3: "bel", scripts: []Script{ScriptCyrillic}},
	Bengali:     {name: "BENGALI", iso1: "bn", iso3: "ben", scripts: []Script{ScriptBengali}},
	Bokmal:      {name: "BOKMAL", iso1: "nb", iso3: "nob", scripts: []Script{ScriptLatin}},
	Bosnian:     {name: "BOSNIAN", iso1: "bs", iso3: "bos", scripts: []Script{ScriptLatin}},
	Bulgarian:   {name: "BULGARIAN", iso1: "bg", iso3: "bul", scripts: []Script{ScriptCyrillic}},
	Catalan:     {name: "CATALAN", iso1: "ca", iso3: "cat", scripts: []Script{ScriptLatin}},
	Chinese:     {name: "CHINESE", iso1: "zh", iso3: "zho", scripts: []Script{ScriptHan}},
	Croatian:    {name: "CROATIAN", iso1: "hr", iso3: "hrv", scripts: []Script{ScriptLatin}},
	Czech:       {name: "CZECH", iso1: "cs", iso3: "ces", scripts: []Script{ScriptLatin}, unique: "ěřůščťďňŇ"},
	Danish:      {name: "DANISH", iso1: "da", iso3: "dan", scripts: []Script{ScriptLatin}},
	Dutch:       {name: "DUTCH", iso1: "nl", iso3: "nld", scripts: []Script{ScriptLatin}},
	English:     {name: "ENGLISH", iso1: "en", iso3: "eng", scripts: []Script{ScriptLatin}},
	Esperanto:   {name: "ESPERANTO", iso1: "eo", iso3: "epo", scripts: []Script{ScriptLatin}, unique: "ĉĝĥĵŝŭĈĜĤĴŜŬ"},
	Estonian:    {name: "ESTONIAN", iso1: "et", iso3: "est", scripts: []Script{ScriptLatin}, unique: "õÕ"},
	Finnish:     {name: "FINNISH", iso1: "fi", iso3: "fin", scripts: []Script{ScriptLatin}},
	French:      {name: "FRENCH", iso1: "fr", iso3: "fra", scripts: []Script{ScriptLatin}},
	Ganda:       {name: "GANDA", iso1: "lg", iso3: "lug", scripts: []Script{ScriptLatin}},
	Georgian:    {name: "GEORGIAN", iso1: "ka", iso3: "kat", scripts: []Script{ScriptGeorgian}},
	German:      {name: "GERMAN", iso1: "de", iso3: "deu", scripts: []Script{ScriptLatin}, unique: "ß"},
	Greek:       {name: "GREEK", iso1: "el", iso3: "ell", scripts: []Script{ScriptGreek}},
	Gujarati:    {name: "GUJARATI", iso1: "gu", iso3: "guj", scripts: []Script{ScriptGujarati}},
	Hebrew:      {name: "HEBREW", iso1: "he", iso3: "heb", scripts: []Script{ScriptHebrew}},
	Hindi:       {name: "HINDI", iso1: "hi", iso3: "hin", scripts: []Script{ScriptDevanagari}},
	Hungarian:   {name: "HUNGARIAN", iso1: "hu", iso3: "hun", scripts: []Script{ScriptLatin}, unique: "őűŐŰ"},
	Icelandic:   {name: "ICELANDIC", iso1: "is", iso3: "isl", scripts: []Script{ScriptLatin}, unique: "þðÞÐ"},
	Indonesian:  {name: "INDONESIAN", iso1: "id", iso3: "ind", scripts: []Script{ScriptLatin}},
	Irish:       {name: "IRISH", iso1: "ga", iso3: "gle", scripts: []Script{ScriptLatin}},
	Italian:     {name: "ITALIAN", iso1: "it", iso3: "ita", scripts: []Script{ScriptLatin}},
	Japanese:    {name: "JAPANESE", iso1: "ja", iso3: "jpn", scripts: []Script{ScriptHiragana, ScriptKatakana, ScriptHan}},
	Kazakh:      {name: "KAZAKH", iso1: "kk", iso3: "kaz", scripts: []Script{ScriptCyrillic}, unique: "әғқңөұүһӘҒҚҢӨҰҮҺ"},
	Korean:      {name: "KOREAN", iso1: "ko", iso3: "kor", scripts: []Script{ScriptHangul}},
	Latin:       {name: "LATIN", iso1: "la", iso3: "lat", scripts: []Script{ScriptLatin}},
	Latvian:     {name: "LATVIAN", iso1: "lv", iso3: "lav", scripts: []Script{ScriptLatin}, unique: "ģķļņĢĶĻŅ"},
	Lithuanian:  {name: "LITHUANIAN", iso1: "lt", iso3: "lit", scripts: []Script{ScriptLatin}, unique: "ęėįųĘĖĮŲ"},
	Macedonian:  {name: "MACEDONIAN", iso1: "mk", iso3: "mkd", scripts: []Script{ScriptCyrillic}, unique: "ѓѕќЃЅЌ"},
	Malay:       {name: "MALAY", iso1: "ms", iso3: "msa", scripts: []Script{ScriptLatin}},
	Maori:       {name: "MAORI", iso1: "mi", iso3: "mri", scripts: []Script{ScriptLatin}},
	Marathi:     {name: "MARATHI", iso1: "mr", iso3: "mar", scripts: []Script{ScriptDevanagari}},
	Mongolian:   {name: "MONGOLIAN", iso1: "mn", iso3: "mon", scripts: []Script{ScriptCyrillic}},
	Nynorsk:     {name: "NYNORSK", iso1: "nn", iso3: "nno", scripts: []Script{ScriptLatin}},
	Persian:     {name: "PERSIAN", iso1: "fa", iso3: "fas", scripts: []Script{ScriptArabic}},
	Polish:      {name: "POLISH", iso1: "pl", iso3: "pol", scripts: []Script{ScriptLatin}, unique: "ąćęłńśźżĄĆĘŁŃŚŹŻ"},
	Portuguese:  {name: "PORTUGUESE", iso1: "pt", iso3: "por", scripts: []Script{ScriptLatin}},
	Punjabi:     {name: "PUNJABI", iso1: "pa", iso3: "pan", scripts: []Script{ScriptGurmukhi}},
	Romanian:    {name: "ROMANIAN", iso1: "ro", iso3: "ron", scripts: []Script{ScriptLatin}, unique: "ățĂȚ"},
	Russian:     {name: "RUSSIAN", iso1: "ru", iso3: "rus", scripts: []Script{ScriptCyrillic}},
	Serbian:     {name: "SERBIAN", iso1: "sr", iso3: "srp", scripts: []Script{ScriptCyrillic, ScriptLatin}, unique: "ђјљњћџЂЈЉЊЋЏ"},
	Shona:       {name: "SHONA", iso1: "sn", iso3: "sna", scripts: []Script{ScriptLatin}},
	Slovak:      {name: "SLOVAK", iso1: "sk", iso3: "slk", scripts: []Script{ScriptLatin}, unique: "ľĺŕĽĹŔ"},
	Slovene:     {name: "SLOVENE", iso1: "sl", iso3: "slv", scripts: []Script{ScriptLatin}},
	Somali:      {name: "SOMALI", iso1: "so", iso3: "som", scripts: []Script{ScriptLatin}},
	Sotho:       {name: "SOTHO", iso1: "st", iso3: "sot", scripts: []Script{ScriptLatin}},
	Spanish:     {name: "SPANISH", iso1: "es", iso3: "spa", scripts: []Script{ScriptLatin}, unique: "¿¡"},
	Swahili:     {name: "SWAHILI", iso1: "sw", iso3: "swa", scripts: []Script{ScriptLatin}},
	Swedish:     {name: "SWEDISH", iso1: "sv", iso3: "swe", scripts: []Script{ScriptLatin}},
	Tagalog:     {name: "TAGALOG", iso1: "tl", iso3: "tgl", scripts: []Script{ScriptLatin}},
	Tamil:       {name: "TAMIL", iso1: "ta", iso3: "tam", scripts: []Script{ScriptTamil}},
	Telugu:      {name: "TELUGU", iso1: "te", iso3: "tel", scripts: []Script{ScriptTelugu}},
	Thai:        {name: "THAI", iso1: "th", iso3: "tha", scripts: []Script{ScriptThai}},
	Tsonga:      {name: "TSONGA", iso1: "ts", iso3: "tso", scripts: []Script{ScriptLatin}},
	Tswana:      {name: "TSWANA", iso1: "tn", iso3: "tsn", scripts: []Script{ScriptLatin}},
	Turkish:     {name: "TURKISH", iso1: "tr", iso3: "tur", scripts: []Script{ScriptLatin}, unique: "ığİĞ"},
	Ukrainian:   {name: "UKRAINIAN", iso1: "uk", iso3: "ukr", scripts: []Script{ScriptCyrillic}, unique: "ґєіїҐЄІЇ"},
	Urdu:        {name: "URDU", iso1: "ur", iso3: "urd", scripts: []Script{ScriptArabic}},
	Vietnamese:  {name: "VIETNAMESE", iso1: "vi", iso3: "vie", scripts: []Script{ScriptLatin}, unique: "ạảấầẩẫậắằẳẵặẹẻẽếềểễệịỉĩọỏốồổỗộớờởỡợụủứừửữựỳỵỷỹ"},
	Welsh:       {name: "WELSH", iso1: "cy", iso3: "cym", scripts: []Script{ScriptLatin}},
	Xhosa:       {name: "XHOSA", iso1: "xh", iso3: "xho", scripts: []Script{ScriptLatin}},
	Yoruba:      {name: "YORUBA", iso1: "yo", iso3: "yor", scripts: []Script{ScriptLatin}, unique: "ẹọṣẸỌṢ"},
	Zulu:        {name: "ZULU", iso1: "zu", iso3: "zul", scripts: []Script{ScriptLatin}},
}

// String returns the catalogue name, e.g. "ENGLISH", or "UNKNOWN".
func (l Language) String() string {
	if l < 0 || int(l) >= len(catalog) {
		return fmt.Sprintf("Language(%d)", int(l))
	}
	return catalog[l].name
}

// IsoCode639_1 returns the language's ISO 639-1 code, or "" for Unknown.
func (l Language) IsoCode639_1() string { return catalog[l].iso1 }

// IsoCode639_3 returns the language's ISO 639-3 code, or "" for Unknown.
func (l Language) IsoCode639_3() string { return catalog[l].iso3 }

// Scripts returns the Unicode scripts this language is written in. Unknown
// has no scripts, per the data model's sentinel invariant.
func (l Language) Scripts() []Script { return catalog[l].scripts }

// UniqueCharacters returns the string of characters that point at this
// language. A few of them also appear in one other language's string.
// Most languages have none.
func (l Language) UniqueCharacters() string { return catalog[l].unique }

// LanguageByIso1 looks up a language by its ISO 639-1 code (case
// insensitive). It returns Unknown, false if no language matches.
func LanguageByIso1(code string) (Language, bool) {
	for l := Language(1); l < numLanguages; l++ {
		if strings.EqualFold(catalog[l].iso1, code) {
			return l, true
		}
	}
	return Unknown, false
}

// AllLanguages returns every supported language in catalogue order,
// excluding Unknown.
func AllLanguages() []Language {
	out := make([]Language, 0, numLanguages-1)
	for l := Language(1); l < numLanguages; l++ {
		out = append(out, l)
	}
	return out
}
