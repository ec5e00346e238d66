// Package transliteration renders arbitrary words in katakana by general
// orthographic rules. It knows nothing about pronunciation and is used for
// words missing from the pronunciation dictionary.
package transliteration

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

var lower = cases.Lower(language.Und)

// Katakana converts word to katakana. Input is NFKC-normalized first, so
// half-width kana with voicing marks combine. Latin text is read as romaji,
// Hangul and Han are romanized first, hiragana is shifted to katakana and
// katakana is kept. Anything else passes through unchanged.
func Katakana(word string) string {
	s := width.Fold.String(norm.NFKC.String(word))
	s = lower.String(s)

	switch detectScript(s) {
	case "katakana":
		return s
	case "korean":
		s = romanizeKorean(s)
	case "chinese":
		s = romanizeChinese(s)
	}

	return romajiToKatakana(hiraganaToKatakana(s))
}

// Converter adapts Katakana to interfaces that want a method.
type Converter struct{}

func (Converter) Katakana(word string) string {
	return Katakana(word)
}

func detectScript(text string) string {
	allKatakana := text != ""
	for _, r := range text {
		if unicode.Is(unicode.Hangul, r) {
			return "korean"
		}
		if !unicode.Is(unicode.Katakana, r) && r != 'ー' {
			allKatakana = false
		}
	}
	if allKatakana {
		return "katakana"
	}
	for _, r := range text {
		if unicode.Is(unicode.Han, r) {
			return "chinese"
		}
	}
	return "latin"
}

const (
	hiraganaFirst = 'ぁ'
	hiraganaLast  = 'ゖ'
	kanaOffset    = 'ァ' - 'ぁ'
)

func hiraganaToKatakana(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= hiraganaFirst && r <= hiraganaLast {
			return r + kanaOffset
		}
		return r
	}, s)
}
