package transliteration

import (
	"strings"
	"unicode/utf8"

	"github.com/gojp/kana"
)

// romajiToKatakana converts lower-case Latin text to katakana. English
// spellings are first rewritten into Hepburn syllables, each of which
// kana.RomajiToKatakana renders. Runes that are not ASCII letters are
// copied unchanged.
func romajiToKatakana(s string) string {
	var b strings.Builder
	for _, syl := range syllables(spell(s)) {
		if isASCIILetter(syl[0]) {
			b.WriteString(kana.RomajiToKatakana(syl))
			continue
		}
		b.WriteString(syl)
	}
	return b.String()
}

func isVowel(c byte) bool {
	return c == 'a' || c == 'i' || c == 'u' || c == 'e' || c == 'o'
}

func isASCIILetter(c byte) bool {
	return c >= 'a' && c <= 'z'
}

// spell replaces letters Hepburn romaji does not use with the nearest
// ones it does. A y that is not followed by a vowel is read as i.
func spell(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		var next byte
		if i+1 < len(s) {
			next = s[i+1]
		}
		switch {
		case c == 'p' && next == 'h':
			b.WriteByte('f')
			i++
		case c == 't' && next == 'h':
			b.WriteByte('s')
			i++
		case c == 'c' && next == 'k':
			b.WriteString("kk")
			i++
		case c == 'c' && next == 'h':
			b.WriteString("ch")
			i++
		case c == 'c' && (next == 'e' || next == 'i' || next == 'y'):
			b.WriteByte('s')
		case c == 'c' || c == 'q':
			b.WriteByte('k')
		case c == 'x':
			b.WriteString("ks")
		case c == 'l':
			b.WriteByte('r')
		case c == 'v':
			b.WriteByte('b')
		case c == 'y' && !isVowel(next):
			b.WriteByte('i')
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// onsets lists the consonant clusters that start a syllable, longest first.
var onsets = []string{
	"ky", "gy", "sh", "ch", "ts", "ny", "hy", "by", "py", "my", "ry",
	"k", "g", "s", "z", "t", "d", "n", "h", "f", "b", "p", "m", "y", "r", "w", "j",
}

func onsetAt(s string) string {
	for _, o := range onsets {
		if strings.HasPrefix(s, o) {
			return o
		}
	}
	return s[:1]
}

// syllables splits spelled text into Hepburn syllables, the sokuon ッ, the
// long vowel mark and single runes of anything else. A consonant with no
// vowel after it gets one: o after t and d, i after ch and j, u otherwise.
// A lone n is the moraic ン and a lone h is silent.
func syllables(s string) []string {
	var out []string
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == '-':
			out = append(out, "ー")
			i++
			continue
		case c == '\'':
			i++
			continue
		case isVowel(c):
			out = append(out, s[i:i+1])
			i++
			continue
		case !isASCIILetter(c):
			_, size := utf8.DecodeRuneInString(s[i:])
			out = append(out, s[i:i+size])
			i += size
			continue
		}

		if c != 'n' && i+1 < len(s) && (s[i+1] == c || c == 't' && strings.HasPrefix(s[i+1:], "ch")) {
			out = append(out, "ッ")
			i++
			continue
		}

		onset := onsetAt(s[i:])
		i += len(onset)
		if i < len(s) && isVowel(s[i]) {
			out = append(out, syllable(onset, s[i]))
			i++
			continue
		}

		switch onset {
		case "n":
			out = append(out, "n")
		case "h":
		case "t", "d":
			out = append(out, onset+"o")
		case "ch", "j":
			out = append(out, onset+"i")
		default:
			out = append(out, syllable(onset, 'u'))
		}
	}
	return out
}

// syllable joins onset and vowel, respelling the combinations Hepburn
// writes differently or has no kana for.
func syllable(onset string, v byte) string {
	switch s := onset + string(v); s {
	case "si":
		return "shi"
	case "ti":
		return "chi"
	case "tu":
		return "tsu"
	case "hu":
		return "fu"
	case "zi":
		return "ji"
	case "yi":
		return "i"
	case "ye":
		return "ie"
	case "wu":
		return "u"
	case "wi", "we", "wo":
		return "u" + string(v)
	}
	if onset == "ts" && v != 'u' {
		return "tsu" + string(v)
	}
	if len(onset) == 2 && onset[1] == 'y' && (v == 'i' || v == 'e') {
		return onset[:1] + string(v)
	}
	return onset + string(v)
}
