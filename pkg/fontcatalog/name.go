package fontcatalog

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const FontValuePrefix = "font-custom-"

var (
	separatorRegex   = regexp.MustCompile(`[-_]`)
	nonAlnumRegex    = regexp.MustCompile(`[^a-zA-Z0-9]`)
	multiHyphenRegex = regexp.MustCompile(`-+`)
)

// Weight words standing alone. A word character is a letter, a number of
// any kind, or an underscore.
var weightRegex = regexp2.MustCompile(
	`(?<![\p{L}\p{N}_])(regular|normal|400|bold|700|light|300|medium|500|semibold|600|extrabold|800|black|900)(?![\p{L}\p{N}_])`,
	regexp2.IgnoreCase,
)

// Split filename into base and extension.
// Leading dots belong to the base, so ".ttf" has no extension while "a.b.ttf" has ".ttf".
func SplitExt(filename string) (string, string) {
	dot := strings.LastIndex(filename, ".")
	if dot <= 0 {
		return filename, ""
	}

	// The extension only counts when a non-dot character precedes it
	if strings.TrimLeft(filename[:dot], ".") == "" {
		return filename, ""
	}

	return filename[:dot], filename[dot:]
}

// Example: "open_sans-bold.ttf" -> "Open Sans"
func FormatFontName(filename string) string {
	name, _ := SplitExt(filename)

	name = separatorRegex.ReplaceAllString(name, " ")

	stripped, err := weightRegex.Replace(name, "", -1, -1)
	if err == nil {
		name = stripped
	}

	words := strings.FieldsFunc(name, isSpace)
	for i, word := range words {
		words[i] = capitalize(word)
	}

	return strings.Join(words, " ")
}

// Example: "Open Sans Bold.woff2" -> "font-custom-open-sans-bold"
func GenerateFontValue(filename string) string {
	name, _ := SplitExt(filename)

	value := nonAlnumRegex.ReplaceAllString(cases.Lower(language.Und).String(name), "-")
	value = multiHyphenRegex.ReplaceAllString(value, "-")
	value = strings.Trim(value, "-")

	return FontValuePrefix + value
}

// Besides Unicode white space, the ASCII file, group, record and unit
// separators also split words.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// Title-cases the first character and lower-cases the rest.
// The rest is lowered together with the first character so that context
// dependent mappings such as final sigma see the whole word.
func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if size == 0 {
		return word
	}

	first := word[:size]
	head := cases.Title(language.Und).String(first)

	if r == utf8.RuneError {
		return head + cases.Lower(language.Und).String(word[size:])
	}

	lowered := cases.Lower(language.Und).String(word)
	firstLowered := cases.Lower(language.Und).String(first)
	if rest, ok := strings.CutPrefix(lowered, firstLowered); ok {
		return head + rest
	}

	return head + cases.Lower(language.Und).String(word[size:])
}
