package fontcatalog

import (
	"fmt"
	"io"
	"strings"
	"text/template"
)

type FontOption struct {
	Value string
	Label string
}

// Built-in fonts listed ahead of the custom ones as a fallback
var DefaultFonts = []FontOption{
	{Value: "font-sans", Label: "Inter (Sans-serif)"},
	{Value: "font-serif", Label: "Merriweather (Serif)"},
	{Value: "font-mono", Label: "Roboto Mono (Monospace)"},
	{Value: "font-retro", Label: "VT323"},
	{Value: "font-league-spartan", Label: "League Spartan"},
	{Value: "font-bungee-inline", Label: "Bungee Inline"},
	{Value: "font-display", Label: "Playfair Display"},
	{Value: "font-handwriting", Label: "Caveat"},
	{Value: "font-futuristic", Label: "Orbitron"},
	{Value: "font-elegant", Label: "Cormorant Garamond"},
	{Value: "font-quirky", Label: "Fredoka One"},
	{Value: "font-geometric", Label: "Montserrat"},
	{Value: "font-fenix", Label: "Fenix (Elegant Serif)"},
	{Value: "font-butcherman", Label: "Butcherman (Horror Style)"},
	{Value: "font-fruktur", Label: "Fruktur (Gothic/Blackletter)"},
}

const snippetTemplate = `const [availableFonts, setAvailableFonts] = useState([
  // Default fonts as fallback
{{- range .Defaults}}
  { value: "{{esc .Value}}", label: "{{esc .Label}}" },
{{- end}}

  // Custom fonts from public/fonts
{{- $last := last .Custom}}
{{- range $i, $f := .Custom}}
  { value: "{{esc $f.Value}}", label: "{{esc $f.Label}}" }{{if ne $i $last}},{{end}}
{{- end}}
]);

Found {{len .Files}} font files:
{{- range .Files}}
  - {{.}}
{{- end}}
`

// Only the characters that would end a double-quoted string literal are escaped
var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

var snippet = template.Must(template.New("font_snippet").Funcs(template.FuncMap{
	"last": func(options []FontOption) int { return len(options) - 1 },
	"esc":  quoteEscaper.Replace,
}).Parse(snippetTemplate))

func NewFontOption(filename string) FontOption {
	return FontOption{
		Value: GenerateFontValue(filename),
		Label: FormatFontName(filename),
	}
}

// Writes the useState array literal for files followed by a summary of the files found.
// files are written in the given order.
func WriteSnippet(w io.Writer, files []string) error {
	custom := make([]FontOption, len(files))
	for i, f := range files {
		custom[i] = NewFontOption(f)
	}

	err := snippet.Execute(w, struct {
		Defaults []FontOption
		Custom   []FontOption
		Files    []string
	}{
		Defaults: DefaultFonts,
		Custom:   custom,
		Files:    files,
	})
	if err != nil {
		return fmt.Errorf("executing snippet template: %w", err)
	}

	return nil
}

func RenderSnippet(files []string) (string, error) {
	var sb strings.Builder
	if err := WriteSnippet(&sb, files); err != nil {
		return "", err
	}
	return sb.String(), nil
}
