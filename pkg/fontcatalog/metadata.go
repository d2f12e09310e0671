package fontcatalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"strings"

	"golang.org/x/text/cases"
)

const (
	DefaultPublicPrefix = "/fonts"
	DefaultMetadataPath = "font_metadata.json"
)

type FontMetadata struct {
	Value string `json:"value"`
	Label string `json:"label"`
	File  string `json:"file"`
}

// Example: ("Lobster-Regular.ttf", "/fonts") -> {font-custom-lobster-regular, Lobster, /fonts/Lobster-Regular.ttf}
func NewFontMetadata(filename string, publicPrefix string) FontMetadata {
	opt := NewFontOption(filename)
	return FontMetadata{
		Value: opt.Value,
		Label: opt.Label,
		File:  strings.TrimRight(publicPrefix, "/") + "/" + filename,
	}
}

func BuildMetadata(files []string, publicPrefix string) []FontMetadata {
	fonts := make([]FontMetadata, 0, len(files))
	for _, f := range files {
		fonts = append(fonts, NewFontMetadata(f, publicPrefix))
	}
	return fonts
}

// Keep only fonts whose file has the given extension. ext may be given with or without the dot.
func FilterByExtension(fonts []FontMetadata, ext string) []FontMetadata {
	if ext == "" {
		return fonts
	}

	ext = "." + strings.TrimPrefix(strings.ToLower(ext), ".")

	filtered := make([]FontMetadata, 0, len(fonts))
	for _, f := range fonts {
		_, fileExt := SplitExt(path.Base(f.File))
		if strings.ToLower(fileExt) == ext {
			filtered = append(filtered, f)
		}
	}
	return filtered
}

// Case-insensitive substring match on the label. An empty or blank q keeps everything.
func SearchByLabel(fonts []FontMetadata, q string) []FontMetadata {
	fold := cases.Fold()

	q = fold.String(strings.TrimSpace(q))
	if q == "" {
		return fonts
	}

	matched := make([]FontMetadata, 0, len(fonts))
	for _, f := range fonts {
		if strings.Contains(fold.String(f.Label), q) {
			matched = append(matched, f)
		}
	}
	return matched
}

func WriteMetadataJSON(path string, fonts []FontMetadata) error {
	data, err := json.MarshalIndent(fonts, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling font metadata: %w", err)
	}

	// 0644: owner can read and write, everyone else can read
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing font metadata: %w", err)
	}

	return nil
}

// Reads back a file written by WriteMetadataJSON
func LoadFontMetadata(path string) ([]FontMetadata, error) {
	var fonts []FontMetadata

	if path == "" {
		path = DefaultMetadataPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fonts, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &fonts); err != nil {
		return fonts, fmt.Errorf("unmarshalling %s: %w", path, err)
	}

	return fonts, nil
}
