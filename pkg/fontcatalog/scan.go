package fontcatalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
)

var (
	ErrDirNotExist = errors.New("font directory does not exist")
	ErrNoFonts     = errors.New("no font files found in the directory")
)

// Extensions recognised as font files, lower case and with the leading dot
var FontExtensions = []string{".woff", ".woff2", ".ttf", ".otf", ".eot"}

func IsFontFile(filename string) bool {
	_, ext := SplitExt(filename)
	return slices.Contains(FontExtensions, strings.ToLower(ext))
}

// Lists the font files directly inside dir, sorted by name.
// Subdirectories are not descended into. Returns ErrDirNotExist when dir is
// missing and ErrNoFonts when it holds no font files.
func ScanFontDir(dir string) ([]string, error) {
	return ScanFontFS(os.DirFS(dir), dir)
}

// Same as ScanFontDir but reads from fsys. dir is only used in error messages.
func ScanFontFS(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDirNotExist, dir)
		}
		return nil, fmt.Errorf("reading font directory %q: %w", dir, err)
	}

	var fonts []string
	for _, entry := range entries {
		if !IsFontFile(entry.Name()) {
			continue
		}
		fonts = append(fonts, entry.Name())
	}

	if len(fonts) == 0 {
		return nil, ErrNoFonts
	}

	slices.Sort(fonts)

	return fonts, nil
}
