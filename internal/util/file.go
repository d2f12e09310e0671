package util

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Object keys end up in URLs, so the prefix sticks to lowercase letters and digits.
const (
	objectKeyAlphabet  = "0123456789abcdefghijklmnopqrstuvwxyz"
	uniquePrefixLength = 12
)

// Example output for "font_metadata.json": "k3v9x0q2m7ab_font_metadata.json"
func AddUniquePrefixToFileName(fileName string) (string, error) {
	uniquePrefix, err := gonanoid.Generate(objectKeyAlphabet, uniquePrefixLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate unique prefix: %w", err)
	}
	return fmt.Sprintf("%s_%s", uniquePrefix, fileName), nil
}
