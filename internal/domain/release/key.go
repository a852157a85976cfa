package release

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// fileInstallKeyPattern matches the strict digit-groups form of a MATLAB
// file installation key, e.g. "12345-67890-12345-67890".
var fileInstallKeyPattern = regexp.MustCompile(`^\d+-\d+-\d+-\d+$`)

// ErrInvalidFileInstallKey is returned when the key file content does not
// match the expected digit-groups pattern.
var ErrInvalidFileInstallKey = errors.New("invalid file installation key")

// ParseFileInstallKey trims surrounding whitespace from the raw key file
// content and validates the result against the key pattern.
func ParseFileInstallKey(raw string) (string, error) {
	key := strings.TrimSpace(raw)
	if !fileInstallKeyPattern.MatchString(key) {
		return "", fmt.Errorf("%q: %w", key, ErrInvalidFileInstallKey)
	}

	return key, nil
}
