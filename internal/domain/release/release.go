package release

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// pattern matches MATLAB release names such as "R2017a": the letter R,
// a year, and a half-year letter.
var pattern = regexp.MustCompile(`^R(\d+)([ab])$`)

var (
	// ErrInvalidFormat is returned when a string does not look like a release name.
	ErrInvalidFormat = errors.New("invalid MATLAB release format")
	// ErrNoReleases is returned when no directory entry matches the release pattern.
	ErrNoReleases = errors.New("no MATLAB release directories found")
)

// Release is a parsed MATLAB release identifier, e.g. R2017a.
// The zero value is not a valid release; obtain instances via Parse.
type Release struct {
	// Year is the four-digit release year.
	Year int
	// Half is the half-year letter, 'a' or 'b'.
	Half byte
}

// Parse validates s against the release pattern and returns the parsed Release.
func Parse(s string) (Release, error) {
	match := pattern.FindStringSubmatch(s)
	if match == nil {
		return Release{}, fmt.Errorf("%q: %w", s, ErrInvalidFormat)
	}

	year, err := strconv.Atoi(match[1])
	if err != nil {
		return Release{}, fmt.Errorf("%q: %w", s, ErrInvalidFormat)
	}

	return Release{Year: year, Half: match[2][0]}, nil
}

// String renders the release back into its canonical form.
func (r Release) String() string {
	return fmt.Sprintf("R%d%c", r.Year, r.Half)
}

// Key returns an ordering key that increases strictly with the year and,
// within a year, orders "b" after "a".
func (r Release) Key() int {
	return r.Year*2 + int(r.Half)
}

// Compare returns -1, 0 or 1 ordering r against other by Key.
func (r Release) Compare(other Release) int {
	switch {
	case r.Key() < other.Key():
		return -1
	case r.Key() > other.Key():
		return 1
	default:
		return 0
	}
}

// Latest returns the maximum release among names that match the release
// pattern. Names that do not parse are skipped. Returns ErrNoReleases when
// nothing matches.
func Latest(names []string) (Release, error) {
	var (
		best  Release
		found bool
	)

	for _, name := range names {
		parsed, err := Parse(name)
		if err != nil {
			continue
		}

		if !found || parsed.Key() > best.Key() {
			best = parsed
			found = true
		}
	}

	if !found {
		return Release{}, ErrNoReleases
	}

	return best, nil
}
