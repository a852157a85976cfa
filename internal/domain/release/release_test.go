package release

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestParse verifies valid release names parse and malformed ones are rejected.
func TestParse(t *testing.T) {
	t.Parallel()

	r, err := Parse("R2017a")
	require.NoError(t, err)
	require.Equal(t, 2017, r.Year)
	require.Equal(t, byte('a'), r.Half)
	require.Equal(t, "R2017a", r.String())

	for _, bad := range []string{"", "2017a", "R2017", "R2017c", "Rxxxxa", "r2017a"} {
		_, err = Parse(bad)
		require.ErrorIs(t, err, ErrInvalidFormat, "input %q", bad)
	}
}

// TestKeyOrdering checks the ordering key grows with the year and that "b"
// sorts after "a" within the same year.
func TestKeyOrdering(t *testing.T) {
	t.Parallel()

	r2016a, err := Parse("R2016a")
	require.NoError(t, err)

	r2016b, err := Parse("R2016b")
	require.NoError(t, err)

	r2017a, err := Parse("R2017a")
	require.NoError(t, err)

	require.Less(t, r2016a.Key(), r2016b.Key())
	require.Less(t, r2016b.Key(), r2017a.Key())
	require.Equal(t, -1, r2016b.Compare(r2017a))
	require.Equal(t, 1, r2017a.Compare(r2016b))
	require.Equal(t, 0, r2017a.Compare(r2017a))
}

// TestLatest ensures the maximum release is selected and non-matching names are skipped.
func TestLatest(t *testing.T) {
	t.Parallel()

	latest, err := Latest([]string{"R2016b", "R2017a"})
	require.NoError(t, err)
	require.Equal(t, "R2017a", latest.String())

	latest, err = Latest([]string{"docs", "R2015b", "downloads", "R2015a"})
	require.NoError(t, err)
	require.Equal(t, "R2015b", latest.String())

	_, err = Latest(nil)
	require.ErrorIs(t, err, ErrNoReleases)

	_, err = Latest([]string{"docs", "downloads"})
	require.ErrorIs(t, err, ErrNoReleases)
}

// TestParseFileInstallKey accepts strict digit-group keys and rejects everything else.
func TestParseFileInstallKey(t *testing.T) {
	t.Parallel()

	key, err := ParseFileInstallKey("12-34-56-78\n")
	require.NoError(t, err)
	require.Equal(t, "12-34-56-78", key)

	for _, bad := range []string{"abc", "", "12-34-56", "12-34-56-78-90", "12-34-5a-78"} {
		_, err = ParseFileInstallKey(bad)
		require.ErrorIs(t, err, ErrInvalidFileInstallKey, "input %q", bad)
	}
}
