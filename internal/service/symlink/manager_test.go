package symlink

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matlabutils/matlab-easy-install/internal/platform"
)

// recorder captures spawned commands instead of running them.
type recorder struct {
	calls [][]string
}

func (r *recorder) Run(_ context.Context, name string, args ...string) error {
	call := append([]string{name}, args...)
	r.calls = append(r.calls, call)

	return nil
}

var linuxPlatform = platform.Platform{OS: "linux"}

// TestEnsureUnsupportedPlatform checks the no-op on platforms without symlinks.
func TestEnsureUnsupportedPlatform(t *testing.T) {
	t.Parallel()

	rec := new(recorder)
	m := NewManager(platform.Platform{OS: "windows"}, rec, `C:\matlab-link`)

	require.NoError(t, m.Ensure(context.Background(), `C:\MATLAB\R2017a\bin\matlab.exe`))
	require.Empty(t, rec.calls)
}

// TestEnsureCreatesMissingLink verifies a single ln spawn when nothing occupies the path.
func TestEnsureCreatesMissingLink(t *testing.T) {
	t.Parallel()

	rec := new(recorder)
	link := filepath.Join(t.TempDir(), "matlab")
	m := NewManager(linuxPlatform, rec, link)

	require.NoError(t, m.Ensure(context.Background(), "/usr/local/MATLAB/R2017a/bin/matlab"))
	require.Equal(t, [][]string{
		{"ln", "-s", "/usr/local/MATLAB/R2017a/bin/matlab", link},
	}, rec.calls)
}

// TestEnsureAlreadyCorrect ensures a correct link results in zero spawns.
func TestEnsureAlreadyCorrect(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "bin", "matlab")
	link := filepath.Join(dir, "matlab")
	require.NoError(t, os.Symlink(target, link))

	rec := new(recorder)
	m := NewManager(linuxPlatform, rec, link)

	// Run twice; neither run may mutate anything.
	require.NoError(t, m.Ensure(context.Background(), target))
	require.NoError(t, m.Ensure(context.Background(), target))
	require.Empty(t, rec.calls)

	destination, err := os.Readlink(link)
	require.NoError(t, err)
	require.Equal(t, target, destination)
}

// TestEnsureRelinksWrongTarget verifies remove-then-create for a stale link.
func TestEnsureRelinksWrongTarget(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	link := filepath.Join(dir, "matlab")
	require.NoError(t, os.Symlink(filepath.Join(dir, "R2016b", "bin", "matlab"), link))

	rec := new(recorder)
	m := NewManager(linuxPlatform, rec, link)

	target := filepath.Join(dir, "R2017a", "bin", "matlab")
	require.NoError(t, m.Ensure(context.Background(), target))
	require.Equal(t, [][]string{
		{"rm", "-f", link},
		{"ln", "-s", target, link},
	}, rec.calls)
}

// TestEnsureLeavesRegularFile ensures a non-symlink occupant is reported and untouched.
func TestEnsureLeavesRegularFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	link := filepath.Join(dir, "matlab")
	require.NoError(t, os.WriteFile(link, []byte("not a link"), 0o600))

	rec := new(recorder)
	m := NewManager(linuxPlatform, rec, link)

	require.NoError(t, m.Ensure(context.Background(), filepath.Join(dir, "bin", "matlab")))
	require.Empty(t, rec.calls)

	contents, err := os.ReadFile(link)
	require.NoError(t, err)
	require.Equal(t, "not a link", string(contents))
}
