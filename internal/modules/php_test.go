package modules

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/opencode-ai/shellprompt/internal/config"
	"github.com/opencode-ai/shellprompt/internal/segment"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type fakeExecutor struct {
	stdout   []byte
	stderr   []byte
	err      error
	calls    int
	lastName string
	lastArgs []string
}

func (f *fakeExecutor) Exec(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.calls++
	f.lastName = name
	f.lastArgs = args
	return f.stdout, f.stderr, f.err
}

func newContext(t *testing.T, dir string, exec *fakeExecutor) *Context {
	t.Helper()
	return &Context{
		Dir:    dir,
		Config: config.Default(),
		Exec:   exec,
		Logger: zerolog.Nop(),
	}
}

func phpProjectDir(t *testing.T, marker string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, marker), []byte("{}"), 0644))
	return dir
}

func TestFormatVersion(t *testing.T) {
	require.Equal(t, "v7.3.8", FormatVersion("7.3.8"))
}

func TestPHP_NotAProject(t *testing.T) {
	exec := &fakeExecutor{stdout: []byte("8.1.2")}
	mc := newContext(t, t.TempDir(), exec)

	out, err := PHP{}.Render(context.Background(), mc)
	require.NoError(t, err)
	require.Nil(t, out)
	require.Zero(t, exec.calls, "php must not run outside PHP projects")
}

func TestPHP_Markers(t *testing.T) {
	for _, marker := range []string{"composer.json", "index.php"} {
		t.Run(marker, func(t *testing.T) {
			exec := &fakeExecutor{stdout: []byte("8.1.2\n")}
			mc := newContext(t, phpProjectDir(t, marker), exec)

			out, err := PHP{}.Render(context.Background(), mc)
			require.NoError(t, err)
			require.NotNil(t, out)
			require.Equal(t, "php", out.Name)
			require.Equal(t, "via 🐘 v8.1.2 ", segment.Join(out.Segments))

			require.Equal(t, "php", exec.lastName)
			require.Equal(t, []string{"-r", phpVersionScript}, exec.lastArgs)
		})
	}
}

func TestPHP_DefaultStyleApplied(t *testing.T) {
	exec := &fakeExecutor{stdout: []byte("7.3.8")}
	mc := newContext(t, phpProjectDir(t, "composer.json"), exec)
	mc.Config.PHP.Format = "${version}${version:style=red,major}${version:minor}"

	out, err := PHP{}.Render(context.Background(), mc)
	require.NoError(t, err)
	require.Equal(t, []segment.Segment{
		{Name: "version", Value: "v7.3.8", Style: "bold 147"},
		{Name: "version", Value: "v7", Style: "red"},
		{Name: "version", Value: "v7.3", Style: "bold 147"},
	}, out.Segments)
}

func TestPHP_CommandFailure(t *testing.T) {
	exec := &fakeExecutor{err: errors.New("exec: \"php\": executable file not found in $PATH")}
	mc := newContext(t, phpProjectDir(t, "composer.json"), exec)

	out, err := PHP{}.Render(context.Background(), mc)
	require.NoError(t, err)
	require.Nil(t, out)
}

func TestPHP_MalformedVersion(t *testing.T) {
	exec := &fakeExecutor{stdout: []byte("garbage")}
	mc := newContext(t, phpProjectDir(t, "composer.json"), exec)

	out, err := PHP{}.Render(context.Background(), mc)
	require.NoError(t, err)
	require.Nil(t, out)
}

func TestPHP_Disabled(t *testing.T) {
	exec := &fakeExecutor{stdout: []byte("8.1.2")}
	mc := newContext(t, phpProjectDir(t, "composer.json"), exec)
	mc.Config.PHP.Disabled = true

	out, err := PHP{}.Render(context.Background(), mc)
	require.NoError(t, err)
	require.Nil(t, out)
	require.Zero(t, exec.calls)
}

func TestPHP_MalformedFormat(t *testing.T) {
	exec := &fakeExecutor{stdout: []byte("8.1.2")}
	mc := newContext(t, phpProjectDir(t, "composer.json"), exec)
	mc.Config.PHP.Format = "${version"

	_, err := PHP{}.Render(context.Background(), mc)
	require.ErrorIs(t, err, segment.ErrMalformedTemplate)
}
