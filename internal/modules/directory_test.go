package modules

import (
	"context"
	"testing"

	"github.com/opencode-ai/shellprompt/internal/config"
	"github.com/opencode-ai/shellprompt/internal/segment"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestContractHome(t *testing.T) {
	tests := []struct {
		dir, home, want string
	}{
		{dir: "/home/ada", home: "/home/ada", want: "~"},
		{dir: "/home/ada/src/app", home: "/home/ada", want: "~/src/app"},
		{dir: "/home/adam/src", home: "/home/ada", want: "/home/adam/src"},
		{dir: "/srv/www", home: "", want: "/srv/www"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, contractHome(tt.dir, tt.home), tt.dir)
	}
}

func TestTruncatePath(t *testing.T) {
	require.Equal(t, "b/c/d", truncatePath("~/a/b/c/d", 3))
	require.Equal(t, "local/lib/go", truncatePath("/usr/local/lib/go", 3))
	require.Equal(t, "/usr/local", truncatePath("/usr/local", 3))
	require.Equal(t, "/", truncatePath("/", 1))
	require.Equal(t, "~/a/b/c/d", truncatePath("~/a/b/c/d", 0))
}

func TestDirectory_Render(t *testing.T) {
	mc := &Context{
		Dir:    "/home/ada/src/github.com/app",
		Home:   "/home/ada",
		Config: config.Default(),
		Logger: zerolog.Nop(),
	}

	out, err := Directory{}.Render(context.Background(), mc)
	require.NoError(t, err)
	require.Equal(t, []segment.Segment{
		{Name: "path", Value: "src/github.com/app", Style: "bold cyan"},
		{Name: segment.TextName, Value: " "},
	}, out.Segments)
}
