package combat

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func fixture(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(b)
}

func fixtureMap(t *testing.T, name string, sb SpriteBuilder) *Map {
	t.Helper()
	m, err := NewMapBuilder(sb).Build(fixture(t, name))
	require.NoError(t, err)
	return m
}

func trim(s string) string {
	var out []string
	for _, l := range strings.Split(s, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}
