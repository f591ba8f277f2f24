//go:build golden

package e2e_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkarpinski/osc2doxy/internal/osc"
)

func TestFilter_Golden(t *testing.T) {
	normalize := func(b []byte) string {
		s := string(b)
		s = strings.TrimPrefix(s, "\uFEFF")
		s = strings.ReplaceAll(s, "\r\n", "\n")
		s = strings.TrimRight(s, "\n")
		return s
	}

	entries, err := os.ReadDir("testdata")
	require.NoError(t, err)

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".cls") {
			continue
		}
		name := e.Name()

		t.Run(name, func(t *testing.T) {
			res, err := osc.FilterFile(filepath.Join("testdata", name))
			require.NoError(t, err)
			require.Empty(t, res.Warnings, "unexpected warnings for %s", name)

			wantPath := filepath.Join("testdata", "expected",
				strings.TrimSuffix(name, ".cls")+".cpp")
			want, err := os.ReadFile(wantPath)
			require.NoError(t, err)

			require.Equal(t, normalize(want), normalize([]byte(res.Output)),
				"filtered output mismatch: %s", name)
		})
	}
}

func TestFilter_GoldenRoundTrip(t *testing.T) {
	input, err := os.ReadFile(filepath.Join("testdata", "person.cls"))
	require.NoError(t, err)

	first, err := osc.FilterReader(strings.NewReader(string(input)), "person.cls")
	require.NoError(t, err)
	second, err := osc.FilterReader(strings.NewReader(string(input)), "person.cls")
	require.NoError(t, err)

	require.Equal(t, first.Output, second.Output, "fresh parses must be byte-identical")
}
