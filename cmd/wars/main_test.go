package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const reference = `#######
#.G...#
#...EG#
#.#.#G#
#..G#E#
#.....#
#######
`

func TestRunBatch(t *testing.T) {
	dir := t.TempDir()
	write := func(name, text string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(text), 0644))
		return path
	}
	good := write("good.txt", reference)
	bad := write("bad.txt", "#X#\n")
	stuck := write("stuck.txt", "#######\n#E.#.G#\n#######\n")

	for _, tc := range []struct {
		name   string
		inputs []string
		failed int
		err    string
	}{
		{"all pass", []string{good, good}, 0, ""},
		{"parse error", []string{good, bad}, 1, "1 of 2 inputs failed"},
		{"all fail", []string{stuck, bad, filepath.Join(dir, "missing.txt")}, 3, "3 of 3 inputs failed"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "summary.json")
			err := run(context.Background(), slog.New(slog.DiscardHandler), options{out: out}, tc.inputs)
			if tc.err == "" {
				require.NoError(t, err)
			} else {
				assert.EqualError(t, err, tc.err)
			}

			raw, err := os.ReadFile(out)
			require.NoError(t, err)
			var summary struct {
				Runs   int `json:"runs"`
				Failed int `json:"failed"`
				Inputs []struct {
					Input  string          `json:"input"`
					Result json.RawMessage `json:"result"`
					Error  string          `json:"error"`
				} `json:"inputs"`
			}
			require.NoError(t, json.Unmarshal(raw, &summary))
			assert.Equal(t, len(tc.inputs), summary.Runs)
			assert.Equal(t, tc.failed, summary.Failed)
			require.Len(t, summary.Inputs, len(tc.inputs))
			for i, e := range summary.Inputs {
				assert.Equal(t, tc.inputs[i], e.Input, "entries keep input order")
				if e.Error != "" {
					assert.Empty(t, e.Result)
					continue
				}
				var res battleResult
				require.NoError(t, json.Unmarshal(e.Result, &res))
				assert.Equal(t, 27730, res.Outcome.Score)
				assert.Equal(t, 47, res.Outcome.Rounds)
			}
		})
	}
}

func TestRunNoInput(t *testing.T) {
	assert.EqualError(t, run(context.Background(), slog.New(slog.DiscardHandler), options{}, nil), "no input file")
}
