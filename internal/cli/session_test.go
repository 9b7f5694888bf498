package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	skilltree "github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func defaultOptions(t *testing.T) RunOptions {
	t.Helper()
	cfg, err := config.LoadFrom(map[string]string{})
	require.NoError(t, err)
	return RunOptions{Config: cfg, Quiet: true}
}

func TestRunPlan_Formats(t *testing.T) {
	opts := defaultOptions(t)
	script := "+ turtle crawl\n+ turtle crawl\n+ sturdy ankles\n"

	t.Run("json", func(t *testing.T) {
		opts := opts
		opts.Format = FormatJSON
		opts.Name = "scripted"
		var out bytes.Buffer
		require.NoError(t, RunPlan(opts, strings.NewReader(script), &out))

		var snap skilltree.Snapshot
		require.NoError(t, json.Unmarshal(out.Bytes(), &snap))
		assert.Equal(t, "scripted", snap.Name)
		assert.Equal(t, 3, snap.TotalPoints)
		assert.Equal(t, 2, snap.Ranks["cond_turtle_crawl"])
	})

	t.Run("yaml", func(t *testing.T) {
		opts := opts
		opts.Format = FormatYAML
		var out bytes.Buffer
		require.NoError(t, RunPlan(opts, strings.NewReader(script), &out))

		var snap skilltree.Snapshot
		require.NoError(t, yaml.Unmarshal(out.Bytes(), &snap))
		assert.Equal(t, 3, snap.TotalPoints)
		assert.Equal(t, 75, snap.MaxPoints)
	})

	t.Run("markdown", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, RunPlan(opts, strings.NewReader(script), &out))
		assert.Contains(t, out.String(), "**Points:** 3 / 75")
	})

	t.Run("unknown format", func(t *testing.T) {
		opts := opts
		opts.Format = "xml"
		assert.ErrorIs(t, RunPlan(opts, strings.NewReader(script), &bytes.Buffer{}), ErrUsage)
	})
}

func TestRunPlan_ScriptError(t *testing.T) {
	err := RunPlan(defaultOptions(t), strings.NewReader("+ turtle crawl\njump\n"), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2:")
}

func TestRunPlan_ConfigBudgetAndCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`skills:
  - id: dash
    name: Dash
    tree: Mobility
    kind: scaling
    max_rank: 3
    stats:
      Agility: 10
`), 0o644))

	cfg, err := config.LoadFrom(map[string]string{
		"SKILLTREE_CATALOG":     path,
		"SKILLTREE_BASE_POINTS": "1",
		"SKILLTREE_TIER_BONUS":  "1",
		"SKILLTREE_TIER":        "1",
	})
	require.NoError(t, err)

	var out bytes.Buffer
	opts := RunOptions{Config: cfg, Format: FormatJSON}
	require.NoError(t, RunPlan(opts, strings.NewReader("+ dash\n+ dash\n+ dash\n"), &out))

	var snap skilltree.Snapshot
	require.NoError(t, json.Unmarshal(out.Bytes(), &snap))
	assert.Equal(t, 2, snap.MaxPoints)
	assert.Equal(t, 2, snap.Ranks["dash"])
	require.Len(t, snap.Skills, 1)
	assert.Equal(t, "budget_exhausted", string(snap.Skills[0].Denial))
}

func TestRunPlan_MissingCatalog(t *testing.T) {
	opts := defaultOptions(t)
	opts.Config.Catalog = filepath.Join(t.TempDir(), "missing.yaml")
	err := RunPlan(opts, strings.NewReader(""), &bytes.Buffer{})
	assert.ErrorContains(t, err, "error loading catalog")
}

func TestRunSession(t *testing.T) {
	opts := defaultOptions(t)
	opts.Quiet = false
	var out bytes.Buffer

	err := RunSession(context.Background(), opts, strings.NewReader("+ turtle crawl\nquit\n"), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), ">>> 75 points available at expedition tier 0.")
	assert.Contains(t, out.String(), ">>> Final build: 1/75 points.")
}

func TestRunSession_InterruptedBySignal(t *testing.T) {
	opts := defaultOptions(t)
	opts.Quiet = false

	ctx, cancel := context.WithCancel(context.Background())
	sc := &SignalContext{Context: ctx, Cancel: cancel, sigVal: os.Interrupt}
	sc.Cancel()

	pr, pw := io.Pipe()
	defer pw.Close()

	var out bytes.Buffer
	err := RunSession(sc, opts, pr, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "[CTRL+C]\n>>> Interrupted at 0/75 points.")
	assert.NotContains(t, out.String(), "Final build")
}

func TestLogCompletion(t *testing.T) {
	tests := []struct {
		name string
		err  error
		sig  os.Signal
		want string
	}{
		{"finished", ErrQuit, nil, "\n>>> Final build: 3/80 points.\n"},
		{"interrupt", context.Canceled, os.Interrupt, "[CTRL+C]\n>>> Interrupted at 3/80 points.\n"},
		{"terminate", context.Canceled, syscall.SIGTERM, "\n>>> Terminated at 3/80 points.\n"},
		{"cancelled", context.Canceled, nil, "\n>>> Interrupted at 3/80 points.\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			logCompletion(&out, tt.err, tt.sig, 3, 80)
			assert.Equal(t, tt.want, out.String())
		})
	}
}
