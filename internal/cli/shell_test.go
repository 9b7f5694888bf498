package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	skilltree "github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/internal/presentation/tui"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestShell(t *testing.T, opts ...skilltree.Option) (*Shell, *bytes.Buffer) {
	t.Helper()
	p, err := skilltree.New(opts...)
	require.NoError(t, err)
	var out bytes.Buffer
	return NewShell(p, &out,
		WithRenderer(tui.PlainRenderer),
		WithStyler(tui.PlainStyler()),
		WithQuiet(true),
	), &out
}

func TestShell_AllocateAndRemove(t *testing.T) {
	sh, out := newTestShell(t)

	require.NoError(t, sh.Exec("+ turtle crawl"))
	require.NoError(t, sh.Exec("add cond_turtle_crawl"))
	assert.Equal(t, 2, sh.Planner().Rank("cond_turtle_crawl"))
	assert.Contains(t, out.String(), ">>> Turtle Crawl")
	assert.Contains(t, out.String(), "2/5 (2/75 points)")

	require.NoError(t, sh.Exec("- turtle"))
	assert.Equal(t, 1, sh.Planner().Rank("cond_turtle_crawl"))
}

func TestShell_DeniedIsReportedNotFailed(t *testing.T) {
	sh, out := newTestShell(t)

	require.NoError(t, sh.Exec("+ thick skin"))
	assert.Equal(t, 0, sh.Planner().Rank("cond_thick_skin"))
	assert.Contains(t, out.String(), "Cannot add Thick Skin: "+domain.DenialPrerequisiteMissing.Describe())

	out.Reset()
	require.NoError(t, sh.Exec("- thick skin"))
	assert.Contains(t, out.String(), "Cannot remove Thick Skin")

	out.Reset()
	require.NoError(t, sh.Exec("reset thick skin"))
	assert.Contains(t, out.String(), "Cannot reset Thick Skin")
}

func TestShell_UnknownSkillAndCommand(t *testing.T) {
	sh, _ := newTestShell(t)

	err := sh.Exec("+ turtle crawk")
	require.ErrorIs(t, err, domain.ErrUnknownSkill)
	assert.Contains(t, err.Error(), "did you mean")

	assert.ErrorIs(t, sh.Exec("fly"), ErrUsage)
	assert.ErrorIs(t, sh.Exec("+"), ErrUsage)
	assert.ErrorIs(t, sh.Exec("tier -1"), ErrUsage)
	assert.ErrorIs(t, sh.Exec("tier lots"), ErrUsage)
	assert.ErrorIs(t, sh.Exec("quit"), ErrQuit)
	assert.NoError(t, sh.Exec("   "))
}

func TestShell_UndoRedoHistory(t *testing.T) {
	sh, out := newTestShell(t)

	require.NoError(t, sh.Exec("undo"))
	assert.Contains(t, out.String(), "Nothing to undo.")

	require.NoError(t, sh.Exec("+ turtle crawl"))
	require.NoError(t, sh.Exec("+ sturdy ankles"))
	require.NoError(t, sh.Exec("undo"))
	assert.Equal(t, 1, sh.Planner().TotalPoints())

	out.Reset()
	require.NoError(t, sh.Exec("history"))
	assert.Contains(t, out.String(), "history 1/2 (undo: true, redo: true)")

	require.NoError(t, sh.Exec("redo"))
	assert.Equal(t, 2, sh.Planner().TotalPoints())
	require.NoError(t, sh.Exec("reset"))
	assert.Equal(t, 0, sh.Planner().TotalPoints())
}

func TestShell_Tier(t *testing.T) {
	sh, out := newTestShell(t, skilltree.WithBudget(domain.Budget{BasePoints: 2, TierBonus: 1}))

	require.NoError(t, sh.Exec("tier 1"))
	assert.Contains(t, out.String(), "Expedition tier 1, 3 points available.")
	for range 3 {
		require.NoError(t, sh.Exec("+ turtle crawl"))
	}

	out.Reset()
	require.NoError(t, sh.Exec("tier 0"))
	assert.True(t, sh.Planner().OverLimit())
	assert.Contains(t, out.String(), "Warning: 3 points spent, 1 over the limit.")
}

func TestShell_Views(t *testing.T) {
	sh, out := newTestShell(t)
	require.NoError(t, sh.Exec("+ turtle crawl"))

	for _, cmd := range []string{"show", "summary", "radar", "skills", "skills mobility", "why thick skin", "graph", "help"} {
		out.Reset()
		require.NoError(t, sh.Exec(cmd), cmd)
		assert.NotEmpty(t, out.String(), cmd)
	}

	out.Reset()
	require.NoError(t, sh.Exec("why thick skin"))
	assert.Contains(t, out.String(), "requires: cond_turtle_crawl")
	assert.Contains(t, out.String(), "needs 5 points in Conditioning (has 1)")

	out.Reset()
	require.NoError(t, sh.Exec("graph"))
	assert.True(t, strings.HasPrefix(out.String(), "graph TD"))

	assert.Error(t, sh.Exec("skills cooking"))
}

func TestShell_Run(t *testing.T) {
	p, err := skilltree.New()
	require.NoError(t, err)
	var out bytes.Buffer
	sh := NewShell(p, &out, WithRenderer(tui.PlainRenderer), WithStyler(tui.PlainStyler()))

	err = sh.Run(context.Background(), strings.NewReader("+ turtle crawl\nnope\n+ turtle crawl\n"))
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 2, p.Rank("cond_turtle_crawl"))
	assert.Contains(t, out.String(), "[0/75] > ")
	assert.Contains(t, out.String(), "[2/75] > ")
	assert.Contains(t, out.String(), `>>> usage: unknown command "nope"`)

	err = sh.Run(context.Background(), strings.NewReader("quit\n+ turtle crawl\n"))
	assert.ErrorIs(t, err, ErrQuit)
	assert.Equal(t, 2, p.Rank("cond_turtle_crawl"))
}

func TestShell_RunCancelled(t *testing.T) {
	sh, _ := newTestShell(t)
	ctx, cancel := context.WithCancel(context.Background())

	pr, pw := io.Pipe()
	defer pw.Close()

	done := make(chan error, 1)
	go func() { done <- sh.Run(ctx, pr) }()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("shell did not stop after cancellation")
	}
}

func TestShell_RunScript(t *testing.T) {
	sh, _ := newTestShell(t)

	script := "# opening\n+ turtle crawl\n\n+ turtle crawl\ntier 2\n"
	require.NoError(t, sh.RunScript(strings.NewReader(script)))
	assert.Equal(t, 2, sh.Planner().Rank("cond_turtle_crawl"))
	assert.Equal(t, 85, sh.Planner().MaxPoints())

	err := sh.RunScript(strings.NewReader("undo\n+ nothing here at all\n+ turtle crawl\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2:")
	assert.Equal(t, 1, sh.Planner().Rank("cond_turtle_crawl"))

	require.NoError(t, sh.RunScript(strings.NewReader("quit\n+ turtle crawl\n")))
	assert.Equal(t, 1, sh.Planner().Rank("cond_turtle_crawl"))
}

func TestHandleExecutionError(t *testing.T) {
	assert.NoError(t, HandleExecutionError(nil))
	assert.NoError(t, HandleExecutionError(io.EOF))
	assert.NoError(t, HandleExecutionError(context.Canceled))
	assert.NoError(t, HandleExecutionError(ErrQuit))
	assert.Error(t, HandleExecutionError(ErrUsage))
}
