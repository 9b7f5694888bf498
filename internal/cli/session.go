package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/internal/presentation/tui"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by RunPlan.
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
)

// RunSession starts the interactive shell on in and out until EOF, quit or cancellation.
func RunSession(ctx context.Context, opts RunOptions, in io.Reader, out io.Writer) error {
	logger := CreateLogger(opts.Debug)
	planner, err := createPlanner(opts, logger)
	if err != nil {
		return err
	}

	if !opts.Quiet {
		tui.PrintBanner(out)
		printSystemMessage(out, "%d points available at expedition tier %d. Type 'help' for commands.",
			planner.MaxPoints(), planner.ExpeditionTier())
	}

	shell := NewShell(planner, out, WithShellLogger(logger), WithQuiet(opts.Quiet))
	err = shell.Run(ctx, in)
	if !opts.Quiet {
		logCompletion(out, err, signalOf(ctx), planner.TotalPoints(), planner.MaxPoints())
	}
	return HandleExecutionError(err)
}

// RunPlan replays a script of shell commands and writes the resulting build.
func RunPlan(opts RunOptions, script io.Reader, out io.Writer) error {
	logger := CreateLogger(opts.Debug)
	planner, err := createPlanner(opts, logger)
	if err != nil {
		return err
	}

	shell := NewShell(planner, io.Discard, WithShellLogger(logger), WithQuiet(true))
	if err := shell.RunScript(script); err != nil {
		return err
	}

	switch opts.Format {
	case "", FormatMarkdown:
		rendered, err := tui.RendererFor(out)(tui.Report(planner))
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		_, err = fmt.Fprint(out, rendered)
		return err
	case FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(planner.Snapshot())
	case FormatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(planner.Snapshot()); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: unknown format %q (expected markdown, json or yaml)", ErrUsage, opts.Format)
}
