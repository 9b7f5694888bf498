package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	skilltree "github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/internal/logging"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/internal/presentation/graph"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/internal/presentation/tui"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/domain"
)

// ErrQuit is returned by Exec when the user asks to leave the shell.
var ErrQuit = errors.New("quit")

// ErrUsage marks a command that was typed incorrectly.
var ErrUsage = errors.New("usage")

// Shell is a line-oriented planner console.
type Shell struct {
	planner  *skilltree.Planner
	resolver *Resolver
	out      io.Writer
	render   func(string) (string, error)
	styler   tui.Styler
	logger   *slog.Logger
	quiet    bool
}

// ShellOption configures a Shell.
type ShellOption func(*Shell)

// WithRenderer overrides the markdown renderer.
func WithRenderer(render func(string) (string, error)) ShellOption {
	return func(s *Shell) { s.render = render }
}

// WithStyler overrides the colour profile.
func WithStyler(styler tui.Styler) ShellOption {
	return func(s *Shell) { s.styler = styler }
}

// WithShellLogger sets the logger for command tracing.
func WithShellLogger(logger *slog.Logger) ShellOption {
	return func(s *Shell) { s.logger = logger }
}

// WithQuiet suppresses the prompt.
func WithQuiet(quiet bool) ShellOption {
	return func(s *Shell) { s.quiet = quiet }
}

// NewShell binds a shell to a planner and an output writer.
func NewShell(p *skilltree.Planner, out io.Writer, opts ...ShellOption) *Shell {
	s := &Shell{
		planner:  p,
		resolver: NewResolver(p.Catalog()),
		out:      out,
		render:   tui.RendererFor(out),
		styler:   tui.NewStyler(out),
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Planner returns the planner driven by the shell.
func (s *Shell) Planner() *skilltree.Planner {
	return s.planner
}

// Run reads commands from in until EOF, quit or ctx cancellation.
// Command errors are printed and the loop continues.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		s.prompt()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					if err != nil {
						return err
					}
				default:
				}
				return io.EOF
			}
			if err := s.Exec(line); err != nil {
				if errors.Is(err, ErrQuit) {
					return err
				}
				printSystemMessage(s.out, "%v", err)
			}
		}
	}
}

// RunScript executes every line of r and stops at the first failing command.
// Blank lines and lines starting with '#' are skipped.
func (s *Shell) RunScript(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := s.Exec(line); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return scanner.Err()
}

func (s *Shell) prompt() {
	if s.quiet {
		return
	}
	fmt.Fprintf(s.out, "[%s] > ", s.styler.Points(s.planner.TotalPoints(), s.planner.MaxPoints()))
}

// Exec runs one command line. Denied mutations are reported but are not errors.
func (s *Shell) Exec(line string) error {
	line, err := SanitizeLine(line)
	if err != nil {
		return err
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	cmd, args := strings.ToLower(fields[0]), fields[1:]
	s.logger.Debug("Command", "cmd", cmd, "args", args)

	switch cmd {
	case "+", "add", "allocate":
		return s.allocate(args)
	case "-", "remove", "deallocate":
		return s.deallocate(args)
	case "reset":
		return s.reset(args)
	case "tier":
		return s.tier(args)
	case "undo":
		s.history("undo", s.planner.Undo())
		return nil
	case "redo":
		s.history("redo", s.planner.Redo())
		return nil
	case "show", "build":
		return s.print(tui.Report(s.planner))
	case "summary":
		return s.print(tui.SummaryMarkdown(s.planner.BuildSummary()))
	case "radar":
		return s.print(tui.RadarMarkdown(s.planner.Radar()))
	case "skills", "ls":
		return s.skills(args)
	case "why":
		return s.why(args)
	case "history":
		printSystemMessage(s.out, "history %d/%d (undo: %t, redo: %t)",
			s.planner.HistoryCursor(), s.planner.HistoryLen()-1, s.planner.CanUndo(), s.planner.CanRedo())
		return nil
	case "graph":
		fmt.Fprint(s.out, graph.GenerateMermaid(s.planner.Catalog(), &graph.Overlay{
			Ranks:  s.planner.Allocation(),
			Locked: s.planner.Locked,
		}))
		return nil
	case "help", "?":
		fmt.Fprint(s.out, helpText)
		return nil
	case "quit", "exit", "q":
		return ErrQuit
	}
	return fmt.Errorf("%w: unknown command %q, type 'help'", ErrUsage, cmd)
}

func (s *Shell) skillArg(args []string, usage string) (domain.Skill, error) {
	if len(args) == 0 {
		return domain.Skill{}, fmt.Errorf("%w: %s", ErrUsage, usage)
	}
	id, err := s.resolver.Resolve(strings.Join(args, " "))
	if err != nil {
		return domain.Skill{}, err
	}
	skill, _ := s.planner.Catalog().Lookup(id)
	return skill, nil
}

func (s *Shell) allocate(args []string) error {
	skill, err := s.skillArg(args, "+ <skill>")
	if err != nil {
		return err
	}
	if denial := s.planner.AllocationDenial(skill.ID); !denial.Allowed() {
		printSystemMessage(s.out, "Cannot add %s: %s.", skill.Name, denial.Describe())
		return nil
	}
	s.planner.Allocate(skill.ID)
	s.reportRank(skill)
	return nil
}

func (s *Shell) deallocate(args []string) error {
	skill, err := s.skillArg(args, "- <skill>")
	if err != nil {
		return err
	}
	if denial := s.planner.DeallocationDenial(skill.ID); !denial.Allowed() {
		printSystemMessage(s.out, "Cannot remove %s: %s.", skill.Name, denial.Describe())
		return nil
	}
	s.planner.Deallocate(skill.ID)
	s.reportRank(skill)
	return nil
}

func (s *Shell) reset(args []string) error {
	if len(args) == 0 {
		s.planner.ResetAll()
		printSystemMessage(s.out, "All points refunded.")
		return nil
	}
	skill, err := s.skillArg(args, "reset [<skill>]")
	if err != nil {
		return err
	}
	if denial := s.planner.ResetDenial(skill.ID); !denial.Allowed() {
		printSystemMessage(s.out, "Cannot reset %s: %s.", skill.Name, denial.Describe())
		return nil
	}
	s.planner.ResetSkill(skill.ID)
	s.reportRank(skill)
	return nil
}

func (s *Shell) tier(args []string) error {
	if len(args) != 1 {
		printSystemMessage(s.out, "Expedition tier %d, %d points available.", s.planner.ExpeditionTier(), s.planner.MaxPoints())
		return nil
	}
	tier, err := strconv.Atoi(args[0])
	if err != nil || tier < 0 {
		return fmt.Errorf("%w: tier expects a non-negative integer, got %q", ErrUsage, args[0])
	}
	s.planner.SetExpeditionTier(tier)
	printSystemMessage(s.out, "Expedition tier %d, %d points available.", s.planner.ExpeditionTier(), s.planner.MaxPoints())
	if s.planner.OverLimit() {
		printSystemMessage(s.out, "Warning: %d points spent, %d over the limit.",
			s.planner.TotalPoints(), s.planner.TotalPoints()-s.planner.MaxPoints())
	}
	return nil
}

func (s *Shell) history(action string, applied bool) {
	if !applied {
		printSystemMessage(s.out, "Nothing to %s.", action)
		return
	}
	printSystemMessage(s.out, "%s applied, %d/%d points.", action,
		s.planner.TotalPoints(), s.planner.MaxPoints())
}

func (s *Shell) reportRank(skill domain.Skill) {
	rank := s.planner.Rank(skill.ID)
	printSystemMessage(s.out, "%s %s %d/%d (%d/%d points)",
		s.styler.Tree(skill.Tree, skill.Name), tui.Pips(rank, skill.MaxRank), rank, skill.MaxRank,
		s.planner.TotalPoints(), s.planner.MaxPoints())
}

func (s *Shell) skills(args []string) error {
	trees := domain.Trees()
	if len(args) > 0 {
		tree, err := domain.ParseTree(args[0])
		if err != nil {
			return err
		}
		trees = []domain.Tree{tree}
	}
	for _, tree := range trees {
		fmt.Fprintf(s.out, "%s (%d)\n", s.styler.Tree(tree, string(tree)), s.planner.PointsInTree(tree))
		for _, skill := range s.planner.Catalog().InTree(tree) {
			rank := s.planner.Rank(skill.ID)
			line := fmt.Sprintf("  %-28s %s %d/%d", skill.ID, tui.Pips(rank, skill.MaxRank), rank, skill.MaxRank)
			if s.planner.Locked(skill.ID) {
				line = s.styler.Muted(line + " locked")
			}
			fmt.Fprintln(s.out, line)
		}
	}
	return nil
}

func (s *Shell) why(args []string) error {
	skill, err := s.skillArg(args, "why <skill>")
	if err != nil {
		return err
	}
	add := s.planner.AllocationDenial(skill.ID)
	remove := s.planner.DeallocationDenial(skill.ID)
	printSystemMessage(s.out, "%s (%s, rank %d/%d)", skill.Name, skill.Tree, s.planner.Rank(skill.ID), skill.MaxRank)
	printSystemMessage(s.out, "add: %s", add.Describe())
	printSystemMessage(s.out, "remove: %s", remove.Describe())
	if len(skill.Prerequisites) > 0 {
		printSystemMessage(s.out, "requires: %s", strings.Join(skill.Prerequisites, ", "))
	}
	if skill.TreeRequirement > 0 {
		printSystemMessage(s.out, "needs %d points in %s (has %d)",
			skill.TreeRequirement, skill.Tree, s.planner.PointsInTree(skill.Tree))
	}
	return nil
}

func (s *Shell) print(markdown string) error {
	out, err := s.render(markdown)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	fmt.Fprint(s.out, out)
	return nil
}

const helpText = `Commands:
  + <skill>         add one rank (alias: add)
  - <skill>         remove one rank (alias: remove)
  reset [<skill>]   refund one skill, or everything
  tier [<n>]        show or set the expedition tier
  undo, redo        walk the history
  show              full build report
  summary           build summary groups
  radar             radar statistics
  skills [tree]     list skills with ranks
  why <skill>       explain whether a skill can change
  history           history position
  graph             mermaid graph of the build
  quit              leave
Skills may be given by id, name or a unique prefix.
`
