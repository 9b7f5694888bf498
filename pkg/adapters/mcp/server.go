package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	skilltree "github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/internal/logging"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/catalog"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/domain"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/session"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// CatalogURI is the resource exposing the catalog definitions.
const CatalogURI = "skilltree://catalog"

// Server exposes the build workbench as an MCP server.
type Server struct {
	builds    *session.Manager
	catalog   *catalog.Catalog
	mcpServer *server.MCPServer
	logger    *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the logger used for tool traces.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(builds *session.Manager, cat *catalog.Catalog, opts ...Option) *Server {
	s := &Server{
		builds:    builds,
		catalog:   cat,
		mcpServer: server.NewMCPServer("skilltree-mcp", strings.TrimSpace(skilltree.Version)),
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops when ctx ends.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

// BuildArgs addresses one build.
type BuildArgs struct {
	BuildID string `json:"build_id"`
}

// SkillArgs addresses one skill of a build.
type SkillArgs struct {
	BuildID string `json:"build_id"`
	SkillID string `json:"skill_id"`
}

// TierArgs carries an expedition tier.
type TierArgs struct {
	BuildID        string `json:"build_id"`
	ExpeditionTier *int   `json:"expedition_tier"`
}

// ListSkillsArgs filters the catalog listing.
type ListSkillsArgs struct {
	Tree string `json:"tree"`
}

// MutationResult aligns with the HTTP mutation response.
type MutationResult struct {
	Applied bool               `json:"applied" jsonschema_description:"Whether the action changed the build"`
	Reason  string             `json:"reason,omitempty" jsonschema_description:"Why the action was ignored"`
	Build   skilltree.Snapshot `json:"build" jsonschema_description:"The build after the action"`
}

// BuildView is the full read model with derived views.
type BuildView struct {
	ID      string              `json:"id"`
	Build   skilltree.Snapshot  `json:"build"`
	Summary domain.BuildSummary `json:"summary"`
	Radar   domain.Radar        `json:"radar"`
}

// SkillList is returned by list_skills.
type SkillList struct {
	Skills []domain.Skill `json:"skills"`
}

func (s *Server) registerTools() {
	buildID := mcp.WithString("build_id", mcp.Required(), mcp.Description("Build ID returned by create_build"))
	skillID := mcp.WithString("skill_id", mcp.Required(), mcp.Description("Skill ID from list_skills"))

	s.mcpServer.AddTool(mcp.NewTool("create_build",
		mcp.WithDescription("Open a new empty build and return its ID."),
		mcp.WithNumber("expedition_tier", mcp.Description("Starting expedition tier (default 0)"), mcp.Min(0)),
		mcp.WithOutputSchema[BuildView](),
	), mcp.NewStructuredToolHandler(s.handleCreateBuild))

	s.mcpServer.AddTool(mcp.NewTool("get_build",
		mcp.WithDescription("Read a build with its summary and radar statistics."),
		buildID,
		mcp.WithOutputSchema[BuildView](),
	), mcp.NewStructuredToolHandler(s.handleGetBuild))

	s.mcpServer.AddTool(mcp.NewTool("allocate_point",
		mcp.WithDescription("Add one rank to a skill. Ignored actions report the reason."),
		buildID, skillID,
		mcp.WithOutputSchema[MutationResult](),
	), mcp.NewStructuredToolHandler(s.handleAllocate))

	s.mcpServer.AddTool(mcp.NewTool("deallocate_point",
		mcp.WithDescription("Remove one rank from a skill."),
		buildID, skillID,
		mcp.WithOutputSchema[MutationResult](),
	), mcp.NewStructuredToolHandler(s.handleDeallocate))

	s.mcpServer.AddTool(mcp.NewTool("reset_skill",
		mcp.WithDescription("Remove every rank of a skill in one step."),
		buildID, skillID,
		mcp.WithOutputSchema[MutationResult](),
	), mcp.NewStructuredToolHandler(s.handleResetSkill))

	s.mcpServer.AddTool(mcp.NewTool("reset_build",
		mcp.WithDescription("Clear every skill of the build in one step."),
		buildID,
		mcp.WithOutputSchema[MutationResult](),
	), mcp.NewStructuredToolHandler(s.handleResetBuild))

	s.mcpServer.AddTool(mcp.NewTool("set_expedition_tier",
		mcp.WithDescription("Change the expedition tier. Each tier adds points to the budget."),
		buildID,
		mcp.WithNumber("expedition_tier", mcp.Required(), mcp.Description("New tier, 0 or more"), mcp.Min(0)),
		mcp.WithOutputSchema[MutationResult](),
	), mcp.NewStructuredToolHandler(s.handleSetTier))

	s.mcpServer.AddTool(mcp.NewTool("undo",
		mcp.WithDescription("Step back one history entry."),
		buildID,
		mcp.WithOutputSchema[MutationResult](),
	), mcp.NewStructuredToolHandler(s.handleUndo))

	s.mcpServer.AddTool(mcp.NewTool("redo",
		mcp.WithDescription("Step forward one history entry."),
		buildID,
		mcp.WithOutputSchema[MutationResult](),
	), mcp.NewStructuredToolHandler(s.handleRedo))

	s.mcpServer.AddTool(mcp.NewTool("list_skills",
		mcp.WithDescription("List the catalog skills, optionally for one tree."),
		mcp.WithString("tree", mcp.Description("Conditioning, Mobility or Survival")),
		mcp.WithOutputSchema[SkillList](),
	), mcp.NewStructuredToolHandler(s.handleListSkills))
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(CatalogURI, "Skill Catalog",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.catalog.Skills())
		if err != nil {
			return nil, fmt.Errorf("failed to encode catalog: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      CatalogURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
