package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aretw0/asciiwalk"
	"github.com/aretw0/asciiwalk/internal/logging"
	"github.com/aretw0/asciiwalk/pkg/domain"
	"github.com/aretw0/asciiwalk/pkg/ports"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// LegendURI is the resource describing the characters a map may contain.
const LegendURI = "asciiwalk://legend"

// WalkResponse is the structured output of the follow_path tool.
type WalkResponse struct {
	Letters    string            `json:"letters" jsonschema_description:"Waypoint letters in first-visit order"`
	Characters string            `json:"characters" jsonschema_description:"Every character on the path, repeats included"`
	Steps      int               `json:"steps" jsonschema_description:"Number of moves after the start marker"`
	Trace      []domain.Position `json:"trace,omitempty" jsonschema_description:"Visited positions, when requested"`
}

// Legend documents the recognised map characters.
type Legend struct {
	Start      string `json:"start"`
	Horizontal string `json:"horizontal"`
	Vertical   string `json:"vertical"`
	Corner     string `json:"corner"`
	End        string `json:"end"`
	Waypoints  string `json:"waypoints"`
}

// Server wraps an engine and exposes it as an MCP Server.
type Server struct {
	engine    ports.Walker
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
// The engine should keep traces (asciiwalk.WithTrace) if clients may ask for them.
func NewServer(engine ports.Walker, logger *slog.Logger) *Server {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Server{
		engine:    engine,
		logger:    logger,
		mcpServer: server.NewMCPServer("asciiwalk-mcp", strings.TrimSpace(asciiwalk.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	followTool := mcp.NewTool("follow_path",
		mcp.WithDescription("Follow the path on an ASCII map from '@' to 'x' and report the letters and characters on it."),
		mcp.WithString("map", mcp.Required(), mcp.Description("The ASCII map, rows separated by newlines")),
		mcp.WithBoolean("trace", mcp.Description("Include the visited positions in the response")),
		mcp.WithOutputSchema[WalkResponse](),
	)
	s.mcpServer.AddTool(followTool, mcp.NewStructuredToolHandler(s.handleFollowPath))
}

func (s *Server) handleFollowPath(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (WalkResponse, error) {
	raw, _ := args["map"].(string)
	trace, _ := args["trace"].(bool)

	res, err := s.engine.Walk(ctx, raw)
	if err != nil {
		if errors.Is(err, domain.ErrStartNotFound) {
			return WalkResponse{}, fmt.Errorf("map has no start marker %q", string(domain.Start))
		}
		s.logger.Warn("MCP follow_path failed", "error", err)
		return WalkResponse{}, fmt.Errorf("walk failed: %w", err)
	}

	resp := WalkResponse{
		Letters:    res.Letters,
		Characters: res.Characters,
		Steps:      res.Steps,
	}
	if trace {
		resp.Trace = res.Trace
	}
	return resp, nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(LegendURI, "Map Legend",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, _ := json.Marshal(legend())

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      LegendURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}

func legend() Legend {
	return Legend{
		Start:      string(domain.Start),
		Horizontal: string(domain.Horizontal),
		Vertical:   string(domain.Vertical),
		Corner:     string(domain.Corner),
		End:        string(domain.End),
		Waypoints:  "A-Z",
	}
}
