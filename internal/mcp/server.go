package mcp

import (
	"context"
	"log/slog"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/dockwm/internal/ipc"
)

const (
	ServerName    = "dockwm"
	ServerVersion = "0.1.0"
)

// DesktopClient is the subset of the IPC client used by the tools.
type DesktopClient interface {
	GetStatus() (*ipc.StatusData, error)
	ListWindows() (*ipc.WindowsData, error)
	WindowAction(windowID, action string) (*ipc.WindowInfo, error)
}

var _ DesktopClient = (*ipc.Client)(nil)

// Server is the MCP server exposing a running desktop's windows.
type Server struct {
	mcpServer *mcpsdk.Server
	client    DesktopClient
	logger    *slog.Logger

	// Polling hooks (primarily for tests).
	pollInterval time.Duration
	sleep        func(time.Duration)
}

// NewServer creates an MCP server that talks to the desktop through client.
func NewServer(client DesktopClient, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		client:       client,
		logger:       logger.With("component", "mcp"),
		pollInterval: 50 * time.Millisecond,
		sleep:        time.Sleep,
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_status",
		Description: "Report whether the dockwm desktop is running and count its open, minimized, maximized and closed windows.",
	}, s.handleGetStatus)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_windows",
		Description: "List every window of the running desktop with its id, title, interaction state and on-screen geometry in pixels.",
	}, s.handleListWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "window_action",
		Description: "Run an action on a window: close, minimize, maximize (toggles restore) or dock (the dock icon click, toggling minimized). Closed windows reject every action. Set wait to block until the animation has finished.",
	}, s.handleWindowAction)
}
