package mcp

import "github.com/1broseidon/dockwm/internal/ipc"

// GetStatusInput is the input for the get_status tool.
type GetStatusInput struct{}

// GetStatusOutput is the output for the get_status tool.
type GetStatusOutput struct {
	Running       bool  `json:"running"`
	UptimeSeconds int64 `json:"uptime_seconds"`
	Windows       int   `json:"windows"`
	Open          int   `json:"open"`
	Minimized     int   `json:"minimized"`
	Maximized     int   `json:"maximized"`
	Closed        int   `json:"closed"`
	Animating     bool  `json:"animating"`
}

// ListWindowsInput is the input for the list_windows tool.
type ListWindowsInput struct {
	IncludeClosed bool `json:"include_closed,omitempty" jsonschema:"When true, include windows that have been closed (default: false)"`
}

// ListWindowsOutput is the output for the list_windows tool.
type ListWindowsOutput struct {
	Windows []ipc.WindowInfo `json:"windows"`
}

// WindowActionInput is the input for the window_action tool.
type WindowActionInput struct {
	WindowID string `json:"window_id" jsonschema:"required,Window id as reported by list_windows"`
	Action   string `json:"action" jsonschema:"required,One of: close, minimize, maximize, dock"`
	Wait     bool   `json:"wait,omitempty" jsonschema:"When true, wait until the window has finished animating before returning"`
	Timeout  int    `json:"timeout,omitempty" jsonschema:"Timeout in seconds when wait is set (default: 5)"`
}

// WindowActionOutput is the output for the window_action tool.
type WindowActionOutput struct {
	Window ipc.WindowInfo `json:"window"`
	// Settled is false when wait timed out before the animation ended.
	Settled bool `json:"settled"`
}
