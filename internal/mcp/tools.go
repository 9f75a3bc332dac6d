package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/dockwm/internal/desktop"
	"github.com/1broseidon/dockwm/internal/ipc"
)

const defaultWaitTimeout = 5 * time.Second

func (s *Server) handleGetStatus(_ context.Context, _ *mcpsdk.CallToolRequest, _ GetStatusInput) (*mcpsdk.CallToolResult, GetStatusOutput, error) {
	st, err := s.client.GetStatus()
	if err != nil {
		return nil, GetStatusOutput{}, err
	}
	return nil, GetStatusOutput{
		Running:       st.Running,
		UptimeSeconds: st.UptimeSeconds,
		Windows:       st.Windows,
		Open:          st.Open,
		Minimized:     st.Minimized,
		Maximized:     st.Maximized,
		Closed:        st.Closed,
		Animating:     st.Animating,
	}, nil
}

func (s *Server) handleListWindows(_ context.Context, _ *mcpsdk.CallToolRequest, args ListWindowsInput) (*mcpsdk.CallToolResult, ListWindowsOutput, error) {
	data, err := s.client.ListWindows()
	if err != nil {
		return nil, ListWindowsOutput{}, err
	}

	out := ListWindowsOutput{Windows: make([]ipc.WindowInfo, 0, len(data.Windows))}
	for _, w := range data.Windows {
		if w.Closed && !args.IncludeClosed {
			continue
		}
		out.Windows = append(out.Windows, w)
	}
	s.logger.Debug("list_windows", "count", len(out.Windows))
	return nil, out, nil
}

func (s *Server) handleWindowAction(ctx context.Context, _ *mcpsdk.CallToolRequest, args WindowActionInput) (*mcpsdk.CallToolResult, WindowActionOutput, error) {
	id := strings.TrimSpace(args.WindowID)
	if id == "" {
		return nil, WindowActionOutput{}, fmt.Errorf("window_id is required")
	}
	action := strings.ToLower(strings.TrimSpace(args.Action))
	if !validAction(action) {
		return nil, WindowActionOutput{}, fmt.Errorf("invalid action %q: must be one of %s", args.Action, strings.Join(desktop.Actions, ", "))
	}

	info, err := s.client.WindowAction(id, action)
	if err != nil {
		return nil, WindowActionOutput{}, err
	}
	s.logger.Info("window_action", "window", id, "action", action)

	out := WindowActionOutput{Window: *info, Settled: settled(*info)}
	if !args.Wait || out.Settled {
		return nil, out, nil
	}

	timeout := defaultWaitTimeout
	if args.Timeout > 0 {
		timeout = time.Duration(args.Timeout) * time.Second
	}
	w, ok, err := s.waitSettled(ctx, id, timeout)
	if err != nil {
		return nil, WindowActionOutput{}, err
	}
	if w != nil {
		out.Window = *w
	}
	out.Settled = ok
	return nil, out, nil
}

// waitSettled polls the desktop until the window stops animating.
func (s *Server) waitSettled(ctx context.Context, id string, timeout time.Duration) (*ipc.WindowInfo, bool, error) {
	deadline := time.Now().Add(timeout)
	var last *ipc.WindowInfo
	for {
		data, err := s.client.ListWindows()
		if err != nil {
			return nil, false, err
		}
		last = findWindow(data.Windows, id)
		if last == nil {
			return nil, false, fmt.Errorf("window %q disappeared", id)
		}
		if settled(*last) {
			return last, true, nil
		}
		if time.Now().After(deadline) {
			return last, false, nil
		}
		if err := ctx.Err(); err != nil {
			return last, false, err
		}
		s.sleep(s.pollInterval)
	}
}

func findWindow(windows []ipc.WindowInfo, id string) *ipc.WindowInfo {
	for i := range windows {
		if windows[i].ID == id {
			return &windows[i]
		}
	}
	return nil
}

func settled(w ipc.WindowInfo) bool {
	return !strings.HasSuffix(w.State, "-animating")
}

func validAction(action string) bool {
	for _, a := range desktop.Actions {
		if a == action {
			return true
		}
	}
	return false
}
