package tui

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/1broseidon/dockwm/internal/ipc"
	"github.com/1broseidon/dockwm/internal/window"
)

// errNotReady is returned before the first frame has sized the desktop.
var errNotReady = errors.New("desktop not ready")

type response struct {
	value any
	err   error
}

// requestMsg runs fn on the update loop and sends the result to reply.
type requestMsg struct {
	fn    func(m *Model) (any, error)
	reply chan response
}

// Bridge serves IPC requests by running them on the bubbletea update loop.
type Bridge struct {
	send    func(tea.Msg)
	timeout time.Duration
}

var _ ipc.Handler = (*Bridge)(nil)

// NewBridge returns a bridge delivering requests through send, usually
// (*tea.Program).Send.
func NewBridge(send func(tea.Msg)) *Bridge {
	return &Bridge{send: send, timeout: 2 * time.Second}
}

func (b *Bridge) do(fn func(m *Model) (any, error)) (any, error) {
	reply := make(chan response, 1)
	go b.send(requestMsg{fn: fn, reply: reply})

	select {
	case r := <-reply:
		return r.value, r.err
	case <-time.After(b.timeout):
		return nil, fmt.Errorf("desktop did not answer within %s", b.timeout)
	}
}

func (b *Bridge) Status() (*ipc.StatusData, error) {
	v, err := b.do(func(m *Model) (any, error) {
		if m.desk == nil {
			return nil, errNotReady
		}
		return m.statusData(), nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*ipc.StatusData), nil
}

func (b *Bridge) ListWindows() (*ipc.WindowsData, error) {
	v, err := b.do(func(m *Model) (any, error) {
		if m.desk == nil {
			return nil, errNotReady
		}
		data := &ipc.WindowsData{Windows: []ipc.WindowInfo{}}
		for _, st := range m.desk.Statuses() {
			data.Windows = append(data.Windows, m.windowInfo(st))
		}
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*ipc.WindowsData), nil
}

func (b *Bridge) WindowAction(p ipc.WindowActionPayload) (*ipc.WindowInfo, error) {
	v, err := b.do(func(m *Model) (any, error) {
		if m.desk == nil {
			return nil, errNotReady
		}
		if err := m.desk.Action(p.WindowID, p.Action); err != nil {
			return nil, err
		}
		m.focused = p.WindowID
		st, err := m.desk.Status(p.WindowID)
		if err != nil {
			return nil, err
		}
		info := m.windowInfo(st)
		return &info, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*ipc.WindowInfo), nil
}

func (m Model) statusData() *ipc.StatusData {
	stack := m.desk.Layout().Stack
	data := &ipc.StatusData{
		Animating: m.backend.Timeline().Active(),
		Width:     stack.Width,
		Height:    stack.Height,
	}
	for _, st := range m.desk.Statuses() {
		data.Windows++
		switch {
		case st.Closed:
			data.Closed++
		case st.Minimized:
			data.Minimized++
		default:
			data.Open++
		}
		if st.Maximized && !st.Closed {
			data.Maximized++
		}
	}
	return data
}

func (m Model) windowInfo(st window.Status) ipc.WindowInfo {
	info := ipc.WindowInfo{
		ID:        st.ID,
		Title:     m.title(st.ID),
		State:     st.State.String(),
		Maximized: st.Maximized,
		Minimized: st.Minimized,
		Closed:    st.Closed,
		X:         st.Bounds.X,
		Y:         st.Bounds.Y,
		Width:     st.Bounds.Width,
		Height:    st.Bounds.Height,
	}
	if c, err := m.desk.Controller(st.ID); err == nil {
		info.HasIcon = c.HasIcon()
	}
	return info
}

