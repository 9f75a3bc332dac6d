package ipc

import (
	"encoding/json"
	"fmt"
)

// CommandType represents different IPC command types
type CommandType string

const (
	CommandGetStatus    CommandType = "GET_STATUS"
	CommandListWindows  CommandType = "LIST_WINDOWS"
	CommandWindowAction CommandType = "WINDOW_ACTION"
)

// Request represents an IPC request from client to server
type Request struct {
	Command CommandType     `json:"command"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Response represents an IPC response from server to client
type Response struct {
	Status string          `json:"status"` // "OK" or "ERROR"
	Data   json.RawMessage `json:"data,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// StatusData represents the data returned by GET_STATUS
type StatusData struct {
	Running       bool    `json:"running"`
	UptimeSeconds int64   `json:"uptime_seconds"`
	Windows       int     `json:"windows"`
	Open          int     `json:"open"`
	Minimized     int     `json:"minimized"`
	Maximized     int     `json:"maximized"`
	Closed        int     `json:"closed"`
	Animating     bool    `json:"animating"`
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
}

// WindowInfo describes one window.
type WindowInfo struct {
	ID        string  `json:"id"`
	Title     string  `json:"title,omitempty"`
	State     string  `json:"state"`
	Maximized bool    `json:"maximized"`
	Minimized bool    `json:"minimized"`
	Closed    bool    `json:"closed"`
	HasIcon   bool    `json:"has_icon"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
}

// WindowsData represents the data returned by LIST_WINDOWS
type WindowsData struct {
	Windows []WindowInfo `json:"windows"`
}

// WindowActionPayload represents the payload for WINDOW_ACTION.
// Action is one of close, minimize, maximize or dock.
type WindowActionPayload struct {
	WindowID string `json:"window_id"`
	Action   string `json:"action"`
}

// NewOKResponse creates a successful response with optional data
func NewOKResponse(data interface{}) (*Response, error) {
	var dataBytes json.RawMessage
	if data != nil {
		bytes, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal response data: %w", err)
		}
		dataBytes = bytes
	}

	return &Response{
		Status: "OK",
		Data:   dataBytes,
	}, nil
}

// NewErrorResponse creates an error response with a message
func NewErrorResponse(errMsg string) *Response {
	return &Response{
		Status: "ERROR",
		Error:  errMsg,
	}
}

// ParseRequest parses a request from JSON bytes
func ParseRequest(data []byte) (*Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse request: %w", err)
	}
	return &req, nil
}

// Marshal converts a response to JSON bytes
func (r *Response) Marshal() ([]byte, error) {
	return json.Marshal(r)
}
