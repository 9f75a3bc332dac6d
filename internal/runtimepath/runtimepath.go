// Package runtimepath locates the control socket of a running desktop.
package runtimepath

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

const (
	// SocketEnv overrides the socket path for every dockwm command.
	SocketEnv  = "DOCKWM_SOCKET"
	socketName = "dockwm.sock"
)

// Dir returns the first usable runtime directory: $XDG_RUNTIME_DIR, then
// /run/user/<uid>, then a private /tmp/dockwm-runtime-<uid> created 0700.
func Dir() (string, error) {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return dir, nil
	}

	uid := strconv.Itoa(os.Getuid())
	if dir := filepath.Join("/run/user", uid); isDir(dir) {
		return dir, nil
	}

	dir := filepath.Join(os.TempDir(), "dockwm-runtime-"+uid)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create runtime dir: %w", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("failed to stat runtime dir: %w", err)
	}
	if info.Mode().Perm()&0077 != 0 {
		return "", fmt.Errorf("runtime dir %s is accessible by other users (mode %v)", dir, info.Mode().Perm())
	}
	return dir, nil
}

// SocketPath returns $DOCKWM_SOCKET, or dockwm.sock inside Dir.
func SocketPath() (string, error) {
	if p := os.Getenv(SocketEnv); p != "" {
		return p, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, socketName), nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
