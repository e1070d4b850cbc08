// Package smbclient runs the Samba smbclient binary to attempt anonymous
// connections to a share.
package smbclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
)

const DefaultBinary = "smbclient"

// ErrBinaryNotFound is returned when the client binary cannot be located or
// executed.
var ErrBinaryNotFound = errors.New("smbclient binary not found")

// Status is what the client reported for one connection attempt.
type Status struct {
	ExitCode int
	Stderr   string
}

// Client attempts a connection to //server/share as user with no password.
type Client interface {
	Connect(ctx context.Context, server, share, user string) (*Status, error)
}

// Exec implements Client by spawning Binary.
type Exec struct {
	Binary string
}

func NewExec(binary string) *Exec {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Exec{Binary: binary}
}

// Args returns the command line arguments used for one attempt.
func Args(server, share, user string) []string {
	return []string{
		fmt.Sprintf("//%s/%s", server, share),
		"-U", user,
		"-N",
		"-c", "exit",
	}
}

func (e *Exec) Connect(ctx context.Context, server, share, user string) (*Status, error) {
	bin := e.Binary
	if bin == "" {
		bin = DefaultBinary
	}

	cmd := exec.CommandContext(ctx, bin, Args(server, share, user)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return &Status{ExitCode: 0, Stderr: stderr.String()}, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &Status{ExitCode: exitErr.ExitCode(), Stderr: stderr.String()}, nil
	}
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
		return nil, fmt.Errorf("%w: %s: %v", ErrBinaryNotFound, bin, err)
	}
	return nil, err
}
