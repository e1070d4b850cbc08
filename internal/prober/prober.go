// Package prober classifies anonymous connection attempts against SMB shares.
package prober

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/5amu/smbnopass/internal/smbclient"
)

type Outcome int

const (
	Success Outcome = iota
	Failure
	EnvironmentError
	UnexpectedError
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case Failure:
		return "failure"
	case EnvironmentError:
		return "environment-error"
	case UnexpectedError:
		return "unexpected-error"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

type Result struct {
	Server     string
	Share      string
	User       string
	Outcome    Outcome
	ExitCode   int
	Diagnostic string
	Err        error
}

func (r *Result) Message() string {
	switch r.Outcome {
	case Success:
		return fmt.Sprintf("User '%s' has no-password access to share '%s' on server '%s'", r.User, r.Share, r.Server)
	case Failure:
		return fmt.Sprintf("User '%s' cannot access share '%s' on server '%s': %s", r.User, r.Share, r.Server, r.Diagnostic)
	case EnvironmentError:
		return fmt.Sprintf("smbclient not found or not executable: %v", r.Err)
	default:
		return fmt.Sprintf("Failed to run smbclient: %v", r.Err)
	}
}

type Prober struct {
	client smbclient.Client
}

func NewProber(client smbclient.Client) *Prober {
	return &Prober{client: client}
}

// Probe attempts one anonymous connection. It never fails: errors are
// reported through the Outcome of the returned Result.
func (p *Prober) Probe(ctx context.Context, server, share, user string) *Result {
	res := &Result{Server: server, Share: share, User: user}

	status, err := p.client.Connect(ctx, server, share, user)
	switch {
	case errors.Is(err, smbclient.ErrBinaryNotFound):
		res.Outcome = EnvironmentError
		res.Err = err
	case err != nil:
		res.Outcome = UnexpectedError
		res.Err = err
	case status == nil:
		res.Outcome = UnexpectedError
		res.Err = errors.New("no status reported")
	case status.ExitCode == 0:
		res.Outcome = Success
	default:
		res.Outcome = Failure
		res.ExitCode = status.ExitCode
		res.Diagnostic = strings.TrimSpace(status.Stderr)
	}
	return res
}
