package runner

import (
	"context"
	"errors"
	"os"

	"github.com/5amu/smbnopass/internal/printer"
	"github.com/5amu/smbnopass/internal/prober"
	"github.com/5amu/smbnopass/internal/smbclient"
	"github.com/5amu/smbnopass/internal/utils"
	"github.com/fatih/color"
	"github.com/rodaine/table"
	log "github.com/sirupsen/logrus"
)

var ErrInvalidInput = errors.New("users and shares lists must be non-empty")

type Runner struct {
	opts    *Options
	prober  *prober.Prober
	printer *printer.Printer
	logger  *log.Logger

	probes    int
	successes []*prober.Result
}

func New(opts *Options, client smbclient.Client) *Runner {
	logger := log.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(log.WarnLevel)
	if opts.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	return &Runner{
		opts:    opts,
		prober:  prober.NewProber(client),
		printer: printer.NewPrinter(),
		logger:  logger,
	}
}

func (r *Runner) SetPrinter(p *printer.Printer) *Runner {
	r.printer = p
	return r
}

func (r *Runner) SetLogger(l *log.Logger) *Runner {
	r.logger = l
	return r
}

func (r *Runner) load(path string) []string {
	lines, err := utils.LoadLines(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			r.printer.PrintError("File '%s' not found.", path)
		} else {
			r.printer.PrintError("%v", err)
		}
		return nil
	}
	return lines
}

// Run probes every user against every share, in user-major order. Individual
// probe outcomes never make it fail.
func (r *Runner) Run(ctx context.Context) error {
	users := r.load(r.opts.UsersList)
	shares := r.load(r.opts.SharesList)
	if len(users) == 0 || len(shares) == 0 {
		r.printer.PrintError("Ensure both files are correctly specified and non-empty.")
		return ErrInvalidInput
	}

	r.printer.PrintInfo("Testing SMB access on server '%s' with %d users and %d shares...", r.opts.Server, len(users), len(shares))

	for _, p := range utils.NewProbesClusterBomb(users, shares) {
		res := r.prober.Probe(ctx, r.opts.Server, p.Share, p.User)
		r.probes++
		r.logger.WithFields(log.Fields{
			"server":    res.Server,
			"share":     res.Share,
			"user":      res.User,
			"outcome":   res.Outcome,
			"exit_code": res.ExitCode,
		}).Debug("probe finished")
		r.report(res)
	}

	r.summary()
	r.printer.PrintInfo("Results saved to '%s'", r.opts.Output)
	return nil
}

func (r *Runner) report(res *prober.Result) {
	switch res.Outcome {
	case prober.Success:
		r.successes = append(r.successes, res)
		if err := utils.AppendLine(r.opts.Output, printer.SuccessTag+" "+res.Message()); err != nil {
			r.printer.PrintError("Failed to write to '%s': %v", r.opts.Output, err)
		}
		if r.opts.Verbose {
			r.printer.PrintSuccess("%s", res.Message())
		}
	case prober.Failure:
		if r.opts.Verbose {
			r.printer.PrintFailure("%s", res.Message())
		}
	default:
		r.printer.PrintError("%s", res.Message())
	}
}

func (r *Runner) summary() {
	r.printer.PrintInfo("%d of %d probes granted no-password access", len(r.successes), r.probes)
	if len(r.successes) == 0 {
		return
	}

	tbl := table.New("Server", "Share", "User").WithWriter(r.printer.Writer())
	tbl.WithHeaderFormatter(color.New(color.FgGreen, color.Underline).SprintfFunc()).WithFirstColumnFormatter(color.New(color.FgYellow).SprintfFunc())
	for _, res := range r.successes {
		tbl.AddRow(res.Server, res.Share, res.User)
	}
	tbl.Print()
}
