package main

import (
	"context"
	"errors"
	"os"

	"github.com/5amu/smbnopass/internal/printer"
	"github.com/5amu/smbnopass/internal/runner"
	"github.com/5amu/smbnopass/internal/smbclient"
	"github.com/fatih/color"
	"github.com/projectdiscovery/goflags"
)

var opts runner.Options

func cliparse() error {
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription("Check which users can access SMB shares without a password.")

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Server, "server", "s", "", "target SMB server address"),
		flagSet.StringVarP(&opts.UsersList, "users-list", "uL", "", "file with one username per line"),
		flagSet.StringVarP(&opts.SharesList, "shares-list", "sL", "", "file with one share name per line"),
	)
	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.Output, "output", "o", runner.DefaultOutput, "file successful results are appended to"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "print the outcome of every probe"),
		flagSet.BoolVarP(&opts.NoColor, "no-color", "nc", false, "disable colored output"),
		flagSet.BoolVarP(&opts.Debug, "debug", "d", false, "log every smbclient invocation to stderr"),
	)
	flagSet.CreateGroup("environment", "Environment",
		flagSet.StringVarP(&opts.Smbclient, "smbclient", "sc", smbclient.DefaultBinary, "smbclient binary name or path"),
	)

	return flagSet.Parse()
}

func main() {
	prt := printer.NewPrinter()

	if err := cliparse(); err != nil {
		prt.PrintError("%v", err)
		os.Exit(1)
	}
	if opts.NoColor {
		color.NoColor = true
	}
	if err := opts.Validate(); err != nil {
		prt.PrintError("%v", err)
		os.Exit(1)
	}

	err := runner.New(&opts, smbclient.NewExec(opts.Smbclient)).SetPrinter(prt).Run(context.Background())
	if err != nil && !errors.Is(err, runner.ErrInvalidInput) {
		prt.PrintError("%v", err)
		os.Exit(1)
	}
}
