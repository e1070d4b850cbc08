package runner

import (
	"errors"
	"fmt"
)

const DefaultOutput = "SMBNoPassOutput.txt"

var ErrMissingOption = errors.New("missing required option")

type Options struct {
	Server     string
	UsersList  string
	SharesList string
	Output     string
	Verbose    bool

	Smbclient string
	NoColor   bool
	Debug     bool
}

func (o *Options) Validate() error {
	switch {
	case o.Server == "":
		return fmt.Errorf("%w: -s/--server", ErrMissingOption)
	case o.UsersList == "":
		return fmt.Errorf("%w: -uL/--users-list", ErrMissingOption)
	case o.SharesList == "":
		return fmt.Errorf("%w: -sL/--shares-list", ErrMissingOption)
	}
	if o.Output == "" {
		o.Output = DefaultOutput
	}
	return nil
}
