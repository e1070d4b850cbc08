package printer

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

const (
	SuccessTag = "[SUCCESS]"
	FailureTag = "[FAIL]"
	InfoTag    = "[INFO]"
	ErrorTag   = "[Error]"
)

type Formatter func(string, ...interface{}) string

type Printer struct {
	config *PrinterConfig
}

type PrinterConfig struct {
	Writer           io.Writer
	OutputFormatter  Formatter
	SuccessFormatter Formatter
	FailureFormatter Formatter
	InfoFormatter    Formatter
	ErrorFormatter   Formatter
}

func DefaultPrinterConfig() *PrinterConfig {
	return &PrinterConfig{
		Writer:           os.Stdout,
		OutputFormatter:  fmt.Sprintf,
		SuccessFormatter: color.New(color.FgGreen, color.Bold).SprintfFunc(),
		FailureFormatter: color.New(color.FgRed, color.Bold).SprintfFunc(),
		InfoFormatter:    color.New(color.FgBlue, color.Bold).SprintfFunc(),
		ErrorFormatter:   color.New(color.FgHiRed, color.Bold).SprintfFunc(),
	}
}

func NewPrinter() *Printer {
	return &Printer{config: DefaultPrinterConfig()}
}

func (p *Printer) SetConfigs(cfg *PrinterConfig) *Printer {
	p.config = cfg
	return p
}

func (p *Printer) Writer() io.Writer {
	return p.config.Writer
}

func (p *Printer) print(tag string, format string, a ...interface{}) {
	fmt.Fprintf(p.config.Writer, "%s %s\n", tag, p.config.OutputFormatter(format, a...))
}

func (p *Printer) PrintSuccess(format string, a ...interface{}) {
	p.print(p.config.SuccessFormatter(SuccessTag), format, a...)
}

func (p *Printer) PrintFailure(format string, a ...interface{}) {
	p.print(p.config.FailureFormatter(FailureTag), format, a...)
}

func (p *Printer) PrintInfo(format string, a ...interface{}) {
	p.print(p.config.InfoFormatter(InfoTag), format, a...)
}

func (p *Printer) PrintError(format string, a ...interface{}) {
	p.print(p.config.ErrorFormatter(ErrorTag), format, a...)
}
