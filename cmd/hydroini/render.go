package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/dmitrymomot/hydroini/pkg/ini"
	"github.com/dmitrymomot/hydroini/pkg/validator"
)

type printer struct {
	out     io.Writer
	message func(validator.Violation) string

	title *color.Color
	ok    *color.Color
	fail  *color.Color
	kind  *color.Color
	dim   *color.Color
}

func newPrinter(out io.Writer, message func(validator.Violation) string) *printer {
	if message == nil {
		message = func(v validator.Violation) string { return v.Message }
	}
	return &printer{
		out:     out,
		message: message,
		title:   color.New(color.Bold),
		ok:      color.New(color.FgGreen),
		fail:    color.New(color.FgRed, color.Bold),
		kind:    color.New(color.FgYellow),
		dim:     color.New(color.FgHiBlack),
	}
}

// results prints the failing sections of one file and a summary line.
// It returns the number of failing sections.
func (p *printer) results(path string, results []ini.Result) int {
	failed := p.failures(path, results)
	if failed == 0 {
		p.ok.Fprintf(p.out, "%s: %d section(s) valid\n", path, len(results))
	}
	return failed
}

// failures prints only the failing sections, if any, and their count.
func (p *printer) failures(path string, results []ini.Result) int {
	failed := 0
	for _, res := range results {
		if res.Err == nil {
			continue
		}
		if failed == 0 {
			p.title.Fprintln(p.out, path)
		}
		failed++
		p.section(res)
	}
	if failed > 0 {
		p.fail.Fprintf(p.out, "%s: %d of %d section(s) invalid\n", path, failed, len(results))
	}
	return failed
}

func (p *printer) section(res ini.Result) {
	report := validator.ExtractReport(res.Err)
	if report == nil {
		fmt.Fprintf(p.out, "  [%s] #%d: ", res.Section.Header, res.Index+1)
		p.fail.Fprintln(p.out, res.Err)
		return
	}

	fmt.Fprintf(p.out, "  [%s] #%d %s", res.Section.Header, res.Index+1, report.RecordType)
	if report.Identifier != "" {
		fmt.Fprintf(p.out, " %q", report.Identifier)
	}
	fmt.Fprintln(p.out)

	for _, v := range report.Violations {
		fmt.Fprint(p.out, "    ")
		p.kind.Fprintf(p.out, "%-12s", v.Kind)
		fmt.Fprint(p.out, " ", p.message(v))
		if len(v.Fields) > 0 {
			p.dim.Fprintf(p.out, " (%s)", strings.Join(v.Fields, ", "))
		}
		fmt.Fprintln(p.out)
	}
}

// fileError reports a file that could not be read or parsed.
func (p *printer) fileError(path string, err error) {
	p.title.Fprint(p.out, path)
	fmt.Fprint(p.out, ": ")
	p.fail.Fprintln(p.out, err)
}
