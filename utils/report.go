package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiRed    = "\033[91m"
	ansiGreen  = "\033[92m"
	ansiYellow = "\033[93m"
	ansiCyan   = "\033[96m"
)

// Printer renders a Result for a terminal
type Printer struct {
	Out   io.Writer
	Color bool
}

type section struct {
	title string
	color string
	empty string // printed instead of an empty list; "" prints nothing
	// emptyStyled colors the fallback line and sets it off with a blank line
	emptyStyled bool
	jars        []string
}

func (p Printer) style(codes, text string) string {
	if !p.Color {
		return text
	}
	return codes + text + ansiReset
}

// Bold prints a single emphasized status line
func (p Printer) Bold(format string, args ...any) {
	_, _ = fmt.Fprintln(p.Out, p.style(ansiBold, fmt.Sprintf(format, args...)))
}

// PrintReport writes every category under its header, or its fallback line when empty
func (p Printer) PrintReport(res Result) {
	sections := []section{
		{"Unused dependencies:", ansiRed, "No unused dependencies found.", false, res.Unused},
		{"Used dependencies:", ansiGreen, "No used dependencies found (???). This should not happen.", false, res.Used},
		{"Shared dependencies:", ansiYellow, "No shared dependencies found.", true, res.Shared},
		{"Curated dependencies:", ansiCyan, "", false, res.Curated},
	}

	for _, s := range sections {
		if len(s.jars) == 0 {
			switch {
			case s.empty == "":
			case s.emptyStyled:
				_, _ = fmt.Fprintln(p.Out)
				_, _ = fmt.Fprintln(p.Out, p.style(ansiBold+s.color, s.empty))
			default:
				_, _ = fmt.Fprintln(p.Out, s.empty)
			}
			continue
		}
		_, _ = fmt.Fprintln(p.Out)
		_, _ = fmt.Fprintln(p.Out, p.style(ansiBold+s.color, s.title))
		for _, jar := range s.jars {
			_, _ = fmt.Fprintln(p.Out, jar)
		}
	}
}

// WriteJSONReport writes res as indented JSON, overwriting path
func WriteJSONReport(path string, res Result) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %v", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write report %s: %v", path, err)
	}
	return nil
}
