package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Coderrob/angular-snippet-generator/pkg/extractor"
	"github.com/Coderrob/angular-snippet-generator/pkg/generator"
	"github.com/Coderrob/angular-snippet-generator/pkg/util"
)

// runInspect extracts one source file and prints its metadata in a
// human-readable layout.
func runInspect(args []string) error {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	verbose := fs.Bool("verbose", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path := fs.Arg(0)
	if path == "" {
		return errors.New("no file path supplied")
	}

	level := util.LevelWarn
	if *verbose {
		level = util.LevelDebug
	}
	logger := util.NewLogger(util.LoggerConfig{
		Level:  level,
		Format: util.FormatText,
		Output: os.Stderr,
	})

	gen := generator.New(logger)
	defer gen.Close()

	meta, err := gen.ExtractPath(path)
	if err != nil {
		return err
	}
	if meta == nil {
		fmt.Printf("%s: no component, directive, or pipe declaration found\n", path)
		return nil
	}

	printMetadata(os.Stdout, meta)
	return nil
}

// printMetadata renders one extracted declaration.
func printMetadata(w io.Writer, meta extractor.Metadata) {
	switch m := meta.(type) {
	case *extractor.ComponentMetadata:
		printClassHeader(w, m.ClassName, "component")
		fmt.Fprintf(w, "  selector: %s\n", m.Selector)
		fmt.Fprintln(w)
		printPropsSection(w, "Inputs", m.Inputs)
		fmt.Fprintln(w)
		printPropsSection(w, "Outputs", m.Outputs)
	case *extractor.DirectiveMetadata:
		printClassHeader(w, m.ClassName, "directive")
		fmt.Fprintf(w, "  selector: %s\n", m.Selector)
		fmt.Fprintln(w)
		printPropsSection(w, "Inputs", m.Inputs)
		fmt.Fprintln(w)
		printPropsSection(w, "Outputs", m.Outputs)
	case *extractor.PipeMetadata:
		printClassHeader(w, m.ClassName, "pipe")
		fmt.Fprintf(w, "  name: %s\n", m.Name)
	}
}

func printClassHeader(w io.Writer, className, role string) {
	name := className
	if name == "" {
		name = "(anonymous)"
	}
	fmt.Fprintf(w, "%s  [%s]\n", name, role)
}

// printPropsSection renders a NAME/TYPE table with dynamic column
// widths.
func printPropsSection(w io.Writer, title string, props []extractor.Property) {
	if len(props) == 0 {
		fmt.Fprintf(w, "%s  (none)\n", title)
		return
	}

	fmt.Fprintln(w, title)

	type row struct{ name, typ string }
	rows := make([]row, 0, len(props))
	for _, p := range props {
		name := p.Name
		if name == "" {
			name = "(computed)"
		}
		rows = append(rows, row{name: name, typ: p.Type})
	}

	nameW := len("NAME")
	typeW := len("TYPE")
	for _, r := range rows {
		if len(r.name) > nameW {
			nameW = len(r.name)
		}
		if len(r.typ) > typeW {
			typeW = len(r.typ)
		}
	}

	fmt.Fprintf(w, "  %-*s  %-*s\n", nameW, "NAME", typeW, "TYPE")
	fmt.Fprintf(w, "  %s\n", strings.Repeat("─", nameW+typeW+2))
	for _, r := range rows {
		fmt.Fprintf(w, "  %-*s  %s\n", nameW, r.name, r.typ)
	}
}
