package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"

	"github.com/Coderrob/angular-snippet-generator/pkg/generator"
	"github.com/Coderrob/angular-snippet-generator/pkg/snippet"
)

// runGenerate is the entry point for `snippetgen generate`.
func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	pf := registerPipelineFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	opts, err := resolveRunOptions(fs, pf)
	if err != nil {
		return err
	}

	gen := generator.New(opts.logger)
	defer gen.Close()

	result, err := gen.GenerateTo(opts.rootDir, opts.output, opts.cfg)
	if err != nil {
		return err
	}

	printStats(os.Stdout, result.Stats)
	fmt.Printf("Wrote %d snippet(s) to %s\n", result.Stats.SnippetsGenerated, opts.output)
	return nil
}

// runCheck regenerates in memory and reports drift against the on-disk
// snippet file without writing anything. Intended as a CI hook.
func runCheck(args []string) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	pf := registerPipelineFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	opts, err := resolveRunOptions(fs, pf)
	if err != nil {
		return err
	}

	gen := generator.New(opts.logger)
	defer gen.Close()

	result, err := gen.Run(opts.rootDir, opts.cfg)
	if err != nil {
		return err
	}

	existing, err := snippet.Load(opts.output)
	if err != nil {
		return err
	}

	added, updated := diffCollections(existing, result.Snippets)
	if len(added) == 0 && len(updated) == 0 {
		fmt.Printf("%s is up to date (%d snippet(s))\n", opts.output, len(existing))
		return nil
	}

	for _, title := range added {
		fmt.Printf("  + %s\n", title)
	}
	for _, title := range updated {
		fmt.Printf("  ~ %s\n", title)
	}
	return fmt.Errorf("%s is out of date, run: snippetgen generate %s", opts.output, opts.rootDir)
}

// diffCollections reports which fresh titles are missing from or differ
// in the existing collection. Merge never removes entries, so deletions
// are not drift.
func diffCollections(existing, fresh snippet.Collection) (added, updated []string) {
	for title, rec := range fresh {
		old, ok := existing[title]
		switch {
		case !ok:
			added = append(added, title)
		case !reflect.DeepEqual(old, rec):
			updated = append(updated, title)
		}
	}
	sort.Strings(added)
	sort.Strings(updated)
	return added, updated
}

func printStats(w io.Writer, stats generator.Stats) {
	fmt.Fprintf(w, "Scanned   %d file(s) in %d ms\n", stats.FilesDiscovered, stats.DiscoveryTimeMs)
	fmt.Fprintf(w, "Extracted %d component(s), %d directive(s), %d pipe(s) in %d ms\n",
		stats.Components, stats.Directives, stats.Pipes, stats.ExtractionTimeMs)
	if stats.FilesFailed > 0 {
		fmt.Fprintf(w, "Failed    %d file(s)\n", stats.FilesFailed)
	}
	fmt.Fprintf(w, "Generated %d snippet(s) in %d ms (total %d ms)\n",
		stats.SnippetsGenerated, stats.SynthesisTimeMs, stats.TotalTimeMs)
}
