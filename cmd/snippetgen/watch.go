package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Coderrob/angular-snippet-generator/pkg/generator"
)

// runWatch generates once, then keeps the snippet file current as
// sources change until interrupted.
func runWatch(args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	pf := registerPipelineFlags(fs)
	debounce := fs.Int("debounce", generator.DefaultWatchOptions().DebounceMs, "debounce window in milliseconds")
	if err := fs.Parse(args); err != nil {
		return err
	}

	opts, err := resolveRunOptions(fs, pf)
	if err != nil {
		return err
	}

	gen := generator.New(opts.logger)
	defer gen.Close()

	watcher, err := generator.NewWatcher(gen, generator.WatchOptions{DebounceMs: *debounce}, opts.logger)
	if err != nil {
		return err
	}

	if err := watcher.Start(opts.rootDir, opts.cfg, opts.output); err != nil {
		return err
	}

	fmt.Printf("Watching %s (snippets: %s). Press Ctrl+C to stop.\n", opts.rootDir, opts.output)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	<-sigs

	fmt.Println()
	fmt.Println("Stopping...")
	return watcher.Stop()
}
