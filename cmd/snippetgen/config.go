package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Coderrob/angular-snippet-generator/pkg/generator"
	"github.com/Coderrob/angular-snippet-generator/pkg/snippet"
	"github.com/Coderrob/angular-snippet-generator/pkg/util"
)

const configFileName = ".snippetgen.yaml"

// ProjectConfig holds the contents of .snippetgen.yaml.
type ProjectConfig struct {
	Root     string   `yaml:"root"`
	Output   string   `yaml:"output"`
	Include  []string `yaml:"include"`
	Exclude  []string `yaml:"exclude"`
	Workers  int      `yaml:"workers"`
	LogLevel string   `yaml:"log_level"`
}

// loadProjectConfig reads .snippetgen.yaml from the current directory.
// Returns nil (no error) if the file does not exist.
func loadProjectConfig() (*ProjectConfig, error) {
	data, err := os.ReadFile(configFileName)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", configFileName, err)
	}
	return &cfg, nil
}

// stringList accumulates repeated flag values.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// pipelineFlags are the flags shared by generate, watch, and check.
type pipelineFlags struct {
	output  string
	user    bool
	include stringList
	exclude stringList
	workers int
	verbose bool
}

func registerPipelineFlags(fs *flag.FlagSet) *pipelineFlags {
	pf := &pipelineFlags{}
	fs.StringVar(&pf.output, "output", "", "snippet file to write (default: <dir>/.vscode/snippetgen.code-snippets)")
	fs.BoolVar(&pf.user, "user", false, "write to the VSCode user snippets directory instead of the workspace")
	fs.Var(&pf.include, "include", "include glob, repeatable (default: TypeScript and JavaScript sources)")
	fs.Var(&pf.exclude, "exclude", "exclude glob, repeatable (default: build and test artifacts)")
	fs.IntVar(&pf.workers, "workers", 0, "extraction worker count (0 sizes to available CPUs)")
	fs.BoolVar(&pf.verbose, "verbose", false, "enable debug logging")
	return pf
}

// runOptions is the fully resolved input for a pipeline command.
type runOptions struct {
	rootDir string
	output  string
	cfg     generator.Config
	logger  *slog.Logger
}

// resolveRunOptions applies the flag > config file > default chain.
// The scan root comes from the positional argument, falling back to
// the configured root; without either the command cannot run.
func resolveRunOptions(fs *flag.FlagSet, pf *pipelineFlags) (runOptions, error) {
	project, err := loadProjectConfig()
	if err != nil {
		return runOptions{}, err
	}

	rootDir := fs.Arg(0)
	if rootDir == "" && project != nil {
		rootDir = project.Root
	}
	if rootDir == "" {
		return runOptions{}, errors.New("no directory path supplied")
	}

	cfg := generator.DefaultConfig()
	if project != nil {
		if len(project.Include) > 0 {
			cfg.Include = project.Include
		}
		if len(project.Exclude) > 0 {
			cfg.Exclude = project.Exclude
		}
		cfg.Workers = project.Workers
	}
	if len(pf.include) > 0 {
		cfg.Include = pf.include
	}
	if len(pf.exclude) > 0 {
		cfg.Exclude = pf.exclude
	}
	if pf.workers > 0 {
		cfg.Workers = pf.workers
	}

	output := pf.output
	if pf.user {
		if output != "" {
			return runOptions{}, errors.New("cannot combine -user with -output")
		}
		dir, err := snippet.UserSnippetsDir()
		if err != nil {
			return runOptions{}, err
		}
		output = filepath.Join(dir, filepath.Base(snippet.DefaultFileName))
	}
	if output == "" && project != nil {
		output = project.Output
	}
	if output == "" {
		output = filepath.Join(rootDir, snippet.DefaultFileName)
	}

	level := util.LevelWarn
	if project != nil && project.LogLevel != "" {
		level = util.LogLevel(project.LogLevel)
	}
	if pf.verbose {
		level = util.LevelDebug
	}
	logger := util.NewLogger(util.LoggerConfig{
		Level:  level,
		Format: util.FormatText,
		Output: os.Stderr,
	})

	return runOptions{
		rootDir: rootDir,
		output:  output,
		cfg:     cfg,
		logger:  logger,
	}, nil
}
