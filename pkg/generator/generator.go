package generator

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/Coderrob/angular-snippet-generator/pkg/extractor"
	"github.com/Coderrob/angular-snippet-generator/pkg/parser"
	"github.com/Coderrob/angular-snippet-generator/pkg/snippet"
	"github.com/Coderrob/angular-snippet-generator/pkg/util"
)

// Generator owns the pipeline's long-lived resources: the parser
// manager, the extractor, and the source cache. One Generator serves
// many runs, which is what the watch and MCP modes rely on.
type Generator struct {
	pm     *parser.Manager
	ext    *extractor.Extractor
	cache  *util.SourceCache
	logger *slog.Logger
}

// New creates a generator with all required dependencies.
func New(logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	pm := parser.NewManager(logger)
	return &Generator{
		pm:     pm,
		ext:    extractor.NewExtractor(pm, logger),
		cache:  util.NewSourceCache(0, logger),
		logger: logger,
	}
}

// Run executes discovery, extraction, and synthesis for rootDir and
// returns the freshly generated collection without touching disk.
func (g *Generator) Run(rootDir string, cfg Config) (*Result, error) {
	totalStart := time.Now()
	stats := Stats{}

	discoveryStart := time.Now()
	files, err := DiscoverFiles(rootDir, cfg)
	if err != nil {
		return nil, fmt.Errorf("discovery failed: %w", err)
	}
	stats.FilesDiscovered = len(files)
	stats.DiscoveryTimeMs = time.Since(discoveryStart).Milliseconds()

	g.logger.Info("discovery complete", "files", len(files), "ms", stats.DiscoveryTimeMs)

	extractionStart := time.Now()
	artifacts, failed := g.extractAll(files, cfg.Workers)
	stats.FilesExtracted = len(files) - failed
	stats.FilesFailed = failed
	stats.ExtractionTimeMs = time.Since(extractionStart).Milliseconds()

	g.logger.Info("extraction complete",
		"declarations", len(artifacts), "failed", failed, "ms", stats.ExtractionTimeMs)

	synthesisStart := time.Now()
	snippets := snippet.Collection{}
	for _, a := range artifacts {
		switch a.Metadata.Role() {
		case extractor.RoleComponent:
			stats.Components++
		case extractor.RoleDirective:
			stats.Directives++
		case extractor.RolePipe:
			stats.Pipes++
		}

		title, record, ok := snippet.Synthesize(a.Metadata)
		if !ok {
			g.logger.Debug("declaration has no usable trigger",
				"file", a.FilePath, "class", a.Metadata.Class())
			continue
		}
		snippets[title] = record
	}
	stats.SnippetsGenerated = len(snippets)
	stats.SynthesisTimeMs = time.Since(synthesisStart).Milliseconds()

	g.logger.Info("synthesis complete",
		"snippets", stats.SnippetsGenerated, "ms", stats.SynthesisTimeMs)

	stats.TotalTimeMs = time.Since(totalStart).Milliseconds()

	return &Result{
		Snippets:  snippets,
		Artifacts: artifacts,
		Stats:     stats,
	}, nil
}

// GenerateTo runs the pipeline and merges the result into the snippet
// file at outputPath, creating it if absent. Entries already in the
// file keep their place unless a regenerated title collides.
func (g *Generator) GenerateTo(rootDir, outputPath string, cfg Config) (*Result, error) {
	result, err := g.Run(rootDir, cfg)
	if err != nil {
		return nil, err
	}

	existing, err := snippet.Load(outputPath)
	if err != nil {
		return nil, err
	}
	existing.Merge(result.Snippets)

	if err := snippet.Save(outputPath, existing); err != nil {
		return nil, err
	}

	g.logger.Info("snippets written", "path", outputPath, "total", len(existing))

	result.Snippets = existing
	return result, nil
}

// ExtractPath extracts declaration metadata from a single file through
// the shared cache and parser pool. Returns nil metadata when the file
// holds no decorated class.
func (g *Generator) ExtractPath(path string) (extractor.Metadata, error) {
	source, err := g.cache.Bytes(path)
	if err != nil {
		return nil, err
	}
	return g.ext.ExtractFile(source, path)
}

// extractAll fans file extraction out over a worker pool. Files that
// fail to read or parse are logged and counted, never fatal. Artifacts
// come back sorted by path so collision resolution in the merge step
// is deterministic.
func (g *Generator) extractAll(files []string, workerOverride int) ([]FileMetadata, int) {
	if len(files) == 0 {
		return nil, 0
	}

	numWorkers := util.GetOptimalPoolSizeWithOverride(workerOverride)
	if numWorkers > len(files) {
		numWorkers = len(files)
	}

	paths := make(chan string, numWorkers*2)
	type resultOrError struct {
		meta extractor.Metadata
		err  error
		file string
	}
	results := make(chan resultOrError, numWorkers)

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range paths {
				source, err := g.cache.Bytes(path)
				if err != nil {
					results <- resultOrError{err: err, file: path}
					continue
				}
				meta, err := g.ext.ExtractFile(source, path)
				if err != nil {
					results <- resultOrError{err: err, file: path}
					continue
				}
				results <- resultOrError{meta: meta, file: path}
			}
		}()
	}

	go func() {
		for _, f := range files {
			paths <- f
		}
		close(paths)
		wg.Wait()
		close(results)
	}()

	var artifacts []FileMetadata
	failed := 0
	for r := range results {
		if r.err != nil {
			g.logger.Warn("extraction failed", "file", r.file, "error", r.err)
			failed++
			continue
		}
		if r.meta == nil {
			continue
		}
		artifacts = append(artifacts, FileMetadata{FilePath: r.file, Metadata: r.meta})
	}

	sort.Slice(artifacts, func(i, j int) bool {
		return artifacts[i].FilePath < artifacts[j].FilePath
	})
	return artifacts, failed
}

// InvalidateFile drops a cached source file so the next run rereads it
// from disk. The watcher calls this on every change event.
func (g *Generator) InvalidateFile(path string) {
	g.cache.Remove(path)
}

// CacheStats exposes source cache counters for diagnostics.
func (g *Generator) CacheStats() util.SourceCacheStats {
	return g.cache.Stats()
}

// Close releases parser and cache resources.
func (g *Generator) Close() {
	if err := g.cache.Close(); err != nil {
		g.logger.Warn("source cache close", "error", err)
	}
	if err := g.pm.Close(); err != nil {
		g.logger.Warn("parser manager close", "error", err)
	}
}
