// Package generator orchestrates the snippet pipeline: discover source
// files under a root directory, extract decorated declarations in
// parallel, synthesize snippet records, and merge them into a
// collection ready to persist.
package generator

import (
	"github.com/Coderrob/angular-snippet-generator/pkg/extractor"
	"github.com/Coderrob/angular-snippet-generator/pkg/snippet"
)

// Config configures one generation run.
type Config struct {
	// Include glob patterns for file matching.
	Include []string
	// Exclude glob patterns.
	Exclude []string
	// Workers overrides the extraction worker count. Zero picks a
	// size from the host CPU count.
	Workers int
}

// DefaultConfig returns the default generation configuration with
// exclusions for dependency, build, and test files.
func DefaultConfig() Config {
	return Config{
		Include: []string{
			"**/*.ts",
			"**/*.tsx",
			"**/*.js",
			"**/*.jsx",
		},
		Exclude: []string{
			"node_modules/**",
			".git/**",
			"dist/**",
			"build/**",
			"out/**",
			"coverage/**",
			".angular/**",
			".vscode/**",
			// Test files declare no template-worthy classes.
			"**/*.spec.*",
			"**/*.test.*",
			"**/*.d.ts",
		},
	}
}

// FileMetadata pairs one extracted declaration with its source file.
type FileMetadata struct {
	FilePath string
	Metadata extractor.Metadata
}

// Result is the output of one generation run.
type Result struct {
	// Snippets holds the synthesized records. After GenerateTo it is
	// the merged collection as written to disk.
	Snippets snippet.Collection
	// Artifacts lists every extracted declaration, sorted by file
	// path, including ones that produced no snippet.
	Artifacts []FileMetadata
	Stats     Stats
}

// Stats tracks pipeline performance per run.
type Stats struct {
	FilesDiscovered   int
	FilesExtracted    int
	FilesFailed       int
	Components        int
	Directives        int
	Pipes             int
	SnippetsGenerated int
	DiscoveryTimeMs   int64
	ExtractionTimeMs  int64
	SynthesisTimeMs   int64
	TotalTimeMs       int64
}
