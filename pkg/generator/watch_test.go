package generator

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Coderrob/angular-snippet-generator/pkg/snippet"
)

// waitForSnippet polls the output file until title appears or the
// deadline passes.
func waitForSnippet(t *testing.T, output, title string) snippet.Collection {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		c, err := snippet.Load(output)
		if err == nil {
			if _, ok := c[title]; ok {
				return c
			}
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("snippet %q never appeared in %s", title, output)
	return nil
}

func startTestWatcher(t *testing.T, root, output string) *Watcher {
	t.Helper()
	g := newTestGenerator(t)

	w, err := NewWatcher(g, WatchOptions{DebounceMs: 20}, discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { w.Stop() })

	require.NoError(t, w.Start(root, DefaultConfig(), output))
	return w
}

func TestWatcher_InitialGeneration(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "badge.component.ts",
		"@Component({ selector: 'app-badge' })\nexport class BadgeComponent {}")
	output := filepath.Join(t.TempDir(), "watch.code-snippets")

	startTestWatcher(t, root, output)

	c := waitForSnippet(t, output, "App Badge")
	assert.Contains(t, c, "App Badge")
}

func TestWatcher_PicksUpNewFile(t *testing.T) {
	root := t.TempDir()
	output := filepath.Join(t.TempDir(), "watch.code-snippets")

	startTestWatcher(t, root, output)

	writeFile(t, root, "late.pipe.ts",
		"@Pipe({ name: 'late' })\nexport class LatePipe {}")

	waitForSnippet(t, output, "Late Pipe Pipe")
}

func TestWatcher_RegeneratesOnEdit(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "badge.component.ts",
		"@Component({ selector: 'app-badge' })\nexport class BadgeComponent {}")
	output := filepath.Join(t.TempDir(), "watch.code-snippets")

	startTestWatcher(t, root, output)
	waitForSnippet(t, output, "App Badge")

	writeFile(t, root, "badge.component.ts",
		"@Component({ selector: 'app-badge' })\nexport class BadgeComponent {\n  @Input() label: string;\n}")

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		c, err := snippet.Load(output)
		if err == nil {
			if s, ok := c["App Badge"]; ok && len(s.Body) == 4 {
				assert.Equal(t, `  [label]="$1"`, s.Body[1])
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatal("regenerated snippet never gained the new input binding")
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	root := t.TempDir()
	output := filepath.Join(t.TempDir(), "watch.code-snippets")

	w := startTestWatcher(t, root, output)

	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
	assert.False(t, w.Stats().Running)
}

func TestWatcher_IgnoresBuildDirectories(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "node_modules"), 0755))
	output := filepath.Join(t.TempDir(), "watch.code-snippets")

	startTestWatcher(t, root, output)

	writeFile(t, filepath.Join(root, "node_modules"), "vendor.component.ts",
		"@Component({ selector: 'vendor-thing' })\nexport class VendorComponent {}")

	// Give the watcher a moment; the vendor snippet must never land.
	time.Sleep(300 * time.Millisecond)
	c, err := snippet.Load(output)
	require.NoError(t, err)
	assert.NotContains(t, c, "Vendor Thing")
}
