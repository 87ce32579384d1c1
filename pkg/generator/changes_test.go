package generator

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestChangeTracker_FirstSightingIsChanged(t *testing.T) {
	ct := NewChangeTracker(0, discardLogger())

	assert.True(t, ct.Changed("a.ts", []byte("export class A {}")))
	assert.Equal(t, 1, ct.Len())
}

func TestChangeTracker_SameContentIsUnchanged(t *testing.T) {
	ct := NewChangeTracker(0, discardLogger())

	content := []byte("export class A {}")
	assert.True(t, ct.Changed("a.ts", content))
	assert.False(t, ct.Changed("a.ts", content))
	assert.True(t, ct.Changed("a.ts", []byte("export class B {}")))
}

func TestChangeTracker_ForgetResets(t *testing.T) {
	ct := NewChangeTracker(0, discardLogger())

	content := []byte("export class A {}")
	assert.True(t, ct.Changed("a.ts", content))
	ct.Forget("a.ts")
	assert.True(t, ct.Changed("a.ts", content))
}

func TestChangeTracker_EvictsOldestEntries(t *testing.T) {
	ct := NewChangeTracker(2, discardLogger())

	assert.True(t, ct.Changed("a.ts", []byte("a")))
	assert.True(t, ct.Changed("b.ts", []byte("b")))
	assert.True(t, ct.Changed("c.ts", []byte("c")))
	assert.Equal(t, 2, ct.Len())

	// The oldest entry fell out, so its content reads as changed
	// again.
	assert.True(t, ct.Changed("a.ts", []byte("a")))
}

func TestContentHash_Stable(t *testing.T) {
	assert.Equal(t, ContentHash([]byte("x")), ContentHash([]byte("x")))
	assert.NotEqual(t, ContentHash([]byte("x")), ContentHash([]byte("y")))
	assert.Len(t, ContentHash(nil), 64)
}
