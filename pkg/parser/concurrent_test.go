package parser

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestConcurrentParsing tests that 100 goroutines can parse simultaneously
// without race conditions or deadlocks.
func TestConcurrentParsing(t *testing.T) {
	manager := NewManager(testLogger())
	defer manager.Close()

	const numGoroutines = 100
	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	errChan := make(chan error, numGoroutines)

	source := []byte("const x: number = 1;")
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()

			tree, err := manager.Parse(source, LanguageTypeScript)
			if err != nil {
				errChan <- err
				return
			}
			if tree == nil {
				errChan <- assert.AnError
				return
			}

			tree.Close()
		}(i)
	}

	wg.Wait()
	close(errChan)

	var errors []error
	for err := range errChan {
		errors = append(errors, err)
	}

	assert.Empty(t, errors, "No errors should occur during concurrent parsing")

	stats := manager.GetStats()
	maxPoolSize := getDefaultPoolSize()
	assert.LessOrEqual(t, stats.ParsersCreated, maxPoolSize, "Should create at most %d parsers in pool", maxPoolSize)
	assert.GreaterOrEqual(t, stats.ParsersCreated, 1, "Should create at least 1 parser")
	assert.Equal(t, numGoroutines, stats.ParsesCalled, "Should have called Parse 100 times")
}

// TestConcurrentLazyInitialization tests that pool creation is thread-safe
// when many goroutines race on the same grammar.
func TestConcurrentLazyInitialization(t *testing.T) {
	manager := NewManager(testLogger())
	defer manager.Close()

	const numGoroutines = 50
	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	errChan := make(chan error, numGoroutines)
	startBarrier := make(chan struct{})

	source := []byte("function test() { return 42; }")
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()

			<-startBarrier

			tree, err := manager.Parse(source, LanguageJavaScript)
			if err != nil {
				errChan <- err
				return
			}
			if tree == nil {
				errChan <- assert.AnError
				return
			}

			tree.Close()
		}(i)
	}

	close(startBarrier)

	wg.Wait()
	close(errChan)

	var errors []error
	for err := range errChan {
		errors = append(errors, err)
	}

	assert.Empty(t, errors, "No errors should occur during concurrent lazy initialization")

	stats := manager.GetStats()
	maxPoolSize := getDefaultPoolSize()
	assert.LessOrEqual(t, stats.ParsersCreated, maxPoolSize, "Should create at most %d parsers", maxPoolSize)
	assert.GreaterOrEqual(t, stats.ParsersCreated, 1, "Should create at least 1 parser")
	assert.Equal(t, numGoroutines, stats.ParsesCalled, "Should have called Parse 50 times")
}

// TestConcurrentMultiGrammar interleaves parses across all grammars.
func TestConcurrentMultiGrammar(t *testing.T) {
	manager := NewManager(testLogger())
	defer manager.Close()

	const goroutinesPerLanguage = 20
	languages := SupportedLanguages()
	numGoroutines := len(languages) * goroutinesPerLanguage

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	errChan := make(chan error, numGoroutines)

	for _, lang := range languages {
		for i := 0; i < goroutinesPerLanguage; i++ {
			go func(l Language, id int) {
				defer wg.Done()

				tree, err := manager.Parse([]byte("const x = 1;"), l)
				if err != nil {
					errChan <- err
					return
				}
				if tree == nil {
					errChan <- assert.AnError
					return
				}

				tree.Close()
			}(lang, i)
		}
	}

	wg.Wait()
	close(errChan)

	var errors []error
	for err := range errChan {
		errors = append(errors, err)
	}

	assert.Empty(t, errors, "No errors should occur during multi-grammar concurrent parsing")

	stats := manager.GetStats()
	assert.GreaterOrEqual(t, stats.ParsersCreated, len(languages), "Should create at least one parser per grammar")
	assert.Equal(t, numGoroutines, stats.ParsesCalled, "Should have called Parse for all goroutines")
}

// TestRaceConditions exercises Parse and GetStats concurrently.
// Run with: go test -race ./pkg/parser
func TestRaceConditions(t *testing.T) {
	manager := NewManager(testLogger())
	defer manager.Close()

	const numGoroutines = 100
	var wg sync.WaitGroup
	wg.Add(numGoroutines * 2)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()

			lang := SupportedLanguages()[id%len(SupportedLanguages())]
			tree, err := manager.Parse([]byte("const x = 1;"), lang)
			if err == nil && tree != nil {
				tree.Close()
			}
		}(i)
	}

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()

			_ = manager.GetStats()
		}(i)
	}

	wg.Wait()
}

// BenchmarkConcurrentParsing benchmarks pooled parsing under contention.
func BenchmarkConcurrentParsing(b *testing.B) {
	manager := NewManager(testLogger())
	defer manager.Close()

	source := []byte("const x: number = 1;")

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			tree, err := manager.Parse(source, LanguageTypeScript)
			if err != nil {
				b.Fatal(err)
			}
			tree.Close()
		}
	})
}
