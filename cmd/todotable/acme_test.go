package main

import (
	"go/parser"
	"go/token"
	"strings"
	"sync"
	"testing"

	"github.com/nicolagi/todotable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleSortConcurrently(t *testing.T) {
	var w window
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			w.toggleSort()
		}()
		go func() {
			defer wg.Done()
			_ = w.sorted()
		}()
	}
	wg.Wait()
	assert.False(t, w.sorted(), "an even number of toggles restores row order")
	assert.True(t, w.toggleSort())
	assert.True(t, w.sorted())
}

func TestRowTodo(t *testing.T) {
	s := newTestStore("Buy milk", "Walk dog")
	var w window
	w.mu.Lock()
	w.rows = s.Todos()
	w.mu.Unlock()

	todo, ok := w.rowTodo("2")
	require.True(t, ok)
	assert.Equal(t, "Walk dog", todo.Task)
	for _, arg := range []string{"0", "3", "-1"} {
		_, ok = w.rowTodo(arg)
		assert.False(t, ok, arg)
	}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			w.mu.Lock()
			w.rows = append([]todotable.Todo(nil), s.Todos()...)
			w.mu.Unlock()
		}()
		go func() {
			defer wg.Done()
			_, _ = w.rowTodo("1")
		}()
	}
	wg.Wait()
}

func TestPackageDocParses(t *testing.T) {
	f, err := parser.ParseFile(token.NewFileSet(), "doc.go", nil, parser.ParseComments)
	require.Nil(t, err)
	require.NotNil(t, f.Doc)
	doc := f.Doc.Text()
	assert.True(t, strings.HasPrefix(doc, "The todotable program is an acme user interface"))
	assert.Contains(t, doc, `the creation date instead, e.g., "Search @8/7/2019".`)
}
