package todotable_test

import (
	"testing"
	"time"

	"github.com/nicolagi/todotable"
	"github.com/stretchr/testify/assert"
)

func TestSearchTodos(t *testing.T) {
	day := time.Date(2019, 8, 7, 0, 0, 0, 0, time.UTC)
	store := todotable.NewStore(todotable.WithClock(func() time.Time { return day }))
	store.AddMany("Call Bob, Walk dog, Call alice, Buy dog food")
	day = day.AddDate(0, 0, 1)
	store.Add("Call the vet")

	assert.Equal(t, []string{"Call Bob", "Call alice", "Call the vet"}, tasks(store.SearchTodos().WithTask("call").Results()))
	assert.Equal(t, []string{"Walk dog", "Buy dog food"}, tasks(store.SearchTodos().WithTask("call").Not().Results()))
	assert.Equal(t, []string{"Buy dog food"}, tasks(store.SearchTodos().WithTask("dog").WithTask("walk").Not().Results()))
	assert.Equal(t, []string{"Call the vet"}, tasks(store.SearchTodos().WithCreatedAt("8/8/2019").Results()))
	assert.Len(t, store.SearchTodos().Results(), 5)
	assert.Nil(t, store.SearchTodos().WithTask("nothing like this").Results())
}

func TestSearchTodosNotWithoutPredicatePanics(t *testing.T) {
	store := todotable.NewStore()
	assert.Panics(t, func() {
		store.SearchTodos().Not()
	})
}
