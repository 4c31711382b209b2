package todotable

import "strings"

type todoPredicate func(*Todo) bool

func negate(p todoPredicate) todoPredicate {
	return func(todo *Todo) bool {
		return !p(todo)
	}
}

// TodoScan selects todos matching all of its predicates. Build one with Store.SearchTodos.
type TodoScan struct {
	store      *Store
	predicates []todoPredicate
}

// Not negates the last predicate added.  It will panic if no predicates were added.
func (s *TodoScan) Not() *TodoScan {
	i := len(s.predicates) - 1
	s.predicates[i] = negate(s.predicates[i])
	return s
}

// WithTask looks for todos whose task contains the given substring, ignoring case.
func (s *TodoScan) WithTask(needle string) *TodoScan {
	needle = strings.ToLower(needle)
	s.predicates = append(s.predicates, func(todo *Todo) bool {
		return strings.Contains(strings.ToLower(todo.Task), needle)
	})
	return s
}

// WithCreatedAt looks for todos created on the given date, in the store's date layout.
func (s *TodoScan) WithCreatedAt(date string) *TodoScan {
	s.predicates = append(s.predicates, func(todo *Todo) bool {
		return todo.CreatedAt == date
	})
	return s
}

// Results returns the matching todos in insertion order.
func (s *TodoScan) Results() []Todo {
	var results []Todo
	for _, todo := range s.store.Todos() {
		if s.match(&todo) {
			results = append(results, todo)
		}
	}
	return results
}

func (s *TodoScan) match(todo *Todo) bool {
	for _, match := range s.predicates {
		if !match(todo) {
			return false
		}
	}
	return true
}

func (s *Store) SearchTodos() *TodoScan {
	return &TodoScan{
		store: s,
	}
}
