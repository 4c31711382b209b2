package todotable

import (
	"strings"
	"sync"
	"time"
)

type storeOption func(*Store)

// WithClock sets the function giving the creation time of new todos. Meant for tests.
func WithClock(now func() time.Time) storeOption {
	return func(s *Store) {
		s.now = now
	}
}

// WithDateLayout sets the time.Format layout used for the CreatedAt field of new todos. An empty layout keeps
// DefaultDateLayout.
func WithDateLayout(layout string) storeOption {
	return func(s *Store) {
		if layout != "" {
			s.layout = layout
		}
	}
}

// WithIDSource replaces RandomID as the source of todo ids, e.g., with NewSequence. The source must not repeat
// itself.
func WithIDSource(next func() ID) storeOption {
	return func(s *Store) {
		s.nextID = next
	}
}

// WithTasks seeds the store with one todo per task, blank tasks being ignored as by Add. Seeding does not
// notify watchers.
func WithTasks(tasks ...string) storeOption {
	return func(s *Store) {
		s.seed = append(s.seed, tasks...)
	}
}

// WithWatcher is the option form of Watch.
func WithWatcher(watcher func([]Todo)) storeOption {
	return func(s *Store) {
		s.watchers = append(s.watchers, watcher)
	}
}

// Store is an ordered sequence of todos. It is safe for use by multiple goroutines, each method being atomic.
type Store struct {
	mu       sync.Mutex
	todos    []Todo
	watchers []func([]Todo)

	now    func() time.Time
	layout string
	nextID func() ID
	seed   []string
}

// NewStore creates a store, empty unless seeded with WithTasks.
func NewStore(opts ...storeOption) *Store {
	s := &Store{
		now:    time.Now,
		layout: DefaultDateLayout,
		nextID: RandomID,
	}
	for _, opt := range opts {
		opt(s)
	}
	for _, task := range s.seed {
		if task = strings.TrimSpace(task); task != "" {
			s.todos = append(s.todos, s.newTodo(task))
		}
	}
	s.seed = nil
	return s
}

// Watch registers a function to be called with the new sequence after every change. It is called once per
// change (a bulk import is one change) and never for calls that were ignored. Watchers run outside the store's
// lock, so they may call back into the store.
func (s *Store) Watch(watcher func([]Todo)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchers = append(s.watchers, watcher)
}

func (s *Store) newTodo(task string) Todo {
	created := s.now()
	return Todo{
		ID:        s.nextID(),
		Task:      task,
		CreatedAt: created.Format(s.layout),
		created:   created,
	}
}

// Add appends a todo for the given text, trimmed, and returns its id. Blank text is ignored and the zero ID is
// returned.
func (s *Store) Add(text string) ID {
	task := strings.TrimSpace(text)
	if task == "" {
		return ID{}
	}
	s.mu.Lock()
	todo := s.newTodo(task)
	s.todos = append(s.todos, todo)
	s.notifyAndUnlock()
	return todo.ID
}

// AddMany appends a todo for each comma-separated task in text, in the order they appear, and returns their ids
// in the same order. Blank tasks are skipped; if there's nothing left, the store is unchanged and the result is
// nil.
func (s *Store) AddMany(text string) []ID {
	tasks := splitTasks(text)
	if len(tasks) == 0 {
		return nil
	}
	s.mu.Lock()
	ids := make([]ID, 0, len(tasks))
	for _, task := range tasks {
		todo := s.newTodo(task)
		s.todos = append(s.todos, todo)
		ids = append(ids, todo.ID)
	}
	s.notifyAndUnlock()
	return ids
}

// Remove deletes the todo with the given id, if there is one. The other todos keep their order.
func (s *Store) Remove(id ID) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.todos = append(s.todos[:i], s.todos[i+1:]...)
	s.notifyAndUnlock()
}

func (s *Store) indexOf(id ID) int {
	if id.IsZero() {
		return -1
	}
	for i := range s.todos {
		if s.todos[i].ID == id {
			return i
		}
	}
	return -1
}

// notifyAndUnlock must be called with the lock held.
func (s *Store) notifyAndUnlock() {
	snapshot := s.snapshot()
	watchers := s.watchers
	s.mu.Unlock()
	for _, watcher := range watchers {
		watcher(snapshot)
	}
}

func (s *Store) snapshot() []Todo {
	todos := make([]Todo, len(s.todos))
	copy(todos, s.todos)
	return todos
}

// Todos returns a copy of the current sequence, in insertion order.
func (s *Store) Todos() []Todo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Len returns the number of todos.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.todos)
}

// TodoByID looks up a todo by id.
func (s *Store) TodoByID(id ID) (Todo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		return s.todos[i], true
	}
	return Todo{}, false
}
