// The todotable package contains an in-memory todo list. A Store holds an ordered sequence of todos and offers
// three mutations: Add for a single task, AddMany for a comma-separated bulk import, and Remove by id. The only
// consumer at the time of writing is the acme user interface in the cmd/todotable subdirectory.
//
// The store keeps its todos in a slice and all lookup and search operations scan through it. Todo lists typed in
// by hand are small, so there is no index.
//
// None of the store methods fail. Blank tasks and unknown ids are silently ignored, which is what an interactive
// form wants. Callers interested in changes register a watcher (WithWatcher, Watch) and receive the new sequence
// after each mutation that actually changed it.
package todotable // import "github.com/nicolagi/todotable"
