// The todotable program is an acme user interface to an in-memory todo list.
//
// When launched, it creates a window listing all todos (/todo/list). Its tag offers New, to open a window where a
// single todo is typed in, and Bulk, to open a window taking comma-separated todos, as in
//
//	Complete project setup,Review documentation,Update README file,Fix bug in login form
//
// In both, Put adds what's in the body and clears it; PutDel also closes the window. Blank input is ignored.
//
// Remove a todo by 2-button-swiping "Zap 3" where 3 is its row number, or "Zap" followed by its id. Search takes
// the same kind of expression as the todoist program: terms separated by a colon are ANDed together and a leading
// minus negates a term, so "Search call:-bob" lists todos mentioning call but not bob. A term starting with @ matches
// the creation date instead, e.g., "Search @8/7/2019".
//
// Configuration is read from lib/todotable/config.toml within the user's home directory, or from the file named
// by $TODOTABLE_CONFIG. It is optional:
//
//	date_layout = "2006-01-02"
//	log_level = "debug"
//	seed = ["Complete project documentation", "Review code changes"]
//	wire_log = "/tmp/todotable.log"
//
// Todos live as long as the program does, which ends when its last window is closed.
package main // import "github.com/nicolagi/todotable/cmd/todotable"
