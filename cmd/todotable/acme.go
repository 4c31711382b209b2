package main

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"9fans.net/go/acme"
	"github.com/nicolagi/todotable"
	log "github.com/sirupsen/logrus"
)

type windowMode int

const (
	modeList   windowMode = iota // /todo/list
	modeAdd                      // /todo/new
	modeBulk                     // /todo/bulk
	modeSearch                   // /todo/search/$expr
)

func (mode windowMode) String() string {
	switch mode {
	case modeList:
		return "list"
	case modeAdd:
		return "add"
	case modeBulk:
		return "bulk"
	case modeSearch:
		return "search"
	default:
		log.WithField("mode", int(mode)).Error("Missing mode string, returning as number")
		return fmt.Sprintf("%d", int(mode))
	}
}

var all struct {
	sync.Mutex
	m map[*acme.Win]*window
}

type window struct {
	*acme.Win

	mode windowMode
	expr string // For modeSearch

	// redraw is held across a whole redraw of the body. Redraws come from the window's own event loop and from
	// onTodosChanged, running in whichever window's goroutine changed the store.
	redraw sync.Mutex

	// mu guards the fields below.
	mu sync.Mutex

	// Todos in the order last shown in the body, so that "Zap 2" removes what the user sees in row 2. Only
	// used in list and search mode.
	rows []todotable.Todo

	// If false, sort by row number, i.e., insertion order.
	sortAlphabetically bool
}

func (w *window) sorted() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.sortAlphabetically
}

// toggleSort flips between alphabetical and row order, returning the new setting.
func (w *window) toggleSort() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.sortAlphabetically = !w.sortAlphabetically
	return w.sortAlphabetically
}

func (w *window) resetTag() {
	var tag string
	switch w.mode {
	case modeList:
		tag = " New Bulk Get Sort Search Zap "
	case modeAdd, modeBulk:
		tag = " List Put PutDel "
	case modeSearch:
		tag = " List Get Sort Search Zap "
	}
	_ = w.Ctl("cleartag")
	_ = w.Fprintf("tag", tag)
}

// exit is called after the window's event loop is over, i.e., the window has been closed in acme. Todos are only
// kept in memory, so closing the last window ends the process and the list with it.
func (w *window) exit() {
	all.Lock()
	defer all.Unlock()
	if all.m[w.Win] == w {
		delete(all.m, w.Win)
	}
	if len(all.m) == 0 {
		log.WithField("todos", store.Len()).Info("Last window closed, exiting")
		os.Exit(0)
	}
}

// newWindow creates a window in acme without a specific purpose, and registers it in the global map of windows.
func newWindow(pathname string) *window {
	all.Lock()
	defer all.Unlock()
	if all.m == nil {
		all.m = make(map[*acme.Win]*window)
	}

	logEntry := log.WithField("path", pathname)
	aw, err := acme.New()
	if err != nil {
		logEntry.WithField("cause", err).Warning("Could not create acme window")
		time.Sleep(10 * time.Millisecond)
		aw, err = acme.New()
		if err != nil {
			logEntry.WithField("cause", err).Fatal("Could not create acme window again")
		}
	}
	aw.SetErrorPrefix(pathname)
	_ = aw.Name(pathname)

	w := &window{Win: aw}
	all.m[w.Win] = w
	return w
}

func openWindow(title string, mode windowMode, expr string) {
	if acme.Show(title) != nil {
		return
	}
	w := newWindow(title)
	w.mode = mode
	w.expr = expr
	w.resetTag()
	go w.load()
	go w.loop()
}

func newListWindow() {
	openWindow("/todo/list", modeList, "")
}

func newAddWindow() {
	openWindow("/todo/new", modeAdd, "")
}

func newBulkWindow() {
	openWindow("/todo/bulk", modeBulk, "")
}

func newSearchWindow(expr string) {
	openWindow("/todo/search/"+expr, modeSearch, expr)
}

// Look is invoked via button-3 click in acme. Todos have nothing to open, so the default behavior (searching
// for the text in the window) always applies.
func (w *window) Look(text string) bool {
	return false
}

// load redraws the body from the store. Entry windows are left alone, as their body is what the user is typing.
func (w *window) load() {
	if w.mode == modeAdd || w.mode == modeBulk {
		return
	}
	// The store is read under the lock as well: the last redraw to finish shows the latest todos.
	w.redraw.Lock()
	defer w.redraw.Unlock()
	var buf bytes.Buffer
	var rows []todotable.Todo
	var err error
	switch w.mode {
	case modeList:
		rows = store.Todos()
		err = printList(&buf, rows)
	case modeSearch:
		rows = searchTodos(store, w.expr)
		err = printRows(&buf, rows)
	}
	w.mu.Lock()
	w.rows = rows
	w.mu.Unlock()
	w.Clear()
	if err != nil {
		_, _ = w.Write("body", []byte(err.Error()))
	} else {
		w.PrintTabbed(buf.String())
		_ = w.Ctl("clean")
	}
	if alphabetically := w.sorted(); alphabetically {
		w.sort(alphabetically)
		return
	}
	_ = w.Addr("0")
	_ = w.Ctl("dot=addr")
	_ = w.Ctl("show")
}

// sort reorders the rows of the body. The caller must hold w.redraw.
func (w *window) sort(alphabetically bool) {
	if err := w.Addr("0/^[0-9]/,"); err != nil {
		w.Err("nothing to sort")
		return
	}
	var less func(string, string) bool
	if !alphabetically {
		less = func(a, b string) bool { return lineNumber(a) < lineNumber(b) }
	} else {
		less = func(a, b string) bool { return taskField(a) < taskField(b) }
	}
	if err := w.Sort(less); err != nil {
		w.Errf("Could not sort: %v", err.Error())
	}
	_ = w.Addr("0")
	_ = w.Ctl("dot=addr")
	_ = w.Ctl("show")
}

func lineNumber(s string) int {
	n := 0
	for j := 0; j < len(s) && '0' <= s[j] && s[j] <= '9'; j++ {
		n = n*10 + int(s[j]-'0')
	}
	return n
}

// taskField skips the row number, id and date fields of a row. PrintTabbed may have padded them with more tabs.
func taskField(s string) string {
	for field := 0; field < 3; field++ {
		i := strings.Index(s, "\t")
		if i < 0 {
			return s
		}
		for i < len(s) && s[i] == '\t' {
			i++
		}
		s = s[i:]
	}
	return s
}

// rowTodo resolves the argument of Zap: a row number as shown in the window, or an id.
func (w *window) rowTodo(arg string) (todotable.Todo, bool) {
	if n, err := strconv.Atoi(arg); err == nil {
		w.mu.Lock()
		defer w.mu.Unlock()
		if n < 1 || n > len(w.rows) {
			return todotable.Todo{}, false
		}
		return w.rows[n-1], true
	}
	return store.TodoByID(todotable.NewID(arg))
}

// Execute is triggered by button-2 click in acme.
func (w *window) Execute(cmd string) bool {
	log.WithFields(log.Fields{
		"mode": w.mode,
		"cmd":  cmd,
	}).Debug("Execute")
	if strings.HasPrefix(cmd, "Search ") {
		expr := strings.TrimSpace(strings.TrimPrefix(cmd, "Search "))
		newSearchWindow(expr)
		return true
	}
	if strings.HasPrefix(cmd, "Zap ") {
		if w.mode != modeList && w.mode != modeSearch {
			w.Errf("Zap only works in list and search windows, mode is %v", w.mode)
			return true
		}
		todo, ok := w.rowTodo(strings.TrimSpace(strings.TrimPrefix(cmd, "Zap ")))
		if !ok {
			return false
		}
		store.Remove(todo.ID)
		return true
	}
	switch cmd {
	case "List":
		newListWindow()
		return true
	case "New":
		newAddWindow()
		return true
	case "Bulk":
		newBulkWindow()
		return true
	case "Get":
		w.load()
		return true
	case "Put", "PutDel":
		del := cmd == "PutDel"
		if w.mode != modeAdd && w.mode != modeBulk {
			w.Errf("Put forbidden for this window mode: %v", w.mode)
			return true
		}
		body, err := w.ReadAll("body")
		if err != nil {
			w.Errf("Could not read body: %v", err)
			return true
		}
		var added int
		if w.mode == modeAdd {
			if id := store.Add(string(body)); !id.IsZero() {
				added = 1
			}
		} else {
			added = len(store.AddMany(string(body)))
		}
		// Nothing worth adding: leave the body for the user to fix.
		if added == 0 {
			return true
		}
		w.Clear()
		_ = w.Ctl("clean")
		if del {
			_ = w.Del(true)
		}
		return true
	case "Del":
		_ = w.Del(false)
		return true
	case "Sort":
		if w.mode == modeList || w.mode == modeSearch {
			w.redraw.Lock()
			w.sort(w.toggleSort())
			w.redraw.Unlock()
		} else {
			w.Errf("Window mode does not allow sorting: %v", w.mode)
		}
		return true
	default:
		return false
	}
}

func (w *window) loop() {
	defer w.exit()
	w.EventLoop(w)
}

// onTodosChanged is the store watcher redrawing the windows showing todos.
func onTodosChanged([]todotable.Todo) {
	all.Lock()
	defer all.Unlock()
	for _, w := range all.m {
		switch w.mode {
		case modeList, modeSearch:
			w.load()
		}
	}
}
