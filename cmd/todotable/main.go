package main

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"os/user"

	"github.com/nicolagi/todotable"
	log "github.com/sirupsen/logrus"
)

var store *todotable.Store

func main() {
	home := mustHomeDir()
	c := mustLoadConfig(configPath(home))
	mustSetLogLevel(c.LogLevel)
	store = mustCreateStore(c)

	// Create initial window listing all todos.
	newListWindow()

	// The program will be terminated when the last acme window owned by this process is deleted.
	select {}
}

func mustHomeDir() string {
	u, err := user.Current()
	if err != nil {
		log.WithField("cause", err).Fatal("Could not get current user")
	}
	return u.HomeDir
}

func mustLoadConfig(pathname string) config {
	c, err := loadConfig(pathname)
	if errors.Is(err, os.ErrNotExist) {
		log.WithField("path", pathname).Warning("Configuration not found, using defaults")
	} else if err != nil {
		log.WithFields(log.Fields{
			"path":  pathname,
			"cause": err,
		}).Fatal("Could not load configuration")
	}
	return c
}

func mustSetLogLevel(level string) {
	l, err := log.ParseLevel(level)
	if err != nil {
		log.WithField("cause", err).Fatal("Invalid log level")
	}
	log.SetLevel(l)
}

func mustCreateStore(c config) *todotable.Store {
	s := todotable.NewStore(
		todotable.WithDateLayout(c.DateLayout),
		todotable.WithTasks(c.Seed...),
		todotable.WithWatcher(onTodosChanged),
	)
	if c.WireLog != "" {
		f, err := os.OpenFile(c.WireLog, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
		if err != nil {
			log.WithFields(log.Fields{
				"path":  c.WireLog,
				"cause": err,
			}).Fatal("Could not open wire log")
		}
		s.Watch(wireLogger(f))
	}
	log.WithField("todos", s.Len()).Debug("Store created")
	return s
}

// wireLogger returns a store watcher writing each new list to w, as one line of JSON.
func wireLogger(w io.Writer) func([]todotable.Todo) {
	return func(todos []todotable.Todo) {
		b, err := json.Marshal(todos)
		if err != nil {
			log.WithField("cause", err).Warning("Could not marshal todos for the wire log")
			return
		}
		_, _ = w.Write([]byte(`{"type": "todos", "todos": `))
		_, _ = w.Write(b)
		_, _ = w.Write([]byte("}\n"))
	}
}
