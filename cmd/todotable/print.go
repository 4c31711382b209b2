package main

import (
	"fmt"
	"io"

	"github.com/nicolagi/todotable"
)

const emptyList = "No todos yet. Add your first todo above!\n"

// printList writes the header followed by one row per todo: row number, id, creation date, task.
func printList(w io.Writer, todos []todotable.Todo) error {
	_, _ = fmt.Fprintf(w, "Your Todos (%d)\n\n", len(todos))
	if len(todos) == 0 {
		_, _ = io.WriteString(w, emptyList)
		return nil
	}
	return printRows(w, todos)
}

func printRows(w io.Writer, todos []todotable.Todo) error {
	for i, todo := range todos {
		if _, err := fmt.Fprintf(w, "%d\t%v\t%s\t%s\n", i+1, todo.ID, todo.CreatedAt, todo.Task); err != nil {
			return fmt.Errorf("print row %d: %w", i+1, err)
		}
	}
	return nil
}
