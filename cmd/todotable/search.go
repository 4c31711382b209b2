package main

import (
	"strings"

	"github.com/nicolagi/todotable"
)

// splitSearchTerms returns the colon-separated terms of a search expression, dropping blank ones and bare
// minus signs, which would negate nothing.
func splitSearchTerms(expr string) []string {
	var terms []string
	for _, term := range strings.Split(expr, ":") {
		term = strings.TrimSpace(term)
		if strings.TrimLeft(term, "-") == "" {
			continue
		}
		terms = append(terms, term)
	}
	return terms
}

// searchTodos returns the todos matching a search expression, in insertion order.
func searchTodos(s *todotable.Store, expr string) []todotable.Todo {
	search := s.SearchTodos()
	for _, term := range splitSearchTerms(expr) {
		addSearchTerm(search, term)
	}
	return search.Results()
}

func addSearchTerm(s *todotable.TodoScan, term string) {
	switch term[0] {
	case '-':
		addSearchTerm(s, term[1:])
		s.Not()
	case '@':
		s.WithCreatedAt(term[1:])
	default:
		s.WithTask(term)
	}
}
