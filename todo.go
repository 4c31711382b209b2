package todotable

import "time"

// DefaultDateLayout formats creation dates the way an en-US browser shows a short date, e.g., 8/7/2019.
const DefaultDateLayout = "1/2/2006"

// Todo is a single task in the list. Values returned by the Store are copies; changing them does not change the
// store, which has no edit operation anyway.
type Todo struct {
	ID        ID     `json:"id"`
	Task      string `json:"task"`
	CreatedAt string `json:"created_at"` // Creation date, formatted with the store's date layout.

	created time.Time
}

// Time returns the instant the todo was created. It is the zero time for todos not created by a Store.
func (todo Todo) Time() time.Time {
	return todo.created
}
