package todotable

import (
	"encoding/json"
	"errors"
	"strconv"
	"sync/atomic"

	uuid "github.com/nu7hatch/gouuid"
)

// ErrZeroID is returned by marshalling or unmarshalling JSON. IDs handed out by a Store are never zero, so this
// error only happens for IDs built by hand.
var ErrZeroID = errors.New("zero todo id")

// ID identifies a todo for its whole lifetime. The zero value identifies nothing; Add returns it when it ignores
// its input.
type ID struct {
	value string
}

func NewID(value string) ID {
	return ID{value: value}
}

func (id ID) IsZero() bool {
	return id.value == ""
}

func (id ID) String() string {
	return id.value
}

// MarshalJSON implements json.Marshaler.
func (id ID) MarshalJSON() ([]byte, error) {
	if id.IsZero() {
		return nil, ErrZeroID
	}
	return json.Marshal(id.value)
}

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(b []byte) error {
	if err := json.Unmarshal(b, &id.value); err != nil {
		return err
	}
	if id.IsZero() {
		return ErrZeroID
	}
	return nil
}

// fallback numbers the ids handed out when the random source fails. It is shared by all stores so that a
// fallback id can not collide with another store's fallback id either.
var fallback uint64

// RandomID returns a random (version 4) UUID. It doesn't fail: should reading random bytes fail, it returns an id
// from a process-wide counter instead.
func RandomID() ID {
	u, err := uuid.NewV4()
	if err != nil {
		return ID{value: "seq-" + strconv.FormatUint(atomic.AddUint64(&fallback, 1), 10)}
	}
	return ID{value: u.String()}
}

// NewSequence returns an id source counting up from 1, each id being the prefix followed by the number.
// Sequences are handy for short, predictable ids, e.g., in tests.
func NewSequence(prefix string) func() ID {
	var n uint64
	return func() ID {
		return ID{value: prefix + strconv.FormatUint(atomic.AddUint64(&n, 1), 10)}
	}
}
