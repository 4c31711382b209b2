package todotable_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/nicolagi/todotable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDMarshal(t *testing.T) {
	b, err := json.Marshal(todotable.NewID("abc"))
	require.Nil(t, err)
	assert.Equal(t, `"abc"`, string(b))

	b, err = json.Marshal(todotable.ID{})
	assert.Nil(t, b)
	assert.True(t, errors.Is(err, todotable.ErrZeroID))
}

func TestIDUnmarshal(t *testing.T) {
	var id todotable.ID
	require.Nil(t, json.Unmarshal([]byte(`"abc"`), &id))
	assert.Equal(t, todotable.NewID("abc"), id)

	var zero todotable.ID
	err := json.Unmarshal([]byte(`""`), &zero)
	t.Logf("Error is: %v", err)
	assert.True(t, errors.Is(err, todotable.ErrZeroID))

	assert.NotNil(t, json.Unmarshal([]byte(`42`), &zero))
}

func TestRandomIDsAreDistinct(t *testing.T) {
	seen := make(map[todotable.ID]bool)
	for i := 0; i < 1000; i++ {
		id := todotable.RandomID()
		require.False(t, id.IsZero())
		require.False(t, seen[id], "duplicate id %v", id)
		seen[id] = true
	}
}

func TestSequence(t *testing.T) {
	next := todotable.NewSequence("t")
	assert.Equal(t, "t1", next().String())
	assert.Equal(t, "t2", next().String())

	other := todotable.NewSequence("t")
	assert.Equal(t, "t1", other().String(), "sequences count independently")
}
