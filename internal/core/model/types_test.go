package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	ts := time.Date(2023, 6, 15, 22, 10, 0, 0, time.UTC)
	msg := NewMessage("Alice", "good night 😀", ts)

	assert.Equal(t, "Alice", msg.Sender)
	assert.Equal(t, 12, msg.Length, "length is rune count, not byte count")
	assert.Equal(t, []string{"😀"}, msg.Emojis)
	assert.Equal(t, "2023-06-15", msg.DateKey())
	assert.Equal(t, "2023-06", msg.MonthKey())
	assert.Equal(t, 15, msg.Day())
	assert.Equal(t, 22, msg.Hour())
	assert.Equal(t, "Thu", msg.Weekday())
}

func TestNewMessageSetOrdering(t *testing.T) {
	base := time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)
	messages := []Message{
		NewMessage("Bob", "third", base.Add(2*time.Hour)),
		NewMessage("Alice", "first", base),
		NewMessage("Alice", "second", base.Add(time.Hour)),
	}

	set := NewMessageSet(messages)

	require.Len(t, set, 3)
	assert.Equal(t, "first", set[0].Text)
	assert.Equal(t, "second", set[1].Text)
	assert.Equal(t, "third", set[2].Text)
}

func TestNewMessageSetStableOnEqualTimestamps(t *testing.T) {
	ts := time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)
	set := NewMessageSet([]Message{
		NewMessage("Alice", "a", ts),
		NewMessage("Bob", "b", ts),
		NewMessage("Carol", "c", ts),
	})

	assert.Equal(t, "a", set[0].Text)
	assert.Equal(t, "b", set[1].Text)
	assert.Equal(t, "c", set[2].Text)
}

func TestSpan(t *testing.T) {
	_, _, ok := MessageSet(nil).Span()
	assert.False(t, ok)

	first := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	set := NewMessageSet([]Message{
		NewMessage("A", "x", last),
		NewMessage("A", "y", first),
	})

	gotFirst, gotLast, ok := set.Span()
	require.True(t, ok)
	assert.True(t, first.Equal(gotFirst))
	assert.True(t, last.Equal(gotLast))
}

func TestResultEmpty(t *testing.T) {
	r := &Result{}
	assert.True(t, r.Empty())

	r.Messages = NewMessageSet([]Message{
		NewMessage("A", "x", time.Now()),
	})
	assert.False(t, r.Empty())
}
