package model

import (
	"sort"
	"time"
	"unicode/utf8"

	"github.com/qasimmansoori/insta-chat-analyzer/internal/core/emoji"
)

// RawMessage is one candidate message pulled from a document before
// timestamp normalization. Ephemeral: it exists only until it is either
// normalized into a Message or dropped.
type RawMessage struct {
	Sender        string
	Text          string
	TimestampText string
}

// Message is the canonical unit of analysis. Timestamp is always a valid
// instant; records whose timestamp fails to normalize never become Messages.
// Construct via NewMessage and treat as immutable.
type Message struct {
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Length    int       `json:"length"`
	Emojis    []string  `json:"emojis,omitempty"`
}

// NewMessage builds a Message, deriving Length (rune count) and the embedded
// emoji runs from text.
func NewMessage(sender, text string, timestamp time.Time) Message {
	return Message{
		Sender:    sender,
		Text:      text,
		Timestamp: timestamp,
		Length:    utf8.RuneCountInString(text),
		Emojis:    emoji.Extract(text),
	}
}

// DateKey returns the calendar date as "2006-01-02".
func (m Message) DateKey() string {
	return m.Timestamp.Format("2006-01-02")
}

// MonthKey returns the calendar month as "2006-01".
func (m Message) MonthKey() string {
	return m.Timestamp.Format("2006-01")
}

// Day returns the day of month (1-31).
func (m Message) Day() int {
	return m.Timestamp.Day()
}

// Hour returns the naive hour of day (0-23). No timezone conversion is
// applied; export timestamps are already in the desired display zone.
func (m Message) Hour() int {
	return m.Timestamp.Hour()
}

// Weekday returns the three-letter weekday abbreviation, e.g. "Mon".
func (m Message) Weekday() string {
	return m.Timestamp.Format("Mon")
}

// MessageSet is an ordered collection of messages, timestamp ascending.
// It is the single shared input to every aggregation.
type MessageSet []Message

// NewMessageSet sorts messages by timestamp ascending (stable, so messages
// sharing an instant keep their extraction order) and returns the set.
func NewMessageSet(messages []Message) MessageSet {
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Timestamp.Before(messages[j].Timestamp)
	})
	return MessageSet(messages)
}

// Span returns the earliest and latest timestamps in the set. ok is false
// for an empty set.
func (s MessageSet) Span() (first, last time.Time, ok bool) {
	if len(s) == 0 {
		return time.Time{}, time.Time{}, false
	}
	return s[0].Timestamp, s[len(s)-1].Timestamp, true
}

// Result is the outcome of one full pipeline run over a document batch.
type Result struct {
	Messages MessageSet `json:"messages"`
	// Warnings holds one human-readable entry per document that failed to
	// parse or decode. Individual skipped blocks are not reported here.
	Warnings []string `json:"warnings,omitempty"`
	// DroppedTimestamps counts candidate messages discarded because their
	// timestamp matched no known format.
	DroppedTimestamps int `json:"droppedTimestamps"`
}

// Empty reports the distinct zero-valid-messages terminal state.
func (r *Result) Empty() bool {
	return len(r.Messages) == 0
}
