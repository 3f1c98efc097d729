// Package aggregator derives summary tables from a message set. Every
// aggregate is a pure function of its input; tables carry no reference back
// to the set and can be discarded independently.
package aggregator

import (
	"sort"
	"time"

	"github.com/qasimmansoori/insta-chat-analyzer/internal/core/model"
)

// CountRow is one row of a frequency table.
type CountRow struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// frequency counts values and returns rows sorted by count descending,
// ties broken by first appearance.
func frequency(values []string) []CountRow {
	index := make(map[string]int)
	var rows []CountRow
	for _, v := range values {
		if i, ok := index[v]; ok {
			rows[i].Count++
			continue
		}
		index[v] = len(rows)
		rows = append(rows, CountRow{Key: v, Count: 1})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Count > rows[j].Count
	})
	return rows
}

// SenderFrequency counts messages per sender, most active first.
func SenderFrequency(m model.MessageSet) []CountRow {
	senders := make([]string, len(m))
	for i, msg := range m {
		senders[i] = msg.Sender
	}
	return frequency(senders)
}

// EmojiFrequency counts emoji occurrences across all messages, most
// frequent first.
func EmojiFrequency(m model.MessageSet) []CountRow {
	var emojis []string
	for _, msg := range m {
		emojis = append(emojis, msg.Emojis...)
	}
	return frequency(emojis)
}

// HourHistogram counts messages per hour of day. The result always has 24
// buckets; hours with no messages hold zero.
func HourHistogram(m model.MessageSet) [24]int {
	var hist [24]int
	for _, msg := range m {
		hist[msg.Hour()]++
	}
	return hist
}

// weekStart returns midnight of the Monday beginning t's week, keeping t's
// location.
func weekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// monthStart returns midnight of the first day of t's month.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
