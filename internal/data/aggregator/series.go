package aggregator

import (
	"time"

	"github.com/qasimmansoori/insta-chat-analyzer/internal/core/model"
)

// WeeklyPoint is one Monday-start week bucket.
type WeeklyPoint struct {
	WeekStart string `json:"weekStart"` // "2006-01-02", always a Monday
	Count     int    `json:"count"`
}

// SenderSeries is one sender's weekly trend.
type SenderSeries struct {
	Sender string        `json:"sender"`
	Points []WeeklyPoint `json:"points"`
}

// MonthPoint is one calendar-month bucket.
type MonthPoint struct {
	Month string `json:"month"` // "2006-01"
	Count int    `json:"count"`
}

// DefaultTrendSenders is the number of senders shown on the comparative
// weekly trend when no explicit limit is given.
const DefaultTrendSenders = 5

// weeklyCounts buckets timestamps into Monday-start weeks and zero-fills
// every week between from and to inclusive (both already week starts).
func weeklyCounts(m model.MessageSet, from, to time.Time, keep func(model.Message) bool) []WeeklyPoint {
	counts := make(map[string]int)
	for _, msg := range m {
		if keep != nil && !keep(msg) {
			continue
		}
		counts[weekStart(msg.Timestamp).Format("2006-01-02")]++
	}

	var points []WeeklyPoint
	for week := from; !week.After(to); week = week.AddDate(0, 0, 7) {
		key := week.Format("2006-01-02")
		points = append(points, WeeklyPoint{WeekStart: key, Count: counts[key]})
	}
	return points
}

// WeeklySeries buckets all messages into Monday-start weeks spanning the
// observed range. Weeks with no messages inside the range appear with count
// zero; weeks outside the range are omitted.
func WeeklySeries(m model.MessageSet) []WeeklyPoint {
	first, last, ok := m.Span()
	if !ok {
		return nil
	}
	return weeklyCounts(m, weekStart(first), weekStart(last), nil)
}

// WeeklySeriesBySender computes an independent weekly series for each of the
// top-N senders by overall frequency, over the shared observed range so the
// series are comparable. topN <= 0 selects DefaultTrendSenders.
func WeeklySeriesBySender(m model.MessageSet, topN int) []SenderSeries {
	first, last, ok := m.Span()
	if !ok {
		return nil
	}
	if topN <= 0 {
		topN = DefaultTrendSenders
	}

	top := SenderFrequency(m)
	if len(top) > topN {
		top = top[:topN]
	}

	from, to := weekStart(first), weekStart(last)
	series := make([]SenderSeries, 0, len(top))
	for _, row := range top {
		sender := row.Key
		series = append(series, SenderSeries{
			Sender: sender,
			Points: weeklyCounts(m, from, to, func(msg model.Message) bool {
				return msg.Sender == sender
			}),
		})
	}
	return series
}

// MonthlySeries counts messages per calendar month across the observed
// range, chronologically ordered and zero-filled for gap months.
func MonthlySeries(m model.MessageSet) []MonthPoint {
	first, last, ok := m.Span()
	if !ok {
		return nil
	}

	counts := make(map[string]int)
	for _, msg := range m {
		counts[msg.MonthKey()]++
	}

	var points []MonthPoint
	end := monthStart(last)
	for month := monthStart(first); !month.After(end); month = month.AddDate(0, 1, 0) {
		key := month.Format("2006-01")
		points = append(points, MonthPoint{Month: key, Count: counts[key]})
	}
	return points
}
