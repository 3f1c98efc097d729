package aggregator

import (
	"github.com/qasimmansoori/insta-chat-analyzer/internal/core/model"
)

// Report bundles every aggregate view derived from one message set. Each
// field is computed independently; none holds a reference back to the set.
type Report struct {
	TotalMessages  int             `json:"totalMessages"`
	Senders        []CountRow      `json:"senders"`
	Emojis         []CountRow      `json:"emojis"`
	Hours          [24]int         `json:"hours"`
	Weekly         []WeeklyPoint   `json:"weekly"`
	WeeklyBySender []SenderSeries  `json:"weeklyBySender"`
	Monthly        []MonthPoint    `json:"monthly"`
	DayHeatmap     *DayHeatmap     `json:"dayHeatmap"`
	RollingHeatmap *RollingHeatmap `json:"rollingHeatmap"`
}

// BuildReport runs every aggregation over the set. trendSenders limits the
// comparative weekly series (<= 0 means DefaultTrendSenders).
func BuildReport(m model.MessageSet, trendSenders int) *Report {
	return &Report{
		TotalMessages:  len(m),
		Senders:        SenderFrequency(m),
		Emojis:         EmojiFrequency(m),
		Hours:          HourHistogram(m),
		Weekly:         WeeklySeries(m),
		WeeklyBySender: WeeklySeriesBySender(m, trendSenders),
		Monthly:        MonthlySeries(m),
		DayHeatmap:     DayMonthHeatmap(m),
		RollingHeatmap: RollingWeekHeatmap(m),
	}
}
