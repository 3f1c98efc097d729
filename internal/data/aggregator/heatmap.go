package aggregator

import (
	"sort"

	"github.com/qasimmansoori/insta-chat-analyzer/internal/core/model"
)

// DayHeatmap is a day-of-month by month activity matrix. Rows are fixed at
// days 1-31 for every month; days a month does not have simply stay at zero
// so all columns share one row axis.
type DayHeatmap struct {
	Months []string `json:"months"` // chronological "2006-01" keys
	// Cells[day-1][col] is the message count on that day of Months[col].
	Cells [][]int `json:"cells"`
}

// DayMonthHeatmap builds the full day-by-month matrix. Only months present
// in the data get a column.
func DayMonthHeatmap(m model.MessageSet) *DayHeatmap {
	counts := make(map[string][31]int)
	for _, msg := range m {
		month := counts[msg.MonthKey()]
		month[msg.Day()-1]++
		counts[msg.MonthKey()] = month
	}

	months := make([]string, 0, len(counts))
	for key := range counts {
		months = append(months, key)
	}
	// "2006-01" keys order chronologically as strings.
	sort.Strings(months)

	cells := make([][]int, 31)
	for day := 0; day < 31; day++ {
		row := make([]int, len(months))
		for col, key := range months {
			row[col] = counts[key][day]
		}
		cells[day] = row
	}

	return &DayHeatmap{Months: months, Cells: cells}
}

// RollingHeatmap is the compact week-rank by month matrix: four fixed rows
// (1st through 4th-or-later week of the month) over the most recent twelve
// months. Exact week alignment is traded for a uniform display.
type RollingHeatmap struct {
	Months []string `json:"months"`
	// Cells[rank-1][col] is the count for the rank'th Monday-start week
	// whose start date falls inside Months[col].
	Cells [4][]int `json:"cells"`
}

// RollingWeekHeatmap buckets Monday-start weeks by the month containing the
// week's start date and ranks them 1st..4th within that month. Any week
// beyond the fourth collapses into the fourth bucket. Only the last twelve
// months of data are considered.
func RollingWeekHeatmap(m model.MessageSet) *RollingHeatmap {
	_, last, ok := m.Span()
	if !ok {
		return &RollingHeatmap{}
	}

	end := monthStart(last)
	cutoff := end.AddDate(0, -11, 0)

	months := make([]string, 0, 12)
	index := make(map[string]int)
	for month := cutoff; !month.After(end); month = month.AddDate(0, 1, 0) {
		index[month.Format("2006-01")] = len(months)
		months = append(months, month.Format("2006-01"))
	}

	heat := &RollingHeatmap{Months: months}
	for rank := range heat.Cells {
		heat.Cells[rank] = make([]int, len(months))
	}

	for _, msg := range m {
		start := weekStart(msg.Timestamp)
		col, ok := index[start.Format("2006-01")]
		if !ok {
			continue
		}
		rank := (start.Day()-1)/7 + 1
		if rank > 4 {
			rank = 4
		}
		heat.Cells[rank-1][col]++
	}

	return heat
}
