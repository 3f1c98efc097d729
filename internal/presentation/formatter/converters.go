package formatter

import (
	"strconv"

	"github.com/qasimmansoori/insta-chat-analyzer/internal/data/aggregator"
	"github.com/qasimmansoori/insta-chat-analyzer/internal/util"
)

// Display limits taken over from the reference dashboard.
const (
	DefaultTopSenders = 10
	DefaultTopEmojis  = 15
)

// ReportTables converts every aggregate in the report into an ordered Table.
// topSenders and topEmojis cap the frequency tables (<= 0 applies the
// defaults); the time-series tables are never truncated.
func ReportTables(r *aggregator.Report, topSenders, topEmojis int) []Table {
	if topSenders <= 0 {
		topSenders = DefaultTopSenders
	}
	if topEmojis <= 0 {
		topEmojis = DefaultTopEmojis
	}

	tables := []Table{
		frequencyTable("Top Senders", "Sender", r.Senders, topSenders),
		frequencyTable("Top Emojis", "Emoji", r.Emojis, topEmojis),
		hourTable(r.Hours),
		weeklyTrendTable(r.Weekly, r.WeeklyBySender),
		monthlyTable(r.Monthly),
		dayHeatmapTable(r.DayHeatmap),
		rollingHeatmapTable(r.RollingHeatmap),
	}
	return tables
}

func frequencyTable(title, keyColumn string, rows []aggregator.CountRow, limit int) Table {
	if len(rows) > limit {
		rows = rows[:limit]
	}
	t := Table{Title: title, Columns: []string{keyColumn, "Messages"}}
	for _, row := range rows {
		t.Rows = append(t.Rows, []string{row.Key, util.FormatNumber(row.Count)})
	}
	return t
}

func hourTable(hours [24]int) Table {
	t := Table{Title: "Activity by Hour", Columns: []string{"Hour", "Messages"}}
	for h, count := range hours {
		t.Rows = append(t.Rows, []string{util.HourLabel12(h), util.FormatNumber(count)})
	}
	return t
}

// weeklyTrendTable pivots the per-sender weekly series into one column per
// sender, plus a leading total column from the global series.
func weeklyTrendTable(global []aggregator.WeeklyPoint, bySender []aggregator.SenderSeries) Table {
	t := Table{Title: "Weekly Trend", Columns: []string{"Week", "All"}}
	for _, series := range bySender {
		t.Columns = append(t.Columns, series.Sender)
	}

	for i, point := range global {
		row := []string{point.WeekStart, util.FormatNumber(point.Count)}
		for _, series := range bySender {
			// All series share the global week axis.
			count := 0
			if i < len(series.Points) {
				count = series.Points[i].Count
			}
			row = append(row, util.FormatNumber(count))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func monthlyTable(points []aggregator.MonthPoint) Table {
	t := Table{Title: "Monthly Growth", Columns: []string{"Month", "Messages"}}
	for _, point := range points {
		t.Rows = append(t.Rows, []string{point.Month, util.FormatNumber(point.Count)})
	}
	return t
}

func dayHeatmapTable(heat *aggregator.DayHeatmap) Table {
	t := Table{Title: "Daily Activity Heatmap", Columns: append([]string{"Day"}, heat.Months...)}
	for day := 0; day < len(heat.Cells); day++ {
		row := []string{strconv.Itoa(day + 1)}
		for _, count := range heat.Cells[day] {
			row = append(row, util.FormatNumber(count))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func rollingHeatmapTable(heat *aggregator.RollingHeatmap) Table {
	t := Table{Title: "Weekly Activity (Last 12 Months)", Columns: append([]string{"Week"}, heat.Months...)}
	labels := []string{"1st", "2nd", "3rd", "4th+"}
	for rank, cells := range heat.Cells {
		row := []string{labels[rank]}
		for _, count := range cells {
			row = append(row, util.FormatNumber(count))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}
