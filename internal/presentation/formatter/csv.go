package formatter

import (
	"encoding/csv"
	"io"
)

// CSVFormatter renders tables as CSV. Each table is preceded by a one-cell
// title record; tables are separated by an empty record.
type CSVFormatter struct {
	writer io.Writer
}

func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

func (f *CSVFormatter) Format(tables []Table) error {
	w := csv.NewWriter(f.writer)
	defer w.Flush()

	for i, table := range tables {
		if i > 0 {
			if err := w.Write([]string{""}); err != nil {
				return err
			}
		}
		if err := w.Write([]string{table.Title}); err != nil {
			return err
		}
		if err := w.Write(table.Columns); err != nil {
			return err
		}
		for _, row := range table.Rows {
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	return w.Error()
}
