package formatter

import (
	"io"

	"github.com/bytedance/sonic"
)

// JSONFormatter renders tables as an indented JSON array.
type JSONFormatter struct {
	writer io.Writer
}

func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

func (f *JSONFormatter) Format(tables []Table) error {
	data, err := sonic.ConfigDefault.MarshalIndent(tables, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = f.writer.Write(data)
	return err
}
