package formatter

// Table is an ordered tabular view: named columns plus string rows. It is
// the handoff structure between the pipeline and any rendering layer.
type Table struct {
	Title   string     `json:"title"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Formatter renders a set of tables to its destination.
type Formatter interface {
	Format(tables []Table) error
}
