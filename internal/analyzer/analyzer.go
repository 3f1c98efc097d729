// Package analyzer wires the extraction-and-aggregation pipeline: documents
// in, aggregate tables out. Data flows one direction only; no stage mutates
// another stage's output.
package analyzer

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/qasimmansoori/insta-chat-analyzer/internal/core/model"
	"github.com/qasimmansoori/insta-chat-analyzer/internal/core/timeparse"
	"github.com/qasimmansoori/insta-chat-analyzer/internal/data/aggregator"
	"github.com/qasimmansoori/insta-chat-analyzer/internal/data/extractor"
	"github.com/qasimmansoori/insta-chat-analyzer/internal/data/scanner"
	"github.com/qasimmansoori/insta-chat-analyzer/internal/presentation/formatter"
	"github.com/qasimmansoori/insta-chat-analyzer/internal/util"
)

type Config struct {
	// DataDir is scanned for .html exports when Files is empty.
	DataDir string
	// Files are explicit export paths; they bypass the directory scan.
	Files []string

	OutputFormat       string // table, json, csv
	IncludeAttachments bool
	TrendSenders       int
	TopSenders         int
	TopEmojis          int
	Concurrency        int

	// Writer receives the rendered output. Defaults to stdout.
	Writer io.Writer
}

type Analyzer struct {
	config    *Config
	extractor *extractor.Extractor
}

func New(config *Config) *Analyzer {
	if config.Concurrency == 0 {
		config.Concurrency = runtime.NumCPU()
	}
	if config.Writer == nil {
		config.Writer = os.Stdout
	}

	return &Analyzer{
		config: config,
		extractor: extractor.New(extractor.Options{
			IncludeAttachments: config.IncludeAttachments,
			Concurrency:        config.Concurrency,
		}),
	}
}

// Run resolves documents, executes the pipeline, and renders the aggregate
// tables. An empty result is a valid terminal state, not an error.
func (a *Analyzer) Run() error {
	docs, warnings, err := a.loadDocuments()
	if err != nil {
		return err
	}

	result := a.Analyze(docs)
	result.Warnings = append(warnings, result.Warnings...)

	util.LogInfof("Pipeline finished: %d messages, %d document warnings, %d dropped timestamps",
		len(result.Messages), len(result.Warnings), result.DroppedTimestamps)

	if result.Empty() {
		if len(result.Warnings) > 0 {
			fmt.Fprintf(a.config.Writer, "No valid messages found (%d document(s) could not be parsed).\n",
				len(result.Warnings))
		} else {
			fmt.Fprintln(a.config.Writer, "No messages found.")
		}
		return nil
	}

	report := aggregator.BuildReport(result.Messages, a.config.TrendSenders)
	tables := formatter.ReportTables(report, a.config.TopSenders, a.config.TopEmojis)
	return a.render(tables)
}

// Analyze runs extraction and normalization over already-loaded documents.
// Exposed separately so callers owning their own buffers can skip the
// filesystem entirely.
func (a *Analyzer) Analyze(docs []extractor.Document) *model.Result {
	raws, warnings := a.extractor.Extract(docs)

	messages, dropped := normalize(raws)

	return &model.Result{
		Messages:          model.NewMessageSet(messages),
		Warnings:          warnings,
		DroppedTimestamps: dropped,
	}
}

// normalize converts raw records into messages, dropping any whose
// timestamp cannot be parsed. Lossy on purpose: a malformed timestamp must
// never abort aggregation.
func normalize(raws []model.RawMessage) ([]model.Message, int) {
	messages := make([]model.Message, 0, len(raws))
	dropped := 0
	for _, raw := range raws {
		timestamp, ok := timeparse.Parse(raw.TimestampText)
		if !ok {
			dropped++
			continue
		}
		messages = append(messages, model.NewMessage(raw.Sender, raw.Text, timestamp))
	}
	return messages, dropped
}

// loadDocuments reads the configured files, or scans DataDir when none are
// given. An unreadable file is a per-document warning, not a batch failure.
func (a *Analyzer) loadDocuments() ([]extractor.Document, []string, error) {
	paths := a.config.Files
	if len(paths) == 0 {
		if a.config.DataDir == "" {
			return nil, nil, fmt.Errorf("no input: provide export files or a directory")
		}
		scanned, err := scanner.NewFileScanner(a.config.DataDir).Scan()
		if err != nil {
			return nil, nil, fmt.Errorf("scanning %s: %w", a.config.DataDir, err)
		}
		paths = scanned
	}

	var docs []extractor.Document
	var warnings []string
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			warning := fmt.Sprintf("Could not read document %s: %v", path, err)
			util.LogWarn(warning)
			warnings = append(warnings, warning)
			continue
		}
		docs = append(docs, extractor.Document{Name: path, Data: data})
	}
	return docs, warnings, nil
}

func (a *Analyzer) render(tables []formatter.Table) error {
	var f formatter.Formatter
	switch a.config.OutputFormat {
	case "json":
		f = formatter.NewJSONFormatter(a.config.Writer)
	case "csv":
		f = formatter.NewCSVFormatter(a.config.Writer)
	default:
		f = formatter.NewTableFormatter(a.config.Writer)
	}
	return f.Format(tables)
}
