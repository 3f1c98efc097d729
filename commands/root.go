package commands

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qasimmansoori/insta-chat-analyzer/internal/analyzer"
	"github.com/qasimmansoori/insta-chat-analyzer/internal/util"
)

var (
	// Logging related
	debug   bool
	logFile string

	// Data path
	dataDir string

	// Output related
	outputFormat string

	// Extraction and display
	includeAttachments bool
	trendSenders       int
	topSenders         int
	topEmojis          int

	// Watch mode
	watch bool

	rootCmd = &cobra.Command{
		Use:   "insta-chat-analyzer [files...]",
		Short: "Instagram chat export analysis tool",
		Long: `insta-chat-analyzer parses Instagram chat-history HTML exports and derives
activity statistics: sender and emoji frequency, hourly activity, weekly and
monthly trends, and day-by-month heatmaps.

Examples:
  insta-chat-analyzer message_1.html                   # Analyze one export file
  insta-chat-analyzer --dir ~/Downloads/inbox          # Analyze every .html under a directory
  insta-chat-analyzer -o json message_1.html           # JSON output for another renderer
  insta-chat-analyzer --include-attachments chat.html  # Keep attachment stubs as "Attachment: …"
  insta-chat-analyzer --dir inbox --watch              # Re-run whenever export files change`,
		Args: cobra.ArbitraryArgs,
		RunE: runAnalyze,
	}
)

func init() {
	rootCmd.Flags().StringVar(&dataDir, "dir", "",
		"Directory scanned for .html export files (ignored when files are given)")

	rootCmd.Flags().StringVarP(&outputFormat, "output", "o", "table",
		"Output format (table, json, csv)")
	rootCmd.Flags().BoolVar(&includeAttachments, "include-attachments", false,
		"Keep attachment/reel blocks with a synthetic Attachment body")
	rootCmd.Flags().IntVar(&trendSenders, "trend-senders", 0,
		"Senders on the comparative weekly trend (0 = default 5)")
	rootCmd.Flags().IntVar(&topSenders, "top-senders", 0,
		"Rows in the sender frequency table (0 = default 10)")
	rootCmd.Flags().IntVar(&topEmojis, "top-emojis", 0,
		"Rows in the emoji frequency table (0 = default 15)")

	rootCmd.Flags().BoolVarP(&watch, "watch", "w", false,
		"Watch the export directory and re-run on changes")

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"Also write logs to this file")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}
	util.InitLogger(logLevel, expandPath(logFile))

	config := &analyzer.Config{
		DataDir:            expandPath(dataDir),
		Files:              expandPaths(args),
		OutputFormat:       outputFormat,
		IncludeAttachments: includeAttachments,
		TrendSenders:       trendSenders,
		TopSenders:         topSenders,
		TopEmojis:          topEmojis,
		Concurrency:        runtime.NumCPU(),
	}

	if watch {
		return runWatch(config)
	}

	return analyzer.New(config).Run()
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

func expandPath(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func expandPaths(paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	expanded := make([]string, len(paths))
	for i, p := range paths {
		expanded[i] = expandPath(p)
	}
	return expanded
}
