package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"regexp"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/DanielWebDeveloper25/e-commerce/internal/logging"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View the activity log",
	Long: `View and filter the ShopZone activity log (shopzone.log in the log
directory, see paths.log_dir).

Examples:
  # Show the last 50 entries
  shopzone logs

  # Show every order placed in the last hour
  shopzone logs -n 0 --since 1h --grep "order placed"

  # Only one API shopper, as CSV
  shopzone logs --shopper 5f0c... --format csv -o shopper.csv

  # Follow new entries
  shopzone logs -f`,
	Args: cobra.NoArgs,
	RunE: runLogs,
}

var (
	logsTail    int
	logsFollow  bool
	logsLevel   string
	logsSince   string
	logsShopper string
	logsScreen  string
	logsGrep    string
	logsFormat  string
	logsOutput  string
)

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.Flags().IntVarP(&logsTail, "tail", "n", 50, "Number of entries to show (0 for all)")
	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "Follow log output (like tail -f)")
	logsCmd.Flags().StringVar(&logsLevel, "level", "", "Filter by minimum level (debug/info/warn/error)")
	logsCmd.Flags().StringVar(&logsSince, "since", "", "Show entries since duration ago (e.g., 1h, 30m)")
	logsCmd.Flags().StringVar(&logsShopper, "shopper", "", "Only entries for this shopper id")
	logsCmd.Flags().StringVar(&logsScreen, "screen", "", "Only entries from this surface (tui, api)")
	logsCmd.Flags().StringVar(&logsGrep, "grep", "", "Filter entries matching pattern (regex)")
	logsCmd.Flags().StringVar(&logsFormat, "format", "text", "Output format: text, json or csv")
	logsCmd.Flags().StringVarP(&logsOutput, "output", "o", "", "Write to this file instead of stdout")
}

// logQuery is the parsed form of the logs flags.
type logQuery struct {
	filter logging.Filter
	grep   *regexp.Regexp
	tail   int
}

func parseLogQuery(now time.Time) (logQuery, error) {
	q := logQuery{
		tail: logsTail,
		filter: logging.Filter{
			Shopper: logsShopper,
			Screen:  logsScreen,
		},
	}

	if logsLevel != "" {
		q.filter.MinLevel = logging.ParseLevel(logsLevel)
	}

	if logsSince != "" {
		duration, err := time.ParseDuration(logsSince)
		if err != nil {
			return q, fmt.Errorf("invalid duration format: %w", err)
		}
		q.filter.Since = now.Add(-duration)
	}

	if logsGrep != "" {
		re, err := regexp.Compile(logsGrep)
		if err != nil {
			return q, fmt.Errorf("invalid grep pattern: %w", err)
		}
		q.grep = re
	}
	return q, nil
}

// apply filters entries and keeps the last q.tail of them.
func (q logQuery) apply(entries []logging.Entry) []logging.Entry {
	entries = logging.FilterEntries(entries, q.filter)
	if q.grep != nil {
		kept := entries[:0:0]
		for _, e := range entries {
			if q.grep.MatchString(e.Line()) {
				kept = append(kept, e)
			}
		}
		entries = kept
	}
	if q.tail > 0 && len(entries) > q.tail {
		entries = entries[len(entries)-q.tail:]
	}
	return entries
}

func runLogs(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logDir := cfg.Paths.ResolveLogDir()
	logPath := filepath.Join(logDir, logging.FileName)

	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		fmt.Fprintln(cmd.OutOrStdout(), "No activity log yet.")
		fmt.Fprintln(cmd.OutOrStdout(), "Logs are stored at:", logPath)
		return nil
	}

	q, err := parseLogQuery(time.Now())
	if err != nil {
		return err
	}

	if logsFollow {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return followLogs(ctx, cmd.OutOrStdout(), logPath, q)
	}

	entries, err := logging.ReadEntries(logDir)
	if err != nil {
		return err
	}
	entries = q.apply(entries)

	if logsOutput != "" {
		if err := logging.ExportEntries(entries, logsOutput, logsFormat); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d entries to %s\n", len(entries), logsOutput)
		return nil
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No matching log entries found.")
		return nil
	}
	if logsFormat == "text" {
		for _, e := range entries {
			fmt.Fprintln(cmd.OutOrStdout(), formatLogEntry(e))
		}
		return nil
	}
	return logging.WriteEntries(cmd.OutOrStdout(), entries, logsFormat)
}

// followLogs prints entries appended to logPath until ctx is done.
func followLogs(ctx context.Context, w io.Writer, logPath string, q logQuery) error {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("failed to seek to end: %w", err)
	}

	fmt.Fprintf(w, "Following logs... (Ctrl+C to stop)\n\n")

	q.tail = 0
	reader := bufio.NewReader(file)
	for {
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(100 * time.Millisecond):
			}
			continue
		}
		if err != nil {
			return fmt.Errorf("error reading log file: %w", err)
		}

		entries, err := logging.ParseEntries(strings.NewReader(line))
		if err != nil {
			return err
		}
		for _, e := range q.apply(entries) {
			fmt.Fprintln(w, formatLogEntry(e))
		}
	}
}

var (
	logTimeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	logContextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	logLevelStyles  = map[string]lipgloss.Style{
		logging.LevelDebug: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		logging.LevelInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		logging.LevelWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		logging.LevelError: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
)

// formatLogEntry formats a log entry for terminal output
func formatLogEntry(e logging.Entry) string {
	var sb strings.Builder

	sb.WriteString(logTimeStyle.Render("[" + e.Time.Format("15:04:05.000") + "]"))
	sb.WriteString(" ")
	level := strings.ToUpper(e.Level)
	if style, ok := logLevelStyles[level]; ok {
		sb.WriteString(style.Render("[" + level + "]"))
	} else {
		sb.WriteString("[" + level + "]")
	}
	sb.WriteString(" ")
	sb.WriteString(e.Message)

	for _, kv := range [][2]string{
		{"shopper", e.ShopperID},
		{"screen", e.Screen},
		{"order", e.OrderRef},
	} {
		if kv[1] != "" {
			sb.WriteString(" ")
			sb.WriteString(logContextStyle.Render(kv[0] + "=" + kv[1]))
		}
	}

	for key, value := range e.Attrs {
		sb.WriteString(" ")
		sb.WriteString(logContextStyle.Render(key + "="))
		fmt.Fprintf(&sb, "%v", value)
	}

	return sb.String()
}
