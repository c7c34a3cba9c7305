package logging

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// Entry is one parsed line of shopzone.log.
type Entry struct {
	Time      time.Time      `json:"time"`
	Level     string         `json:"level"`
	Message   string         `json:"msg"`
	ShopperID string         `json:"shopper_id,omitempty"`
	Screen    string         `json:"screen,omitempty"`
	OrderRef  string         `json:"order_ref,omitempty"`
	Attrs     map[string]any `json:"attrs,omitempty"`
}

// Filter selects entries. Zero-valued fields match everything; set fields
// are combined with AND.
type Filter struct {
	// MinLevel keeps entries at or above this level.
	MinLevel string
	Since    time.Time
	Until    time.Time
	Shopper  string
	Screen   string
	// Contains is a case-sensitive substring of the message.
	Contains string
}

var levelRank = map[string]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// ReadEntries parses {logDir}/shopzone.log, oldest first. Lines that are not
// valid JSON are skipped.
func ReadEntries(logDir string) ([]Entry, error) {
	f, err := os.Open(filepath.Join(logDir, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no %s in %s: %w", FileName, logDir, err)
		}
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ParseEntries(f)
}

// ParseEntries reads JSON log lines from r.
func ParseEntries(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1<<20)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		entry, err := parseEntry(line)
		if err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading log file: %w", err)
	}

	slices.SortStableFunc(entries, func(a, b Entry) int {
		return a.Time.Compare(b.Time)
	})
	return entries, nil
}

func parseEntry(line string) (Entry, error) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return Entry{}, fmt.Errorf("invalid JSON: %w", err)
	}

	entry := Entry{}
	take := func(key string) string {
		v, ok := raw[key].(string)
		delete(raw, key)
		if !ok {
			return ""
		}
		return v
	}

	if ts := take("time"); ts != "" {
		if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			entry.Time = t
		}
	}
	entry.Level = take("level")
	entry.Message = take("msg")
	entry.ShopperID = take("shopper_id")
	entry.Screen = take("screen")
	entry.OrderRef = take("order_ref")

	if len(raw) > 0 {
		entry.Attrs = raw
	}
	return entry, nil
}

// FilterEntries returns the entries matching f.
func FilterEntries(entries []Entry, f Filter) []Entry {
	if f == (Filter{}) {
		return entries
	}
	var out []Entry
	for _, e := range entries {
		if f.matches(e) {
			out = append(out, e)
		}
	}
	return out
}

func (f Filter) matches(e Entry) bool {
	if f.MinLevel != "" {
		want, okWant := levelRank[strings.ToUpper(f.MinLevel)]
		got, okGot := levelRank[e.Level]
		if okWant && okGot && got < want {
			return false
		}
	}
	if !f.Since.IsZero() && e.Time.Before(f.Since) {
		return false
	}
	if !f.Until.IsZero() && e.Time.After(f.Until) {
		return false
	}
	if f.Shopper != "" && e.ShopperID != f.Shopper {
		return false
	}
	if f.Screen != "" && e.Screen != f.Screen {
		return false
	}
	if f.Contains != "" && !strings.Contains(e.Message, f.Contains) {
		return false
	}
	return true
}

// WriteEntries renders entries to w as "text", "json" or "csv".
func WriteEntries(w io.Writer, entries []Entry, format string) error {
	switch strings.ToLower(format) {
	case "", "text":
		return writeText(w, entries)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if entries == nil {
			entries = []Entry{}
		}
		return enc.Encode(entries)
	case "csv":
		return writeCSV(w, entries)
	default:
		return fmt.Errorf("unsupported export format: %s (supported: text, json, csv)", format)
	}
}

// ExportEntries writes entries to a new file at path.
func ExportEntries(entries []Entry, path, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := WriteEntries(f, entries, format); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Line renders e as "[time] LEVEL - msg (shopper=.., screen=..) {attrs}".
func (e Entry) Line() string {
	parts := []string{
		"[" + e.Time.Format("2006-01-02 15:04:05.000") + "]",
		e.Level,
		"-",
		e.Message,
	}

	var ctx []string
	if e.ShopperID != "" {
		ctx = append(ctx, "shopper="+e.ShopperID)
	}
	if e.Screen != "" {
		ctx = append(ctx, "screen="+e.Screen)
	}
	if e.OrderRef != "" {
		ctx = append(ctx, "order="+e.OrderRef)
	}
	if len(ctx) > 0 {
		parts = append(parts, "("+strings.Join(ctx, ", ")+")")
	}

	if len(e.Attrs) > 0 {
		b, _ := json.Marshal(e.Attrs)
		parts = append(parts, string(b))
	}
	return strings.Join(parts, " ")
}

func writeText(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintln(w, e.Line()); err != nil {
			return fmt.Errorf("failed to write text entry: %w", err)
		}
	}
	return nil
}

func writeCSV(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"time", "level", "message", "shopper_id", "screen", "order_ref", "attrs"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, e := range entries {
		attrs := ""
		if len(e.Attrs) > 0 {
			if b, err := json.Marshal(e.Attrs); err == nil {
				attrs = string(b)
			}
		}
		record := []string{
			e.Time.Format(time.RFC3339Nano),
			e.Level,
			e.Message,
			e.ShopperID,
			e.Screen,
			e.OrderRef,
			attrs,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
