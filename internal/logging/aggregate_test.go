package logging

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const sampleLog = `{"time":"2026-10-19T10:00:02Z","level":"INFO","msg":"cart line added","screen":"api","shopper_id":"s1","product_id":3}
{"time":"2026-10-19T10:00:01Z","level":"DEBUG","msg":"filter changed","screen":"tui","shopper_id":"local"}
not json at all

{"time":"2026-10-19T10:00:03Z","level":"WARN","msg":"checkout rejected","screen":"api","shopper_id":"s2"}
{"time":"2026-10-19T10:00:04Z","level":"ERROR","msg":"order failed","screen":"api","shopper_id":"s1","order_ref":"r-1"}
`

func writeSampleLog(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(sampleLog), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestReadEntries(t *testing.T) {
	entries, err := ReadEntries(writeSampleLog(t))
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("got %d entries, want 4 (invalid lines skipped)", len(entries))
	}

	if entries[0].Message != "filter changed" {
		t.Errorf("entries not sorted by time: first = %q", entries[0].Message)
	}
	first := entries[1]
	if first.ShopperID != "s1" || first.Screen != "api" {
		t.Errorf("context fields = %+v", first)
	}
	if first.Attrs["product_id"] != float64(3) {
		t.Errorf("Attrs = %v, want product_id 3", first.Attrs)
	}
	if entries[3].OrderRef != "r-1" {
		t.Errorf("OrderRef = %q, want r-1", entries[3].OrderRef)
	}
	if entries[0].Attrs != nil {
		t.Errorf("entry without extras has Attrs %v", entries[0].Attrs)
	}
}

func TestReadEntriesMissingFile(t *testing.T) {
	_, err := ReadEntries(t.TempDir())
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want not-exist", err)
	}
}

func TestFilterEntries(t *testing.T) {
	entries, err := ReadEntries(writeSampleLog(t))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"empty filter", Filter{}, []string{"filter changed", "cart line added", "checkout rejected", "order failed"}},
		{"min level", Filter{MinLevel: "warn"}, []string{"checkout rejected", "order failed"}},
		{"shopper", Filter{Shopper: "s1"}, []string{"cart line added", "order failed"}},
		{"screen", Filter{Screen: "tui"}, []string{"filter changed"}},
		{"contains", Filter{Contains: "checkout"}, []string{"checkout rejected"}},
		{
			"time window",
			Filter{
				Since: time.Date(2026, 10, 19, 10, 0, 2, 0, time.UTC),
				Until: time.Date(2026, 10, 19, 10, 0, 3, 0, time.UTC),
			},
			[]string{"cart line added", "checkout rejected"},
		},
		{"combined", Filter{Shopper: "s1", MinLevel: "ERROR"}, []string{"order failed"}},
		{"no match", Filter{Shopper: "nobody"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, e := range FilterEntries(entries, tt.filter) {
				got = append(got, e.Message)
			}
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWriteEntries(t *testing.T) {
	entries, err := ReadEntries(writeSampleLog(t))
	if err != nil {
		t.Fatal(err)
	}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteEntries(&buf, entries, "text"); err != nil {
			t.Fatal(err)
		}
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if len(lines) != 4 {
			t.Fatalf("got %d lines, want 4", len(lines))
		}
		want := "[2026-10-19 10:00:04.000] ERROR - order failed (shopper=s1, screen=api, order=r-1)"
		if lines[3] != want {
			t.Errorf("line = %q, want %q", lines[3], want)
		}
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteEntries(&buf, entries, "JSON"); err != nil {
			t.Fatal(err)
		}
		var decoded []Entry
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("output is not a JSON array: %v", err)
		}
		if len(decoded) != 4 {
			t.Errorf("decoded %d entries, want 4", len(decoded))
		}
	})

	t.Run("json empty is an array", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteEntries(&buf, nil, "json"); err != nil {
			t.Fatal(err)
		}
		if strings.TrimSpace(buf.String()) != "[]" {
			t.Errorf("output = %q, want []", buf.String())
		}
	})

	t.Run("csv", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteEntries(&buf, entries, "csv"); err != nil {
			t.Fatal(err)
		}
		records, err := csv.NewReader(&buf).ReadAll()
		if err != nil {
			t.Fatal(err)
		}
		if len(records) != 5 {
			t.Fatalf("got %d records, want header + 4", len(records))
		}
		if records[0][3] != "shopper_id" {
			t.Errorf("header = %v", records[0])
		}
		if records[2][6] != `{"product_id":3}` {
			t.Errorf("attrs column = %q", records[2][6])
		}
	})

	t.Run("unsupported", func(t *testing.T) {
		if err := WriteEntries(&bytes.Buffer{}, entries, "xml"); err == nil {
			t.Error("expected error for unsupported format")
		}
	})
}

func TestExportEntries(t *testing.T) {
	entries, err := ReadEntries(writeSampleLog(t))
	if err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(t.TempDir(), "export.txt")
	if err := ExportEntries(entries, out, "text"); err != nil {
		t.Fatalf("ExportEntries failed: %v", err)
	}
	content, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "checkout rejected") {
		t.Errorf("export missing entries: %s", content)
	}
}

func TestLoggerOutputRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, LevelDebug)
	logger.WithScreen("tui").WithShopper("local").Debug("quantity changed", "product_id", 2, "delta", -1)

	entries, err := ParseEntries(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Level != LevelDebug || e.Screen != "tui" || e.ShopperID != "local" || e.Time.IsZero() {
		t.Errorf("entry = %+v", e)
	}
	if e.Attrs["delta"] != float64(-1) {
		t.Errorf("Attrs = %v", e.Attrs)
	}
}
