package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"WikiCollector/internal/domain"
)

func strPtr(s string) *string {
	return &s
}

func TestWriteSnapshot(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "output.json")
	records := []domain.ArticleRecord{
		{
			SourceTitle: "מלחמת העולם הראשונה",
			StartDate:   strPtr("1914-07-28"),
			EndDate:     strPtr("1918-11-11"),
			TargetTitle: "World War I",
			PageViews:   123456,
		},
		{
			SourceTitle: "ירושלים",
			TargetTitle: "Jerusalem",
			PageViews:   0,
		},
	}

	if err := NewWriter().Write(path, records); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	got := string(raw)

	if !strings.Contains(got, `"hebrew_article": "מלחמת העולם הראשונה"`) {
		t.Fatalf("hebrew title not preserved literally:\n%s", got)
	}
	if !strings.Contains(got, `"start_date": "1914-07-28"`) {
		t.Fatalf("missing start date:\n%s", got)
	}
	if !strings.Contains(got, `"start_date": null`) {
		t.Fatalf("absent date must serialize as null:\n%s", got)
	}
	if !strings.Contains(got, `"english_pageviews_2025": 123456`) {
		t.Fatalf("missing pageviews key:\n%s", got)
	}
	if strings.Contains(got, `\u`) {
		t.Fatalf("output contains escaped characters:\n%s", got)
	}
	if !strings.HasPrefix(got, "[\n  {") {
		t.Fatalf("output is not a 2-space indented array:\n%s", got)
	}
}

func TestWriteEmptySnapshot(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "output.json")
	if err := NewWriter().Write(path, nil); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if strings.TrimSpace(string(raw)) != "[]" {
		t.Fatalf("expected empty array, got %q", string(raw))
	}
}

func TestWriteUnwritablePath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing-dir", "output.json")
	if err := NewWriter().Write(path, nil); err == nil {
		t.Fatal("expected error for unwritable path")
	}
}
