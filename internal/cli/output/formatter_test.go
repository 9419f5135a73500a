package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		format Format
		wide   bool
	}{
		{FormatJSON, false},
		{FormatYAML, false},
		{FormatTable, false},
		{FormatTable, true},
		{"unknown", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			f := NewFormatter(tt.format, tt.wide)
			if f == nil {
				t.Fatal("NewFormatter returned nil")
			}

			switch tt.format {
			case FormatJSON:
				if _, ok := f.(*JSONFormatter); !ok {
					t.Error("expected JSONFormatter")
				}
			case FormatYAML:
				if _, ok := f.(*YAMLFormatter); !ok {
					t.Error("expected YAMLFormatter")
				}
			default:
				tf, ok := f.(*TableFormatter)
				if !ok {
					t.Fatal("expected TableFormatter")
				}
				if tt.wide && !tf.Wide {
					t.Error("expected Wide=true for table formatter")
				}
			}
		})
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	f := &JSONFormatter{}

	t.Run("struct", func(t *testing.T) {
		data := struct {
			Title string `json:"title"`
			Likes int    `json:"likes"`
		}{
			Title: "Go Basics",
			Likes: 7,
		}

		var buf bytes.Buffer
		if err := f.Format(&buf, data); err != nil {
			t.Fatalf("Format() error = %v", err)
		}

		out := buf.String()
		if !strings.Contains(out, `"title": "Go Basics"`) {
			t.Error("Format() missing title field")
		}
		if !strings.Contains(out, `"likes": 7`) {
			t.Error("Format() missing likes field")
		}
	})

	t.Run("nil", func(t *testing.T) {
		var buf bytes.Buffer
		if err := f.Format(&buf, nil); err != nil {
			t.Fatalf("Format(nil) error = %v", err)
		}
		if got := strings.TrimSpace(buf.String()); got != "null" {
			t.Errorf("Format(nil) = %q, want 'null'", got)
		}
	})
}

func TestYAMLFormatter_Format(t *testing.T) {
	f := &YAMLFormatter{}

	t.Run("struct", func(t *testing.T) {
		data := struct {
			Title string `yaml:"title"`
			Likes int    `yaml:"likes"`
		}{
			Title: "Go Basics",
			Likes: 7,
		}

		var buf bytes.Buffer
		if err := f.Format(&buf, data); err != nil {
			t.Fatalf("Format() error = %v", err)
		}

		out := buf.String()
		if !strings.Contains(out, "title: Go Basics") {
			t.Errorf("Format() missing title line, got %q", out)
		}
		if !strings.Contains(out, "likes: 7") {
			t.Errorf("Format() missing likes line, got %q", out)
		}
	})

	t.Run("slice", func(t *testing.T) {
		var buf bytes.Buffer
		if err := f.Format(&buf, []string{"a", "b"}); err != nil {
			t.Fatalf("Format() error = %v", err)
		}
		if !strings.Contains(buf.String(), "- a") {
			t.Errorf("Format() missing list item, got %q", buf.String())
		}
	})
}
