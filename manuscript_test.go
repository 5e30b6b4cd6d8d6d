package bookforge

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeManuscript(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// ---------------------------------------------------------------------------
// TestToHTML_Markdown
// ---------------------------------------------------------------------------

func TestToHTML_Markdown(t *testing.T) {
	t.Parallel()

	conv := newManuscriptConverter()

	t.Run("basic structure", func(t *testing.T) {
		t.Parallel()

		path := writeManuscript(t, "draft.md", "# Title\n\nA *styled* paragraph.\n")
		got, err := conv.ToHTML(context.Background(), path)
		if err != nil {
			t.Fatalf("ToHTML() error = %v", err)
		}
		for _, want := range []string{"<h1", "Title", "<em>styled</em>"} {
			if !strings.Contains(got, want) {
				t.Errorf("output missing %q:\n%s", want, got)
			}
		}
	})

	t.Run("gfm tables render", func(t *testing.T) {
		t.Parallel()

		path := writeManuscript(t, "table.markdown", "| a | b |\n|---|---|\n| 1 | 2 |\n")
		got, err := conv.ToHTML(context.Background(), path)
		if err != nil {
			t.Fatalf("ToHTML() error = %v", err)
		}
		if !strings.Contains(got, "<table>") {
			t.Errorf("GFM table not rendered:\n%s", got)
		}
	})

	t.Run("raw html is not passed through", func(t *testing.T) {
		t.Parallel()

		path := writeManuscript(t, "sneaky.md", "hello\n\n<script>alert(1)</script>\n")
		got, err := conv.ToHTML(context.Background(), path)
		if err != nil {
			t.Fatalf("ToHTML() error = %v", err)
		}
		if strings.Contains(got, "<script>") {
			t.Errorf("raw script tag passed through:\n%s", got)
		}
	})

	t.Run("fenced code gets highlighting classes", func(t *testing.T) {
		t.Parallel()

		path := writeManuscript(t, "code.md", "```go\nfunc main() {}\n```\n")
		got, err := conv.ToHTML(context.Background(), path)
		if err != nil {
			t.Fatalf("ToHTML() error = %v", err)
		}
		if !strings.Contains(got, "class=") {
			t.Errorf("expected chroma classes in output:\n%s", got)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := conv.ToHTML(context.Background(), filepath.Join(t.TempDir(), "absent.md"))
		if !errors.Is(err, ErrConversion) {
			t.Errorf("error = %v, want ErrConversion", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestToHTML_UnsupportedAndCanceled
// ---------------------------------------------------------------------------

func TestToHTML_UnsupportedAndCanceled(t *testing.T) {
	t.Parallel()

	conv := newManuscriptConverter()

	t.Run("unsupported extension", func(t *testing.T) {
		t.Parallel()

		path := writeManuscript(t, "book.epub", "whatever")
		_, err := conv.ToHTML(context.Background(), path)
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("error = %v, want ErrUnsupportedFormat", err)
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		path := writeManuscript(t, "draft.md", "# x\n")
		_, err := conv.ToHTML(ctx, path)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestParagraphsToHTML
// ---------------------------------------------------------------------------

func TestParagraphsToHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		want   []string
		absent []string
	}{
		{
			name:  "lines become paragraphs",
			input: "first\nsecond\n",
			want:  []string{"<p>first</p>", "<p>second</p>"},
		},
		{
			name:   "blank lines skipped",
			input:  "one\n\n\n  \ntwo\n",
			want:   []string{"<p>one</p>", "<p>two</p>"},
			absent: []string{"<p></p>"},
		},
		{
			name:   "markup is escaped",
			input:  "a <b>bold</b> claim\n",
			want:   []string{"<p>a &lt;b&gt;bold&lt;/b&gt; claim</p>"},
			absent: []string{"<b>bold</b>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := paragraphsToHTML(tt.input)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("output missing %q:\n%s", w, got)
				}
			}
			for _, a := range tt.absent {
				if strings.Contains(got, a) {
					t.Errorf("output contains %q:\n%s", a, got)
				}
			}
		})
	}
}
