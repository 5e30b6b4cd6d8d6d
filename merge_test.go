package bookforge

// Notes:
// - Heading order is asserted by extracting heading text in document order,
//   since ordering is the merger's core contract.
// - Page-break placement is asserted by counting markers and by checking the
//   relative position of markers around the last blocks.

import (
	"strings"
	"testing"
)

func section(name, content string) ManuscriptSection {
	return ManuscriptSection{ID: "s-" + name, Name: name, Content: content}
}

// headingOrder extracts heading text in document order, anchoring on the
// heading class attribute so page-break divs are not mistaken for headings.
func headingOrder(t *testing.T, body string) []string {
	t.Helper()
	const anchor = `-heading">`
	var names []string
	rest := body
	for {
		start := strings.Index(rest, anchor)
		if start == -1 {
			break
		}
		rest = rest[start+len(anchor):]
		end := strings.Index(rest, "</h")
		if end == -1 {
			break
		}
		names = append(names, rest[:end])
		rest = rest[end:]
	}
	return names
}

// ---------------------------------------------------------------------------
// TestMergeSections_Ordering - input order is preserved verbatim
// ---------------------------------------------------------------------------

func TestMergeSections_Ordering(t *testing.T) {
	t.Parallel()

	front := []ManuscriptSection{section("Dedication", "<p>d</p>"), section("Preface", "<p>p</p>")}
	chapters := []Chapter{
		{Name: "One", Content: "<p>1</p>", Parts: []Part{
			{Name: "One A", Content: "<p>1a</p>"},
			{Name: "One B", Content: "<p>1b</p>"},
		}},
		{Name: "Two", Content: "<p>2</p>"},
	}
	end := []ManuscriptSection{section("Glossary", "<p>g</p>"), section("Index", "<p>i</p>")}

	body := MergeSections(front, chapters, end)

	want := []string{"Dedication", "Preface", "One", "One A", "One B", "Two", "Glossary", "Index"}
	got := headingOrder(t, body)
	if len(got) != len(want) {
		t.Fatalf("heading count = %d, want %d (headings: %v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("heading[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

// ---------------------------------------------------------------------------
// TestMergeSections_PageBreaks - forced page-break placement rules
// ---------------------------------------------------------------------------

func TestMergeSections_PageBreaks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		front      []ManuscriptSection
		chapters   []Chapter
		end        []ManuscriptSection
		wantBreaks int
		wantTrail  bool // marker after the final content block
	}{
		{
			name:       "break after every front item when chapters follow",
			front:      []ManuscriptSection{section("A", "x"), section("B", "x")},
			chapters:   []Chapter{{Name: "One", Content: "x"}},
			wantBreaks: 2, // after A, after B; none after last chapter
			wantTrail:  false,
		},
		{
			name:       "no break after last chapter without end matter",
			chapters:   []Chapter{{Name: "One", Content: "x"}, {Name: "Two", Content: "x"}},
			wantBreaks: 1,
			wantTrail:  false,
		},
		{
			name:       "break after last chapter when end matter follows",
			chapters:   []Chapter{{Name: "One", Content: "x"}},
			end:        []ManuscriptSection{section("Notes", "x")},
			wantBreaks: 1,
			wantTrail:  false,
		},
		{
			name:       "no break after last end-matter item",
			end:        []ManuscriptSection{section("Notes", "x"), section("Index", "x")},
			wantBreaks: 1,
			wantTrail:  false,
		},
		{
			name:       "front matter alone gets no trailing break",
			front:      []ManuscriptSection{section("Preface", "x")},
			wantBreaks: 0,
			wantTrail:  false,
		},
		{
			name:       "all three collections",
			front:      []ManuscriptSection{section("Preface", "x")},
			chapters:   []Chapter{{Name: "One", Content: "x"}, {Name: "Two", Content: "x"}},
			end:        []ManuscriptSection{section("Notes", "x")},
			wantBreaks: 3, // after Preface, after One, after Two
			wantTrail:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			body := MergeSections(tt.front, tt.chapters, tt.end)

			if got := strings.Count(body, pageBreakMarker); got != tt.wantBreaks {
				t.Errorf("page-break count = %d, want %d\nbody: %s", got, tt.wantBreaks, body)
			}
			if got := strings.HasSuffix(body, pageBreakMarker); got != tt.wantTrail {
				t.Errorf("trailing page break = %v, want %v", got, tt.wantTrail)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestMergeSections_Placeholders - empty content handling
// ---------------------------------------------------------------------------

func TestMergeSections_Placeholders(t *testing.T) {
	t.Parallel()

	t.Run("empty section content renders placeholder", func(t *testing.T) {
		t.Parallel()
		body := MergeSections([]ManuscriptSection{section("Preface", "")}, nil, nil)
		if !strings.Contains(body, emptyContentPlaceholder) {
			t.Errorf("expected placeholder for empty front matter, got: %s", body)
		}
	})

	t.Run("whitespace-only part content renders placeholder", func(t *testing.T) {
		t.Parallel()
		chapters := []Chapter{{Name: "One", Content: "<p>x</p>", Parts: []Part{{Name: "A", Content: "  \n "}}}}
		body := MergeSections(nil, chapters, nil)
		if !strings.Contains(body, emptyContentPlaceholder) {
			t.Errorf("expected placeholder for empty part, got: %s", body)
		}
	})

	t.Run("empty chapter content emits nothing", func(t *testing.T) {
		t.Parallel()
		body := MergeSections(nil, []Chapter{{Name: "One", Content: ""}}, nil)
		if strings.Contains(body, emptyContentPlaceholder) {
			t.Errorf("chapter content must not get a placeholder, got: %s", body)
		}
	})

	t.Run("empty end matter renders placeholder", func(t *testing.T) {
		t.Parallel()
		body := MergeSections(nil, nil, []ManuscriptSection{section("Notes", "")})
		if !strings.Contains(body, emptyContentPlaceholder) {
			t.Errorf("expected placeholder for empty end matter, got: %s", body)
		}
	})
}

// ---------------------------------------------------------------------------
// TestMergeSections_HeadingEscaping - names are plain text, content is not
// ---------------------------------------------------------------------------

func TestMergeSections_HeadingEscaping(t *testing.T) {
	t.Parallel()

	body := MergeSections(nil, []Chapter{{Name: "Tips & <Tricks>", Content: "<p>kept <b>as-is</b></p>"}}, nil)

	if !strings.Contains(body, "Tips &amp; &lt;Tricks&gt;") {
		t.Errorf("chapter name not escaped: %s", body)
	}
	if !strings.Contains(body, "<p>kept <b>as-is</b></p>") {
		t.Errorf("chapter content must pass through unmodified: %s", body)
	}
}

// ---------------------------------------------------------------------------
// TestMergeSections_EndToEnd - the reference document
// ---------------------------------------------------------------------------

func TestMergeSections_EndToEnd(t *testing.T) {
	t.Parallel()

	body := MergeSections(
		[]ManuscriptSection{{ID: "f1", Name: "Preface", Content: "<p>Hi</p>"}},
		[]Chapter{{ID: "c1", Name: "Chapter One", Content: "<p>Body</p>", Parts: []Part{}}},
		nil,
	)

	prefaceIdx := strings.Index(body, "Preface")
	hiIdx := strings.Index(body, "<p>Hi</p>")
	breakIdx := strings.Index(body, pageBreakMarker)
	chapterIdx := strings.Index(body, "Chapter One")
	bodyIdx := strings.Index(body, "<p>Body</p>")

	for name, idx := range map[string]int{
		"Preface heading": prefaceIdx,
		"preface content": hiIdx,
		"page break":      breakIdx,
		"chapter heading": chapterIdx,
		"chapter content": bodyIdx,
	} {
		if idx == -1 {
			t.Fatalf("missing %s in: %s", name, body)
		}
	}

	if !(prefaceIdx < hiIdx && hiIdx < breakIdx && breakIdx < chapterIdx && chapterIdx < bodyIdx) {
		t.Errorf("blocks out of order: %s", body)
	}
	if strings.Count(body, pageBreakMarker) != 1 {
		t.Errorf("want exactly one page break, got %d", strings.Count(body, pageBreakMarker))
	}
	if strings.HasSuffix(body, pageBreakMarker) {
		t.Error("no page break expected after the last chapter")
	}
}
