package bookforge

import (
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestCompose - placeholder substitution
// ---------------------------------------------------------------------------

func TestCompose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		title    string
		body     string
		want     []string
		absent   []string
		wantErr  error
	}{
		{
			name:     "both placeholders substituted",
			template: "<title>" + TitlePlaceholder + "</title><body>" + ContentPlaceholder + "</body>",
			title:    "My Book",
			body:     "<p>text</p>",
			want:     []string{"<title>My Book</title>", "<body><p>text</p></body>"},
			absent:   []string{TitlePlaceholder, ContentPlaceholder},
		},
		{
			name:     "every title occurrence replaced",
			template: TitlePlaceholder + "|" + TitlePlaceholder + "|" + ContentPlaceholder,
			title:    "T",
			body:     "B",
			want:     []string{"T|T|B"},
			absent:   []string{TitlePlaceholder},
		},
		{
			name:     "missing content placeholder fails",
			template: "<html>" + TitlePlaceholder + "</html>",
			title:    "T",
			body:     "B",
			wantErr:  ErrComposition,
		},
		{
			name:     "title containing the placeholder text does not mask the check",
			template: "<html>no content token here</html>",
			title:    ContentPlaceholder,
			body:     "B",
			wantErr:  ErrComposition,
		},
		{
			name:     "template without title placeholder still composes",
			template: "<body>" + ContentPlaceholder + "</body>",
			title:    "ignored",
			body:     "<p>x</p>",
			want:     []string{"<body><p>x</p></body>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := placeholderComposer{}.Compose(tt.template, tt.title, tt.body)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Compose() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Compose() error = %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("result missing %q: %s", w, got)
				}
			}
			for _, a := range tt.absent {
				if strings.Contains(got, a) {
					t.Errorf("result still contains %q: %s", a, got)
				}
			}
		})
	}
}
