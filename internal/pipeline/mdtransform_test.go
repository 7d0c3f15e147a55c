package pipeline

import (
	"context"
	"reflect"
	"testing"
)

func TestPreprocessMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		wantBody string
		wantMeta FrontMatter
	}{
		{
			name:     "CRLF normalized",
			content:  "# A\r\ntext\rmore\r\n",
			wantBody: "# A\ntext\nmore\n",
		},
		{
			name:     "yaml front matter stripped",
			content:  "---\ntitle: Hello\ntags: [a, b]\n---\n\n# Body\n",
			wantBody: "# Body\n",
			wantMeta: FrontMatter{Title: "Hello", Tags: []string{"a", "b"}},
		},
		{
			name:     "toml front matter stripped",
			content:  "+++\ntitle = \"Hi\"\n+++\n# Body\n",
			wantBody: "# Body\n",
			wantMeta: FrontMatter{Title: "Hi"},
		},
		{
			name:     "leading rule without closing is content",
			content:  "---\n\n# Title\n",
			wantBody: "---\n\n# Title\n",
		},
		{
			name:     "no front matter",
			content:  "# Title\n---\n",
			wantBody: "# Title\n---\n",
		},
	}

	p := &CommonMarkPreprocessor{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			body, meta := p.PreprocessMarkdown(context.Background(), tt.content)
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
			if !reflect.DeepEqual(meta, tt.wantMeta) {
				t.Errorf("meta = %+v, want %+v", meta, tt.wantMeta)
			}
		})
	}
}

func TestPreprocessMarkdown_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	content := "---\ntitle: x\n---\r\n"
	body, meta := (&CommonMarkPreprocessor{}).PreprocessMarkdown(ctx, content)
	if body != content || meta.Title != "" {
		t.Errorf("cancelled preprocess changed content: %q %+v", body, meta)
	}
}
