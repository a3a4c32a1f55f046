package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdown(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "paragraph",
			src:  "hello world",
			want: "<p>hello world</p>\n",
		},
		{
			name: "emphasis",
			src:  "hello *world*",
			want: "<p>hello <em>world</em></p>\n",
		},
		{
			name: "heading",
			src:  "# Title",
			want: "<h1>Title</h1>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Markdown(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTemplate(t *testing.T) {
	got, err := Template("Hello {{.Name}}!", map[string]any{"Name": "World"})
	require.NoError(t, err)
	assert.Equal(t, "Hello World!", got)
}

func TestTemplateMissingKey(t *testing.T) {
	_, err := Template("Hello {{.Name}}!", map[string]any{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to render template")
}

func TestTemplateParseError(t *testing.T) {
	_, err := Template("Hello {{.Name", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid template")
}
