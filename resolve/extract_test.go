package resolve_test

import (
	"testing"

	"github.com/XPTOOLS/Tiktokdownloaderxp/domain"
	"github.com/XPTOOLS/Tiktokdownloaderxp/resolve"
	"github.com/stretchr/testify/require"
)

func TestExtractMediaUrl(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		body     string
		expected string
	}{
		{
			name:     "whole response is a url string",
			body:     `"http://cdn.example.com/a.mp4"`,
			expected: "http://cdn.example.com/a.mp4",
		},
		{
			name:     "videoUrl field",
			body:     `{"videoUrl":"http://x/a.mp4"}`,
			expected: "http://x/a.mp4",
		},
		{
			name:     "url field",
			body:     `{"url":"https://x/b.mp4"}`,
			expected: "https://x/b.mp4",
		},
		{
			name:     "download_url field",
			body:     `{"download_url":"https://x/c.mp4"}`,
			expected: "https://x/c.mp4",
		},
		{
			name:     "nested data.videoUrl",
			body:     `{"data":{"videoUrl":"https://x/d.mp4"}}`,
			expected: "https://x/d.mp4",
		},
		{
			name:     "schema-relative videoUrl gets https prepended",
			body:     `{"videoUrl":"//x/a.mp4"}`,
			expected: "https://x/a.mp4",
		},
		{
			name:     "videoUrl wins over later fields",
			body:     `{"other":"https://x/no.mp4","videoUrl":"https://x/yes.mp4"}`,
			expected: "https://x/yes.mp4",
		},
		{
			name:     "fallback scans fields in document order",
			body:     `{"id":123,"thumbnail":"https://x/t.jpg","media":"https://x/v.mp4"}`,
			expected: "https://x/t.jpg",
		},
		{
			name:     "fallback skips non-http strings",
			body:     `{"title":"my video","link":"https://x/v.mp4"}`,
			expected: "https://x/v.mp4",
		},
		{
			name:     "array response takes the first url element",
			body:     `["http://x/a.mp4"]`,
			expected: "http://x/a.mp4",
		},
		{
			name:     "array response skips non-url elements",
			body:     `[123,"my video","https://x/b.mp4"]`,
			expected: "https://x/b.mp4",
		},
	}
	for _, test := range cases {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			mediaUrl, err := resolve.ExtractMediaUrl([]byte(test.body))
			require.NoError(t, err)
			require.Equal(t, test.expected, mediaUrl)
		})
	}
}

func TestExtractMediaUrlErrors(t *testing.T) {
	t.Parallel()

	t.Run("bare string without http", func(t *testing.T) {
		t.Parallel()
		_, err := resolve.ExtractMediaUrl([]byte(`"//x/a.mp4"`))
		require.ErrorIs(t, err, domain.ErrNoMediaUrl)
	})

	t.Run("object without any url", func(t *testing.T) {
		t.Parallel()
		_, err := resolve.ExtractMediaUrl([]byte(`{"title":"my video","views":10}`))
		require.ErrorIs(t, err, domain.ErrNoMediaUrl)
	})

	t.Run("array without any url", func(t *testing.T) {
		t.Parallel()
		_, err := resolve.ExtractMediaUrl([]byte(`["my video",123]`))
		require.Error(t, err)
	})

	t.Run("not json", func(t *testing.T) {
		t.Parallel()
		_, err := resolve.ExtractMediaUrl([]byte(`<html>error</html>`))
		require.Error(t, err)
	})
}
