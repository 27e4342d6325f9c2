package param_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-mimeparam/param"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	s := param.Format(map[string]string{
		"a": "b",
		"c": "d e",
		"f": "naïve",
		"g": "=?x?q?y?=",
		"h": "",
		"i": `say "hi"`,
	})
	assert.Equal(t, `a=b; c="d e"; f*=utf-8''na%C3%AFve; g*=utf-8''%3D%3Fx%3Fq%3Fy%3F%3D; h=""; i="say \"hi\""`, s)

	assert.Equal(t, "", param.Format(nil))
}

func TestFormat_RoundTrip(t *testing.T) {
	t.Parallel()

	maps := []map[string]string{
		{},
		{"charset": "utf-8"},
		{"boundary": "----=_Part_0_1234.5678", "type": "text/html"},
		{"filename": "  padded  ", "x": "a;b", "y": `back\slash`},
		{"percent": "50%", "apostrophe": "isn't", "star": "*"},
		{"title": "Εν αρχη ητο ο Λογος", "lines": "one\ntwo\tthree"},
		{"word": "=?utf-8?q?not_a_word?=", "empty": ""},
	}

	for _, m := range maps {
		s := param.Format(m)
		back, err := param.ParseParameters(s)
		require.NoError(t, err, s)
		assert.Equal(t, m, back, s)
	}
}
