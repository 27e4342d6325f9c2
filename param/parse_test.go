package param_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-mimeparam/param"
)

func TestParseParameters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want map[string]string
	}{
		{
			name: "simple parameters",
			in:   `param1=value1; param2="value2"; param3="value 3"`,
			want: map[string]string{
				"param1": "value1",
				"param2": "value2",
				"param3": "value 3",
			},
		},
		{
			name: "continuations",
			in: `access-type=URL;
			URL*0="ftp://";
			URL*1="cs.utk.edu/pub/moore/bulk-mailer/bulk-mailer.tar"`,
			want: map[string]string{
				"access-type": "URL",
				"URL":         "ftp://cs.utk.edu/pub/moore/bulk-mailer/bulk-mailer.tar",
			},
		},
		{
			name: "charset and language",
			in:   `param*=us-ascii'en-us'Encoded%20value`,
			want: map[string]string{"param": "Encoded value"},
		},
		{
			name: "mixed charset and continuations",
			in: `title*0*=us-ascii'en'This%20is%20even%20more%20;
			title*1*=%2A%2A%2Afun%2A%2A%2A%20;
			title*2="isn't it!"`,
			want: map[string]string{"title": "This is even more ***fun*** isn't it!"},
		},
		{
			name: "continuations in mixed order",
			in: `title*1*=%2A%2A%2Afun%2A%2A%2A%20;
			title*0*=us-ascii'en'This%20is%20even%20more%20;
			title*2="isn't it!"`,
			want: map[string]string{"title": "This is even more ***fun*** isn't it!"},
		},
		{
			name: "continuation without leading section is ignored",
			in: `access-type=URL;
			URL*1="cs.utk.edu/pub/moore/bulk-mailer/bulk-mailer.tar"`,
			want: map[string]string{"access-type": "URL"},
		},
		{
			name: "section gap stops continuation",
			in: `continuation*0=part0;
			continuation*1=part1;
			continuation*3="not recognized as continuation"`,
			want: map[string]string{"continuation": "part0part1"},
		},
		{
			name: "regular parameter before continuation wins",
			in: `param="regular value";
			param*0="continuated";
			param*1=" value"`,
			want: map[string]string{"param": "regular value"},
		},
		{
			name: "regular parameter after continuation wins",
			in: `param*0="continuated";
			param*1=" value";
			param="regular value"`,
			want: map[string]string{"param": "regular value"},
		},
		{
			name: "extended parameter wins over continuation",
			in:   `p*0=a; p*1=b; p*=utf-8''c`,
			want: map[string]string{"p": "c"},
		},
		{
			name: "recoverable encoded word",
			in:   `param="=?UTF-8?Q?=C3=A1z=C3=81Z09-=5F?="`,
			want: map[string]string{"param": "ázÁZ09-_"},
		},
		{
			name: "undecodable encoded word is kept",
			in:   `param="=?x-bogus?Q?abc?= and =?UTF-8?B?w6E=?="`,
			want: map[string]string{"param": "=?x-bogus?Q?abc?= and á"},
		},
		{
			name: "encoded words in a continuation section",
			in:   `n*0="=?UTF-8?Q?caf=C3=A9?="; n*1=".txt"`,
			want: map[string]string{"n": "café.txt"},
		},
		{
			name: "last of duplicate names wins",
			in:   `p=a; p*=utf-8''b; q*=utf-8''c; q=d; r*0=e; r*0=f`,
			want: map[string]string{"p": "b", "q": "d", "r": "f"},
		},
		{
			name: "non-extended first section",
			in:   `t*0=abc; t*1*=%41%42`,
			want: map[string]string{"t": "abcAB"},
		},
		{
			name: "unterminated encoded word does not hide the next",
			in:   `p="=?UTF-8?Q?abc =?UTF-8?Q?caf=C3=A9?="`,
			want: map[string]string{"p": "=?UTF-8?Q?abc café"},
		},
		{
			name: "quoted extended sections",
			in:   `t*0*="utf-8''a"; t*1*="%62"; t*2="c"`,
			want: map[string]string{"t": "abc"},
		},
		{
			name: "quoted extended value",
			in:   `n*="utf-8''a%20b"`,
			want: map[string]string{"n": "a b"},
		},
		{
			name: "broken percent escapes are literal",
			in:   `n*=utf-8''100%+%4`,
			want: map[string]string{"n": "100%+%4"},
		},
		{
			name: "names keep their case",
			in:   `Charset=UTF-8; charset=latin1`,
			want: map[string]string{"Charset": "UTF-8", "charset": "latin1"},
		},
		{
			name: "escaped quotes",
			in:   `p="say \"hi\" \\o/"`,
			want: map[string]string{"p": `say "hi" \o/`},
		},
		{
			name: "empty",
			in:   "",
			want: map[string]string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ps, err := param.ParseParameters(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ps)
		})
	}
}

func TestParseParameters_Malformed(t *testing.T) {
	t.Parallel()

	for name, in := range map[string]string{
		"missing closing quote": `param1=value1;param2="value2;param3=value3`,
		"missing opening quote": `param1=value1;param2=value2";param3=value3`,
		"quote in param name":   `param1=value1;pa"ram2=value2`,
	} {
		ps, err := param.ParseParameters(in)
		assert.Nil(t, ps, name)
		assert.ErrorIs(t, err, param.ErrMalformedInput, name)
	}
}

func TestParseParameters_MalformedExtended(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       string
		fullName string
	}{
		{`param*=no-separators`, "param*"},
		{`param*=us-ascii'only-one`, "param*"},
		{`t*0*=nope; t*1=x`, "t*0*"},
	}

	for _, tt := range tests {
		ps, err := param.ParseParameters(tt.in)
		assert.Nil(t, ps)
		require.Error(t, err)
		assert.True(t, errors.Is(err, param.ErrMalformedExtendedValue))

		var mev *param.MalformedExtendedValueError
		require.True(t, errors.As(err, &mev))
		assert.Equal(t, tt.fullName, mev.Name)
	}
}

func TestParseParameters_Concurrent(t *testing.T) {
	t.Parallel()

	const in = `title*1*=%2A%2A%2Afun%2A%2A%2A%20; title*0*=us-ascii'en'This%20is%20even%20more%20; title*2="isn't it!"`

	var wg sync.WaitGroup
	results := make([]map[string]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = param.ParseParameters(in)
		}(i)
	}
	wg.Wait()

	for _, ps := range results {
		assert.Equal(t, map[string]string{"title": "This is even more ***fun*** isn't it!"}, ps)
	}
}
