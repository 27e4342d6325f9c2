package param_test

import (
	"fmt"

	"github.com/zostay/go-mimeparam/param"
)

func ExampleParseParameters() {
	ps, err := param.ParseParameters(`title*0*=us-ascii'en'This%20is%20even%20more%20;
		title*1*=%2A%2A%2Afun%2A%2A%2A%20;
		title*2="isn't it!"`)
	if err != nil {
		panic(err)
	}

	fmt.Println(ps["title"])
	// Output: This is even more ***fun*** isn't it!
}

func ExampleParse() {
	ct, err := param.Parse(`text/plain; charset=utf-8; name="=?UTF-8?Q?caf=C3=A9?=.txt"`)
	if err != nil {
		panic(err)
	}

	fmt.Println(ct.Type())
	fmt.Println(ct.Charset())
	fmt.Println(ct.Name())
	// Output:
	// text
	// utf-8
	// café.txt
}

func ExampleFormat() {
	fmt.Println(param.Format(map[string]string{
		"filename": "résumé.pdf",
		"size":     "1024",
	}))
	// Output: filename*=utf-8''r%C3%A9sum%C3%A9.pdf; size=1024
}
