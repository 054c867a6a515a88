package base64_test

import (
	"errors"
	"fmt"

	"github.com/hisamafahri/lagon/base64"
)

func ExampleDecodeString() {
	b, err := base64.DecodeString("SGVs bG8\n")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%s\n", b)
	// Output: Hello
}

func ExampleDecodeString_error() {
	_, err := base64.DecodeString("SGVsbG8!")
	var ice *base64.InvalidCharacterError
	if errors.As(err, &ice) {
		fmt.Println(ice.Name(), ice.Offset)
	}
	fmt.Println(err)
	// Output:
	// InvalidCharacterError 7
	// base64: illegal character '!' at offset 7
}

func ExampleEncodeToString() {
	fmt.Println(base64.EncodeToString([]byte("Hello World")))
	// Output: SGVsbG8gV29ybGQ=
}

func ExampleEncoding_Strict() {
	_, err := base64.StdEncoding.DecodeString("SGk")
	fmt.Println(err)
	_, err = base64.StdEncoding.Strict().DecodeString("SGl")
	fmt.Println(err)
	// Output:
	// <nil>
	// base64: illegal character 'l' at offset 2
}
