// cmd/rnamoip-fold/main.go
package main

import (
	"bytes"
	"fmt"
	"os"

	"rnamoip/internal/app"
)

func main() {
	var out, errBuf bytes.Buffer
	code := app.RunCLI(os.Args[1:], &out, &errBuf)

	if out.Len() > 0 {
		fmt.Print(out.String())
	}
	if errBuf.Len() > 0 {
		fmt.Fprint(os.Stderr, errBuf.String())
	}
	os.Exit(code)
}
