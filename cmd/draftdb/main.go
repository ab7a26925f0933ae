package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/riskibarqy/draft-prospects/internal/cli"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(cli.ExitGeneralError)
		}
	}()

	os.Exit(cli.Execute(context.Background()))
}
