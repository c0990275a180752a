package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"deckforge/cmd"
	"deckforge/core"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists. Missing files are fine; API tokens
	// can come from the environment directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: could not load .env file: %v\n", err)
	}

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, context.Canceled) {
			os.Exit(core.ExitCodeSIGINT)
		}
		os.Exit(core.ExitCodeError)
	}
}
