package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// loadDotEnv pulls CHISOM_CONFIG and CHISOM_LOG_LEVEL overrides from a .env
// in the working directory. A missing file is fine, and real environment
// variables are never overridden.
func loadDotEnv() {
	_ = godotenv.Load()
}

func main() {
	loadDotEnv()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
