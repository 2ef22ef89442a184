package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	// The error is ignored: most runs rely on the real environment
	_ = godotenv.Load()

	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
