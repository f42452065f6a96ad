package main

import (
	"github.com/joho/godotenv"

	"newsbrief/internal/cli"
)

func main() {
	// Credentials (Guardian key, SMTP password) live in .env during
	// development; missing file is fine.
	_ = godotenv.Load()

	cli.Execute()
}
