package main

import (
	"github.com/byanarant-ctrl/tgmoney/cmd"

	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for TGMONEY_INIT_DATA and TGMONEY_API_BASE.
	_ = godotenv.Load()

	cmd.Execute()
}
