package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/DanielWebDeveloper25/e-commerce/internal/cmd"
)

func main() {
	// A .env file may carry SHOPZONE_* overrides; it is optional.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
