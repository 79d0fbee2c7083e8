package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	cli "github.com/voici5986/Antigravity-Manager/cmd/antigravity"
	"github.com/voici5986/Antigravity-Manager/internal/config"
)

//go:embed etc/antigravity.yaml
var embeddedConfig []byte

func main() {
	// Load .env file if present (ignore error if not found)
	_ = godotenv.Load()

	c, err := config.LoadFromBytes(embeddedConfig)
	if err != nil {
		fmt.Printf("Failed to load embedded config: %v\n", err)
		os.Exit(1)
	}

	rootCmd := cli.SetupRootCmd(c)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
