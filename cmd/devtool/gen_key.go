package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/osse101/TornBot_Go/internal/config"
	"github.com/osse101/TornBot_Go/internal/secrets"
)

// GenKeyCommand creates the secret-box key file used to encrypt stored API keys
type GenKeyCommand struct{}

func (c *GenKeyCommand) Name() string {
	return "gen-key"
}

func (c *GenKeyCommand) Description() string {
	return "Create the API key encryption key file if it does not exist"
}

func (c *GenKeyCommand) Run(args []string) error {
	fs := flag.NewFlagSet("gen-key", flag.ContinueOnError)
	path := fs.String("file", config.DefaultEncryptionKeyFile, "key file path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	_, statErr := os.Stat(*path)
	existed := statErr == nil

	if _, err := secrets.LoadOrCreateKey("", *path); err != nil {
		return err
	}

	if existed {
		PrintInfo("Key file %s already exists, left untouched", *path)
		return nil
	}
	PrintSuccess("Created key file %s", *path)
	fmt.Println("Back this file up: stored API keys cannot be decrypted without it.")
	return nil
}
