// Package config loads table rules from an optional HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete game configuration
type Config struct {
	Table TableSettings `hcl:"table,block"`
}

// TableSettings contains the table rules and session defaults
type TableSettings struct {
	NumDecks   int    `hcl:"num_decks,optional"`
	MinBet     int    `hcl:"min_bet,optional"`
	MaxBet     int    `hcl:"max_bet,optional"`
	Bankroll   int    `hcl:"bankroll,optional"`
	PlayerName string `hcl:"player_name,optional"`
	SaveDir    string `hcl:"save_dir,optional"`
}

// Default returns the standard six-deck table
func Default() *Config {
	return &Config{
		Table: TableSettings{
			NumDecks:   6,
			MinBet:     10,
			MaxBet:     500,
			Bankroll:   1000,
			PlayerName: "Player",
			SaveDir:    "saves",
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults; zero-valued fields in a present file are backfilled with
// them too.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse config file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("decode config file: %s", diags.Error())
	}

	defaults := Default()
	if cfg.Table.NumDecks == 0 {
		cfg.Table.NumDecks = defaults.Table.NumDecks
	}
	if cfg.Table.MinBet == 0 {
		cfg.Table.MinBet = defaults.Table.MinBet
	}
	if cfg.Table.MaxBet == 0 {
		cfg.Table.MaxBet = defaults.Table.MaxBet
	}
	if cfg.Table.Bankroll == 0 {
		cfg.Table.Bankroll = defaults.Table.Bankroll
	}
	if cfg.Table.PlayerName == "" {
		cfg.Table.PlayerName = defaults.Table.PlayerName
	}
	if cfg.Table.SaveDir == "" {
		cfg.Table.SaveDir = defaults.Table.SaveDir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the table rules are playable
func (c *Config) Validate() error {
	if c.Table.NumDecks < 1 {
		return fmt.Errorf("num_decks must be at least 1, got %d", c.Table.NumDecks)
	}
	if c.Table.MinBet < 1 {
		return fmt.Errorf("min_bet must be at least 1, got %d", c.Table.MinBet)
	}
	if c.Table.MaxBet < c.Table.MinBet {
		return fmt.Errorf("max_bet %d is below min_bet %d", c.Table.MaxBet, c.Table.MinBet)
	}
	if c.Table.Bankroll < c.Table.MinBet {
		return fmt.Errorf("bankroll %d cannot cover the minimum bet %d", c.Table.Bankroll, c.Table.MinBet)
	}
	return nil
}
