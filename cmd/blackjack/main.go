package main

import (
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/blackjack-cli/internal/config"
	"github.com/lox/blackjack-cli/internal/game"
	"github.com/lox/blackjack-cli/internal/randutil"
	"github.com/lox/blackjack-cli/internal/save"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Config   string           `short:"c" default:"blackjack.hcl" help:"Table rules config file (HCL)"`
	Decks    *int             `help:"Number of decks in the shoe"`
	MinBet   *int             `help:"Minimum bet"`
	MaxBet   *int             `help:"Maximum bet"`
	Bankroll *int             `help:"Starting bankroll"`
	Name     *string          `help:"Player name"`
	SaveDir  *string          `help:"Directory for save files"`
	Load     string           `help:"Restore name and bankroll from a save file ('latest' for the newest save)"`
	Seed     *int64           `help:"Deterministic RNG seed (optional)"`
	Debug    bool             `help:"Enable debug logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Single-player blackjack at a six-deck table"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)
	ctx.FatalIfErrorf(cli.Run())
}

func (c *CLI) Run() error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	if c.Debug {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}

	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	c.applyOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	var seed int64
	if c.Seed != nil {
		seed = *c.Seed
		logger.Debug("using deterministic seed", "seed", seed)
	} else {
		seed = time.Now().UnixNano()
	}
	rng := randutil.New(seed)

	store, err := save.NewStore(cfg.Table.SaveDir, nil)
	if err != nil {
		return err
	}

	name := cfg.Table.PlayerName
	bankroll := cfg.Table.Bankroll
	if c.Load != "" {
		record, err := c.loadRecord(store)
		if err != nil {
			return err
		}
		name = record.PlayerName
		bankroll = record.Bankroll
		logger.Debug("restored save", "player", name, "bankroll", bankroll)
	}

	engine := game.NewEngine(rng,
		game.WithDecks(cfg.Table.NumDecks),
		game.WithBetLimits(cfg.Table.MinBet, cfg.Table.MaxBet),
		game.WithBankroll(bankroll),
		game.WithPlayerName(name),
	)

	session := &session{
		engine: engine,
		store:  store,
		logger: logger,
		in:     os.Stdin,
		out:    os.Stdout,
	}
	return session.play()
}

func (c *CLI) loadRecord(store *save.Store) (save.Record, error) {
	if c.Load == "latest" {
		return store.Latest()
	}
	return save.Load(c.Load)
}

// applyOverrides lets command-line flags win over the config file
func (c *CLI) applyOverrides(cfg *config.Config) {
	if c.Decks != nil {
		cfg.Table.NumDecks = *c.Decks
	}
	if c.MinBet != nil {
		cfg.Table.MinBet = *c.MinBet
	}
	if c.MaxBet != nil {
		cfg.Table.MaxBet = *c.MaxBet
	}
	if c.Bankroll != nil {
		cfg.Table.Bankroll = *c.Bankroll
	}
	if c.Name != nil {
		cfg.Table.PlayerName = *c.Name
	}
	if c.SaveDir != nil {
		cfg.Table.SaveDir = *c.SaveDir
	}
}
