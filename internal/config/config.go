package config

import (
	"blackjack/internal/util"
	"blackjack/pkg/playable/blackjack"
	"errors"
	"fmt"
	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"os"
	"path/filepath"
	"strings"
)

// DefaultConfigFile is read when neither a path nor BJ_CONFIG_FILE is given
const DefaultConfigFile = "blackjack.yaml"

// ErrUnknownFormat is returned when the config file extension isn't yaml or toml
var ErrUnknownFormat = errors.New("unknown config file format")

// Config provides configuration for the blackjack table
type Config struct {
	PlayerName string `yaml:"playerName" toml:"player_name" envconfig:"player_name"`
	Seed       int64  `yaml:"seed" toml:"seed" envconfig:"seed"`
	Color      bool   `yaml:"color" toml:"color" envconfig:"color"`
	Game       struct {
		MinBet          int             `yaml:"minBet" toml:"min_bet" envconfig:"min_bet"`
		MaxBet          int             `yaml:"maxBet" toml:"max_bet" envconfig:"max_bet"`
		StartingCash    int             `yaml:"startingCash" toml:"starting_cash" envconfig:"starting_cash"`
		NumDecks        int             `yaml:"numDecks" toml:"num_decks" envconfig:"num_decks"`
		BlackjackPayout blackjack.Ratio `yaml:"blackjackPayout" toml:"blackjack_payout" envconfig:"blackjack_payout"`
		InsurancePayout blackjack.Ratio `yaml:"insurancePayout" toml:"insurance_payout" envconfig:"insurance_payout"`
	} `yaml:"game" toml:"game"`
	Log struct {
		Level  string `yaml:"level" toml:"level"`
		Format string `yaml:"format" toml:"format"`
	} `yaml:"log" toml:"log"`
}

// DefaultConfig returns the configuration used when nothing overrides it
func DefaultConfig() Config {
	opts := blackjack.DefaultOptions()

	var cfg Config
	cfg.Color = true
	cfg.Game.MinBet = opts.MinBet
	cfg.Game.MaxBet = opts.MaxBet
	cfg.Game.StartingCash = opts.StartingCash
	cfg.Game.NumDecks = opts.NumDecks
	cfg.Game.BlackjackPayout = opts.BlackjackPayout
	cfg.Game.InsurancePayout = opts.InsurancePayout
	cfg.Log.Level = "warn"
	cfg.Log.Format = "text"

	return cfg
}

// Load will load the configuration
// An empty path falls back to BJ_CONFIG_FILE and then DefaultConfigFile. Only a
// missing default file is ignored. Values from a .env file and the environment
// (prefix BJ) override the file.
func Load(path string) (Config, error) {
	explicit := path != "" || os.Getenv("BJ_CONFIG_FILE") != ""
	if path == "" {
		path = util.Getenv("BJ_CONFIG_FILE", DefaultConfigFile)
	}

	cfg := DefaultConfig()
	if err := decodeFile(path, &cfg); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return Config{}, err
		}
	}

	if err := loadDotEnv(util.Getenv("BJ_DOTENV_FILE", ".env")); err != nil {
		return Config{}, err
	}

	if err := envconfig.Process("bj", &cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(file).Decode(cfg); err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.NewDecoder(file).Decode(cfg); err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
	default:
		return fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}

	return nil
}

// loadDotEnv exports the file's variables without overriding ones already set
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}

	return nil
}

// GameOptions converts the configuration into options for a new game
func (c Config) GameOptions() blackjack.Options {
	name := c.PlayerName
	if name == "" {
		name = util.GetRandomName()
	}

	return blackjack.Options{
		MinBet:          c.Game.MinBet,
		MaxBet:          c.Game.MaxBet,
		StartingCash:    c.Game.StartingCash,
		NumDecks:        c.Game.NumDecks,
		BlackjackPayout: c.Game.BlackjackPayout,
		InsurancePayout: c.Game.InsurancePayout,
		PlayerName:      name,
		Seed:            c.Seed,
	}
}
