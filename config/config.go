package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"othello/game"
	"othello/meta"

	"github.com/adrg/xdg"
)

var (
	cfgFile = "othello/config.json"
)

var (
	ErrInvalidSize     = errors.New("invalid board size")
	ErrInvalidSymbol   = errors.New("invalid player symbol")
	ErrInvalidSearch   = errors.New("invalid search settings")
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// Config holds the defaults the command line starts from.
type Config struct {
	Rows           int    `json:"rows"`
	Cols           int    `json:"cols"`
	PlayerOne      string `json:"player_one"`
	PlayerTwo      string `json:"player_two"`
	Depth          int    `json:"depth"`
	Goroutines     int    `json:"goroutines"`
	Eval           string `json:"eval"`
	Games          int    `json:"games"`
	Pass           bool   `json:"pass"`
	LogLevel       string `json:"log_level"`
	ExperimentsDir string `json:"experiments_dir"`
}

var DefaultConfig = Config{
	Rows:           meta.ROWS,
	Cols:           meta.COLS,
	PlayerOne:      string(meta.PLAYER_ONE),
	PlayerTwo:      string(meta.PLAYER_TWO),
	Depth:          meta.DEPTH,
	Goroutines:     meta.GO_ROUTINES,
	Eval:           meta.EVAL,
	Games:          meta.GAMES,
	LogLevel:       "info",
	ExperimentsDir: meta.EXPERIMENTS_DIR,
}

// Load reads the config file from the XDG config directories over DefaultConfig. A missing
// file is not an error.
func Load() (*Config, error) {
	path, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		config := DefaultConfig
		return &config, nil
	}
	return LoadFile(path)
}

func LoadFile(path string) (*Config, error) {
	config := DefaultConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err = json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err = config.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return &config, nil
}

// Save writes c to the user's XDG config directory and returns the path.
func (c *Config) Save() (string, error) {
	path, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return "", fmt.Errorf("failed to locate config file: %w", err)
	}
	return path, c.SaveFile(path)
}

func (c *Config) SaveFile(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err = os.WriteFile(path, data, 0664); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Rows < 2 || c.Cols < 2 {
		return fmt.Errorf("%w: %dx%d, need at least 2x2", ErrInvalidSize, c.Rows, c.Cols)
	}

	one, err := symbol(c.PlayerOne)
	if err != nil {
		return err
	}
	two, err := symbol(c.PlayerTwo)
	if err != nil {
		return err
	}
	if one == two {
		return fmt.Errorf("%w: both players use %q", ErrInvalidSymbol, one)
	}

	if c.Depth < 0 {
		return fmt.Errorf("%w: depth %d", ErrInvalidSearch, c.Depth)
	}
	if c.Goroutines < 1 {
		return fmt.Errorf("%w: %d goroutines", ErrInvalidSearch, c.Goroutines)
	}
	if _, ok := game.Evaluations[c.Eval]; !ok {
		return fmt.Errorf("%w: unknown evaluation %q", ErrInvalidSearch, c.Eval)
	}
	if c.Games < 1 {
		return fmt.Errorf("%w: %d tournament games", ErrInvalidSearch, c.Games)
	}

	if _, err = ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Symbols returns the two player symbols. The config must be valid.
func (c *Config) Symbols() (rune, rune) {
	one, _ := utf8.DecodeRuneInString(c.PlayerOne)
	two, _ := utf8.DecodeRuneInString(c.PlayerTwo)
	return one, two
}

// symbol accepts exactly one printable character that cannot be mistaken for an empty cell.
func symbol(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %q must be a single character", ErrInvalidSymbol, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if !unicode.IsPrint(r) || unicode.IsSpace(r) || r == game.Placeholder {
		return 0, fmt.Errorf("%w: %q cannot be drawn on the board", ErrInvalidSymbol, s)
	}
	if strings.ContainsRune("0123456789", r) {
		return 0, fmt.Errorf("%w: %q would read as a coordinate", ErrInvalidSymbol, s)
	}
	return r, nil
}
