package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/iamasit07/connect-four/internal/domain"
)

// Zero values for the board and rounds mean the player is asked at startup.
type Config struct {
	Rows    int `env:"CONNECTFOUR_ROWS"`
	Columns int `env:"CONNECTFOUR_COLUMNS"`
	Rounds  int `env:"CONNECTFOUR_ROUNDS"`

	FirstPlayer  string `env:"CONNECTFOUR_FIRST_PLAYER"`
	SecondPlayer string `env:"CONNECTFOUR_SECOND_PLAYER"`

	Language string `env:"CONNECTFOUR_LANG" envDefault:"en"`
	Debug    bool   `env:"CONNECTFOUR_DEBUG" envDefault:"false"`
}

// LoadConfig reads an optional .env file and then the environment.
// A missing env file is not an error. The result is not validated so that
// callers can layer flags on top first; call Validate afterwards.
func LoadConfig(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file: %w", err)
		}
		log.Println("[CONFIG] No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// BoardSet reports whether both board dimensions were configured.
func (c *Config) BoardSet() bool {
	return c.Rows != 0 && c.Columns != 0
}

// Validate rejects a board with only one dimension set.
func (c *Config) Validate() error {
	switch {
	case c.Rows == 0 && c.Columns == 0:
	case !c.BoardSet():
		return fmt.Errorf("board needs both rows and columns, got %dx%d: %w", c.Rows, c.Columns, domain.ErrInvalidDimension)
	case !domain.ValidDimensions(c.Rows, c.Columns):
		return fmt.Errorf("invalid board %dx%d: %w", c.Rows, c.Columns, domain.ErrInvalidDimension)
	}
	if c.Rounds < 0 {
		return fmt.Errorf("invalid rounds %d: %w", c.Rounds, domain.ErrInvalidRoundCount)
	}
	return nil
}
