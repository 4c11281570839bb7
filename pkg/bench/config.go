package bench

import (
	"encoding/json"
	"strings"
)

type Config struct {
	Games   int
	Workers int
	// Randomly decide who moves first in every game, otherwise player 1 always starts
	SwapSeats bool
	Seed      uint64
}

func (c Config) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(c)
	return builder.String()
}

const (
	DefaultGames   int = 100
	DefaultWorkers int = 1
)

func DefaultConfig() *Config {
	return &Config{
		Games:     DefaultGames,
		Workers:   DefaultWorkers,
		SwapSeats: false,
	}
}

// Set the number of games to play in total
func (c *Config) SetGames(games int) *Config {
	c.Games = max(games, 0)
	return c
}

// Set the number of games played simultaneously, each on its own position clone
func (c *Config) SetWorkers(workers int) *Config {
	c.Workers = max(workers, 1)
	return c
}

func (c *Config) SetSwapSeats(swap bool) *Config {
	c.SwapSeats = swap
	return c
}

// Seed of the seat assignment, worker i uses seed+i
func (c *Config) SetSeed(seed uint64) *Config {
	c.Seed = seed
	return c
}
