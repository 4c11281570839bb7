package main

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type config struct {
	game      string
	p1        string
	p2        string
	rounds    int
	workers   int
	swapSeats bool
	seed      uint64
	words     string
	coins     []int
	pv        bool
	chart     string
	logLevel  string
}

// Environment (optionally loaded from .env) gives the defaults, flags override them
func loadConfig(args []string) (config, error) {
	_ = godotenv.Load()

	cfg := config{
		game:     "ttt",
		p1:       "minimax",
		p2:       "random",
		rounds:   getEnvInt("ROUNDS", 3),
		workers:  1,
		seed:     uint64(getEnvInt("SEED", 0)),
		words:    getEnv("GHOST_WORDS", ""),
		coins:    []int{10, 20, 15},
		chart:    getEnv("CHART_FILE", ""),
		logLevel: getEnv("LOG_LEVEL", "info"),
	}

	var coins string
	fs := flag.NewFlagSet("gamesearch", flag.ContinueOnError)
	fs.StringVar(&cfg.game, "game", cfg.game, "game to play: ttt, coins or ghost")
	fs.StringVar(&cfg.p1, "p1", cfg.p1, "player 1: minimax, random, easy or human")
	fs.StringVar(&cfg.p2, "p2", cfg.p2, "player 2: minimax, random, easy or human")
	fs.IntVar(&cfg.rounds, "rounds", cfg.rounds, "number of games to play")
	fs.IntVar(&cfg.workers, "workers", cfg.workers, "games played at the same time")
	fs.BoolVar(&cfg.swapSeats, "swap", cfg.swapSeats, "randomly choose who moves first in every game")
	fs.Uint64Var(&cfg.seed, "seed", cfg.seed, "seed for the seat assignment")
	fs.StringVar(&cfg.words, "words", cfg.words, "ghost word list, one word per line (embedded list if empty)")
	fs.StringVar(&coins, "coins", "", "comma separated coin values, e.g. 10,20,15")
	fs.BoolVar(&cfg.pv, "pv", cfg.pv, "print the optimal line from the starting position")
	fs.StringVar(&cfg.chart, "chart", cfg.chart, "write an html chart of the results to this file")
	fs.StringVar(&cfg.logLevel, "log", cfg.logLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if coins != "" {
		values, err := parseCoins(coins)
		if err != nil {
			return cfg, err
		}
		cfg.coins = values
	}

	// Can't share the terminal between simultaneous games
	if cfg.p1 == "human" || cfg.p2 == "human" {
		cfg.workers = 1
	}
	return cfg, nil
}

func parseCoins(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	values := make([]int, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(k)); err == nil {
		return v
	}
	return def
}
