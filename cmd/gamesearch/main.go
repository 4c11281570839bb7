package main

/*

Plays a series of games between two players, and prints the results.

	gamesearch -game ttt -p1 minimax -p2 random -rounds 3
	gamesearch -game coins -coins 10,20,15 -pv
	gamesearch -game ttt -p1 easy -p2 random -rounds 100 -workers 4 -chart results.html
	gamesearch -game ghost -words /usr/share/dict/words -p1 human -p2 minimax

Defaults can be set in the environment or a .env file:
LOG_LEVEL, ROUNDS, SEED, GHOST_WORDS, CHART_FILE.

*/

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/IlikeChooros/go-minimax/pkg/bench"
	"github.com/IlikeChooros/go-minimax/pkg/games/coins"
	"github.com/IlikeChooros/go-minimax/pkg/games/ghost"
	"github.com/IlikeChooros/go-minimax/pkg/games/ttt"
	"github.com/IlikeChooros/go-minimax/pkg/minimax"
	"github.com/IlikeChooros/go-minimax/pkg/words"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("invalid arguments")
	}

	if lvl, err := zerolog.ParseLevel(cfg.logLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	log.Info().Str("game", cfg.game).Str("p1", cfg.p1).Str("p2", cfg.p2).Int("rounds", cfg.rounds).Msg("starting")

	switch cfg.game {
	case "ttt":
		err = run(cfg, gameSetup[ttt.Move, minimax.Score, *ttt.Position]{
			position: ttt.NewPosition(),
			eval:     minimax.SignedEvaluator{},
			judge:    bench.SignedJudge,
			parse:    ttt.ParseMove,
		})
	case "coins":
		err = run(cfg, gameSetup[coins.Move, minimax.ScorePair, *coins.Game]{
			position: coins.NewGame(cfg.coins),
			eval:     minimax.ScorePairEvaluator{},
			judge:    bench.ScorePairJudge,
			parse:    coins.ParseMove,
		})
	case "ghost":
		err = runGhost(cfg)
	default:
		log.Fatal().Str("game", cfg.game).Msg("unknown game")
	}

	if err != nil {
		log.Fatal().Err(err).Msg("game failed")
	}
}

func runGhost(cfg config) error {
	dictionary := words.Default()
	if cfg.words != "" {
		var err error
		if dictionary, err = words.LoadFile(cfg.words); err != nil {
			return err
		}
	}

	game, err := ghost.NewGame(dictionary)
	if err != nil {
		return err
	}

	return run(cfg, gameSetup[ghost.Move, minimax.Score, *ghost.Game]{
		position: game,
		eval:     minimax.SignedEvaluator{},
		judge:    bench.SignedJudge,
		parse:    ghost.ParseMove,
		opening:  ghost.SafeMoves,
	})
}
