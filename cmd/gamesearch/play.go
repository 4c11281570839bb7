package main

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"

	"github.com/IlikeChooros/go-minimax/pkg/bench"
	"github.com/IlikeChooros/go-minimax/pkg/minimax"
	"github.com/IlikeChooros/go-minimax/pkg/player"
)

// Everything the CLI needs to know about a game
type gameSetup[T minimax.MoveLike, V any, P bench.PositionLike[T, V, P]] struct {
	position P
	eval     minimax.Evaluator[V]
	judge    bench.Judge[V]
	parse    func(string) (T, error)
	// Candidates for the random first move of the 'easy' player
	opening func(minimax.GameState[T, V]) []T
	// Both seats read from the same terminal, so they share one reader
	human player.Player[T, V]
}

func (g gameSetup[T, V, P]) newPlayer(kind string) (player.Player[T, V], error) {
	switch kind {
	case "minimax":
		return player.NewMinimax[T, V](g.eval), nil
	case "random":
		return player.NewRandom[T, V](), nil
	case "easy":
		candidates := g.opening
		if candidates == nil {
			candidates = func(s minimax.GameState[T, V]) []T { return s.LegalMoves() }
		}
		return player.NewOpening[T, V](player.NewMinimax[T, V](g.eval), candidates), nil
	case "human":
		return g.human, nil
	}
	return nil, fmt.Errorf("unknown player %q", kind)
}

func (g gameSetup[T, V, P]) factory(kind string) (bench.PlayerFactory[T, V], error) {
	// Validate the kind once, before any worker starts
	if _, err := g.newPlayer(kind); err != nil {
		return nil, err
	}
	return func(int) player.Player[T, V] {
		p, _ := g.newPlayer(kind)
		return p
	}, nil
}

func run[T minimax.MoveLike, V any, P bench.PositionLike[T, V, P]](cfg config, g gameSetup[T, V, P]) error {
	out := termenv.NewOutput(os.Stdout)
	g.human = player.NewHuman[T, V](os.Stdin, os.Stdout, g.parse).SetRender(func(s minimax.GameState[T, V]) string {
		return fmt.Sprint(s)
	})

	if cfg.pv {
		line, value := minimax.PrincipalVariation[T, V](g.position, g.eval)
		fmt.Fprintf(out, "%s %v, value %v\n", out.String("optimal line:").Bold(), line, value)
	}

	p1, err := g.factory(cfg.p1)
	if err != nil {
		return err
	}
	p2, err := g.factory(cfg.p2)
	if err != nil {
		return err
	}

	arena := bench.NewVersusArena(g.position, g.judge, p1, p2).
		WithNames(cfg.p1+" (p1)", cfg.p2+" (p2)").
		Setup(bench.DefaultConfig().
			SetGames(cfg.rounds).
			SetWorkers(cfg.workers).
			SetSwapSeats(cfg.swapSeats).
			SetSeed(cfg.seed))

	listeners := bench.Listeners[T]{bench.NewTermListener[T](os.Stdout)}
	var chart *bench.ChartListener[T]
	if cfg.chart != "" {
		chart = bench.NewChartListener[T]()
		listeners = append(listeners, chart)
	}

	if _, err = arena.Run(listeners); err != nil {
		return err
	}

	if chart != nil {
		return writeChart(cfg.chart, chart.Render)
	}
	return nil
}

func writeChart(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := render(f); err != nil {
		return err
	}
	log.Info().Str("path", path).Msg("chart written")
	return nil
}
