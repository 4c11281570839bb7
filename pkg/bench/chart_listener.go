package bench

import (
	"fmt"
	"io"
	"sync"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

// Records the result of every finished game, Render writes them
// as an html page with the running totals and the final summary
type ChartListener[T minimax.MoveLike] struct {
	DefaultListener[T]
	mu      sync.Mutex
	results []VersusMatchResult
	summary VersusSummaryInfo
}

func NewChartListener[T minimax.MoveLike]() *ChartListener[T] {
	return &ChartListener[T]{results: make([]VersusMatchResult, 0, DefaultGames)}
}

func (l *ChartListener[T]) OnFinishedGame(info VersusWorkerInfo[T]) {
	l.mu.Lock()
	l.results = append(l.results, info.Result)
	l.mu.Unlock()
}

func (l *ChartListener[T]) Summary(info VersusSummaryInfo) {
	l.mu.Lock()
	l.summary = info
	l.mu.Unlock()
}

// Results in the order the games finished
func (l *ChartListener[T]) Results() []VersusMatchResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]VersusMatchResult(nil), l.results...)
}

func (l *ChartListener[T]) Render(w io.Writer) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	games := make([]string, len(l.results))
	p1 := make([]opts.LineData, len(l.results))
	p2 := make([]opts.LineData, len(l.results))
	draws := make([]opts.LineData, len(l.results))

	var nP1, nP2, nDraws int
	for i, r := range l.results {
		switch r {
		case VersusPl1Win:
			nP1++
		case VersusPl2Win:
			nP2++
		default:
			nDraws++
		}
		games[i] = fmt.Sprint(i + 1)
		p1[i] = opts.LineData{Value: nP1}
		p2[i] = opts.LineData{Value: nP2}
		draws[i] = opts.LineData{Value: nDraws}
	}

	p1Name, p2Name := l.summary.P1Name, l.summary.P2Name
	if p1Name == "" {
		p1Name, p2Name = "player 1", "player 2"
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "cumulative results"}),
	)
	line.SetXAxis(games).
		AddSeries(p1Name, p1).
		AddSeries(p2Name, p2).
		AddSeries("draws", draws)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "summary",
			Subtitle: fmt.Sprintf("%d games, %d workers", l.summary.TotalGames, l.summary.Workers),
		}),
	)
	bar.SetXAxis([]string{p1Name, p2Name, "draws"}).
		AddSeries("games", []opts.BarData{{Value: nP1}, {Value: nP2}, {Value: nDraws}})

	page := components.NewPage()
	page.AddCharts(line, bar)
	return page.Render(w)
}
