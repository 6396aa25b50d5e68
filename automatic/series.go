package automatic

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/Edaward/Udacity-AIND/agent"
	"github.com/Edaward/Udacity-AIND/config"
	"github.com/Edaward/Udacity-AIND/game"
	"github.com/Edaward/Udacity-AIND/stats"
)

// AgentFactory builds a fresh agent per worker; agents are not safe
// for concurrent use, so each worker gets its own pair.
type AgentFactory func() (agent.Agent, error)

// SeriesResult aggregates a multi-game series between two agents.
type SeriesResult struct {
	Label1, Label2 string
	Games          int
	Wins           map[string]int
	Forfeits       int
	GameLength     stats.Statistic
	lengths        []float64
}

// RunSeries plays n games between the two agent factories, swapping
// which agent moves first every other game. Games run on up to
// threads workers concurrently; each individual game's search is
// still single-threaded. A moves CSV is written to logfile when it is
// non-nil.
func RunSeries(ctx context.Context, cfg *config.Config, label1, label2 string,
	f1, f2 AgentFactory, n, threads int, logfile io.Writer) (*SeriesResult, error) {

	if threads < 1 {
		threads = 1
	}
	log.Debug().Int("games", n).Int("threads", threads).Msg("starting-series")

	jobs := make(chan int)
	results := make(chan seatedResult, threads)
	logChan := make(chan string, 100)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < threads; i++ {
		g.Go(func() error {
			a1, err := f1()
			if err != nil {
				return err
			}
			a2, err := f2()
			if err != nil {
				return err
			}
			for gameIdx := range jobs {
				// Swap seats every other game so neither agent gets
				// a permanent first-move advantage.
				first, second := a1, a2
				firstLabel, secondLabel := label1, label2
				if gameIdx%2 == 1 {
					first, second = a2, a1
					firstLabel, secondLabel = label2, label1
				}
				r := NewGameRunner(first, second, cfg, logChan)
				r.gameID = gameIdx
				res := r.Run(game.NewPosition(cfg.BoardWidth, cfg.BoardHeight))
				winLabel := firstLabel
				if res.Winner == game.Player2 {
					winLabel = secondLabel
				}
				select {
				case results <- seatedResult{Result: res, winnerLabel: winLabel}:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})
	}

	go func() {
	feedLoop:
		for i := 0; i < n; i++ {
			select {
			case jobs <- i:
			case <-ctx.Done():
				log.Info().Msg("got stop signal, ending series early")
				break feedLoop
			}
		}
		close(jobs)
		g.Wait()
		close(results)
		close(logChan)
	}()

	var logWG sync.WaitGroup
	if logfile != nil {
		logWG.Add(1)
		go func() {
			defer logWG.Done()
			io.WriteString(logfile, "gameID,turn,agent,row,col\n")
			for msg := range logChan {
				io.WriteString(logfile, msg)
			}
		}()
	} else {
		logWG.Add(1)
		go func() {
			defer logWG.Done()
			for range logChan {
			}
		}()
	}

	collected := []seatedResult{}
	for res := range results {
		collected = append(collected, res)
	}
	logWG.Wait()
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sr := &SeriesResult{
		Label1: label1,
		Label2: label2,
		Games:  len(collected),
		Wins: lo.CountValuesBy(collected, func(r seatedResult) string {
			return r.winnerLabel
		}),
	}
	for _, res := range collected {
		if res.Forfeit {
			sr.Forfeits++
		}
		sr.GameLength.Push(float64(res.Moves))
		sr.lengths = append(sr.lengths, float64(res.Moves))
	}
	return sr, nil
}

type seatedResult struct {
	Result
	winnerLabel string
}

// Summary writes the series outcome: per-agent win rates with a 95%
// confidence interval and a histogram of game lengths.
func (sr *SeriesResult) Summary(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprintf(w, "%d games (%d forfeits)\n", sr.Games, sr.Forfeits)
	if sr.Games == 0 {
		return
	}
	for _, label := range []string{sr.Label1, sr.Label2} {
		wins := sr.Wins[label]
		lo95, hi95 := stats.WinRateInterval(wins, sr.Games, 95)
		fmt.Fprintf(w, "%-20s %4d wins (%5.1f%%, 95%% CI %.1f%%-%.1f%%)\n",
			label, wins, 100*float64(wins)/float64(sr.Games), 100*lo95, 100*hi95)
	}
	fmt.Fprintf(w, "game length: mean %.1f, stdev %.1f\n",
		sr.GameLength.Mean(), sr.GameLength.Stdev())
	hist := histogram.Hist(9, sr.lengths)
	histogram.Fprint(w, hist, histogram.Linear(40))
}
