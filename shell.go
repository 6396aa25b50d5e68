package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/Edaward/Udacity-AIND/agent"
	"github.com/Edaward/Udacity-AIND/automatic"
	"github.com/Edaward/Udacity-AIND/config"
	"github.com/Edaward/Udacity-AIND/game"
	"github.com/Edaward/Udacity-AIND/heuristic"
	"github.com/Edaward/Udacity-AIND/move"
	"github.com/Edaward/Udacity-AIND/openingbook"
	"github.com/Edaward/Udacity-AIND/search"
)

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func newEngine(cfg *config.Config) (*agent.SearchAgent, error) {
	scoreFn, err := heuristic.ByName(cfg.Heuristic)
	if err != nil {
		return nil, err
	}
	a, err := agent.NewSearchAgent("engine", search.Config{
		SearchDepth: cfg.SearchDepth,
		ScoreFn:     scoreFn,
		Iterative:   cfg.Iterative,
		Method:      cfg.Method,
		Timeout:     cfg.TimerMargin,
	})
	if err != nil {
		return nil, err
	}
	if cfg.BookPath != "" {
		book, err := openingbook.Load(cfg.BookPath)
		if err != nil {
			return nil, err
		}
		a.UseBook(book)
	}
	return a, nil
}

// engineMove has the engine pick and play a move under the configured
// per-move clock.
func engineMove(cfg *config.Config, engine *agent.SearchAgent, pos *game.Position) *game.Position {
	legalMoves := pos.LegalMoves(pos.ActivePlayer())
	deadline := time.Now().Add(cfg.GameClock)
	mv := engine.GetMove(pos, legalMoves, func() time.Duration {
		return time.Until(deadline)
	})
	if mv.IsNoMove() {
		return pos
	}
	return pos.ForecastMove(mv)
}

func shellLoop(cfg *config.Config) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31misolation>\033[0m ",
		HistoryFile:     "/tmp/readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()

	var pos *game.Position
	engine, err := newEngine(cfg)
	if err != nil {
		showMessage("Error: "+err.Error(), l.Stderr())
		return
	}

readlineLoop:
	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		line = strings.TrimSpace(line)
		fields := strings.Fields(line)
		switch {
		case line == "new":
			pos = game.NewPosition(cfg.BoardWidth, cfg.BoardHeight)
			showMessage(pos.ToDisplayText(), l.Stderr())

		case line == "show":
			if pos == nil {
				showMessage("No game in progress; start one with `new`", l.Stderr())
				break
			}
			showMessage(pos.ToDisplayText(), l.Stderr())

		case strings.HasPrefix(line, "play "):
			if pos == nil {
				showMessage("No game in progress; start one with `new`", l.Stderr())
				break
			}
			if len(fields) != 3 {
				showMessage("usage: play <row> <col>", l.Stderr())
				break
			}
			r, err1 := strconv.Atoi(fields[1])
			c, err2 := strconv.Atoi(fields[2])
			if err1 != nil || err2 != nil {
				showMessage("usage: play <row> <col>", l.Stderr())
				break
			}
			mv := move.Move{Row: r, Col: c}
			if !pos.IsLegalMove(mv) {
				showMessage("illegal move "+mv.String(), l.Stderr())
				break
			}
			pos = pos.ForecastMove(mv)
			if pos.GameOver() {
				showMessage(pos.ToDisplayText(), l.Stderr())
				showMessage("you win!", l.Stderr())
				pos = nil
				break
			}
			pos = engineMove(cfg, engine, pos)
			showMessage(pos.ToDisplayText(), l.Stderr())
			if pos.GameOver() {
				showMessage(fmt.Sprintf("%v wins", pos.InactivePlayer()), l.Stderr())
				pos = nil
			}

		case line == "best":
			if pos == nil {
				showMessage("No game in progress; start one with `new`", l.Stderr())
				break
			}
			pos = engineMove(cfg, engine, pos)
			showMessage(pos.ToDisplayText(), l.Stderr())
			if pos.GameOver() {
				showMessage(fmt.Sprintf("%v wins", pos.InactivePlayer()), l.Stderr())
				pos = nil
			}

		case strings.HasPrefix(line, "auto"):
			n := cfg.AutoplayGames
			if len(fields) == 2 {
				if parsed, err := strconv.Atoi(fields[1]); err == nil {
					n = parsed
				}
			}
			sr, err := automatic.RunSeries(context.Background(), cfg,
				"engine", "greedy",
				func() (agent.Agent, error) { return newEngine(cfg) },
				func() (agent.Agent, error) { return agent.NewGreedyAgent(nil), nil },
				n, cfg.AutoplayThreads, nil)
			if err != nil {
				showMessage("Error: "+err.Error(), l.Stderr())
				break
			}
			sr.Summary(l.Stderr())

		case line == "book build":
			book := openingbook.Build(game.NewPosition(cfg.BoardWidth, cfg.BoardHeight),
				cfg.BookPlies, cfg.BookPlayouts)
			if cfg.BookPath == "" {
				showMessage("no book.path configured; book not saved", l.Stderr())
				break
			}
			if err := book.Save(cfg.BookPath); err != nil {
				showMessage("Error: "+err.Error(), l.Stderr())
				break
			}
			engine.UseBook(book)
			showMessage(fmt.Sprintf("saved %d positions to %s", book.Len(), cfg.BookPath), l.Stderr())

		case strings.HasPrefix(line, "set "):
			if len(fields) != 3 {
				showMessage("usage: set <option> <value>", l.Stderr())
				break
			}
			if err := setOption(cfg, fields[1], fields[2]); err != nil {
				showMessage("Error: "+err.Error(), l.Stderr())
				break
			}
			engine, err = newEngine(cfg)
			if err != nil {
				showMessage("Error: "+err.Error(), l.Stderr())
				break
			}

		case line == "bye" || line == "exit":
			break readlineLoop
		case strings.HasPrefix(line, "help"):
			usage(l.Stderr())
		case line == "":
		default:
			log.Debug().Msgf("you said: %v", strconv.Quote(line))
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}

func setOption(cfg *config.Config, key, value string) error {
	switch key {
	case "method":
		if value != search.MethodMinimax && value != search.MethodAlphabeta {
			return fmt.Errorf("method must be minimax or alphabeta")
		}
		cfg.Method = value
	case "heuristic":
		if _, err := heuristic.ByName(value); err != nil {
			return err
		}
		cfg.Heuristic = value
	case "depth":
		d, err := strconv.Atoi(value)
		if err != nil || d < 1 {
			return fmt.Errorf("depth must be a positive integer")
		}
		cfg.SearchDepth = d
	case "iterative":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		cfg.Iterative = b
	case "clock":
		d, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		cfg.GameClock = d
	default:
		return fmt.Errorf("unknown option %q", key)
	}
	return nil
}
