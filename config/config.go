// Package config loads engine settings from defaults, environment
// variables (ISOLATION_*) and an optional YAML config file.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	BoardWidth  int
	BoardHeight int

	// GameClock is the wall-clock budget per turn.
	GameClock time.Duration
	// TimerMargin is the remaining budget below which a search aborts.
	TimerMargin time.Duration

	SearchDepth int
	Iterative   bool
	Method      string
	Heuristic   string

	BookPath  string
	BookPlies int
	// BookPlayouts is the number of random playouts per candidate move
	// when building the opening book.
	BookPlayouts int

	AutoplayGames   int
	AutoplayThreads int
}

// DefaultConfig returns the settings used when nothing else is
// specified: a 7x7 board, 150ms per move with a 10ms margin, and
// iterative-deepening alphabeta on the mobility heuristic.
func DefaultConfig() Config {
	c := Config{}
	setDefaults(viper.New(), &c)
	return c
}

// Load reads configuration. A non-empty path names a YAML config file;
// environment variables with the ISOLATION_ prefix override it either
// way (e.g. ISOLATION_GAME_CLOCK=500ms).
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("isolation")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}
	var c Config
	setDefaults(v, &c)
	return c, nil
}

func setDefaults(v *viper.Viper, c *Config) {
	v.SetDefault("board.width", 7)
	v.SetDefault("board.height", 7)
	v.SetDefault("game.clock", 150*time.Millisecond)
	v.SetDefault("timer.margin", 10*time.Millisecond)
	v.SetDefault("search.depth", 3)
	v.SetDefault("search.iterative", true)
	v.SetDefault("search.method", "alphabeta")
	v.SetDefault("search.heuristic", "mobility")
	v.SetDefault("book.path", "")
	v.SetDefault("book.plies", 2)
	v.SetDefault("book.playouts", 40)
	v.SetDefault("autoplay.games", 100)
	v.SetDefault("autoplay.threads", 4)

	c.BoardWidth = v.GetInt("board.width")
	c.BoardHeight = v.GetInt("board.height")
	c.GameClock = v.GetDuration("game.clock")
	c.TimerMargin = v.GetDuration("timer.margin")
	c.SearchDepth = v.GetInt("search.depth")
	c.Iterative = v.GetBool("search.iterative")
	c.Method = v.GetString("search.method")
	c.Heuristic = v.GetString("search.heuristic")
	c.BookPath = v.GetString("book.path")
	c.BookPlies = v.GetInt("book.plies")
	c.BookPlayouts = v.GetInt("book.playouts")
	c.AutoplayGames = v.GetInt("autoplay.games")
	c.AutoplayThreads = v.GetInt("autoplay.threads")
}
