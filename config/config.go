package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/kuredoro/termsnake/engine/game"
)

// DefaultPath is where the game looks for a config file when none is given.
const DefaultPath = "snake.json"

// Duration is a time.Duration read from JSON as "100ms" or as nanoseconds.
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch v := v.(type) {
	case float64:
		*d = Duration(time.Duration(v))
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
	default:
		return fmt.Errorf("invalid duration %s", string(data))
	}

	return nil
}

// Config holds the settings of a game session.
type Config struct {
	Tick      Duration `json:"tick"`
	MaxWidth  int      `json:"max_width"`
	MaxHeight int      `json:"max_height"`
	Seed      int64    `json:"seed"` // 0 seeds from the clock
	LogFile   string   `json:"log_file"`
	LogLevel  string   `json:"log_level"`
	SkipCover bool     `json:"skip_cover"`
}

func Default() Config {
	return Config{
		Tick:      Duration(100 * time.Millisecond),
		MaxWidth:  100,
		MaxHeight: 100,
		LogFile:   "snake.log",
		LogLevel:  zerolog.InfoLevel.String(),
	}
}

// Load reads filename over the defaults.
func Load(filename string) (Config, error) {
	config := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "read config %s", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "parse config %s", filename)
	}

	return config, nil
}

// Validate reports every setting that cannot be used.
func (c Config) Validate() error {
	var result *multierror.Error

	if c.Tick <= 0 {
		result = multierror.Append(result, fmt.Errorf("tick must be positive, got %v", time.Duration(c.Tick)))
	}
	if c.MaxWidth < game.MinWidth {
		result = multierror.Append(result, fmt.Errorf("max_width must be at least %d, got %d", game.MinWidth, c.MaxWidth))
	}
	if c.MaxHeight < game.MinHeight {
		result = multierror.Append(result, fmt.Errorf("max_height must be at least %d, got %d", game.MinHeight, c.MaxHeight))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		result = multierror.Append(result, errors.Wrap(err, "log_level"))
	}

	return result.ErrorOrNil()
}

// Level is the parsed log level. Validate first.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
