// Package config holds pcplay settings, their defaults and file loading.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/pcview/text"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid")

// Config is the full set of player settings. Keys in TOML and YAML files
// use the same names as the command-line flags.
type Config struct {
	// Keyboard selects key-driven stepping instead of timed auto-play.
	Keyboard bool `toml:"keyboard" yaml:"keyboard"`

	// Folder is the directory holding the frames.
	Folder string `toml:"ply_folder" yaml:"ply_folder"`

	// FileType is the file name suffix frames must have.
	FileType string `toml:"file_type" yaml:"file_type"`

	WindowWidth  int `toml:"window_width" yaml:"window_width"`
	WindowHeight int `toml:"window_height" yaml:"window_height"`

	// PauseTime is the delay between frames in auto-play, in seconds.
	PauseTime float64 `toml:"pause_time" yaml:"pause_time"`

	// CameraView is an optional JSON camera view file.
	CameraView string `toml:"camera_view" yaml:"camera_view"`

	Font     string  `toml:"font" yaml:"font"`
	FontSize float64 `toml:"font_size" yaml:"font_size"`

	// Loop restarts auto-play from the first frame after the last one.
	Loop bool `toml:"loop" yaml:"loop"`

	// Watch rescans the frame directory when files appear or disappear.
	Watch bool `toml:"watch" yaml:"watch"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level" yaml:"log_level"`
}

// Default returns the settings used when nothing else is given.
func Default() Config {
	return Config{
		Folder:       "./ply",
		FileType:     ".ply",
		WindowWidth:  640,
		WindowHeight: 480,
		PauseTime:    0.2,
		Font:         text.DefaultFont,
		FontSize:     16,
		LogLevel:     "warn",
	}
}

// Load reads a TOML (.toml) or YAML (.yaml, .yml) file on top of Default.
// Keys missing from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	// #nosec G304 -- config path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("config: unknown file type %q", ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	switch {
	case c.Folder == "":
		return fmt.Errorf("%w: ply_folder is empty", ErrInvalid)
	case c.WindowWidth <= 0 || c.WindowHeight <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.WindowWidth, c.WindowHeight)
	case !(c.PauseTime > 0):
		return fmt.Errorf("%w: pause_time %v must be positive", ErrInvalid, c.PauseTime)
	case !(c.FontSize > 0):
		return fmt.Errorf("%w: font_size %v must be positive", ErrInvalid, c.FontSize)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Pause returns PauseTime as a duration.
func (c Config) Pause() time.Duration {
	return time.Duration(c.PauseTime * float64(time.Second))
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	return l, nil
}
