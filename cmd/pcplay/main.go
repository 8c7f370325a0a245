// Command pcplay plays a directory of point cloud frames in the terminal,
// labeling each frame with its index and file name.
//
// Usage:
//
//	pcplay [flags]
//
// Frames are shown in file name order, either on a timer or, with
// -keyboard, one per press of the space key. Settings can also be read
// from a TOML or YAML file given with -config; flags override the file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gogpu/pcview"
	"github.com/gogpu/pcview/cloudio"
	"github.com/gogpu/pcview/config"
	"github.com/gogpu/pcview/playback"
	"github.com/gogpu/pcview/viewer"
)

func main() {
	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "pcplay:", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "pcplay:", err)
		os.Exit(1)
	}
}

// parseConfig builds the settings from defaults, the optional -config file
// and the flags that were set explicitly, in that order.
func parseConfig(args []string, output io.Writer) (config.Config, error) {
	fs := flag.NewFlagSet("pcplay", flag.ContinueOnError)
	fs.SetOutput(output)

	fc := config.Default()
	cfgPath := fs.String("config", "", "TOML or YAML settings file; flags override it")
	verbose := fs.Bool("v", false, "log debug messages")
	fs.BoolVar(&fc.Keyboard, "keyboard", fc.Keyboard, "step with the space key instead of auto-play")
	fs.StringVar(&fc.Folder, "ply_folder", fc.Folder, "directory holding the frames")
	fs.StringVar(&fc.FileType, "file_type", fc.FileType, "frame file extension (.ply, .pcd, .xyz)")
	fs.IntVar(&fc.WindowWidth, "window_width", fc.WindowWidth, "window width in pixels")
	fs.IntVar(&fc.WindowHeight, "window_height", fc.WindowHeight, "window height in pixels")
	fs.Float64Var(&fc.PauseTime, "pause_time", fc.PauseTime, "seconds between frames in auto-play")
	fs.StringVar(&fc.CameraView, "camera_view", fc.CameraView, "camera view JSON file, saved with key p")
	fs.StringVar(&fc.Font, "font", fc.Font, "label font: builtin name, file path or system family")
	fs.Float64Var(&fc.FontSize, "font_size", fc.FontSize, "label font size in points")
	fs.BoolVar(&fc.Loop, "loop", fc.Loop, "restart auto-play after the last frame")
	fs.BoolVar(&fc.Watch, "watch", fc.Watch, "pick up frames added to the directory while playing")

	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			return config.Config{}, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "keyboard":
			cfg.Keyboard = fc.Keyboard
		case "ply_folder":
			cfg.Folder = fc.Folder
		case "file_type":
			cfg.FileType = fc.FileType
		case "window_width":
			cfg.WindowWidth = fc.WindowWidth
		case "window_height":
			cfg.WindowHeight = fc.WindowHeight
		case "pause_time":
			cfg.PauseTime = fc.PauseTime
		case "camera_view":
			cfg.CameraView = fc.CameraView
		case "font":
			cfg.Font = fc.Font
		case "font_size":
			cfg.FontSize = fc.FontSize
		case "loop":
			cfg.Loop = fc.Loop
		case "watch":
			cfg.Watch = fc.Watch
		}
	})
	if *verbose {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func run(ctx context.Context, cfg config.Config, stdout io.Writer) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	pcview.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	names, err := cloudio.ListFrames(cfg.Folder, cfg.FileType)
	if errors.Is(err, cloudio.ErrNoFrames) {
		fmt.Fprintln(stdout, "empty directory, exiting...")
		return nil
	}
	if err != nil {
		return err
	}

	projector, err := pcview.NewProjector(cfg.Font, cfg.FontSize)
	if err != nil {
		return err
	}

	vopts := []viewer.Option{viewer.WithWindowSize(cfg.WindowWidth, cfg.WindowHeight)}
	if cfg.CameraView != "" {
		cam, err := viewer.LoadCamera(cfg.CameraView)
		if err != nil {
			return err
		}
		vopts = append(vopts, viewer.WithCamera(cam))
	}
	v, err := viewer.New(vopts...)
	if err != nil {
		return err
	}
	defer v.Close()

	popts := []playback.Option{
		playback.WithInput(v),
		playback.WithPause(cfg.Pause()),
		playback.WithLoop(cfg.Loop),
	}
	if cfg.Watch {
		w, err := playback.NewWatcher(cfg.Folder, cfg.FileType)
		if err != nil {
			return err
		}
		defer w.Close()
		popts = append(popts, playback.WithWatcher(w))
	}

	builder := playback.NewBuilder(cfg.Folder, names, projector)
	player := playback.NewPlayer(builder, v, popts...)
	if cfg.Keyboard {
		err = player.RunKeys(ctx)
	} else {
		err = player.RunAuto(ctx)
	}
	stats := builder.CacheStats()
	pcview.Logger().Debug("pcplay: playback finished",
		"frames", builder.Len(), "cached", stats.Len, "hits", stats.Hits, "misses", stats.Misses)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
