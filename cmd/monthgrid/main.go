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
	"path/filepath"
	"runtime"
	"syscall"

	"fyne.io/fyne/v2/app"
	"github.com/tartampluch/go-monthgrid/internal/config"
	"github.com/tartampluch/go-monthgrid/internal/server"
	"github.com/tartampluch/go-monthgrid/internal/style"
	"github.com/tartampluch/go-monthgrid/internal/ui"
)

// cliFlags holds the parsed command line.
type cliFlags struct {
	version   bool
	debug     bool
	profile   string
	port      string
	overrides ui.Options
}

// main delegates to runMain so deferred calls (closing the log file) run
// before os.Exit.
func main() {
	os.Exit(runMain())
}

// runMain manages the application lifecycle, argument parsing, and exit codes.
func runMain() int {
	flags := parseFlags(flag.CommandLine, os.Args[1:])

	if flags.version {
		printVersion()
		return config.ExitCodeSuccess
	}

	logCloser := setupLogging(flags.debug)
	if logCloser != nil {
		defer func() {
			_ = logCloser.Close() // Best effort close
		}()
	}

	// Root context cancels on SIGINT (Ctrl+C) or SIGTERM.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logStartupInfo()

	if err := run(ctx, flags); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// parseFlags reads args into cliFlags. It exits on -h and on parse errors like flag.Parse.
func parseFlags(fs *flag.FlagSet, args []string) cliFlags {
	var f cliFlags

	fs.BoolVar(&f.version, config.FlagVersion, false, config.FlagDescVersion)
	fs.BoolVar(&f.debug, config.FlagDebug, false, config.FlagDescDebug)
	fs.IntVar(&f.overrides.Month, config.FlagMonth, 0, config.FlagDescMonth)
	fs.IntVar(&f.overrides.Year, config.FlagYear, 0, config.FlagDescYear)
	fs.IntVar(&f.overrides.WeekStart, config.FlagWeekStart, config.FlagUnset, config.FlagDescWeekStart)
	fs.BoolVar(&f.overrides.Mirrored, config.FlagRTL, false, config.FlagDescRTL)
	fs.StringVar(&f.overrides.Lang, config.FlagLang, "", config.FlagDescLang)
	fs.StringVar(&f.profile, config.FlagProfile, "", config.FlagDescProfile)
	fs.StringVar(&f.port, config.FlagPort, "", config.FlagDescPort)

	_ = fs.Parse(args) // flag.ExitOnError never returns an error
	return f
}

// loadProfile reads the layout profile, falling back to the built-in layout.
// A missing file is only a warning; a malformed one is an error.
func loadProfile(path string) (style.Profile, error) {
	if path == "" {
		return style.NewProfile(), nil
	}

	profile, err := style.NewProfileFromFile(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Warn(config.ErrProfileRead,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyFile, path,
			config.LogKeyError, err,
		)
		return style.NewProfile(), nil
	}
	return profile, err
}

// run initializes the Fyne application, wires dependencies, and starts the UI loop.
func run(ctx context.Context, flags cliFlags) error {
	profile, err := loadProfile(flags.profile)
	if err != nil {
		return err
	}

	a := app.NewWithID(config.AppID)

	// Record the version for potential migration logic in future updates.
	a.Preferences().SetString(config.PrefLastRun, config.Version)

	port := flags.port
	if port == "" {
		port = a.Preferences().StringWithFallback(config.PrefServerPort, config.DefaultPort)
	}
	srv := server.NewFeedServer(port)

	gui := ui.NewMonthGridApp(a, ctx, srv, profile)
	gui.Setup(flags.overrides)

	// Lifecycle Bridge: quit the UI when the context is cancelled.
	go func() {
		<-ctx.Done()
		slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompMain)
		a.Quit()
	}()

	// Blocks until the main window closes.
	gui.Run()

	return nil
}

// printVersion outputs the build information to stdout.
func printVersion() {
	fmt.Printf(config.MsgVersionOutput,
		config.AppName,
		config.Version,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging installs a JSON slog logger writing to stdout and, when
// possible, to a log file in the user cache directory.
func setupLogging(debugMode bool) io.Closer {
	writers := []io.Writer{os.Stdout}
	var logFile *os.File

	if logPath, err := getLogFilePath(); err == nil {
		// O_TRUNC resets logs on restart to prevent indefinite growth.
		f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
		if err == nil {
			writers = append(writers, f)
			logFile = f
		} else {
			fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, logPath, err)
		}
	}

	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(io.MultiWriter(writers...), opts)))

	if logFile == nil {
		return nil
	}
	return logFile
}

// getLogFilePath determines the platform-specific cache directory for logs.
func getLogFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppID)
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, config.LogFileName), nil
}
