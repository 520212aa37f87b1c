package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"fyne.io/fyne/v2/app"
	"github.com/tartampluch/go-people/internal/config"
	"github.com/tartampluch/go-people/internal/locale"
	"github.com/tartampluch/go-people/internal/shell"
	"github.com/tartampluch/go-people/internal/store"
	"github.com/tartampluch/go-people/internal/ui"
	"golang.org/x/term"
)

// main is the application entry point.
// It delegates execution to runMain to ensure that deferred function calls
// (like closing log files) are executed before the process terminates.
// os.Exit() does not run defers, so we must return an integer code first.
func main() {
	os.Exit(runMain())
}

// options holds the parsed command line.
type options struct {
	lang    string
	langSet bool     // -lang given explicitly, overriding the saved preference.
	args    []string // FILE followed by an optional subcommand and its flags.
}

// runMain manages the application lifecycle, argument parsing, and exit codes.
// Returns config.ExitCodeSuccess on success, config.ExitCodeError on failure.
func runMain() int {
	// -------------------------------------------------------------------------
	// 1. CLI Argument Parsing
	// -------------------------------------------------------------------------
	showVersion := flag.Bool(config.FlagVersion, false, config.FlagDescVersion)
	debugMode := flag.Bool(config.FlagDebug, false, config.FlagDescDebug)
	lang := flag.String(config.FlagLang, config.DefaultLanguage, config.FlagDescLang)
	flag.Usage = func() {
		_, _ = fmt.Fprint(flag.CommandLine.Output(), config.MsgUsage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		printVersion()
		return config.ExitCodeSuccess
	}

	opts := options{lang: *lang, args: flag.Args()}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == config.FlagLang {
			opts.langSet = true
		}
	})

	// -------------------------------------------------------------------------
	// 2. Logging Initialization
	// -------------------------------------------------------------------------
	// Text modes own stdout, so their console log goes to stderr and only
	// in debug mode. The GUI logs to stdout.
	var console io.Writer
	switch {
	case len(opts.args) == 0:
		console = os.Stdout
	case *debugMode:
		console = os.Stderr
	}
	logCloser := setupLogging(*debugMode, console)
	if logCloser != nil {
		defer func() {
			_ = logCloser.Close() // Best effort close
		}()
	}

	// -------------------------------------------------------------------------
	// 3. Context & Signal Handling
	// -------------------------------------------------------------------------
	// Create a root context that cancels on SIGINT (Ctrl+C) or SIGTERM.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logStartupInfo()

	// -------------------------------------------------------------------------
	// 4. Application Logic
	// -------------------------------------------------------------------------
	if err := run(ctx, opts); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		_, _ = fmt.Fprintf(os.Stderr, config.MsgErrorOutput, err)
		if isUsageError(err) {
			flag.Usage()
		}
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// run picks the front-end: the GUI without FILE, the interactive shell with
// FILE alone, a one-shot command with FILE and a subcommand.
func run(ctx context.Context, opts options) error {
	tr := locale.New(opts.lang)
	st := store.New(nil)

	if len(opts.args) == 0 {
		return runGUI(ctx, opts, tr, st)
	}

	path := opts.args[0]
	if err := ensureFile(path); err != nil {
		return err
	}
	people, err := st.Load(path)
	if err != nil {
		return err
	}

	cfg := shell.Config{
		Path:       path,
		Store:      st,
		Translator: tr,
		Clock:      store.RealClock{},
		Out:        os.Stdout,
	}
	if len(opts.args) > 1 {
		return shell.RunCommand(cfg, people, opts.args[1:])
	}
	return runShell(ctx, cfg, people)
}

// runGUI initializes the Fyne application, wires dependencies, and starts the UI loop.
func runGUI(ctx context.Context, opts options, tr *locale.Translator, st *store.Store) error {
	// Initialize Fyne App.
	a := app.NewWithID(config.AppID)

	// Record the version for potential migration logic in future updates.
	a.Preferences().SetString(config.PrefLastRun, config.Version)

	gui := ui.NewPeopleApp(a, ctx, tr, st)
	if opts.langSet {
		gui.SetLanguage(opts.lang)
	}

	// Lifecycle Bridge:
	// Watch for context cancellation to quit the UI gracefully.
	go func() {
		<-ctx.Done()
		slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompMain)
		a.Quit()
	}()

	// Start the Application (blocks until main window closes).
	gui.Run()

	return nil
}

// runShell drives the interactive loop on stdin. A terminal gets line
// editing and history in raw mode; pipes are read line by line.
func runShell(ctx context.Context, cfg shell.Config, people store.People) error {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("%s: %w", config.ErrTerminal, err)
		}
		defer func() {
			_ = term.Restore(fd, state) // Best effort restore
		}()

		t := shell.NewTerminal(struct {
			io.Reader
			io.Writer
		}{os.Stdin, os.Stdout})
		cfg.In, cfg.Out = t, t
	} else {
		cfg.In = shell.NewBufferedReader(os.Stdin, os.Stdout)
		// Unblock a pending read when a signal arrives.
		stop := context.AfterFunc(ctx, func() { _ = os.Stdin.Close() })
		defer stop()
	}

	err := shell.New(cfg, people).Run(ctx)
	if ctx.Err() != nil {
		slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompMain)
		return nil
	}
	return err
}

// ensureFile creates path with an empty header when it does not exist yet.
func ensureFile(path string) error {
	_, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return store.InitializeEmptyFile(path)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", store.ErrIO, err)
	}
	return nil
}

// isUsageError reports command line mistakes worth a usage reminder.
func isUsageError(err error) bool {
	return errors.Is(err, shell.ErrUnknownCommand) ||
		errors.Is(err, shell.ErrMissingArgument) ||
		errors.Is(err, shell.ErrInvalidIndex)
}

// printVersion outputs the build information to stdout and exits.
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
			slog.String(config.LogKeyCommit, config.Commit),
			slog.String(config.LogKeyDate, config.Date),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging configures the default slog logger. console may be nil, in
// which case only the log file is written.
func setupLogging(debugMode bool, console io.Writer) io.Closer {
	var writers []io.Writer
	var logFile *os.File

	if console != nil {
		writers = append(writers, console)
	}

	// Attempt to set up a file writer in the user's cache directory.
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

	logger := slog.New(slog.NewJSONHandler(io.MultiWriter(writers...), opts))
	slog.SetDefault(logger)

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

	// Ensure the directory exists with restricted permissions (700).
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, config.LogFileName), nil
}
