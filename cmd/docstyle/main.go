package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"docstyle/config"
	"docstyle/misc"
	"docstyle/state"
)

// initializeAppContext prepares application context before command execution
// but after command line has been parsed.
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error

	if cmd.NArg() == 0 {
		// nothing to do
		return ctx, nil
	}

	env := state.EnvFromContext(ctx)

	configFile := cmd.String("config")
	if env.Cfg, err = config.LoadConfiguration(configFile); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if cmd.Bool("debug") {
		if env.Rpt, err = env.Cfg.Reporting.Prepare(); err != nil {
			return ctx, fmt.Errorf("unable to prepare debug report: %w", err)
		}
		if len(configFile) > 0 {
			if data, err := config.Dump(env.Cfg); err == nil {
				env.Rpt.StoreData(fmt.Sprintf("config/%s", filepath.Base(configFile)), data)
			}
		}
	}
	if env.Log, err = env.Cfg.Logging.Prepare(env.Rpt); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	env.RedirectStdLog()

	env.Log.Debug("Program started", zap.Strings("args", os.Args), zap.String("ver", misc.GetVersion()), zap.String("runtime", runtime.Version()), zap.String("hash", misc.GetGitHash()))

	if env.Rpt != nil {
		env.Log.Info("Creating debug report", zap.String("location", env.Rpt.Name()))
	}
	if len(configFile) == 0 {
		env.Log.Debug("Using defaults (no configuration file)")
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.Log.Debug("Program ended", zap.Duration("elapsed", env.Uptime()), zap.Strings("parsed args", cmd.Args().Slice()))
	}

	env.RestoreStdLog()

	// log is synced now, errors go to stderr from here
	if env.Rpt != nil {
		if er := env.Rpt.Close(); er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to close debug report: %w", er))
		}
	}
	// remove empty panic file if any
	if env.Cfg != nil && len(env.Cfg.Logging.FileLogger.Destination) > 0 {
		_ = debug.SetCrashOutput(nil, debug.CrashOptions{})
		fname := config.PanicLogName(env.Cfg.Logging.FileLogger.Destination)
		if fi, er := os.Stat(fname); er == nil && fi.Size() == 0 {
			if er := os.Remove(fname); er != nil {
				err = multierr.Append(err, fmt.Errorf("unable to remove empty panic log file '%s': %w", fname, er))
			}
		}
	}
	return
}

// Errors from subcommands are regular errors, they are logged here and
// reported to stderr on exit only when log was not available.
var errWasHandled bool

func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.Log.Error("Program ended with error", zap.Error(err))
		errWasHandled = true
	}
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return err
}

func subcommandNotFoundHandler(ctx context.Context, _ *cli.Command, name string) {
	state.EnvFromContext(ctx).Log.Warn("Unknown command, nothing to do", zap.String("command", name))
}

// formatFlag parses --format into the environment.
func formatFlag(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if !cmd.IsSet("format") {
		return ctx, nil
	}
	f, err := config.ParseOutputFormat(cmd.String("format"))
	if err != nil {
		return ctx, err
	}
	state.EnvFromContext(ctx).Format = &f
	return ctx, nil
}

func main() {
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	formatUsage := "output `FORMAT` (" + strings.Join(config.OutputFormatNames(), ", ") + "), overrides configuration"

	app := &cli.Command{
		Name:            misc.GetAppName(),
		Usage:           "resolves effective OOXML formatting and maps rendered layout points to document positions",
		Version:         misc.GetVersion() + " (" + runtime.Version() + ") : " + misc.GetGitHash(),
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		CommandNotFound: subcommandNotFoundHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, DefaultText: "", Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "changes program behavior to help troubleshooting, produces report archive"},
		},
		Commands: []*cli.Command{
			{
				Name:         "resolve",
				Usage:        "Resolves effective paragraph and run properties",
				OnUsageError: usageErrorHandler,
				Before:       formatFlag,
				Action:       runResolve,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "style", Aliases: []string{"s"}, Usage: "paragraph style `ID`"},
					&cli.StringFlag{Name: "ppr", Usage: "direct paragraph formatting as w:pPr `XML`"},
					&cli.StringFlag{Name: "run-style", Usage: "character style `ID`"},
					&cli.StringFlag{Name: "rpr", Usage: "direct run formatting as w:rPr `XML`"},
					&cli.IntFlag{Name: "num-id", Usage: "numbering instance `ID` set on paragraph"},
					&cli.IntFlag{Name: "ilvl", Usage: "list `LEVEL` (0-8)"},
					&cli.BoolFlag{Name: "list-marker", Usage: "resolve run as list marker of the paragraph"},
					&cli.StringFlag{Name: "table-style", Usage: "table style `ID`, places paragraph into a table cell"},
					&cli.StringFlag{Name: "tblpr", Usage: "direct table formatting as w:tblPr `XML`"},
					&cli.IntFlag{Name: "row", Usage: "cell row `INDEX`"},
					&cli.IntFlag{Name: "col", Usage: "cell column `INDEX`"},
					&cli.IntFlag{Name: "rows", Value: 1, Usage: "`NUMBER` of table rows"},
					&cli.IntFlag{Name: "cols", Value: 1, Usage: "`NUMBER` of cells in the row"},
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: formatUsage},
				},
				ArgsUsage: "SOURCE",
				CustomHelpTemplate: fmt.Sprintf(`%s
SOURCE:
    path to DOCX file, styles, numbering and theme are read from it

Properties are resolved the way Word applies them: document defaults, default
paragraph style, table style conditional formatting, numbering, style basedOn
chains and direct formatting.
`, cli.CommandHelpTemplate),
			},
			{
				Name:         "styles",
				Usage:        "Lists styles of a document with their basedOn chains",
				OnUsageError: usageErrorHandler,
				Before:       formatFlag,
				Action:       runStyles,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "type", Aliases: []string{"t"}, Usage: "list only styles of `TYPE` (paragraph, character, table, numbering)"},
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: formatUsage},
				},
				ArgsUsage: "SOURCE",
			},
			{
				Name:         "hit",
				Usage:        "Maps a point of rendered pages to a document position",
				OnUsageError: usageErrorHandler,
				Before:       formatFlag,
				Action:       runHit,
				Flags: []cli.Flag{
					&cli.FloatFlag{Name: "x", Required: true, Usage: "horizontal `PIXELS` relative to the layout root"},
					&cli.FloatFlag{Name: "y", Required: true, Usage: "vertical `PIXELS` relative to the layout root"},
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: formatUsage},
				},
				ArgsUsage: "SNAPSHOT",
				CustomHelpTemplate: fmt.Sprintf(`%s
SNAPSHOT:
    HTML snapshot of rendered pages; element geometry is taken from inline
    styles (left, top, width, height), position ranges from data-pm-start and
    data-pm-end attributes
`, cli.CommandHelpTemplate),
			},
			{
				Name:  "dumpconfig",
				Usage: "Dumps either default or actual configuration (YAML)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
				OnUsageError: usageErrorHandler,
				Action:       outputConfiguration,
				ArgsUsage:    "DESTINATION",
				CustomHelpTemplate: fmt.Sprintf(`%s

DESTINATION:
    file name to write configuration to, if absent - STDOUT

Produces file with actual "active" configuration values which is composition of
default values and values specified in configuration file. To see default
configuration embedded into the program use --default flag.
`, cli.CommandHelpTemplate),
			},
		},
	}

	var err error
	// os.Exit is called at the end of main, no deferred functions after this one
	defer func() {
		stop()
		if err != nil {
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = app.Run(ctx, os.Args)
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	fname := cmd.Args().Get(0)

	var (
		err  error
		data []byte
		kind string
	)

	out := os.Stdout
	if len(fname) > 0 {
		if out, err = os.Create(fname); err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
		}
		defer out.Close()
	}

	if cmd.Bool("default") {
		kind = "default"
		data, err = config.Prepare()
	} else {
		kind = "actual"
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	if len(fname) == 0 {
		fname = "STDOUT"
	}
	env.Log.Info("Outputting configuration", zap.String("state", kind), zap.String("file", fname))

	if _, err = out.Write(data); err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}
