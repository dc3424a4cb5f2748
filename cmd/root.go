package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/josephlewis42/myshell/core/config"
	"github.com/josephlewis42/myshell/core/logger"
	"github.com/josephlewis42/myshell/core/shell"
	"github.com/josephlewis42/myshell/core/vos"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	cfgPath      string
	debug        bool
	eventLogPath string
)

func loadConfig(fsys afero.Fs) (*config.Configuration, error) {
	var configuration *config.Configuration
	if cfgPath == "" {
		configuration = config.Default(fsys, ".")
	} else {
		var err error
		configuration, err = config.Load(fsys, cfgPath)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("couldn't load config, did you run init? %w", err)
		}
		if err != nil {
			return nil, err
		}
	}

	if err := configuration.ApplyEnv(); err != nil {
		return nil, err
	}
	if eventLogPath != "" {
		configuration.EventLog = eventLogPath
	}
	if debug {
		configuration.Debug = true
	}

	return configuration, configuration.Validate()
}

// openEvents opens the configured event log. The returned closer is never
// nil.
func openEvents(cfg *config.Configuration) (*logger.SessionLogger, io.Closer, error) {
	if cfg.EventLogPath() == "" {
		return logger.NewNopLogger().Sessionless(), io.NopCloser(nil), nil
	}

	fd, err := cfg.OpenEventLog()
	if err != nil {
		return nil, nil, fmt.Errorf("opening event log: %w", err)
	}
	return logger.NewJsonLinesLogRecorder(fd).NewSession(), fd, nil
}

// rootCmd runs the interactive shell when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "myshell",
	Short: "A minimal interactive command interpreter",
	Long: `Reads one command per line, runs the cd, help and exit builtins itself
and launches anything else as a program, waiting for it to finish.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig(afero.NewOsFs())
		if err != nil {
			return err
		}

		ctx, flushLog := logger.NewContextWithLogger(cmd.Context(), cmd.ErrOrStderr(), cfg.Debug)
		defer flushLog()

		events, eventsCloser, err := openEvents(cfg)
		if err != nil {
			return err
		}
		defer eventsCloser.Close()

		stdout := cmd.OutOrStdout()
		virtualOS := vos.NewHostOS(vos.NewVIOAdapter(cmd.InOrStdin(), stdout, cmd.ErrOrStderr()))

		sh := shell.New(virtualOS, shell.Options{
			Name:           cfg.Name,
			FallbackPrompt: cfg.FallbackPrompt,
			ColorPrompt:    cfg.ColorPrompt && vos.IsTerminal(stdout),
			Events:         events,
		})

		logger.FromCtx(ctx).Debug().Str("config_dir", cfg.Dir()).Msg("starting shell")
		sh.Run(ctx)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config directory or config.yaml path, defaults to the built-in config")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "write debug logs to stderr")
	rootCmd.Flags().StringVar(&eventLogPath, "event-log", "", "append a JSON line per command to this file")
}
