package cli

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/fixen/internal/config"
	"github.com/example/fixen/internal/ctxutil"
	"github.com/example/fixen/internal/logger"
	"github.com/example/fixen/internal/version"
	"github.com/example/fixen/internal/wire"
)

// RootCmd returns the fixen command. Run without a subcommand it starts
// the interactive menu.
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "fixen",
		Short:   "fixENrequest - room inventory and maintenance requests",
		Version: version.String(),
		Long: `fixen lists the facility's rooms, searches them by number, type or
reported issue, and records maintenance requests for the session.

Settings come from FIXEN_* environment variables; flags override them.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		RunE:              runMenu,
	}

	flags := cmd.PersistentFlags()
	flags.Int("width", 110, "screen width in columns (env FIXEN_WIDTH)")
	flags.String("border", "*", "border character (env FIXEN_BORDER)")
	flags.Bool("no-color", false, "disable coloured issue status (env FIXEN_NO_COLOR)")
	flags.String("log-level", "warn", "log level: debug, info, warn, error (env FIXEN_LOG_LEVEL)")
	flags.String("log-format", "console", "log format: console or json (env FIXEN_LOG_FORMAT)")
	flags.String("operator", "operator", "name recorded in the audit log (env FIXEN_OPERATOR)")

	cmd.AddCommand(MenuCmd())
	cmd.AddCommand(RoomsCmd())

	return cmd
}

// setup loads the configuration, applies flag overrides and hands the
// result to the wiring before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	log = log.With(zap.String("session", uuid.NewString()))
	log.Debug("session starting",
		zap.Int("width", cfg.Width),
		zap.String("operator", cfg.Operator),
	)

	wire.Configure(cfg, log)
	cmd.SetContext(ctxutil.WithOperator(cmd.Context(), cfg.Operator))
	return nil
}

// applyFlags copies explicitly set flags over the environment values.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width, _ = flags.GetInt("width")
	}
	if flags.Changed("border") {
		cfg.Border, _ = flags.GetString("border")
	}
	if flags.Changed("no-color") {
		cfg.NoColor, _ = flags.GetBool("no-color")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.LogFormat, _ = flags.GetString("log-format")
	}
	if flags.Changed("operator") {
		cfg.Operator, _ = flags.GetString("operator")
	}
}
