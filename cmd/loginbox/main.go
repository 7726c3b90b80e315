package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"loginbox/internal/config"
	"loginbox/internal/logging"
	"loginbox/internal/trace"
	"loginbox/internal/ui"
)

// options holds the parsed CLI flags shared by every command.
type options struct {
	configPath  string
	loggedIn    bool
	logFile     string
	verbose     bool
	noAltScreen bool
}

func newRootCmd() *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "loginbox",
		Short: "Toggle between logged-in and logged-out views of an unread mailbox",
		Long: `loginbox shows a greeting, a login or logout button and, once logged in,
the list of unread messages.

Keys: enter/space press the button, l logs in, o logs out, ? toggles help, q quits.
The button can also be clicked with the mouse.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.Context(), opts)
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML file with the unread messages (default $"+config.EnvConfigPath+")")
	rootCmd.PersistentFlags().BoolVar(&opts.loggedIn, "logged-in", false, "start in the logged-in state")
	rootCmd.Flags().StringVar(&opts.logFile, "log-file", "", "append JSON logs to this file (default $"+logging.EnvLogFile+")")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")
	rootCmd.Flags().BoolVar(&opts.noAltScreen, "no-alt-screen", false, "render inline instead of on the alternate screen")

	rootCmd.AddCommand(newRenderCmd(&opts))
	return rootCmd
}

func newRenderCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Print a single frame of the view and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return render(cmd.OutOrStdout(), *opts)
		},
	}
}

// newModel builds the root model from config and flags.
func newModel(opts options) (*ui.AppModel, error) {
	cfg, err := config.Load(config.ResolvePath(opts.configPath))
	if err != nil {
		return nil, err
	}
	model := ui.NewAppModel(cfg.Messages)
	model.LoggedIn = opts.loggedIn
	return model, nil
}

func render(w io.Writer, opts options) error {
	model, err := newModel(opts)
	if err != nil {
		return err
	}
	model.KeyHandler = nil
	_, err = fmt.Fprintln(w, model.AsTeaModel().View())
	return err
}

func runInteractive(ctx context.Context, opts options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	model, err := newModel(opts)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.ResolvePath(opts.logFile), opts.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	model.Logger = logger

	provider, err := trace.NewProvider(ctx)
	if err != nil {
		logger.Warn("tracing disabled", zap.Error(err))
		provider = trace.Disabled()
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			logger.Warn("trace shutdown", zap.Error(err))
		}
	}()
	model.Recorder = trace.NewSessionRecorder(provider)

	logger.Info("starting",
		zap.Int("messages", len(model.Messages)),
		zap.Bool("logged_in", model.LoggedIn),
		zap.Bool("tracing", provider.Enabled()),
	)

	progOpts := []tea.ProgramOption{tea.WithMouseCellMotion(), tea.WithContext(ctx)}
	if !opts.noAltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(model.AsTeaModel(), progOpts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "loginbox: %v\n", err)
		os.Exit(1)
	}
}
