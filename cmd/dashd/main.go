package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/sandeepkv93/dashd/internal/chart"
	"github.com/sandeepkv93/dashd/internal/storage"
	"github.com/sandeepkv93/dashd/internal/store"
	"github.com/sandeepkv93/dashd/internal/update"
	"github.com/sandeepkv93/dashd/internal/views"
	"github.com/spf13/cobra"
)

var version = "dev"

type rootFlags struct {
	configPath string
	theme      string
	tab        string
	logFile    string
	logLevel   string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "dashd failed: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:           "dashd",
		Short:         "Terminal admin dashboard",
		Long:          `dashd is a themeable terminal admin dashboard with stats, a user table, a calendar and a kanban board.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			return runTUI(cmd.Context(), cfg)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "path to a TOML config file (env DASHD_CONFIG)")
	pf.StringVar(&flags.theme, "theme", "", "initial theme: light or dark")
	pf.StringVar(&flags.tab, "tab", "", "initial tab: dashboard, tables, calendar or kanban")
	pf.StringVar(&flags.logFile, "log-file", "", "write logfmt logs to this file")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(newChartCommand(flags))
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the dashd version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dashd %s\n", version)
		},
	})
	return root
}

func newChartCommand(flags *rootFlags) *cobra.Command {
	var raster bool
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Print the weekly chart draw commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			catalog, err := storage.OpenMemory()
			if err != nil {
				return fmt.Errorf("open catalog: %w", err)
			}
			defer catalog.Close()

			series, err := catalog.Series(cmd.Context(), storage.WeeklySeries)
			if err != nil {
				return fmt.Errorf("load %s series: %w", storage.WeeklySeries, err)
			}
			tk := views.TokensFor(cfg.Theme())
			cmds := chart.Render(series, string(tk.Ink))
			if raster {
				cols, rows := views.ChartSize(cfg.UI.Density)
				_, err = fmt.Fprintln(cmd.OutOrStdout(), views.RasterizeChart(cmds, cols, rows))
				return err
			}
			return writeChartCommands(cmd.OutOrStdout(), cmds)
		},
	}
	cmd.Flags().BoolVar(&raster, "raster", false, "draw the chart as terminal text instead")
	return cmd
}

// resolveConfig layers defaults, the TOML file, the environment and finally
// any flags set on the command line. A .env file in the working directory
// fills in variables that are not already set.
func resolveConfig(cmd *cobra.Command, flags *rootFlags) (update.RuntimeConfig, error) {
	_ = godotenv.Load()

	path := flags.configPath
	if path == "" {
		path = strings.TrimSpace(os.Getenv("DASHD_CONFIG"))
	}
	cfg, err := update.LoadRuntimeConfig(path, update.DefaultRuntimeConfig())
	if err != nil {
		return update.RuntimeConfig{}, err
	}
	cfg = update.RuntimeConfigFromEnv(cfg)

	fs := cmd.Flags()
	if fs.Changed("theme") {
		cfg.UI.Theme = flags.theme
	}
	if fs.Changed("tab") {
		cfg.UI.StartTab = flags.tab
	}
	if fs.Changed("log-file") {
		cfg.Log.File = flags.logFile
	}
	if fs.Changed("log-level") {
		cfg.Log.Level = flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return update.RuntimeConfig{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func runTUI(ctx context.Context, cfg update.RuntimeConfig) error {
	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Info("starting", "version", version, "theme", cfg.UI.Theme, "tab", cfg.UI.StartTab, "density", cfg.UI.Density)

	catalog, err := storage.OpenMemory()
	if err != nil {
		logger.Error("open catalog", "err", err)
		return fmt.Errorf("open catalog: %w", err)
	}
	defer catalog.Close()

	st, err := store.New(ctx, catalog,
		store.WithLogger(logger),
		store.WithTheme(cfg.Theme()),
		store.WithTab(cfg.StartTab()),
	)
	if err != nil {
		logger.Error("load store", "err", err)
		return err
	}
	dash, err := update.LoadDashboard(ctx, catalog)
	if err != nil {
		logger.Error("load dashboard", "err", err)
		return err
	}
	snap := st.Snapshot()
	logger.Info("catalog loaded", "tasks", len(snap.Tasks), "events", len(snap.Events), "users", len(snap.Users))

	m := update.NewModel(st,
		update.WithLogger(logger),
		update.WithDashboard(dash),
		update.WithDensity(cfg.UI.Density),
	)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		logger.Error("program exited", "err", err)
		return err
	}
	logger.Info("stopped")
	return nil
}

// newLogger discards output unless a log file is configured; the terminal
// belongs to the program.
func newLogger(cfg update.LogConfig) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}
	if strings.TrimSpace(cfg.File) == "" {
		logger := log.New(io.Discard)
		logger.SetLevel(level)
		return logger, func() {}, nil
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		Level:           level,
		Prefix:          "dashd",
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Formatter:       log.LogfmtFormatter,
	})
	return logger, func() { _ = f.Close() }, nil
}

func writeChartCommands(w io.Writer, cmds []chart.Command) error {
	for _, c := range cmds {
		var line string
		switch c.Op {
		case chart.OpClear:
			line = fmt.Sprintf("%s w=%d h=%d", c.Op, int(c.Width), int(c.Height))
		case chart.OpFillRect:
			line = fmt.Sprintf("%s x=%s y=%s w=%s h=%s color=%s", c.Op,
				chart.FormatValue(c.X), chart.FormatValue(c.Y), chart.FormatValue(c.Width), chart.FormatValue(c.Height), c.Color)
		case chart.OpFillText:
			line = fmt.Sprintf("%s x=%s y=%s color=%s font=%q align=%s text=%q", c.Op,
				chart.FormatValue(c.X), chart.FormatValue(c.Y), c.Color, c.Font, c.Align, c.Text)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
