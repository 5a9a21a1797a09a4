package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/grindlemire/layout-showcase/internal/app"
	"github.com/grindlemire/layout-showcase/internal/config"
	"github.com/grindlemire/layout-showcase/internal/debug"
	"github.com/grindlemire/layout-showcase/internal/showcase"
	"github.com/grindlemire/layout-showcase/internal/tui"
)

type cliRoot struct {
	font         string
	configPath   string
	tracks       string
	dump         bool
	width        int
	height       int
	plain        bool
	strictAssets bool
	logPath      string
	logLevel     string

	// isTerminal reports whether output goes to a terminal; dumping is
	// forced when it does not.
	isTerminal func() bool
}

func newCLIRoot() *cliRoot {
	return &cliRoot{
		isTerminal: func() bool { return tui.IsTerminal(os.Stdout) },
	}
}

func (cli *cliRoot) NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "showcase",
		Short: "Show every AlignItems x JustifyContent pairing",
		Long: `Renders a grid with one cell per alignment/justification pairing.
Each cell is a column flex container using that pairing and holds two
labels naming it. Press q, Esc or Ctrl+C to quit.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		RunE:              cli.run,
	}

	flags := cmd.Flags()
	flags.StringVar(&cli.font, "font", config.DefaultFontPath, "font file loaded at startup")
	flags.StringVarP(&cli.configPath, "config", "c", "", "HCL config file")
	flags.StringVar(&cli.tracks, "tracks", showcase.TracksRepeated.String(), "grid track list construction: repeated or explicit")
	flags.BoolVar(&cli.dump, "dump", false, "print a single frame to stdout and exit")
	flags.IntVar(&cli.width, "width", 0, "dump width in cells (0 = natural size)")
	flags.IntVar(&cli.height, "height", 0, "dump height in cells (0 = natural size)")
	flags.BoolVar(&cli.plain, "plain", false, "dump without colors")
	flags.BoolVar(&cli.strictAssets, "strict-assets", false, "fail if the font cannot be loaded")
	flags.StringVar(&cli.logPath, "log", "", "debug log file (default $"+debug.EnvVar+")")
	flags.StringVar(&cli.logLevel, "log-level", "debug", "debug log level")

	cmd.AddCommand(newCLIVersion().NewCommand())
	return cmd
}

// loadConfig reads the config file, if any, and applies flags the user set
// explicitly on top of it.
func (cli *cliRoot) loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if cli.configPath != "" {
		var err error
		if cfg, err = config.Load(cli.configPath); err != nil {
			return config.Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("font") {
		cfg.Font = cli.font
	}
	if flags.Changed("tracks") {
		tracks, err := showcase.ParseTracks(cli.tracks)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Tracks = tracks
	}
	return cfg, nil
}

func (cli *cliRoot) run(cmd *cobra.Command, _ []string) error {
	if err := debug.Init(cli.logPath, cli.logLevel); err != nil {
		return err
	}
	defer debug.Close()
	log := debug.Logger()

	cfg, err := cli.loadConfig(cmd)
	if err != nil {
		return err
	}
	log.WithField("font", cfg.Font).WithField("tracks", cfg.Tracks).Debug("configuration loaded")

	builder := &showcase.Builder{Theme: cfg.Theme, Tracks: cfg.Tracks}
	a, err := app.New(
		app.WithLogger(log),
		app.WithFont(cfg.Font),
		app.WithStrictAssets(cli.strictAssets),
		app.WithStartupSystem(func(sc *app.StartupContext) {
			s := builder.Spawn(sc.World, sc.Font)
			sc.Log.WithField("cells", len(s.Cells)).Debug("showcase spawned")
		}),
	)
	if err != nil {
		return err
	}

	if cli.dump || !cli.isTerminal() {
		return cli.dumpFrame(cmd, a)
	}
	return a.Run(cmd.Context())
}

func (cli *cliRoot) dumpFrame(cmd *cobra.Command, a *app.App) error {
	buf, err := a.Snapshot(cmd.Context(), cli.width, cli.height)
	if err != nil {
		return err
	}

	out := buf.String()
	if !cli.plain {
		out = buf.ANSI(tui.DetectCapabilities())
	}
	if _, err := io.WriteString(cmd.OutOrStdout(), out); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}

	debug.Logger().WithField("entities", a.World().Len()).Debug("frame dumped")
	return nil
}
