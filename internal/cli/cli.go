// Package cli wires the scenes, renderer and preview into the sacredgeo
// command.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/iburimskiy/geometry-visualization/internal/config"
	"github.com/iburimskiy/geometry-visualization/internal/logging"
	"github.com/iburimskiy/geometry-visualization/internal/progress"
	"github.com/iburimskiy/geometry-visualization/internal/scenes"
)

// app carries the configuration shared by every subcommand.
type app struct {
	v   *viper.Viper
	src config.Sources
	cfg config.Config
}

// NewRootCmd builds the command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	root := &cobra.Command{
		Use:           "sacredgeo",
		Short:         "Render sacred geometry animations",
		Long:          "sacredgeo renders animated sacred geometry scenes to PNG frame sequences, stills or a live preview window.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.src.ConfigFile, "config", "", "config file (default ./sacredgeo.yaml)")
	pf.StringVar(&a.src.EnvFile, "env-file", "", "dotenv file (default ./.env)")
	pf.String(config.KeyQuality, "medium", fmt.Sprintf("render preset %v", config.QualityNames()))
	pf.Int(config.KeyWidth, 0, "frame width in pixels (0 = preset)")
	pf.Int(config.KeyHeight, 0, "frame height in pixels (0 = preset)")
	pf.Int(config.KeyFPS, 0, "frames per second (0 = preset)")
	pf.StringP(config.KeyOutput, "o", "media", "output directory")
	pf.String(config.KeyLogLevel, "info", "log level: debug, info, warn, error")
	pf.String(config.KeyLogFormat, "text", "log format: text or json")
	pf.BoolP(config.KeyQuiet, "q", false, "no progress bar")
	bindFlags(a.v, pf, config.KeyQuality, config.KeyWidth, config.KeyHeight, config.KeyFPS,
		config.KeyOutput, config.KeyLogLevel, config.KeyLogFormat, config.KeyQuiet)

	root.AddCommand(
		newListCmd(),
		newRenderCmd(a),
		newStillCmd(a),
		newPreviewCmd(a),
	)
	return root
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet, keys ...string) {
	for _, k := range keys {
		// Lookup cannot fail for flags registered above.
		_ = v.BindPFlag(k, fs.Lookup(k))
	}
}

func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v, a.src)
	if err != nil {
		return err
	}
	if err := logging.Setup(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat); err != nil {
		return err
	}
	a.cfg = cfg
	logging.Logger().Debug("config loaded", "quality", cfg.Quality, "size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height), "fps", cfg.FPS)
	return nil
}

// interactive reports whether progress can be drawn as a bar on cmd's
// error stream.
func (a *app) interactive(cmd *cobra.Command) bool {
	if a.cfg.Quiet {
		return false
	}
	f, ok := cmd.ErrOrStderr().(*os.File)
	return ok && progress.Interactive(f)
}

// entries resolves a scene name, or every scene for "all".
func entries(name string) ([]scenes.Entry, error) {
	if name == "all" {
		return scenes.All(), nil
	}
	e, err := scenes.Lookup(name)
	if err != nil {
		return nil, err
	}
	return []scenes.Entry{e}, nil
}

func sceneArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return scenes.Names(), cobra.ShellCompDirectiveNoFileComp
}
