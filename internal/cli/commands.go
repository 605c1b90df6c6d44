package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/geometry-visualization/internal/anim"
	"github.com/iburimskiy/geometry-visualization/internal/config"
	"github.com/iburimskiy/geometry-visualization/internal/logging"
	"github.com/iburimskiy/geometry-visualization/internal/preview"
	"github.com/iburimskiy/geometry-visualization/internal/progress"
	"github.com/iburimskiy/geometry-visualization/internal/render"
	"github.com/iburimskiy/geometry-visualization/internal/scenes"
)

var (
	nameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true)
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available scenes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, e := range scenes.All() {
				sc, err := e.Builder(config.WindowWidth, config.WindowHeight)()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s %s %s\n",
					nameStyle.Render(fmt.Sprintf("%-20s", e.Name)),
					dimStyle.Render(fmt.Sprintf("%5.1fs", sc.Duration())),
					e.Title)
			}
			return nil
		},
	}
}

func newRenderCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:               "render <scene|all>",
		Short:             "Render scenes to PNG frame sequences",
		Long:              "Render writes every frame of a scene to <output>/<scene>/frame_NNNNN.png.",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: sceneArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := entries(args[0])
			if err != nil {
				return err
			}
			for _, e := range list {
				if err := a.renderScene(cmd, e); err != nil {
					return fmt.Errorf("render %s: %w", e.Name, err)
				}
			}
			return nil
		},
	}
}

func (a *app) renderScene(cmd *cobra.Command, e scenes.Entry) error {
	p, err := anim.NewPlayer(e.Builder(a.cfg.Width, a.cfg.Height), a.cfg.FPS)
	if err != nil {
		return err
	}
	r, err := render.New(a.cfg.Width, a.cfg.Height)
	if err != nil {
		return err
	}
	defer r.Close()
	sink, err := render.NewPNGSequence(filepath.Join(a.cfg.OutputDir, e.Name))
	if err != nil {
		return err
	}
	err = progress.Run(cmd.Context(), e.Title, cmd.ErrOrStderr(), a.interactive(cmd),
		func(ctx context.Context, report func(done, total int)) error {
			return render.RenderScene(ctx, p, r, sink, report)
		})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d frames in %s\n", e.Name, p.FrameCount(), sink.Dir)
	return nil
}

func newStillCmd(a *app) *cobra.Command {
	var at float64
	cmd := &cobra.Command{
		Use:               "still <scene>",
		Short:             "Render one frame as PNG or SVG",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: sceneArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := scenes.Lookup(args[0])
			if err != nil {
				return err
			}
			path, err := a.still(e, at)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().Float64Var(&at, "at", 0, "timeline position in seconds (negative counts from the end)")
	cmd.Flags().String(config.KeyFormat, "png", "still format: png or svg")
	bindFlags(a.v, cmd.Flags(), config.KeyFormat)
	return cmd
}

// still writes the frame at t seconds and returns its path.
func (a *app) still(e scenes.Entry, t float64) (string, error) {
	p, err := anim.NewPlayer(e.Builder(a.cfg.Width, a.cfg.Height), a.cfg.FPS)
	if err != nil {
		return "", err
	}
	if t < 0 {
		t += p.Duration()
	}
	if err := p.Seek(t); err != nil {
		return "", err
	}
	if err := os.MkdirAll(a.cfg.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("still: create output dir: %w", err)
	}
	path := filepath.Join(a.cfg.OutputDir, fmt.Sprintf("%s_%06.2fs.%s", e.Name, p.Time(), a.cfg.Format))
	log := logging.Logger().With("scene", e.Name, "t", p.Time(), "path", path)

	if a.cfg.Format == "svg" {
		f, err := os.Create(path)
		if err != nil {
			return "", fmt.Errorf("still: %w", err)
		}
		if err := errors.Join(render.WriteSVG(f, p.Scene()), f.Close()); err != nil {
			return "", fmt.Errorf("still: %w", err)
		}
		log.Info("still written")
		return path, nil
	}

	r, err := render.New(a.cfg.Width, a.cfg.Height)
	if err != nil {
		return "", err
	}
	defer r.Close()
	if err := r.Draw(p.Scene()); err != nil {
		return "", err
	}
	if err := r.Context().SavePNG(path); err != nil {
		return "", fmt.Errorf("still: %w", err)
	}
	log.Info("still written")
	return path, nil
}

func newPreviewCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "preview <scene>",
		Short:             "Play a scene in a window",
		Long:              "Preview plays a scene in real time. Space pauses, R restarts, the arrow keys seek, O opens a voiceover, S saves the frame.",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: sceneArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := scenes.Lookup(args[0])
			if err != nil {
				return err
			}
			return preview.Run(e.Builder(a.cfg.Width, a.cfg.Height), preview.Options{
				Title:     e.Title,
				Width:     a.cfg.Width,
				Height:    a.cfg.Height,
				FPS:       a.cfg.FPS,
				Voiceover: a.cfg.Voiceover,
			})
		},
	}
	cmd.Flags().String(config.KeyVoiceover, "", "narration track to play along (wav, mp3, flac)")
	bindFlags(a.v, cmd.Flags(), config.KeyVoiceover)
	return cmd
}
