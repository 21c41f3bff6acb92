// Command render runs the path tracer to completion and writes a PNG, or
// (via the "watch" subcommand) renders progressively and writes a preview
// PNG after every pass until interrupted (Ctrl-C). Accepts a scene-file
// positional argument and no flags, per the renderer's external-interface
// contract.
package main

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/lumenforge/pathtracer/pkg/core"
	"github.com/lumenforge/pathtracer/pkg/integrator"
	"github.com/lumenforge/pathtracer/pkg/render"
	"github.com/lumenforge/pathtracer/pkg/scenes"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "render",
		Short: "Offline physically-based path tracer",
	}
	root.AddCommand(newRunCmd(), newWatchCmd())
	return root
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render <scene-file>",
		Short: "Render a scene to completion and write a PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScene(cmd.Context(), args[0], false)
		},
	}
}

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <scene-file>",
		Short: "Render progressively, writing a preview PNG after every pass until interrupted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScene(cmd.Context(), args[0], true)
		},
	}
}

func runScene(ctx context.Context, sceneFile string, watch bool) error {
	logger, err := core.NewZapLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	settings, err := render.LoadSettings(sceneFile)
	if err != nil {
		return err
	}

	scene := scenes.Cornell()
	pt := integrator.NewPathTracer(scene, settings.MaxDepth)
	camera := render.NewCamera(
		core.NewVec3(278, 278, -800),
		core.NewVec3(278, 278, 0),
		core.NewVec3(0, 1, 0),
		settings.FovXDegrees*math.Pi/180,
		float64(settings.Width)/float64(settings.Height),
	)

	driver := render.NewDriver(settings, func(px, py, w, h int, rng *rand.Rand) core.Vec3 {
		ray := camera.Ray(px, py, w, h, rng)
		return pt.Li(ray, rng)
	}, logger)

	runCtx := ctx
	onPass := func(pass int, elapsed time.Duration) {
		logger.Printf("completed pass %d/%d (%s)", pass, settings.MaxPasses, elapsed)
	}
	if watch {
		var cancel context.CancelFunc
		runCtx, cancel = signal.NotifyContext(ctx, os.Interrupt)
		defer cancel()
		onPass = func(pass int, elapsed time.Duration) {
			logger.Printf("completed pass %d/%d (%s)", pass, settings.MaxPasses, elapsed)
			if err := writeImage(driver.Image.ToLinearRGB8(), "render.png"); err != nil {
				logger.Printf("failed to write preview after pass %d: %v", pass, err)
			}
		}
	}

	err = driver.Run(runCtx, onPass)
	if err != nil && err != context.Canceled {
		return err
	}

	return writeImage(driver.Image.ToLinearRGB8(), "render.png")
}

func writeImage(img image.Image, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	return png.Encode(out, img)
}
