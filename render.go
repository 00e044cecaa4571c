package main

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-interactive-pathtracer/pkg/renderer"
	"github.com/df07/go-interactive-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// passStat records the progress of one logged pass
type passStat struct {
	samples  int
	passTime time.Duration
	total    time.Duration
}

// RenderFrame renders a still frame of a built-in scene.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := scene.Load(ctx.String("scene"), scene.Options{
		Seed:       ctx.Uint64("seed"),
		TextureDir: ctx.String("textures"),
	})
	if err != nil {
		return err
	}

	config := sc.RendererConfig()
	if w := ctx.Int("width"); w > 0 {
		config.Width = w
	}
	if h := ctx.Int("height"); h > 0 {
		config.Height = h
	}
	if d := ctx.Int("depth"); d > 0 {
		config.MaxDepth = d
	}
	config.Exposure = float32(ctx.Float64("exposure"))
	config.NumWorkers = ctx.Int("workers")

	spp := sc.SamplingConfig.SamplesPerPixel
	if n := ctx.Int("spp"); n > 0 {
		spp = n
	}

	logger.Infof("host: %s", renderer.HostSummary())

	cam, err := renderer.NewCamera(config)
	if err != nil {
		return err
	}
	defer cam.Close()

	if err := cam.SetWorld(sc.World); err != nil {
		return err
	}

	logger.Noticef("rendering %q at %dx%d with %d samples per pixel", ctx.String("scene"), config.Width, config.Height, spp)
	var stats []passStat
	for pass := 1; pass <= spp; pass++ {
		cam.Render()
		// Log on powers of two and on the last pass
		if pass&(pass-1) == 0 || pass == spp {
			s := cam.Stats()
			stats = append(stats, passStat{samples: s.Samples, passTime: s.PassTime, total: s.TotalTime})
			logger.Infof("pass %d/%d in %v", pass, spp, s.PassTime)
		}
	}

	if err := writePNG(ctx.String("out"), cam); err != nil {
		return err
	}
	if hdr := ctx.String("hdr"); hdr != "" {
		if err := writeHDR(hdr, cam); err != nil {
			return err
		}
	}

	displayFrameStats(cam.Stats(), stats, renderer.AverageLuminance(cam.HDR()))
	return nil
}

func writePNG(path string, cam *renderer.Camera) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, cam.Image()); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	logger.Noticef("saved %s", path)
	return nil
}

func writeHDR(path string, cam *renderer.Camera) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating hdr file: %w", err)
	}
	defer f.Close()

	width, height := cam.Size()
	if err := renderer.WritePFM(f, width, height, cam.HDR()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	logger.Noticef("saved %s", path)
	return nil
}

func displayFrameStats(final renderer.RenderStats, passes []passStat, luminance float32) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Samples", "Pass time", "Elapsed"})
	for _, p := range passes {
		table.Append([]string{
			fmt.Sprintf("%d", p.samples),
			p.passTime.String(),
			p.total.String(),
		})
	}
	table.SetFooter([]string{
		fmt.Sprintf("%d workers", final.Workers),
		fmt.Sprintf("%.0f samples/s", final.SamplesPerSecond()),
		fmt.Sprintf("avg lum %.3f", luminance),
	})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}

// ListScenes prints the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"ID", "Name", "Description"})
	for _, info := range scene.ListScenes() {
		table.Append([]string{info.ID, info.Name, info.Description})
	}
	table.Render()
	return nil
}
