package main

import (
	"os"

	"github.com/df07/go-interactive-pathtracer/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("pathtracer")

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "pathtracer"
	app.Usage = "render scenes with a progressive path tracer"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene to an image",
			Description: `
Render a built-in scene progressively, one sample per pixel per pass, and save
the converged image as PNG. The averaged linear radiance can also be written as
a Portable Float Map for further processing.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "cornell-box",
					Usage: "scene id, see the scenes command",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "image width, 0 keeps the scene default",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "image height, 0 keeps the scene default",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel, 0 keeps the scene default",
				},
				cli.IntFlag{
					Name:  "depth",
					Usage: "maximum bounces per path, 0 keeps the scene default",
				},
				cli.Float64Flag{
					Name:  "exposure",
					Value: 0,
					Usage: "camera exposure for tone-mapping, 0 for gamma only",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "number of render workers, 0 for one per physical core",
				},
				cli.Uint64Flag{
					Name:  "seed",
					Value: 0,
					Usage: "seed for randomly generated scenes",
				},
				cli.StringFlag{
					Name:  "textures",
					Usage: "directory containing image textures",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
				cli.StringFlag{
					Name:  "hdr",
					Usage: "optional filename for a PFM copy of the linear radiance",
				},
			},
			Action: RenderFrame,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: ListScenes,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
