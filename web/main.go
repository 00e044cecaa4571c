package main

import (
	"os"

	"github.com/df07/go-interactive-pathtracer/pkg/log"
	"github.com/df07/go-interactive-pathtracer/pkg/scene"
	"github.com/df07/go-interactive-pathtracer/web/server"
	"github.com/urfave/cli"
)

var logger = log.New("web")

func main() {
	app := cli.NewApp()
	app.Name = "pathtracer-web"
	app.Usage = "serve progressive and interactive renders over HTTP"
	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "port, p",
			Value: 8080,
			Usage: "port to serve on",
		},
		cli.StringFlag{
			Name:  "textures",
			Usage: "directory containing image textures",
		},
		cli.Uint64Flag{
			Name:  "seed",
			Usage: "seed for randomly generated scenes",
		},
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
	}
	app.Action = func(ctx *cli.Context) error {
		if ctx.Bool("v") {
			log.SetLevel(log.Info)
		}

		webServer := server.NewServer(ctx.Int("port"), scene.Options{
			Seed:       ctx.Uint64("seed"),
			TextureDir: ctx.String("textures"),
		})
		defer webServer.Close()

		logger.Noticef("visit http://localhost:%d/api/scenes to get started", ctx.Int("port"))
		return webServer.Start()
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
