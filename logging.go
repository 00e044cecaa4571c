package main

import (
	"github.com/df07/go-interactive-pathtracer/pkg/log"
	"github.com/urfave/cli"
)

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
