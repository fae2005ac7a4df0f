package main

import (
	"fmt"
	"os"

	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/urfave/cli"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	// The default version flag also claims -v
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print the version",
	}

	app := cli.NewApp()
	app.Name = "pathtracer"
	app.Usage = "render sphere scenes with a stochastic path tracer"
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
			Usage: "render a scene",
			Description: `
Render a built-in scene or a JSON scene file. Camera and sampling flags left
unset keep the values recommended by the scene.

The image is written as a plain text PPM to stdout unless --out names a file.
A .png, .bmp or .tiff extension selects that format, and a trailing .zst, .gz
or .sz compresses the file.`,
			Flags:  renderFlags,
			Action: renderScene,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: listScenes,
		},
	}
	return app
}

// createScene loads sceneFile when set, otherwise the built-in scene called name
func createScene(name, sceneFile string) (*scene.Scene, error) {
	if sceneFile != "" {
		return scene.LoadFile(sceneFile)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: no scene given", scene.ErrUnknownScene)
	}
	return scene.Lookup(name)
}
