package cmd

import (
	"github.com/urfave/cli"
)

// NewApp assembles the command line interface
func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "rtw"
	app.Usage = "render scenes with a Monte Carlo path tracer"
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
		cli.StringFlag{
			Name:  "env",
			Value: ".env",
			Usage: "optional file of RTW_* settings",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene to an image file",
			Description: `
Render one of the built-in scenes and write it as PNG or PPM, chosen by the
output extension. Flags override values from the environment and the env file.

A statistics table with host information is printed when the render completes.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Usage: "scene name (see the scenes command)",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "depth",
					Usage: "maximum bounces per path",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "worker goroutines, 0 = one per CPU",
				},
				cli.Int64Flag{
					Name:  "seed",
					Usage: "seed for scene layout and sampling, 0 = random sampling",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "image filename for the rendered frame (.png or .ppm)",
				},
				cli.IntFlag{
					Name:  "thumbnail",
					Usage: "also write a PNG thumbnail of this width",
				},
				cli.StringFlag{
					Name:  "texture",
					Usage: "image used by textured scenes",
				},
				cli.IntFlag{
					Name:  "texture-max",
					Usage: "downscale textures whose longest side exceeds this, 0 = full size",
				},
				cli.BoolFlag{
					Name:  "upload",
					Usage: "upload the result to the configured S3 bucket",
				},
			},
			Action: RenderScene,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: ListScenes,
		},
		{
			Name:  "serve",
			Usage: "start the HTTP render server",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "listen, l",
					Usage: "listen address, such as :8080",
				},
			},
			Action: Serve,
		},
	}
	return app
}
