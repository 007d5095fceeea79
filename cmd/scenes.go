package cmd

import (
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

// ListScenes prints the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"Scene", "Texture", "Description"})
	for _, info := range scene.Describe() {
		texture := ""
		if info.NeedsTexture {
			texture = "required"
		}
		table.Append([]string{info.Name, texture, info.Description})
	}
	table.Render()
	return nil
}
