package cmd

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-weekend-raytracer/pkg/config"
	"github.com/df07/go-weekend-raytracer/pkg/output"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

// RenderScene renders a single frame and writes it to disk.
func RenderScene(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	applyRenderFlags(ctx, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	var uploader *output.S3Uploader
	if ctx.Bool("upload") {
		if uploader, err = output.NewS3Uploader(cfg.S3); err != nil {
			return err
		}
	}

	sc, err := scene.Create(cfg.Scene, scene.Options{
		Width:          cfg.Width,
		Height:         cfg.Height,
		Seed:           cfg.Seed,
		TexturePath:    cfg.TexturePath,
		MaxTextureSize: uint(cfg.MaxTexture),
	})
	if err != nil {
		return err
	}

	options := renderer.Options{
		NumSamples: cfg.Samples,
		MaxDepth:   cfg.MaxDepth,
		NumWorkers: cfg.Workers,
		Logger:     logger,
		Progress:   progressLogger(cfg.Height),
	}
	if cfg.Seed != 0 {
		options.SamplerFactory = renderer.SeededSamplerFactory(cfg.Seed)
	}

	logger.Noticef("rendering %s at %dx%d, %d spp", cfg.Scene, cfg.Width, cfg.Height, cfg.Samples)
	buf, stats := renderer.NewRenderer(options).RenderWithStats(sc.Camera, sc.World)

	if err := output.WriteFile(cfg.Output, buf, cfg.Width, cfg.Height); err != nil {
		return err
	}
	logger.Noticef("wrote frame to %s", cfg.Output)

	if cfg.Thumbnail > 0 {
		thumbPath := output.ThumbnailPath(cfg.Output)
		thumb := output.Thumbnail(renderer.ToImage(buf, cfg.Width, cfg.Height), uint(cfg.Thumbnail))
		if err := output.WriteImage(thumbPath, thumb); err != nil {
			return err
		}
		logger.Noticef("wrote thumbnail to %s", thumbPath)
	}

	if uploader != nil {
		uploadCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		key, err := uploader.UploadRender(uploadCtx, cfg.Scene, filepath.Ext(cfg.Output), buf, cfg.Width, cfg.Height)
		if err != nil {
			return err
		}
		logger.Noticef("uploaded frame to s3://%s/%s", cfg.S3.Bucket, key)
	}

	displayRenderStats(cfg, stats)
	return nil
}

// applyRenderFlags overrides loaded settings with explicitly set flags
func applyRenderFlags(ctx *cli.Context, cfg *config.Config) {
	if ctx.IsSet("scene") {
		cfg.Scene = ctx.String("scene")
	}
	if ctx.IsSet("width") {
		cfg.Width = ctx.Int("width")
	}
	if ctx.IsSet("height") {
		cfg.Height = ctx.Int("height")
	}
	if ctx.IsSet("spp") {
		cfg.Samples = ctx.Int("spp")
	}
	if ctx.IsSet("depth") {
		cfg.MaxDepth = ctx.Int("depth")
	}
	if ctx.IsSet("workers") {
		cfg.Workers = ctx.Int("workers")
	}
	if ctx.IsSet("seed") {
		cfg.Seed = ctx.Int64("seed")
	}
	if ctx.IsSet("out") {
		cfg.Output = ctx.String("out")
	}
	if ctx.IsSet("thumbnail") {
		cfg.Thumbnail = ctx.Int("thumbnail")
	}
	if ctx.IsSet("texture") {
		cfg.TexturePath = ctx.String("texture")
	}
	if ctx.IsSet("texture-max") {
		cfg.MaxTexture = ctx.Int("texture-max")
	}
}

// progressLogger reports roughly every tenth of the frame
func progressLogger(totalRows int) renderer.ProgressFunc {
	step := totalRows / 10
	if step < 1 {
		step = 1
	}
	return func(rowsDone, total int) {
		if rowsDone%step == 0 || rowsDone == total {
			logger.Infof("%3d%% (%d/%d rows)", rowsDone*100/total, rowsDone, total)
		}
	}
}

func displayRenderStats(cfg config.Config, stats renderer.RenderStats) {
	host := readHostInfo()

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"Scene", "Resolution", "Samples", "Workers", "Samples/sec", "Render time"})
	table.Append([]string{
		cfg.Scene,
		fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%d", stats.Workers),
		fmt.Sprintf("%.0f", stats.SamplesPerSecond()),
		stats.Duration.Round(time.Millisecond).String(),
	})
	table.SetFooter([]string{host.CPU, fmt.Sprintf("%d cores", host.Cores), "", "", "RAM", host.Memory})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
