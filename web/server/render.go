package server

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/df07/go-weekend-raytracer/pkg/config"
	"github.com/df07/go-weekend-raytracer/pkg/output"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

// Request bounds for interactive renders
const (
	maxWebResolution = 1920
	maxWebSamples    = 1000
	maxWebDepth      = 100
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene     string
	Width     int
	Height    int
	Samples   int
	MaxDepth  int
	Seed      int64 // 0 = fresh entropy
	Thumbnail int   // Maximum response width, 0 = full size
	Upload    bool
}

// handleRender renders a scene and responds with a PNG image
func (s *Server) handleRender(c echo.Context) error {
	req, err := s.parseRenderRequest(c.QueryParams())
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if req.Upload && s.uploader == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "uploads are not configured"})
	}

	sc, err := scene.Create(req.Scene, scene.Options{
		Width:          req.Width,
		Height:         req.Height,
		Seed:           s.config.Seed,
		TexturePath:    s.config.TexturePath,
		MaxTextureSize: uint(s.config.MaxTexture),
	})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, scene.ErrUnknownScene) || errors.Is(err, scene.ErrMissingTexture) {
			status = http.StatusBadRequest
		}
		return c.JSON(status, map[string]string{"error": err.Error()})
	}

	options := renderer.Options{
		NumSamples: req.Samples,
		MaxDepth:   req.MaxDepth,
		NumWorkers: s.config.Workers,
		Logger:     logger,
	}
	if req.Seed != 0 {
		options.SamplerFactory = renderer.SeededSamplerFactory(req.Seed)
	}

	buf, stats := renderer.NewRenderer(options).RenderWithStats(sc.Camera, sc.World)
	logger.Infof("Rendered %s %dx%d with %d samples in %v", req.Scene, req.Width, req.Height, req.Samples, stats.Duration)

	img := output.Thumbnail(renderer.ToImage(buf, req.Width, req.Height), uint(req.Thumbnail))
	var data bytes.Buffer
	if err := png.Encode(&data, img); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}

	c.Response().Header().Set("X-Render-Duration-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	c.Response().Header().Set("X-Render-Samples", strconv.Itoa(stats.TotalSamples))

	if req.Upload {
		key, err := s.uploader.UploadRender(c.Request().Context(), req.Scene, "png", buf, req.Width, req.Height)
		if err != nil {
			logger.Errorf("Upload failed: %v", err)
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		c.Response().Header().Set("X-Object-Key", key)
	}

	return c.Blob(http.StatusOK, "image/png", data.Bytes())
}

// parseRenderRequest parses render parameters from the query string, using the
// server configuration for anything omitted
func (s *Server) parseRenderRequest(values url.Values) (*RenderRequest, error) {
	req := &RenderRequest{Scene: s.config.Scene}
	if name := values.Get("scene"); name != "" {
		req.Scene = name
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", clamp(s.config.Width, 1, maxWebResolution), 1, maxWebResolution); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(values, "height", clamp(s.config.Height, 1, maxWebResolution), 1, maxWebResolution); err != nil {
		return nil, err
	}
	if req.Samples, err = parseIntParam(values, "samples", clamp(s.config.Samples, 1, maxWebSamples), 1, maxWebSamples); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(values, "depth", clamp(s.config.MaxDepth, 0, maxWebDepth), 0, maxWebDepth); err != nil {
		return nil, err
	}
	if req.Thumbnail, err = parseIntParam(values, "thumb", 0, 0, maxWebResolution); err != nil {
		return nil, err
	}

	if value := values.Get("seed"); value != "" {
		if req.Seed, err = strconv.ParseInt(value, 10, 64); err != nil {
			return nil, fmt.Errorf("%w: invalid seed: %s", config.ErrInvalidConfig, value)
		}
	}
	if value := values.Get("upload"); value != "" {
		if req.Upload, err = strconv.ParseBool(value); err != nil {
			return nil, fmt.Errorf("%w: invalid upload: %s", config.ErrInvalidConfig, value)
		}
	}

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("%w: invalid %s: %s", config.ErrInvalidConfig, key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%w: %s must be between %d and %d, got: %d", config.ErrInvalidConfig, key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
