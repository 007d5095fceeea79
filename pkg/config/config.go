package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Limits on render requests
const (
	MaxResolution = 8192
	MaxDepthLimit = 1000
)

// S3Config holds object storage settings for uploading renders
type S3Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	Prefix    string
}

// Enabled reports whether uploads are configured
func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

// Validate checks the settings required for an upload
func (c S3Config) Validate() error {
	if c.Bucket == "" {
		return fmt.Errorf("%w: s3 bucket is required", ErrInvalidConfig)
	}
	if c.Region == "" {
		return fmt.Errorf("%w: s3 region is required", ErrInvalidConfig)
	}
	if (c.AccessKey == "") != (c.SecretKey == "") {
		return fmt.Errorf("%w: s3 access key and secret key must be set together", ErrInvalidConfig)
	}
	return nil
}

// Config is the runtime configuration shared by the CLI and the web server
type Config struct {
	Scene       string
	Width       int
	Height      int
	Samples     int
	MaxDepth    int
	Workers     int // 0 = one per CPU
	Output      string
	Thumbnail   int   // Thumbnail width in pixels, 0 = none
	Seed        int64 // 0 = fresh entropy per render
	TexturePath string
	MaxTexture  int // Longest side of loaded textures, 0 = keep full size
	LogLevel    string
	ListenAddr  string
	S3          S3Config
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Scene:      "random",
		Width:      400,
		Height:     225,
		Samples:    100,
		MaxDepth:   50,
		Output:     "output/render.png",
		MaxTexture: 2048,
		LogLevel:   "notice",
		ListenAddr: ":8080",
		S3: S3Config{
			Region: "us-east-1",
			Prefix: "renders",
		},
	}
}

// Load reads an optional .env file, then overrides defaults with RTW_* environment variables.
// A missing env file is not an error; variables already set in the environment win over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	cfg := Default()
	var err error

	cfg.Scene = getEnv("RTW_SCENE", cfg.Scene)
	cfg.Output = getEnv("RTW_OUTPUT", cfg.Output)
	cfg.TexturePath = getEnv("RTW_TEXTURE_PATH", cfg.TexturePath)
	cfg.LogLevel = getEnv("RTW_LOG_LEVEL", cfg.LogLevel)
	cfg.ListenAddr = getEnv("RTW_LISTEN_ADDR", cfg.ListenAddr)

	if cfg.Width, err = getEnvInt("RTW_WIDTH", cfg.Width); err != nil {
		return Config{}, err
	}
	if cfg.Height, err = getEnvInt("RTW_HEIGHT", cfg.Height); err != nil {
		return Config{}, err
	}
	if cfg.Samples, err = getEnvInt("RTW_SAMPLES", cfg.Samples); err != nil {
		return Config{}, err
	}
	if cfg.MaxDepth, err = getEnvInt("RTW_MAX_DEPTH", cfg.MaxDepth); err != nil {
		return Config{}, err
	}
	if cfg.Workers, err = getEnvInt("RTW_WORKERS", cfg.Workers); err != nil {
		return Config{}, err
	}
	if cfg.Thumbnail, err = getEnvInt("RTW_THUMBNAIL", cfg.Thumbnail); err != nil {
		return Config{}, err
	}
	if cfg.MaxTexture, err = getEnvInt("RTW_MAX_TEXTURE_SIZE", cfg.MaxTexture); err != nil {
		return Config{}, err
	}
	seed, err := getEnvInt("RTW_SEED", int(cfg.Seed))
	if err != nil {
		return Config{}, err
	}
	cfg.Seed = int64(seed)

	cfg.S3 = S3Config{
		Endpoint:  getEnv("RTW_S3_ENDPOINT", cfg.S3.Endpoint),
		Region:    getEnv("RTW_S3_REGION", cfg.S3.Region),
		Bucket:    getEnv("RTW_S3_BUCKET", cfg.S3.Bucket),
		AccessKey: getEnv("RTW_S3_ACCESS_KEY", cfg.S3.AccessKey),
		SecretKey: getEnv("RTW_S3_SECRET_KEY", cfg.S3.SecretKey),
		Prefix:    getEnv("RTW_S3_PREFIX", cfg.S3.Prefix),
	}

	return cfg, nil
}

// Validate checks the render settings
func (c Config) Validate() error {
	if c.Scene == "" {
		return fmt.Errorf("%w: scene is required", ErrInvalidConfig)
	}
	if c.Width < 1 || c.Width > MaxResolution || c.Height < 1 || c.Height > MaxResolution {
		return fmt.Errorf("%w: resolution %dx%d outside 1..%d", ErrInvalidConfig, c.Width, c.Height, MaxResolution)
	}
	if c.Samples < 1 {
		return fmt.Errorf("%w: samples must be at least 1, got %d", ErrInvalidConfig, c.Samples)
	}
	if c.MaxDepth < 0 || c.MaxDepth > MaxDepthLimit {
		return fmt.Errorf("%w: max depth %d outside 0..%d", ErrInvalidConfig, c.MaxDepth, MaxDepthLimit)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.Thumbnail < 0 {
		return fmt.Errorf("%w: thumbnail width must not be negative, got %d", ErrInvalidConfig, c.Thumbnail)
	}
	if c.MaxTexture < 0 {
		return fmt.Errorf("%w: max texture size must not be negative, got %d", ErrInvalidConfig, c.MaxTexture)
	}
	return nil
}

// getEnv returns the environment variable or a fallback
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, key, value)
	}
	return parsed, nil
}
