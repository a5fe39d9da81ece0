package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const keyEnv = "ENV"
const envLocal = "local"

const (
	defaultWindowWidth  = 800
	defaultWindowHeight = 600
	defaultWindowTitle  = "MyScreenSaver"
	defaultSamples      = 35
	defaultMaxSpeed     = 2.0
	defaultPointWidth   = 3.0
	defaultLineWidth    = 3.0
	defaultLogLevel     = "info"
)

type Config struct {
	config *viper.Viper
}

func Load(env string) (*Config, error) {

	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	configPath, err := getConfigPath(env)

	viperConfig := viper.New()
	setDefaults(viperConfig)
	if err == nil {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			slog.Warn(fmt.Sprintf("error reading config file, %s", err))
		}
	}
	viperConfig.AutomaticEnv()

	cfg := &Config{
		config: viperConfig,
	}

	if cfg.GetWindowWidth() <= 0 || cfg.GetWindowHeight() <= 0 {
		return nil, fmt.Errorf("invalid window size %dx%d", cfg.GetWindowWidth(), cfg.GetWindowHeight())
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", defaultWindowWidth)
	v.SetDefault("window.height", defaultWindowHeight)
	v.SetDefault("window.title", defaultWindowTitle)
	v.SetDefault("curve.samples", defaultSamples)
	v.SetDefault("curve.max_speed", defaultMaxSpeed)
	v.SetDefault("curve.start_paused", true)
	v.SetDefault("render.point_width", defaultPointWidth)
	v.SetDefault("render.line_width", defaultLineWidth)
	v.SetDefault("log.level", defaultLogLevel)
}

func (c *Config) GetWindowWidth() int {
	windowWidth := c.config.GetInt("WINDOW_WIDTH")
	if windowWidth == 0 {
		windowWidth = c.config.GetInt("window.width")
	}

	return windowWidth
}

func (c *Config) GetWindowHeight() int {
	windowHeight := c.config.GetInt("WINDOW_HEIGHT")
	if windowHeight == 0 {
		windowHeight = c.config.GetInt("window.height")
	}

	return windowHeight
}

func (c *Config) GetWindowTitle() string {
	windowTitle := c.config.GetString("WINDOW_TITLE")
	if len(windowTitle) == 0 {
		windowTitle = c.config.GetString("window.title")
	}

	return windowTitle
}

// GetSamples is the initial number of curve samples per control point.
func (c *Config) GetSamples() int {
	samples := c.config.GetInt("CURVE_SAMPLES")
	if samples == 0 {
		samples = c.config.GetInt("curve.samples")
	}

	return samples
}

// GetMaxSpeed bounds each component of a new point's random velocity, in pixels per frame.
func (c *Config) GetMaxSpeed() float64 {
	maxSpeed := c.config.GetFloat64("CURVE_MAX_SPEED")
	if maxSpeed == 0 {
		maxSpeed = c.config.GetFloat64("curve.max_speed")
	}

	return maxSpeed
}

func (c *Config) GetStartPaused() bool {
	if c.config.IsSet("CURVE_START_PAUSED") {
		return c.config.GetBool("CURVE_START_PAUSED")
	}

	return c.config.GetBool("curve.start_paused")
}

func (c *Config) GetPointWidth() float64 {
	pointWidth := c.config.GetFloat64("RENDER_POINT_WIDTH")
	if pointWidth == 0 {
		pointWidth = c.config.GetFloat64("render.point_width")
	}

	return pointWidth
}

func (c *Config) GetLineWidth() float64 {
	lineWidth := c.config.GetFloat64("RENDER_LINE_WIDTH")
	if lineWidth == 0 {
		lineWidth = c.config.GetFloat64("render.line_width")
	}

	return lineWidth
}

func (c *Config) GetLogLevel() string {
	logLevel := c.config.GetString("LOG_LEVEL")
	if len(logLevel) == 0 {
		logLevel = c.config.GetString("log.level")
	}

	return logLevel
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}
