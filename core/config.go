// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"fmt"
	"strconv"

	"github.com/gobuffalo/envy"
	"github.com/joho/godotenv"
)

// Configuration defines a global engine configuration setting
type Configuration struct {
	Time     TimeConfiguration
	Renderer RendererConfiguration
	Context  ContextConfiguration
	Log      LogConfiguration
}

// TimeConfiguration is used to configure time services
type TimeConfiguration struct {
	// FramesPerSecond caps frames per second that is put out
	// To unlimit, set to 0
	FramesPerSecond int

	// EventPollDelay is the delay between event polls in milliseconds
	EventPollDelay int
}

// RendererConfiguration is used to configure the window and its target
type RendererConfiguration struct {
	ScreenWidth  uint32
	ScreenHeight uint32

	// SRGB enables sRGB conversion of the window framebuffer
	SRGB bool

	ShaderDirectory string
}

// ContextConfiguration configures the rendering context state tracking.
// Limits of 0 leave the corresponding binding slots unbounded.
type ContextConfiguration struct {
	MaxBufferBindings uint32
	MaxTextureUnits   uint32
}

// LogConfiguration configures the logger built by NewLogger
type LogConfiguration struct {
	// Level is any level understood by logrus, "info" when empty
	Level string

	// Format is either "text" or "json"
	Format string
}

// Environment variables read by LoadConfiguration
const (
	EnvFramesPerSecond   = "KORU_FPS"
	EnvEventPollDelay    = "KORU_EVENT_POLL_DELAY"
	EnvScreenWidth       = "KORU_SCREEN_WIDTH"
	EnvScreenHeight      = "KORU_SCREEN_HEIGHT"
	EnvSRGB              = "KORU_SRGB"
	EnvShaderDirectory   = "KORU_SHADER_DIRECTORY"
	EnvMaxBufferBindings = "KORU_MAX_BUFFER_BINDINGS"
	EnvMaxTextureUnits   = "KORU_MAX_TEXTURE_UNITS"
	EnvLogLevel          = "KORU_LOG_LEVEL"
	EnvLogFormat         = "KORU_LOG_FORMAT"
)

// DefaultConfiguration returns the configuration used when nothing is overridden
func DefaultConfiguration() Configuration {
	return Configuration{
		Time: TimeConfiguration{
			FramesPerSecond: 60,
			EventPollDelay:  50,
		},
		Renderer: RendererConfiguration{
			ScreenWidth:     800,
			ScreenHeight:    600,
			ShaderDirectory: "./shaders",
		},
		Log: LogConfiguration{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfiguration starts from DefaultConfiguration and overrides it with
// the environment. Every given .env file is read first, its values take
// precedence over the process environment.
func LoadConfiguration(files ...string) (Configuration, error) {
	for _, file := range files {
		values, err := godotenv.Read(file)
		if err != nil {
			return Configuration{}, fmt.Errorf("reading %s: %w", file, err)
		}
		for k, v := range values {
			envy.Set(k, v)
		}
	}

	cfg := DefaultConfiguration()
	var err error
	if cfg.Time.FramesPerSecond, err = envInt(EnvFramesPerSecond, cfg.Time.FramesPerSecond); err != nil {
		return Configuration{}, err
	}
	if cfg.Time.EventPollDelay, err = envInt(EnvEventPollDelay, cfg.Time.EventPollDelay); err != nil {
		return Configuration{}, err
	}
	if cfg.Renderer.ScreenWidth, err = envUint32(EnvScreenWidth, cfg.Renderer.ScreenWidth); err != nil {
		return Configuration{}, err
	}
	if cfg.Renderer.ScreenHeight, err = envUint32(EnvScreenHeight, cfg.Renderer.ScreenHeight); err != nil {
		return Configuration{}, err
	}
	if cfg.Renderer.SRGB, err = envBool(EnvSRGB, cfg.Renderer.SRGB); err != nil {
		return Configuration{}, err
	}
	if cfg.Context.MaxBufferBindings, err = envUint32(EnvMaxBufferBindings, 0); err != nil {
		return Configuration{}, err
	}
	if cfg.Context.MaxTextureUnits, err = envUint32(EnvMaxTextureUnits, 0); err != nil {
		return Configuration{}, err
	}
	cfg.Renderer.ShaderDirectory = envy.Get(EnvShaderDirectory, cfg.Renderer.ShaderDirectory)
	cfg.Log.Level = envy.Get(EnvLogLevel, cfg.Log.Level)
	cfg.Log.Format = envy.Get(EnvLogFormat, cfg.Log.Format)

	return cfg, nil
}

func envInt(key string, def int) (int, error) {
	raw := envy.Get(key, "")
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func envUint32(key string, def uint32) (uint32, error) {
	raw := envy.Get(key, "")
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return uint32(v), nil
}

func envBool(key string, def bool) (bool, error) {
	raw := envy.Get(key, "")
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}
