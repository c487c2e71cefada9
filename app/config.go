package app

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Config holds user overrides of a program's Desc. Pointer fields
// distinguish "unset" from an explicit false or zero.
type Config struct {
	Width               int    `toml:"width"`
	Height              int    `toml:"height"`
	SampleCount         int    `toml:"sample_count"`
	WindowTitle         string `toml:"window_title"`
	GLForceGLES2        *bool  `toml:"gl_force_gles2"`
	SwapInterval        *int   `toml:"swap_interval"`
	TimeScaledAnimation *bool  `toml:"time_scaled_animation"`
	MaxFrames           int    `toml:"max_frames"`
	Verbose             bool   `toml:"verbose"`
}

// ParseConfig decodes TOML config data. Unknown keys are an error.
func ParseConfig(data []byte) (Config, error) {
	var c Config
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return Config{}, fmt.Errorf("config line %d column %d: %w", row, col, err)
		}
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return c, nil
}

// LoadConfig reads and decodes a TOML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	c, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Apply overlays the set fields of c onto d.
func (c Config) Apply(d Desc) Desc {
	if c.Width > 0 {
		d.Width = c.Width
	}
	if c.Height > 0 {
		d.Height = c.Height
	}
	if c.SampleCount > 0 {
		d.SampleCount = c.SampleCount
	}
	if c.WindowTitle != "" {
		d.WindowTitle = c.WindowTitle
	}
	if c.GLForceGLES2 != nil {
		d.GLForceGLES2 = *c.GLForceGLES2
	}
	if c.SwapInterval != nil {
		v := *c.SwapInterval
		d.SwapInterval = &v
	}
	if c.TimeScaledAnimation != nil {
		d.TimeScaledAnimation = *c.TimeScaledAnimation
	}
	if c.MaxFrames > 0 {
		d.MaxFrames = c.MaxFrames
	}
	return d
}

// LoadEnvFile loads KEY=value pairs from a dotenv file into the process
// environment without overriding variables that are already set.
// A missing file is not an error.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Environment variables read by EnvConfig.
const (
	EnvWidth               = "SAMPLES_WIDTH"
	EnvHeight              = "SAMPLES_HEIGHT"
	EnvSampleCount         = "SAMPLES_SAMPLE_COUNT"
	EnvWindowTitle         = "SAMPLES_WINDOW_TITLE"
	EnvGLForceGLES2        = "SAMPLES_GL_FORCE_GLES2"
	EnvSwapInterval        = "SAMPLES_SWAP_INTERVAL"
	EnvTimeScaledAnimation = "SAMPLES_TIME_SCALED_ANIMATION"
	EnvVerbose             = "SAMPLES_VERBOSE"
)

// EnvConfig builds a Config from SAMPLES_* environment variables.
func EnvConfig() (Config, error) {
	var c Config
	var err error
	if c.Width, err = envInt(EnvWidth); err != nil {
		return Config{}, err
	}
	if c.Height, err = envInt(EnvHeight); err != nil {
		return Config{}, err
	}
	if c.SampleCount, err = envInt(EnvSampleCount); err != nil {
		return Config{}, err
	}
	if c.SwapInterval, err = envOptInt(EnvSwapInterval); err != nil {
		return Config{}, err
	}
	c.WindowTitle = os.Getenv(EnvWindowTitle)
	if c.GLForceGLES2, err = envBool(EnvGLForceGLES2); err != nil {
		return Config{}, err
	}
	if c.TimeScaledAnimation, err = envBool(EnvTimeScaledAnimation); err != nil {
		return Config{}, err
	}
	verbose, err := envBool(EnvVerbose)
	if err != nil {
		return Config{}, err
	}
	c.Verbose = verbose != nil && *verbose
	return c, nil
}

func envInt(name string) (int, error) {
	s, ok := os.LookupEnv(name)
	if !ok || s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

func envOptInt(name string) (*int, error) {
	if s, ok := os.LookupEnv(name); !ok || s == "" {
		return nil, nil
	}
	v, err := envInt(name)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func envBool(name string) (*bool, error) {
	s, ok := os.LookupEnv(name)
	if !ok || s == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &v, nil
}
