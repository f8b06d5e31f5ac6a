package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultStepInterval  = time.Second
	DefaultBlinkInterval = 500 * time.Millisecond
	DefaultErrorDuration = 2 * time.Second
	DefaultFPS           = 60
	DefaultTheme         = "cyberpunk"
	DefaultDataDir       = ".bsviz"
	DefaultArrayLen      = 50

	MinStepInterval = 50 * time.Millisecond
	MaxFPS          = 240
)

var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	StepInterval  time.Duration `yaml:"step_interval"`
	BlinkInterval time.Duration `yaml:"blink_interval"`
	ErrorDuration time.Duration `yaml:"error_duration"`
	FPS           int           `yaml:"fps"`
	Theme         string        `yaml:"theme"`
	DataDir       string        `yaml:"data_dir"`
	Initial       InitialConfig `yaml:"initial"`
}

// InitialConfig is the search loaded when the visualizer starts.
type InitialConfig struct {
	Array  []int `yaml:"array"`
	Target *int  `yaml:"target,omitempty"`
}

func DefaultConfig() *Config {
	arr := make([]int, DefaultArrayLen)
	for i := range arr {
		arr[i] = i
	}
	return &Config{
		StepInterval:  DefaultStepInterval,
		BlinkInterval: DefaultBlinkInterval,
		ErrorDuration: DefaultErrorDuration,
		FPS:           DefaultFPS,
		Theme:         DefaultTheme,
		DataDir:       DefaultDataDir,
		Initial:       InitialConfig{Array: arr},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.StepInterval < MinStepInterval {
		return fmt.Errorf("%w: step_interval %v below %v", ErrInvalid, c.StepInterval, MinStepInterval)
	}
	if c.BlinkInterval <= 0 {
		return fmt.Errorf("%w: blink_interval must be positive, got %v", ErrInvalid, c.BlinkInterval)
	}
	if c.ErrorDuration <= 0 {
		return fmt.Errorf("%w: error_duration must be positive, got %v", ErrInvalid, c.ErrorDuration)
	}
	if c.FPS < 1 || c.FPS > MaxFPS {
		return fmt.Errorf("%w: fps must be in [1, %d], got %d", ErrInvalid, MaxFPS, c.FPS)
	}
	return nil
}

// FrameInterval is the time between two frames of the visualizer.
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// ApplyPreset replaces the initial search with a named preset.
func (c *Config) ApplyPreset(name string) error {
	p := GetPreset(name)
	if p == nil {
		return fmt.Errorf("unknown preset: %s (available: %v)", name, ListPresets())
	}
	c.Initial = InitialConfig{Array: append([]int(nil), p.Array...)}
	if p.Target != nil {
		t := *p.Target
		c.Initial.Target = &t
	}
	return nil
}
