package config

import (
	"time"

	"github.com/alexisbeaulieu97/statelayer/internal/scene"
	"github.com/alexisbeaulieu97/statelayer/internal/spring"
	"github.com/alexisbeaulieu97/statelayer/internal/theme"
)

// Input modes map terminal mouse reports onto pointer or touch semantics.
const (
	InputHover = "hover"
	InputTouch = "touch"
)

// Config is the full demo configuration document.
type Config struct {
	Theme     string       `yaml:"theme" validate:"required,theme_mode"`
	Input     string       `yaml:"input" validate:"required,input_mode"`
	FrameRate int          `yaml:"frame_rate" validate:"min=1,max=240"`
	Cell      CellSettings `yaml:"cell"`
	Spring    SpringConfig `yaml:"spring"`
	Hero      HeroConfig   `yaml:"hero"`
	Log       LogConfig    `yaml:"log"`
}

// CellSettings is the logical px size of a terminal cell.
type CellSettings struct {
	Width  float64 `yaml:"width" validate:"gt=0"`
	Height float64 `yaml:"height" validate:"gt=0"`
}

// SpringConfig configures the highlight animation.
type SpringConfig struct {
	Stiffness  float64 `yaml:"stiffness" validate:"gt=0"`
	Damping    float64 `yaml:"damping" validate:"gte=0"`
	Mass       float64 `yaml:"mass" validate:"gt=0"`
	Epsilon    float64 `yaml:"epsilon" validate:"gt=0"`
	Integrator string  `yaml:"integrator" validate:"required,integrator"`
}

// HeroConfig overrides the hero copy.
type HeroConfig struct {
	Title string `yaml:"title" validate:"max=200"`
	Body  string `yaml:"body" validate:"max=2000"`
}

// LogConfig controls diagnostic logging. Logs never go to the terminal the
// demo is drawing on.
type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	File  string `yaml:"file"`
}

// Default returns the stock demo configuration.
func Default() Config {
	hero := scene.DefaultHero()
	params := spring.DefaultParams()
	return Config{
		Theme:     theme.ModeDark.String(),
		Input:     InputHover,
		FrameRate: 60,
		Cell: CellSettings{
			Width:  scene.DefaultCellWidth,
			Height: scene.DefaultCellHeight,
		},
		Spring: SpringConfig{
			Stiffness:  params.Stiffness,
			Damping:    params.Damping,
			Mass:       params.Mass,
			Epsilon:    params.Epsilon,
			Integrator: spring.IntegratorEuler,
		},
		Hero: HeroConfig{Title: hero.Title, Body: hero.Body},
		Log:  LogConfig{Level: "info"},
	}
}

// Mode returns the parsed theme mode. The config is expected to be validated.
func (c Config) Mode() theme.Mode {
	mode, err := theme.ParseMode(c.Theme)
	if err != nil {
		return theme.ModeDark
	}
	return mode
}

// SpringParams converts the spring section.
func (c Config) SpringParams() spring.Params {
	return spring.Params{
		Stiffness: c.Spring.Stiffness,
		Damping:   c.Spring.Damping,
		Mass:      c.Spring.Mass,
		Epsilon:   c.Spring.Epsilon,
	}
}

// HeroCopy converts the hero section.
func (c Config) HeroCopy() scene.Hero {
	return scene.Hero{Title: c.Hero.Title, Body: c.Hero.Body}
}

// FrameInterval is the delay between animation frames.
func (c Config) FrameInterval() time.Duration {
	if c.FrameRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.FrameRate)
}
