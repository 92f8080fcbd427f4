package style

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tartampluch/go-monthgrid/internal/config"
	"github.com/tartampluch/go-monthgrid/internal/geometry"
	"gopkg.in/yaml.v3"
)

// ErrInvalidProfile reports a layout profile that cannot be used.
var ErrInvalidProfile = errors.New(config.ErrInvalidProfile)

// Profile overrides the built-in layout. Fields left out of the YAML keep their defaults.
//
//	metrics:
//	  day_height: 48
//	  selector_radius: 22
//	insets:
//	  left: 12
//	  right: 12
type Profile struct {
	Metrics  geometry.DesiredMetrics `yaml:"metrics"`
	Insets   geometry.Insets         `yaml:"insets"`
	Mirrored bool                    `yaml:"mirrored"`
}

// NewProfile returns the built-in layout.
func NewProfile() Profile {
	return Profile{
		Metrics: geometry.DefaultMetrics(),
		Insets:  geometry.UniformInsets(config.DefaultInset),
	}
}

// NewProfileFromYml decodes a profile on top of the defaults.
func NewProfileFromYml(contents io.Reader) (Profile, error) {
	profile := NewProfile()

	contentBytes, err := io.ReadAll(contents)
	if err != nil {
		return profile, fmt.Errorf("%s: %w", config.ErrProfileRead, err)
	}

	if err := yaml.Unmarshal(contentBytes, &profile); err != nil {
		return NewProfile(), fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}

	if err := profileIsValid(profile); err != nil {
		return NewProfile(), err
	}

	return profile, nil
}

// NewProfileFromFile reads a YAML profile from path.
func NewProfileFromFile(path string) (Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return NewProfile(), fmt.Errorf("%s: %w", config.ErrProfileRead, err)
	}
	defer f.Close()

	profile, err := NewProfileFromYml(f)
	if err != nil {
		return profile, err
	}

	slog.Info(config.MsgProfileLoaded,
		config.LogKeyComponent, config.CompStyle,
		config.LogKeyFile, path,
		config.LogKeyMetrics, fmt.Sprintf("%+v", profile.Metrics),
	)
	return profile, nil
}

func profileIsValid(p Profile) error {
	m := p.Metrics
	sizes := map[string]int{
		"month_height":       m.MonthHeight,
		"day_of_week_height": m.DayOfWeekHeight,
		"day_height":         m.DayHeight,
		"cell_width":         m.CellWidth,
	}
	for name, v := range sizes {
		if v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidProfile, name, v)
		}
	}
	if m.SelectorRadius < 0 {
		return fmt.Errorf("%w: selector_radius must not be negative, got %d", ErrInvalidProfile, m.SelectorRadius)
	}

	in := p.Insets
	if in.Left < 0 || in.Top < 0 || in.Right < 0 || in.Bottom < 0 {
		return fmt.Errorf("%w: insets must not be negative", ErrInvalidProfile)
	}
	return nil
}
