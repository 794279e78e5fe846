// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/layoutstat/internal/model"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Analyze AnalyzeConfig     `toml:"analyze"`
	Layouts map[string]string `toml:"layouts"`
	Magic   map[string]string `toml:"magic"`
	Weights WeightsConfig     `toml:"weights"`
}

// AnalyzeConfig maps analysis settings.
type AnalyzeConfig struct {
	Layout           *string `toml:"layout"`
	Corpus           *string `toml:"corpus"`
	Ngram            *string `toml:"ngram"`
	Top              *int    `toml:"top"`
	Magic            *bool   `toml:"magic"`
	IncludeThumbAlt  *bool   `toml:"include-thumb-alt"`
	IncludeThumbRoll *bool   `toml:"include-thumb-roll"`
	EpicInequality   *bool   `toml:"epic-inequality"`
	Sanitize         *bool   `toml:"sanitize"`
}

// WeightsConfig overrides individual scoring weights.
type WeightsConfig struct {
	Heatmap      *int64 `toml:"heatmap"`
	ColumnPen    *int64 `toml:"column-pen"`
	FSpeed       *int64 `toml:"fspeed"`
	LSB          *int64 `toml:"lsb"`
	LSS          *int64 `toml:"lss"`
	HSB          *int64 `toml:"hsb"`
	HSS          *int64 `toml:"hss"`
	FSB          *int64 `toml:"fsb"`
	FSS          *int64 `toml:"fss"`
	InRoll       *int64 `toml:"inroll"`
	OutRoll      *int64 `toml:"outroll"`
	InThreeRoll  *int64 `toml:"inthreeroll"`
	OutThreeRoll *int64 `toml:"outthreeroll"`
	Alt          *int64 `toml:"alt"`
	Red          *int64 `toml:"red"`
	WeakRed      *int64 `toml:"weakred"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Apply returns base with every configured weight replaced.
func (w WeightsConfig) Apply(base model.Weights) model.Weights {
	set := func(dst *int64, v *int64) {
		if v != nil {
			*dst = *v
		}
	}
	set(&base.Heatmap, w.Heatmap)
	set(&base.ColumnPen, w.ColumnPen)
	set(&base.FSpeed, w.FSpeed)
	set(&base.LSB, w.LSB)
	set(&base.LSS, w.LSS)
	set(&base.HSB, w.HSB)
	set(&base.HSS, w.HSS)
	set(&base.FSB, w.FSB)
	set(&base.FSS, w.FSS)
	set(&base.InRoll, w.InRoll)
	set(&base.OutRoll, w.OutRoll)
	set(&base.InThreeRoll, w.InThreeRoll)
	set(&base.OutThreeRoll, w.OutThreeRoll)
	set(&base.Alt, w.Alt)
	set(&base.Red, w.Red)
	set(&base.WeakRed, w.WeakRed)
	return base
}
