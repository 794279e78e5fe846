package model

// Weights holds the per-field multipliers used by the scorer.
type Weights struct {
	Heatmap      int64 `toml:"heatmap" json:"heatmap" yaml:"heatmap"`
	ColumnPen    int64 `toml:"column-pen" json:"column_pen" yaml:"column_pen"`
	FSpeed       int64 `toml:"fspeed" json:"fspeed" yaml:"fspeed"`
	LSB          int64 `toml:"lsb" json:"lsb" yaml:"lsb"`
	LSS          int64 `toml:"lss" json:"lss" yaml:"lss"`
	HSB          int64 `toml:"hsb" json:"hsb" yaml:"hsb"`
	HSS          int64 `toml:"hss" json:"hss" yaml:"hss"`
	FSB          int64 `toml:"fsb" json:"fsb" yaml:"fsb"`
	FSS          int64 `toml:"fss" json:"fss" yaml:"fss"`
	InRoll       int64 `toml:"inroll" json:"inroll" yaml:"inroll"`
	OutRoll      int64 `toml:"outroll" json:"outroll" yaml:"outroll"`
	InThreeRoll  int64 `toml:"inthreeroll" json:"inthreeroll" yaml:"inthreeroll"`
	OutThreeRoll int64 `toml:"outthreeroll" json:"outthreeroll" yaml:"outthreeroll"`
	Alt          int64 `toml:"alt" json:"alt" yaml:"alt"`
	Red          int64 `toml:"red" json:"red" yaml:"red"`
	WeakRed      int64 `toml:"weakred" json:"weakred" yaml:"weakred"`
}

// DefaultWeights is the fixed scoring configuration.
var DefaultWeights = Weights{
	Heatmap:      -500,
	ColumnPen:    -10000,
	FSpeed:       -200,
	LSB:          -200,
	LSS:          -40,
	HSB:          -100,
	HSS:          -20,
	FSB:          -500,
	FSS:          -100,
	InRoll:       100,
	OutRoll:      40,
	InThreeRoll:  320,
	OutThreeRoll: 160,
	Alt:          0,
	Red:          -300,
	WeakRed:      -2000,
}
