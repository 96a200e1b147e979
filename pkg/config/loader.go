package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/c9s/indicators/pkg/envvar"
	"github.com/c9s/indicators/pkg/num"
)

const (
	NumTypeDecimal = "decimal"
	NumTypeFloat   = "float"

	FormatBinance    = "binance"
	FormatMetaTrader = "metatrader"

	DefaultMaximumLength = 1000
	DefaultInterval      = time.Minute
	DefaultRows          = 10
)

// BarFields are the indicator types that read a bar field directly.
var BarFields = []string{"open", "high", "low", "close", "volume", "typical"}

// Formulas are the indicator types computed from another indicator.
var Formulas = []string{"sma", "ema", "rma", "previous"}

type SeriesConfig struct {
	Name          string        `json:"name" yaml:"name"`
	MaximumLength int           `json:"maximumLength" yaml:"maximumLength"`
	Interval      time.Duration `json:"interval" yaml:"interval"`
}

type NumConfig struct {
	Type      string `json:"type" yaml:"type"`
	Precision int32  `json:"precision" yaml:"precision"`
	Epsilon   string `json:"epsilon" yaml:"epsilon"`
}

type SourceConfig struct {
	File   string `json:"file" yaml:"file"`
	Format string `json:"format" yaml:"format"`
}

type IndicatorConfig struct {
	Name   string `json:"name" yaml:"name"`
	Type   string `json:"type" yaml:"type"`
	Input  string `json:"input" yaml:"input"`
	Length int    `json:"length" yaml:"length"`
}

type OutputConfig struct {
	// Columns lists the indicators to print, all of them when empty.
	Columns StringSlice `json:"columns" yaml:"columns"`
	Rows    int         `json:"rows" yaml:"rows"`
}

type Config struct {
	Series     SeriesConfig      `json:"series" yaml:"series"`
	Num        NumConfig         `json:"num" yaml:"num"`
	Source     SourceConfig      `json:"source" yaml:"source"`
	Indicators []IndicatorConfig `json:"indicators" yaml:"indicators"`
	Output     OutputConfig      `json:"output" yaml:"output"`
}

// Load reads the YAML config file, applies the environment overrides and the
// defaults, and validates the result.
func Load(configFile string) (*Config, error) {
	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read config file %s", configFile)
	}

	return LoadBytes(content)
}

func LoadBytes(content []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(content, &config); err != nil {
		return nil, errors.Wrap(err, "unable to parse config")
	}

	config.applyEnv()
	config.SetDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) applyEnv() {
	if file, ok := envvar.String("INDICATORS_SOURCE_FILE"); ok {
		c.Source.File = file
	}

	if length, ok := envvar.Int("INDICATORS_SERIES_MAXIMUM_LENGTH"); ok {
		c.Series.MaximumLength = length
	}

	if interval, ok := envvar.Duration("INDICATORS_SERIES_INTERVAL"); ok {
		c.Series.Interval = interval
	}
}

func (c *Config) SetDefaults() {
	if c.Series.Name == "" {
		c.Series.Name = "default"
	}

	if c.Series.MaximumLength == 0 {
		c.Series.MaximumLength = DefaultMaximumLength
	}

	if c.Series.Interval == 0 {
		c.Series.Interval = DefaultInterval
	}

	if c.Num.Type == "" {
		c.Num.Type = NumTypeDecimal
	}

	if c.Num.Precision == 0 {
		c.Num.Precision = num.DefaultPrecision
	}

	if c.Source.Format == "" {
		c.Source.Format = FormatBinance
	}

	if c.Output.Rows == 0 {
		c.Output.Rows = DefaultRows
	}

	for i := range c.Indicators {
		ic := &c.Indicators[i]
		if ic.Name == "" {
			ic.Name = ic.DefaultName()
		}

		if ic.Input == "" && lo.Contains(Formulas, ic.Type) {
			ic.Input = "close"
		}
	}
}

// DefaultName is type(length) of input, or the type for bar fields.
func (ic IndicatorConfig) DefaultName() string {
	if lo.Contains(BarFields, ic.Type) {
		return ic.Type
	}

	input := ic.Input
	if input == "" {
		input = "close"
	}

	return fmt.Sprintf("%s(%s,%d)", ic.Type, input, ic.Length)
}

// Validate reports every problem of the config at once.
func (c *Config) Validate() (err error) {
	if c.Series.MaximumLength <= 0 {
		err = multierr.Append(err, errors.Errorf("series.maximumLength must be greater than zero, %d given", c.Series.MaximumLength))
	}

	if c.Series.Interval <= 0 {
		err = multierr.Append(err, errors.Errorf("series.interval must be positive, %s given", c.Series.Interval))
	}

	if !lo.Contains([]string{NumTypeDecimal, NumTypeFloat}, c.Num.Type) {
		err = multierr.Append(err, errors.Errorf("num.type must be %q or %q, %q given", NumTypeDecimal, NumTypeFloat, c.Num.Type))
	}

	if c.Num.Precision < 0 {
		err = multierr.Append(err, errors.Errorf("num.precision can not be negative, %d given", c.Num.Precision))
	}

	if c.Num.Epsilon != "" {
		if _, e := num.FloatFactory().OfString(c.Num.Epsilon); e != nil {
			err = multierr.Append(err, errors.Wrapf(e, "invalid num.epsilon %q", c.Num.Epsilon))
		}
	}

	if !lo.Contains([]string{FormatBinance, FormatMetaTrader}, c.Source.Format) {
		err = multierr.Append(err, errors.Errorf("source.format must be %q or %q, %q given", FormatBinance, FormatMetaTrader, c.Source.Format))
	}

	// inputs must refer to a bar field or an indicator defined earlier
	defined := lo.SliceToMap(BarFields, func(f string) (string, bool) { return f, true })
	for i, ic := range c.Indicators {
		switch {
		case lo.Contains(BarFields, ic.Type):
		case lo.Contains(Formulas, ic.Type):
			if ic.Length <= 0 {
				err = multierr.Append(err, errors.Errorf("indicators[%d] %s: length must be greater than zero, %d given", i, ic.Name, ic.Length))
			}

			if c.Series.MaximumLength > 0 && ic.Length >= c.Series.MaximumLength {
				err = multierr.Append(err, errors.Errorf("indicators[%d] %s: length must be less than series.maximumLength %d, %d given", i, ic.Name, c.Series.MaximumLength, ic.Length))
			}

			if !defined[ic.Input] {
				err = multierr.Append(err, errors.Errorf("indicators[%d] %s: input %q is not defined before it", i, ic.Name, ic.Input))
			}
		default:
			err = multierr.Append(err, errors.Errorf("indicators[%d] %s: unknown type %q", i, ic.Name, ic.Type))
		}

		if defined[ic.Name] && !lo.Contains(BarFields, ic.Name) {
			err = multierr.Append(err, errors.Errorf("indicators[%d]: duplicated name %q", i, ic.Name))
		}
		defined[ic.Name] = true
	}

	for _, column := range c.Output.Columns {
		if !defined[column] {
			err = multierr.Append(err, errors.Errorf("output column %q is not defined", column))
		}
	}

	return err
}

// NumFactory returns the factory the config selects.
func (c *Config) NumFactory() num.Factory {
	if c.Num.Type == NumTypeFloat {
		return num.FloatFactory()
	}

	return num.DecimalFactory(c.Num.Precision)
}

// Epsilon returns the comparison tolerance, nil when unset.
func (c *Config) Epsilon() num.Num {
	if c.Num.Epsilon == "" {
		return nil
	}

	e, err := c.NumFactory().OfString(c.Num.Epsilon)
	if err != nil {
		return nil
	}

	return e
}
