package cmd

import (
	"encoding/csv"
	"os"

	"github.com/pkg/errors"

	"github.com/c9s/indicators/pkg/config"
	"github.com/c9s/indicators/pkg/datasource/csvsource"
	"github.com/c9s/indicators/pkg/num"
	"github.com/c9s/indicators/pkg/series"
)

// openBarReader opens the configured CSV file. The caller closes the file.
func openBarReader(cfg *config.Config, factory num.Factory) (*csvsource.CSVBarReader, *os.File, error) {
	if cfg.Source.File == "" {
		return nil, nil, errors.New("source.file is not set")
	}

	file, err := os.Open(cfg.Source.File)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "unable to open source file")
	}

	switch cfg.Source.Format {
	case config.FormatMetaTrader:
		return csvsource.NewMetaTraderCSVBarReader(csv.NewReader(file), factory), file, nil
	default:
		return csvsource.NewBinanceCSVBarReader(csv.NewReader(file), factory), file, nil
	}
}

// newBarSeries creates the empty series the config describes.
func newBarSeries(cfg *config.Config) (*series.BarSeries, error) {
	return series.NewBarSeries(cfg.Series.MaximumLength, nil,
		series.WithName(cfg.Series.Name),
		series.WithNum(cfg.NumFactory(), cfg.Epsilon()))
}
