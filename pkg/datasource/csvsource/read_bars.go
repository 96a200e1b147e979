package csvsource

import (
	"encoding/csv"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/c9s/indicators/pkg/num"
	"github.com/c9s/indicators/pkg/series"
	"github.com/c9s/indicators/pkg/types"
)

// BarReader is an interface for reading bars.
type BarReader interface {
	Read(interval time.Duration) (types.Bar, error)
	ReadAll(interval time.Duration) ([]types.Bar, error)
}

// ReadBarsFromCSV reads all the .csv files in a given directory or a single file into a slice of Bars.
// Wraps a default CSVBarReader with Binance decoder for convenience.
func ReadBarsFromCSV(path string, interval time.Duration, factory num.Factory) ([]types.Bar, error) {
	return ReadBarsFromCSVWithDecoder(path, interval, factory, MakeCSVBarReader(NewBinanceCSVBarReader))
}

// ReadBarsFromCSVWithDecoder permits using a custom CSVBarReader.
func ReadBarsFromCSVWithDecoder(path string, interval time.Duration, factory num.Factory, maker MakeCSVBarReader) ([]types.Bar, error) {
	var bars []types.Bar

	err := filepath.WalkDir(path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".csv" {
			return nil
		}
		file, err := os.Open(path)
		if err != nil {
			return err
		}
		//nolint:errcheck // Read ops only so safe to ignore err return
		defer file.Close()
		reader := maker(csv.NewReader(file), factory)
		newBars, err := reader.ReadAll(interval)
		if err != nil {
			return errors.Wrapf(err, "unable to read %s", path)
		}
		bars = append(bars, newBars...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return bars, nil
}

// Feed appends every bar of reader to the series and returns the number of
// bars read. A bar starting at the same time as the last bar of the series
// is an update of that bar and replaces it.
func Feed(bars *series.BarSeries, reader BarReader, interval time.Duration) (int, error) {
	n := 0
	for {
		b, err := reader.Read(interval)
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, errors.Wrapf(err, "bar #%d", n)
		}

		n++
		if !bars.IsEmpty() && bars.Last().Start.Equal(b.Start) {
			log.Debugf("feed: revising bar %s", b.Start)
			bars.ReplaceLast(b)
			continue
		}

		bars.Add(b)
	}
}
