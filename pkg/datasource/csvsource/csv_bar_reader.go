package csvsource

import (
	"encoding/csv"
	"io"
	"time"

	"github.com/c9s/indicators/pkg/num"
	"github.com/c9s/indicators/pkg/types"
)

var _ BarReader = (*CSVBarReader)(nil)

// CSVBarReader is a BarReader that reads from a CSV file.
type CSVBarReader struct {
	csv     *csv.Reader
	decoder CSVBarDecoder
	factory num.Factory
}

// MakeCSVBarReader is a factory method type that creates a new CSVBarReader.
type MakeCSVBarReader func(csv *csv.Reader, factory num.Factory) *CSVBarReader

// NewCSVBarReader creates a new CSVBarReader with the default Binance decoder.
func NewCSVBarReader(csv *csv.Reader, factory num.Factory) *CSVBarReader {
	return NewCSVBarReaderWithDecoder(csv, factory, BinanceCSVBarDecoder)
}

// NewCSVBarReaderWithDecoder creates a new CSVBarReader with the given decoder.
func NewCSVBarReaderWithDecoder(csv *csv.Reader, factory num.Factory, decoder CSVBarDecoder) *CSVBarReader {
	// the volume column is optional
	csv.FieldsPerRecord = -1
	return &CSVBarReader{
		csv:     csv,
		decoder: decoder,
		factory: factory,
	}
}

// Read reads the next Bar from the underlying CSV data.
func (r *CSVBarReader) Read(interval time.Duration) (types.Bar, error) {
	rec, err := r.csv.Read()
	if err != nil {
		return types.Bar{}, err
	}

	return r.decoder(rec, interval, r.factory)
}

// ReadAll reads all the Bars from the underlying CSV data.
func (r *CSVBarReader) ReadAll(interval time.Duration) ([]types.Bar, error) {
	var bars []types.Bar
	for {
		b, err := r.Read(interval)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		bars = append(bars, b)
	}

	return bars, nil
}
