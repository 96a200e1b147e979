package csvsource

import (
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/c9s/indicators/pkg/num"
	"github.com/c9s/indicators/pkg/types"
)

// MetaTraderTimeFormat is the time format expected by the MetaTrader decoder when cols [0] and [1] are used.
const MetaTraderTimeFormat = "02/01/2006 15:04"

var (
	// ErrNotEnoughColumns is returned when the CSV price record does not have enough columns.
	ErrNotEnoughColumns = errors.New("not enough columns")

	// ErrInvalidTimeFormat is returned when the CSV price record does not have a valid time format.
	ErrInvalidTimeFormat = errors.New("cannot parse time string")

	// ErrInvalidPriceFormat is returned when the CSV price record does not have prices in expected format.
	ErrInvalidPriceFormat = errors.New("OHLC prices must be in valid decimal format")

	// ErrInvalidVolumeFormat is returned when the CSV price record does not have a valid volume format.
	ErrInvalidVolumeFormat = errors.New("volume must be in valid decimal format")
)

// CSVBarDecoder is an extension point for CSVBarReader to support custom file formats.
type CSVBarDecoder func(record []string, interval time.Duration, factory num.Factory) (types.Bar, error)

// NewBinanceCSVBarReader creates a new CSVBarReader for Binance CSV files.
func NewBinanceCSVBarReader(csv *csv.Reader, factory num.Factory) *CSVBarReader {
	return NewCSVBarReaderWithDecoder(csv, factory, BinanceCSVBarDecoder)
}

// BinanceCSVBarDecoder decodes a CSV record from Binance or Bybit into a Bar:
// start time in unix milliseconds, open, high, low, close and an optional volume.
func BinanceCSVBarDecoder(record []string, interval time.Duration, factory num.Factory) (types.Bar, error) {
	if len(record) < 5 {
		return types.Bar{}, ErrNotEnoughColumns
	}

	msec, err := strconv.ParseInt(record[0], 10, 64)
	if err != nil {
		return types.Bar{}, ErrInvalidTimeFormat
	}

	return decodeOHLCV(time.UnixMilli(msec).UTC(), interval, factory, record[1:])
}

// NewMetaTraderCSVBarReader creates a new CSVBarReader for MetaTrader CSV files.
func NewMetaTraderCSVBarReader(csv *csv.Reader, factory num.Factory) *CSVBarReader {
	csv.Comma = ';'
	return NewCSVBarReaderWithDecoder(csv, factory, MetaTraderCSVBarDecoder)
}

// MetaTraderCSVBarDecoder decodes a CSV record from MetaTrader into a Bar.
func MetaTraderCSVBarDecoder(record []string, interval time.Duration, factory num.Factory) (types.Bar, error) {
	if len(record) < 6 {
		return types.Bar{}, ErrNotEnoughColumns
	}

	t, err := time.Parse(MetaTraderTimeFormat, fmt.Sprintf("%s %s", record[0], record[1]))
	if err != nil {
		return types.Bar{}, ErrInvalidTimeFormat
	}

	return decodeOHLCV(t, interval, factory, record[2:])
}

// decodeOHLCV parses open, high, low, close and, when present, volume.
func decodeOHLCV(start time.Time, interval time.Duration, factory num.Factory, cols []string) (types.Bar, error) {
	var prices [4]num.Num
	for i := range prices {
		p, err := factory.OfString(cols[i])
		if err != nil {
			return types.Bar{}, ErrInvalidPriceFormat
		}
		prices[i] = p
	}

	volume := factory.Zero()
	if len(cols) > 4 {
		v, err := factory.OfString(cols[4])
		if err != nil {
			return types.Bar{}, ErrInvalidVolumeFormat
		}
		volume = v
	}

	return types.NewBar(start, interval, prices[0], prices[1], prices[2], prices[3], volume, factory.One()), nil
}
