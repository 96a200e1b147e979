package csvsource

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"

	"github.com/c9s/indicators/pkg/types"
)

// WriteBars writes bars in the Binance format read by BinanceCSVBarDecoder.
func WriteBars(w io.Writer, bars []types.Bar) error {
	cw := csv.NewWriter(w)
	for _, b := range bars {
		row := []string{
			strconv.FormatInt(b.Start.UnixMilli(), 10),
			b.Open.String(),
			b.High.String(),
			b.Low.String(),
			b.Close.String(),
			b.Volume.String(),
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrap(err, "writing record")
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteBarsToFile writes bars to dir/<name>-<first start date>.csv and
// returns the file name.
func WriteBarsToFile(dir, name string, bars []types.Bar) (fileName string, err error) {
	if len(bars) == 0 {
		return "", fmt.Errorf("no bars to write")
	}

	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	fileName = filepath.Join(dir, fmt.Sprintf("%s-%s.csv", name, bars[0].Start.Format("2006-01-02")))
	file, err := os.Create(fileName)
	if err != nil {
		return "", errors.Wrap(err, "failed to open file")
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	return fileName, WriteBars(file, bars)
}
