package cmd

import (
	"encoding/csv"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/indicators/pkg/datasource/csvsource"
)

func TestResample(t *testing.T) {
	cfg := loadTestConfig(t, graphConfig)

	fileName, err := resample(cfg, 4*time.Hour, t.TempDir())
	require.NoError(t, err)

	file, err := os.Open(fileName)
	require.NoError(t, err)
	defer file.Close()

	bars, err := csvsource.NewCSVBarReader(csv.NewReader(file), cfg.NumFactory()).ReadAll(4 * time.Hour)
	require.NoError(t, err)
	require.Len(t, bars, 3)
	assert.InDelta(t, 28923.63, bars[0].Open.Float64(), 1e-9)
	assert.InDelta(t, 29278.40, bars[0].Close.Float64(), 1e-9)
	assert.InDelta(t, 29470.00, bars[0].High.Float64(), 1e-9)
	assert.InDelta(t, 29311.53, bars[2].Close.Float64(), 1e-9)

	_, err = resample(cfg, time.Minute, t.TempDir())
	assert.Error(t, err)
}
