package style

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/c9s/indicators/pkg/num"
)

func TestValueString(t *testing.T) {
	color.NoColor = false
	defer func() { color.NoColor = true }()

	f := num.DecimalFactory(8)
	assert.Equal(t, "1.5", ValueString(f.Of(1.5), f.One(), false))
	assert.Equal(t, GreenColor.Sprint("1.5"), ValueString(f.Of(1.5), f.One(), true))
	assert.Equal(t, RedColor.Sprint("0.5"), ValueString(f.Of(0.5), f.One(), true))
	assert.Equal(t, "1", ValueString(f.One(), nil, true))
	assert.Equal(t, GrayColor.Sprint("NaN"), ValueString(f.NaN(), f.One(), true))
}

func TestChangeSignString(t *testing.T) {
	f := num.FloatFactory()
	assert.Equal(t, "+2", ChangeSignString(f.Two()))
	assert.Equal(t, "-2", ChangeSignString(f.Two().Neg()))
	assert.Equal(t, "0", ChangeSignString(f.Zero()))
}

func TestNewTable(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf, nil, "index", "close")
	tbl.AppendRow([]interface{}{1, "10"})
	tbl.Render()

	assert.Contains(t, buf.String(), "INDEX")
	assert.Contains(t, buf.String(), "10")
}
