package style

import (
	"github.com/fatih/color"

	"github.com/c9s/indicators/pkg/num"
)

var (
	GreenColor = color.New(color.FgGreen)
	RedColor   = color.New(color.FgRed)
	GrayColor  = color.New(color.FgHiBlack)
)

// ValueString formats v for a table cell. With colors, rising values are
// green, falling ones red and NaN gray.
func ValueString(v, previous num.Num, withColor bool) string {
	s := v.String()
	if !withColor {
		return s
	}

	switch {
	case v.IsNaN():
		return GrayColor.Sprint(s)
	case previous == nil || previous.IsNaN():
		return s
	case v.Cmp(previous) > 0:
		return GreenColor.Sprint(s)
	case v.Cmp(previous) < 0:
		return RedColor.Sprint(s)
	}
	return s
}

// ChangeSignString prefixes positive changes with a plus sign.
func ChangeSignString(change num.Num) string {
	if change.IsPositive() {
		return "+" + change.String()
	}
	return change.String()
}
