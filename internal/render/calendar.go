// Package render draws calendar months as PNG images.
package render

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/blaisecz/cycle-tracker/internal/cycle"
	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

const (
	CellSize      = 44
	Margin        = 16
	TitleHeight   = 32
	WeekdayHeight = 20
)

var (
	textColor  = color.RGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xff}
	mutedColor = color.RGBA{R: 0x9c, G: 0xa3, B: 0xaf, A: 0xff}
)

// KindColors fills the cell of each classified day.
var KindColors = map[cycle.DayKind]color.RGBA{
	cycle.DayPeriod:    {R: 0xe1, G: 0x1d, B: 0x48, A: 0xff},
	cycle.DayPredicted: {R: 0xfb, G: 0xcf, B: 0xe8, A: 0xff},
	cycle.DayOvulation: {R: 0x7c, G: 0x3a, B: 0xed, A: 0xff},
	cycle.DayFertile:   {R: 0x99, G: 0xf6, B: 0xe4, A: 0xff},
}

var weekdays = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// Size returns the image dimensions for a grid of the given number of weeks.
func Size(weeks int) (width, height int) {
	return 2*Margin + 7*CellSize, 2*Margin + TitleHeight + WeekdayHeight + weeks*CellSize
}

// CellOrigin is the top-left pixel of the i-th grid cell.
func CellOrigin(i int) (x, y int) {
	return Margin + (i%7)*CellSize, Margin + TitleHeight + WeekdayHeight + (i/7)*CellSize
}

// Calendar draws a Sunday-first month grid on the theme background and
// encodes it as PNG. background is an HSL triple such as "351 100% 96%".
func Calendar(w io.Writer, month time.Time, days []cycle.CalendarDay, background string) error {
	if len(days) == 0 || len(days)%7 != 0 {
		return fmt.Errorf("render calendar: grid of %d days is not whole weeks", len(days))
	}
	bg, err := ParseHSL(background)
	if err != nil {
		return fmt.Errorf("render calendar: %w", err)
	}

	width, height := Size(len(days) / 7)
	dc := gg.NewContext(width, height)
	dc.SetColor(bg)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	dc.SetColor(textColor)
	dc.DrawStringAnchored(month.Format("January 2006"), float64(width)/2, Margin+TitleHeight/2, 0.5, 0.5)
	for i, name := range weekdays {
		x, _ := CellOrigin(i)
		dc.DrawStringAnchored(name, float64(x+CellSize/2), Margin+TitleHeight+WeekdayHeight/2, 0.5, 0.5)
	}

	for i, day := range days {
		ix, iy := CellOrigin(i)
		x, y := float64(ix), float64(iy)

		if fill, ok := KindColors[day.Kind]; ok {
			dc.SetColor(fill)
			dc.DrawRoundedRectangle(x+2, y+2, CellSize-4, CellSize-4, 6)
			dc.Fill()
		}
		if day.IsToday {
			dc.SetColor(textColor)
			dc.SetLineWidth(2)
			dc.DrawRoundedRectangle(x+2, y+2, CellSize-4, CellSize-4, 6)
			dc.Stroke()
		}

		if day.InMonth {
			dc.SetColor(textColor)
		} else {
			dc.SetColor(mutedColor)
		}
		dc.DrawStringAnchored(strconv.Itoa(day.Day), x+CellSize/2, y+CellSize/2, 0.5, 0.5)
	}

	return dc.EncodePNG(w)
}

// ParseHSL converts a "H S% L%" triple to an opaque RGB color.
func ParseHSL(s string) (color.RGBA, error) {
	parts := strings.Fields(s)
	if len(parts) != 3 {
		return color.RGBA{}, fmt.Errorf("invalid HSL %q", s)
	}
	h, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hue in %q", s)
	}
	sat, err := parsePercent(parts[1])
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid saturation in %q", s)
	}
	light, err := parsePercent(parts[2])
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid lightness in %q", s)
	}

	h = math.Mod(math.Mod(h, 360)+360, 360)
	c := (1 - math.Abs(2*light-1)) * sat
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := light - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return color.RGBA{R: channel(r + m), G: channel(g + m), B: channel(b + m), A: 0xff}, nil
}

func parsePercent(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 100 {
		return 0, fmt.Errorf("%v out of range", v)
	}
	return v / 100, nil
}

func channel(v float64) uint8 {
	return uint8(math.Round(v * 255))
}
