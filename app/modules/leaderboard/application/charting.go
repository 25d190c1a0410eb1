package leaderboardservice

import (
	"bytes"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ChartPalette holds the colours used by rendered charts.
type ChartPalette struct {
	Background drawing.Color
	Bar        drawing.Color
	BarStroke  drawing.Color
	TextColor  drawing.Color
}

// DefaultPalette is a dark felt-table theme.
var DefaultPalette = ChartPalette{
	Background: drawing.ColorFromHex("1f2a24"),
	Bar:        drawing.ColorFromHex("3f7d58"),
	BarStroke:  drawing.ColorFromHex("d4a93c"),
	TextColor:  drawing.ColorFromHex("f2efe6"),
}

const (
	chartHeight      = 400
	chartMinWidth    = 400
	chartWidthPerBar = 80
)

// GenerateStandingsChart produces a PNG bar chart with one bar per player, in standings order.
func GenerateStandingsChart(standings []Standing, palette ChartPalette) ([]byte, error) {
	if len(standings) == 0 {
		return renderNoDataPlaceholder(palette)
	}

	bars := make([]chart.Value, len(standings))
	top := 1.0
	for i, s := range standings {
		bars[i] = chart.Value{
			Label: s.Name,
			Value: float64(s.Score),
			Style: chart.Style{
				FillColor:   palette.Bar,
				StrokeColor: palette.BarStroke,
				StrokeWidth: 1,
			},
		}
		top = max(top, float64(s.Score))
	}

	graph := chart.BarChart{
		Title:      "Game Night Leaderboard",
		TitleStyle: chart.Style{FontColor: palette.TextColor},
		Width:      max(chartMinWidth, chartWidthPerBar*len(bars)),
		Height:     chartHeight,
		BarWidth:   40,
		BarSpacing: 30,
		Background: chart.Style{
			FillColor: palette.Background,
			Padding:   chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10},
		},
		Canvas: chart.Style{
			FillColor: palette.Background,
		},
		XAxis: chart.Style{
			FontColor: palette.TextColor,
		},
		YAxis: chart.YAxis{
			Style: chart.Style{
				FontColor: palette.TextColor,
			},
			// An explicit range keeps an all-zero leaderboard renderable.
			Range: &chart.ContinuousRange{Min: 0, Max: top},
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// renderNoDataPlaceholder draws on a PNG renderer directly; chart.Chart needs at
// least one series to render.
func renderNoDataPlaceholder(palette ChartPalette) ([]byte, error) {
	const (
		width  = 400
		height = 200
		msg    = "No players yet"
	)

	r, err := chart.PNG(width, height)
	if err != nil {
		return nil, err
	}

	r.SetFillColor(palette.Background)
	r.MoveTo(0, 0)
	r.LineTo(width, 0)
	r.LineTo(width, height)
	r.LineTo(0, height)
	r.Close()
	r.Fill()

	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, err
	}
	r.SetFont(font)
	r.SetFontColor(palette.TextColor)
	r.SetFontSize(14.0)
	tb := r.MeasureText(msg)
	r.Text(msg, (width-tb.Width())/2, (height+tb.Height())/2)

	buffer := bytes.NewBuffer([]byte{})
	if err := r.Save(buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
