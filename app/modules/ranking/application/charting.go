package rankingservice

import (
	"bytes"
	"context"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	chartLineColor = drawing.Color{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	chartDotColor  = drawing.Color{R: 0xd4, G: 0xaf, B: 0x37, A: 0xff}
	chartTextColor = drawing.Color{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
)

// GetRatingHistoryChart renders a PNG line chart of a team's rating across the
// weekly snapshots of one season.
func (s *RankingService) GetRatingHistoryChart(ctx context.Context, season int, team string) ([]byte, error) {
	ctx, span := s.tracer.Start(ctx, "GetRatingHistoryChart")
	defer span.End()

	if _, err := s.teamRepo.GetByName(ctx, nil, team); err != nil {
		return nil, err
	}

	history, err := s.snapshotRepo.ListForTeam(ctx, nil, season, team)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return renderNoHistoryPlaceholder(team)
	}

	xValues := make([]float64, len(history))
	yValues := make([]float64, len(history))
	for i, snap := range history {
		xValues[i] = float64(snap.Week)
		yValues[i] = snap.Rating
	}

	mainSeries := chart.ContinuousSeries{
		Name:    team,
		XValues: xValues,
		YValues: yValues,
		Style: chart.Style{
			StrokeColor: chartLineColor,
			StrokeWidth: 2,
			DotWidth:    4,
			DotColor:    chartDotColor,
		},
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s rating, %d season", team, season),
		Width:  800,
		Height: 400,
		XAxis: chart.XAxis{
			Name:           "Week",
			ValueFormatter: chart.IntValueFormatter,
			Style: chart.Style{
				FontColor: chartTextColor,
			},
		},
		YAxis: chart.YAxis{
			Name: "Rating",
			Style: chart.Style{
				FontColor: chartTextColor,
			},
		},
		Series: []chart.Series{mainSeries},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func renderNoHistoryPlaceholder(team string) ([]byte, error) {
	const (
		width  = 400
		height = 200
	)
	msg := fmt.Sprintf("No snapshots recorded for %s", team)

	graph := chart.Chart{
		Width:  width,
		Height: height,
		Elements: []chart.Renderable{
			func(r chart.Renderer, cb chart.Box, chartDefaults chart.Style) {
				r.SetFontColor(chartTextColor)
				r.SetFontSize(12.0)
				tb := r.MeasureText(msg)
				x := (cb.Width() - tb.Width()) / 2
				y := (cb.Height() + tb.Height()) / 2
				r.Text(msg, x, y)
			},
		},
	}
	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
