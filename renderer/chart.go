package renderer

import (
	"errors"
	"fmt"

	"github.com/vicanso/go-charts/v2"

	portfolio "github.com/pezpher/portfolioAllocation-analysis"
)

// ValueChart renders the simulated value history as a line chart PNG.
func ValueChart(a *portfolio.Analysis, currency string) ([]byte, error) {
	if len(a.History) < 2 {
		return nil, errors.New("not enough value points to chart")
	}

	values := make([]float64, len(a.History))
	labels := make([]string, len(a.History))
	yMin, yMax := a.History[0].Value, a.History[0].Value
	for i, p := range a.History {
		values[i] = p.Value
		labels[i] = p.Date.String()
		if p.Value < yMin {
			yMin = p.Value
		}
		if p.Value > yMax {
			yMax = p.Value
		}
	}
	pad := (yMax - yMin) * 0.05
	yMin -= pad
	if yMin < 0 {
		yMin = 0
	}
	yMax += pad

	painter, err := charts.LineRender([][]float64{values},
		charts.TitleTextOptionFunc(fmt.Sprintf("Portfolio Value (%d Year, %s)", a.Horizon, currency)),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: labels, BoundaryGap: charts.FalseFlag(), SplitNumber: 10}),
		charts.YAxisOptionFunc(charts.YAxisOption{Min: &yMin, Max: &yMax, DivideCount: 5}),
		charts.ThemeOptionFunc(charts.ThemeLight),
		charts.WidthOptionFunc(1000),
		charts.HeightOptionFunc(500),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}

// AllocationChart renders the target weights as a pie chart PNG.
func AllocationChart(a *portfolio.Analysis, m *portfolio.Market) ([]byte, error) {
	if len(a.Portfolio) == 0 {
		return nil, errors.New("empty portfolio")
	}

	values := make([]float64, 0, len(a.Portfolio))
	labels := make([]string, 0, len(a.Portfolio))
	for _, h := range a.Portfolio {
		name := h.Ticker
		if sec := m.Get(h.Ticker); sec != nil {
			name = sec.Name()
		}
		values = append(values, h.Weight)
		labels = append(labels, fmt.Sprintf("%s (%s)", name, portfolio.Percent(h.Weight)))
	}

	painter, err := charts.PieRender(values,
		charts.TitleTextOptionFunc(fmt.Sprintf("Target Allocation (%d Year)", a.Horizon)),
		charts.LegendOptionFunc(charts.LegendOption{
			Data: labels,
			Top:  charts.PositionTop,
		}),
		charts.ThemeOptionFunc(charts.ThemeLight),
		charts.WidthOptionFunc(800),
		charts.HeightOptionFunc(600),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}
