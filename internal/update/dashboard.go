package update

import (
	"context"
	"fmt"

	"github.com/sandeepkv93/dashd/internal/chart"
	"github.com/sandeepkv93/dashd/internal/model"
	"github.com/sandeepkv93/dashd/internal/storage"
	"github.com/sandeepkv93/dashd/internal/views"
)

type DashboardSource interface {
	ListStatCards(ctx context.Context) ([]model.StatCard, error)
	ListActivity(ctx context.Context) ([]model.Activity, error)
	Series(ctx context.Context, name string) (model.Series, error)
}

func LoadDashboard(ctx context.Context, src DashboardSource) (DashboardData, error) {
	cards, err := src.ListStatCards(ctx)
	if err != nil {
		return DashboardData{}, fmt.Errorf("load stat cards: %w", err)
	}
	activity, err := src.ListActivity(ctx)
	if err != nil {
		return DashboardData{}, fmt.Errorf("load activity: %w", err)
	}
	series, err := src.Series(ctx, storage.WeeklySeries)
	if err != nil {
		return DashboardData{}, fmt.Errorf("load %s series: %w", storage.WeeklySeries, err)
	}
	return DashboardData{Cards: cards, Activity: activity, Series: series}, nil
}

// renderDashboardView redraws the chart on every render so it always uses
// the current theme's ink.
func (m Model) renderDashboardView(tk views.Tokens) string {
	cols, rows := views.ChartSize(m.uiDensity)
	cmds := chart.Render(m.Dashboard.Series, string(tk.Ink))
	return views.RenderDashboardPanel(views.DashboardData{
		Cards:    m.Dashboard.Cards,
		Chart:    views.RasterizeChart(cmds, cols, rows),
		Activity: m.Dashboard.Activity,
	}, tk)
}
