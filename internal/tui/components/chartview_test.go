package components

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dbmrq/bubblechart/internal/chart"
	"github.com/dbmrq/bubblechart/internal/config"
	"github.com/dbmrq/bubblechart/internal/dataset"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// newTestChartView puts the largest bubble of 2000 centred on cell (96, 2)
// of a 100x30 canvas drawn one row below the top of the screen.
func newTestChartView(t *testing.T) (*ChartView, *chart.Session) {
	t.Helper()
	ds := dataset.New([]dataset.Record{
		{Country: "Wakanda", Year: 2000, GNIPerCapita: 10000, LifeExpectancy: 90, Population: 1000000},
		{Country: "Genovia", Year: 2000, GNIPerCapita: 100, LifeExpectancy: 50, Population: 10},
	})
	cfg := config.NewConfig()
	s := chart.NewSession(ds, cfg, chart.WithSessionID("test"))
	s.Start(2000, t0)

	v := NewChartView(s, cfg.Chart, 100, 30)
	v.SetOrigin(0, 1)
	return v, s
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion}
}

func TestChartViewSize(t *testing.T) {
	v, _ := newTestChartView(t)
	if cols, rows := v.Size(); cols != 100 || rows != 30 {
		t.Errorf("Size() = %d, %d", cols, rows)
	}

	v.SetSize(0, -3)
	if cols, rows := v.Size(); cols != 1 || rows != 1 {
		t.Errorf("sizes should be raised to one cell, got %d, %d", cols, rows)
	}
}

func TestChartViewContains(t *testing.T) {
	v, _ := newTestChartView(t)

	tests := []struct {
		x, y int
		want bool
	}{
		{0, 1, true},
		{99, 30, true},
		{0, 0, false},
		{100, 5, false},
		{5, 31, false},
	}
	for _, tt := range tests {
		if got := v.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestChartViewHover(t *testing.T) {
	v, s := newTestChartView(t)
	now := t0.Add(2 * time.Second)

	if !v.HandleMouse(motion(96, 3), now) {
		t.Fatal("entering a bubble should change the tooltip")
	}
	if v.Hover() != "Wakanda" {
		t.Fatalf("expected hover on Wakanda, got %q", v.Hover())
	}
	if !s.Tooltip().Visible() || s.Tooltip().Title() != "Wakanda" {
		t.Fatal("tooltip should describe Wakanda")
	}
	x0, _ := s.Tooltip().Position()

	v.HandleMouse(motion(95, 3), now)
	if v.Hover() != "Wakanda" {
		t.Errorf("moving within the bubble should keep the hover, got %q", v.Hover())
	}
	if x1, _ := s.Tooltip().Position(); x1 >= x0 {
		t.Errorf("tooltip should follow the pointer left, %v -> %v", x0, x1)
	}

	if !v.HandleMouse(motion(50, 15), now) {
		t.Error("leaving the bubble should change the tooltip")
	}
	if v.Hover() != "" || s.Tooltip().Visible() {
		t.Error("tooltip should be hidden after leaving")
	}

	if v.HandleMouse(motion(50, 0), now) {
		t.Error("moving off the canvas without a hover changes nothing")
	}
}

func TestChartViewHoverDuringEnter(t *testing.T) {
	v, _ := newTestChartView(t)

	// Bubbles enter with zero radius.
	if v.HandleMouse(motion(96, 3), t0) {
		t.Error("a bubble with zero radius cannot be hovered")
	}
}

func TestChartViewSync(t *testing.T) {
	v, s := newTestChartView(t)
	now := t0.Add(2 * time.Second)
	v.HandleMouse(motion(96, 3), now)

	s.OnFilterToggled("Wakanda", false, now)
	v.Sync()
	if v.Hover() != "" {
		t.Error("hover should be cleared once the bubble exits")
	}
}

func TestChartViewView(t *testing.T) {
	v, _ := newTestChartView(t)
	now := t0.Add(2 * time.Second)

	view := v.View(now)
	if lines := strings.Split(view, "\n"); len(lines) != 30 {
		t.Errorf("expected 30 rows, got %d", len(lines))
	}
	if strings.Contains(view, "GNI:") {
		t.Error("no tooltip should be drawn before hovering")
	}

	v.HandleMouse(motion(96, 3), now)
	view = v.View(now)
	for _, want := range []string{"Wakanda", "GNI: $10,000", "Life Expectancy: 90", "Population: 1,000,000"} {
		if !strings.Contains(view, want) {
			t.Errorf("tooltip should contain %q", want)
		}
	}
}

func TestChartViewTooltipClearsPointerCell(t *testing.T) {
	v, s := newTestChartView(t)
	now := t0.Add(2 * time.Second)
	v.HandleMouse(motion(96, 3), now)

	// The pointer sits in canvas cell (96, 2). The 10px offset alone lands
	// one column right and one row down, so the box would touch the pointer.
	v.SetTooltipGap(0, 0)
	if col, row := v.tooltipCell(s.Tooltip()); col != 97 || row != 3 {
		t.Errorf("expected box at (97, 3) without a gap, got (%d, %d)", col, row)
	}

	v.SetTooltipGap(config.DefaultTooltipCellX, config.DefaultTooltipCellY)
	if col, row := v.tooltipCell(s.Tooltip()); col != 98 || row != 3 {
		t.Errorf("expected box at (98, 3) with the default gap, got (%d, %d)", col, row)
	}
}

func TestTooltipBox(t *testing.T) {
	box := TooltipBox("Genovia", []string{"GNI: $5", "Population: 12"})

	want := []string{
		"╭────────────────╮",
		"│ Genovia        │",
		"│ GNI: $5        │",
		"│ Population: 12 │",
		"╰────────────────╯",
	}
	if len(box) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(box))
	}
	for i := range want {
		if box[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, box[i], want[i])
		}
	}
}
