package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/bubblechart/internal/chart"
	"github.com/dbmrq/bubblechart/internal/config"
	"github.com/dbmrq/bubblechart/internal/dataset"
	charterrors "github.com/dbmrq/bubblechart/internal/errors"
	"github.com/dbmrq/bubblechart/internal/logging"
	"github.com/dbmrq/bubblechart/internal/tui/components"
	"github.com/dbmrq/bubblechart/internal/tui/styles"
)

// Phase is the stage of the program.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReady
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// LoadFunc reads a dataset. dataset.Load is used by default.
type LoadFunc func(ctx context.Context, path string) (*dataset.Dataset, *dataset.Report, error)

// Options configures the model.
type Options struct {
	Context   context.Context
	Config    *config.Config
	Year      int // first year shown; out of range means the earliest year
	Logger    *logging.Logger
	SessionID string
	Load      LoadFunc
	Clock     func() time.Time
}

// Screen rows taken by the header, the slider and the status bar.
const chromeRows = 3

// Model is the Bubble Tea model for the bubblechart TUI.
type Model struct {
	ctx    context.Context
	cfg    *config.Config
	year   int
	logger *logging.Logger // scoped to the session
	base   *logging.Logger
	id     string
	load   LoadFunc
	now    func() time.Time
	tick   func(time.Duration, func(time.Time) tea.Msg) tea.Cmd
	keys   KeyMap

	header  *components.Header
	spinner *components.Spinner
	slider  *components.Slider
	filter  *components.CountryFilter
	chart   *components.ChartView
	status  *components.StatusBar
	help    *components.HelpOverlay

	phase   Phase
	session *chart.Session
	report  *dataset.Report
	err     error

	focus    components.Focus
	width    int
	height   int
	framing  bool
	playGen  int
	quitting bool
}

// New creates a model in the loading phase.
func New(opts Options) *Model {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Config == nil {
		opts.Config = config.NewConfig()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Global()
	}
	if opts.SessionID == "" {
		opts.SessionID = logging.NewSessionID()
	}
	if opts.Load == nil {
		opts.Load = dataset.Load
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	ctx := logging.WithSessionID(opts.Context, opts.SessionID)
	m := &Model{
		ctx:     ctx,
		cfg:     opts.Config,
		year:    opts.Year,
		logger:  opts.Logger.WithContext(ctx),
		base:    opts.Logger,
		id:      opts.SessionID,
		load:    opts.Load,
		now:     opts.Clock,
		tick:    tea.Tick,
		keys:    DefaultKeyMap(),
		header:  components.NewHeader(),
		spinner: components.NewSpinner(),
		slider:  components.NewSlider(),
		filter:  components.NewCountryFilter(nil),
		status:  components.NewStatusBar(),
		help:    components.NewHelpOverlay(),
		phase:   PhaseLoading,
		focus:   components.FocusChart,
		width:   120,
		height:  36,
	}
	m.slider.SetFocused(true)
	m.slider.SetLoop(m.cfg.Player.Loop)
	m.spinner.SetStatusText("Loading " + m.cfg.Data.Path)
	m.header.SetData(components.HeaderData{DataPath: m.cfg.Data.Path, SessionID: m.id})
	return m
}

// Phase returns the current phase.
func (m *Model) Phase() Phase {
	return m.phase
}

// Err returns the load error once the model has failed.
func (m *Model) Err() error {
	return m.err
}

// Session returns the chart session, or nil while loading.
func (m *Model) Session() *chart.Session {
	return m.session
}

// Init starts the spinner and loads the dataset.
func (m *Model) Init() tea.Cmd {
	m.spinner.Start(m.now())
	return tea.Batch(m.spinner.Init(), m.loadCmd())
}

func (m *Model) loadCmd() tea.Cmd {
	ctx, load, path := m.ctx, m.load, m.cfg.Data.Path
	return func() tea.Msg {
		ds, report, err := load(ctx, path)
		if err != nil {
			return DatasetFailedMsg{Err: err}
		}
		return DatasetLoadedMsg{Dataset: ds, Report: report}
	}
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case spinner.TickMsg:
		if m.phase != PhaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case DatasetLoadedMsg:
		return m, m.ready(msg.Dataset, msg.Report)

	case DatasetFailedMsg:
		m.phase = PhaseFailed
		m.err = msg.Err
		m.logger.Error("dataset load failed", "path", m.cfg.Data.Path, "error", msg.Err)
		return m, nil

	case FrameMsg:
		m.framing = false
		if m.session == nil {
			return m, nil
		}
		now := m.now()
		m.session.Advance(now)
		m.chart.Sync()
		if m.session.Animating(now) {
			return m, m.frameCmd()
		}
		return m, nil

	case PlayTickMsg:
		return m, m.handlePlayTick(msg)

	case components.SliderChangedMsg:
		return m, m.showYear(msg.Year)

	case components.PlayToggledMsg:
		m.playGen++
		m.status.SetPlaying(msg.Playing)
		if msg.Playing {
			return m, m.playCmd()
		}
		return m, nil

	case components.FilterToggledMsg:
		if m.session == nil {
			return m, nil
		}
		now := m.now()
		m.session.OnFilterToggled(msg.Country, msg.Selected, now)
		return m, m.afterRender(now)

	case components.SelectAllMsg:
		if m.session == nil {
			return m, nil
		}
		now := m.now()
		m.session.OnSelectAll(now)
		return m, m.afterRender(now)

	case components.SelectNoneMsg:
		if m.session == nil {
			return m, nil
		}
		now := m.now()
		m.session.OnSelectNone(now)
		return m, m.afterRender(now)

	case components.HelpClosedMsg:
		return m, nil

	case QuitMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.help.IsVisible() {
		return m, m.help.Update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case m.phase != PhaseReady:
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.Toggle()
		return m, nil
	case key.Matches(msg, m.keys.Focus):
		m.toggleFocus()
		return m, nil
	}

	if m.focus == components.FocusFilter {
		if msg.String() == "esc" {
			m.toggleFocus()
			return m, nil
		}
		return m, m.filter.Update(msg)
	}
	return m, m.slider.Update(msg)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.phase != PhaseReady || m.help.IsVisible() {
		return nil
	}

	if m.chart.Contains(msg.X, msg.Y) || m.chart.Hover() != "" {
		m.chart.HandleMouse(msg, m.now())
	}

	_, rows := m.chart.Size()
	onSlider := msg.Y == 1+rows && msg.Button == tea.MouseButtonLeft &&
		(msg.Action == tea.MouseActionPress || msg.Action == tea.MouseActionMotion)
	if !onSlider {
		return nil
	}
	year, ok := m.slider.ValueAt(msg.X)
	if !ok {
		return nil
	}

	// Grabbing the track stops autoplay, as the slider keys do.
	var stop tea.Cmd
	if m.slider.Playing() {
		m.slider.SetPlaying(false)
		stop = func() tea.Msg { return components.PlayToggledMsg{Playing: false} }
	}
	if !m.slider.SetValue(year) {
		return stop
	}
	return tea.Batch(stop, m.showYear(year))
}

func (m *Model) handlePlayTick(msg PlayTickMsg) tea.Cmd {
	if msg.Generation != m.playGen || !m.slider.Playing() {
		return nil
	}

	var cmds []tea.Cmd
	if m.slider.Advance() {
		cmds = append(cmds, m.showYear(m.slider.Value()))
	}
	if m.slider.Playing() {
		cmds = append(cmds, m.playCmd())
	} else {
		m.status.SetPlaying(false)
	}
	return tea.Batch(cmds...)
}

// ready builds the session for a loaded dataset and renders the first year.
func (m *Model) ready(ds *dataset.Dataset, report *dataset.Report) tea.Cmd {
	if ds == nil {
		ds = dataset.New(nil)
	}
	if report != nil && report.Source == "" {
		report.Source = m.cfg.Data.Path
	}
	report.Log(m.logger)
	m.report = report

	m.session = chart.NewSession(ds, m.cfg,
		chart.WithLogger(m.base),
		chart.WithSessionID(m.id))

	m.filter = components.NewCountryFilter(ds.Countries())
	m.filter.SetSwatches(m.session.Scales().Color.Apply)

	lo, hi, ok := ds.YearRange()
	if ok {
		m.slider.SetRange(lo, hi)
	}
	m.header.SetData(components.HeaderData{
		DataPath:  m.cfg.Data.Path,
		FirstYear: lo,
		LastYear:  hi,
		HasYears:  ok,
		Records:   ds.Len(),
		SessionID: m.id,
	})

	m.chart = components.NewChartView(m.session, m.cfg.Chart, 1, 1)
	m.chart.SetTooltipGap(m.cfg.Tooltip.CellX, m.cfg.Tooltip.CellY)
	m.layout()

	now := m.now()
	m.session.Start(m.year, now)
	m.slider.SetValue(m.session.Year())
	m.status.SetSkipped(report.SkippedCount())
	if ds.Empty() {
		m.status.SetWarning(charterrors.DatasetEmpty(m.cfg.Data.Path, report.SkippedCount()).Message)
	}
	m.phase = PhaseReady
	return m.afterRender(now)
}

func (m *Model) showYear(year int) tea.Cmd {
	if m.session == nil {
		return nil
	}
	now := m.now()
	diff := m.session.OnYearChanged(year, now)
	m.logger.WithContext(logging.WithYear(m.ctx, m.session.Year())).Debug("year shown",
		"entered", len(diff.Entered),
		"updated", len(diff.Updated),
		"exited", len(diff.Exited))
	return m.afterRender(now)
}

// afterRender refreshes the panels after a session command and starts the
// frame loop when a transition began.
func (m *Model) afterRender(now time.Time) tea.Cmd {
	m.chart.Sync()
	m.filter.Sync(m.session.Selection().IsSelected)

	year := m.session.Year()
	sel := m.session.Selection()
	m.status.SetYear(year)
	m.status.SetCounts(len(m.session.Visible(year)), sel.SelectedCount(), sel.Len())

	if m.session.Animating(now) {
		return m.frameCmd()
	}
	return nil
}

func (m *Model) frameCmd() tea.Cmd {
	if m.framing {
		return nil
	}
	m.framing = true
	return m.tick(m.cfg.Animation.FrameInterval(), func(t time.Time) tea.Msg {
		return FrameMsg{Time: t}
	})
}

func (m *Model) playCmd() tea.Cmd {
	gen := m.playGen
	return m.tick(m.cfg.Player.Interval, func(t time.Time) tea.Msg {
		return PlayTickMsg{Time: t, Generation: gen}
	})
}

func (m *Model) toggleFocus() {
	if m.focus == components.FocusChart {
		m.focus = components.FocusFilter
	} else {
		m.focus = components.FocusChart
	}
	m.slider.SetFocused(m.focus == components.FocusChart)
	m.filter.SetFocused(m.focus == components.FocusFilter)
	m.status.SetFocus(m.focus)
}

// filterWidth returns the width of the country column.
func (m *Model) filterWidth() int {
	return min(max(m.width/4, 16), 30)
}

// layout sizes the panels for the window.
func (m *Model) layout() {
	fw := m.filterWidth()
	cols := max(m.width-fw-1, 1)
	rows := max(m.height-chromeRows, 1)

	m.header.SetWidth(m.width)
	m.status.SetWidth(m.width)
	m.spinner.SetWidth(m.width)
	m.slider.SetWidth(cols)
	m.filter.SetSize(fw, rows)
	m.help.SetSize(min(m.width, 52), min(m.height, 28))
	if m.chart != nil {
		m.chart.SetSize(cols, rows)
		m.chart.SetOrigin(0, 1)
	}
}

// View renders the TUI.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.phase {
	case PhaseLoading:
		return m.viewLoading()
	case PhaseFailed:
		return m.viewFailed()
	}

	if m.help.IsVisible() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.help.View())
	}

	_, rows := m.chart.Size()
	side := lipgloss.NewStyle().
		Width(m.filterWidth()).
		Height(rows).
		MaxHeight(rows).
		Render(m.filter.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.chart.View(m.now()), " ", side)

	return strings.Join([]string{
		m.header.View(),
		body,
		m.slider.View(),
		m.status.View(),
	}, "\n")
}

func (m *Model) viewLoading() string {
	bar := components.NewShortcutBar(components.LoadingShortcuts...)
	return m.header.View() + "\n\n" + m.spinner.View(m.now()) + "\n\n" + bar.View()
}

func (m *Model) viewFailed() string {
	var b strings.Builder
	b.WriteString(styles.ErrorTextStyle.Bold(true).Render("Could not load " + m.cfg.Data.Path))
	b.WriteString("\n\n")
	b.WriteString(charterrors.FormatAny(m.err))
	b.WriteString("\n\n")
	b.WriteString(components.NewShortcutBar(components.FailedShortcuts...).View())
	box := styles.BoxStyle.BorderForeground(styles.Error).Render(b.String())
	return m.header.View() + "\n\n" + box
}

// Run starts the TUI and blocks until it exits. A dataset that failed to
// load is returned as the error.
func Run(opts Options) error {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(opts.Context))
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(*Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}
