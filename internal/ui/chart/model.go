package chart

import (
	"strconv"
	"time"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/snptkdn/pomodoro/internal/core/model"
	"github.com/snptkdn/pomodoro/internal/core/session"
	"github.com/snptkdn/pomodoro/internal/core/wave"
	"github.com/snptkdn/pomodoro/internal/ui/theme"
)

const tickInterval = time.Second

// tickMsg advances the session by one sample.
type tickMsg time.Time

type keyMap struct {
	Quit key.Binding
}

func (keys keyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.Quit}
}

func (keys keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{keys.Quit}}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model is the bubbletea model driving the visualizer: it owns the single
// session slot, schedules one tick per second and redraws the chart on every
// update. Rendering is a pure function of the session, so redundant redraws
// between ticks are harmless.
type Model struct {
	session  *session.Session
	signals  []model.SignalConfig
	styles   theme.Styles
	showHelp bool
	keys     keyMap
	help     help.Model
	logger   *zap.Logger
	resets   int
	width    int
	height   int
}

// New creates the model with a freshly initialized session.
func New(settings theme.Settings, logger *zap.Logger) Model {
	signals := model.DefaultSignals()
	return Model{
		session:  session.New(signals),
		signals:  signals,
		styles:   settings.Styles(),
		showHelp: settings.ShowHelp,
		keys:     defaultKeyMap(),
		help:     help.New(),
		logger:   logger,
		width:    80,
		height:   24,
	}
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(at time.Time) tea.Msg {
		return tickMsg(at)
	})
}

func (m Model) Init() tea.Cmd {
	return tick()
}

// Update handles input, resize and tick messages. The next tick is scheduled
// only after the current one has been processed, so the interval is measured
// from the end of tick handling.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.logger.Info("quit requested")
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tickMsg:
		m.session.Tick()
		if m.session.Done() {
			m.resets++
			m.logger.Info("session complete, restarting",
				zap.Int("resets", m.resets),
				zap.Float64("cursor", m.session.Cursor()))
			m.session = session.New(m.signals)
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	header := m.headerView()
	footer := m.footerView()
	chartHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if m.width < 20 || chartHeight < 4 {
		return m.styles.Label.Render("terminal too small")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.chartView(m.width, chartHeight),
		footer,
	)
}

func (m Model) headerView() string {
	cursor := m.styles.Label.Render(strconv.FormatFloat(m.session.Cursor(), 'f', 0, 64))
	title := m.styles.Title.Render("Pomodoro")
	elapsed := m.styles.Label.Render(m.session.ElapsedLabel())

	third := m.width / 3
	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.PlaceHorizontal(third, lipgloss.Left, cursor),
		lipgloss.PlaceHorizontal(m.width-2*third, lipgloss.Center, title),
		lipgloss.PlaceHorizontal(third, lipgloss.Right, elapsed),
	)
}

func (m Model) footerView() string {
	legend := make([]string, 0, len(m.signals))
	for _, signal := range m.signals {
		legend = append(legend, m.styles.Dataset(signal.Name).Render("⣿ "+signal.Name))
	}
	footer := lipgloss.JoinHorizontal(lipgloss.Top, legend...)
	if m.showHelp {
		footer = lipgloss.JoinHorizontal(lipgloss.Top, footer, "   ", m.help.View(m.keys))
	}
	return footer
}

// chartView draws the three windows as braille polylines, x-bounded by the
// session clock and y fixed at the amplitude limit.
func (m Model) chartView(width, height int) string {
	start, end := m.session.Clock()
	chart := linechart.New(width, height,
		start, end,
		-model.AmplitudeLimit, model.AmplitudeLimit,
		linechart.WithXYSteps(4, 4))
	chart.AxisStyle = m.styles.Axis
	chart.LabelStyle = m.styles.Label
	chart.DrawXYAxisAndLabel()

	points := make([]wave.Sample, 0, model.WindowSize)
	for _, track := range m.session.Tracks() {
		points = track.Points(points[:0])
		style := m.styles.Dataset(track.Name())
		for i := 1; i < len(points); i++ {
			chart.DrawBrailleLineWithStyle(
				canvas.Float64Point{X: points[i-1].X, Y: points[i-1].Y},
				canvas.Float64Point{X: points[i].X, Y: points[i].Y},
				style,
			)
		}
	}
	return chart.View()
}
