package demo

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jquag/banner/internal/banner"
	"github.com/jquag/banner/internal/config"
	"github.com/jquag/banner/internal/termhost"
)

// stepMsg advances the script.
type stepMsg struct{ index int }

// configMsg delivers a hot-reloaded configuration.
type configMsg struct{ cfg *config.Config }

// Model is the bubbletea model for the scripted demo.
type Model struct {
	host      *termhost.Host
	banner    *banner.Banner
	presenter banner.Presenter
	logger    *slog.Logger

	steps    []Step
	index    int
	finished bool

	configCh <-chan *config.Config

	width int
}

// statusStyle renders the footer line.
var statusStyle = lipgloss.NewStyle().Faint(true)

// NewModel builds the demo around a fresh banner. configCh may be nil; when
// set, reloaded configs are applied to subsequent transitions.
func NewModel(cfg *config.Config, steps []Step, configCh <-chan *config.Config, logger *slog.Logger) (*Model, error) {
	if logger == nil {
		logger = slog.Default()
	}

	h := termhost.New(80)
	b, err := banner.New(h, cfg, 0, logger)
	if err != nil {
		return nil, err
	}

	return &Model{
		host:      h,
		banner:    b,
		presenter: banner.NewManager(b, logger),
		logger:    logger,
		steps:     steps,
		configCh:  configCh,
		width:     80,
	}, nil
}

// Init schedules the first script step.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.scheduleStep(0, 500*time.Millisecond)}
	if m.configCh != nil {
		cmds = append(cmds, m.waitForConfig())
	}
	return tea.Batch(cmds...)
}

// scheduleStep queues the step at index after the delay.
func (m *Model) scheduleStep(index int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg { return stepMsg{index: index} })
}

// waitForConfig blocks on the watcher channel in a command goroutine.
func (m *Model) waitForConfig() tea.Cmd {
	return func() tea.Msg {
		cfg, ok := <-m.configCh
		if !ok {
			return nil
		}
		return configMsg{cfg: cfg}
	}
}

// Update drives the script and routes everything else to the host.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, m.host.Update(msg)

	case stepMsg:
		return m, m.runStep(msg.index)

	case configMsg:
		m.banner.SetConfig(msg.cfg)
		m.logger.Debug("applied reloaded config")
		return m, m.waitForConfig()
	}

	return m, m.host.Update(msg)
}

// runStep executes one script step and schedules the next.
func (m *Model) runStep(index int) tea.Cmd {
	if index >= len(m.steps) {
		m.finished = true
		return nil
	}
	step := m.steps[index]
	m.index = index

	switch step.Op {
	case "hide":
		m.presenter.Hide()
	default:
		req, err := step.Request()
		if err != nil {
			m.logger.Warn("skipping invalid step", "step", index+1, "error", err)
			break
		}
		switch step.Op {
		case "present":
			m.presenter.Present(req)
		case "show":
			m.presenter.Show(req)
		case "change":
			m.presenter.Change(req)
		}
	}

	cmds := []tea.Cmd{m.host.Flush(), m.scheduleStep(index+1, step.Delay())}
	return tea.Batch(cmds...)
}

// View renders the banner strip with a status footer.
func (m *Model) View() string {
	bannerView := m.host.View()
	if bannerView == "" && m.width > 0 {
		bannerView = strings.Repeat(" ", m.width)
	}

	status := "step " + strconv.Itoa(m.index+1) + "/" + strconv.Itoa(len(m.steps)) +
		"  phase: " + m.banner.Phase().String() + "  (q to quit)"
	if m.finished {
		status = "script finished  (q to quit)"
	}

	return bannerView + "\n\n" + statusStyle.Render(status) + "\n"
}
