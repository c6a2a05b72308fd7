package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/kutubxona/internal/tui/styles"
)

// ErrCancelled is returned when the user aborts loading
var ErrCancelled = errors.New("loading cancelled")

const loadingLabel = "Kitoblar yuklanmoqda..."

// LoaderModel shows a spinner until the catalog load finishes
type LoaderModel struct {
	spinner spinner.Model
	keys    KeyMap
	load    tea.Cmd
	styles  styles.Styles
	cancel  context.CancelFunc

	done  bool
	count int
	err   error
}

// NewLoaderModel wraps load with a spinner. cancel is called if the user quits early.
func NewLoaderModel(load tea.Cmd, st styles.Styles, cancel context.CancelFunc) LoaderModel {
	sp := spinner.New(
		spinner.WithSpinner(spinner.Spinner{Frames: styles.SpinnerFrames, FPS: time.Second / 12}),
		spinner.WithStyle(st.Spinner),
	)
	return LoaderModel{spinner: sp, keys: DefaultKeyMap(), load: load, styles: st, cancel: cancel}
}

func (m LoaderModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load)
}

func (m LoaderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case CatalogLoadedMsg:
		m.done = true
		m.count = msg.Count
		return m, tea.Quit

	case ErrMsg:
		m.done = true
		m.err = msg
		return m, tea.Quit

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Cancel) {
			if m.cancel != nil {
				m.cancel()
			}
			m.done = true
			m.err = ErrCancelled
			return m, tea.Quit
		}
		return m, nil

	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m LoaderModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.styles.Subtitle.Render(loadingLabel) +
		"  " + m.styles.Dim.Render(m.keys.HelpLine()) + "\n"
}

// Done reports whether loading finished, failed or was cancelled
func (m LoaderModel) Done() bool { return m.done }

// Count is the number of books loaded
func (m LoaderModel) Count() int { return m.count }

// Err is the load failure or ErrCancelled
func (m LoaderModel) Err() error { return m.err }

// RunLoader runs the spinner program until the catalog is loaded.
// It returns the number of books loaded.
func RunLoader(
	ctx context.Context,
	loader CatalogLoader,
	st styles.Styles,
	timeout time.Duration,
	opts ...tea.ProgramOption,
) (int, error) {
	loadCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := NewLoaderModel(LoadCatalogCmd(loadCtx, loader, timeout), st, cancel)
	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return 0, err
	}

	m, ok := final.(LoaderModel)
	if !ok {
		return 0, errors.New("unexpected loader model")
	}
	return m.count, m.err
}
