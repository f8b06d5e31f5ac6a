package viz

import (
	"errors"
	"slices"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/san-kum/bsviz/internal/config"
	"github.com/san-kum/bsviz/internal/field"
	"github.com/san-kum/bsviz/internal/logging"
	"github.com/san-kum/bsviz/internal/parse"
	"github.com/san-kum/bsviz/internal/search"
	"github.com/san-kum/bsviz/internal/storage"
)

const (
	intervalStep    = 250 * time.Millisecond
	maxStepInterval = 5 * time.Second

	arrayPlaceholder  = "1,3,5,7,9"
	targetPlaceholder = "target"
)

type TickMsg time.Time

// Model is the visualizer: it owns the two input fields, the value blocks
// and the search engine, and mutates them only from Update.
type Model struct {
	cfg    config.Config
	engine *search.Engine
	array  *field.Field
	target *field.Field
	blocks []*field.Field
	lay    layout

	theme    Theme
	st       styles
	keys     keyMap
	help     help.Model
	showHelp bool

	now         time.Time
	paused      bool
	errText     string
	errUntil    time.Time
	buttonHover bool
	affordance  field.Affordance

	// interval width (high-low+1) after every comparison
	widths []float64

	store   *storage.Store
	saved   bool
	savedID string
}

// NewModel builds the visualizer and loads the configured initial search.
func NewModel(cfg *config.Config, now time.Time) Model {
	theme := GetTheme(cfg.Theme)
	st := newStyles(theme)

	initial := slices.Clone(cfg.Initial.Array)
	slices.Sort(initial)
	lay := computeLayout(0, 0, initial)

	m := Model{
		cfg:    *cfg,
		engine: search.New(cfg.StepInterval),
		lay:    lay,
		theme:  theme,
		st:     st,
		keys:   newKeyMap(),
		help:   help.New(),
		now:    now,
	}
	m.array = field.New(lay.array, field.Options{
		Value:         parse.Join(initial),
		AllowList:     field.NumericList(),
		BlinkInterval: cfg.BlinkInterval,
		Placeholder:   arrayPlaceholder,
		Style:         st.inputText,
	}, now)

	targetText := ""
	if cfg.Initial.Target != nil {
		targetText = strconv.Itoa(*cfg.Initial.Target)
	}
	m.target = field.New(lay.target, field.Options{
		Value:         targetText,
		AllowList:     field.TargetList(),
		BlinkInterval: cfg.BlinkInterval,
		Placeholder:   targetPlaceholder,
		Style:         st.inputText,
	}, now)

	m.engine.Reset(initial, nil, now)
	if cfg.Initial.Target != nil {
		m.engine.SetTarget(*cfg.Initial.Target)
	}
	m.rebuildBlocks()
	m.widths = []float64{float64(len(initial))}
	return m
}

// WithStore makes the model record every finished search in s.
func (m Model) WithStore(s *storage.Store) Model {
	m.store = s
	return m
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.cfg.FrameInterval(), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and advances the search.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.lay = computeLayout(msg.Width, msg.Height, m.engine.Array())
		m.help.Width = msg.Width
		m.relayout()
	case TickMsg:
		m.frame(time.Time(msg))
		return m, m.tick()
	case tea.MouseMsg:
		m.mouse(msg)
	case tea.KeyMsg:
		return m.key(msg)
	}
	return m, nil
}

// frame runs the once-per-frame updates: blink, engine step, banner expiry
// and pointer affordance.
func (m *Model) frame(now time.Time) {
	m.now = now
	m.array.UpdateBlink(now)
	m.target.UpdateBlink(now)

	if !m.paused {
		m.step(now)
	}
	if m.errText != "" && !now.Before(m.errUntil) {
		m.errText = ""
	}
	m.affordance = field.ResolveAffordance(m.array, m.target)
}

func (m *Model) step(now time.Time) {
	tr := m.engine.Tick(now)
	switch tr {
	case search.TransitionNone:
		return
	case search.TransitionPause:
		logging.Debug("search settled", zap.Int("len", m.engine.Len()))
		return
	}

	w := m.engine.High() - m.engine.Low() + 1
	if w < 0 {
		w = 0
	}
	m.widths = append(m.widths, float64(w))
	logging.Debug("comparison",
		zap.Stringer("transition", tr),
		zap.Int("low", m.engine.Low()),
		zap.Int("mid", m.engine.Mid()),
		zap.Int("high", m.engine.High()),
	)

	if st := m.engine.Status(); st == search.StatusFound || st == search.StatusExhausted {
		logging.Info("search finished",
			zap.Stringer("status", st),
			zap.Int("comparisons", m.engine.Comparisons()),
		)
		m.record()
	}
}

func (m *Model) record() {
	if m.store == nil || m.saved {
		return
	}
	m.saved = true
	target, _ := m.engine.Target()
	id, err := m.store.Save(m.engine.Array(), target, m.engine.Interval(), m.engine.History())
	if err != nil {
		logging.Error("failed to save run", zap.Error(err))
		m.showError("could not save run: " + err.Error())
		return
	}
	m.savedID = id
	logging.Info("run saved", zap.String("id", id))
}

func (m *Model) mouse(msg tea.MouseMsg) {
	x, y := msg.X, msg.Y
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		ev := field.PointerDown{X: x, Y: y}
		for _, f := range m.inputs() {
			f.Handle(ev)
			if f.Focused() {
				f.ResetBlink(m.now)
			}
		}
		if m.lay.button.Contains(x, y) {
			m.search()
			break
		}
		for _, b := range m.blocks {
			if b.Bounds().Contains(x, y) {
				m.target.SetValue(b.Value())
				break
			}
		}
	case tea.MouseActionMotion:
		ev := field.PointerMove{X: x, Y: y}
		for _, f := range m.inputs() {
			f.Handle(ev)
		}
		m.buttonHover = m.lay.button.Contains(x, y)
	}
	m.affordance = field.ResolveAffordance(m.array, m.target)
}

func (m Model) key(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if f := m.focused(); f != nil {
		switch msg.Type {
		case tea.KeyTab:
			m.cycleFocus()
			return m, nil
		case tea.KeyEsc:
			f.Blur()
			return m, nil
		}
		for _, sym := range symbolsFor(msg) {
			f.Handle(field.KeyDown{Symbol: sym})
		}
		f.ResetBlink(m.now)
		if msg.Type == tea.KeyEnter && !f.Focused() {
			m.search()
		}
		m.affordance = field.ResolveAffordance(m.array, m.target)
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Focus):
		m.cycleFocus()
	case key.Matches(msg, m.keys.Search):
		m.search()
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
	case key.Matches(msg, m.keys.Faster):
		m.adjustInterval(-intervalStep)
	case key.Matches(msg, m.keys.Slower):
		m.adjustInterval(intervalStep)
	case key.Matches(msg, m.keys.Replay):
		m.restart()
	case key.Matches(msg, m.keys.Theme):
		m.setTheme(NextTheme(m.theme.Name))
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	}
	m.affordance = field.ResolveAffordance(m.array, m.target)
	return m, nil
}

func (m *Model) inputs() []*field.Field {
	return []*field.Field{m.array, m.target}
}

func (m *Model) focused() *field.Field {
	for _, f := range m.inputs() {
		if f.Focused() {
			return f
		}
	}
	return nil
}

// cycleFocus moves focus array -> target -> array. With nothing focused it
// starts at the array field.
func (m *Model) cycleFocus() {
	next := m.array
	if m.array.Focused() {
		next = m.target
	}
	m.array.Blur()
	m.target.Blur()
	next.Focus()
	next.ResetBlink(m.now)
}

// search parses both fields and restarts the engine. A blank field is a
// silent no-op; malformed input shows the banner and leaves the engine as
// it was.
func (m *Model) search() {
	target, hasTarget, targetErr := parse.Target(m.target.Value())
	values, hasArray, arrayErr := parse.Array(m.array.Value())

	if (targetErr == nil && !hasTarget) || (arrayErr == nil && !hasArray) {
		return
	}
	if err := errors.Join(arrayErr, targetErr); err != nil {
		logging.Warn("invalid search input",
			zap.String("array", m.array.Value()),
			zap.String("target", m.target.Value()),
			zap.Error(err),
		)
		switch {
		case arrayErr != nil:
			m.showError("array must contain at least one integer")
		default:
			m.showError("target must be a single integer")
		}
		return
	}

	m.engine.Reset(values, &target, m.now)
	m.afterReset()
	logging.Info("search started",
		zap.Int("len", len(values)),
		zap.Int("target", target),
		zap.Duration("interval", m.engine.Interval()),
	)
}

// restart replays the current search from its initial pointers.
func (m *Model) restart() {
	arr := m.engine.Array()
	if target, ok := m.engine.Target(); ok {
		m.engine.Reset(arr, &target, m.now)
	} else {
		m.engine.Reset(arr, nil, m.now)
	}
	m.afterReset()
}

func (m *Model) afterReset() {
	m.paused = false
	m.saved = false
	m.savedID = ""
	m.errText = ""
	m.widths = []float64{float64(m.engine.Len())}
	m.lay = computeLayout(m.lay.width, m.lay.height, m.engine.Array())
	m.relayout()
	m.rebuildBlocks()
}

func (m *Model) showError(text string) {
	m.errText = text
	m.errUntil = m.now.Add(m.cfg.ErrorDuration)
}

func (m *Model) adjustInterval(delta time.Duration) {
	d := m.engine.Interval() + delta
	if d < config.MinStepInterval {
		d = config.MinStepInterval
	}
	if d > maxStepInterval {
		d = maxStepInterval
	}
	m.engine.SetInterval(d)
}

func (m *Model) setTheme(t Theme) {
	m.theme = t
	m.st = newStyles(t)
	m.array.SetStyle(m.st.inputText)
	m.target.SetStyle(m.st.inputText)
}

func (m *Model) relayout() {
	m.array.SetBounds(m.lay.array)
	m.target.SetBounds(m.lay.target)
	for i, b := range m.blocks {
		b.SetBounds(m.lay.block(i))
	}
}

// rebuildBlocks creates one read-only field per array element, positioned
// by index.
func (m *Model) rebuildBlocks() {
	arr := m.engine.Array()
	m.blocks = make([]*field.Field, len(arr))
	for i, v := range arr {
		m.blocks[i] = field.New(m.lay.block(i), field.Options{
			Value:    strconv.Itoa(v),
			ReadOnly: true,
			Style:    m.st.block,
		}, m.now)
	}
}
