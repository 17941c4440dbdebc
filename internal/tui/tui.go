// Package tui is the bubbletea shell: two editor panes over a resizable
// bottom panel (diff or preview) and a status bar. All state changes go
// through the reducers in state/ and the managers in buffers/ and
// classify/; this file only routes messages.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"diffpad/internal/buffers"
	"diffpad/internal/classify"
	"diffpad/internal/diff"
	"diffpad/internal/log"
	"diffpad/internal/prefs"
	"diffpad/internal/session"
	"diffpad/internal/tui/state"
	"diffpad/internal/tui/util"
	"diffpad/internal/tui/widgets/chips"
	"diffpad/internal/tui/widgets/diffpanel"
	"diffpad/internal/tui/widgets/editorpane"
	"diffpad/internal/tui/widgets/helpoverlay"
	"diffpad/internal/tui/widgets/langpicker"
	"diffpad/internal/tui/widgets/statusbar"
	"diffpad/internal/watch"
)

// Options carries startup wiring from main.
type Options struct {
	Store   *prefs.Store
	Watcher *watch.Watcher // nil disables on-disk change notices

	SessionPath  string
	OriginalPath string
	ModifiedPath string
}

// Run builds the model and drives the program until quit. The buffers are
// released on the way out so a relaunch starts fresh.
func Run(opts Options) error {
	m, err := newModel(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if fm, ok := final.(model); ok {
		fm.mgr.Release()
	}
	return err
}

// ===== Messages =====

type classifyTickMsg struct{ gen int }

type classifiedMsg struct {
	gen int
	tag string
	err error
}

type watchMsg watch.Event

func classifyTick(gen int) tea.Cmd {
	return tea.Tick(classify.DebounceWindow, func(time.Time) tea.Msg {
		return classifyTickMsg{gen: gen}
	})
}

func classifyRun(p *classify.Pipeline, gen int, sample string) tea.Cmd {
	return func() tea.Msg {
		tag, err := p.Classify(sample)
		return classifiedMsg{gen: gen, tag: tag, err: err}
	}
}

func waitWatch(w *watch.Watcher) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-w.Events()
		if !ok {
			return nil
		}
		return watchMsg(ev)
	}
}

// ===== Model =====

// changeQueue collects buffer change events raised during an Update pass.
// The model holds a pointer so copies share one queue.
type changeQueue struct{ evs []buffers.Change }

func (q *changeQueue) drain() []buffers.Change {
	evs := q.evs
	q.evs = nil
	return evs
}

type model struct {
	mgr     *buffers.Manager
	orig    *buffers.Buffer
	mod     *buffers.Buffer
	pipe    *classify.Pipeline
	store   *prefs.Store
	watcher *watch.Watcher
	changes *changeQueue

	ui    state.UIState
	sizer state.PanelSizer
	sized bool // sizer has seen a real viewport

	picker   langpicker.Picker
	prompt   prompt
	showHelp bool

	panel diffpanel.Panel
	pane  editorpane.Pane
	bar   statusbar.StatusBar
	help  helpoverlay.HelpOverlay

	res diff.Result

	paths       map[buffers.Name]string
	stale       map[buffers.Name]bool
	sessionPath string

	initCmd tea.Cmd
	now     func() time.Time
}

func newModel(opts Options) (model, error) {
	mgr := buffers.NewManager()
	queue := &changeQueue{}
	mgr.OnChange(func(c buffers.Change) { queue.evs = append(queue.evs, c) })

	m := model{
		mgr:         mgr,
		orig:        mgr.Acquire(buffers.Original),
		mod:         mgr.Acquire(buffers.Modified),
		pipe:        classify.NewPipeline(classify.Chroma{}),
		store:       opts.Store,
		watcher:     opts.Watcher,
		changes:     queue,
		panel:       diffpanel.NewPanel(),
		pane:        editorpane.NewPane(),
		bar:         statusbar.NewStatusBar(),
		help:        helpoverlay.NewHelpOverlay(),
		paths:       map[buffers.Name]string{},
		stale:       map[buffers.Name]bool{},
		sessionPath: opts.SessionPath,
		now:         time.Now,
	}

	m.ui = state.UIState{
		Mode:        state.CMD,
		Layout:      layoutFromPref(m.store.String(prefs.KeyDiffLayout)),
		Detail:      detailFromPref(m.store.String(prefs.KeyInlineDetail)),
		Wrap:        m.store.Bool(prefs.KeyWrapLines),
		LineNumbers: m.store.Bool(prefs.KeyShowLineNumbers),
		Backgrounds: m.store.Bool(prefs.KeyHighlightBackgrounds),
		Dark:        m.store.Bool(prefs.KeyDarkMode),
		Focus:       state.PaneOriginal,
	}
	m.orig.SetShowLineNumbers(m.ui.LineNumbers)
	m.mod.SetShowLineNumbers(m.ui.LineNumbers)
	m.orig.SetPlaceholder("Paste or type the original text")
	m.mod.SetPlaceholder("Paste or type the modified text")

	if sel := m.store.String(prefs.KeyLanguage); sel != classify.SelectionAuto {
		m.pipe.SetSelection(sel)
		m.mgr.SetLanguage(m.pipe.Effective())
	}

	if opts.SessionPath != "" {
		s, err := session.Load(opts.SessionPath)
		if err != nil {
			return model{}, err
		}
		m.applySession(s)
	} else {
		if opts.OriginalPath != "" {
			if err := m.loadInto(buffers.Original, opts.OriginalPath); err != nil {
				return model{}, err
			}
		}
		if opts.ModifiedPath != "" {
			if err := m.loadInto(buffers.Modified, opts.ModifiedPath); err != nil {
				return model{}, err
			}
		}
	}

	m.res = diff.Compute(m.orig.Text(), m.mod.Text())
	m.changes.drain()
	if gen, ok := m.pipe.Trigger(); ok {
		m.initCmd = classifyTick(gen)
	}
	return m, nil
}

func (m *model) applySession(s *session.Session) {
	m.orig.SetText(s.Original.Text, buffers.OriginLoad)
	m.mod.SetText(s.Modified.Text, buffers.OriginLoad)
	if s.Original.Path != "" {
		m.paths[buffers.Original] = s.Original.Path
		m.watchPath(buffers.Original, s.Original.Path)
	}
	if s.Modified.Path != "" {
		m.paths[buffers.Modified] = s.Modified.Path
		m.watchPath(buffers.Modified, s.Modified.Path)
	}
	if changed, _ := m.pipe.SetSelection(s.Language); changed {
		m.store.SetString(prefs.KeyLanguage, s.Language)
	}
	m.mgr.SetLanguage(m.pipe.Effective())
	log.Info(log.CatSession, "loaded", "path", m.sessionPath)
}

func (m *model) loadInto(name buffers.Name, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	m.bufferFor(name).SetText(string(data), buffers.OriginLoad)
	m.paths[name] = path
	delete(m.stale, name)
	m.watchPath(name, path)
	log.Info(log.CatBuffers, "loaded file", "pane", string(name), "path", path)
	return nil
}

// watchPath degrades silently: an unwatchable file still edits fine, it
// just gets no reload notices.
func (m *model) watchPath(name buffers.Name, path string) {
	if m.watcher == nil {
		return
	}
	if err := m.watcher.Watch(string(name), path); err != nil {
		log.Warn(log.CatWatch, "watch failed", "path", path, "err", err)
	}
}

func (m model) bufferFor(name buffers.Name) *buffers.Buffer {
	if name == buffers.Modified {
		return m.mod
	}
	return m.orig
}

func (m model) focusedName() buffers.Name {
	if m.ui.Focus == state.PaneModified {
		return buffers.Modified
	}
	return buffers.Original
}

func (m model) focused() *buffers.Buffer { return m.bufferFor(m.focusedName()) }

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.initCmd}
	if m.watcher != nil {
		cmds = append(cmds, waitWatch(m.watcher))
	}
	return tea.Batch(cmds...)
}

// ===== Update =====

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.onResize(msg), nil

	case classifyTickMsg:
		decision, sample := m.pipe.Fire(msg.gen, m.orig.Text(), m.mod.Text())
		switch decision {
		case classify.FireClassify:
			return m, classifyRun(m.pipe, msg.gen, sample)
		case classify.FireResolved:
			m.mgr.SetLanguage(m.pipe.Effective())
		}
		return m, nil

	case classifiedMsg:
		if m.pipe.Complete(msg.gen, msg.tag, msg.err) {
			m.mgr.SetLanguage(m.pipe.Effective())
		}
		return m, nil

	case watchMsg:
		name := buffers.Name(msg.Key)
		m.stale[name] = true
		m.ui.Notice = fmt.Sprintf("%s changed on disk (r to reload)", filepath.Base(msg.Path))
		log.Info(log.CatWatch, "on-disk change", "pane", msg.Key, "path", msg.Path)
		if m.watcher == nil {
			return m, nil
		}
		return m, waitWatch(m.watcher)

	case tea.KeyMsg:
		return m.onKey(msg)

	case tea.MouseMsg:
		return m.onMouse(msg)
	}
	return m, nil
}

func (m model) onResize(msg tea.WindowSizeMsg) model {
	m.ui = state.Resize(m.ui, msg.Width, msg.Height)
	if !m.sized {
		m.sizer = state.NewPanelSizer(m.store.Int(prefs.KeyPanelHeight), msg.Height)
		m.sized = true
	} else {
		next, commit := m.sizer.SetViewport(msg.Height)
		m.sizer = next
		if commit {
			m.store.SetInt(prefs.KeyPanelHeight, m.sizer.Height)
		}
	}
	m.layoutBuffers()
	return m
}

// react runs after anything that may have changed a buffer: recompute the
// diff and reschedule classification.
func (m model) react() (model, tea.Cmd) {
	if len(m.changes.evs) == 0 {
		return m, nil
	}
	m.changes.drain()
	m.res = diff.Compute(m.orig.Text(), m.mod.Text())
	if gen, ok := m.pipe.Trigger(); ok {
		return m, classifyTick(gen)
	}
	return m, nil
}

func (m model) reactTea() (tea.Model, tea.Cmd) {
	m2, cmd := m.react()
	return m2, cmd
}

// ===== Keys =====

func (m model) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.picker.Open {
		return m.onPickerKey(msg)
	}
	if m.prompt.active {
		return m.onPromptKey(msg)
	}
	if m.ui.Mode == state.INSERT {
		return m.onInsertKey(msg)
	}
	return m.onCmdKey(msg)
}

func (m model) onPickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.picker = m.picker.Closed()
		return m, nil
	case "enter":
		tag, ok := m.picker.Selected()
		m.picker = m.picker.Closed()
		if !ok {
			return m, nil
		}
		return m.applySelection(tag)
	case "down", "ctrl+n":
		m.picker = m.picker.Down()
		return m, nil
	case "up", "ctrl+p":
		m.picker = m.picker.Up()
		return m, nil
	case "backspace", "ctrl+h":
		m.picker = m.picker.Erased()
		return m, nil
	default:
		if msg.Type == tea.KeyRunes {
			m.picker = m.picker.Typed(string(msg.Runes))
		}
		return m, nil
	}
}

func (m model) applySelection(tag string) (tea.Model, tea.Cmd) {
	changed, retrigger := m.pipe.SetSelection(tag)
	if changed {
		m.store.SetString(prefs.KeyLanguage, tag)
		log.Info(log.CatClassify, "language selected", "tag", tag)
	}
	m.mgr.SetLanguage(m.pipe.Effective())
	if tag == classify.SelectionAuto {
		m.ui.Notice = "Language: automatic"
	} else {
		m.ui.Notice = "Language: " + classify.LabelFor(tag)
	}
	if retrigger {
		if gen, ok := m.pipe.Trigger(); ok {
			return m, classifyTick(gen)
		}
	}
	return m, nil
}

func (m model) onPromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.prompt = m.prompt.closed()
		return m, nil
	case "enter":
		raw := m.prompt.buf
		m.prompt = m.prompt.closed()
		if strings.TrimSpace(raw) == "" {
			return m, nil
		}
		name := m.focusedName()
		path := expandPath(raw)
		if err := m.loadInto(name, path); err != nil {
			m.ui.Notice = "! " + err.Error()
			return m, nil
		}
		m.ui.Notice = fmt.Sprintf("Opened %s into %s", filepath.Base(path), string(name))
		return m.reactTea()
	case "tab":
		m.prompt = m.prompt.completed()
		return m, nil
	case "backspace", "ctrl+h":
		m.prompt = m.prompt.erased()
		return m, nil
	default:
		if msg.Type == tea.KeyRunes {
			m.prompt = m.prompt.typed(string(msg.Runes))
		}
		return m, nil
	}
}

func (m model) onInsertKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.ui = state.ToggleMode(m.ui)
		m.focused().Blur()
		return m, nil
	}
	cmd := m.focused().Update(msg)
	m2, cmd2 := m.react()
	return m2, tea.Batch(cmd, cmd2)
}

func (m model) onCmdKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "?":
		m.showHelp = true
		return m, nil
	case "i":
		m.ui = state.ToggleMode(m.ui)
		return m, m.focused().Focus()
	case "tab":
		m.ui = state.SwapFocus(m.ui)
		return m, nil
	case "s":
		if m.mgr.Swap() {
			m.ui.Notice = "Swapped buffers"
		}
		return m.reactTea()
	case "x":
		if m.mgr.ClearOne(m.focusedName()) {
			m.ui.Notice = "Cleared " + string(m.focusedName())
		}
		return m.reactTea()
	case "X":
		m.mgr.Clear()
		m.ui.Notice = "Cleared both buffers"
		return m.reactTea()
	case "v":
		m.ui = state.ToggleLayout(m.ui)
		m.store.SetString(prefs.KeyDiffLayout, layoutPref(m.ui.Layout))
		return m, nil
	case "w":
		m.ui = state.ToggleWrap(m.ui)
		m.store.SetBool(prefs.KeyWrapLines, m.ui.Wrap)
		return m, nil
	case "#":
		m.ui = state.ToggleLineNumbers(m.ui)
		m.store.SetBool(prefs.KeyShowLineNumbers, m.ui.LineNumbers)
		m.orig.SetShowLineNumbers(m.ui.LineNumbers)
		m.mod.SetShowLineNumbers(m.ui.LineNumbers)
		return m, nil
	case "b":
		m.ui = state.ToggleBackgrounds(m.ui)
		m.store.SetBool(prefs.KeyHighlightBackgrounds, m.ui.Backgrounds)
		return m, nil
	case "t":
		m.ui = state.ToggleDetail(m.ui)
		m.store.SetString(prefs.KeyInlineDetail, detailPref(m.ui.Detail))
		return m, nil
	case "D":
		m.ui = state.ToggleDark(m.ui)
		m.store.SetBool(prefs.KeyDarkMode, m.ui.Dark)
		return m, nil
	case "L":
		m.picker = m.picker.Opened()
		return m, nil
	case "e":
		m.ui = state.TogglePanel(m.ui)
		return m, nil
	case "y":
		label := "Original buffer"
		if m.focusedName() == buffers.Modified {
			label = "Modified buffer"
		}
		m.copyToClipboard(m.focused().Text(), label)
		return m, nil
	case "Y":
		patch := diff.PatchText(m.res, m.exportName(buffers.Original), m.exportName(buffers.Modified))
		if patch == "" {
			m.ui.Notice = "No changes to copy"
			return m, nil
		}
		m.copyToClipboard(patch, "Patch")
		return m, nil
	case "p":
		text, err := clipboard.ReadAll()
		if err != nil {
			m.ui.Notice = "Paste failed: " + err.Error()
			return m, nil
		}
		m.focused().SetText(text, buffers.OriginSet)
		m.ui.Notice = "Pasted into " + string(m.focusedName())
		return m.reactTea()
	case "o":
		m.prompt = m.prompt.opened()
		return m, nil
	case "S":
		m.saveSession()
		return m, nil
	case "r":
		m.reloadStale()
		return m.reactTea()
	case "j", "down":
		m.ui = state.ScrollBy(m.ui, 1)
		return m, nil
	case "k", "up":
		m.ui = state.ScrollBy(m.ui, -1)
		return m, nil
	case "h", "left":
		m.ui = state.ScrollLeft(m.ui, false)
		return m, nil
	case "l", "right":
		m.ui = state.ScrollRight(m.ui, false)
		return m, nil
	case "shift+left":
		m.ui = state.ScrollLeft(m.ui, true)
		return m, nil
	case "shift+right":
		m.ui = state.ScrollRight(m.ui, true)
		return m, nil
	case "g":
		m.ui = state.ResetScroll(m.ui)
		return m, nil
	case "+", "=":
		return m.nudge(1)
	case "-", "_":
		return m.nudge(-1)
	case "0":
		if !m.sized {
			return m, nil
		}
		m.sizer = state.NewPanelSizer(state.DefaultPanelHeight, m.ui.Height)
		m.store.SetInt(prefs.KeyPanelHeight, m.sizer.Height)
		m.layoutBuffers()
		return m, nil
	}
	return m, nil
}

func (m model) nudge(delta int) (tea.Model, tea.Cmd) {
	if !m.sized {
		return m, nil
	}
	next, commit := m.sizer.Nudge(delta)
	m.sizer = next
	if commit {
		m.store.SetInt(prefs.KeyPanelHeight, m.sizer.Height)
		m.layoutBuffers()
	}
	return m, nil
}

func (m *model) copyToClipboard(text, what string) {
	if err := clipboard.WriteAll(text); err != nil {
		m.ui.Notice = "Copy failed: " + err.Error()
		log.Warn(log.CatUI, "clipboard write failed", "err", err)
		return
	}
	m.ui.Notice = what + " copied"
}

func (m model) exportName(name buffers.Name) string {
	if p := m.paths[name]; p != "" {
		return filepath.Base(p)
	}
	return string(name)
}

func (m *model) saveSession() {
	path := m.sessionPath
	if path == "" {
		path = "diffpad-session.yaml"
	}
	doc := session.Session{
		Original: session.Pane{Path: m.paths[buffers.Original], Text: m.orig.Text()},
		Modified: session.Pane{Path: m.paths[buffers.Modified], Text: m.mod.Text()},
		Language: m.pipe.Selection(),
	}
	if err := session.Save(path, doc); err != nil {
		m.ui.Notice = "Session save failed: " + err.Error()
		log.Error(log.CatSession, "save failed", "path", path, "err", err)
		return
	}
	m.sessionPath = path
	m.ui.Notice = "Saved session to " + path
	log.Info(log.CatSession, "saved", "path", path)
}

func (m *model) reloadStale() {
	if len(m.stale) == 0 {
		m.ui.Notice = "Nothing to reload"
		return
	}
	for name := range m.stale {
		path := m.paths[name]
		if path == "" {
			delete(m.stale, name)
			continue
		}
		if err := m.loadInto(name, path); err != nil {
			m.ui.Notice = "Reload failed: " + err.Error()
			return
		}
	}
	m.ui.Notice = "Reloaded from disk"
}

// ===== Mouse =====

func (m model) onMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp || m.picker.Open || m.prompt.active {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.ui = state.ScrollBy(m.ui, -1)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.ui = state.ScrollBy(m.ui, 1)
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if !m.sized || msg.Button != tea.MouseButtonLeft || msg.Y != m.dividerRow() {
			return m, nil
		}
		next, reset, commit := m.sizer.Tap(m.now())
		m.sizer = next
		if commit {
			m.store.SetInt(prefs.KeyPanelHeight, m.sizer.Height)
		}
		if reset {
			m.ui.Notice = "Panel height reset"
			m.layoutBuffers()
			return m, nil
		}
		m.sizer = m.sizer.StartDrag()
	case tea.MouseActionMotion:
		if !m.sizer.Dragging() {
			return m, nil
		}
		next, commit := m.sizer.DragTo(m.ui.Height - msg.Y - 2)
		m.sizer = next
		if commit {
			m.store.SetInt(prefs.KeyPanelHeight, m.sizer.Height)
			m.layoutBuffers()
		}
	case tea.MouseActionRelease:
		if !m.sizer.Dragging() {
			return m, nil
		}
		m.sizer = m.sizer.EndDrag()
		m.store.SetInt(prefs.KeyPanelHeight, m.sizer.Height)
	}
	return m, nil
}

// dividerRow is the screen row of the draggable divider: editors above,
// panel and status bar below.
func (m model) dividerRow() int {
	return m.editorHeight()
}

func (m model) editorHeight() int {
	h := m.ui.Height - m.sizer.Height - 2
	if h < 3 {
		h = 3
	}
	return h
}

// layoutBuffers resizes the textareas to the current geometry. One header
// row per pane sits above each textarea.
func (m *model) layoutBuffers() {
	if m.ui.Width <= 0 || m.ui.Height <= 0 {
		return
	}
	taH := m.editorHeight() - 1
	if taH < 1 {
		taH = 1
	}
	half := (m.ui.Width - 1) / 2
	m.orig.SetSize(half, taH)
	m.mod.SetSize(m.ui.Width-half-1, taH)
}

// ===== View =====

func (m model) View() string {
	if m.ui.Width <= 0 || m.ui.Height <= 0 {
		return ""
	}
	if m.showHelp {
		return m.help.View(m.ui)
	}
	pal := util.PaletteFor(m.ui.Dark)

	half := (m.ui.Width - 1) / 2
	left := m.pane.View(pal, "Original", m.paths[buffers.Original], m.orig.View(),
		m.ui.Focus == state.PaneOriginal, half)
	right := m.pane.View(pal, "Modified", m.paths[buffers.Modified], m.mod.View(),
		m.ui.Focus == state.PaneModified, m.ui.Width-half-1)
	editors := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)

	panelH := m.sizer.Height
	var body string
	switch {
	case m.picker.Open:
		body = frameTo(m.picker.View(pal, m.pipe.Selection(), m.pipe.Detected(), m.ui.Width), panelH)
	case m.prompt.active:
		body = m.prompt.view(pal, string(m.focusedName()), m.ui.Width, panelH)
	case m.ui.Panel == state.PanelPreview:
		body = m.panel.Preview(m.ui, pal, m.focused().Text(), m.pipe.Effective(), m.ui.Width, panelH)
	default:
		body = m.panel.View(m.ui, pal, m.res, m.ui.Width, panelH)
	}

	return strings.Join([]string{editors, m.dividerView(pal), body, m.statusView(pal)}, "\n")
}

func (m model) dividerView(pal util.Palette) string {
	style := lipgloss.NewStyle().Foreground(pal.Divider)
	if m.sizer.Dragging() {
		style = lipgloss.NewStyle().Foreground(pal.Primary)
	}
	label := " Diff "
	if m.ui.Panel == state.PanelPreview {
		label = " Preview "
	}
	rest := m.ui.Width - len(label) - 2
	if rest < 0 {
		rest = 0
	}
	return style.Render("──" + label + strings.Repeat("─", rest))
}

func (m model) statusView(pal util.Palette) string {
	layoutLabel := "Split"
	if state.EffectiveLayout(m.ui) == state.Unified {
		layoutLabel = "Unified"
	}
	watching := m.watcher != nil &&
		(m.paths[buffers.Original] != "" || m.paths[buffers.Modified] != "")
	cs := util.ComputeChips(
		classify.LabelFor(m.pipe.Effective()),
		m.pipe.Selection() == classify.SelectionAuto,
		layoutLabel,
		m.res.Adds, m.res.Dels,
		watching,
	)
	strip := chips.View(cs, pal, util.NoColor(false))
	return m.bar.View(m.ui, strip, m.sizer.Height)
}

func frameTo(s string, height int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// ===== Pref mapping =====

func layoutFromPref(v string) state.Layout {
	if v == prefs.LayoutUnified {
		return state.Unified
	}
	return state.Split
}

func layoutPref(l state.Layout) string {
	if l == state.Unified {
		return prefs.LayoutUnified
	}
	return prefs.LayoutSplit
}

func detailFromPref(v string) state.Detail {
	if v == prefs.DetailLine {
		return state.DetailLine
	}
	return state.DetailChar
}

func detailPref(d state.Detail) string {
	if d == state.DetailLine {
		return prefs.DetailLine
	}
	return prefs.DetailChar
}
