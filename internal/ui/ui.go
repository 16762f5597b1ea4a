package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AryehRotberg/reactive-wings/internal/formatter"
	"github.com/AryehRotberg/reactive-wings/internal/tasks"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	DashboardView ViewState = iota
	FormView
)

const (
	inputAirline = iota
	inputFlight
	inputDate
	inputCount
)

// Model represents the TUI application state.
type Model struct {
	ctx         context.Context
	view        ViewState
	coordinator *tasks.Coordinator
	logger      *log.Logger
	width       int
	height      int

	subList    list.Model
	inputs     []textinput.Model
	focusIndex int
	spin       spinner.Model
	help       help.Model
	keys       keyMap

	email       string
	message     string
	messageErr  bool
	messageSeq  int
	initialLoad bool
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, coordinator *tasks.Coordinator, logger *log.Logger) *Model {
	subList := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	subList.Title = "Active Subscriptions"
	subList.SetShowHelp(false)
	subList.SetShowStatusBar(false)

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return &Model{
		ctx:         ctx,
		view:        DashboardView,
		coordinator: coordinator,
		logger:      logger,
		subList:     subList,
		inputs:      newFormInputs(),
		spin:        spin,
		help:        help.New(),
		keys:        newKeyMap(),
		initialLoad: true,
	}
}

func newFormInputs() []textinput.Model {
	inputs := make([]textinput.Model, inputCount)

	airline := textinput.New()
	airline.Placeholder = "LY"
	airline.CharLimit = 3
	airline.Focus()
	inputs[inputAirline] = airline

	flight := textinput.New()
	flight.Placeholder = "001"
	flight.CharLimit = 5
	inputs[inputFlight] = flight

	date := textinput.New()
	date.Placeholder = "YYYY-MM-DD"
	date.CharLimit = 10
	date.SetValue(time.Now().Format("2006-01-02"))
	inputs[inputDate] = date

	return inputs
}

// Init starts the first refresh under the whole-page loading scope.
func (m *Model) Init() tea.Cmd {
	m.logger.Debug("dashboard starting")
	m.coordinator.Scopes().Enter(tasks.PageScope())
	return tea.Batch(m.spin.Tick, m.refreshCmd())
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.subList.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case DashboardView:
			return m.handleDashboardKeys(msg)
		case FormView:
			return m.handleFormKeys(msg)
		}

	case refreshDoneMsg:
		if m.initialLoad {
			m.coordinator.Scopes().Exit(tasks.PageScope())
			m.initialLoad = false
		}
		m.email = m.coordinator.Email()
		m.reloadList()
		return m, m.setMessage(msg.res.Message(), msg.res.Err != nil)

	case subscribeDoneMsg:
		cmds := []tea.Cmd{m.setMessage(msg.res.Message, msg.res.Status != tasks.Subscribed)}
		if msg.res.Status == tasks.Subscribed {
			m.resetForm()
			m.view = DashboardView
			cmds = append(cmds, m.refreshCmd())
		}
		return m, tea.Batch(cmds...)

	case unsubscribeDoneMsg:
		cmds := []tea.Cmd{m.setMessage(msg.res.Message, msg.res.Err != nil)}
		if msg.res.Err == nil {
			cmds = append(cmds, m.refreshCmd())
		}
		return m, tea.Batch(cmds...)

	case clearMessageMsg:
		if msg.seq == m.messageSeq {
			m.message = ""
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m.updateFocused(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(styles.title.Render("Reactive Wings"))
	b.WriteString("\n")
	if m.email != "" {
		b.WriteString(styles.help.Render(fmt.Sprintf("Signed in as %s", m.email)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch m.view {
	case DashboardView:
		b.WriteString(m.renderDashboard())
	case FormView:
		b.WriteString(m.renderForm())
	}

	if m.message != "" {
		b.WriteString("\n")
		if m.messageErr {
			b.WriteString(styles.err.Render(m.message))
		} else {
			b.WriteString(styles.ok.Render(m.message))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m *Model) handleDashboardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	scopes := m.coordinator.Scopes()

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.refresh):
		if scopes.Active(tasks.ButtonScope(tasks.RefreshButton)) {
			return m, nil
		}
		return m, m.refreshCmd()

	case key.Matches(msg, m.keys.add):
		m.view = FormView
		m.focusInput(inputAirline)
		return m, textinput.Blink

	case key.Matches(msg, m.keys.del):
		selected, ok := m.subList.SelectedItem().(subscriptionItem)
		if !ok {
			return m, nil
		}
		if scopes.Active(tasks.ButtonScope(tasks.DeleteButton(selected.view.Index))) {
			return m, nil
		}
		if selected.view.KeyErr != nil {
			return m, m.setMessage(fmt.Sprintf("Failed to delete subscription: %v", selected.view.KeyErr), true)
		}
		return m, m.unsubscribeCmd(selected.view)
	}

	var cmd tea.Cmd
	m.subList, cmd = m.subList.Update(msg)
	return m, cmd
}

func (m *Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	scopes := m.coordinator.Scopes()

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.view = DashboardView
		return m, nil

	case "tab", "down":
		m.focusInput((m.focusIndex + 1) % inputCount)
		return m, textinput.Blink

	case "shift+tab", "up":
		m.focusInput((m.focusIndex + inputCount - 1) % inputCount)
		return m, textinput.Blink

	case "enter":
		if scopes.Active(tasks.ButtonScope(tasks.SubscribeButton)) {
			return m, nil
		}
		return m, m.subscribeCmd()
	}

	return m.updateFocused(msg)
}

func (m *Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.view != FormView {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
	return m, cmd
}

func (m *Model) focusInput(index int) {
	m.focusIndex = index
	for i := range m.inputs {
		if i == index {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m *Model) resetForm() {
	m.inputs = newFormInputs()
	m.focusIndex = inputAirline
}

func (m *Model) reloadList() {
	subs := m.coordinator.Subscriptions()
	items := make([]list.Item, 0, len(subs))
	for _, view := range formatter.BuildSubscriptionItems(subs) {
		items = append(items, subscriptionItem{view: view})
	}
	m.subList.SetItems(items)
}

func (m *Model) setMessage(text string, isErr bool) tea.Cmd {
	if text == "" {
		return nil
	}
	m.message = text
	m.messageErr = isErr
	m.messageSeq++
	seq := m.messageSeq
	return tea.Tick(tasks.MessageTTL, func(time.Time) tea.Msg {
		return clearMessageMsg{seq: seq}
	})
}

func (m *Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return refreshDoneMsg{res: m.coordinator.Refresh(m.ctx)}
	}
}

func (m *Model) subscribeCmd() tea.Cmd {
	airline := strings.TrimSpace(m.inputs[inputAirline].Value())
	flight := strings.TrimSpace(m.inputs[inputFlight].Value())
	date := strings.TrimSpace(m.inputs[inputDate].Value())
	return func() tea.Msg {
		return subscribeDoneMsg{res: m.coordinator.Subscribe(m.ctx, airline, flight, date)}
	}
}

func (m *Model) unsubscribeCmd(view formatter.SubscriptionItem) tea.Cmd {
	return func() tea.Msg {
		return unsubscribeDoneMsg{
			res:   m.coordinator.Unsubscribe(m.ctx, view.Key, view.Index),
			index: view.Index,
		}
	}
}

func (m *Model) renderDashboard() string {
	scopes := m.coordinator.Scopes()

	if scopes.Active(tasks.PageScope()) {
		return fmt.Sprintf("%s Loading...\n", m.spin.View())
	}

	var b strings.Builder
	if scopes.Active(tasks.SectionScope(tasks.SubscriptionsSection)) {
		b.WriteString(fmt.Sprintf("%s Refreshing subscriptions...\n\n", m.spin.View()))
	}

	if len(m.subList.Items()) == 0 {
		b.WriteString(formatter.RenderEmptyState())
	} else {
		b.WriteString(m.subList.View())
		b.WriteString("\n")
	}

	helpKeys := []key.Binding{m.keys.refresh, m.keys.add, m.keys.del, m.keys.quit}
	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(helpKeys))
	return b.String()
}

func (m *Model) renderForm() string {
	scopes := m.coordinator.Scopes()

	var b strings.Builder
	b.WriteString(styles.title.Render("Subscribe to a Flight"))
	b.WriteString("\n\n")

	labels := [inputCount]string{"Airline Code", "Flight Number", "Scheduled Date"}
	for i, input := range m.inputs {
		b.WriteString(fmt.Sprintf("%s\n%s\n\n", styles.warn.Render(labels[i]), input.View()))
	}

	if scopes.Active(tasks.ButtonScope(tasks.SubscribeButton)) {
		b.WriteString(fmt.Sprintf("%s Subscribing...\n\n", m.spin.View()))
	}

	helpKeys := []key.Binding{m.keys.enter, m.keys.back, m.keys.quit}
	b.WriteString(m.help.ShortHelpView(helpKeys))
	return b.String()
}
