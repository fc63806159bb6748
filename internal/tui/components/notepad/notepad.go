package notepad

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// EditNoteMsg carries the editor contents after a change
type EditNoteMsg struct {
	Text string
}

type SaveNoteMsg struct{}

type KeyMap struct {
	Save key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save note"),
		),
	}
}

type Model struct {
	editor textarea.Model
	keys   KeyMap
}

func New(text string, width, height int) Model {
	ta := textarea.New()
	ta.Placeholder = "Write something..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetValue(text)
	ta.SetWidth(width)
	ta.SetHeight(height)

	return Model{editor: ta, keys: DefaultKeyMap()}
}

func (m Model) Keys() []key.Binding {
	return []key.Binding{m.keys.Save}
}

func (m *Model) Focus() tea.Cmd {
	return m.editor.Focus()
}

func (m *Model) Blur() {
	m.editor.Blur()
}

func (m Model) Focused() bool {
	return m.editor.Focused()
}

func (m Model) Value() string {
	return m.editor.Value()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Save) {
		return m, func() tea.Msg { return SaveNoteMsg{} }
	}

	before := m.editor.Value()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if after := m.editor.Value(); after != before {
		return m, tea.Batch(cmd, func() tea.Msg { return EditNoteMsg{Text: after} })
	}
	return m, cmd
}

func (m Model) View() string {
	return m.editor.View()
}

func (m *Model) SetSize(width, height int) {
	m.editor.SetWidth(width)
	m.editor.SetHeight(height)
}
