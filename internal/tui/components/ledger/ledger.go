package ledger

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/dashlit/internal/constants"
	ledgerstore "github.com/julianstephens/dashlit/internal/ledger"
	"github.com/julianstephens/dashlit/internal/models"
)

type AddTransactionMsg struct{}

type RemoveTransactionMsg struct {
	ID string
}

type Item struct {
	Tx models.Transaction
}

func (i Item) Title() string { return i.Tx.Label }
func (i Item) Description() string {
	desc := ledgerstore.FormatSigned(i.Tx.Decimal())
	if i.Tx.CreatedAt != nil {
		desc += " | " + i.Tx.CreatedAt.Local().Format(constants.DateFormat)
	}
	return desc
}
func (i Item) FilterValue() string { return i.Tx.Label }

type KeyMap struct {
	Add    key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(txs []models.Transaction, width, height int) Model {
	l := list.New(toItems(txs), list.NewDefaultDelegate(), width, height)
	l.Title = "Transactions"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	return Model{list: l, keys: DefaultKeyMap()}
}

func toItems(txs []models.Transaction) []list.Item {
	items := make([]list.Item, len(txs))
	for i, t := range txs {
		items[i] = Item{Tx: t}
	}
	return items
}

func (m *Model) SetTransactions(txs []models.Transaction) {
	m.list.SetItems(toItems(txs))
}

func (m Model) Keys() []key.Binding {
	return []key.Binding{m.keys.Add, m.keys.Delete}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddTransactionMsg{} }
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return RemoveTransactionMsg{ID: i.Tx.ID} }
			}
			return m, nil
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "\n  No transactions yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
