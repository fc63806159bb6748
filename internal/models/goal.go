package models

// Goal is a single entry of the daily goals checklist
type Goal struct {
	ID   string `json:"id" validate:"required"`
	Text string `json:"text" validate:"trimmed"`
	Done bool   `json:"done"`
}

type goalWire struct {
	ID   *string `json:"id" validate:"required"`
	Text *string `json:"text" validate:"required"`
	Done *bool   `json:"done" validate:"required"`
}

func (g *Goal) UnmarshalJSON(data []byte) error {
	var w goalWire
	if err := decodeStrict(data, &w); err != nil {
		return err
	}
	*g = Goal{ID: *w.ID, Text: *w.Text, Done: *w.Done}
	return nil
}

// ValidateGoals checks a decoded goal list: every goal must carry an id and
// non-empty trimmed text, and ids must be unique.
func ValidateGoals(goals []Goal) error {
	return validateList("goal", goals, func(g Goal) string { return g.ID })
}
