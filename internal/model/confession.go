package model

// ConfessionRecord is one accepted submission. Records are never modified
// after they are appended to a ledger's history.
type ConfessionRecord struct {
	Text     string   `json:"text" yaml:"text" jsonschema:"required,description=Confession as typed by the user"`
	Category Category `json:"category" yaml:"category" jsonschema:"required,enum=lies,enum=money,enum=food,enum=laziness,enum=envy,enum=standard"`
	Karma    int      `json:"karma" yaml:"karma" jsonschema:"required,minimum=0"`
}

// Ledger is the persisted state: the running karma total, the chronological
// confession history and the per-category tally.
type Ledger struct {
	KarmaTotal int                `json:"karma_total" yaml:"karma_total" jsonschema:"required,minimum=0"`
	History    []ConfessionRecord `json:"history" yaml:"history" jsonschema:"required"`
	Tally      map[Category]int   `json:"tally" yaml:"tally" jsonschema:"required"`
}

// NewLedger returns an empty ledger.
func NewLedger() Ledger {
	return Ledger{
		History: []ConfessionRecord{},
		Tally:   make(map[Category]int),
	}
}

// Append records a confession and updates the total and tally.
func (l *Ledger) Append(record ConfessionRecord) {
	if l.Tally == nil {
		l.Tally = make(map[Category]int)
	}
	l.History = append(l.History, record)
	l.Tally[record.Category]++
	l.KarmaTotal += record.Karma
}

// Clone returns a deep copy of the ledger.
func (l Ledger) Clone() Ledger {
	out := Ledger{
		KarmaTotal: l.KarmaTotal,
		History:    make([]ConfessionRecord, len(l.History)),
		Tally:      make(map[Category]int, len(l.Tally)),
	}
	copy(out.History, l.History)
	for k, v := range l.Tally {
		out.Tally[k] = v
	}
	return out
}

// Result is what a submission hands back to the presentation layer.
type Result struct {
	Response  string   `json:"response" yaml:"response"`
	Emotion   Emotion  `json:"emotion" yaml:"emotion"`
	Category  Category `json:"category,omitempty" yaml:"category,omitempty"`
	Karma     int      `json:"karma" yaml:"karma"`
	EasterEgg bool     `json:"easter_egg" yaml:"easter_egg"`
	Accepted  bool     `json:"accepted" yaml:"accepted"`
	Persisted bool     `json:"persisted" yaml:"persisted"`
}

// CategoryShare is one row of the per-category breakdown.
type CategoryShare struct {
	Category Category `json:"category" yaml:"category"`
	Count    int      `json:"count" yaml:"count"`
	Percent  float64  `json:"percent" yaml:"percent"`
}

// Statistics is a read-only snapshot of the ledger for display.
type Statistics struct {
	MostRecent      *ConfessionRecord `json:"most_recent,omitempty" yaml:"most_recent,omitempty"`
	Categories      []CategoryShare   `json:"categories" yaml:"categories"`
	KarmaTotal      int               `json:"karma_total" yaml:"karma_total"`
	HistoryCount    int               `json:"history_count" yaml:"history_count"`
	AveragePerEntry int               `json:"average_per_entry" yaml:"average_per_entry"`
}
