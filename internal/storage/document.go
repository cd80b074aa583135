package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Veraticus/sarcastic-confessional/internal/model"
)

// ErrNotLedger is returned when a JSON document has none of the ledger fields.
var ErrNotLedger = errors.New("document contains no ledger fields")

// document accepts both the current format and the one written by the
// original desktop program, whose field and category names were German.
type document struct {
	KarmaTotal *int              `json:"karma_total"`
	Tally      map[string]int    `json:"tally"`
	History    []json.RawMessage `json:"history"`

	LegacyKarmaTotal *int              `json:"karma_schulden"`
	LegacyTally      map[string]int    `json:"suenden_kategorien"`
	LegacyHistory    []json.RawMessage `json:"beicht_historie"`
}

type documentRecord struct {
	Karma    *int   `json:"karma"`
	Text     string `json:"text"`
	Category string `json:"category"`

	LegacyText       string `json:"suende"`
	LegacyTextUmlaut string `json:"sünde"`
	LegacyCategory   string `json:"kategorie"`
}

func (r documentRecord) toModel() model.ConfessionRecord {
	text := firstNonEmpty(r.Text, r.LegacyText, r.LegacyTextUmlaut)
	label := firstNonEmpty(r.Category, r.LegacyCategory)

	karma := 0
	if r.Karma != nil && *r.Karma > 0 {
		karma = *r.Karma
	}

	return model.ConfessionRecord{
		Text:     text,
		Category: model.ParseCategory(label),
		Karma:    karma,
	}
}

// decodeLedger parses a stored document. Missing fields default to zero
// values and unknown category labels collapse into the standard category.
func decodeLedger(data []byte) (model.Ledger, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return model.Ledger{}, err
	}

	if doc.KarmaTotal == nil && doc.LegacyKarmaTotal == nil &&
		doc.History == nil && doc.LegacyHistory == nil &&
		doc.Tally == nil && doc.LegacyTally == nil {
		return model.Ledger{}, ErrNotLedger
	}

	ledger := model.NewLedger()

	switch {
	case doc.KarmaTotal != nil:
		ledger.KarmaTotal = *doc.KarmaTotal
	case doc.LegacyKarmaTotal != nil:
		ledger.KarmaTotal = *doc.LegacyKarmaTotal
	}
	if ledger.KarmaTotal < 0 {
		ledger.KarmaTotal = 0
	}

	records := doc.History
	if records == nil {
		records = doc.LegacyHistory
	}
	history, err := decodeHistory(records)
	if err != nil {
		return model.Ledger{}, err
	}
	ledger.History = append(ledger.History, history...)

	tally := doc.Tally
	if tally == nil {
		tally = doc.LegacyTally
	}
	for label, count := range tally {
		if count <= 0 {
			continue
		}
		ledger.Tally[model.ParseCategory(label)] += count
	}

	return ledger, nil
}

// decodeHistory converts history elements into records. The developer build
// of the desktop program stored the bare confession text after each record;
// those strings duplicate the record before them and are skipped.
func decodeHistory(elements []json.RawMessage) ([]model.ConfessionRecord, error) {
	records := make([]model.ConfessionRecord, 0, len(elements))
	for i, raw := range elements {
		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) == 0 || trimmed[0] != '{' {
			continue
		}

		var r documentRecord
		if err := json.Unmarshal(trimmed, &r); err != nil {
			return nil, fmt.Errorf("history entry %d: %w", i, err)
		}
		records = append(records, r.toModel())
	}
	return records, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
