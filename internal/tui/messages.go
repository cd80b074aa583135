package tui

import "github.com/Veraticus/sarcastic-confessional/internal/model"

// Result messages from the confessional.
type confessionHeardMsg struct {
	result model.Result
	stats  model.Statistics
}

type absolvedMsg struct {
	err   error
	stats model.Statistics
}
