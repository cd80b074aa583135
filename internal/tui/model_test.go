package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/Veraticus/sarcastic-confessional/internal/model"
	"github.com/Veraticus/sarcastic-confessional/internal/response"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConfessor struct {
	resetErr   error
	submitted  []string
	resets     int
	statsCalls int
	stats      model.Statistics
	result     model.Result
}

func (f *fakeConfessor) Submit(_ context.Context, text string) model.Result {
	f.submitted = append(f.submitted, text)
	f.stats.HistoryCount++
	f.stats.KarmaTotal += f.result.Karma
	return f.result
}

func (f *fakeConfessor) Reset(_ context.Context) error {
	f.resets++
	if f.resetErr == nil {
		f.stats = model.Statistics{Categories: []model.CategoryShare{}}
	}
	return f.resetErr
}

func (f *fakeConfessor) Statistics() model.Statistics {
	f.statsCalls++
	return f.stats
}

func newTestModel(f *fakeConfessor) Model {
	return newModel(context.Background(), f, defaultConfig())
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return updated.(Model)
}

// press sends a key and feeds the resulting command's message back in.
func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Msg) {
	t.Helper()
	updated, cmd := m.Update(msg)
	m = updated.(Model)
	if cmd == nil {
		return m, nil
	}
	out := cmd()
	switch out.(type) {
	case confessionHeardMsg, absolvedMsg:
		updated, _ = m.Update(out)
		return updated.(Model), out
	}
	return m, out
}

func TestNewModel_ReadsStatisticsBeforeStart(t *testing.T) {
	f := &fakeConfessor{stats: model.Statistics{KarmaTotal: 40, HistoryCount: 3}}

	m := newTestModel(f)

	assert.Equal(t, 1, f.statsCalls)
	assert.Equal(t, 40, m.stats.KarmaTotal)
	assert.Equal(t, 3, m.statsPanel.Statistics().HistoryCount)
	assert.Contains(t, m.View(), "Karma-Schulden: 40")

	cmd := m.Init()
	require.NotNil(t, cmd)
	_ = cmd()
	assert.Equal(t, 1, f.statsCalls, "Init leaves the core alone")
}

func TestModel_SubmitConfession(t *testing.T) {
	f := &fakeConfessor{result: model.Result{
		Response:  "Lügen haben kurze Beine!",
		Emotion:   model.EmotionJudging,
		Category:  model.CategoryLies,
		Karma:     15,
		Accepted:  true,
		Persisted: true,
	}}
	m := newTestModel(f)

	m = typeText(t, m, "Ich habe gelogen")
	assert.Equal(t, "Ich habe gelogen", m.input.Value())

	m, msg := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.IsType(t, confessionHeardMsg{}, msg)
	assert.Equal(t, []string{"Ich habe gelogen"}, f.submitted)
	assert.Empty(t, m.input.Value(), "input is cleared after submit")
	assert.False(t, m.busy)
	require.NotNil(t, m.lastResult)
	assert.Equal(t, model.EmotionJudging, m.lastResult.Emotion)
	assert.Equal(t, 15, m.stats.KarmaTotal)
	assert.Empty(t, m.status)

	view := m.View()
	assert.Contains(t, view, "Lügen haben kurze Beine!")
	assert.Contains(t, view, "+15 Karma-Schulden!")
}

func TestModel_SubmitWhileBusyIsIgnored(t *testing.T) {
	f := &fakeConfessor{result: model.Result{Accepted: true, Persisted: true}}
	m := newTestModel(f)
	m.busy = true

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.True(t, updated.(Model).busy)
	assert.Empty(t, f.submitted)
}

func TestModel_BlankConfessionShowsRejection(t *testing.T) {
	f := &fakeConfessor{result: model.Result{
		Response: response.EmptyConfession,
		Emotion:  model.EmotionAnnoyed,
	}}
	m := newTestModel(f)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Contains(t, m.View(), response.EmptyConfession)
	assert.NotContains(t, m.View(), "+0 Karma-Schulden!")
}

func TestModel_SaveFailureShowsStatus(t *testing.T) {
	f := &fakeConfessor{result: model.Result{
		Response: "x",
		Emotion:  model.EmotionNeutral,
		Category: model.CategoryStandard,
		Karma:    7,
		Accepted: true,
	}}
	m := newTestModel(f)

	m = typeText(t, m, "Ich habe gesündigt")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.statusErr)
	assert.Contains(t, m.View(), "Konnte nicht gespeichert werden")
}

func TestModel_ResetFlow(t *testing.T) {
	tests := []struct {
		name       string
		resetErr   error
		keys       []tea.KeyMsg
		wantResets int
		wantStatus string
		wantErr    bool
	}{
		{
			name:       "confirmed",
			keys:       []tea.KeyMsg{{Type: tea.KeyCtrlR}, {Type: tea.KeyRunes, Runes: []rune("y")}},
			wantResets: 1,
			wantStatus: response.ResetMessage,
		},
		{
			name:       "declined",
			keys:       []tea.KeyMsg{{Type: tea.KeyCtrlR}, {Type: tea.KeyRunes, Runes: []rune("n")}},
			wantResets: 0,
			wantStatus: "Feigling.",
		},
		{
			name:       "save failure",
			resetErr:   errors.New("read-only"),
			keys:       []tea.KeyMsg{{Type: tea.KeyCtrlR}, {Type: tea.KeyRunes, Runes: []rune("y")}},
			wantResets: 1,
			wantStatus: "Absolution nicht gespeichert: read-only",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeConfessor{resetErr: tt.resetErr, stats: model.Statistics{KarmaTotal: 40, HistoryCount: 3}}
			m := newTestModel(f)

			m, _ = press(t, m, tt.keys[0])
			assert.Equal(t, StateConfirmReset, m.state)
			assert.Contains(t, m.View(), "Alle Sünden vergeben")

			m, _ = press(t, m, tt.keys[1])

			assert.Equal(t, StateConfessing, m.state)
			assert.Equal(t, tt.wantResets, f.resets)
			assert.Equal(t, tt.wantStatus, m.status)
			assert.Equal(t, tt.wantErr, m.statusErr)
			assert.Empty(t, m.input.Value(), "confirmation keys never reach the input")
		})
	}
}

func TestModel_ToggleViews(t *testing.T) {
	f := &fakeConfessor{stats: model.Statistics{
		KarmaTotal:   15,
		HistoryCount: 1,
		Categories:   []model.CategoryShare{{Category: model.CategoryLies, Count: 1, Percent: 100}},
	}}
	m := newTestModel(f)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, StateStats, m.state)
	assert.Contains(t, m.View(), "1x (100.0%)")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyF1})
	assert.Equal(t, StateHelp, m.state)
	assert.Contains(t, m.View(), "Tastenkürzel")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyF1})
	assert.Equal(t, StateConfessing, m.state)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, StateConfessing, m.state)
	assert.False(t, m.quitting, "esc leaves the overlay before it quits")
}

func TestModel_Quit(t *testing.T) {
	for _, k := range []tea.KeyMsg{{Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		m := newTestModel(&fakeConfessor{})

		m, msg := press(t, m, k)

		assert.True(t, m.quitting)
		assert.IsType(t, tea.QuitMsg{}, msg)
		assert.Empty(t, m.View())
	}
}

func TestModel_ResizeMovesStatsBeside(t *testing.T) {
	m := newTestModel(&fakeConfessor{})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	m = updated.(Model)
	assert.True(t, m.showSidePanel())
	assert.Contains(t, m.View(), "Deine Sünden-Statistiken")

	updated, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(Model)
	assert.False(t, m.showSidePanel())
	assert.NotContains(t, m.View(), "Deine Sünden-Statistiken")
}
