// Package engine implements the confessional: it classifies a confession,
// scores it, picks the monk's reaction and keeps the ledger persisted.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/sarcastic-confessional/internal/classification"
	"github.com/Veraticus/sarcastic-confessional/internal/common"
	"github.com/Veraticus/sarcastic-confessional/internal/karma"
	"github.com/Veraticus/sarcastic-confessional/internal/model"
	"github.com/Veraticus/sarcastic-confessional/internal/response"
	"github.com/Veraticus/sarcastic-confessional/internal/service"
)

// Confessional owns the ledger and everything needed to extend it.
// It is not safe for concurrent use; the presentation layer submits one
// confession at a time.
type Confessional struct {
	store     service.Store
	responder Responder
	logger    *slog.Logger
	ledger    model.Ledger
}

// Config holds optional settings for the confessional.
type Config struct {
	Logger *slog.Logger
}

// New creates a confessional and loads the persisted ledger.
func New(ctx context.Context, store service.Store, responder Responder) *Confessional {
	return NewWithConfig(ctx, store, responder, Config{})
}

// NewWithConfig creates a confessional with custom configuration.
func NewWithConfig(ctx context.Context, store service.Store, responder Responder, config Config) *Confessional {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	c := &Confessional{
		store:     store,
		responder: responder,
		logger:    logger.With("component", "engine"),
		ledger:    store.Load(ctx),
	}

	c.logger.Debug("Confessional ready",
		"karma_total", c.ledger.KarmaTotal,
		"entries", len(c.ledger.History))

	return c
}

// Submit processes one confession. Blank text is turned away without
// touching the ledger. Easter eggs replace only the reply and emotion;
// the confession is still scored and recorded under its category.
func (c *Confessional) Submit(ctx context.Context, text string) model.Result {
	if strings.TrimSpace(text) == "" {
		c.logger.Debug("Rejected confession", "error", common.ErrEmptyConfession)
		return model.Result{
			Response: response.EmptyConfession,
			Emotion:  model.EmotionAnnoyed,
		}
	}

	category := classification.Categorize(text)
	debt := karma.Score(category, text)

	result := model.Result{
		Category: category,
		Karma:    debt,
		Accepted: true,
	}

	if egg, ok := classification.MatchEasterEgg(text); ok {
		result.Response = egg.Response
		result.Emotion = egg.Emotion
		result.EasterEgg = true
	} else {
		result.Response = c.responder.Pick(category)
		result.Emotion = response.EmotionFor(category)
	}

	c.ledger.Append(model.ConfessionRecord{
		Text:     text,
		Category: category,
		Karma:    debt,
	})

	c.logger.Info("Confession processed",
		"category", category,
		"karma", debt,
		"karma_total", c.ledger.KarmaTotal,
		"easter_egg", result.EasterEgg)

	result.Persisted = c.persist(ctx) == nil

	return result
}

// Reset forgives everything: the ledger is cleared and saved at once.
// The in-memory reset stands even when saving fails.
func (c *Confessional) Reset(ctx context.Context) error {
	c.ledger = model.NewLedger()
	c.logger.Info("Ledger reset")
	return c.persist(ctx)
}

// Statistics returns a snapshot of the ledger for display.
func (c *Confessional) Statistics() model.Statistics {
	count := len(c.ledger.History)
	stats := model.Statistics{
		KarmaTotal:   c.ledger.KarmaTotal,
		HistoryCount: count,
		Categories:   []model.CategoryShare{},
	}

	if count == 0 {
		return stats
	}

	stats.AveragePerEntry = c.ledger.KarmaTotal / count

	for _, category := range model.Categories {
		n := c.ledger.Tally[category]
		if n <= 0 {
			continue
		}
		stats.Categories = append(stats.Categories, model.CategoryShare{
			Category: category,
			Count:    n,
			Percent:  float64(n) / float64(count) * 100,
		})
	}

	last := c.ledger.History[count-1]
	stats.MostRecent = &last

	return stats
}

// History returns the recorded confessions, oldest first.
func (c *Confessional) History() []model.ConfessionRecord {
	out := make([]model.ConfessionRecord, len(c.ledger.History))
	copy(out, c.ledger.History)
	return out
}

// Ledger returns a copy of the current ledger.
func (c *Confessional) Ledger() model.Ledger {
	return c.ledger.Clone()
}

func (c *Confessional) persist(ctx context.Context) error {
	if err := c.store.Save(ctx, c.ledger); err != nil {
		err = fmt.Errorf("%w: %w", common.ErrSaveFailed, err)
		common.LogError(c.logger, err, "Failed to save ledger", common.Fields{
			"karma_total": c.ledger.KarmaTotal,
			"entries":     len(c.ledger.History),
		})
		return err
	}
	return nil
}
