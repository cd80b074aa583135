package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/Veraticus/sarcastic-confessional/internal/common"
	"github.com/Veraticus/sarcastic-confessional/internal/config"
	"github.com/Veraticus/sarcastic-confessional/internal/engine"
	"github.com/Veraticus/sarcastic-confessional/internal/response"
	"github.com/Veraticus/sarcastic-confessional/internal/storage"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Output formats for the read-only commands.
const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

// openConfessional loads the configuration and opens the confessional on
// the configured ledger file.
func openConfessional(ctx context.Context, v *viper.Viper) (*engine.Confessional, *config.Config, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return nil, nil, common.NewUserError("Ungültige Konfiguration", err)
	}

	store, err := storage.NewJSONStore(cfg.DataPath, slog.Default())
	if err != nil {
		return nil, nil, common.NewUserError("Beichtbuch konnte nicht geöffnet werden", err)
	}

	slog.Debug("Opened ledger", "path", store.Path(), "seed", cfg.Seed)

	return engine.New(ctx, store, response.NewSeeded(cfg.Seed)), cfg, nil
}

// writeOutput renders v in the requested format. Table output is produced
// by table.
func writeOutput(w io.Writer, format string, v any, table func() string) error {
	switch format {
	case outputTable, "":
		_, err := fmt.Fprintln(w, table())
		return err
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return common.NewUserError(
			fmt.Sprintf("Unbekanntes Ausgabeformat %q (table, json, yaml)", format),
			fmt.Errorf("%w: output %q", common.ErrInvalidConfig, format),
		)
	}
}
