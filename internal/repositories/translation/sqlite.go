package translation

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"strings"
	"time"

	"github.com/vladmesh/dnd-helper-sub000/internal/entities/dnd5e"
	"github.com/vladmesh/dnd-helper-sub000/internal/errors"
	"github.com/vladmesh/dnd-helper-sub000/internal/pkg/clock"
)

type sqliteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

// SQLiteConfig contains configuration for the SQLite translation repository.
// The database must already carry the translations table.
type SQLiteConfig struct {
	DB    *sql.DB
	Clock clock.Clock
}

// Validate validates the SQLiteConfig.
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.DB == nil {
		return errors.InvalidArgument("db cannot be nil")
	}
	return nil
}

// NewSQLite creates a new SQLite-backed translation repository
func NewSQLite(cfg *SQLiteConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &sqliteRepository{db: cfg.DB, clock: c}, nil
}

// blocks groups the repeated text sections stored in one JSON column
type blocks struct {
	Traits           []dnd5e.TextBlock `json:"traits,omitempty"`
	Actions          []dnd5e.TextBlock `json:"actions,omitempty"`
	Reactions        []dnd5e.TextBlock `json:"reactions,omitempty"`
	LegendaryActions []dnd5e.TextBlock `json:"legendary_actions,omitempty"`
	Spellcasting     []dnd5e.TextBlock `json:"spellcasting,omitempty"`
}

const selectTranslation = `SELECT entity_type, entity_id, lang, name, description, blocks, updated_at FROM translations`

func (r *sqliteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.EntityType, input.EntityID, input.Lang); err != nil {
		return nil, err
	}

	row := r.db.QueryRowContext(ctx,
		selectTranslation+` WHERE entity_type = ? AND entity_id = ? AND lang = ?`,
		input.EntityType, input.EntityID, string(input.Lang))

	t, err := scanTranslation(row)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("%s %s has no %s translation",
				input.EntityType, input.EntityID, input.Lang)
		}
		return nil, errors.Wrapf(err, "failed to get translation")
	}

	return &GetOutput{Translation: t}, nil
}

func (r *sqliteRepository) ListByEntityIDs(
	ctx context.Context,
	input ListByEntityIDsInput,
) (*ListByEntityIDsOutput, error) {
	if input.EntityType == "" {
		return nil, errors.InvalidArgument(errEntityTypeEmpty)
	}
	if !input.Lang.IsSupported() {
		return nil, errors.InvalidArgument(errLangInvalid)
	}

	args := []any{input.EntityType, string(input.Lang)}
	for _, id := range input.EntityIDs {
		if id != "" {
			args = append(args, id)
		}
	}
	if len(args) == 2 {
		return &ListByEntityIDsOutput{}, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(args)-2), ",")
	rows, err := r.db.QueryContext(ctx,
		selectTranslation+` WHERE entity_type = ? AND lang = ? AND entity_id IN (`+placeholders+`)`,
		args...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query translations")
	}
	defer rows.Close()

	var translations []*dnd5e.Translation
	for rows.Next() {
		t, err := scanTranslation(rows)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to scan translation")
		}
		translations = append(translations, t)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read translations")
	}

	return &ListByEntityIDsOutput{Translations: translations}, nil
}

func (r *sqliteRepository) Upsert(ctx context.Context, input UpsertInput) (*UpsertOutput, error) {
	t := input.Translation
	if t == nil {
		return nil, errors.InvalidArgument(errTranslationNil)
	}
	if err := validateKey(t.EntityType, t.EntityID, t.Lang); err != nil {
		return nil, err
	}

	stored := *t
	stored.UpdatedAt = r.clock.Now()

	blockData, err := json.Marshal(blocks{
		Traits:           stored.Traits,
		Actions:          stored.Actions,
		Reactions:        stored.Reactions,
		LegendaryActions: stored.LegendaryActions,
		Spellcasting:     stored.Spellcasting,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal translation blocks")
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO translations (entity_type, entity_id, lang, name, description, blocks, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (entity_type, entity_id, lang) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			blocks = excluded.blocks,
			updated_at = excluded.updated_at`,
		stored.EntityType, stored.EntityID, string(stored.Lang),
		stored.Name, stored.Description, string(blockData),
		stored.UpdatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store translation")
	}

	return &UpsertOutput{Translation: &stored}, nil
}

func (r *sqliteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.EntityType == "" {
		return nil, errors.InvalidArgument(errEntityTypeEmpty)
	}
	if input.EntityID == "" {
		return nil, errors.InvalidArgument(errEntityIDEmpty)
	}

	result, err := r.db.ExecContext(ctx,
		`DELETE FROM translations WHERE entity_type = ? AND entity_id = ?`,
		input.EntityType, input.EntityID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete translations")
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to count deleted translations")
	}

	return &DeleteOutput{Deleted: deleted}, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTranslation(row scanner) (*dnd5e.Translation, error) {
	var (
		t         dnd5e.Translation
		lang      string
		blockData string
		updatedAt string
	)
	if err := row.Scan(&t.EntityType, &t.EntityID, &lang, &t.Name, &t.Description, &blockData, &updatedAt); err != nil {
		return nil, err
	}
	t.Lang = dnd5e.Lang(lang)

	var b blocks
	if blockData != "" {
		if err := json.Unmarshal([]byte(blockData), &b); err != nil {
			return nil, err
		}
	}
	t.Traits = b.Traits
	t.Actions = b.Actions
	t.Reactions = b.Reactions
	t.LegendaryActions = b.LegendaryActions
	t.Spellcasting = b.Spellcasting

	if updatedAt != "" {
		if ts, err := time.Parse(time.RFC3339Nano, updatedAt); err == nil {
			t.UpdatedAt = ts
		}
	}

	return &t, nil
}
