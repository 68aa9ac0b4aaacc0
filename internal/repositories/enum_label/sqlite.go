package enumlabel

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"github.com/vladmesh/dnd-helper-sub000/internal/entities/dnd5e"
	"github.com/vladmesh/dnd-helper-sub000/internal/errors"
)

type sqliteRepository struct {
	db *sql.DB
}

// SQLiteConfig contains configuration for the SQLite enum label repository.
// The database must already carry the enum_labels table.
type SQLiteConfig struct {
	DB *sql.DB
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

// NewSQLite creates a new SQLite-backed enum label repository
func NewSQLite(cfg *SQLiteConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &sqliteRepository{db: cfg.DB}, nil
}

const selectLabel = `SELECT enum_type, code, lang, label, description, synonyms FROM enum_labels`

func (r *sqliteRepository) ListByCodes(ctx context.Context, input ListByCodesInput) (*ListByCodesOutput, error) {
	if !input.Lang.IsSupported() {
		return nil, errors.InvalidArgument(errLangInvalid)
	}

	var (
		clauses []string
		args    = []any{string(input.Lang)}
	)
	for enumType, codes := range input.CodesByType {
		if enumType == "" {
			continue
		}
		for _, code := range codes {
			if code == "" {
				continue
			}
			clauses = append(clauses, "(enum_type = ? AND code = ?)")
			args = append(args, enumType, code)
		}
	}
	if len(clauses) == 0 {
		return &ListByCodesOutput{}, nil
	}

	labels, err := r.query(ctx,
		selectLabel+` WHERE lang = ? AND (`+strings.Join(clauses, " OR ")+`)`,
		args...)
	if err != nil {
		return nil, err
	}

	return &ListByCodesOutput{Labels: labels}, nil
}

func (r *sqliteRepository) ListByType(ctx context.Context, input ListByTypeInput) (*ListByTypeOutput, error) {
	if input.EnumType == "" {
		return nil, errors.InvalidArgument(errEnumTypeEmpty)
	}
	if !input.Lang.IsSupported() {
		return nil, errors.InvalidArgument(errLangInvalid)
	}

	labels, err := r.query(ctx,
		selectLabel+` WHERE enum_type = ? AND lang = ? ORDER BY code`,
		input.EnumType, string(input.Lang))
	if err != nil {
		return nil, err
	}

	return &ListByTypeOutput{Labels: labels}, nil
}

func (r *sqliteRepository) Upsert(ctx context.Context, input UpsertInput) (*UpsertOutput, error) {
	if err := validateLabel(input.Label); err != nil {
		return nil, err
	}
	label := input.Label

	synonyms, err := json.Marshal(label.Synonyms)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal synonyms")
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO enum_labels (enum_type, code, lang, label, description, synonyms)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (enum_type, code, lang) DO UPDATE SET
			label = excluded.label,
			description = excluded.description,
			synonyms = excluded.synonyms`,
		label.EnumType, label.Code, string(label.Lang),
		label.Label, label.Description, string(synonyms))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store label")
	}

	return &UpsertOutput{Label: label}, nil
}

func (r *sqliteRepository) query(ctx context.Context, query string, args ...any) ([]*dnd5e.EnumLabel, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query labels")
	}
	defer rows.Close()

	var labels []*dnd5e.EnumLabel
	for rows.Next() {
		var (
			label    dnd5e.EnumLabel
			lang     string
			synonyms string
		)
		if err := rows.Scan(&label.EnumType, &label.Code, &lang, &label.Label, &label.Description, &synonyms); err != nil {
			return nil, errors.Wrapf(err, "failed to scan label")
		}
		label.Lang = dnd5e.Lang(lang)
		if synonyms != "" && synonyms != "null" {
			if err := json.Unmarshal([]byte(synonyms), &label.Synonyms); err != nil {
				return nil, errors.Wrapf(err, "failed to unmarshal synonyms")
			}
		}
		labels = append(labels, &label)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read labels")
	}

	return labels, nil
}
