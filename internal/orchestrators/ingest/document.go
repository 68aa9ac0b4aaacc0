package ingest

import (
	stderrors "errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vladmesh/dnd-helper-sub000/internal/entities/dnd5e"
	"github.com/vladmesh/dnd-helper-sub000/internal/errors"
)

// Document is the content of a seed file
type Document struct {
	EnumLabels   []*dnd5e.EnumLabel `yaml:"enum_labels,omitempty"`
	Monsters     []*dnd5e.Monster   `yaml:"monsters,omitempty"`
	Spells       []*dnd5e.Spell     `yaml:"spells,omitempty"`
	Translations []*SeedTranslation `yaml:"translations,omitempty"`
}

// SeedTranslation is a translation that may name its entity by slug instead
// of ID, since seeded entities get their IDs at load time.
type SeedTranslation struct {
	EntitySlug        string `yaml:"entity_slug,omitempty"`
	dnd5e.Translation `yaml:",inline"`
}

// ParseDocument decodes a seed document. Unknown keys are rejected so typos
// in hand-written files surface early.
func ParseDocument(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if stderrors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, errors.InvalidArgumentf("parsing seed document: %v", err)
	}

	return &doc, nil
}

// LoadDocument reads and decodes the seed file at path
func LoadDocument(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("seed file not found: %s", path)
		}
		return nil, errors.Wrapf(err, "opening seed file %s", path)
	}
	defer func() { _ = f.Close() }()

	return ParseDocument(f)
}
