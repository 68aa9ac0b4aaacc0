// Package external is the location for the dnd5e-api client
package external

//go:generate mockgen -destination=mock/mock_client.go -package=externalmock github.com/vladmesh/dnd-helper-sub000/internal/clients/external Client

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"

	catalog "github.com/vladmesh/dnd-helper-sub000/internal/entities/dnd5e"
	"github.com/vladmesh/dnd-helper-sub000/internal/errors"
)

// D&D 5e class name mappings for spell filtering
var dnd5eClassNames = map[string]string{
	"bard":     "bard",
	"cleric":   "cleric",
	"druid":    "druid",
	"paladin":  "paladin",
	"ranger":   "ranger",
	"sorcerer": "sorcerer",
	"warlock":  "warlock",
	"wizard":   "wizard",
}

// Client defines the interface for SRD data pulled from the dnd5e API.
// Returned spells carry raw attributes only; derived fields are left for the
// catalog write path.
type Client interface {
	// GetSpell fetches one spell by its API key, e.g. "fireball"
	GetSpell(ctx context.Context, key string) (*catalog.Spell, error)

	// ListSpells returns every matching spell with full details
	ListSpells(ctx context.Context, input *ListSpellsInput) ([]*catalog.Spell, error)
}

type client struct {
	dnd5eClient dnd5e.Interface
}

// Config contains configuration options for the external client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.dnd5eapi.co/api/2014/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	return nil
}

// New creates a new external client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  httpClient,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create D&D 5e API client: %w", err)
	}

	return &client{
		dnd5eClient: dnd5e.NewCachedClient(baseClient, cfg.CacheTTL),
	}, nil
}

func (c *client) GetSpell(_ context.Context, key string) (*catalog.Spell, error) {
	if key == "" {
		return nil, errors.InvalidArgument("spell key is required")
	}

	spell, err := c.dnd5eClient.GetSpell(key)
	if err != nil {
		return nil, errors.Unavailablef("failed to get spell %s: %v", key, err)
	}

	return convertSpell(spell)
}

func (c *client) ListSpells(ctx context.Context, input *ListSpellsInput) ([]*catalog.Spell, error) {
	var dnd5eInput *dnd5e.ListSpellsInput
	if input != nil {
		dnd5eInput = &dnd5e.ListSpellsInput{}
		if input.Level != nil {
			level := *input.Level
			dnd5eInput.Level = &level
		}
		if className, exists := dnd5eClassNames[input.ClassID]; exists {
			dnd5eInput.Class = className
		}
	}

	// Step 1: Get spell references from D&D 5e API
	slog.InfoContext(ctx, "Calling D&D 5e API to list spells")
	refs, err := c.dnd5eClient.ListSpells(dnd5eInput)
	if err != nil {
		return nil, errors.Unavailablef("failed to list spells from D&D 5e API: %v", err)
	}
	slog.InfoContext(ctx, "Got spell references", "count", len(refs))

	// Step 2: Concurrently load full details for each spell
	spells := make([]*catalog.Spell, len(refs))
	errChan := make(chan error, len(refs))
	var wg sync.WaitGroup

	for i, ref := range refs {
		wg.Add(1)
		go func(idx int, key string) {
			defer wg.Done()

			spell, err := c.dnd5eClient.GetSpell(key)
			if err != nil {
				slog.ErrorContext(ctx, "Failed to get spell details", "spell", key, "error", err)
				errChan <- errors.Unavailablef("failed to get spell %s: %v", key, err)
				return
			}

			converted, err := convertSpell(spell)
			if err != nil {
				errChan <- errors.Wrapf(err, "failed to convert spell %s", key)
				return
			}
			spells[idx] = converted
		}(i, ref.Key)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return nil, err
		}
	}

	return spells, nil
}

// convertSpell maps an API spell onto the catalog's raw spell attributes.
// The API keeps concentration as a flag; it is folded into the duration text
// so the catalog deriver sees it the same way it sees hand-entered spells.
func convertSpell(spell *entities.Spell) (*catalog.Spell, error) {
	if spell == nil {
		return nil, errors.Internal("spell is nil")
	}

	out := &catalog.Spell{
		Name:            spell.Name,
		Slug:            spell.Key,
		Level:           spell.SpellLevel,
		Range:           spell.Range,
		Ritual:          spell.Ritual,
		Duration:        spell.Duration,
		CastingTimeText: spell.CastingTime,
	}

	if spell.SpellSchool != nil {
		out.School = strings.ToLower(spell.SpellSchool.Key)
	}

	if spell.Concentration && !strings.Contains(strings.ToLower(out.Duration), "concentration") {
		if out.Duration == "" {
			out.Duration = "Concentration"
		} else {
			out.Duration = "Concentration, " + strings.ToLower(out.Duration[:1]) + out.Duration[1:]
		}
	}

	for _, class := range spell.SpellClasses {
		if class != nil {
			out.Classes = append(out.Classes, class.Key)
		}
	}

	if spell.SpellDamage != nil {
		damage := map[string]any{}
		if spell.SpellDamage.SpellDamageType != nil {
			damage["type"] = strings.ToLower(spell.SpellDamage.SpellDamageType.Key)
		}
		if spell.SpellDamage.SpellDamageAtSlotLevel != nil {
			if dice := baseDamage(spell.SpellLevel, spell.SpellDamage.SpellDamageAtSlotLevel); dice != "" {
				damage["dice"] = dice
			}
		}
		if len(damage) > 0 {
			out.Damage = damage
		}
	}

	if spell.DC != nil {
		save := map[string]any{}
		if spell.DC.DCType != nil {
			save["ability"] = strings.ToLower(spell.DC.DCType.Key)
		}
		if spell.DC.DCSuccess != "" {
			save["success"] = spell.DC.DCSuccess
		}
		if len(save) > 0 {
			out.SavingThrow = save
		}
	}

	if spell.AreaOfEffect != nil {
		out.Area = map[string]any{
			"type": spell.AreaOfEffect.Type,
			"size": spell.AreaOfEffect.Size,
		}
	}

	return out, nil
}

// baseDamage returns the damage dice at the spell's minimum casting level
func baseDamage(level int, damageAtSlotLevel *entities.SpellDamageAtSlotLevel) string {
	switch level {
	case 0, 1:
		return damageAtSlotLevel.FirstLevel
	case 2:
		return damageAtSlotLevel.SecondLevel
	case 3:
		return damageAtSlotLevel.ThirdLevel
	case 4:
		return damageAtSlotLevel.FourthLevel
	case 5:
		return damageAtSlotLevel.FifthLevel
	case 6:
		return damageAtSlotLevel.SixthLevel
	case 7:
		return damageAtSlotLevel.SeventhLevel
	case 8:
		return damageAtSlotLevel.EighthLevel
	case 9:
		return damageAtSlotLevel.NinthLevel
	default:
		return ""
	}
}
