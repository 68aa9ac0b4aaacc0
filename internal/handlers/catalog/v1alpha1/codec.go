package v1alpha1

import (
	"bytes"
	"encoding/json"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/vladmesh/dnd-helper-sub000/internal/entities/dnd5e"
	"github.com/vladmesh/dnd-helper-sub000/internal/orchestrators/catalog"
)

type idRequest struct {
	ID   string `json:"id"`
	Lang string `json:"lang,omitempty"`
}

type slugRequest struct {
	Slug string `json:"slug"`
	Lang string `json:"lang,omitempty"`
}

type monsterMessage struct {
	Monster *dnd5e.Monster `json:"monster"`
}

type spellMessage struct {
	Spell *dnd5e.Spell `json:"spell"`
}

type translationMessage struct {
	Translation *dnd5e.Translation `json:"translation"`
}

type enumLabelMessage struct {
	Label *dnd5e.EnumLabel `json:"label"`
}

type monsterFilter struct {
	IsFlying      *bool `json:"is_flying,omitempty"`
	HasDarkvision *bool `json:"has_darkvision,omitempty"`
	HasBlindsight *bool `json:"has_blindsight,omitempty"`
	HasTruesight  *bool `json:"has_truesight,omitempty"`
}

type listMonstersRequest struct {
	Lang   string        `json:"lang,omitempty"`
	Filter monsterFilter `json:"filter"`
	Limit  int           `json:"limit,omitempty"`
	Offset int           `json:"offset,omitempty"`
}

type spellFilter struct {
	Level           *int   `json:"level,omitempty"`
	School          string `json:"school,omitempty"`
	IsConcentration *bool  `json:"is_concentration,omitempty"`
	DamageType      string `json:"damage_type,omitempty"`
	SaveAbility     string `json:"save_ability,omitempty"`
	CastingTime     string `json:"casting_time,omitempty"`
	AttackRoll      *bool  `json:"attack_roll,omitempty"`
}

type listSpellsRequest struct {
	Lang   string      `json:"lang,omitempty"`
	Filter spellFilter `json:"filter"`
	Limit  int         `json:"limit,omitempty"`
	Offset int         `json:"offset,omitempty"`
}

type listMonstersResponse struct {
	Items []*catalog.MonsterEnvelope `json:"items"`
	Total int                        `json:"total"`
}

type listSpellsResponse struct {
	Items []*catalog.SpellEnvelope `json:"items"`
	Total int                      `json:"total"`
}

type listEnumLabelsRequest struct {
	EnumType string `json:"enum_type"`
	Lang     string `json:"lang,omitempty"`
}

type listEnumLabelsResponse struct {
	Labels []*dnd5e.EnumLabel `json:"labels"`
}

type hitPointsResponse struct {
	Expression string `json:"expression"`
	Rolls      []int  `json:"rolls"`
	Modifier   int    `json:"modifier"`
	Total      int    `json:"total"`
}

// decode reads a request Struct into dst through its JSON form.
// Unknown keys are rejected.
func decode(req *structpb.Struct, dst any) error {
	if req == nil {
		req = &structpb.Struct{}
	}

	data, err := protojson.Marshal(req)
	if err != nil {
		return invalidRequest(err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return invalidRequest(err)
	}

	return nil
}

// encode writes v into a response Struct through its JSON form
func encode(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	out := &structpb.Struct{}
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, err
	}

	return out, nil
}
