package gamedata

import (
	"errors"
	"fmt"
	"sort"

	"github.com/samdwyer/cavewalk/internal/world"
)

// ErrUnknownPreset is returned when a preset ID is not registered.
var ErrUnknownPreset = errors.New("unknown preset")

// PresetDef is a named parameter set loaded from presets.json.
type PresetDef struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	RockRate    float64 `json:"rockRate"`
	Iterations  int     `json:"iterations"`
	Threshold   int     `json:"threshold"`
	Radius      int     `json:"radius"`
	Size        int     `json:"size"`
}

// Params converts the preset into generation parameters.
func (p *PresetDef) Params() world.Params {
	return world.Params{
		RockRate:   p.RockRate,
		Iterations: p.Iterations,
		Threshold:  p.Threshold,
		Radius:     p.Radius,
		Size:       p.Size,
	}
}

// PresetsFile represents the structure of presets.json.
type PresetsFile struct {
	Presets []PresetDef `json:"presets"`
}

// PresetRegistry indexes presets by ID.
type PresetRegistry struct {
	presets map[string]*PresetDef
}

// NewPresetRegistry builds a registry, rejecting duplicate or invalid presets.
func NewPresetRegistry(presets []PresetDef) (*PresetRegistry, error) {
	r := &PresetRegistry{presets: make(map[string]*PresetDef, len(presets))}
	for i := range presets {
		p := &presets[i]
		if _, dup := r.presets[p.ID]; dup {
			return nil, fmt.Errorf("duplicate preset %q", p.ID)
		}
		if err := p.Params().Validate(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", p.ID, err)
		}
		r.presets[p.ID] = p
	}
	return r, nil
}

// LoadPresetRegistry loads the registry from the embedded presets.json.
func LoadPresetRegistry() (*PresetRegistry, error) {
	file, err := Load[PresetsFile]("presets.json")
	if err != nil {
		return nil, err
	}
	if len(file.Presets) == 0 {
		return nil, errors.New("no presets loaded from presets.json")
	}
	return NewPresetRegistry(file.Presets)
}

// Get returns the preset with the given ID.
func (r *PresetRegistry) Get(id string) (*PresetDef, error) {
	p, ok := r.presets[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, id)
	}
	return p, nil
}

// IDs returns every preset ID in sorted order.
func (r *PresetRegistry) IDs() []string {
	ids := make([]string, 0, len(r.presets))
	for id := range r.presets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Count returns the number of registered presets.
func (r *PresetRegistry) Count() int {
	return len(r.presets)
}
