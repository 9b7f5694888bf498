package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/domain"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

var recordValidate = validator.New()

// skillRecord is the on-disk shape of one catalog entry.
// It uses "mapstructure" tags to match the snake_case YAML keys.
type skillRecord struct {
	ID              string             `mapstructure:"id" validate:"required"`
	Name            string             `mapstructure:"name" validate:"required"`
	Tree            string             `mapstructure:"tree" validate:"required"`
	Kind            string             `mapstructure:"kind" validate:"required,oneof=scaling keystone binary"`
	MaxRank         int                `mapstructure:"max_rank" validate:"min=1"`
	TreeRequirement int                `mapstructure:"tree_requirement" validate:"min=0"`
	Prerequisites   []string           `mapstructure:"prerequisites" validate:"dive,required"`
	Stats           map[string]float64 `mapstructure:"stats"`
	Description     string             `mapstructure:"description"`
	EffectPerRank   string             `mapstructure:"effect_per_rank"`
}

type document struct {
	Skills []map[string]any `yaml:"skills"`
}

var loadDefault = sync.OnceValues(func() (*Catalog, error) {
	return Parse(defaultYAML)
})

// Default returns the embedded catalog. It is parsed once and shared.
func Default() (*Catalog, error) {
	return loadDefault()
}

// LoadFile reads and parses a catalog from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}

// Parse decodes a YAML catalog document and validates it.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog yaml: %w", err)
	}
	if len(doc.Skills) == 0 {
		return nil, fmt.Errorf("%w: no skills defined", domain.ErrInvalidCatalog)
	}

	skills := make([]domain.Skill, 0, len(doc.Skills))
	for i, raw := range doc.Skills {
		s, err := decodeSkill(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", domain.ErrInvalidCatalog, i, err)
		}
		skills = append(skills, s)
	}
	return New(skills)
}

func decodeSkill(raw map[string]any) (domain.Skill, error) {
	var rec skillRecord
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &rec,
		TagName:     "mapstructure",
		ErrorUnused: true,
	})
	if err != nil {
		return domain.Skill{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return domain.Skill{}, fmt.Errorf("failed to decode skill: %w", err)
	}
	if err := recordValidate.Struct(rec); err != nil {
		return domain.Skill{}, fmt.Errorf("skill %q: %w", rec.ID, err)
	}

	tree, err := domain.ParseTree(rec.Tree)
	if err != nil {
		return domain.Skill{}, fmt.Errorf("skill %q: %w", rec.ID, err)
	}

	kind := domain.SkillKind(rec.Kind)
	if rec.Kind == "binary" {
		kind = domain.KindKeystone
	}

	var stats map[domain.Stat]float64
	if len(rec.Stats) > 0 {
		stats = make(map[domain.Stat]float64, len(rec.Stats))
		for k, v := range rec.Stats {
			stats[domain.Stat(k)] = v
		}
	}

	return domain.Skill{
		ID:              rec.ID,
		Name:            rec.Name,
		Tree:            tree,
		Kind:            kind,
		MaxRank:         rec.MaxRank,
		TreeRequirement: rec.TreeRequirement,
		Prerequisites:   rec.Prerequisites,
		Stats:           stats,
		Description:     rec.Description,
		EffectPerRank:   rec.EffectPerRank,
	}, nil
}
