package cli

import (
	"testing"

	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/catalog"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_Resolve(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)
	r := NewResolver(cat)

	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"exact id", "cond_turtle_crawl", "cond_turtle_crawl"},
		{"id any case", "COND_Turtle_Crawl", "cond_turtle_crawl"},
		{"display name", "Turtle Crawl", "cond_turtle_crawl"},
		{"name with hyphen", "in-round crafting", "surv_in_round_crafting"},
		{"unique prefix", "thick", "cond_thick_skin"},
		{"id prefix", "mob_youth", "mob_youthful_lungs"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_UnknownSuggests(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)
	r := NewResolver(cat)

	_, err = r.Resolve("turtle crawk")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownSkill)
	assert.Contains(t, err.Error(), `did you mean "cond_turtle_crawl"`)

	_, err = r.Resolve("zzzzzzzzzzzz")
	require.ErrorIs(t, err, domain.ErrUnknownSkill)
	assert.NotContains(t, err.Error(), "did you mean")

	_, err = r.Resolve("  ")
	assert.ErrorIs(t, err, domain.ErrUnknownSkill)
}

func TestResolver_AmbiguousPrefix(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)
	r := NewResolver(cat)

	// Every mobility skill starts with "mob_".
	_, err = r.Resolve("mob_")
	assert.ErrorIs(t, err, domain.ErrUnknownSkill)
}
