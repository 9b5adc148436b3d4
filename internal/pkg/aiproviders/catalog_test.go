package aiproviders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogOrder(t *testing.T) {
	catalog := Default()

	ids := make([]string, 0)
	for _, p := range catalog.Providers() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"gemini", "anthropic", "groq", "openai"}, ids)
}

func TestFindProvider(t *testing.T) {
	catalog := Default()

	p, ok := catalog.FindProvider("groq")
	require.True(t, ok)
	assert.Equal(t, "Groq", p.Name)
	assert.Equal(t, 10000, p.DailyFreeLimit)
	assert.True(t, p.IsFree)

	_, ok = catalog.FindProvider("mistral")
	assert.False(t, ok)
}

func TestFindModel(t *testing.T) {
	catalog := Default()

	m, p, ok := catalog.FindModel("claude-3-5-haiku-20241022")
	require.True(t, ok)
	assert.Equal(t, "anthropic", p.ID)
	assert.Equal(t, "Claude 3.5 Haiku", m.Name)

	m, p, ok = catalog.FindModel("gpt-4o-mini")
	require.True(t, ok)
	assert.Equal(t, "openai", p.ID)
	assert.False(t, p.IsFree)
	assert.InDelta(t, 0.0001, m.CostPerRequest, 1e-9)

	_, _, ok = catalog.FindModel("no-such-model")
	assert.False(t, ok)
}

func TestFreeProvidersPreserveOrder(t *testing.T) {
	catalog := Default()

	free := catalog.FreeProviders()
	require.Len(t, free, 3)
	assert.Equal(t, "gemini", free[0].ID)
	assert.Equal(t, "anthropic", free[1].ID)
	assert.Equal(t, "groq", free[2].ID)

	paid := catalog.PaidProviders()
	require.Len(t, paid, 1)
	assert.Equal(t, "openai", paid[0].ID)
}

func TestAllModelsFlattened(t *testing.T) {
	catalog := Default()

	models := catalog.AllModels()
	require.Len(t, models, 8)
	assert.Equal(t, "gemini-2.5-flash", models[0].ID)
	assert.Equal(t, "gpt-4o-mini", models[len(models)-1].ID)
}

func TestDefaultModel(t *testing.T) {
	catalog := Default()

	m := catalog.DefaultModel()
	assert.Equal(t, "gemini-2.5-flash", m.ID)

	// A catalog with only paid providers still yields a usable default.
	paidOnly := NewCatalog([]Provider{
		{
			ID:     "openai",
			Name:   "OpenAI",
			IsFree: false,
			Models: []Model{{ID: "gpt-4o", Name: "GPT-4o", Provider: "openai"}},
		},
	})
	assert.Equal(t, "gpt-4o", paidOnly.DefaultModel().ID)
}
