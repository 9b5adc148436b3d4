package quota

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remonromany/wpgenius/app/models"
	"github.com/remonromany/wpgenius/internal/pkg/aiproviders"
)

// fakeQuotaRepo is an in-memory stand-in for the durable usage store.
type fakeQuotaRepo struct {
	rows    map[string]*models.ApiQuota
	nextID  uint
	upserts int
}

func newFakeQuotaRepo() *fakeQuotaRepo {
	return &fakeQuotaRepo{rows: make(map[string]*models.ApiQuota), nextID: 1}
}

func (f *fakeQuotaRepo) GetByUserID(userID uint) ([]models.ApiQuota, error) {
	out := make([]models.ApiQuota, 0, len(f.rows))
	for _, q := range f.rows {
		if q.UserID == userID {
			out = append(out, *q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeQuotaRepo) Upsert(quota *models.ApiQuota) error {
	f.upserts++
	if existing, ok := f.rows[quota.Provider]; ok {
		existing.UsedToday = quota.UsedToday
		existing.DailyLimit = quota.DailyLimit
		existing.CostPerRequest = quota.CostPerRequest
		existing.IsFree = quota.IsFree
		existing.LastResetAt = quota.LastResetAt
		*quota = *existing
		return nil
	}
	quota.ID = f.nextID
	f.nextID++
	row := *quota
	f.rows[quota.Provider] = &row
	return nil
}

func (f *fakeQuotaRepo) IncrementUsed(userID uint, provider string) error {
	if q, ok := f.rows[provider]; ok && q.UserID == userID {
		q.UsedToday++
	}
	return nil
}

func (f *fakeQuotaRepo) setUsed(provider string, used int) {
	f.rows[provider].UsedToday = used
}

const testUserID = 7

func newTestManager(t *testing.T, catalog *aiproviders.Catalog) (*Manager, *fakeQuotaRepo) {
	t.Helper()
	repo := newFakeQuotaRepo()
	m := NewManager(catalog, repo, testUserID)
	return m, repo
}

func TestLoadQuotasInitializesRowsPerProvider(t *testing.T) {
	m, repo := newTestManager(t, aiproviders.Default())

	require.NoError(t, m.LoadQuotas())

	rows, err := repo.GetByUserID(testUserID)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	status := m.QuotaStatus()
	require.Len(t, status, 4)
	assert.Equal(t, "gemini", status[0].Provider)
	assert.Equal(t, 1500, status[0].Limit)
	assert.Equal(t, 0, status[0].Used)
	assert.Equal(t, "openai", status[3].Provider)
	assert.False(t, status[3].IsFree)
}

func TestLoadQuotasIdempotentSameDay(t *testing.T) {
	m, repo := newTestManager(t, aiproviders.Default())

	require.NoError(t, m.LoadQuotas())
	upsertsAfterInit := repo.upserts

	require.NoError(t, m.LoadQuotas())
	assert.Equal(t, upsertsAfterInit, repo.upserts, "same-day reload must not write")
}

func TestLoadQuotasResetsOnNewDay(t *testing.T) {
	m, repo := newTestManager(t, aiproviders.Default())

	day1 := time.Date(2025, 3, 10, 22, 15, 0, 0, time.UTC)
	m.now = func() time.Time { return day1 }
	require.NoError(t, m.LoadQuotas())
	repo.setUsed("gemini", 42)

	day2 := time.Date(2025, 3, 11, 0, 5, 0, 0, time.UTC)
	m.now = func() time.Time { return day2 }
	require.NoError(t, m.LoadQuotas())

	rows, err := repo.GetByUserID(testUserID)
	require.NoError(t, err)
	for _, q := range rows {
		if q.Provider == "gemini" {
			assert.Equal(t, 0, q.UsedToday)
			assert.Equal(t, day2, q.LastResetAt)
		}
	}
	status := m.QuotaStatus()
	assert.Equal(t, 0, status[0].Used)
}

func TestRequestedProviderWithQuotaIsUnmarked(t *testing.T) {
	m, _ := newTestManager(t, aiproviders.Default())

	decision, err := m.CheckAndGetBestProvider("claude-sonnet-4-20250514")
	require.NoError(t, err)

	assert.True(t, decision.CanProceed)
	assert.Equal(t, "anthropic", decision.Provider)
	assert.Equal(t, "claude-sonnet-4-20250514", decision.Model.ID)
	assert.Zero(t, decision.Cost)
	assert.Equal(t, 1000, decision.QuotaRemaining)
	assert.Empty(t, decision.SwitchedProvider)
}

func TestUnknownModelFallsBackToDefault(t *testing.T) {
	m, _ := newTestManager(t, aiproviders.Default())

	decision, err := m.CheckAndGetBestProvider("some-model-that-does-not-exist")
	require.NoError(t, err)

	assert.True(t, decision.CanProceed)
	assert.Equal(t, "gemini", decision.Provider)
	assert.Equal(t, "gemini-2.5-flash", decision.Model.ID)
}

func TestFallbackSkipsExhaustedFreeProviders(t *testing.T) {
	m, repo := newTestManager(t, aiproviders.Default())

	require.NoError(t, m.LoadQuotas())
	repo.setUsed("gemini", 1500)
	repo.setUsed("anthropic", 1000)

	decision, err := m.CheckAndGetBestProvider("gemini-2.5-pro")
	require.NoError(t, err)

	assert.True(t, decision.CanProceed)
	assert.Equal(t, "groq", decision.Provider)
	assert.Equal(t, "llama-3.3-70b-versatile", decision.Model.ID, "first declared model of the fallback provider")
	assert.Equal(t, "Groq", decision.SwitchedProvider)
	assert.Equal(t, 10000, decision.QuotaRemaining)
}

func TestPaidFallbackWhenAllFreeExhausted(t *testing.T) {
	m, repo := newTestManager(t, aiproviders.Default())

	require.NoError(t, m.LoadQuotas())
	repo.setUsed("gemini", 1500)
	repo.setUsed("anthropic", 1000)
	repo.setUsed("groq", 10000)

	decision, err := m.CheckAndGetBestProvider("gemini-2.5-flash")
	require.NoError(t, err)

	assert.True(t, decision.CanProceed)
	assert.Equal(t, "openai", decision.Provider)
	assert.Equal(t, "gpt-4o", decision.Model.ID)
	assert.InDelta(t, 0.002, decision.Cost, 1e-9)
	assert.Equal(t, UnlimitedQuota, decision.QuotaRemaining)
	assert.Equal(t, "OpenAI (Paid)", decision.SwitchedProvider)
}

func TestForbiddenWhenNoPaidProviderExists(t *testing.T) {
	freeOnly := aiproviders.NewCatalog([]aiproviders.Provider{
		{
			ID: "gemini", Name: "Google Gemini", DailyFreeLimit: 2, IsFree: true,
			Models: []aiproviders.Model{{ID: "gemini-2.5-flash", Name: "Gemini 2.5 Flash", Provider: "gemini"}},
		},
	})
	m, repo := newTestManager(t, freeOnly)

	require.NoError(t, m.LoadQuotas())
	repo.setUsed("gemini", 2)

	decision, err := m.CheckAndGetBestProvider("gemini-2.5-flash")
	require.NoError(t, err)

	assert.False(t, decision.CanProceed)
	assert.Equal(t, "gemini", decision.Provider)
	assert.Equal(t, 0, decision.QuotaRemaining)
	assert.Zero(t, decision.Cost)
}

func TestPaidProviderRequestedDirectly(t *testing.T) {
	m, _ := newTestManager(t, aiproviders.Default())

	decision, err := m.CheckAndGetBestProvider("gpt-4o-mini")
	require.NoError(t, err)

	assert.True(t, decision.CanProceed)
	assert.Equal(t, "openai", decision.Provider)
	assert.InDelta(t, 0.0001, decision.Cost, 1e-9)
	assert.Equal(t, UnlimitedQuota, decision.QuotaRemaining)
	assert.Empty(t, decision.SwitchedProvider, "no switch happened")
}

func TestIncrementUsagePersistsAndUpdatesCache(t *testing.T) {
	m, repo := newTestManager(t, aiproviders.Default())

	require.NoError(t, m.LoadQuotas())
	require.NoError(t, m.IncrementUsage("groq"))
	require.NoError(t, m.IncrementUsage("groq"))

	assert.Equal(t, 2, repo.rows["groq"].UsedToday)

	status := m.QuotaStatus()
	for _, s := range status {
		if s.Provider == "groq" {
			assert.Equal(t, 2, s.Used)
			assert.Equal(t, 9998, s.Remaining)
		}
	}
}

func TestIncrementUsageUnknownProviderIsNoop(t *testing.T) {
	m, _ := newTestManager(t, aiproviders.Default())

	require.NoError(t, m.LoadQuotas())
	assert.NoError(t, m.IncrementUsage("mistral"))
}

func TestQuotaStatusIdempotent(t *testing.T) {
	m, _ := newTestManager(t, aiproviders.Default())

	require.NoError(t, m.LoadQuotas())
	first := m.QuotaStatus()
	second := m.QuotaStatus()
	assert.Equal(t, first, second)
}

func TestUsedNeverExceedsLimitUnderPermittedIncrements(t *testing.T) {
	tiny := aiproviders.NewCatalog([]aiproviders.Provider{
		{
			ID: "gemini", Name: "Google Gemini", DailyFreeLimit: 3, IsFree: true,
			Models: []aiproviders.Model{{ID: "gemini-2.5-flash", Name: "Gemini 2.5 Flash", Provider: "gemini"}},
		},
	})
	m, repo := newTestManager(t, tiny)

	for i := 0; i < 10; i++ {
		decision, err := m.CheckAndGetBestProvider("gemini-2.5-flash")
		require.NoError(t, err)
		if !decision.CanProceed {
			break
		}
		require.NoError(t, m.IncrementUsage(decision.Provider))
	}

	assert.Equal(t, 3, repo.rows["gemini"].UsedToday)
}

func TestEndToEndScenarioFromExhaustedGemini(t *testing.T) {
	// Gemini 1500/1500 used, Claude 1000/1000 used, Groq 0/10000 used.
	m, repo := newTestManager(t, aiproviders.Default())
	require.NoError(t, m.LoadQuotas())
	repo.setUsed("gemini", 1500)
	repo.setUsed("anthropic", 1000)

	decision, err := m.CheckAndGetBestProvider("gemini-2.5-flash")
	require.NoError(t, err)

	assert.True(t, decision.CanProceed)
	assert.Equal(t, "Groq", decision.SwitchedProvider)
	assert.Equal(t, "llama-3.3-70b-versatile", decision.Model.ID)
	assert.Equal(t, 10000, decision.QuotaRemaining)
}
