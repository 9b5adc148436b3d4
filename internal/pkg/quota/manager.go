package quota

import (
	"time"

	"github.com/remonromany/wpgenius/app/models"
	"github.com/remonromany/wpgenius/app/repository"
	"github.com/remonromany/wpgenius/internal/pkg/aiproviders"
)

// UnlimitedQuota marks a decision whose remaining allowance is not capped,
// i.e. paid usage billed against the wallet instead of a daily counter.
const UnlimitedQuota = -1

// Decision is the outcome of evaluating where a request may proceed. It is
// computed per request and never persisted.
type Decision struct {
	CanProceed bool              `json:"can_proceed"`
	Provider   string            `json:"provider"`
	Model      aiproviders.Model `json:"model"`
	Cost       float64           `json:"cost"`
	QuotaUsed  int               `json:"quota_used"`
	// QuotaRemaining is UnlimitedQuota for paid providers.
	QuotaRemaining int `json:"quota_remaining"`
	// SwitchedProvider holds the display name of the provider that was
	// substituted when the originally requested one was exhausted.
	SwitchedProvider string `json:"switched_provider,omitempty"`
}

// ProviderStatus is one row of the read-only quota snapshot.
type ProviderStatus struct {
	Provider  string `json:"provider"`
	Used      int    `json:"used"`
	Limit     int    `json:"limit"`
	Remaining int    `json:"remaining"`
	IsFree    bool   `json:"is_free"`
}

// Manager decides, for one user and one logical operation, which provider
// serves a request, and keeps the user's daily quota ledger correct across
// lazy daily resets. A Manager is created per request and discarded
// afterwards; it holds no cross-request state.
type Manager struct {
	catalog *aiproviders.Catalog
	repo    repository.QuotaRepository
	userID  uint

	cache map[string]*models.ApiQuota
	order []string

	now func() time.Time
}

// NewManager creates a quota manager for one user and one logical operation.
func NewManager(catalog *aiproviders.Catalog, repo repository.QuotaRepository, userID uint) *Manager {
	return &Manager{
		catalog: catalog,
		repo:    repo,
		userID:  userID,
		cache:   make(map[string]*models.ApiQuota),
		now:     time.Now,
	}
}

// LoadQuotas fetches the user's quota rows into the in-memory cache. Rows
// are created lazily on first use (one per catalog provider), and rows whose
// last reset fell on an earlier calendar day are reset to zero before any
// check or increment sees them.
func (m *Manager) LoadQuotas() error {
	quotas, err := m.repo.GetByUserID(m.userID)
	if err != nil {
		return err
	}

	if len(quotas) == 0 {
		if err := m.initializeQuotas(); err != nil {
			return err
		}
		quotas, err = m.repo.GetByUserID(m.userID)
		if err != nil {
			return err
		}
	}

	byProvider := make(map[string]models.ApiQuota, len(quotas))
	for _, q := range quotas {
		byProvider[q.Provider] = q
	}

	m.cache = make(map[string]*models.ApiQuota, len(quotas))
	m.order = m.order[:0]

	now := m.now()
	cacheRow := func(q models.ApiQuota) error {
		if q.NeedsDailyReset(now) {
			q.UsedToday = 0
			q.LastResetAt = now
			if err := m.repo.Upsert(&q); err != nil {
				return err
			}
		}
		m.cache[q.Provider] = &q
		m.order = append(m.order, q.Provider)
		return nil
	}

	// Catalog order first, then any leftover rows for providers that were
	// removed from the catalog.
	for _, p := range m.catalog.Providers() {
		if q, ok := byProvider[p.ID]; ok {
			if err := cacheRow(q); err != nil {
				return err
			}
			delete(byProvider, p.ID)
		}
	}
	for _, q := range quotas {
		if _, ok := byProvider[q.Provider]; !ok {
			continue
		}
		if err := cacheRow(q); err != nil {
			return err
		}
		delete(byProvider, q.Provider)
	}

	return nil
}

func (m *Manager) initializeQuotas() error {
	now := m.now()
	for _, p := range m.catalog.Providers() {
		cost := 0.0
		if !p.IsFree && len(p.Models) > 0 {
			cost = p.Models[0].CostPerRequest
		}
		quota := &models.ApiQuota{
			UserID:         m.userID,
			Provider:       p.ID,
			UsedToday:      0,
			DailyLimit:     p.DailyFreeLimit,
			CostPerRequest: cost,
			IsFree:         p.IsFree,
			LastResetAt:    now,
		}
		if err := m.repo.Upsert(quota); err != nil {
			return err
		}
	}
	return nil
}

// CheckAndGetBestProvider decides which provider serves a request for the
// given model. The requested provider is tried first; if exhausted, the
// remaining free providers are tried in catalog order (first model only),
// then the first paid provider, and only then is the request forbidden.
func (m *Manager) CheckAndGetBestProvider(requestedModelID string) (*Decision, error) {
	if err := m.LoadQuotas(); err != nil {
		return nil, err
	}

	requestedModel, _, found := m.catalog.FindModel(requestedModelID)
	if !found {
		requestedModel = m.catalog.DefaultModel()
	}

	// First, try the requested model's provider.
	decision := m.checkProviderQuota(requestedModel)
	if decision.CanProceed {
		return decision, nil
	}

	// Requested provider is exhausted: look for an alternative free
	// provider, first declared model only.
	for _, p := range m.catalog.FreeProviders() {
		if p.ID == requestedModel.Provider || len(p.Models) == 0 {
			continue
		}
		alt := m.checkProviderQuota(p.Models[0])
		if alt.CanProceed {
			alt.SwitchedProvider = p.Name
			return alt, nil
		}
	}

	// All free tiers exhausted: fall back to the first paid provider.
	for _, p := range m.catalog.PaidProviders() {
		if len(p.Models) == 0 {
			continue
		}
		paidModel := p.Models[0]
		used := 0
		if q, ok := m.cache[p.ID]; ok {
			used = q.UsedToday
		}
		return &Decision{
			CanProceed:       true,
			Provider:         p.ID,
			Model:            paidModel,
			Cost:             paidModel.CostPerRequest,
			QuotaUsed:        used,
			QuotaRemaining:   UnlimitedQuota,
			SwitchedProvider: p.Name + " (Paid)",
		}, nil
	}

	// Nothing left to serve the request.
	return &Decision{
		CanProceed:     false,
		Provider:       requestedModel.Provider,
		Model:          requestedModel,
		Cost:           0,
		QuotaUsed:      0,
		QuotaRemaining: 0,
	}, nil
}

// checkProviderQuota evaluates a single model against its provider's cached
// quota row. Paid providers always permit; free providers permit while the
// daily counter has headroom.
func (m *Manager) checkProviderQuota(model aiproviders.Model) *Decision {
	quota, cached := m.cache[model.Provider]
	provider, known := m.catalog.FindProvider(model.Provider)

	if !cached || !known {
		return &Decision{
			CanProceed:     false,
			Provider:       model.Provider,
			Model:          model,
			Cost:           0,
			QuotaUsed:      0,
			QuotaRemaining: 0,
		}
	}

	if !provider.IsFree {
		// Wallet balance checks happen in the request handler, not here.
		return &Decision{
			CanProceed:     true,
			Provider:       model.Provider,
			Model:          model,
			Cost:           model.CostPerRequest,
			QuotaUsed:      quota.UsedToday,
			QuotaRemaining: UnlimitedQuota,
		}
	}

	remaining := quota.DailyLimit - quota.UsedToday
	if remaining > 0 {
		return &Decision{
			CanProceed:     true,
			Provider:       model.Provider,
			Model:          model,
			Cost:           0,
			QuotaUsed:      quota.UsedToday,
			QuotaRemaining: remaining,
		}
	}

	return &Decision{
		CanProceed:     false,
		Provider:       model.Provider,
		Model:          model,
		Cost:           0,
		QuotaUsed:      quota.UsedToday,
		QuotaRemaining: 0,
	}
}

// IncrementUsage records one unit of usage against a provider: the cached
// counter is bumped and the row is incremented atomically in storage. It is
// a no-op for providers that are not cached. Call it exactly once per
// successfully completed generation, after the output has been persisted.
func (m *Manager) IncrementUsage(providerID string) error {
	quota, ok := m.cache[providerID]
	if !ok {
		return nil
	}

	if err := m.repo.IncrementUsed(m.userID, providerID); err != nil {
		return err
	}
	quota.UsedToday++
	return nil
}

// QuotaStatus returns a read-only snapshot of the cached quota rows in
// cache population order. It reflects the state as of the last LoadQuotas.
func (m *Manager) QuotaStatus() []ProviderStatus {
	status := make([]ProviderStatus, 0, len(m.order))
	for _, providerID := range m.order {
		quota, ok := m.cache[providerID]
		if !ok {
			continue
		}
		provider, known := m.catalog.FindProvider(providerID)
		if !known {
			continue
		}
		status = append(status, ProviderStatus{
			Provider:  providerID,
			Used:      quota.UsedToday,
			Limit:     quota.DailyLimit,
			Remaining: quota.Remaining(),
			IsFree:    provider.IsFree,
		})
	}
	return status
}
