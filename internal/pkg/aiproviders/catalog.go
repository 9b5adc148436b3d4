package aiproviders

// Provider is one external AI vendor with its models and free-tier allowance.
type Provider struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Models         []Model `json:"models"`
	DailyFreeLimit int     `json:"daily_free_limit"`
	IsFree         bool    `json:"is_free"`
}

// Model is one invocable AI model belonging to exactly one provider.
// CostPerRequest of 0 means the model is free to call.
type Model struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Provider       string   `json:"provider"`
	CostPerRequest float64  `json:"cost_per_request,omitempty"`
	ContextWindow  int      `json:"context_window"`
	Capabilities   []string `json:"capabilities"`
}

// Catalog is an immutable, ordered set of providers. Lookup order is always
// declaration order; there is no scoring or preference beyond that.
type Catalog struct {
	providers []Provider
}

// NewCatalog builds a catalog from the given providers, preserving order.
func NewCatalog(providers []Provider) *Catalog {
	return &Catalog{providers: providers}
}

// Providers returns all providers in declaration order.
func (c *Catalog) Providers() []Provider {
	return c.providers
}

// FindProvider looks up a provider by id.
func (c *Catalog) FindProvider(id string) (Provider, bool) {
	for _, p := range c.providers {
		if p.ID == id {
			return p, true
		}
	}
	return Provider{}, false
}

// FindModel resolves a globally unique model id to its model and owning
// provider, scanning providers in catalog order.
func (c *Catalog) FindModel(modelID string) (Model, Provider, bool) {
	for _, p := range c.providers {
		for _, m := range p.Models {
			if m.ID == modelID {
				return m, p, true
			}
		}
	}
	return Model{}, Provider{}, false
}

// FreeProviders returns the free-tier providers in catalog order.
func (c *Catalog) FreeProviders() []Provider {
	free := make([]Provider, 0, len(c.providers))
	for _, p := range c.providers {
		if p.IsFree {
			free = append(free, p)
		}
	}
	return free
}

// PaidProviders returns the non-free providers in catalog order.
func (c *Catalog) PaidProviders() []Provider {
	paid := make([]Provider, 0, len(c.providers))
	for _, p := range c.providers {
		if !p.IsFree {
			paid = append(paid, p)
		}
	}
	return paid
}

// AllModels returns every model across providers, flattened in catalog order.
func (c *Catalog) AllModels() []Model {
	models := make([]Model, 0)
	for _, p := range c.providers {
		models = append(models, p.Models...)
	}
	return models
}

// DefaultModel returns the model used when a requested model id cannot be
// resolved: the first model of the first free provider.
func (c *Catalog) DefaultModel() Model {
	for _, p := range c.providers {
		if p.IsFree && len(p.Models) > 0 {
			return p.Models[0]
		}
	}
	if len(c.providers) > 0 && len(c.providers[0].Models) > 0 {
		return c.providers[0].Models[0]
	}
	return Model{}
}

// Default returns the built-in production catalog.
func Default() *Catalog {
	return NewCatalog([]Provider{
		{
			ID:             "gemini",
			Name:           "Google Gemini",
			DailyFreeLimit: 1500,
			IsFree:         true,
			Models: []Model{
				{
					ID:            "gemini-2.5-flash",
					Name:          "Gemini 2.5 Flash",
					Provider:      "gemini",
					ContextWindow: 1000000,
					Capabilities:  []string{"text", "code", "vision"},
				},
				{
					ID:            "gemini-2.5-pro",
					Name:          "Gemini 2.5 Pro",
					Provider:      "gemini",
					ContextWindow: 2000000,
					Capabilities:  []string{"text", "code", "vision", "reasoning"},
				},
			},
		},
		{
			ID:             "anthropic",
			Name:           "Anthropic Claude",
			DailyFreeLimit: 1000,
			IsFree:         true,
			Models: []Model{
				{
					ID:            "claude-sonnet-4-20250514",
					Name:          "Claude Sonnet 4",
					Provider:      "anthropic",
					ContextWindow: 200000,
					Capabilities:  []string{"text", "code", "vision", "reasoning"},
				},
				{
					ID:            "claude-3-5-haiku-20241022",
					Name:          "Claude 3.5 Haiku",
					Provider:      "anthropic",
					ContextWindow: 200000,
					Capabilities:  []string{"text", "code"},
				},
			},
		},
		{
			ID:             "groq",
			Name:           "Groq",
			DailyFreeLimit: 10000,
			IsFree:         true,
			Models: []Model{
				{
					ID:            "llama-3.3-70b-versatile",
					Name:          "Llama 3.3 70B",
					Provider:      "groq",
					ContextWindow: 128000,
					Capabilities:  []string{"text", "code"},
				},
				{
					ID:            "mixtral-8x7b-32768",
					Name:          "Mixtral 8x7B",
					Provider:      "groq",
					ContextWindow: 32768,
					Capabilities:  []string{"text", "code"},
				},
			},
		},
		{
			ID:             "openai",
			Name:           "OpenAI",
			DailyFreeLimit: 0,
			IsFree:         false,
			Models: []Model{
				{
					ID:             "gpt-4o",
					Name:           "GPT-4o",
					Provider:       "openai",
					CostPerRequest: 0.002,
					ContextWindow:  128000,
					Capabilities:   []string{"text", "code", "vision", "reasoning"},
				},
				{
					ID:             "gpt-4o-mini",
					Name:           "GPT-4o Mini",
					Provider:       "openai",
					CostPerRequest: 0.0001,
					ContextWindow:  128000,
					Capabilities:   []string{"text", "code", "vision"},
				},
			},
		},
	})
}
