package elementor

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/remonromany/wpgenius/app/models"
	"github.com/remonromany/wpgenius/app/repository"
)

// GenerateInput describes the template the user asked for.
type GenerateInput struct {
	Name        string
	Description string
	Sections    []string
}

var defaultSections = []string{"hero", "features", "testimonials", "cta"}

// Generator builds Elementor-compatible template JSON and persists it.
type Generator struct {
	repo repository.ElementorTemplateRepository
}

// NewGenerator creates a generator backed by the given template repository.
func NewGenerator(repo repository.ElementorTemplateRepository) *Generator {
	return &Generator{repo: repo}
}

// Generate scaffolds a template document from the requested sections and
// stores it for the user.
func (g *Generator) Generate(userID uint, in GenerateInput) (*models.ElementorTemplate, error) {
	name := strings.TrimSpace(in.Name)
	if userID == 0 || name == "" {
		return nil, errors.New("user_id and template name are required")
	}

	sections := in.Sections
	if len(sections) == 0 {
		sections = defaultSections
	}

	doc := templateDocument{
		Version: "0.4",
		Title:   name,
		Type:    "page",
	}
	for _, section := range sections {
		doc.Content = append(doc.Content, newSection(section))
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	template := &models.ElementorTemplate{
		UserID:       userID,
		Name:         name,
		Description:  strings.TrimSpace(in.Description),
		TemplateJSON: string(raw),
	}
	if err := g.repo.Create(template); err != nil {
		return nil, err
	}
	return template, nil
}

// templateDocument mirrors the Elementor export format closely enough to
// import into the page builder.
type templateDocument struct {
	Version string    `json:"version"`
	Title   string    `json:"title"`
	Type    string    `json:"type"`
	Content []element `json:"content"`
}

type element struct {
	ID       string                 `json:"id"`
	ElType   string                 `json:"elType"`
	Settings map[string]interface{} `json:"settings"`
	Elements []element              `json:"elements"`
}

func newSection(kind string) element {
	heading := element{
		ID:     shortID(),
		ElType: "widget",
		Settings: map[string]interface{}{
			"widgetType": "heading",
			"title":      headingFor(kind),
		},
		Elements: []element{},
	}
	column := element{
		ID:       shortID(),
		ElType:   "column",
		Settings: map[string]interface{}{"_column_size": 100},
		Elements: []element{heading},
	}
	return element{
		ID:       shortID(),
		ElType:   "section",
		Settings: map[string]interface{}{"layout": kind},
		Elements: []element{column},
	}
}

func headingFor(kind string) string {
	if kind == "" {
		return "Section"
	}
	return strings.ToUpper(kind[:1]) + kind[1:]
}

func shortID() string {
	return uuid.New().String()[:8]
}
