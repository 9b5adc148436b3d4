package elementor

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/remonromany/wpgenius/app/models"
)

type fakeTemplateRepo struct {
	created []*models.ElementorTemplate
	nextID  uint
}

func (f *fakeTemplateRepo) Create(template *models.ElementorTemplate) error {
	f.nextID++
	template.ID = f.nextID
	f.created = append(f.created, template)
	return nil
}

func (f *fakeTemplateRepo) GetByUUID(uuid string) (*models.ElementorTemplate, error) {
	for _, t := range f.created {
		if t.UUID == uuid {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTemplateRepo) GetByUserID(userID uint) ([]models.ElementorTemplate, error) {
	var out []models.ElementorTemplate
	for _, t := range f.created {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTemplateRepo) Delete(id uint) error { return nil }

func TestGenerateProducesImportableDocument(t *testing.T) {
	repo := &fakeTemplateRepo{}
	gen := NewGenerator(repo)

	template, err := gen.Generate(1, GenerateInput{
		Name:     "Landing Page",
		Sections: []string{"hero", "cta"},
	})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)

	var doc templateDocument
	require.NoError(t, json.Unmarshal([]byte(template.TemplateJSON), &doc))
	assert.Equal(t, "0.4", doc.Version)
	assert.Equal(t, "Landing Page", doc.Title)
	require.Len(t, doc.Content, 2)

	section := doc.Content[0]
	assert.Equal(t, "section", section.ElType)
	assert.Equal(t, "hero", section.Settings["layout"])
	require.Len(t, section.Elements, 1)
	column := section.Elements[0]
	assert.Equal(t, "column", column.ElType)
	require.Len(t, column.Elements, 1)
	assert.Equal(t, "widget", column.Elements[0].ElType)
	assert.Equal(t, "Hero", column.Elements[0].Settings["title"])
}

func TestGenerateUsesDefaultSections(t *testing.T) {
	repo := &fakeTemplateRepo{}
	gen := NewGenerator(repo)

	template, err := gen.Generate(7, GenerateInput{Name: "Basic"})
	require.NoError(t, err)

	var doc templateDocument
	require.NoError(t, json.Unmarshal([]byte(template.TemplateJSON), &doc))
	require.Len(t, doc.Content, len(defaultSections))
	for i, section := range doc.Content {
		assert.Equal(t, defaultSections[i], section.Settings["layout"])
	}
}

func TestGenerateValidatesInput(t *testing.T) {
	gen := NewGenerator(&fakeTemplateRepo{})

	_, err := gen.Generate(0, GenerateInput{Name: "x"})
	assert.Error(t, err)

	_, err = gen.Generate(1, GenerateInput{Name: "   "})
	assert.Error(t, err)
}
