package wpdoctor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remonromany/wpgenius/app/models"
)

type fakeProjectRepo struct {
	projects []models.WpProject
	issues   []models.WpIssue
}

func (f *fakeProjectRepo) Create(project *models.WpProject) error {
	project.ID = uint(len(f.projects) + 1)
	f.projects = append(f.projects, *project)
	return nil
}

func (f *fakeProjectRepo) GetByUUID(uuid string) (*models.WpProject, error) { return nil, nil }

func (f *fakeProjectRepo) GetByUserID(userID uint) ([]models.WpProject, error) {
	return f.projects, nil
}

func (f *fakeProjectRepo) CreateIssue(issue *models.WpIssue) error {
	issue.ID = uint(len(f.issues) + 1)
	f.issues = append(f.issues, *issue)
	return nil
}

func (f *fakeProjectRepo) GetIssuesByProjectID(projectID uint) ([]models.WpIssue, error) {
	return f.issues, nil
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	in := AnalyzeInput{Name: "woo-slider", Type: "plugin", Version: "2.1.0"}

	first, err := NewAnalyzer(&fakeProjectRepo{}).Analyze(3, in)
	require.NoError(t, err)
	second, err := NewAnalyzer(&fakeProjectRepo{}).Analyze(3, in)
	require.NoError(t, err)

	assert.Equal(t, first.Project.SecurityScore, second.Project.SecurityScore)
	assert.Equal(t, first.Project.PerformanceScore, second.Project.PerformanceScore)
	assert.Equal(t, first.Project.CodeQualityScore, second.Project.CodeQualityScore)
	assert.Equal(t, len(first.Issues), len(second.Issues))
}

func TestAnalyzeScoresWithinRange(t *testing.T) {
	repo := &fakeProjectRepo{}
	result, err := NewAnalyzer(repo).Analyze(3, AnalyzeInput{Name: "my-theme", Type: "theme"})
	require.NoError(t, err)

	for _, score := range []int{
		result.Project.SecurityScore,
		result.Project.PerformanceScore,
		result.Project.CodeQualityScore,
	} {
		assert.GreaterOrEqual(t, score, 55)
		assert.LessOrEqual(t, score, 99)
	}
}

func TestAnalyzeValidatesInput(t *testing.T) {
	a := NewAnalyzer(&fakeProjectRepo{})

	_, err := a.Analyze(0, AnalyzeInput{Name: "x", Type: "plugin"})
	assert.Error(t, err)

	_, err = a.Analyze(3, AnalyzeInput{Name: "", Type: "plugin"})
	assert.Error(t, err)

	_, err = a.Analyze(3, AnalyzeInput{Name: "x", Type: "widget"})
	assert.Error(t, err)
}

func TestIssuesLinkToProject(t *testing.T) {
	repo := &fakeProjectRepo{}
	result, err := NewAnalyzer(repo).Analyze(3, AnalyzeInput{Name: "legacy-forms", Type: "plugin", Version: "0.9"})
	require.NoError(t, err)

	for _, issue := range result.Issues {
		assert.Equal(t, result.Project.ID, issue.ProjectID)
	}
}
