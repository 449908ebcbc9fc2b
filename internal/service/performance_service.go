package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pr-risk-radar/internal/model"
)

// Пороговые значения эвристики сложности и риска.
const (
	churnMediumThreshold = 100
	churnHighThreshold   = 500
	filesMediumThreshold = 5
	filesHighThreshold   = 20

	riskMediumThreshold = 60
	riskHighThreshold   = 120

	manySourceFiles = 10
	manyConfigFiles = 5
)

// Веса комбинированной оценки риска. Калибровка эмпирическая,
// формула зафиксирована как контракт.
const (
	weightComplexity = 30
	weightDependency = 20
	weightCIFailure  = 15
	bucketBonus      = 10
)

// dependencyManifests — имена файлов-манифестов зависимостей,
// детектируются по подстроке в пути.
var dependencyManifests = []string{
	"package.json", "package-lock.json", "yarn.lock", "pnpm-lock.yaml",
	"go.mod", "go.sum",
	"requirements.txt", "poetry.lock", "pipfile",
	"gemfile",
	"pom.xml", "build.gradle",
	"cargo.toml", "composer.json",
}

// sourceExtensions — расширения файлов, относимых к исходному коду.
var sourceExtensions = []string{
	".go", ".py", ".js", ".ts", ".jsx", ".tsx", ".java", ".rb", ".rs",
	".c", ".cc", ".cpp", ".h", ".cs", ".php", ".kt", ".swift", ".sh", ".sql",
}

// configExtensions — расширения конфигурационных файлов.
var configExtensions = []string{".yml", ".yaml", ".json", ".toml", ".ini", ".env"}

// docExtensions — расширения документации.
var docExtensions = []string{".md", ".rst", ".adoc"}

// PerformanceService инкапсулирует независимую эвристику влияния PR
// на производительность: сложность, зависимости, категории файлов,
// CI-метрики и комбинированный риск.
type PerformanceService struct {
	gh GitHubAPI
}

// NewPerformanceService создаёт новый сервис анализа влияния PR.
func NewPerformanceService(gh GitHubAPI) *PerformanceService {
	return &PerformanceService{gh: gh}
}

// AnalyzePR выполняет выборку деталей PR и файлов, затем четыре
// независимых анализа и комбинирует их в оценку риска с
// markdown-комментарием. Сбой шага CI-метрик деградирует до нулевых
// метрик и не валит запрос.
func (s *PerformanceService) AnalyzePR(ctx context.Context, owner, repo string, number int) (model.PerformanceResult, error) {
	pr, err := s.gh.PullRequest(ctx, owner, repo, number)
	if err != nil {
		return model.PerformanceResult{}, ErrUpstream(err)
	}

	files, err := s.gh.ChangedFiles(ctx, owner, repo, number)
	if err != nil {
		return model.PerformanceResult{}, ErrUpstream(err)
	}

	complexity := analyzeComplexity(pr, len(files))
	deps := analyzeDependencies(files)
	fileTypes := analyzeFileTypes(files)
	ci := s.analyzeCI(ctx, owner, repo, pr.Head.SHA)

	risk := assessRisk(complexity, deps, fileTypes, ci)

	result := model.PerformanceResult{
		Owner:        owner,
		Repo:         repo,
		PR:           number,
		Title:        pr.Title,
		Performance:  complexity,
		Dependencies: deps,
		FileTypes:    fileTypes,
		CI:           ci,
		Risk:         risk,
	}
	result.Comment = renderComment(result)
	return result, nil
}

// analyzeComplexity классифицирует объём изменений и файловый churn.
func analyzeComplexity(pr model.PullRequestDetail, fileCount int) model.ComplexityAnalysis {
	total := pr.Additions + pr.Deletions

	level := 1
	label := "low"
	switch {
	case total >= churnHighThreshold:
		level, label = 3, "high"
	case total >= churnMediumThreshold:
		level, label = 2, "medium"
	}

	fileChurn := "low"
	switch {
	case fileCount >= filesHighThreshold:
		fileChurn = "high"
	case fileCount >= filesMediumThreshold:
		fileChurn = "medium"
	}

	return model.ComplexityAnalysis{
		Complexity:      label,
		ComplexityLevel: level,
		TotalChurn:      total,
		FileChurn:       fileChurn,
	}
}

// analyzeDependencies собирает затронутые файлы-манифесты зависимостей.
// Пустой результат сериализуется как [], а не null.
func analyzeDependencies(files []model.ChangedFile) model.DependencyAnalysis {
	touched := []string{}
	for _, f := range files {
		fname := strings.ToLower(f.Filename)
		for _, manifest := range dependencyManifests {
			if strings.Contains(fname, manifest) {
				touched = append(touched, f.Filename)
				break
			}
		}
	}
	return model.DependencyAnalysis{Count: len(touched), Files: touched}
}

// analyzeFileTypes раскладывает изменённые файлы по категориям.
// Выигрывает первое совпадение: тесты проверяются раньше исходников,
// чтобы foo_test.go не засчитался как source.
func analyzeFileTypes(files []model.ChangedFile) model.FileTypeBreakdown {
	var b model.FileTypeBreakdown
	for _, f := range files {
		fname := strings.ToLower(f.Filename)
		switch {
		case isTestFile(fname):
			b.Tests++
		case hasAnySuffix(fname, docExtensions) || strings.Contains(fname, "docs/"):
			b.Docs++
		case hasAnySuffix(fname, configExtensions) || strings.Contains(fname, "dockerfile"):
			b.Config++
		case hasAnySuffix(fname, sourceExtensions):
			b.Source++
		default:
			b.Assets++
		}
	}
	return b
}

func isTestFile(fname string) bool {
	return strings.Contains(fname, "_test.") ||
		strings.Contains(fname, "test_") ||
		strings.Contains(fname, "/tests/") ||
		strings.Contains(fname, ".spec.")
}

func hasAnySuffix(fname string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(fname, suffix) {
			return true
		}
	}
	return false
}

// analyzeCI агрегирует CI-чеки head-коммита: успехи, падения и среднюю
// длительность. Любой сбой шага (включая отсутствие SHA) деградирует
// до нулевых метрик.
func (s *PerformanceService) analyzeCI(ctx context.Context, owner, repo, sha string) model.CIMetrics {
	if sha == "" {
		return model.CIMetrics{}
	}
	checks, err := s.gh.CheckRuns(ctx, owner, repo, sha)
	if err != nil {
		return model.CIMetrics{}
	}

	var m model.CIMetrics
	var totalDuration time.Duration
	var timed int
	for _, run := range checks.CheckRuns {
		switch {
		case run.Conclusion == "success":
			m.Success++
		case isFailedConclusion(run.Conclusion):
			m.Failures++
		}

		started, errS := time.Parse(time.RFC3339, run.StartedAt)
		completed, errC := time.Parse(time.RFC3339, run.CompletedAt)
		if errS == nil && errC == nil && completed.After(started) {
			totalDuration += completed.Sub(started)
			timed++
		}
	}
	if timed > 0 {
		m.AvgDurationSeconds = totalDuration.Seconds() / float64(timed)
	}
	return m
}

// assessRisk комбинирует анализы во взвешенную оценку риска.
func assessRisk(c model.ComplexityAnalysis, d model.DependencyAnalysis, ft model.FileTypeBreakdown, ci model.CIMetrics) model.RiskAssessment {
	score := c.ComplexityLevel*weightComplexity +
		d.Count*weightDependency +
		ci.Failures*weightCIFailure
	if ft.Source > manySourceFiles {
		score += bucketBonus
	}
	if ft.Config > manyConfigFiles {
		score += bucketBonus
	}

	level := "low"
	switch {
	case score >= riskHighThreshold:
		level = "high"
	case score >= riskMediumThreshold:
		level = "medium"
	}
	return model.RiskAssessment{Score: score, Level: level}
}

// renderComment собирает markdown-комментарий с итогами анализа.
func renderComment(r model.PerformanceResult) string {
	var b strings.Builder

	b.WriteString("## PR Performance Impact Analysis\n\n")
	fmt.Fprintf(&b, "**%s/%s#%d** — %s\n\n", r.Owner, r.Repo, r.PR, r.Title)
	fmt.Fprintf(&b, "- **Risk**: %s (score %d)\n", r.Risk.Level, r.Risk.Score)
	fmt.Fprintf(&b, "- **Complexity**: %s (%d lines churned, file churn %s)\n",
		r.Performance.Complexity, r.Performance.TotalChurn, r.Performance.FileChurn)
	fmt.Fprintf(&b, "- **Changed files**: %d source, %d config, %d docs, %d tests, %d assets\n",
		r.FileTypes.Source, r.FileTypes.Config, r.FileTypes.Docs, r.FileTypes.Tests, r.FileTypes.Assets)
	if r.Dependencies.Count > 0 {
		fmt.Fprintf(&b, "- **Dependency manifests touched**: %s\n",
			strings.Join(r.Dependencies.Files, ", "))
	}
	fmt.Fprintf(&b, "- **CI**: %d passed, %d failed, avg run %.1fs\n",
		r.CI.Success, r.CI.Failures, r.CI.AvgDurationSeconds)
	if r.Risk.Level == "high" {
		b.WriteString("\n> High performance impact: consider splitting this PR and benchmarking hot paths before merge.\n")
	}
	return b.String()
}
