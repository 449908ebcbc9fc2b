// Package service содержит бизнес-логику оценки риска pull request'ов:
// скоринговый движок, сканер секретов и анализ влияния на производительность.
package service

import (
	"context"
	"strings"

	"pr-risk-radar/internal/model"
)

// GitHubAPI описывает контракт слоя доступа к GitHub API (чтобы можно было мокать).
type GitHubAPI interface {
	PullRequest(ctx context.Context, owner, repo string, number int) (model.PullRequestDetail, error)
	ChangedFiles(ctx context.Context, owner, repo string, number int) ([]model.ChangedFile, error)
	Reviews(ctx context.Context, owner, repo string, number int) ([]model.Review, error)
	CheckRuns(ctx context.Context, owner, repo, sha string) (model.CheckRunList, error)
}

// ScanService инкапсулирует бизнес-логику сканирования PR:
// последовательная выборка данных, извлечение сигналов и скоринг.
type ScanService struct {
	gh GitHubAPI
}

// NewScanService создаёт новый сервис сканирования PR.
func NewScanService(gh GitHubAPI) *ScanService {
	return &ScanService{gh: gh}
}

// ScanPR выполняет полный цикл: детали PR -> файлы -> ревью -> CI-чеки,
// собирает сигналы и возвращает счёт с оценкой. Цепочка строго
// последовательная, первый сбой апстрима прерывает запрос целиком.
func (s *ScanService) ScanPR(ctx context.Context, owner, repo string, number int) (model.ScanResult, error) {
	// 1. Детали PR
	pr, err := s.gh.PullRequest(ctx, owner, repo, number)
	if err != nil {
		return model.ScanResult{}, ErrUpstream(err)
	}

	// 2. Изменённые файлы (первая страница)
	files, err := s.gh.ChangedFiles(ctx, owner, repo, number)
	if err != nil {
		return model.ScanResult{}, ErrUpstream(err)
	}

	st := scanStats{
		additions:    pr.Additions,
		deletions:    pr.Deletions,
		changedFiles: pr.ChangedFiles,
		association:  pr.AuthorAssociation,
		ageDays:      calcAgeDays(pr.CreatedAt),
	}

	for _, f := range files {
		if touchedSensitivePath(f.Filename) {
			st.sensitiveTouches++
		}
		st.secretHits += findSecretsInPatch(f.Patch)
		if strings.HasPrefix(f.Filename, ".github/workflows/") {
			st.ghaUnpinned += countUnpinnedActions(f.Patch)
		}
	}

	// 3. Ревью
	reviews, err := s.gh.Reviews(ctx, owner, repo, number)
	if err != nil {
		return model.ScanResult{}, ErrUpstream(err)
	}
	for _, r := range reviews {
		if r.State == "CHANGES_REQUESTED" {
			st.changesRequested = true
			break
		}
	}

	// 4. CI-чеки на head-коммите (только если SHA известен)
	if pr.Head.SHA != "" {
		checks, err := s.gh.CheckRuns(ctx, owner, repo, pr.Head.SHA)
		if err != nil {
			return model.ScanResult{}, ErrUpstream(err)
		}
		for _, run := range checks.CheckRuns {
			if isFailedConclusion(run.Conclusion) {
				st.ciFailures++
			}
		}
	}

	signals := buildSignals(st)
	total, letter := computeScore(signals)

	return model.ScanResult{
		Owner:   owner,
		Repo:    repo,
		PR:      number,
		Title:   pr.Title,
		State:   pr.State,
		Base:    pr.Base.Ref,
		Draft:   pr.Draft,
		Score:   total,
		Grade:   letter,
		Signals: signals,
	}, nil
}

// countUnpinnedActions считает незапиненные 'uses:' в добавленных строках
// патча workflow-файла.
func countUnpinnedActions(patch string) int {
	count := 0
	for _, line := range strings.Split(patch, "\n") {
		if !strings.HasPrefix(line, "+") || strings.HasPrefix(line, "+++") {
			continue
		}
		if strings.Contains(line, "uses:") && actionUnpinned(line) {
			count++
		}
	}
	return count
}
