// Package model содержит транзитные структуры ответов GitHub API и результатов анализа PR
package model

// PullRequestDetail описывает детали pull request'а, которые сервис читает
// из ответа GET /repos/{owner}/{repo}/pulls/{number}.
// Отсутствующие в ответе поля остаются нулевыми значениями Go.
type PullRequestDetail struct {
	Title             string `json:"title"`
	State             string `json:"state"`
	Draft             bool   `json:"draft"`
	CreatedAt         string `json:"created_at"`
	AuthorAssociation string `json:"author_association"`
	ChangedFiles      int    `json:"changed_files"`
	Additions         int    `json:"additions"`
	Deletions         int    `json:"deletions"`
	Head              Ref    `json:"head"`
	Base              Ref    `json:"base"`
}

// Ref описывает сторону pull request'а (head или base).
type Ref struct {
	SHA string `json:"sha"`
	Ref string `json:"ref"`
}

// ChangedFile описывает один изменённый файл из списка файлов PR.
// Patch может отсутствовать (бинарные или слишком большие файлы).
type ChangedFile struct {
	Filename  string `json:"filename"`
	Patch     string `json:"patch"`
	Status    string `json:"status"`
	Additions int    `json:"additions"`
	Deletions int    `json:"deletions"`
}

// Review описывает одно ревью PR; сервису важно только состояние.
type Review struct {
	State string `json:"state"`
}

// CheckRun описывает один CI-чек на коммите.
type CheckRun struct {
	Name        string `json:"name"`
	Status      string `json:"status"`
	Conclusion  string `json:"conclusion"`
	StartedAt   string `json:"started_at"`
	CompletedAt string `json:"completed_at"`
}

// CheckRunList описывает ответ GET /repos/{owner}/{repo}/commits/{sha}/check-runs.
type CheckRunList struct {
	TotalCount int        `json:"total_count"`
	CheckRuns  []CheckRun `json:"check_runs"`
}
