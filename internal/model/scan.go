package model

// ChurnSignal — сигнал S1: объём изменений (additions + deletions).
type ChurnSignal struct {
	Additions int `json:"additions"`
	Deletions int `json:"deletions"`
	Points    int `json:"points"`
}

// CountSignal — сигнал со счётчиком (файлы, чувствительные пути, unpinned actions, CI-падения).
type CountSignal struct {
	Count  int `json:"count"`
	Points int `json:"points"`
}

// HitsSignal — сигнал S4: количество найденных секретов в диффе.
type HitsSignal struct {
	Hits   int `json:"hits"`
	Points int `json:"points"`
}

// FlagSignal — сигнал S7: запрошены ли изменения по ревью.
type FlagSignal struct {
	Flag   bool `json:"flag"`
	Points int  `json:"points"`
}

// AssociationSignal — сигнал S8: связь автора с репозиторием.
type AssociationSignal struct {
	Value  string `json:"value"`
	Points int    `json:"points"`
}

// AgeSignal — сигнал S9: возраст PR в днях.
type AgeSignal struct {
	Value  int `json:"value"`
	Points int `json:"points"`
}

// Signals — полная разбивка скоринга по сигналам.
// Сумма points всех сигналов и есть итоговый счёт.
type Signals struct {
	SizeChurn               ChurnSignal       `json:"size_churn"`
	FilesChanged            CountSignal       `json:"files_changed"`
	SensitivePaths          CountSignal       `json:"sensitive_paths"`
	SecretsInDiff           HitsSignal        `json:"secrets_in_diff"`
	GHAUnpinnedActions      CountSignal       `json:"gha_unpinned_actions"`
	CIFailures              CountSignal       `json:"ci_failures"`
	ReviewsChangesRequested FlagSignal        `json:"reviews_changes_requested"`
	AuthorAssociation       AssociationSignal `json:"author_association"`
	AgeDays                 AgeSignal         `json:"age_days"`
}

// ScanResult — итог сканирования PR: метаданные, счёт, оценка и сигналы.
type ScanResult struct {
	Owner   string  `json:"owner"`
	Repo    string  `json:"repo"`
	PR      int     `json:"pr"`
	Title   string  `json:"title"`
	State   string  `json:"state"`
	Base    string  `json:"base"`
	Draft   bool    `json:"draft"`
	Score   int     `json:"score"`
	Grade   string  `json:"grade"`
	Signals Signals `json:"signals"`
}
