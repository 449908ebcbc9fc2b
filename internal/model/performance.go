package model

// ComplexityAnalysis описывает оценку сложности изменений.
type ComplexityAnalysis struct {
	Complexity      string `json:"complexity"`
	ComplexityLevel int    `json:"complexity_level"`
	TotalChurn      int    `json:"total_churn"`
	FileChurn       string `json:"file_churn"`
}

// DependencyAnalysis описывает затронутые файлы-манифесты зависимостей.
type DependencyAnalysis struct {
	Count int      `json:"count"`
	Files []string `json:"files"`
}

// FileTypeBreakdown — распределение изменённых файлов по категориям.
type FileTypeBreakdown struct {
	Source int `json:"source"`
	Config int `json:"config"`
	Docs   int `json:"docs"`
	Tests  int `json:"tests"`
	Assets int `json:"assets"`
}

// CIMetrics — агрегированные метрики CI-чеков на head-коммите.
// При недоступности чеков все поля остаются нулевыми.
type CIMetrics struct {
	Success            int     `json:"success"`
	Failures           int     `json:"failures"`
	AvgDurationSeconds float64 `json:"avg_duration_seconds"`
}

// RiskAssessment — взвешенная оценка риска производительности.
type RiskAssessment struct {
	Score int    `json:"score"`
	Level string `json:"level"`
}

// PerformanceResult — итог анализа влияния PR: четыре независимых
// анализа, комбинированный риск и markdown-комментарий.
type PerformanceResult struct {
	Owner        string             `json:"owner"`
	Repo         string             `json:"repo"`
	PR           int                `json:"pr"`
	Title        string             `json:"title"`
	Performance  ComplexityAnalysis `json:"performance"`
	Dependencies DependencyAnalysis `json:"dependencies"`
	FileTypes    FileTypeBreakdown  `json:"file_types"`
	CI           CIMetrics          `json:"ci"`
	Risk         RiskAssessment     `json:"risk"`
	Comment      string             `json:"comment"`
}
