package service

import (
	"math"
	"strings"
	"time"

	"pr-risk-radar/internal/model"
)

// Пороговые значения оценок (буквенных грейдов).
const (
	gradeA = 90
	gradeB = 80
	gradeC = 70
	gradeD = 60
)

// sensitivePathHints — подстроки путей, затрагивание которых считается
// чувствительным (CI-конфиги, инфраструктура, манифесты зависимостей).
var sensitivePathHints = []string{
	".github/workflows/",
	"dockerfile",
	"docker-compose.yml",
	"k8s/", "helm/",
	".tf", "terraform", "cloudformation",
	"ansible/",
	"package.json", "yarn.lock", "pnpm-lock.yaml",
	"poetry.lock", "requirements.txt",
	"build.gradle", "pom.xml", "gemfile.lock",
}

// failedConclusions — вердикты CI-чеков, считающиеся падением.
var failedConclusions = map[string]bool{
	"failure":         true,
	"timed_out":       true,
	"action_required": true,
	"cancelled":       true,
}

// associationRisk — фактор риска по связи автора с репозиторием.
// Чем выше фактор, тем меньше доверия к автору.
var associationRisk = map[string]float64{
	"FIRST_TIME_CONTRIBUTOR": 1.0,
	"CONTRIBUTOR":            0.7,
	"NONE":                   1.0,
	"COLLABORATOR":           0.5,
	"MEMBER":                 0.3,
	"OWNER":                  0.2,
}

// defaultAssociationRisk применяется к неизвестным значениям author_association.
const defaultAssociationRisk = 0.8

// clamp ограничивает x диапазоном [lo, hi].
func clamp(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// grade переводит числовой счёт 0-100 в буквенную оценку.
func grade(score int) string {
	switch {
	case score >= gradeA:
		return "A"
	case score >= gradeB:
		return "B"
	case score >= gradeC:
		return "C"
	case score >= gradeD:
		return "D"
	default:
		return "F"
	}
}

// calcAgeDays возвращает полное число дней с момента created_at (RFC3339).
// Некорректная метка времени деградирует до 0, а не валит запрос.
func calcAgeDays(createdAt string) int {
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return 0
	}
	days := int(time.Since(t).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// touchedSensitivePath проверяет, затрагивает ли файл чувствительный путь.
func touchedSensitivePath(filename string) bool {
	fname := strings.ToLower(filename)
	for _, hint := range sensitivePathHints {
		if strings.Contains(fname, hint) {
			return true
		}
	}
	return false
}

// actionUnpinned определяет, ссылается ли строка workflow-диффа на
// незапиненный action: 'uses: owner/repo@v3' — мутабельный тег,
// запиненным считается только 40-символьный hex (SHA коммита).
func actionUnpinned(line string) bool {
	if !strings.Contains(line, "uses:") {
		return false
	}
	idx := strings.Index(line, "@")
	if idx < 0 {
		return true
	}
	after := strings.ToLower(strings.TrimSpace(line[idx+1:]))
	if len(after) < 40 {
		return true
	}
	for _, c := range after[:40] {
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
			return true
		}
	}
	return false
}

// isFailedConclusion проверяет, считается ли вердикт CI-чека падением.
func isFailedConclusion(conclusion string) bool {
	return failedConclusions[conclusion]
}

// associationPoints вычисляет очки сигнала S8 по author_association.
// Округление к ближайшему: OWNER даёт полные 3 очка.
func associationPoints(association string) int {
	risk, ok := associationRisk[association]
	if !ok {
		risk = defaultAssociationRisk
	}
	deduction := risk * 2
	if deduction > 3 {
		deduction = 3
	}
	return int(math.Round(3 - deduction))
}

// scanStats — сырые наблюдения по PR, из которых собираются сигналы.
type scanStats struct {
	additions        int
	deletions        int
	changedFiles     int
	sensitiveTouches int
	secretHits       int
	ghaUnpinned      int
	ciFailures       int
	changesRequested bool
	association      string
	ageDays          int
}

// buildSignals превращает сырые наблюдения в набор сигналов с очками.
// Каждый сигнал — вычет из фиксированного максимума категории,
// максимумы 20/10/20/20/10/10/5/3/2 дают в сумме 100.
func buildSignals(st scanStats) model.Signals {
	return model.Signals{
		SizeChurn: model.ChurnSignal{
			Additions: st.additions,
			Deletions: st.deletions,
			Points:    20 - clamp((st.additions+st.deletions)/200, 0, 20),
		},
		FilesChanged: model.CountSignal{
			Count:  st.changedFiles,
			Points: 10 - clamp(st.changedFiles/5, 0, 10),
		},
		SensitivePaths: model.CountSignal{
			Count:  st.sensitiveTouches,
			Points: 20 - clamp(st.sensitiveTouches*4, 0, 20),
		},
		SecretsInDiff: model.HitsSignal{
			Hits:   st.secretHits,
			Points: 20 - clamp(st.secretHits*5, 0, 20),
		},
		GHAUnpinnedActions: model.CountSignal{
			Count:  st.ghaUnpinned,
			Points: 10 - clamp(st.ghaUnpinned*3, 0, 10),
		},
		CIFailures: model.CountSignal{
			Count:  st.ciFailures,
			Points: 10 - clamp(st.ciFailures*5, 0, 10),
		},
		ReviewsChangesRequested: model.FlagSignal{
			Flag:   st.changesRequested,
			Points: reviewPoints(st.changesRequested),
		},
		AuthorAssociation: model.AssociationSignal{
			Value:  st.association,
			Points: associationPoints(st.association),
		},
		AgeDays: model.AgeSignal{
			Value:  st.ageDays,
			Points: agePoints(st.ageDays),
		},
	}
}

// reviewPoints — сигнал S7: запрошенные изменения обнуляют категорию.
func reviewPoints(changesRequested bool) int {
	if changesRequested {
		return 0
	}
	return 5
}

// agePoints — сигнал S9: PR старше 14 дней теряет одно очко.
func agePoints(ageDays int) int {
	if ageDays >= 14 {
		return 1
	}
	return 2
}

// computeScore суммирует очки всех сигналов и возвращает счёт с оценкой.
func computeScore(s model.Signals) (int, string) {
	total := s.SizeChurn.Points +
		s.FilesChanged.Points +
		s.SensitivePaths.Points +
		s.SecretsInDiff.Points +
		s.GHAUnpinnedActions.Points +
		s.CIFailures.Points +
		s.ReviewsChangesRequested.Points +
		s.AuthorAssociation.Points +
		s.AgeDays.Points
	return total, grade(total)
}
