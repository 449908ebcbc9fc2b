package service

import (
	"regexp"
	"strings"
)

// secretPatterns — фиксированный набор шаблонов строк, похожих на
// учётные данные. Порядок важен: на строку засчитывается не более
// одного совпадения, выигрывает первый шаблон.
var secretPatterns = []*regexp.Regexp{
	// AWS Access Key ID (AKIA...)
	regexp.MustCompile(`AKIA[0-9A-Z]{16}`),
	// Заголовок приватного ключа
	regexp.MustCompile(`-----BEGIN (?:RSA|DSA|EC|OPENSSH) PRIVATE KEY-----`),
	// Slack-токены (легаси-форматы)
	regexp.MustCompile(`xox[baprs]-[0-9A-Za-z-]{10,48}`),
	// Google API key
	regexp.MustCompile(`AIza[0-9A-Za-z\-_]{35}`),
}

// findSecretsInPatch сканирует unified-diff патч и считает строки с
// секретами. Проверяются только добавленные строки (префикс '+',
// кроме заголовка '+++'); пустой патч даёт 0.
func findSecretsInPatch(patch string) int {
	if patch == "" {
		return 0
	}
	hits := 0
	for _, line := range strings.Split(patch, "\n") {
		if !strings.HasPrefix(line, "+") || strings.HasPrefix(line, "+++") {
			continue
		}
		for _, pat := range secretPatterns {
			if pat.MatchString(line) {
				hits++
				break
			}
		}
	}
	return hits
}
