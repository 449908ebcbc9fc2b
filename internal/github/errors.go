package github

import "fmt"

// GatewayError возвращается, когда GitHub API ответил неожиданным статусом.
// Содержит статус апстрима и усечённое тело ответа.
type GatewayError struct {
	StatusCode int
	Body       string
}

// Error реализует интерфейс error для GatewayError.
func (e *GatewayError) Error() string {
	return fmt.Sprintf("GitHub API %d: %s", e.StatusCode, e.Body)
}
