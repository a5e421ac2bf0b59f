// Package privilege определяет, запущен ли процесс с правами администратора.
package privilege

import "log/slog"

// Checker оборачивает платформенный запрос; неизвестный результат считается отсутствием прав.
type Checker struct {
	query  func() (bool, error)
	logger *slog.Logger
}

// New создает проверку на основе платформенного запроса.
func New(logger *slog.Logger) *Checker {
	return &Checker{query: platformElevated, logger: logger}
}

// IsElevated возвращает false при ошибке запроса или панике.
func (c *Checker) IsElevated() (elevated bool) {
	defer func() {
		if rec := recover(); rec != nil {
			c.log("elevation query panicked", "panic", rec)
			elevated = false
		}
	}()
	ok, err := c.query()
	if err != nil {
		c.log("elevation query failed", "err", err)
		return false
	}
	return ok
}

func (c *Checker) log(msg string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}
