package core

import (
	"fmt"
	"strings"
)

// AdminPolicy описывает реакцию на запуск без прав администратора.
type AdminPolicy string

const (
	// PolicyNone не проверяет права.
	PolicyNone AdminPolicy = "none"
	// PolicyInform предупреждает и спрашивает подтверждение.
	PolicyInform AdminPolicy = "inform"
	// PolicyBlock отказывает без прав администратора.
	PolicyBlock AdminPolicy = "block"
)

// ParsePolicy разбирает значение политики из конфига.
func ParsePolicy(v string) (AdminPolicy, error) {
	switch p := AdminPolicy(strings.ToLower(strings.TrimSpace(v))); p {
	case PolicyNone, PolicyInform, PolicyBlock:
		return p, nil
	case "":
		return PolicyNone, nil
	default:
		return "", fmt.Errorf("admin policy %q: %w", v, errInvalidArguments)
	}
}

// ElevationChecker сообщает, запущен ли процесс с повышенными правами.
type ElevationChecker interface {
	IsElevated() bool
}

// Confirmer нужен Gate для общения с оператором.
type Confirmer interface {
	Printf(format string, args ...interface{})
	Confirm(prompt string) bool
	Pause()
}

// Gate применяет политику прав к пунктам меню.
type Gate struct {
	checker  ElevationChecker
	policies map[string]AdminPolicy
}

// NewGate создает Gate: defaults по ключам, поверх них overrides из конфига.
func NewGate(checker ElevationChecker, defaults map[string]AdminPolicy, overrides map[string]string) (*Gate, error) {
	if checker == nil {
		return nil, fmt.Errorf("elevation checker is nil: %w", errInvalidArguments)
	}
	policies := make(map[string]AdminPolicy, len(defaults)+len(overrides))
	for key, p := range defaults {
		policies[key] = p
	}
	for key, raw := range overrides {
		p, err := ParsePolicy(raw)
		if err != nil {
			return nil, fmt.Errorf("action %s: %w", key, err)
		}
		policies[key] = p
	}
	return &Gate{checker: checker, policies: policies}, nil
}

// Policy возвращает политику пункта; по умолчанию PolicyNone.
func (g *Gate) Policy(key string) AdminPolicy {
	if p, ok := g.policies[key]; ok {
		return p
	}
	return PolicyNone
}

// Allow решает, можно ли продолжать действие key с именем name.
func (g *Gate) Allow(key, name string, c Confirmer) bool {
	policy := g.Policy(key)
	if policy == PolicyNone || g.checker.IsElevated() {
		return true
	}
	switch policy {
	case PolicyBlock:
		c.Printf("%s requires administrator privileges. Run this tool as Administrator.\n", name)
		c.Pause()
		return false
	default:
		c.Printf("%s may require administrator privileges.\n", name)
		return c.Confirm("Continue without administrator privileges?")
	}
}
