package core

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

var (
	errEntryExists      = errors.New("entry already registered")
	errRegistrySealed   = errors.New("registry is sealed")
	errInvalidArguments = errors.New("invalid arguments")
)

// Registry хранит пункты меню; после Seal не изменяется.
type Registry struct {
	entries map[string]Entry
	order   []string
	sealed  bool
}

// NewRegistry создает пустой реестр пунктов.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register добавляет пункт; ключ должен быть уникальным.
func (r *Registry) Register(key, label string, action Action) error {
	if r.sealed {
		return fmt.Errorf("%s: %w", key, errRegistrySealed)
	}
	if key == "" || label == "" {
		return fmt.Errorf("empty key or label: %w", errInvalidArguments)
	}
	if action == nil {
		return fmt.Errorf("%s: action is nil: %w", key, errInvalidArguments)
	}
	if _, exists := r.entries[key]; exists {
		return fmt.Errorf("%s: %w", key, errEntryExists)
	}
	r.entries[key] = Entry{Key: key, Label: label, Action: action}
	r.order = append(r.order, key)
	sort.SliceStable(r.order, func(i, j int) bool {
		return lessKey(r.order[i], r.order[j])
	})
	return nil
}

// Seal запрещает дальнейшую регистрацию.
func (r *Registry) Seal() {
	r.sealed = true
}

// Lookup ищет пункт по ключу.
func (r *Registry) Lookup(key string) (Entry, bool) {
	e, ok := r.entries[key]
	return e, ok
}

// Entries возвращает пункты в порядке отображения.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.entries[key])
	}
	return out
}

// Len возвращает число пунктов.
func (r *Registry) Len() int {
	return len(r.order)
}

// Сначала числовые ключи по возрастанию, затем остальные лексически.
func lessKey(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}
