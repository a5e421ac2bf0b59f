package core

import (
	"context"
	"errors"
)

// ErrExit возвращается действием, завершающим цикл меню.
var ErrExit = errors.New("exit requested")

// Action описывает обработчик пункта меню.
type Action func(ctx context.Context) error

// Entry описывает зарегистрированный пункт меню.
type Entry struct {
	Key    string
	Label  string
	Action Action
}

// Console определяет ввод-вывод, нужный циклу меню.
type Console interface {
	Clear()
	Printf(format string, args ...interface{})
	ReadLine(prompt string) (string, error)
	Pause()
}

type entryKey struct{}

// WithEntry сохраняет выбранный пункт в контексте действия.
func WithEntry(ctx context.Context, e Entry) context.Context {
	return context.WithValue(ctx, entryKey{}, e)
}

// EntryFromContext возвращает пункт, из которого вызвано действие.
func EntryFromContext(ctx context.Context) (Entry, bool) {
	e, ok := ctx.Value(entryKey{}).(Entry)
	return e, ok
}
