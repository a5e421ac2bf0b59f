// Package prompt реализует построчный диалог с оператором.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// DefaultAffirmative ответ-подтверждение, если иной не задан.
const DefaultAffirmative = "y"

const clearScreen = "\033[H\033[2J"

// Console читает ответы оператора из in и пишет в out.
type Console struct {
	in          *bufio.Reader
	out         io.Writer
	affirmative string
	color       bool
	clear       bool
}

// New создает консоль без цвета и очистки экрана.
func New(in io.Reader, out io.Writer, affirmative string) *Console {
	affirmative = strings.TrimSpace(affirmative)
	if affirmative == "" {
		affirmative = DefaultAffirmative
	}
	return &Console{in: bufio.NewReader(in), out: out, affirmative: affirmative}
}

// NewTerminal создает консоль, которая очищает экран и использует цвет,
// если out является терминалом. NO_COLOR отключает цвет.
func NewTerminal(in io.Reader, out io.Writer, affirmative string) *Console {
	c := New(in, out, affirmative)
	if f, ok := out.(*os.File); ok && isTerminal(f) {
		c.clear = true
		c.color = os.Getenv("NO_COLOR") == ""
	}
	return c
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Affirmative возвращает ответ, принимаемый Confirm.
func (c *Console) Affirmative() string { return c.affirmative }

// Clear очищает экран терминала.
func (c *Console) Clear() {
	if c.clear {
		fmt.Fprint(c.out, clearScreen)
	}
}

func (c *Console) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

// Warnf пишет строку желтым.
func (c *Console) Warnf(format string, args ...interface{}) {
	fmt.Fprintln(c.out, c.paint("33", fmt.Sprintf(format, args...)))
}

// Failf пишет строку красным.
func (c *Console) Failf(format string, args ...interface{}) {
	fmt.Fprintln(c.out, c.paint("31", fmt.Sprintf(format, args...)))
}

// Successf пишет строку зеленым.
func (c *Console) Successf(format string, args ...interface{}) {
	fmt.Fprintln(c.out, c.paint("32", fmt.Sprintf(format, args...)))
}

func (c *Console) paint(code, s string) string {
	if !c.color {
		return s
	}
	return "\033[" + code + "m" + s + "\033[0m"
}

// ReadLine печатает приглашение и возвращает строку без перевода строки.
// Последняя строка без перевода возвращается до io.EOF.
func (c *Console) ReadLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Confirm возвращает true только для ответа-подтверждения без учета регистра.
func (c *Console) Confirm(prompt string) bool {
	line, err := c.ReadLine(fmt.Sprintf("%s (%s/N): ", prompt, c.affirmative))
	if err != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), c.affirmative)
}

// Value возвращает ответ без пробелов или def для пустого ответа.
func (c *Console) Value(prompt, def string) string {
	label := prompt
	if def != "" {
		label = fmt.Sprintf("%s (default: %s)", prompt, def)
	}
	line, err := c.ReadLine(label + ": ")
	if err != nil {
		return def
	}
	if v := strings.TrimSpace(line); v != "" {
		return v
	}
	return def
}

// Pause ждет нажатия Enter.
func (c *Console) Pause() {
	_, _ = c.ReadLine("\nPress Enter to continue...")
	fmt.Fprintln(c.out)
}
