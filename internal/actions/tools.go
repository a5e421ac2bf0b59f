package actions

import (
	"context"
	"strings"

	"itsupport/internal/core"
)

var systemTools = []struct {
	label   string
	command string
}{
	{"Device Manager", "devmgmt.msc"},
	{"Event Viewer", "eventvwr.msc"},
	{"Computer Management", "compmgmt.msc"},
	{"Control Panel (Programs)", "appwiz.cpl"},
	{"System Properties", "sysdm.cpl"},
	{"Command Prompt", "cmd"},
	{"PowerShell", "powershell"},
}

// toolsMenu вложенное меню пункта "Open System Tools".
type toolsMenu struct {
	registry *core.Registry
}

func newToolsMenu(d Deps) (*toolsMenu, error) {
	r := core.NewRegistry()
	for i, tool := range systemTools {
		command := tool.command
		key := string(rune('1' + i))
		if err := r.Register(key, tool.label, func(ctx context.Context) error {
			runCommand(ctx, d, command, false)
			return nil
		}); err != nil {
			return nil, err
		}
	}
	r.Seal()
	return &toolsMenu{registry: r}, nil
}

func (m *toolsMenu) open(ctx context.Context, d Deps) error {
	d.IO.Printf("Available tools:\n")
	for _, e := range m.registry.Entries() {
		d.IO.Printf("%s. %s\n", e.Key, e.Label)
	}
	choice, err := d.IO.ReadLine("Choose (number) or press Enter to go back: ")
	if err != nil {
		return nil
	}
	if e, ok := m.registry.Lookup(strings.TrimSpace(choice)); ok {
		return e.Action(ctx)
	}
	return nil
}
