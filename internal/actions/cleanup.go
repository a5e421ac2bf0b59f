package actions

import (
	"context"
	"path/filepath"

	"github.com/spf13/afero"
)

const defaultWindowsDir = `C:\Windows`

func cleanTempAndDNS(ctx context.Context, d Deps) error {
	dirs := tempDirs(d.Getenv)
	d.IO.Printf("Temporary folders to clean:\n")
	for _, dir := range dirs {
		d.IO.Printf(" - %s\n", dir)
	}
	if d.IO.Confirm("Continue and try to remove the files in these folders?") {
		for _, dir := range dirs {
			removed, skipped := cleanDir(d, dir)
			d.Logger.Info("temp cleanup", "dir", dir, "removed", removed, "skipped", skipped)
		}
	}

	if d.IO.Confirm("Flush the DNS cache (ipconfig /flushdns)?") {
		runCommand(ctx, d, "ipconfig /flushdns", false)
	}
	return nil
}

// tempDirs возвращает временную папку пользователя (TEMP, иначе TMP) и папку Temp Windows.
func tempDirs(getenv func(string) string) []string {
	var dirs []string
	if t := getenv("TEMP"); t != "" {
		dirs = append(dirs, t)
	} else if t := getenv("TMP"); t != "" {
		dirs = append(dirs, t)
	}
	win := getenv("WINDIR")
	if win == "" {
		win = defaultWindowsDir
	}
	return append(dirs, filepath.Join(win, "Temp"))
}

// cleanDir удаляет все элементы dir. Занятый элемент пропускается с сообщением,
// остальные удаляются.
func cleanDir(d Deps, dir string) (removed, skipped int) {
	exists, err := afero.DirExists(d.FS, dir)
	if err != nil {
		d.IO.Failf("Error cleaning %s: %v", dir, err)
		return 0, 0
	}
	if !exists {
		d.IO.Printf("Folder not found: %s\n", dir)
		return 0, 0
	}
	entries, err := afero.ReadDir(d.FS, dir)
	if err != nil {
		d.IO.Failf("Error cleaning %s: %v", dir, err)
		return 0, 0
	}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if err := d.FS.RemoveAll(path); err != nil {
			d.IO.Warnf("Could not remove %s: %v", path, err)
			skipped++
			continue
		}
		removed++
	}
	d.IO.Printf("Cleanup finished in %s (%d removed, %d skipped)\n", dir, removed, skipped)
	return removed, skipped
}
