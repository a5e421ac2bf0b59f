package actions

import (
	"context"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

const enumDriversCommand = "pnputil /enum-drivers"

var consoleEncodings = map[string]encoding.Encoding{
	"cp437":        charmap.CodePage437,
	"cp850":        charmap.CodePage850,
	"cp852":        charmap.CodePage852,
	"cp866":        charmap.CodePage866,
	"windows-1251": charmap.Windows1251,
	"windows-1252": charmap.Windows1252,
}

func backupDrivers(ctx context.Context, d Deps) error {
	d.IO.Printf("Exporting the list of installed driver packages (pnputil).\n")
	path := d.Settings.DriversFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(d.WorkDir, path)
	}

	res, err := d.Exec.Capture(ctx, enumDriversCommand)
	if err != nil {
		d.Logger.Warn("driver export failed", "err", err)
		d.IO.Failf("Error exporting list: %v", err)
		d.IO.Pause()
		return nil
	}
	text := decodeOutput(res.Output, d.Settings.DriversEncoding)
	if err := afero.WriteFile(d.FS, path, []byte(text), 0o644); err != nil {
		d.IO.Failf("Error exporting list: %v", err)
		d.IO.Pause()
		return nil
	}
	if res.ExitCode != 0 {
		d.IO.Warnf("pnputil exited with code %d; the list may be incomplete.", res.ExitCode)
	}
	d.IO.Successf("List saved to: %s", path)
	d.IO.Pause()
	return nil
}

// decodeOutput возвращает текст в UTF-8. Иной вывод декодируется кодовой
// страницей консоли, нераспознанные байты отбрасываются.
func decodeOutput(out []byte, codePage string) string {
	if utf8.Valid(out) {
		return string(out)
	}
	if enc, ok := consoleEncodings[strings.ToLower(codePage)]; ok {
		if decoded, err := enc.NewDecoder().Bytes(out); err == nil {
			return string(decoded)
		}
	}
	return strings.ToValidUTF8(string(out), "")
}
