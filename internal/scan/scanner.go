// Package scan enumerates directory contents for the browser list. Listing
// runs off the interactive path through a Loader that tags every scan with a
// sequence number, so a stale scan can never repaint the list.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"filey/internal/log"
)

// Entry is one filesystem object as presented in the list. Entries are built
// fresh on every scan and never mutated.
type Entry struct {
	Name     string
	Path     string
	IsFolder bool
	SizeText string
}

// Display returns the list row text: the name, with the size tag appended
// for files whose size could be read.
func (e Entry) Display() string {
	if e.SizeText != "" {
		return fmt.Sprintf("%s (%s)", e.Name, e.SizeText)
	}
	return e.Name
}

// List returns the entries of dir: folders sorted case-insensitively before
// files, each group sorted case-insensitively by name. A file whose size
// cannot be read keeps an empty SizeText. A directory that cannot be listed
// yields an empty slice; the caller sees "zero entries" either way, which is
// intentional (the original behaves the same).
func List(dir string) []Entry {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		log.Debugf("could not list %s: %v", dir, err)
		return []Entry{}
	}

	var folders, files []Entry
	for _, de := range dirEntries {
		full := filepath.Join(dir, de.Name())
		if de.IsDir() {
			folders = append(folders, Entry{
				Name:     de.Name(),
				Path:     full,
				IsFolder: true,
			})
			continue
		}

		sizeText := ""
		if info, err := de.Info(); err == nil {
			sizeText = HumanSize(info.Size())
		}
		files = append(files, Entry{
			Name:     de.Name(),
			Path:     full,
			SizeText: sizeText,
		})
	}

	caseInsensitive := func(entries []Entry) func(i, j int) bool {
		return func(i, j int) bool {
			a, b := strings.ToLower(entries[i].Name), strings.ToLower(entries[j].Name)
			if a == b {
				return entries[i].Name < entries[j].Name
			}
			return a < b
		}
	}
	sort.Slice(folders, caseInsensitive(folders))
	sort.Slice(files, caseInsensitive(files))

	return append(folders, files...)
}

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB", "ZB"}

// HumanSize formats a byte count with 1024-based units.
func HumanSize(n int64) string {
	num := float64(n)
	for _, unit := range sizeUnits {
		if num < 1024.0 && num > -1024.0 {
			return fmt.Sprintf("%3.1f %s", num, unit)
		}
		num /= 1024.0
	}
	return fmt.Sprintf("%.1f YB", num)
}

// Preview returns up to limit non-hidden child names of dir, for the folder
// hover preview. The second result reports whether more children exist.
func Preview(dir string, limit int) ([]string, bool) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, false
	}

	var names []string
	more := false
	for _, de := range dirEntries {
		if strings.HasPrefix(de.Name(), ".") {
			continue
		}
		if len(names) == limit {
			more = true
			break
		}
		names = append(names, de.Name())
	}
	return names, more
}
