package fileops

import "os"

// Clipboard is the copy/paste slot. It holds at most one source path,
// overwritten by each new copy; it is never cleared explicitly, only
// observed to be stale when the source no longer exists at paste time.
type Clipboard struct {
	path string
}

// Set records path as the copy source.
func (c *Clipboard) Set(path string) {
	c.path = path
}

// Path returns the held source path, or "".
func (c *Clipboard) Path() string {
	return c.path
}

// Usable reports whether a paste could proceed: something was copied and
// the source still exists.
func (c *Clipboard) Usable() bool {
	if c.path == "" {
		return false
	}
	_, err := os.Stat(c.path)
	return err == nil
}
