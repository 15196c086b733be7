// Package fileops implements the browser's mutating file operations:
// create, rename, delete, copy/paste, and move. Every operation is a direct,
// synchronous call against the OS filesystem; failures come back as errors
// for the UI layer to surface verbatim and are never fatal to the session.
package fileops

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"

	"filey/internal/errors"
	"filey/internal/log"
)

// CreateFolder creates a folder called name inside dir.
func CreateFolder(dir, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("folder name is empty")
	}
	path := filepath.Join(dir, name)
	if err := os.Mkdir(path, 0755); err != nil {
		return errors.Wrapf(err, "could not create folder %s", name)
	}
	log.Debugf("created folder %s", path)
	return nil
}

// CreateFile creates an empty file called name inside dir. An existing file
// of the same name is an error, never overwritten.
func CreateFile(dir, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("file name is empty")
	}
	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); err == nil {
		return errors.NewFileError("file already exists", path, errors.FileExists, nil)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return errors.Wrapf(err, "could not create file %s", name)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "could not create file %s", name)
	}
	log.Debugf("created file %s", path)
	return nil
}

// Delete removes path: remove-tree for folders, plain remove for files.
// Callers are responsible for confirming with the user first.
func Delete(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "could not delete %s", filepath.Base(path))
	}
	if info.IsDir() {
		err = os.RemoveAll(path)
	} else {
		err = os.Remove(path)
	}
	if err != nil {
		return errors.Wrapf(err, "could not delete %s", filepath.Base(path))
	}
	log.Debugf("deleted %s", path)
	return nil
}

// Rename renames path to newName within its containing directory and
// returns the new path. An existing destination is an error.
func Rename(path, newName string) (string, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return "", errors.New("new name is empty")
	}
	newPath := filepath.Join(filepath.Dir(path), newName)
	if newPath == path {
		return path, nil
	}
	if _, err := os.Stat(newPath); err == nil {
		return "", errors.NewFileError("name already exists", newPath, errors.FileExists, nil)
	}
	if err := os.Rename(path, newPath); err != nil {
		return "", errors.Wrapf(err, "could not rename %s", filepath.Base(path))
	}
	log.Debugf("renamed %s -> %s", path, newPath)
	return newPath, nil
}

// UniquePath resolves a paste collision: when path exists, an incrementing
// " - Copy<N>" suffix is inserted before the extension until an unused name
// is found.
func UniquePath(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s - Copy%d%s", base, i, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}

// Paste copies src (file or tree) into destDir, applying the collision
// policy, and returns the destination path.
func Paste(src, destDir string) (string, error) {
	info, err := os.Stat(src)
	if err != nil {
		return "", errors.NewFileError("nothing to paste or source no longer exists", src, errors.FileNotFound, err)
	}

	dest := UniquePath(filepath.Join(destDir, filepath.Base(src)))
	if info.IsDir() {
		err = copyTree(src, dest)
	} else {
		err = copyFile(src, dest, info.Mode())
	}
	if err != nil {
		return "", errors.Wrapf(err, "could not paste %s", filepath.Base(src))
	}
	log.Debugf("pasted %s -> %s", src, dest)
	return dest, nil
}

// Move moves src into destDir. Dropping an entry onto its own containing
// folder resolves to the identical absolute path and is skipped as a no-op;
// the boolean result reports whether a move actually happened. No other
// collision avoidance is attempted.
func Move(src, destDir string) (bool, error) {
	dest := filepath.Join(destDir, filepath.Base(src))

	absSrc, err := filepath.Abs(src)
	if err != nil {
		return false, errors.Wrapf(err, "could not move %s", filepath.Base(src))
	}
	absDest, err := filepath.Abs(dest)
	if err != nil {
		return false, errors.Wrapf(err, "could not move %s", filepath.Base(src))
	}
	if absSrc == absDest {
		log.Debugf("move skipped, source equals destination: %s", absSrc)
		return false, nil
	}

	if err := rename(absSrc, absDest); err != nil {
		return false, errors.Wrapf(err, "could not move %s", filepath.Base(src))
	}
	log.Debugf("moved %s -> %s", absSrc, absDest)
	return true, nil
}

// rename falls back to copy+delete when src and dest live on different
// filesystems.
func rename(src, dest string) error {
	err := os.Rename(src, dest)
	if err == nil {
		return nil
	}
	if !crossDevice(err) {
		return err
	}

	info, statErr := os.Stat(src)
	if statErr != nil {
		return statErr
	}
	if info.IsDir() {
		if copyErr := copyTree(src, dest); copyErr != nil {
			return copyErr
		}
		return os.RemoveAll(src)
	}
	if copyErr := copyFile(src, dest, info.Mode()); copyErr != nil {
		return copyErr
	}
	return os.Remove(src)
}

// crossDevice reports whether a rename failed because src and dest live on
// different filesystems. os.Rename wraps the errno in a *os.LinkError, which
// errors.Is unwraps.
func crossDevice(err error) bool {
	return errors.Is(err, syscall.EXDEV)
}

func copyFile(src, dest string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func copyTree(src, dest string) error {
	return filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dest, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		return copyFile(path, target, info.Mode())
	})
}

// OpenExternal hands path to the host OS default-application-open mechanism.
// The spawned process is not observed.
func OpenExternal(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, "could not open %s", filepath.Base(path))
	}
	go func() {
		// Reap the child; its exit status is deliberately ignored.
		_ = cmd.Wait()
	}()
	return nil
}
