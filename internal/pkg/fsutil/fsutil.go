package fsutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// EnsureParentDirs creates every missing ancestor directory of path.
// Already-existing directories are not an error.
func EnsureParentDirs(path string) error {
	parent := filepath.Dir(path)
	if parent == "" || parent == "." {
		return nil
	}
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return fmt.Errorf("create directories for %s: %w", path, err)
	}
	return nil
}

// SaveFile writes data to path, creating parent directories as needed.
func SaveFile(path string, data []byte) error {
	if err := EnsureParentDirs(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// MoveAndReplace moves src to dest, replacing any existing file at dest.
// The copy runs before src is removed, so a failure mid-way leaves src
// intact. Callers decide whether a failure is fatal or merely logged.
func MoveAndReplace(src, dest string) error {
	if err := EnsureParentDirs(dest); err != nil {
		return err
	}
	if err := DeleteFileIfExists(dest); err != nil {
		return err
	}
	if err := copyFile(src, dest); err != nil {
		return err
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("remove source %s: %w", src, err)
	}
	return nil
}

// DeleteDirIfExists removes the directory tree at path. Absence is success.
func DeleteDirIfExists(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return nil
	}
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("remove directory %s: %w", path, err)
	}
	return nil
}

// DeleteFileIfExists removes the file at path. Absence is success.
func DeleteFileIfExists(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("remove file %s: %w", path, err)
	}
	return nil
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create destination %s: %w", dest, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy %s to %s: %w", src, dest, err)
	}
	return out.Close()
}
