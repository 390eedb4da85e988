package util

import (
	"os"
	"path"
	"strings"
	"unicode"
)

// FileMode is the default FileMode used when creating files.
const FileMode = 0664

// DirMode is the default FileMode used when creating directories.
const DirMode = 0775

// FileExists checks whether some file exists.
func FileExists(file string) bool {
	stat, err := os.Stat(file)
	return err == nil && !stat.IsDir()
}

// DirExists checks whether some directory exists.
func DirExists(dir string) bool {
	stat, err := os.Stat(dir)
	return err == nil && stat.IsDir()
}

// WriteFile writes data to the given file, creating parent directories as needed.
func WriteFile(file string, data []byte) error {
	if err := os.MkdirAll(path.Dir(file), DirMode); err != nil {
		return err
	}
	return os.WriteFile(file, data, FileMode)
}

// SanitizeIdentifier turns an arbitrary module name into an upper-case
// identifier: alphanumerics are upper-cased, every run of other characters
// collapses to a single underscore, and leading/trailing underscores are
// stripped. E.g. "sb-vadd!!" becomes "SB_VADD".
func SanitizeIdentifier(name string) string {
	var b strings.Builder
	underscore := false
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToUpper(r))
			underscore = false
		} else if !underscore {
			b.WriteRune('_')
			underscore = true
		}
	}
	return strings.Trim(b.String(), "_")
}
