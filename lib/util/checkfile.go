package util

import "os"

// CheckFileExists reports whether path names an existing file.
func CheckFileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
