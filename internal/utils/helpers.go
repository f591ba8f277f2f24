package helpers

import (
	"path/filepath"
	"strings"
)

func BaseKey(filename string) string {
	ext := filepath.Ext(filename)
	return strings.TrimSuffix(filename, ext)
}

// OutputPath derives the debug-mode destination for an input file:
// <outDir>/<input-basename>.cpp.
func OutputPath(outDir, inputPath string) string {
	return filepath.Join(outDir, BaseKey(filepath.Base(inputPath))+".cpp")
}
