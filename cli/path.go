package cli

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/Mwandia/schemer/pkg"
)

// baseConfig is the base name of the configuration file.
const baseConfig = "config"

// defaultDirMode is the permission mode for directories created at startup.
var defaultDirMode os.FileMode = 0o700

// basePrefix returns the name under which per-user directories are created
// and environment variables are prefixed.
//
// It is the executable's base name, with two substitutions:
//   - "__debug_bin<N>" (dlv's default output name) becomes the package name
//   - leading dots are stripped
var basePrefix = sync.OnceValue(
	func() string {
		id := os.Args[0]
		exe, err := os.Executable()
		if err == nil {
			id = exe
		}

		ext := filepath.Ext(filepath.Base(id))
		id = strings.TrimSuffix(filepath.Base(id), ext)

		for rex, rep := range map[*regexp.Regexp]string{
			regexp.MustCompile(`^__debug_bin\d+$`): pkg.Name,
			regexp.MustCompile(`^\.+`):             "",
		} {
			id = rex.ReplaceAllString(id, rep)
		}

		return id
	},
)

// userDir resolves a per-user base directory, falling back through the
// home directory and the working directory when the platform lookup fails.
func userDir(lookup func() (string, error), dotName string) string {
	dir, err := lookup()
	if err == nil {
		return filepath.Join(dir, basePrefix())
	}

	dir, err = os.UserHomeDir()
	if err == nil {
		return filepath.Join(dir, dotName, basePrefix())
	}

	dir, err = os.Getwd()
	if err != nil {
		dir = "."
	}

	return filepath.Join(dir, basePrefix())
}

// configDir returns the directory holding the configuration file.
var configDir = sync.OnceValue(
	func() string { return userDir(os.UserConfigDir, ".config") },
)

// cacheDir returns the directory holding transient files, the REPL
// history and profiler output among them.
var cacheDir = sync.OnceValue(
	func() string { return userDir(os.UserCacheDir, ".cache") },
)

// configPath joins the given path elements onto the configuration
// directory. With no elements it is equivalent to [configDir].
func configPath(elem ...string) string {
	return filepath.Join(append([]string{configDir()}, elem...)...)
}

// mkdirAllRequired creates every directory the process needs at startup.
func mkdirAllRequired() error {
	for _, dir := range []string{configDir(), cacheDir()} {
		if err := os.MkdirAll(dir, defaultDirMode); err != nil {
			return err
		}
	}

	return nil
}
