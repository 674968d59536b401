package taskbar

import (
	"os"
	"path/filepath"

	"wgpt/internal/infrastructure/logging"
	"wgpt/internal/platform"
)

// IconLoader turns an icon file into a native handle
type IconLoader interface {
	// LoadIcon loads the icon file at path at its native size
	LoadIcon(path string) (platform.Icon, error)
	// DestroyIcon frees a handle returned by LoadIcon
	DestroyIcon(icon platform.Icon)
}

// IconSource resolves candidate paths to a loaded icon
type IconSource interface {
	LoadIconAny(candidates []string) (platform.Icon, bool)
	Release(icon platform.Icon)
}

// Resolver searches relative icon paths against the working directory first
// and the executable's directory second.
type Resolver struct {
	loader  IconLoader
	logger  logging.Logger
	workDir func() (string, error)
	exeDir  func() (string, error)
	isFile  func(path string) bool
}

// NewResolver creates a resolver over loader
func NewResolver(loader IconLoader, logger logging.Logger) *Resolver {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	return &Resolver{
		loader:  loader,
		logger:  logger,
		workDir: os.Getwd,
		exeDir:  executableDir,
		isFile:  isRegularFile,
	}
}

func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// LoadIconAny returns the first candidate that exists and loads.
// Every candidate is tried under the working directory, then every candidate
// under the executable's directory. Missing or unloadable files are skipped.
func (r *Resolver) LoadIconAny(candidates []string) (platform.Icon, bool) {
	if len(candidates) == 0 {
		return 0, false
	}

	for _, base := range []func() (string, error){r.workDir, r.exeDir} {
		dir, err := base()
		if err != nil {
			r.logger.Debug("Icon search root unavailable", "error", err.Error())
			continue
		}
		for _, rel := range candidates {
			path := filepath.Join(dir, rel)
			if !r.isFile(path) {
				continue
			}
			icon, err := r.loader.LoadIcon(path)
			if err != nil || icon == 0 {
				r.logger.Debug("Icon file failed to load", "path", path, "error", errString(err))
				continue
			}
			return icon, true
		}
	}

	return 0, false
}

// Release frees an icon returned by LoadIconAny
func (r *Resolver) Release(icon platform.Icon) {
	if icon != 0 {
		r.loader.DestroyIcon(icon)
	}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
