package taskbar

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"wgpt/internal/platform"
	"wgpt/internal/testutils"
)

// mockLoader hands out increasing handles for paths it accepts
type mockLoader struct {
	fail      map[string]bool
	loaded    []string
	destroyed []platform.Icon
	next      platform.Icon
}

func (m *mockLoader) LoadIcon(path string) (platform.Icon, error) {
	if m.fail[path] {
		return 0, errors.New("corrupt icon")
	}
	m.next++
	m.loaded = append(m.loaded, path)
	return m.next + 100, nil
}

func (m *mockLoader) DestroyIcon(icon platform.Icon) {
	m.destroyed = append(m.destroyed, icon)
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("ico"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func newTestResolver(loader *mockLoader, work, exe string) *Resolver {
	r := NewResolver(loader, &testutils.RecordingLogger{})
	r.workDir = func() (string, error) { return work, nil }
	r.exeDir = func() (string, error) { return exe, nil }
	return r
}

func TestLoadIconAny_PrefersWorkingDirectory(t *testing.T) {
	work, exe := t.TempDir(), t.TempDir()
	writeFile(t, filepath.Join(work, "icons", "badges", "5.ico"))
	writeFile(t, filepath.Join(exe, "icons", "badges", "5.ico"))

	loader := &mockLoader{}
	icon, ok := newTestResolver(loader, work, exe).LoadIconAny([]string{filepath.Join("icons", "badges", "5.ico")})

	if !ok || icon == 0 {
		t.Fatal("Expected icon to load")
	}
	if len(loader.loaded) != 1 || loader.loaded[0] != filepath.Join(work, "icons", "badges", "5.ico") {
		t.Errorf("Expected working directory copy, loaded %v", loader.loaded)
	}
}

func TestLoadIconAny_AllWorkingCandidatesBeforeExecutable(t *testing.T) {
	work, exe := t.TempDir(), t.TempDir()
	primary := filepath.Join("icons", "badges", "3.ico")
	fallback := filepath.Join("resources", "icons", "badges", "3.ico")

	// Only the second candidate exists under the working directory,
	// the first exists next to the executable
	writeFile(t, filepath.Join(work, fallback))
	writeFile(t, filepath.Join(exe, primary))

	loader := &mockLoader{}
	_, ok := newTestResolver(loader, work, exe).LoadIconAny([]string{primary, fallback})

	if !ok {
		t.Fatal("Expected icon to load")
	}
	if loader.loaded[0] != filepath.Join(work, fallback) {
		t.Errorf("Expected working directory pass to finish first, loaded %v", loader.loaded)
	}
}

func TestLoadIconAny_FallsBackToExecutableDirectory(t *testing.T) {
	work, exe := t.TempDir(), t.TempDir()
	rel := filepath.Join("icons", "badges", "9+.ico")
	writeFile(t, filepath.Join(exe, rel))

	loader := &mockLoader{}
	_, ok := newTestResolver(loader, work, exe).LoadIconAny([]string{rel})

	if !ok {
		t.Fatal("Expected executable directory fallback")
	}
	if loader.loaded[0] != filepath.Join(exe, rel) {
		t.Errorf("Unexpected path loaded: %v", loader.loaded)
	}
}

func TestLoadIconAny_SkipsUnloadableFiles(t *testing.T) {
	work, exe := t.TempDir(), t.TempDir()
	bad := filepath.Join("a", "bad.ico")
	good := filepath.Join("b", "good.ico")
	writeFile(t, filepath.Join(work, bad))
	writeFile(t, filepath.Join(work, good))

	loader := &mockLoader{fail: map[string]bool{filepath.Join(work, bad): true}}
	_, ok := newTestResolver(loader, work, exe).LoadIconAny([]string{bad, good})

	if !ok {
		t.Fatal("Expected the second candidate to load")
	}
	if len(loader.loaded) != 1 || loader.loaded[0] != filepath.Join(work, good) {
		t.Errorf("Unexpected loads: %v", loader.loaded)
	}
}

func TestLoadIconAny_Absent(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		setup      func(work string)
	}{
		{"empty list", nil, func(string) {}},
		{"missing everywhere", []string{"nope.ico"}, func(string) {}},
		{"directory not file", []string{"dir.ico"}, func(work string) {
			_ = os.MkdirAll(filepath.Join(work, "dir.ico"), 0o755)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			work, exe := t.TempDir(), t.TempDir()
			tt.setup(work)

			loader := &mockLoader{}
			icon, ok := newTestResolver(loader, work, exe).LoadIconAny(tt.candidates)
			if ok || icon != 0 {
				t.Errorf("Expected absent, got %v %v", icon, ok)
			}
			if len(loader.loaded) != 0 {
				t.Errorf("Loader must not be called, got %v", loader.loaded)
			}
		})
	}
}

func TestLoadIconAny_SearchRootError(t *testing.T) {
	exe := t.TempDir()
	writeFile(t, filepath.Join(exe, "x.ico"))

	loader := &mockLoader{}
	r := newTestResolver(loader, "", exe)
	r.workDir = func() (string, error) { return "", errors.New("cwd removed") }

	if _, ok := r.LoadIconAny([]string{"x.ico"}); !ok {
		t.Error("Expected executable directory to be searched when the working directory is unavailable")
	}
}

func TestResolver_Release(t *testing.T) {
	loader := &mockLoader{}
	r := NewResolver(loader, nil)

	r.Release(0)
	r.Release(7)

	if len(loader.destroyed) != 1 || loader.destroyed[0] != 7 {
		t.Errorf("Expected only the non-zero handle destroyed, got %v", loader.destroyed)
	}
}
