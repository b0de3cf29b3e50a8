package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"dir-sweeper/internal/config"
	"dir-sweeper/internal/sweep"
)

// TestSweepSafetyIntegration verifies the sweep contract against a real
// directory tree using the built-in defaults
func TestSweepSafetyIntegration(t *testing.T) {
	// 1. Create temporary filesystem structure
	tmpRoot := t.TempDir()
	scanRoot := filepath.Join(tmpRoot, "formulas")
	outsideDir := filepath.Join(tmpRoot, "outside")

	for _, dir := range []string{scanRoot, outsideDir, filepath.Join(scanRoot, "nested")} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create dir %s: %v", dir, err)
		}
	}

	files := map[string]string{
		filepath.Join(scanRoot, "APSolver.cs"):        "delete",
		filepath.Join(scanRoot, "BasicMath.cs"):       "keep",
		filepath.Join(scanRoot, "trigonometry.cs"):    "delete",
		filepath.Join(scanRoot, "cleanup.py"):         "keep",
		filepath.Join(scanRoot, "notes.txt"):          "keep",
		filepath.Join(scanRoot, "nested", "Inner.cs"): "keep",
		filepath.Join(outsideDir, "MustKeep.cs"):      "keep",
	}
	for path := range files {
		if err := os.WriteFile(path, []byte("content"), 0644); err != nil {
			t.Fatalf("Failed to create %s: %v", path, err)
		}
	}

	// Symlink inside the scan root pointing at a file outside it
	linkPath := filepath.Join(scanRoot, "link.cs")
	if err := os.Symlink(filepath.Join(outsideDir, "MustKeep.cs"), linkPath); err != nil {
		t.Fatalf("Failed to create symlink: %v", err)
	}

	// 2. Sweep with the embedded defaults
	cfg, err := config.Default()
	if err != nil {
		t.Fatalf("config.Default failed: %v", err)
	}
	sweeper := sweep.New(afero.NewOsFs(), cfg.TargetSuffix)

	report, err := sweeper.Run(scanRoot, sweep.NewAllowList(cfg.Keep...))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// 3. Removing the link must not touch its target
	if _, err := os.Lstat(linkPath); !os.IsNotExist(err) {
		t.Errorf("symlink should be removed, lstat err = %v", err)
	}
	for path, fate := range files {
		_, err := os.Stat(path)
		switch fate {
		case "keep":
			if err != nil {
				t.Errorf("SAFETY VIOLATION: %s should remain: %v", path, err)
			}
		case "delete":
			if !os.IsNotExist(err) {
				t.Errorf("%s should be deleted, stat err = %v", path, err)
			}
		}
	}

	// APSolver.cs, link.cs, trigonometry.cs
	if report.Deleted() != 3 {
		t.Errorf("Deleted() = %d, want 3", report.Deleted())
	}

	// 4. Second run is a no-op
	again, err := sweeper.Run(scanRoot, sweep.NewAllowList(cfg.Keep...))
	if err != nil {
		t.Fatalf("second Run failed: %v", err)
	}
	if again.Deleted() != 0 || again.Failed() != 0 {
		t.Errorf("second run Deleted/Failed = %d/%d, want 0/0", again.Deleted(), again.Failed())
	}
}
