package palette

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/coloromo/coloromo/internal/colorspace"
)

// writePaletteFile writes content to a temp palette file and returns its path.
func writePaletteFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "palette.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write palette file: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writePaletteFile(t, `
# base colors
#000000
#FFFFFF

// accent, no hash prefix
ff0000
#FF0000
`)

	p, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if p.Len() != 3 {
		t.Errorf("Len() = %d, want 3 (duplicate red collapsed)", p.Len())
	}
	for _, want := range []colorspace.RGB{{R: 0, G: 0, B: 0}, {R: 255, G: 255, B: 255}, {R: 255, G: 0, B: 0}} {
		if !p.Has(want) {
			t.Errorf("palette is missing %v", want)
		}
	}
}

func TestLoadFile_BadLine(t *testing.T) {
	path := writePaletteFile(t, "#000000\nnot-a-color\n")

	_, err := LoadFile(path)
	if err == nil {
		t.Fatal("LoadFile should fail on an unparsable line")
	}
	if !strings.Contains(err.Error(), ":2:") {
		t.Errorf("error %q should name the offending line", err)
	}
}

func TestLoadFile_NoColors(t *testing.T) {
	path := writePaletteFile(t, "# only comments here\n\n")
	if _, err := LoadFile(path); err == nil {
		t.Error("LoadFile should fail when the file defines no colors")
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("LoadFile should fail for a missing file")
	}
}
