package syntax

import "testing"

func TestDetectVFiles(t *testing.T) {
	for _, path := range []string{"main.v", "src/vec.vv", "deploy.vsh", "UPPER.V"} {
		lang, ok := Detect(path)
		if !ok {
			t.Errorf("Expected %q to select a language", path)
			continue
		}
		if lang.Name != "V" {
			t.Errorf("Expected %q to select V, got %q", path, lang.Name)
		}
	}
}

func TestDetectUnknownExtension(t *testing.T) {
	for _, path := range []string{"main.go", "notes.txt", "Makefile", "v"} {
		if _, ok := Detect(path); ok {
			t.Errorf("Expected %q to select no language", path)
		}
	}
}
