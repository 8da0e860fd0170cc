package catalog

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestListSortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Ибупрофен.json", "{}")
	writeFile(t, dir, "_черновик.json", "{}")
	writeFile(t, dir, "Парацетамол.json", "{}")
	writeFile(t, dir, "заметки.txt", "")

	c := New(dir, t.TempDir())
	got, err := c.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Ибупрофен.json", "Парацетамол.json"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("List = %v, want %v", got, want)
	}
}

func TestListMissingResultsDir(t *testing.T) {
	c := New(filepath.Join(t.TempDir(), "нет"), t.TempDir())
	if _, err := c.List(); err == nil {
		t.Error("expected error for missing results dir")
	}
}

func TestFilterListingSingleSurvivor(t *testing.T) {
	names := []string{
		"Аспирин.json",
		"Преднизолон 5 мг.json",
		"преднизолон таблетки.json",
	}
	got := filterListing(names)
	want := []string{"Аспирин.json", "Преднизолон 5 мг.json"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("filterListing = %v, want %v", got, want)
	}
}

func TestFilterListingDoesNotGeneralize(t *testing.T) {
	// Near-duplicate names without the protected substring all pass.
	names := []string{"Аспирин.json", "Аспирин (копия).json", "аспирин.json"}
	got := filterListing(names)
	if !reflect.DeepEqual(got, names) {
		t.Errorf("filterListing = %v, want all names kept", got)
	}
}

func TestLoadRecord(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Аспирин.json", `{"dose": "500 мг"}`)

	c := New(dir, t.TempDir())
	v, err := c.Load("Аспирин.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(v.Entries) != 1 || v.Entries[0].Key != "dose" {
		t.Errorf("unexpected record: %+v", v)
	}
}

func TestLoadMissingRecord(t *testing.T) {
	c := New(t.TempDir(), t.TempDir())
	if _, err := c.Load("нет.json"); err == nil {
		t.Error("expected error for missing record")
	}
}

func TestLoadStripsPathTraversal(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "secret.json", `{"a": 1}`)
	c := New(dir, t.TempDir())
	if _, err := c.Load("../../secret.json"); err != nil {
		t.Errorf("base-name lookup should succeed, got %v", err)
	}
}

func TestSourcePrefersPDF(t *testing.T) {
	pdfDir := t.TempDir()
	writeFile(t, pdfDir, "Аспирин.pdf", "%PDF-1.4")
	writeFile(t, pdfDir, "Аспирин.docx", "PK")

	c := New(t.TempDir(), pdfDir)
	path, kind := c.Source("Аспирин")
	if kind != SourcePDF {
		t.Fatalf("kind = %v, want SourcePDF", kind)
	}
	if filepath.Base(path) != "Аспирин.pdf" {
		t.Errorf("path = %q", path)
	}
}

func TestSourceFallsBackToDOCX(t *testing.T) {
	pdfDir := t.TempDir()
	writeFile(t, pdfDir, "Аспирин.docx", "PK")

	c := New(t.TempDir(), pdfDir)
	_, kind := c.Source("Аспирин")
	if kind != SourceDOCX {
		t.Errorf("kind = %v, want SourceDOCX", kind)
	}
}

func TestSourceMissing(t *testing.T) {
	c := New(t.TempDir(), t.TempDir())
	_, kind := c.Source("Аспирин")
	if kind != SourceNone {
		t.Errorf("kind = %v, want SourceNone", kind)
	}
}

func TestStem(t *testing.T) {
	if got := Stem("Аспирин 100 мг.json"); got != "Аспирин 100 мг" {
		t.Errorf("Stem = %q", got)
	}
}
