package settings

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/hgupta2363/metabase/getter"
)

type loadDocumentTest struct {
	filename string
	content  string
	expected []*ColumnSetting
}

var testCasesLoadDocument = map[string]loadDocumentTest{
	"json document": {
		filename: "columns.json",
		content:  `[{"name": "total", "fieldRef": ["field-id", 12], "enabled": true}]`,
		expected: []*ColumnSetting{{Name: "total", FieldRef: []any{"field-id", float64(12)}, Enabled: true}},
	},
	"yaml document": {
		filename: "columns.yaml",
		content: `
- name: total
  fieldRef: ["field-id", 12]
  enabled: true
- name: tax
  enabled: false
`,
		expected: []*ColumnSetting{
			{Name: "total", FieldRef: []any{"field-id", float64(12)}, Enabled: true},
			{Name: "tax", Enabled: false},
		},
	},
	"yml document": {
		filename: "columns.yml",
		content: `
- name: tax
  enabled: false
`,
		expected: []*ColumnSetting{{Name: "tax", Enabled: false}},
	},
	"hcl document": {
		filename: "columns.hcl",
		content: `
column "total" {
  field = 12
}
`,
		expected: []*ColumnSetting{{Name: "total", FieldRef: []any{"field-id", 12}, Enabled: true}},
	},
}

func TestLoadDocument(t *testing.T) {
	os.Unsetenv(getter.EnvPermittedFileRoots)
	dir := t.TempDir()
	for name, test := range testCasesLoadDocument {
		source := filepath.Join(dir, test.filename)
		if err := os.WriteFile(source, []byte(test.content), 0644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		columnSettings, err := LoadDocument(context.Background(), source, dir)
		if err != nil {
			t.Errorf("Test: '%s' FAILED : unexpected error %v", name, err)
			continue
		}
		if !reflect.DeepEqual(test.expected, columnSettings) {
			t.Errorf("Test: '%s' FAILED : \nexpected:\n %v \ngot:\n %v\n", name, test.expected, columnSettings)
		}
	}
}

func TestLoadDocumentRejectsUnknownExtensions(t *testing.T) {
	os.Unsetenv(getter.EnvPermittedFileRoots)
	dir := t.TempDir()
	source := filepath.Join(dir, "columns.txt")
	if err := os.WriteFile(source, []byte("total"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	_, err := LoadDocument(context.Background(), source, dir)
	if err == nil {
		t.Fatalf("expected an error for an unsupported extension")
	}
	if !strings.Contains(err.Error(), "unsupported settings document extension") {
		t.Errorf("unexpected error %v", err)
	}
}

func TestLoadDocumentsPreservesSourceOrder(t *testing.T) {
	os.Unsetenv(getter.EnvPermittedFileRoots)
	dir := t.TempDir()

	first := filepath.Join(dir, "first.json")
	if err := os.WriteFile(first, []byte(`[{"name": "total", "enabled": true}, {"name": "tax", "enabled": false}]`), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	second := filepath.Join(dir, "second.hcl")
	if err := os.WriteFile(second, []byte(`
column "discount_pct" {
  expression = "discount_pct"
}
`), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	columnSettings, err := LoadDocuments(context.Background(), []string{first, second}, dir)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	var names []string
	for _, columnSetting := range columnSettings {
		names = append(names, columnSetting.Name)
	}
	expected := []string{"total", "tax", "discount_pct"}
	if !reflect.DeepEqual(expected, names) {
		t.Errorf("expected:\n %v \ngot:\n %v\n", expected, names)
	}
}

func TestLoadDocumentsCombinesErrors(t *testing.T) {
	os.Unsetenv(getter.EnvPermittedFileRoots)
	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	if err := os.WriteFile(good, []byte(`[]`), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"name": "total"}`), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	_, err := LoadDocuments(context.Background(), []string{good, bad}, dir)
	if err == nil {
		t.Fatalf("expected an error when one source fails to parse")
	}
	if !strings.Contains(err.Error(), "failed to load settings documents") {
		t.Errorf("unexpected error %v", err)
	}
}
