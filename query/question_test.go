package query

import "testing"

func TestQuestionSettingCopies(t *testing.T) {
	base := NewQuestion(NewStructuredQuery(testMetadata(), 1))
	if base.Setting("table.columns") != nil {
		t.Errorf("expected no setting on a fresh question")
	}

	configured := base.WithSetting("table.columns", []any{"x"})
	if base.Setting("table.columns") != nil {
		t.Errorf("WithSetting mutated its receiver")
	}
	if configured.Setting("table.columns") == nil {
		t.Errorf("expected table.columns to be set")
	}

	replaced := configured.WithSettings(map[string]any{"graph.metrics": []any{"count"}})
	if replaced.Setting("table.columns") != nil {
		t.Errorf("WithSettings kept a stale setting")
	}
	if replaced.Setting("graph.metrics") == nil {
		t.Errorf("expected graph.metrics to be set")
	}
}

func TestQuestionSetQuery(t *testing.T) {
	structured := NewStructuredQuery(testMetadata(), 1)
	base := NewQuestion(structured).WithSetting("table.columns", []any{"x"})

	native := &NativeQuery{SQL: "select 1"}
	swapped := base.SetQuery(native)

	if base.Query() != Query(structured) {
		t.Errorf("SetQuery mutated its receiver")
	}
	if swapped.Query() != Query(native) {
		t.Errorf("expected the native query, got %v", swapped.Query())
	}
	if swapped.Setting("table.columns") == nil {
		t.Errorf("SetQuery dropped the settings")
	}
}
