package schema

import (
	"reflect"
	"testing"

	"github.com/hashicorp/hcl/v2/hcldec"
	"github.com/zclconf/go-cty/cty"
)

var testCasesValidate = map[string]struct {
	schema        map[string]*Attribute
	expectedCount int
}{
	"valid": {
		schema: map[string]*Attribute{
			"enabled": {Type: TypeBool},
			"tags":    {Type: TypeList, Elem: &Attribute{Type: TypeString}},
		},
		expectedCount: 0,
	},
	"elem on scalar": {
		schema: map[string]*Attribute{
			"field": {Type: TypeInt, Elem: &Attribute{Type: TypeString}},
		},
		expectedCount: 1,
	},
	"list without elem": {
		schema: map[string]*Attribute{
			"tags": {Type: TypeList},
		},
		expectedCount: 1,
	},
}

func TestValidate(t *testing.T) {
	for name, test := range testCasesValidate {
		validationErrors := Validate(test.schema)
		if len(validationErrors) != test.expectedCount {
			t.Errorf("Test: '%s' FAILED : expected %d validation errors, got %v", name, test.expectedCount, validationErrors)
		}
	}
}

func TestValidateReportsInNameOrder(t *testing.T) {
	validationErrors := Validate(map[string]*Attribute{
		"widgets": {Type: TypeList},
		"field":   {Type: TypeInt, Elem: &Attribute{Type: TypeString}},
	})
	expected := []string{
		"attribute field has 'Elem' set but its Type is not TypeList",
		"attribute widgets is TypeList but has no 'Elem'",
	}
	if !reflect.DeepEqual(expected, validationErrors) {
		t.Errorf("expected:\n %v \ngot:\n %v\n", expected, validationErrors)
	}
}

func TestSchemaToObjectSpec(t *testing.T) {
	spec := SchemaToObjectSpec(map[string]*Attribute{
		"enabled": {Type: TypeBool, Required: true},
		"field":   {Type: TypeInt},
		"tags":    {Type: TypeList, Elem: &Attribute{Type: TypeString}},
	})

	enabled, ok := spec["enabled"].(*hcldec.AttrSpec)
	if !ok || !enabled.Type.Equals(cty.Bool) || !enabled.Required {
		t.Errorf("expected a required bool attr spec, got %v", spec["enabled"])
	}
	field, ok := spec["field"].(*hcldec.AttrSpec)
	if !ok || !field.Type.Equals(cty.Number) || field.Required {
		t.Errorf("expected an optional number attr spec, got %v", spec["field"])
	}
	tags, ok := spec["tags"].(*hcldec.AttrSpec)
	if !ok || !tags.Type.Equals(cty.List(cty.String)) {
		t.Errorf("expected a string list attr spec, got %v", spec["tags"])
	}
}

func TestBlockListSpec(t *testing.T) {
	spec, ok := BlockListSpec("column", "name", map[string]*Attribute{
		"field": {Type: TypeInt},
	}).(*hcldec.BlockListSpec)
	if !ok {
		t.Fatalf("expected a block list spec")
	}
	if spec.TypeName != "column" {
		t.Errorf("expected block type column, got %s", spec.TypeName)
	}
	nested, ok := spec.Nested.(hcldec.ObjectSpec)
	if !ok {
		t.Fatalf("expected a nested object spec, got %T", spec.Nested)
	}
	if _, ok := nested["name"].(*hcldec.BlockLabelSpec); !ok {
		t.Errorf("expected the label decoded under name")
	}
	if _, ok := nested["field"].(*hcldec.AttrSpec); !ok {
		t.Errorf("expected the field attribute in the nested spec")
	}
}
