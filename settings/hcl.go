package settings

import (
	"fmt"
	"log"
	"runtime/debug"
	"strings"

	goversion "github.com/hashicorp/go-version"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hcldec"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/hgupta2363/metabase/error_helpers"
	"github.com/hgupta2363/metabase/mbql"
	"github.com/hgupta2363/metabase/settings/schema"
	"github.com/hgupta2363/metabase/version"
)

// DefaultColumnSchema describes the attributes of a column block in a
// settings document. Callers may pass a stricter copy to
// ParseHCLWithSchema to enforce their authoring conventions.
var DefaultColumnSchema = map[string]*schema.Attribute{
	"enabled":     {Type: schema.TypeBool},
	"field":       {Type: schema.TypeInt},
	"fk":          {Type: schema.TypeInt},
	"expression":  {Type: schema.TypeString},
	"aggregation": {Type: schema.TypeInt},
}

// columnBlock is the decoded form of one column block, shared by both
// parse paths.
type columnBlock struct {
	Name        string  `hcl:"name,label"`
	Enabled     *bool   `hcl:"enabled,optional"`
	Field       *int    `hcl:"field,optional"`
	Fk          *int    `hcl:"fk,optional"`
	Expression  *string `hcl:"expression,optional"`
	Aggregation *int    `hcl:"aggregation,optional"`
}

type settingsDocument struct {
	RequireVersion *string       `hcl:"require_version,optional"`
	Columns        []columnBlock `hcl:"column,block"`
}

/*
ParseHCL parses a settings document: a sequence of column blocks in
authoring order.

	column "total" {
		enabled = true
		field   = 12
	}

	column "title" {
		fk    = 14
		field = 22
	}

	column "discount_pct" {
		expression = "discount_pct"
	}

A block identifies its column by field (optionally qualified with fk), by
expression, by aggregation, or by the block label alone; these identities
are mutually exclusive. enabled defaults to true - authoring a block means
you want the column.

A document may pin the release it was authored against:

	require_version = ">=0.1.0"

Parsing fails when the running version does not satisfy the constraint.
*/
func ParseHCL(filename string, src []byte) ([]*ColumnSetting, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Byte: 0, Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, error_helpers.HclDiagsToError("failed to parse settings document", diags)
	}

	evalCtx := &hcl.EvalContext{
		Variables: make(map[string]cty.Value),
		Functions: make(map[string]function.Function),
	}

	var doc settingsDocument
	if diags := gohcl.DecodeBody(file.Body, evalCtx, &doc); diags.HasErrors() {
		return nil, error_helpers.HclDiagsToError("failed to decode settings document", diags)
	}
	if doc.RequireVersion != nil {
		if err := checkRequiredVersion(*doc.RequireVersion); err != nil {
			return nil, err
		}
	}

	return settingsFromBlocks(doc.Columns)
}

// ParseHCLWithSchema parses a settings document through a caller-supplied
// attribute schema instead of the built-in one, decoding with hcldec. The
// schema can tighten conventions, e.g. making enabled required or
// dropping the aggregation attribute; schema attributes this package does
// not know are decoded and discarded.
func ParseHCLWithSchema(filename string, src []byte, columnSchema map[string]*schema.Attribute) (_ []*ColumnSetting, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[WARN] ParseHCLWithSchema caught a panic: %v\n", r)
			log.Printf("[WARN] stack: %s", debug.Stack())
			err = fmt.Errorf("settings document parse failed with panic %v", r)
		}
	}()

	if validationErrors := schema.Validate(columnSchema); len(validationErrors) > 0 {
		return nil, fmt.Errorf("invalid settings schema: %s", strings.Join(validationErrors, ", "))
	}

	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Byte: 0, Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, error_helpers.HclDiagsToError("failed to parse settings document", diags)
	}
	spec := hcldec.ObjectSpec{
		"require_version": &hcldec.AttrSpec{Name: "require_version", Type: cty.String},
		"columns":         schema.BlockListSpec("column", "name", columnSchema),
	}
	value, diags := hcldec.Decode(file.Body, spec, nil)
	if diags.HasErrors() {
		return nil, error_helpers.HclDiagsToError("failed to decode settings document", diags)
	}
	if requireVersion := value.GetAttr("require_version"); !requireVersion.IsNull() {
		if err := checkRequiredVersion(requireVersion.AsString()); err != nil {
			return nil, err
		}
	}
	columns := value.GetAttr("columns")
	if columns.IsNull() {
		return nil, nil
	}

	var blocks []columnBlock
	for it := columns.ElementIterator(); it.Next(); {
		_, element := it.Element()
		block, err := columnBlockFromCty(element)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, *block)
	}
	return settingsFromBlocks(blocks)
}

func settingsFromBlocks(blocks []columnBlock) ([]*ColumnSetting, error) {
	columnSettings := make([]*ColumnSetting, 0, len(blocks))
	var errs []error
	for i := range blocks {
		columnSetting, err := blocks[i].columnSetting()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		columnSettings = append(columnSettings, columnSetting)
	}
	if len(errs) > 0 {
		return nil, error_helpers.CombineErrorsWithPrefix("invalid settings document", errs...)
	}
	return columnSettings, nil
}

func (b *columnBlock) columnSetting() (*ColumnSetting, error) {
	columnSetting := &ColumnSetting{Name: b.Name, Enabled: true}
	if b.Enabled != nil {
		columnSetting.Enabled = *b.Enabled
	}

	identities := 0
	if b.Field != nil {
		identities++
		if b.Fk != nil {
			columnSetting.FieldRef = []any{mbql.ClauseForeignKey, *b.Fk, *b.Field}
		} else {
			columnSetting.FieldRef = []any{mbql.ClauseFieldID, *b.Field}
		}
	} else if b.Fk != nil {
		return nil, fmt.Errorf("column %q sets fk without field", b.Name)
	}
	if b.Expression != nil {
		identities++
		columnSetting.FieldRef = []any{mbql.ClauseExpression, *b.Expression}
	}
	if b.Aggregation != nil {
		identities++
		columnSetting.FieldRef = []any{mbql.ClauseAggregation, *b.Aggregation}
	}
	if identities > 1 {
		return nil, fmt.Errorf("column %q sets more than one of field, expression and aggregation", b.Name)
	}
	return columnSetting, nil
}

func columnBlockFromCty(element cty.Value) (*columnBlock, error) {
	block := &columnBlock{}
	for name, value := range element.AsValueMap() {
		if value.IsNull() {
			continue
		}
		var err error
		switch name {
		case "name":
			err = gocty.FromCtyValue(value, &block.Name)
		case "enabled":
			block.Enabled = new(bool)
			err = gocty.FromCtyValue(value, block.Enabled)
		case "field":
			block.Field = new(int)
			err = gocty.FromCtyValue(value, block.Field)
		case "fk":
			block.Fk = new(int)
			err = gocty.FromCtyValue(value, block.Fk)
		case "expression":
			block.Expression = new(string)
			err = gocty.FromCtyValue(value, block.Expression)
		case "aggregation":
			block.Aggregation = new(int)
			err = gocty.FromCtyValue(value, block.Aggregation)
		}
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %s", name, err.Error())
		}
	}
	return block, nil
}

func checkRequiredVersion(constraintString string) error {
	constraint, err := goversion.NewConstraint(constraintString)
	if err != nil {
		return fmt.Errorf("invalid require_version %q: %s", constraintString, err.Error())
	}
	currentVersion, err := goversion.NewVersion(version.Version)
	if err != nil {
		return err
	}
	if !constraint.Check(currentVersion) {
		return fmt.Errorf("settings document requires version %s, this is version %s", constraintString, version.Version)
	}
	return nil
}
