// Package schema converts attribute schemas into hcldec decode specs, for
// schema-driven parsing of settings documents.
package schema

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2/hcldec"
	"github.com/zclconf/go-cty/cty"
	"golang.org/x/exp/maps"
)

// ValueType is the type of a schema attribute value.
type ValueType int

const (
	TypeInvalid ValueType = iota
	TypeBool
	TypeInt
	TypeFloat
	TypeString
	TypeList
)

type Attribute struct {
	// Type is the type of the value and must be one of the ValueType values.
	//   TypeBool - bool
	//   TypeInt - int
	//   TypeFloat - float64
	//   TypeString - string
	//   TypeList - []interface{}
	Type ValueType

	// Elem represents the element type. This may only be set for TypeList.
	Elem *Attribute

	// is this attribute required
	Required bool
}

// Validate returns the schema's consistency problems as strings, empty
// when the schema is usable. Problems are reported in attribute name order.
func Validate(schema map[string]*Attribute) []string {
	names := maps.Keys(schema)
	sort.Strings(names)

	var validationErrors []string
	for _, name := range names {
		attr := schema[name]
		if attr.Type != TypeList && attr.Elem != nil {
			validationErrors = append(validationErrors, fmt.Sprintf("attribute %s has 'Elem' set but its Type is not TypeList", name))
		}
		if attr.Type == TypeList && attr.Elem == nil {
			validationErrors = append(validationErrors, fmt.Sprintf("attribute %s is TypeList but has no 'Elem'", name))
		}
	}
	return validationErrors
}

// SchemaToObjectSpec builds the decode spec for a flat attribute body.
func SchemaToObjectSpec(schema map[string]*Attribute) hcldec.ObjectSpec {
	spec := hcldec.ObjectSpec{}

	for name, attr := range schema {
		spec[name] = attributeToSpec(name, attr)
	}
	return spec
}

// BlockListSpec builds the decode spec for a repeated labelled block: each
// decoded element is an object holding the label under labelName plus the
// schema attributes.
func BlockListSpec(blockType, labelName string, schema map[string]*Attribute) hcldec.Spec {
	nested := hcldec.ObjectSpec{
		labelName: &hcldec.BlockLabelSpec{Index: 0, Name: labelName},
	}
	for name, attr := range schema {
		nested[name] = attributeToSpec(name, attr)
	}
	return &hcldec.BlockListSpec{TypeName: blockType, Nested: nested}
}

func attributeToSpec(name string, attr *Attribute) hcldec.Spec {
	return &hcldec.AttrSpec{
		Name:     name,
		Type:     attributeTypeToCty(attr),
		Required: attr.Required,
	}
}

func attributeTypeToCty(attr *Attribute) cty.Type {
	switch attr.Type {
	case TypeString:
		return cty.String
	case TypeBool:
		return cty.Bool
	case TypeFloat, TypeInt:
		return cty.Number
	case TypeList:
		return cty.List(attributeTypeToCty(attr.Elem))
	default:
		panic(fmt.Sprintf("invalid attribute type %v", attr.Type))
	}
}
