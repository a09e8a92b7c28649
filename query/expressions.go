package query

import (
	"errors"
	"strings"

	"github.com/stevenle/topsort"

	"github.com/hgupta2363/metabase/mbql"
)

// OrderedExpressions returns the expression definitions sorted so each one
// appears after every expression its definition references, i.e. in a safe
// evaluation order. Result column order is unaffected, that stays authoring
// order. References to undefined expressions are ignored here and left to
// the execution engine to reject.
func (q *StructuredQuery) OrderedExpressions() ([]ExpressionDef, error) {
	var dependencies = topsort.NewGraph()
	dependencies.AddNode("root")

	definitions := make(map[string]ExpressionDef, len(q.expressions))
	for _, e := range q.expressions {
		definitions[e.Name] = e
		if !dependencies.ContainsNode(e.Name) {
			dependencies.AddNode(e.Name)
		}
		dependencies.AddEdge("root", e.Name)
		for _, dep := range expressionRefs(e.Definition) {
			if !dependencies.ContainsNode(dep) {
				dependencies.AddNode(dep)
			}
			dependencies.AddEdge(e.Name, dep)
		}
	}

	sorted, err := dependencies.TopSort("root")
	if err != nil {
		return nil, errors.New(strings.Replace(err.Error(), "Cycle error", "expression dependencies contain a cycle", 1))
	}

	// the sort also yields "root" and any undefined names, skip those
	ordered := make([]ExpressionDef, 0, len(definitions))
	for _, name := range sorted {
		if e, ok := definitions[name]; ok {
			ordered = append(ordered, e)
		}
	}
	return ordered, nil
}

// expressionRefs collects the names of the expressions a raw definition
// references.
func expressionRefs(definition []any) []string {
	if len(definition) >= 2 {
		if clause, ok := definition[0].(string); ok && clause == mbql.ClauseExpression {
			if name, ok := definition[1].(string); ok {
				return []string{name}
			}
		}
	}
	var refs []string
	for _, element := range definition {
		if nested, ok := element.([]any); ok {
			refs = append(refs, expressionRefs(nested)...)
		}
	}
	return refs
}
