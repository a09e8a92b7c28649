/*
A question's column settings normally live inside its visualization settings,
under the "table.columns" key. They can also be authored as standalone
documents, kept in version control or object storage, and loaded at runtime
with settings.LoadDocument or settings.LoadDocuments.

# Document forms

A settings document is a list of column settings. In JSON it is the wire form
exactly as stored:

	[
		{"name": "total", "fieldRef": ["field-id", 12], "enabled": true},
		{"name": "tax", "enabled": false}
	]

YAML documents use the same field names:

	- name: total
	  fieldRef: ["field-id", 12]
	  enabled: true
	- name: tax
	  enabled: false

The HCL form trades raw field references for one block per column:

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

	column "tax" {
		enabled = false
	}

A block identifies its column by field (optionally qualified with fk), by
expression, by aggregation, or by the block label alone; these identities are
mutually exclusive. enabled defaults to true.

# Loading

A source may be a local path or any go-getter url, so documents can live in
git, S3 or behind plain https:

	columnSettings, err := settings.LoadDocuments(ctx, []string{
		"s3::https://my-bucket.s3.amazonaws.com/orders/columns.hcl",
		"./overrides.json",
	}, tmpDir)

Several sources combine in order, so later documents act as overrides when
the caller treats the result as a map.

Local paths can be restricted with the MB_PERMITTED_ROOT_PATHS environment
variable, a comma separated list of absolute directories documents may be
read from.

# Version pinning

An HCL document may pin the release it was authored against and refuse to
parse on anything older:

	require_version = ">=0.1.0"

# Restricting the schema

Authoring conventions can be enforced by parsing through a custom attribute
schema with settings.ParseHCLWithSchema, e.g. requiring every block to set
enabled explicitly:

	columnSchema := map[string]*schema.Attribute{
		"enabled": {Type: schema.TypeBool, Required: true},
		"field":   {Type: schema.TypeInt},
	}
	columnSettings, err := settings.ParseHCLWithSchema(filename, src, columnSchema)
*/
package table_settings

// ForceImport is a mechanism to ensure godoc can reference all required packages
type ForceImport string
