/*
	Package metabase reconciles saved column settings with the columns a query returned, and keeps a structured query's field list in step with edits to those settings.

A question carries two partly redundant records of its columns: the query's field list says what to fetch, and the visualization's column settings say what to show and in what order. Both survive schema edits, metadata changes and years of client versions, so reconciling them is identity work: deciding which stored reference means which live column.

# Parse a field reference

Field references arrive as raw MBQL clauses, in whatever spelling the client that saved them used. Parse them into a dimension with mbql.ParseMBQL:

	dim, err := mbql.ParseMBQL([]any{"fk->", 7, 17})
	if err != nil {
		return err
	}
	log.Println(dim.Key())

Every legacy spelling of the same reference normalizes to the same dimension, so dimensions written years apart compare equal.

# Match settings to result columns

A result column carries the field reference it was produced from. dataset.FieldRefForColumn recovers it, synthesizing references for aggregation columns, and dataset.KeyForColumn renders the stable identity a settings map is keyed by.

[settings.FindColumnForColumnSetting] resolves a stored column setting to the result column it configures:

	for _, columnSetting := range columnSettings {
		if col := settings.FindColumnForColumnSetting(cols, columnSetting); col != nil {
			// apply the setting to col
		}
	}

Resolution prefers the field reference and falls back to the column name, so settings keep working when one side predates the other.

# Keep the field list in step

When the table.columns setting of a question changes, [settings.SyncTableColumnsToQuery] rebuilds the question's explicit field list from it: enabled settings in order, disabled columns dropped.

	question = settings.SyncTableColumnsToQuery(question)

A rebuilt list that selects exactly the default columns again is dropped entirely, so the query keeps picking up columns added to the table later.

# Load settings documents

Column settings can also be authored out of band and loaded from local paths or any go-getter url. See [table_settings] for the document forms.

	columnSettings, err := settings.LoadDocuments(ctx, sources, tmpDir)

# Logging

Messages are written via the standard log package with a "[LEVEL] " prefix. logging.Initialize routes them through [go-hclog], which supports standard log levels: TRACE, DEBUG, INFO, WARN, ERROR. The default is WARN.

	logger := logging.Initialize("metabase")

Use the MB_LOG_LEVEL environment variable to set the level.

	export MB_LOG_LEVEL=TRACE

[go-hclog]: https://github.com/hashicorp/go-hclog
*/
package metabase

import (
	"github.com/hgupta2363/metabase/docs/table_settings"
	"github.com/hgupta2363/metabase/settings"
)

var forceImportTableSettingsDocs table_settings.ForceImport
var forceImportSettings settings.ForceImport
