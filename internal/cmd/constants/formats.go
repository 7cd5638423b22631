// Package constants provides shared constants for CLI commands.
package constants

// Output format constants used throughout the CLI.
const (
	// FormatTable is the default table output format.
	FormatTable = "table"

	// FormatWide is a table format with description columns.
	FormatWide = "wide"

	// FormatJSON outputs data as JSON.
	FormatJSON = "json"

	// FormatYAML outputs data as YAML.
	FormatYAML = "yaml"
)

// Table selectors accepted by the run command.
const (
	TableEntities      = "entities"
	TableAttributes    = "attributes"
	TableRelationships = "relationships"
	TableObjects       = "objects"
	TableLabels        = "labels"
	TableAll           = "all"
)

// Tables lists the run command's table selectors in output order.
var Tables = []string{TableEntities, TableAttributes, TableRelationships, TableObjects, TableLabels, TableAll}
