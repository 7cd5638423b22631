// Package constants provides shared constants used throughout the bimmap codebase.
// This includes sheet and column names of the input workbooks, the labels the
// pipeline writes into its output tables, id bases, file permissions and limits
// that should be consistent across the application.
package constants

import "time"

// Sheet names of the input workbooks
const (
	// EntitySheet holds one row per entity in the VP export
	EntitySheet = "Entity"

	// ColumnSheet holds one row per attribute in the VP export
	ColumnSheet = "Column"

	// ForeignKeySheet holds one row per foreign key in the VP export
	ForeignKeySheet = "Foreign Key"

	// DefaultCentralSheet is the central document sheet used when none is selected
	DefaultCentralSheet = "Linear"
)

// Column names read from the VP export sheets
const (
	ColumnID          = "ID"
	ColumnName        = "Name"
	ColumnDescription = "Description"
	ColumnPrimaryKey  = "PrimaryKey"
	ColumnParentName  = "Parent Name"
	ColumnTable       = "Table"
	ColumnReference   = "Reference"
	ColumnIdentifying = "Identifying"
)

// Column names read from the central document
const (
	ColumnBIMObject    = "BIM Object"
	ColumnBIMAttribute = "BIM Attribute"
	ColumnSourceSystem = "Source System"
)

// Labels written by the pipeline
const (
	// EntityMismatch marks an entity with no central document object label
	EntityMismatch = "entity missmatch"

	// AttributeMismatch marks an attribute with no central document attribute label
	AttributeMismatch = "attribute missmatch"

	// StandardEntity labels an identifying relationship
	StandardEntity = "Standard Entity"

	// ReferenceDataTable labels a non-identifying relationship
	ReferenceDataTable = "Reference Data Table"

	// IdentifyingYes is the identifying flag value that keeps relationship direction
	IdentifyingYes = "Yes"

	// IdentifyingNo is the documented non-identifying flag value
	IdentifyingNo = "No"

	// UnknownSystem is shown in the diagram for entities without a system
	UnknownSystem = "Unknown"

	// SkipPrefix excludes central document rows whose key starts with it
	SkipPrefix = "skip"

	// SystemSeparator joins the distinct systems of a reconciled key
	SystemSeparator = ", "
)

// Identifier bases for synthetic ids
const (
	// FirstEntityID is the id given to the first resolved entity
	FirstEntityID = 1

	// FirstAttributeID is the id given to the first resolved attribute
	FirstAttributeID = 10000
)

// Limit constants
const (
	// DefaultTopEntities is how many entities the attribute count report keeps
	DefaultTopEntities = 15

	// MaxDescriptionLength is the description length shown in table output
	MaxDescriptionLength = 80
)

// File permission constants define standard Unix file permissions
const (
	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Logging constants
const (
	// LogRotationSizeMB is the maximum size of a log file before rotation
	LogRotationSizeMB = 10

	// LogRotationAge is the maximum age of log files before deletion
	LogRotationAge = 7 * 24 * time.Hour

	// LogRotationBackups is the maximum number of old log files to retain
	LogRotationBackups = 5
)
