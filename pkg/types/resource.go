package types

import "slices"

// TableName identifies one of the tables carried by a result bundle.
// It is used for table selection on the command line and as sheet names on export.
type TableName string

const (
	// TableEntities is the resolved entity table.
	TableEntities TableName = "entities"

	// TableAttributes is the resolved attribute table.
	TableAttributes TableName = "attributes"

	// TableRelationships is the resolved relationship table.
	TableRelationships TableName = "relationships"

	// TableObjectLabels is the reconciled object label table.
	TableObjectLabels TableName = "object_labels"

	// TableAttributeLabels is the reconciled attribute label table.
	TableAttributeLabels TableName = "attribute_labels"
)

// String returns the string representation of a table name.
func (tn TableName) String() string {
	return string(tn)
}

// TableNames returns all bundle tables in export order.
func TableNames() []TableName {
	return []TableName{
		TableEntities,
		TableAttributes,
		TableRelationships,
		TableObjectLabels,
		TableAttributeLabels,
	}
}

// IsValid returns true if the TableName is one of the defined constants.
func (tn TableName) IsValid() bool {
	return slices.Contains(TableNames(), tn)
}
