//nolint:revive // Package types provides common type definitions
package types

import "slices"

// SourceID identifies one of the workbooks feeding the pipeline.
type SourceID string

// String returns the string representation of a source ID.
func (id SourceID) String() string {
	return string(id)
}

// Workbook source identifiers.
const (
	// VPExportID identifies the data-model export workbook (Entity, Column, Foreign Key sheets).
	VPExportID SourceID = "vp_export"

	// CentralDocID identifies the central document mapping BIM objects to source systems.
	CentralDocID SourceID = "central_doc"
)

// SourceIDs returns all available source identifiers.
func SourceIDs() []SourceID {
	return []SourceID{
		VPExportID,
		CentralDocID,
	}
}

// IsValid returns true if the SourceID is one of the defined constants.
func (id SourceID) IsValid() bool {
	return slices.Contains(SourceIDs(), id)
}
