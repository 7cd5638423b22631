// Package datamodel defines the typed rows that flow through the bimmap pipeline.
//
// Raw rows come straight from the workbooks with every cell optional. Reconciled
// labels come from the central document. Resolved rows are the normalized
// entity, attribute and relationship tables handed to reporting and diagram
// collaborators inside a Bundle.
//
// Struct tags carry the column names of the original spreadsheet tables so that
// JSON, YAML and exported workbooks bind to the same names.
package datamodel
