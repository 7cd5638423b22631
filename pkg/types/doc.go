// Package types provides shared type definitions used across the bimmap packages.
//
// This package contains fundamental types like Null, SourceID and TableName that are
// referenced by multiple packages (workbook, reconcile, resolve, report) to avoid
// import cycles while keeping row definitions explicit.
//
// The package has zero dependencies and serves as a foundation for the row types.
//
//nolint:revive // Package name 'types' is appropriate for common type definitions
package types
