// Package errors provides custom error types for the bimmap system.
// These errors enable programmatic error checking across the pipeline stages
// and carry enough context (file, sheet, column) for a caller to act on them.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// As and Is forward to the standard library so callers need one errors import.
var (
	As = errors.As
	Is = errors.Is
)

// Common sentinel errors for the bimmap system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrLoad indicates that a workbook or one of its sheets could not be read
	ErrLoad = errors.New("load failed")

	// ErrReconcile indicates that the central document lacks a required column
	ErrReconcile = errors.New("reconcile failed")

	// ErrSchema indicates that a loaded sheet lacks an expected column
	ErrSchema = errors.New("schema mismatch")
)

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// LoadError represents a failure to open a workbook or read one of its sheets.
// Sheet is empty when the workbook itself could not be opened.
type LoadError struct {
	File  string
	Sheet string
	Err   error
}

// Error implements the error interface
func (e *LoadError) Error() string {
	if e.Sheet != "" {
		return fmt.Sprintf("load error for sheet %q in %s: %v", e.Sheet, e.File, e.Err)
	}
	return fmt.Sprintf("load error for %s: %v", e.File, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *LoadError) Is(target error) bool {
	return target == ErrLoad
}

// NewLoadError creates a new LoadError
func NewLoadError(file, sheet string, err error) *LoadError {
	return &LoadError{
		File:  file,
		Sheet: sheet,
		Err:   err,
	}
}

// ReconcileError represents a central document sheet missing a column the
// reconciler needs.
type ReconcileError struct {
	Sheet  string
	Column string
}

// Error implements the error interface
func (e *ReconcileError) Error() string {
	if e.Sheet != "" {
		return fmt.Sprintf("required column %q not found in sheet %q", e.Column, e.Sheet)
	}
	return fmt.Sprintf("required column %q not found", e.Column)
}

// Is implements errors.Is support
func (e *ReconcileError) Is(target error) bool {
	return target == ErrReconcile
}

// NewReconcileError creates a new ReconcileError
func NewReconcileError(sheet, column string) *ReconcileError {
	return &ReconcileError{Sheet: sheet, Column: column}
}

// SchemaError represents a loaded sheet missing an expected column.
type SchemaError struct {
	Sheet  string
	Column string
}

// Error implements the error interface
func (e *SchemaError) Error() string {
	return fmt.Sprintf("sheet %q has no column %q", e.Sheet, e.Column)
}

// Is implements errors.Is support
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}

// NewSchemaError creates a new SchemaError
func NewSchemaError(sheet, column string) *SchemaError {
	return &SchemaError{Sheet: sheet, Column: column}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsLoadError checks if an error is a workbook load error
func IsLoadError(err error) bool {
	return errors.Is(err, ErrLoad)
}

// IsReconcileError checks if an error is a central document reconcile error
func IsReconcileError(err error) bool {
	return errors.Is(err, ErrReconcile)
}

// IsSchemaError checks if an error is a sheet schema error
func IsSchemaError(err error) bool {
	return errors.Is(err, ErrSchema)
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "open", "close"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// ResourceError represents an error during resource operations
type ResourceError struct {
	Operation string // "load", "create", "render", "export"
	Resource  string // "config", "bundle", "diagram", "workbook"
	ID        string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ResourceError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("failed to %s %s %s: %s", e.Operation, e.Resource, e.ID, e.Message)
	}
	return fmt.Sprintf("failed to %s %s: %s", e.Operation, e.Resource, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ResourceError) Unwrap() error {
	return e.Err
}

// NewResourceError creates a new ResourceError
func NewResourceError(operation, resource, id string, err error) *ResourceError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ResourceError{
		Operation: operation,
		Resource:  resource,
		ID:        id,
		Message:   message,
		Err:       err,
	}
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapResource wraps an error as a ResourceError
func WrapResource(operation, resource, id string, err error) error {
	if err == nil {
		return nil
	}
	return NewResourceError(operation, resource, id, err)
}

// WrapLoad wraps an error as a LoadError
func WrapLoad(file, sheet string, err error) error {
	if err == nil {
		return nil
	}
	return NewLoadError(file, sheet, err)
}
