package errors_test

import (
	"fmt"

	"github.com/agentstation/bimmap/pkg/errors"
)

// Example demonstrates basic error creation and checking.
func Example() {
	err := &errors.NotFoundError{
		Resource: "sheet",
		ID:       "Linear",
	}

	if errors.IsNotFound(err) {
		fmt.Println("Resource not found")
	}

	// Output: Resource not found
}

// Example_schemaError demonstrates reacting to a sheet without an expected column.
func Example_schemaError() {
	err := fmt.Errorf("loading entities: %w", errors.NewSchemaError("Entity", "Name"))

	switch {
	case errors.IsLoadError(err):
		fmt.Println("fix the workbook path")
	case errors.IsSchemaError(err):
		fmt.Println("fix the sheet columns")
	}

	// Output: fix the sheet columns
}
