package element

import "fmt"

type DimensionError struct {
	Operation  string
	Rows, Cols int
	WantRows   int
	WantCols   int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: have a %dx%d matrix, need %dx%d",
		e.Operation, e.Rows, e.Cols, e.WantRows, e.WantCols)
}

// NumericDegeneracyError reports a Jacobian determinant that is not a finite positive number
type NumericDegeneracyError struct {
	ElementID int
	Point     int
	Det       float64
}

func (e *NumericDegeneracyError) Error() string {
	return fmt.Sprintf("degenerate element %d: detJ = %v at integration point %d",
		e.ElementID, e.Det, e.Point)
}
