package sweep

// AssertionError reports a broken caller contract, such as a coordinate
// outside the board. The engine panics with it instead of limping on.
type AssertionError struct {
	message string
}

func (e AssertionError) Error() string {
	return e.message
}
