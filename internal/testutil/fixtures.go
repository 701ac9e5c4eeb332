package testutil

import (
	"math"

	"github.com/duncancan/sit323-2024t1-4.2c/internal/domain"
)

// Calculation is a request with its expected envelope
type Calculation struct {
	Name      string
	Operation domain.Operation
	N1        string
	N2        string
	// Want is the expected data value; NaN means data must be null
	Want float64
}

// Query returns the query string for the calculation
func (c Calculation) Query() string {
	return c.Operation.Path() + "?n1=" + c.N1 + "&n2=" + c.N2
}

// SuccessfulCalculations returns one happy path case per operation plus a
// few edge cases with non-finite results.
func SuccessfulCalculations() []Calculation {
	return []Calculation{
		{Name: "add", Operation: domain.OperationAdd, N1: "2", N2: "3", Want: 5},
		{Name: "add decimals", Operation: domain.OperationAdd, N1: "1.5", N2: "2.25", Want: 3.75},
		{Name: "subtract", Operation: domain.OperationSubtract, N1: "10", N2: "4", Want: 6},
		{Name: "subtract negative result", Operation: domain.OperationSubtract, N1: "4", N2: "10", Want: -6},
		{Name: "multiply", Operation: domain.OperationMultiply, N1: "6", N2: "7", Want: 42},
		{Name: "divide", Operation: domain.OperationDivide, N1: "7", N2: "2", Want: 3.5},
		{Name: "power", Operation: domain.OperationPower, N1: "2", N2: "10", Want: 1024},
		{Name: "root", Operation: domain.OperationRoot, N1: "27", N2: "3", Want: 3},
		{Name: "square root", Operation: domain.OperationRoot, N1: "16", N2: "2", Want: 4},
		{Name: "mod", Operation: domain.OperationMod, N1: "10", N2: "3", Want: 1},
		{Name: "mod negative dividend", Operation: domain.OperationMod, N1: "-7", N2: "3", Want: -1},
		{Name: "mod by zero", Operation: domain.OperationMod, N1: "5", N2: "0", Want: math.NaN()},
		{Name: "odd root of negative", Operation: domain.OperationRoot, N1: "-8", N2: "3", Want: math.NaN()},
	}
}

// FailedCalculation is a request rejected by validation
type FailedCalculation struct {
	Name      string
	Operation domain.Operation
	Query     string
	Status    int
	Msg       string
}

// FailedCalculations returns rejected requests with the status expected
// when compat mode is off and the envelope message.
func FailedCalculations() []FailedCalculation {
	return []FailedCalculation{
		{
			Name:      "n1 not a number",
			Operation: domain.OperationAdd,
			Query:     "/add?n1=foo&n2=2",
			Status:    400,
			Msg:       "Error: Invalid number 'foo' received for parameter n1.",
		},
		{
			Name:      "n2 missing",
			Operation: domain.OperationMultiply,
			Query:     "/multiply?n1=3",
			Status:    400,
			Msg:       "Error: Invalid number '' received for parameter n2.",
		},
		{
			Name:      "n1 reported before n2",
			Operation: domain.OperationSubtract,
			Query:     "/subtract?n1=x&n2=y",
			Status:    400,
			Msg:       "Error: Invalid number 'x' received for parameter n1.",
		},
		{
			Name:      "divide by zero",
			Operation: domain.OperationDivide,
			Query:     "/divide?n1=1&n2=0",
			Status:    400,
			Msg:       "Error: Parameter n2 is zero. Unable to divide by zero",
		},
		{
			Name:      "even root of negative",
			Operation: domain.OperationRoot,
			Query:     "/root?n1=-4&n2=2",
			Status:    400,
			Msg:       "Error: Parameter n2 is an even root index and parameter n1 is negative. Invalid even root of negative number",
		},
	}
}
