package domain

import "math"

// Operation represents one of the fixed binary arithmetic operations
type Operation string

const (
	OperationAdd      Operation = "add"
	OperationSubtract Operation = "subtract"
	OperationMultiply Operation = "multiply"
	OperationDivide   Operation = "divide"
	OperationPower    Operation = "power"
	OperationRoot     Operation = "root"
	OperationMod      Operation = "mod"
)

// Operations lists every operation in route registration order
var Operations = []Operation{
	OperationAdd,
	OperationSubtract,
	OperationMultiply,
	OperationDivide,
	OperationPower,
	OperationRoot,
	OperationMod,
}

// IsValid checks if the operation is part of the catalogue
func (o Operation) IsValid() bool {
	switch o {
	case OperationAdd, OperationSubtract, OperationMultiply, OperationDivide,
		OperationPower, OperationRoot, OperationMod:
		return true
	}
	return false
}

// Path returns the HTTP route the operation is served on
func (o Operation) Path() string {
	return "/" + string(o)
}

// Verb returns the noun used in log lines, e.g. "addition"
func (o Operation) Verb() string {
	switch o {
	case OperationAdd:
		return "addition"
	case OperationSubtract:
		return "subtraction"
	case OperationMultiply:
		return "multiplication"
	case OperationDivide:
		return "division"
	case OperationPower:
		return "exponentiation"
	case OperationRoot:
		return "root extraction"
	case OperationMod:
		return "modulo"
	}
	return string(o)
}

// Apply evaluates the operation without running its guard.
// Unknown operations yield NaN.
func (o Operation) Apply(a, b float64) float64 {
	switch o {
	case OperationAdd:
		return a + b
	case OperationSubtract:
		return a - b
	case OperationMultiply:
		return a * b
	case OperationDivide:
		return a / b
	case OperationPower:
		return math.Pow(a, b)
	case OperationRoot:
		return math.Pow(a, 1/b)
	case OperationMod:
		return math.Mod(a, b)
	}
	return math.NaN()
}

// Operands holds the two parsed inputs of a calculation
type Operands struct {
	A float64
	B float64
}

// IsEvenInteger reports whether f is a finite even integer. Zero is even.
func IsEvenInteger(f float64) bool {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return false
	}
	return math.Mod(f, 2) == 0
}
