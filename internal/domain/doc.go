// Package domain contains the core types of the calculator service.
//
// This package defines:
//   - Operation, the closed set of binary arithmetic operations
//   - Operands, the parsed pair of inputs an operation is applied to
//   - Envelope, the JSON wrapper returned by every endpoint
//
// # Operations
//
// Every operation is a pure function of two float64 values. The catalogue
// is fixed at compile time and is never altered at runtime:
//
//	add, subtract, multiply, divide, power, root, mod
//
// Each operation carries a guard that runs before evaluation. Only divide
// (zero divisor) and root (even index of a negative radicand) reject input;
// every other result, including NaN and Inf, is passed through unchanged.
package domain
