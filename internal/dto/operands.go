package dto

// OperandsQuery carries the raw n1 and n2 query values of a calculator
// request. Values are kept as text; numeric parsing belongs to the service
// so that its error messages can quote what the caller sent.
type OperandsQuery struct {
	N1 string `query:"n1"`
	N2 string `query:"n2"`
}
