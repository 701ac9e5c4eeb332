// Package dto contains Data Transfer Objects for HTTP request handling.
//
// DTOs keep the wire names of query parameters out of the service layer.
//
//	var q dto.OperandsQuery
//	if err := dto.ParseQuery(c, &q); err != nil {
//	    return err
//	}
package dto
