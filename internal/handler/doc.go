// Package handler contains HTTP request handlers for the calculator service.
//
// Handlers are the entry point for HTTP requests, responsible for:
//   - Query parsing
//   - Calling the calculator service
//   - Response envelope formatting
//   - Error response mapping
//
// # Route Organization
//
// Routes are registered at the root:
//   - /add, /subtract, /multiply, /divide, /power, /root, /mod - arithmetic
//   - /operations - list of served operations
//   - /health, /livez, /readyz, /version - health checks
//   - /openapi.yaml, /openapi.json, /docs, /redoc - API documentation
//
// # Error Handling
//
// Arithmetic failures are rendered as {"statuscode": ..., "msg": "Error: ..."}.
// By default the status is always 500; with compat mode off the apperrors
// status code (400 for bad input) is used instead.
//
// # Thread Safety
//
// All handlers are safe for concurrent use.
package handler
