// Package httpvalidate connects validator rules to net/http handlers.
//
// Handle decodes a JSON request body, checks it with a rule and calls the
// wrapped handler only with a valid value. Validation failures are answered
// with 422 and a body listing the violation messages per field:
//
//	{
//	  "code": "validation_error",
//	  "error": {
//	    "code": "validation_error",
//	    "message": "validation failed",
//	    "details": {"email": ["must be a valid email address"]}
//	  }
//	}
//
// Recover turns panics into 500 responses. Panics raised by misused rules
// (see validator.IsUsageError) are logged as such.
package httpvalidate
