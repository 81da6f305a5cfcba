package api

import (
	"github.com/bitmark-inc/relief-api/lifecycle"
)

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1004: "invalid actor",
		1005: "the actor role is not allowed to perform this operation",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1200: lifecycle.ErrNotFound.Error(),
		1201: lifecycle.ErrInvalidTransition.Error(),
		1202: lifecycle.ErrConcurrentConflict.Error(),
		1203: lifecycle.ErrValidation.Error(),
	}

	errorInternalServer = errorJSON(999)

	errorInvalidActor  = errorJSON(1004)
	errorForbiddenRole = errorJSON(1005)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorRequestNotExist    = errorJSON(1200)
	errorInvalidTransition  = errorJSON(1201)
	errorConcurrentConflict = errorJSON(1202)
	errorInvalidHelpRequest = errorJSON(1203)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// withDetail keeps the code of a standardized error object and replaces its
// message by the detailed one of err
func withDetail(obj ErrorResponse, err error) ErrorResponse {
	obj.Message = err.Error()
	return obj
}
