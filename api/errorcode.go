package api

import (
	"github.com/community-help/portal-api/access"
	"github.com/community-help/portal-api/store"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrAccountTaken.Error(),
		1101: store.ErrAccountNotFound.Error(),
		1102: access.ErrBlocked.Error(),
		1103: "invalid contact info or password",
		1104: "invalid or expired OTP",

		1200: store.ErrHelpNotFound.Error(),
		1201: store.ErrHelpAlreadyProcessed.Error(),
		1202: access.ErrForbidden.Error(),
		1203: access.ErrChatNotAvailable.Error(),
		1204: "invalid status value",

		1300: store.ErrReportNotFound.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountTaken       = errorJSON(1100)
	errorAccountNotFound    = errorJSON(1101)
	errorAccountBlocked     = errorJSON(1102)
	errorInvalidCredentials = errorJSON(1103)
	errorInvalidOTP         = errorJSON(1104)

	errorRequestNotFound  = errorJSON(1200)
	errorRequestProcessed = errorJSON(1201)
	errorNotAuthorized    = errorJSON(1202)
	errorChatNotAvailable = errorJSON(1203)
	errorInvalidStatus    = errorJSON(1204)

	errorReportNotFound = errorJSON(1300)
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
