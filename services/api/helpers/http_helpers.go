package helpers

import (
	"net/http"
	"strconv"

	"auction-house/internal/auctionerrors"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

// BindJSON decodes the request body into dst. A malformed body is logged and
// reported as false so the service can decide between Unauthorized and
// InvalidRequest.
func BindJSON(c *gin.Context, handlerName string, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
		return false
	}
	return true
}

// ParamID reads a positive numeric path parameter; anything else yields 0
func ParamID(c *gin.Context, name string) uint {
	id, err := strconv.ParseUint(c.Param(name), 10, 0)
	if err != nil {
		return 0
	}
	return uint(id)
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	message := auctionerrors.Public(err).Error()
	switch auctionerrors.KindOf(err) {
	case auctionerrors.KindUnauthorized:
		return http.StatusUnauthorized, message
	case auctionerrors.KindInvalidRequest, auctionerrors.KindValidation:
		return http.StatusBadRequest, message
	case auctionerrors.KindNotFound:
		return http.StatusNotFound, message
	case auctionerrors.KindConflict:
		return http.StatusConflict, message
	default:
		return http.StatusInternalServerError, auctionerrors.ErrInternal.Error()
	}
}

// RespondError writes the public form of err and logs the full chain.
// Server-side failures are logged as errors, caller mistakes as warnings.
func RespondError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, message)

	if fields == nil {
		fields = map[string]any{}
	}
	fields["status"] = status
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request rejected", fields)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
