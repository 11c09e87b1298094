package handler

import (
	"github.com/labstack/echo/v4"

	"storefront/internal/errors"
)

// errorResponse converts a domain error into an echo error carrying the
// standard ErrorResponse body. The domain error is kept as the internal
// cause for request logging.
func errorResponse(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
}

// bindObject decodes the request body as a JSON object of arbitrary shape.
// Anything else, including an empty body or null, is ErrInvalidPayload.
func bindObject(c echo.Context) (map[string]interface{}, error) {
	var payload map[string]interface{}
	if err := c.Echo().JSONSerializer.Deserialize(c, &payload); err != nil {
		return nil, errors.ErrInvalidPayload
	}
	if payload == nil {
		return nil, errors.ErrInvalidPayload
	}
	return payload, nil
}
