package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	apperrors "github.com/umalmyha/taskdesk/internal/errors"
	"github.com/umalmyha/taskdesk/internal/validation"
)

const internalErrMsg = "Internal server error"

type identifier struct {
	ID string `json:"id" validate:"required,uuid"`
}

type errorBody struct {
	Error string `json:"error"`
}

type okBody struct {
	Ok bool `json:"ok"`
}

// ErrorHandler is echo.HTTPErrorHandler which maps application errors to status codes
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, body := errorResponse(err)
	if status >= http.StatusInternalServerError {
		req := c.Request()
		logrus.WithFields(logrus.Fields{
			"method": req.Method,
			"uri":    req.RequestURI,
		}).Errorf("error occurred on http request processing - %v", err)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, body)
	}

	if writeErr != nil {
		logrus.Errorf("failed to write error response - %v", writeErr)
	}
}

func errorResponse(err error) (int, any) {
	var pldErr *validation.PayloadError
	if errors.As(err, &pldErr) {
		return http.StatusBadRequest, pldErr
	}

	var notFoundErr *apperrors.EntryNotFoundErr
	if errors.As(err, &notFoundErr) {
		return http.StatusNotFound, &errorBody{Error: notFoundErr.Error()}
	}

	var conflictErr *apperrors.ConflictErr
	if errors.As(err, &conflictErr) {
		return http.StatusConflict, &errorBody{Error: conflictErr.Error()}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Code >= http.StatusInternalServerError {
			return httpErr.Code, &errorBody{Error: internalErrMsg}
		}
		return httpErr.Code, &errorBody{Error: httpErrMessage(httpErr)}
	}

	return http.StatusInternalServerError, &errorBody{Error: internalErrMsg}
}

func httpErrMessage(e *echo.HTTPError) string {
	if msg, ok := e.Message.(string); ok {
		return msg
	}
	return fmt.Sprint(e.Message)
}
