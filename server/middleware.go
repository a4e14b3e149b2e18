package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/cohesivestack/valgo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/AbaydullinAA/Project-Module2/errtag"
	"github.com/AbaydullinAA/Project-Module2/log"
	"github.com/AbaydullinAA/Project-Module2/valgoutil"
)

func newRequestLoggerConfig(logger log.Logger) middleware.RequestLoggerConfig {
	return middleware.RequestLoggerConfig{
		LogValuesFunc:    logValuesFunc(logger),
		LogLatency:       true,
		LogRemoteIP:      true,
		LogMethod:        true,
		LogURI:           true,
		LogStatus:        true,
		LogError:         true,
		LogContentLength: true,
		LogResponseSize:  true,
	}
}

func logValuesFunc(logger log.Logger) func(c echo.Context, v middleware.RequestLoggerValues) error {
	return func(c echo.Context, v middleware.RequestLoggerValues) error {
		if v.Method == http.MethodOptions {
			return nil
		}

		meta := map[string]any{
			"time":          v.StartTime.UTC(),
			"method":        v.Method,
			"uri":           v.URI,
			"status":        v.Status,
			"latency_ms":    v.Latency.Milliseconds(),
			"request_size":  v.ContentLength,
			"response_size": v.ResponseSize,
			"remote_ip":     v.RemoteIP,
		}

		level := slog.LevelInfo
		message := "request"
		if v.Error != nil {
			message = "request error"
			level = slog.LevelError
			var herr HTTPError
			if errors.As(v.Error, &herr) {
				meta["http_error"] = herr.Error()
				meta["error"] = herr.Internal
			} else {
				meta["error"] = v.Error.Error()
			}
		}

		l := logger
		for _, key := range sortedMetaKeys(meta) {
			l = l.With(key, meta[key])
		}

		l.Log(c.Request().Context(), level, message)

		return v.Error
	}
}

// errorTransformMiddleware maps domain error tags, valgo validation errors,
// and echo errors onto the JSON error envelope.
func errorTransformMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := next(c)
		if err == nil {
			return nil
		}

		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			msg := http.StatusText(echoErr.Code)
			if echoErr.Message != nil {
				msg = fmt.Sprintf("%v", echoErr.Message)
			}
			return HTTPError{
				Code:     echoErr.Code,
				Internal: echoErr.Error(),
				Message:  msg,
			}
		}

		var verr *valgo.Error
		var herr errtag.Tagger

		switch {
		case errors.As(err, &verr):
			// Malformed request
			details := valgoutil.GetDetails(verr)
			formattedErr := fmt.Errorf("validate request: %s", strings.Join(details, "; "))
			herr = errtag.Tag[errtag.CipherUsage](formattedErr, errtag.WithDetails(details...))
		case !errors.As(err, &herr):
			// Unexpected error
			herr = errtag.Tag[errtag.Internal](err)
		}

		return HTTPError{
			Code:     herr.Code(),
			Kind:     herr.Kind(),
			Internal: herr.Error(),
			Message:  herr.Msg(),
			Details:  herr.Details(),
		}
	}
}

func httpErrorHandlerFunc(logger log.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		var herr HTTPError
		if !errors.As(err, &herr) {
			herr.Code = http.StatusInternalServerError
			herr.Message = http.StatusText(http.StatusInternalServerError)
			if err != nil { // safeguard
				herr.Internal = err.Error()
			}
		}
		if err = SetResponseError(c, herr.Code, herr); err != nil {
			logger.Error("failed to set response error", "error", err, "http_error", herr)
		}
	}
}

func sortedMetaKeys(meta map[string]any) []string {
	keys := make([]string, 0, len(meta))
	for key := range meta {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
