package server

import "github.com/labstack/echo/v4"

type validatable interface {
	Validate() error
}

func BindRequest[T validatable](c echo.Context) (T, error) {
	var req T
	if err := c.Bind(&req); err != nil {
		return req, err
	}
	if err := req.Validate(); err != nil {
		return req, err
	}
	return req, nil
}

func SetResponse[T any](c echo.Context, code int, data T) error {
	return c.JSON(code, &Response[T]{
		Data: data,
	})
}

func SetResponseError(c echo.Context, code int, err HTTPError) error {
	return c.JSON(code, &ResponseError{
		Error: err,
	})
}
