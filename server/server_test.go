package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbaydullinAA/Project-Module2/errtag"
	"github.com/AbaydullinAA/Project-Module2/log"
	"github.com/AbaydullinAA/Project-Module2/testutil"
)

func TestServer_NewServer(t *testing.T) {
	srv, err := NewServer(testutil.GetFreePort(t),
		WithLogger(log.NewLogger(log.WithNop())),
		WithCORS("localhost:9999"),
		WithRequestTimeout(time.Second),
	)
	require.NoError(t, err)

	go srv.Start()
	defer srv.Stop(context.Background())
	err = srv.WaitHealthy(50, 10*time.Millisecond)
	require.NoError(t, err)

	res := testutil.Get[HealthResponse](t, srv.Address()+"/healthz")
	assert.Equal(t, http.StatusText(http.StatusOK), res.Status)
}

func TestServer_ErrorTransform(t *testing.T) {
	srv, err := NewServer(testutil.GetFreePort(t), WithLogger(log.NewLogger(log.WithNop())))
	require.NoError(t, err)

	srv.Add(http.MethodGet, "/tagged", func(c echo.Context) error {
		return errtag.NewTagged[errtag.Alphabet]("alphabet contains duplicate characters")
	})
	srv.Add(http.MethodGet, "/untagged", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "teapot")
	})

	go srv.Start()
	defer srv.Stop(context.Background())
	require.NoError(t, srv.WaitHealthy(50, 10*time.Millisecond))

	httpRes, err := testutil.DefaultClient.Get(srv.Address() + "/tagged")
	require.NoError(t, err)
	httpRes.Body.Close()
	assert.Equal(t, http.StatusBadRequest, httpRes.StatusCode)

	httpRes, err = testutil.DefaultClient.Get(srv.Address() + "/untagged")
	require.NoError(t, err)
	httpRes.Body.Close()
	assert.Equal(t, http.StatusTeapot, httpRes.StatusCode)
}
