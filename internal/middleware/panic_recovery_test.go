package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lifehub/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type PanicRecoverySuite struct {
	suite.Suite
	e *echo.Echo
}

func TestPanicRecovery(t *testing.T) {
	suite.Run(t, new(PanicRecoverySuite))
}

func (s *PanicRecoverySuite) SetupTest() {
	s.e = echo.New()
	s.e.Use(RequestID(), PanicRecovery())

	s.e.GET("/ledger/chart", func(c echo.Context) error {
		var pivot map[string]int64
		pivot["2024-04"]++
		return nil
	})
	s.e.GET("/messages/inbox", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]int{"unread": 0})
	})
	s.e.GET("/ws", func(c echo.Context) error {
		c.Response().WriteHeader(http.StatusSwitchingProtocols)
		panic("stream closed mid-frame")
	})
}

func (s *PanicRecoverySuite) get(path, traceID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if traceID != "" {
		req.Header.Set(TraceIDHeader, traceID)
	}
	rec := httptest.NewRecorder()
	s.NotPanics(func() { s.e.ServeHTTP(rec, req) })
	return rec
}

func (s *PanicRecoverySuite) TestHandlerPanicBecomesSystemError() {
	rec := s.get("/ledger/chart", "kakeibo-trace-1")

	s.Equal(http.StatusInternalServerError, rec.Code)

	var body errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(string(errors.SystemInternalError), body.Error.Code)
	s.Equal("kakeibo-trace-1", body.Error.TraceID)
	s.Equal("kakeibo-trace-1", rec.Header().Get(TraceIDHeader))
}

func (s *PanicRecoverySuite) TestGeneratedTraceIDIsReported() {
	rec := s.get("/ledger/chart", "")

	var body errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.NotEmpty(body.Error.TraceID)
	s.Equal(rec.Header().Get(TraceIDHeader), body.Error.TraceID)
}

func (s *PanicRecoverySuite) TestWithoutRequestIDTraceIsUnknown() {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/events", nil), rec)

	handler := PanicRecovery()(func(echo.Context) error { panic(42) })
	s.NotPanics(func() { _ = handler(c) })

	var body errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("unknown", body.Error.TraceID)
}

func (s *PanicRecoverySuite) TestCommittedStreamIsLeftAlone() {
	rec := s.get("/ws", "")

	s.Equal(http.StatusSwitchingProtocols, rec.Code)
	s.Empty(rec.Body.String())
}

func (s *PanicRecoverySuite) TestNormalResponsePassesThrough() {
	rec := s.get("/messages/inbox", "")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"unread":0}`, rec.Body.String())
}
