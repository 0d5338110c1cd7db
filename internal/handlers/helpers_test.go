package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func jsonBody(v interface{}) io.Reader {
	if s, ok := v.(string); ok {
		return strings.NewReader(s)
	}
	body, _ := json.Marshal(v)
	return bytes.NewReader(body)
}

// newRequest builds a JSON request; body may be nil, a raw string or a value to marshal.
func newRequest(method, target string, body interface{}) *http.Request {
	var reader io.Reader
	if body != nil {
		reader = jsonBody(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

// newMultipartRequest writes fields and one file per entry of files under fileField.
func newMultipartRequest(method, target string, fields map[string]string, fileField string, files map[string]string) *http.Request {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		_ = w.WriteField(k, v)
	}
	for name, content := range files {
		part, _ := w.CreateFormFile(fileField, name)
		_, _ = part.Write([]byte(content))
	}
	_ = w.Close()

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

// authedContext returns a context as RequireAuth leaves it, with path params set.
func authedContext(e *echo.Echo, req *http.Request, userID uuid.UUID, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != uuid.Nil {
		c.Set("user_id", userID)
	}
	var names, values []string
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	if len(names) > 0 {
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	return c, rec
}

func decodeError(rec *httptest.ResponseRecorder) ErrorResponse {
	var resp ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	return resp
}

// decodeData unmarshals the data member of a success envelope into out.
func decodeData(rec *httptest.ResponseRecorder, out interface{}) error {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		return err
	}
	return json.Unmarshal(envelope.Data, out)
}
