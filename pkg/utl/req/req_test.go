package req

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ib-77/utilitarian/pkg/utl"
	"github.com/ib-77/utilitarian/pkg/utl/logger"
)

func TestMain(m *testing.M) {
	logger.SetDefault(logger.FromZap(zap.NewNop()))
	os.Exit(m.Run())
}

func TestGetToken(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, GetToken(r))

	r.Header.Set("Authorization", "Bearer abc.def")
	assert.Equal(t, "abc.def", GetToken(r))

	r.Header.Set("Authorization", "Basic dXNlcg==")
	assert.Empty(t, GetToken(r))
}

func TestReqParse_Query(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/x?a=1&b=2&b=3", nil)
	assert.Equal(t, map[string]any{"a": "1", "b": []string{"2", "3"}}, ReqParse(r))
}

func TestReqParse_Body(t *testing.T) {
	t.Parallel()

	const body = `{"name":"bob","n":2}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	assert.Equal(t, map[string]any{"name": "bob", "n": 2.0}, ReqParse(r))

	again, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	assert.Equal(t, body, string(again))
}

func TestReqParse_QueryWinsOverBody(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/x?a=1", strings.NewReader(`{"b":2}`))
	assert.Equal(t, map[string]any{"a": "1"}, ReqParse(r))
}

func TestReqParse_RouteParams(t *testing.T) {
	t.Parallel()

	var got map[string]any
	router := chi.NewRouter()
	router.Get("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		got = ReqParse(r)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/users/42?x=1", nil))
	assert.Equal(t, map[string]any{"id": "42", "x": "1"}, got)
}

func TestTryParseBody(t *testing.T) {
	t.Parallel()

	assert.Equal(t, map[string]any{"a": 1.0}, TryParseBody([]byte(`{"a":1}`)))
	for _, in := range []string{"not json", "[1,2]", "null", ""} {
		assert.Equal(t, map[string]any{}, TryParseBody([]byte(in)), in)
	}
}

func TestHTTPError(t *testing.T) {
	t.Parallel()

	e := NewHTTPError("boom", 0)
	assert.Equal(t, http.StatusInternalServerError, e.Code)
	assert.Equal(t, "Internal Server Error", e.Status)
	assert.Equal(t, "boom", e.Error())
	assert.Equal(t, "boom", fmt.Sprintf("%s", e))
	assert.Equal(t, `"boom"`, fmt.Sprintf("%q", e))
	assert.NotEmpty(t, e.StackTrace())

	verbose := fmt.Sprintf("%+v", NewHTTPError("gone", http.StatusNotFound))
	assert.True(t, strings.HasPrefix(verbose, "404 Not Found: gone"), verbose)
	assert.Contains(t, verbose, "TestHTTPError")

	assert.Equal(t, http.StatusNotFound, CodeOf(errors.Wrap(NewHTTPError("x", http.StatusNotFound), "lookup")))
	assert.Equal(t, http.StatusInternalServerError, CodeOf(errors.New("plain")))

	assert.Empty(t, ParseError(nil))
	assert.Equal(t, "plain", ParseError(errors.New("plain")))
}

func TestResolveOrReject(t *testing.T) {
	t.Parallel()

	ok := ResolveOrReject(Envelope[int]{Success: true, Result: 7})
	require.True(t, ok.IsSuccess())
	assert.Equal(t, 7, ok.Result())

	failed := ResolveOrReject(Envelope[int]{Message: "missing", Code: http.StatusNotFound})
	require.True(t, failed.IsFailure())
	assert.EqualError(t, failed.Err(), "missing")
	assert.Equal(t, http.StatusNotFound, CodeOf(failed.Err()))
}

func upstream(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, srv *httptest.Server, payload Payload, formatter Formatter) any {
	t.Helper()

	r, err := http.NewRequest(http.MethodGet, srv.URL+"/things", nil)
	require.NoError(t, err)

	var got any
	Do(context.Background(), srv.Client(), r,
		RequestHandler(ResStub(func(v any) { got = v }), "fetch data", payload, formatter))
	return got
}

func TestRequestHandler(t *testing.T) {
	t.Parallel()

	srv := upstream(t, `{"success":true,"message":"hi","data":{"x":1}}`)

	assert.Equal(t, map[string]any{
		"success": true,
		"result":  map[string]any{"x": 1.0},
		"message": "Successfully able to fetch data",
		"code":    http.StatusOK,
	}, call(t, srv, Key("data"), nil))

	got := call(t, srv, Keys("data", "message"), nil).(map[string]any)
	assert.Equal(t, map[string]any{"data": map[string]any{"x": 1.0}, "message": "hi"}, got["result"])

	formatted := call(t, srv, WholeBody(), func(err error, success bool, code int, result any, message, def string) any {
		return fmt.Sprintf("%v %v %d %s %s", err, success, code, message, def)
	})
	assert.Equal(t, "<nil> true 200 hi fetch data", formatted)
}

func TestRequestHandler_Failure(t *testing.T) {
	t.Parallel()

	var got any
	handle := RequestHandler(ResStub(func(v any) { got = v }), "fetch data", WholeBody(), nil)
	handle(nil, errors.New("dial"))

	assert.Equal(t, map[string]any{
		"success": false,
		"result":  map[string]any{},
		"message": "Failed to fetch data",
		"code":    http.StatusInternalServerError,
	}, got)

	srv := upstream(t, `{"success":false,"message":"nope"}`)
	reply := call(t, srv, WholeBody(), nil).(map[string]any)
	assert.Equal(t, false, reply["success"])
	assert.Equal(t, "Failed to fetch data", reply["message"])
	assert.Equal(t, http.StatusOK, reply["code"])
}

func TestErrorHandler(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	ErrorHandler(HTTPResponder(rec))(NewHTTPError("missing", http.StatusNotFound))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]any{"code": 404.0, "message": "missing", "success": false}, body)

	assert.NotPanics(t, func() { ErrorHandler(nil)(errors.New("x")) })
}

func TestHTTPResponder_DefaultStatus(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	HTTPResponder(rec).JSON(Envelope[string]{Success: true, Result: "ok"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"result":"ok"}`, rec.Body.String())
}

func TestResolveAs(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	label := func(_ context.Context, n int) string { return fmt.Sprint("n=", n) }

	ok := ResolveAs(ctx, Envelope[int]{Success: true, Result: 3}, label)
	require.True(t, ok.IsSuccess())
	assert.Equal(t, "n=3", ok.Result())

	rejected := ResolveAs(ctx, Envelope[int]{Message: "gone", Code: http.StatusGone}, label)
	require.True(t, rejected.IsFailure())
	assert.Equal(t, http.StatusGone, CodeOf(rejected.Err()))
}

func TestRespond(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		outcome  utl.Result[int]
		wantCode int
		wantBody string
	}{
		{"success", utl.Success(7), http.StatusOK, `{"success":true,"result":7,"code":200}`},
		{"failure", utl.Fail[int](NewHTTPError("gone", http.StatusNotFound)), http.StatusNotFound,
			`{"code":404,"message":"gone","success":false}`},
		{"cancel", utl.Cancel[int](context.Canceled), http.StatusServiceUnavailable,
			`{"code":503,"message":"context canceled","success":false}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			Respond[int](HTTPResponder(rec), tt.outcome)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestDo_NilRequest(t *testing.T) {
	t.Parallel()

	var (
		gotResp *http.Response
		gotErr  error
	)
	assert.NotPanics(t, func() {
		Do(context.Background(), nil, nil, func(resp *http.Response, err error) {
			gotResp, gotErr = resp, err
		})
	})
	assert.Nil(t, gotResp)
	assert.EqualError(t, gotErr, "missing request")
}
