package req

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/ib-77/utilitarian/pkg/utl"
	"github.com/ib-77/utilitarian/pkg/utl/logger"
	"github.com/ib-77/utilitarian/pkg/utl/obj"
)

// Responder is the part of a response a handler writes to.
type Responder interface {
	Status(code int)
	JSON(v any)
}

type httpResponder struct {
	w    http.ResponseWriter
	code int
}

// HTTPResponder writes JSON replies to w. The status set with Status is sent
// with the JSON body; without one the reply is 200.
func HTTPResponder(w http.ResponseWriter) Responder {
	return &httpResponder{w: w}
}

func (r *httpResponder) Status(code int) {
	r.code = code
}

func (r *httpResponder) JSON(v any) {
	r.w.Header().Set("Content-Type", "application/json")
	if r.code != 0 {
		r.w.WriteHeader(r.code)
	}
	if err := json.NewEncoder(r.w).Encode(v); err != nil {
		logger.Default().Error(err)
	}
}

type stub struct {
	json func(v any)
}

// ResStub is a Responder that ignores the status and hands the body to fn.
func ResStub(fn func(v any)) Responder {
	return stub{json: fn}
}

func (s stub) Status(int) {}

func (s stub) JSON(v any) {
	if s.json != nil {
		s.json(v)
	}
}

// Envelope is the JSON reply shape exchanged between services.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Result  T      `json:"result,omitempty"`
	Code    int    `json:"code,omitempty"`
}

// ResolveOrReject turns an envelope into a settled result; an unsuccessful
// envelope becomes an HTTPError with its message and code.
func ResolveOrReject[T any](env Envelope[T]) utl.Result[T] {
	if env.Success {
		return utl.Success(env.Result)
	}
	return utl.Fail[T](NewHTTPError(env.Message, env.Code))
}

// ResolveAs resolves env and maps a successful result through fn.
func ResolveAs[T, Out any](ctx context.Context, env Envelope[T], fn func(ctx context.Context, r T) Out) utl.Result[Out] {
	return utl.Map(ctx, ResolveOrReject(env), fn)
}

// Respond writes a settled outcome. A success is sent as a 200 Envelope, a
// cancellation as a 503 and a failure through ErrorHandler.
func Respond[T any](res Responder, outcome utl.WithCancel[T]) {
	switch {
	case outcome.IsSuccess():
		res.Status(http.StatusOK)
		res.JSON(Envelope[T]{Success: true, Result: outcome.Result(), Code: http.StatusOK})
	case outcome.IsCancel():
		ErrorHandler(res)(NewHTTPError(ParseError(outcome.Err()), http.StatusServiceUnavailable))
	default:
		ErrorHandler(res)(outcome.Err())
	}
}

// Payload selects what part of a reply body is passed on.
type Payload struct {
	key  string
	keys []string
}

// WholeBody passes the whole body on.
func WholeBody() Payload { return Payload{} }

// Key passes on the value stored under key.
func Key(key string) Payload { return Payload{key: key} }

// Keys passes on a map with only the given keys.
func Keys(keys ...string) Payload { return Payload{keys: keys} }

func (p Payload) pick(body map[string]any) any {
	switch {
	case p.key != "":
		return body[p.key]
	case p.keys != nil:
		return obj.Pick(body, p.keys...)
	}
	return body
}

// Formatter builds a custom reply from an upstream call.
type Formatter func(err error, success bool, statusCode int, result any, message, defaultMessage string) any

// RequestHandler returns a callback for the outcome of an upstream request.
// It logs the call and writes either formatter's reply or the default
// {success, result, message, code} reply to res.
func RequestHandler(res Responder, defaultMessage string, payload Payload, formatter Formatter) func(resp *http.Response, err error) {
	start := time.Now()
	log := logger.Default()

	return func(resp *http.Response, err error) {
		elapsed := time.Since(start)

		var (
			body       = map[string]any{}
			statusCode int
		)
		if resp != nil {
			statusCode = resp.StatusCode
			if resp.Body != nil {
				raw, readErr := io.ReadAll(resp.Body)
				resp.Body.Close()
				if readErr == nil {
					body = TryParseBody(raw)
				}
			}
		}

		success, _ := body["success"].(bool)
		message, _ := body["message"].(string)
		result := payload.pick(body)

		if err != nil {
			log.Error(err)
		} else if resp != nil && resp.Request != nil {
			log.Info(fmt.Sprintf("External %s request to '%s' completed in %d milliseconds",
				resp.Request.Method, resp.Request.URL.Path, elapsed.Milliseconds()))
		}

		if resp != nil && resp.Status != "" {
			log.Info(resp.Status)
		}

		if formatter != nil {
			res.JSON(formatter(err, success, statusCode, result, message, defaultMessage))
			return
		}

		verb := "Failed to"
		if success {
			verb = "Successfully able to"
		}
		code := statusCode
		if code == 0 {
			code = http.StatusInternalServerError
			if success {
				code = http.StatusOK
			}
		}

		res.JSON(map[string]any{
			"success": success,
			"result":  result,
			"message": verb + " " + defaultMessage,
			"code":    code,
		})
	}
}

// Do sends r with client and feeds the outcome to handle, usually one built
// by RequestHandler.
func Do(ctx context.Context, client *http.Client, r *http.Request, handle func(*http.Response, error)) {
	if r == nil {
		handle(nil, errors.New("missing request"))
		return
	}
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(r.WithContext(ctx))
	handle(resp, err)
}

// ErrorHandler returns a callback that logs err and writes
// {code, message, success: false} with the error's HTTP code.
func ErrorHandler(res Responder) func(err error) {
	if res == nil {
		res = ResStub(nil)
	}
	return func(err error) {
		logger.Default().Error(err)
		code := CodeOf(err)
		res.Status(code)
		res.JSON(map[string]any{"code": code, "message": ParseError(err), "success": false})
	}
}
