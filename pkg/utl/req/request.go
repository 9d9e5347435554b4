package req

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"

	"github.com/ib-77/utilitarian/pkg/utl/is"
)

var bearerRegex = regexp.MustCompile(`Bearer (\S+)`)

// GetToken returns the bearer token of the Authorization header, or "".
func GetToken(r *http.Request) string {
	m := bearerRegex.FindStringSubmatch(r.Header.Get("Authorization"))
	if m == nil {
		return ""
	}
	return m[1]
}

// ReqParse merges the parameters of a request into one map. Query parameters
// win over a JSON object body, which is only read when the query is empty.
// chi route parameters are applied last. The body stays readable for later
// handlers.
func ReqParse(r *http.Request) map[string]any {
	params := make(map[string]any)

	if query := r.URL.Query(); !is.Empty(query) {
		for k, v := range query {
			if len(v) == 1 {
				params[k] = v[0]
			} else {
				params[k] = v
			}
		}
	} else if body := readBody(r); !is.Empty(body) {
		for k, v := range body {
			params[k] = v
		}
	}

	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		for i, k := range rctx.URLParams.Keys {
			if k == "" || k == "*" || i >= len(rctx.URLParams.Values) {
				continue
			}
			params[k] = rctx.URLParams.Values[i]
		}
	}

	return params
}

func readBody(r *http.Request) map[string]any {
	if r.Body == nil || r.Body == http.NoBody {
		return nil
	}
	raw, err := io.ReadAll(r.Body)
	r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(raw))
	if err != nil {
		return nil
	}
	return TryParseBody(raw)
}

// TryParseBody decodes a JSON object, returning an empty map for anything else.
func TryParseBody(body []byte) map[string]any {
	parsed := make(map[string]any)
	if err := json.Unmarshal(body, &parsed); err != nil || parsed == nil {
		return map[string]any{}
	}
	return parsed
}
