package httpware

import (
	"net/http"

	"github.com/uap-go/uaparser/core"
	"github.com/uap-go/uaparser/parser"
)

func emptyResult(ua string) core.DefaultedResult {
	return core.PartialResult{String: ua}.WithDefaults()
}

// Middleware parses every request's User-Agent header through p and
// attaches the resulting core.DefaultedResult to the request context
// before calling next. A request with no User-Agent header is parsed as
// the empty string, which resolves to every facet's default sentinel.
func Middleware(p *parser.Parser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			result := p.Parse(r.Header.Get("User-Agent"))
			ctx := WithContext(r.Context(), result)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromHandle is like Middleware but resolves its parser.Handle on every
// request instead of capturing a single parser.Parser at construction
// time, so a later Handle.Store takes effect for subsequent requests
// without rebuilding the middleware chain.
//
// A request arriving before anything has been Stored into h is parsed with
// the zero behaviour: every facet defaults, since there is no parser yet
// to ask.
func FromHandle(h *parser.Handle) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := h.Load()
			if p == nil {
				ctx := WithContext(r.Context(), emptyResult(r.Header.Get("User-Agent")))
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
			result := p.Parse(r.Header.Get("User-Agent"))
			ctx := WithContext(r.Context(), result)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
