// Package httpware provides a net/http middleware that parses the
// incoming request's User-Agent header through a parser.Parser and stores
// the result on the request context, plus the WithContext/FromContext pair
// to get it back out.
//
// The context-embedding idiom is grounded on the toolkit's pkg/environment:
// an unexported context key type, a WithContext that stores a value under
// it, and a FromContext that reads it back with a safe zero-value default
// on a miss or a nil context. The middleware's handler signature,
// func(http.Handler) http.Handler, is the same shape pkg/environment's own
// Middleware uses, which makes it composable with any router built on the
// standard http.Handler interface without a direct dependency on that
// router.
package httpware
