package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// CorrelationHeader carries the request's correlation ID. A client-supplied
// value is echoed back; otherwise a new one is generated.
const CorrelationHeader = "X-Correlation-Id"

type correlationKey struct{}

func correlationID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(CorrelationHeader))
		if id == "" {
			id = newCorrelationID()
		}
		w.Header().Set(CorrelationHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), correlationKey{}, id)))
	})
}

// CorrelationID returns the ID attached by the correlation middleware, or ""
// outside a request.
func CorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(correlationKey{}).(string)
	return id
}

var newCorrelationID = func() string {
	return uuid.NewString()
}
