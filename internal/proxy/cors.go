package proxy

import "net/http"

func setCORSHeaders(h http.Header) {
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "GET,POST,PUT,PATCH,DELETE,OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type,Accept,Authorization,X-Requested-With,X-Trace-ID")
	h.Set("Access-Control-Expose-Headers", "X-Trace-ID")
	h.Set("Access-Control-Max-Age", "86400")
}

// withCORS answers preflight requests without reaching the target.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			setCORSHeaders(w.Header())
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
