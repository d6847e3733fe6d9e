package health

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type status struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// StartHealthEndpoint serves /health on the provided port for liveness probes.
func StartHealthEndpoint(port uint16, version string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(status{Status: "ok", Version: version})
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       30 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	return srv.ListenAndServe()
}
