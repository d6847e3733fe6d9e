package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/sweeplabs/sweep-bridging/api/handlers"
)

func Serve(
	ctx context.Context,
	addr string,
	routesHandler *handlers.RoutesHandler,
	transactionsHandler *handlers.TransactionsHandler,
	statusHandler *handlers.StatusHandler,
	sweepHandler *handlers.SweepHandler,
) {
	r := mux.NewRouter()
	r.HandleFunc("/v1/routes", routesHandler.HandleRoutes).Methods("POST")
	r.HandleFunc("/v1/routes/best", routesHandler.HandleBestRoute).Methods("POST")
	r.HandleFunc("/v1/transactions", transactionsHandler.HandleBuild).Methods("POST")
	r.HandleFunc("/v1/chains/{chainId:[0-9]+}/transfers/{txHash}/status", statusHandler.HandleStatus).Methods("GET")
	r.HandleFunc("/v1/sweep-plans", sweepHandler.HandleBuildPlan).Methods("POST")
	r.HandleFunc("/v1/sweep-plans/{planId}", sweepHandler.HandlePlan).Methods("GET")

	server := &http.Server{
		Addr:        addr,
		Handler:     r,
		ReadTimeout: time.Second * 10,
	}
	go func() {
		log.Info().Msgf("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Err(err).Msgf("Error shutting down server")
	} else {
		log.Info().Msgf("Server shut down gracefully.")
	}
}
