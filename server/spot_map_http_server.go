package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

type SpotMapHttpServer struct {
	router      *Router
	muxRouter   *mux.Router
	rateLimiter *RateLimiter
	port        string
}

func NewSpotMapHttpServer(
	router *Router,
	muxRouter *mux.Router,
	rateLimiter *RateLimiter,
	port string) *SpotMapHttpServer {
	return &SpotMapHttpServer{
		router:      router,
		muxRouter:   muxRouter,
		rateLimiter: rateLimiter,
		port:        port,
	}
}

func (s *SpotMapHttpServer) Start() {
	s.router.RegisterRoutes()

	// Middleware chain: CORS on the outside, then request logging,
	// then the per-IP rate limit.
	corsWrapper := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	})
	handler := corsWrapper.Handler(LoggingMiddleware(s.rateLimiter.Middleware(s.muxRouter)))

	// Define your HTTP server
	srv := &http.Server{
		Addr:    ":" + s.port,
		Handler: handler,
	}

	// Channel to listen for interrupt or termination signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start the server in a goroutine so it doesn't block
	go func() {
		fmt.Println("Starting server on :" + s.port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Wait for a signal to shut down
	<-stop
	fmt.Println("\nShutting down the server...")

	// Create a deadline for the shutdown (e.g., 5 seconds)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	fmt.Println("Server exiting")
}
