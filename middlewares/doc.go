// Package middlewares provides the HTTP middleware chain for the contact
// service: request ID assignment, panic recovery, and request logging.
//
// Middlewares are plain func(http.Handler) http.Handler so they compose
// with chi's Use:
//
//	r := chi.NewRouter()
//	r.Use(middlewares.RequestID())
//	r.Use(middlewares.Logging(log))
//	r.Use(middlewares.Recover(log))
//
// Logging never writes raw personal data: client IPs are masked before
// they reach the logger, and handlers are expected to do the same for
// email addresses.
package middlewares
