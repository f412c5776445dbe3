// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API of the blog. Session checks, admin and owner restrictions, per-IP rate
// limiting and request tracing run here before requests are delegated to
// the service layer.
package http
