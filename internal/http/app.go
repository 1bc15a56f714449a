// Package http provides HTTP server infrastructure including module registration.
package http

import (
	"context"

	"github.com/pushpakrawat/veekend/platform/config"
	"github.com/pushpakrawat/veekend/platform/logger"
)

// RouterConfig combines the config interfaces needed by the HTTP router.
type RouterConfig interface {
	config.HTTPConfig
	config.JWTConfig
}

// HealthChecker exposes minimal functionality for readiness checks.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// App holds the fully initialized application dependencies.
// This is populated by main.go (the composition root) and passed to the router.
type App struct {
	// Config holds the router configuration (HTTP and JWT settings only).
	Config RouterConfig
	// Logger is the structured logger.
	Logger *logger.Logger
	// Health is used for readiness/health checks (e.g., DB ping).
	Health HealthChecker
	// RateLimit is the per-IP request rate limit.
	RateLimit float64
	// RateBurst is the per-IP burst allowance.
	RateBurst int
	// Modules contains all HTTP-facing domain modules.
	Modules []Module
}
