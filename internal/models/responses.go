package models

import "time"

// WelcomeMessage is the plain text body served on the root path
const WelcomeMessage = "Welcome to Kubernetes Test Application. Use /info endpoint to see pod details."

// HealthResponse is returned by the liveness endpoint
type HealthResponse struct {
	Status string    `json:"status" example:"healthy"`
	Time   time.Time `json:"time" example:"2024-03-20T13:00:00Z"`
	Uptime string    `json:"uptime" example:"1h2m3s"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}
