package api

import (
	"net/http"
)

// Version is the service version reported on the root banner.
const Version = "1.0.0"

// RootBanner is the payload of the root endpoint.
type RootBanner struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Status  string `json:"status"`
}

// HealthStatus is the payload of the health endpoint.
type HealthStatus struct {
	Status string `json:"status"`
}

// getRoot godoc
//
//	@Summary		Service banner
//	@Description	Returns the service name and version
//	@Tags			system
//	@Produce		json
//	@Success		200	{object}	envelope
//	@Router			/ [get]
func (a *API) getRoot(w http.ResponseWriter, r *http.Request) {
	a.respondData(w, RootBanner{
		Name:    "DeepTrace API",
		Version: Version,
		Status:  "operational",
	}, http.StatusOK)
}

// healthCheck godoc
//
//	@Summary		Health check
//	@Description	Liveness probe
//	@Tags			system
//	@Produce		json
//	@Success		200	{object}	envelope
//	@Router			/health [get]
func (a *API) healthCheck(w http.ResponseWriter, r *http.Request) {
	a.respondData(w, HealthStatus{Status: "healthy"}, http.StatusOK)
}
