package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/grantstore/pkg/authsdk"
	"github.com/aussiebroadwan/grantstore/pkg/httpx"
)

// LivezHandler godoc
//
//	@Summary		Liveness Endpoint
//	@Description	Reports that the authorization server process is serving, with uptime and version.
//	@Description	The database is not consulted; see /readyz for that.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	authsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, authsdk.HealthResponse{
			Status:  "ok",
			Uptime:  uptime(startTime),
			Version: version,
		})
	}
}

// uptime is reported to the second.
func uptime(since time.Time) string {
	return time.Since(since).Round(time.Second).String()
}
