// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stubserver

import (
	"net/http"

	"github.com/MKhiriev/go-auth-client/internal/utils"
)

// Error codes of the router fallbacks.
const (
	codeNotFound         = "not_found"
	codeMethodNotAllowed = "method_not_allowed"
)

// notFound replaces chi's plain-text 404 so that every response of the stub
// carries the JSON error envelope.
func notFound(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteError(w, http.StatusNotFound, codeNotFound, http.StatusText(http.StatusNotFound))
}

// methodNotAllowed replaces chi's plain-text 405. The confirmation link is
// the only GET endpoint; everything else accepts POST only.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == confirmPath {
		w.Header().Set("Allow", http.MethodGet)
	} else {
		w.Header().Set("Allow", http.MethodPost)
	}
	_, _ = utils.WriteError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
}
