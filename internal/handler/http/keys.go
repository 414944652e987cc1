// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rouaze/fwkey-service/internal/logger"
	"github.com/rouaze/fwkey-service/internal/service"
	"github.com/rouaze/fwkey-service/internal/utils"
	"github.com/rouaze/fwkey-service/models"
)

// fwQueryParam names the query parameter carrying the firmware identifier.
const fwQueryParam = "fw"

// lookupKey answers GET /?fw= and GET /api/keys?fw= with the plain-text
// response record.
func (h *Handler) lookupKey(w http.ResponseWriter, r *http.Request) {
	fw := r.URL.Query().Get(fwQueryParam)

	writeResponse(w, service.Respond(h.services.KeyService.LookupKey(r.Context(), fw)))
}

// getKey answers GET /api/keys/{fw} with a JSON [models.KeyLookup]. Failed
// lookups get the same status and plain-text body as lookupKey.
func (h *Handler) getKey(w http.ResponseWriter, r *http.Request) {
	fw := chi.URLParam(r, fwQueryParam)

	secret, err := h.services.KeyService.LookupKey(r.Context(), fw)
	resp := service.Respond(secret, err)
	if resp.Status() != http.StatusOK {
		writeResponse(w, resp)
		return
	}

	lookup := models.KeyLookup{Firmware: fw, Field: h.manufField, Secret: secret}
	if _, err = utils.WriteJSON(w, lookup, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getKey").Msg("error writing key lookup")
	}
}

// writeResponse renders a response record as a text/plain HTTP response.
func writeResponse(w http.ResponseWriter, resp models.Response) {
	for name, value := range resp.Headers {
		w.Header().Set(name, value)
	}
	_, _ = utils.WriteText(w, resp.Body, resp.Status())
}
