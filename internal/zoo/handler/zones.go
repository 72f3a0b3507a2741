package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"menagerie/internal/zoo/models"
	id "menagerie/pkg/domain"
	"menagerie/pkg/platform/httputil"
)

func (h *Handler) handleListZones(w http.ResponseWriter, r *http.Request) {
	zones, err := h.zones.List(r.Context())
	if err != nil {
		h.writeError(w, r, "failed to list zones", err)
		return
	}
	if zones == nil {
		zones = []*models.Zone{}
	}
	httputil.WriteJSON(w, http.StatusOK, zones)
}

func (h *Handler) handleZoneSummary(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.zones.FindSummary(r.Context())
	if err != nil {
		h.writeError(w, r, "failed to summarize zones", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, summaries)
}

func (h *Handler) handleGetZone(w http.ResponseWriter, r *http.Request) {
	zoneID, err := id.ParseZoneID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "invalid zone id", err)
		return
	}

	zone, err := h.zones.Get(r.Context(), zoneID)
	if err != nil {
		h.writeError(w, r, "failed to get zone", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, zone)
}

func (h *Handler) handleCreateZone(w http.ResponseWriter, r *http.Request) {
	var req models.CreateZoneRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(w, r, "invalid create zone request", err)
		return
	}
	if err := req.Validate(); err != nil {
		h.writeError(w, r, "invalid create zone request", err)
		return
	}

	zone, err := h.zones.Create(r.Context(), &req)
	if err != nil {
		h.writeError(w, r, "failed to create zone", err)
		return
	}
	w.Header().Set("Location", "/api/zones/"+zone.ID.String())
	httputil.WriteJSON(w, http.StatusCreated, zone)
}

func (h *Handler) handleUpdateZone(w http.ResponseWriter, r *http.Request) {
	zoneID, err := id.ParseZoneID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "invalid zone id", err)
		return
	}

	var req models.UpdateZoneRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(w, r, "invalid update zone request", err)
		return
	}
	if err := req.Validate(); err != nil {
		h.writeError(w, r, "invalid update zone request", err)
		return
	}

	zone, err := h.zones.Update(r.Context(), zoneID, &req)
	if err != nil {
		h.writeError(w, r, "failed to update zone", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, zone)
}

func (h *Handler) handleDeleteZone(w http.ResponseWriter, r *http.Request) {
	zoneID, err := id.ParseZoneID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "invalid zone id", err)
		return
	}

	if err := h.zones.Delete(r.Context(), zoneID); err != nil {
		h.writeError(w, r, "failed to delete zone", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
