package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"menagerie/internal/zoo/models"
	id "menagerie/pkg/domain"
	"menagerie/pkg/platform/httputil"
)

func (h *Handler) handleListCreatures(w http.ResponseWriter, r *http.Request) {
	creatures, err := h.creatures.GetAll(r.Context())
	if err != nil {
		h.writeError(w, r, "failed to list creatures", err)
		return
	}
	if creatures == nil {
		creatures = []*models.Creature{}
	}
	httputil.WriteJSON(w, http.StatusOK, creatures)
}

func (h *Handler) handleGetCreature(w http.ResponseWriter, r *http.Request) {
	creatureID, err := id.ParseCreatureID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "invalid creature id", err)
		return
	}

	creature, err := h.creatures.GetByID(r.Context(), creatureID)
	if err != nil {
		h.writeError(w, r, "failed to get creature", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, creature)
}

func (h *Handler) handleCreateCreature(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCreatureRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(w, r, "invalid create creature request", err)
		return
	}
	if err := req.Validate(); err != nil {
		h.writeError(w, r, "invalid create creature request", err)
		return
	}

	creature, err := h.creatures.Create(r.Context(), &req)
	if err != nil {
		h.writeError(w, r, "failed to create creature", err)
		return
	}
	w.Header().Set("Location", "/api/creatures/"+creature.ID.String())
	httputil.WriteJSON(w, http.StatusCreated, creature)
}

func (h *Handler) handleUpdateCreature(w http.ResponseWriter, r *http.Request) {
	creatureID, err := id.ParseCreatureID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "invalid creature id", err)
		return
	}

	var req models.UpdateCreatureRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(w, r, "invalid update creature request", err)
		return
	}
	if err := req.Validate(); err != nil {
		h.writeError(w, r, "invalid update creature request", err)
		return
	}

	creature, err := h.creatures.Update(r.Context(), creatureID, &req)
	if err != nil {
		h.writeError(w, r, "failed to update creature", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, creature)
}

func (h *Handler) handleDeleteCreature(w http.ResponseWriter, r *http.Request) {
	creatureID, err := id.ParseCreatureID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "invalid creature id", err)
		return
	}

	if err := h.creatures.Delete(r.Context(), creatureID); err != nil {
		h.writeError(w, r, "failed to delete creature", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
