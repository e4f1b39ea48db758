package handler

import (
	"net/http"

	"voterguide/pkg/platform/httputil"
)

func (h *Handler) candidateOps() entityOps {
	return entityOps{
		auth:   h.requireAuth(),
		list:   h.handleListCandidates,
		create: h.handleCreateCandidate,
		get:    h.handleGetCandidate,
		put:    h.handleUpdateCandidate,
		patch:  h.handlePatchCandidate,
		delete: h.handleDeleteCandidate,
	}
}

func (h *Handler) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	candidates, err := h.catalog.ListCandidates(ctx)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	out := make([]candidateResponse, len(candidates))
	for i, c := range candidates {
		out[i] = toCandidateResponse(c)
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) handleCreateCandidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req candidateRequest
	if err := decode(r, &req); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	candidate, err := h.catalog.CreateCandidate(ctx, req.toModel())
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toCandidateResponse(candidate))
}

func (h *Handler) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	candidate, err := h.catalog.GetCandidate(ctx, id)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toCandidateResponse(candidate))
}

func (h *Handler) handleUpdateCandidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	var req candidateRequest
	if err := decode(r, &req); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	candidate, err := h.catalog.UpdateCandidate(ctx, id, req.toModel())
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toCandidateResponse(candidate))
}

func (h *Handler) handlePatchCandidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	var req candidatePatchRequest
	if err := decode(r, &req); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	candidate, err := h.catalog.PatchCandidate(ctx, id, req.toPatch())
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toCandidateResponse(candidate))
}

func (h *Handler) handleDeleteCandidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	if err := h.catalog.DeleteCandidate(ctx, id); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
