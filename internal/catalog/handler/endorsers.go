package handler

import (
	"net/http"

	"voterguide/pkg/platform/httputil"
)

func (h *Handler) endorserOps() entityOps {
	return entityOps{
		auth:   h.requireAuth(),
		list:   h.handleListEndorsers,
		create: h.handleCreateEndorser,
		get:    h.handleGetEndorser,
		put:    h.handleUpdateEndorser,
		patch:  h.handlePatchEndorser,
		delete: h.handleDeleteEndorser,
	}
}

func (h *Handler) handleListEndorsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	endorsers, err := h.catalog.ListEndorsers(ctx)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	out := make([]endorserResponse, len(endorsers))
	for i, e := range endorsers {
		out[i] = toEndorserResponse(e)
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) handleCreateEndorser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req endorserRequest
	if err := decode(r, &req); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	endorser, err := h.catalog.CreateEndorser(ctx, req.toModel())
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toEndorserResponse(endorser))
}

func (h *Handler) handleGetEndorser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	endorser, err := h.catalog.GetEndorser(ctx, id)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toEndorserResponse(endorser))
}

func (h *Handler) handleUpdateEndorser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	var req endorserRequest
	if err := decode(r, &req); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	endorser, err := h.catalog.UpdateEndorser(ctx, id, req.toModel())
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toEndorserResponse(endorser))
}

func (h *Handler) handlePatchEndorser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	var req endorserPatchRequest
	if err := decode(r, &req); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	endorser, err := h.catalog.PatchEndorser(ctx, id, req.toPatch())
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toEndorserResponse(endorser))
}

func (h *Handler) handleDeleteEndorser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	if err := h.catalog.DeleteEndorser(ctx, id); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
