package handler

import (
	"net/http"

	"voterguide/pkg/platform/httputil"
)

func (h *Handler) measureOps() entityOps {
	return entityOps{
		auth:   h.requireAuth(),
		list:   h.handleListMeasures,
		create: h.handleCreateMeasure,
		get:    h.handleGetMeasure,
		put:    h.handleUpdateMeasure,
		patch:  h.handlePatchMeasure,
		delete: h.handleDeleteMeasure,
	}
}

func (h *Handler) handleListMeasures(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	measures, err := h.catalog.ListMeasures(ctx)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	out := make([]measureResponse, len(measures))
	for i, m := range measures {
		out[i] = toMeasureResponse(m)
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) handleCreateMeasure(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req measureRequest
	if err := decode(r, &req); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	measure, err := h.catalog.CreateMeasure(ctx, req.toModel())
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toMeasureResponse(measure))
}

func (h *Handler) handleGetMeasure(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	measure, err := h.catalog.GetMeasure(ctx, id)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toMeasureResponse(measure))
}

func (h *Handler) handleUpdateMeasure(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	var req measureRequest
	if err := decode(r, &req); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	measure, err := h.catalog.UpdateMeasure(ctx, id, req.toModel())
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toMeasureResponse(measure))
}

func (h *Handler) handlePatchMeasure(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	var req measurePatchRequest
	if err := decode(r, &req); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	measure, err := h.catalog.PatchMeasure(ctx, id, req.toPatch())
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toMeasureResponse(measure))
}

func (h *Handler) handleDeleteMeasure(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	if err := h.catalog.DeleteMeasure(ctx, id); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
