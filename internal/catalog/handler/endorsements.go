package handler

import (
	"net/http"

	"voterguide/pkg/platform/httputil"
)

func (h *Handler) measureEndorsementOps() entityOps {
	return entityOps{
		auth:   h.requireAuth(),
		list:   h.handleListMeasureEndorsements,
		create: h.handleCreateMeasureEndorsement,
		get:    h.handleGetMeasureEndorsement,
		put:    h.handleUpdateMeasureEndorsement,
		patch:  h.handlePatchMeasureEndorsement,
		delete: h.handleDeleteMeasureEndorsement,
	}
}

func (h *Handler) seatEndorsementOps() entityOps {
	return entityOps{
		auth:   h.requireAuth(),
		list:   h.handleListSeatEndorsements,
		create: h.handleCreateSeatEndorsement,
		get:    h.handleGetSeatEndorsement,
		put:    h.handleUpdateSeatEndorsement,
		patch:  h.handlePatchSeatEndorsement,
		delete: h.handleDeleteSeatEndorsement,
	}
}

func (h *Handler) handleListMeasureEndorsements(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	endorsements, err := h.catalog.ListMeasureEndorsements(ctx)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	out := make([]measureEndorsementResponse, len(endorsements))
	for i, e := range endorsements {
		out[i] = toMeasureEndorsementResponse(e)
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) handleCreateMeasureEndorsement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req measureEndorsementRequest
	if err := decode(r, &req); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	endorsement, err := h.catalog.CreateMeasureEndorsement(ctx, req.toModel())
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toMeasureEndorsementResponse(endorsement))
}

func (h *Handler) handleGetMeasureEndorsement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	endorsement, err := h.catalog.GetMeasureEndorsement(ctx, id)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toMeasureEndorsementResponse(endorsement))
}

func (h *Handler) handleUpdateMeasureEndorsement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	var req measureEndorsementRequest
	if err := decode(r, &req); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	endorsement, err := h.catalog.UpdateMeasureEndorsement(ctx, id, req.toModel())
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toMeasureEndorsementResponse(endorsement))
}

func (h *Handler) handlePatchMeasureEndorsement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	var req measureEndorsementPatchRequest
	if err := decode(r, &req); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	endorsement, err := h.catalog.PatchMeasureEndorsement(ctx, id, req.toPatch())
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toMeasureEndorsementResponse(endorsement))
}

func (h *Handler) handleDeleteMeasureEndorsement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	if err := h.catalog.DeleteMeasureEndorsement(ctx, id); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleListSeatEndorsements(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	endorsements, err := h.catalog.ListSeatEndorsements(ctx)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	out := make([]seatEndorsementResponse, len(endorsements))
	for i, e := range endorsements {
		out[i] = toSeatEndorsementResponse(e)
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) handleCreateSeatEndorsement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req seatEndorsementRequest
	if err := decode(r, &req); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	endorsement, err := h.catalog.CreateSeatEndorsement(ctx, req.toModel())
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toSeatEndorsementResponse(endorsement))
}

func (h *Handler) handleGetSeatEndorsement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	endorsement, err := h.catalog.GetSeatEndorsement(ctx, id)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toSeatEndorsementResponse(endorsement))
}

func (h *Handler) handleUpdateSeatEndorsement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	var req seatEndorsementRequest
	if err := decode(r, &req); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	endorsement, err := h.catalog.UpdateSeatEndorsement(ctx, id, req.toModel())
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toSeatEndorsementResponse(endorsement))
}

func (h *Handler) handlePatchSeatEndorsement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	var req seatEndorsementPatchRequest
	if err := decode(r, &req); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	endorsement, err := h.catalog.PatchSeatEndorsement(ctx, id, req.toPatch())
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toSeatEndorsementResponse(endorsement))
}

func (h *Handler) handleDeleteSeatEndorsement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	if err := h.catalog.DeleteSeatEndorsement(ctx, id); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
