package handler

import (
	"net/http"

	"voterguide/pkg/platform/httputil"
)

func (h *Handler) seatOps() entityOps {
	return entityOps{
		auth:   h.requireAuth(),
		list:   h.handleListSeats,
		create: h.handleCreateSeat,
		get:    h.handleGetSeat,
		put:    h.handleUpdateSeat,
		patch:  h.handlePatchSeat,
		delete: h.handleDeleteSeat,
	}
}

func (h *Handler) handleListSeats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	seats, err := h.catalog.ListSeats(ctx)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	out := make([]seatResponse, len(seats))
	for i, s := range seats {
		out[i] = toSeatResponse(s)
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) handleCreateSeat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req seatRequest
	if err := decode(r, &req); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	seat, err := h.catalog.CreateSeat(ctx, req.toModel())
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toSeatResponse(seat))
}

func (h *Handler) handleGetSeat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	seat, err := h.catalog.GetSeat(ctx, id)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toSeatResponse(seat))
}

func (h *Handler) handleUpdateSeat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	var req seatRequest
	if err := decode(r, &req); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	seat, err := h.catalog.UpdateSeat(ctx, id, req.toModel())
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toSeatResponse(seat))
}

func (h *Handler) handlePatchSeat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	var req seatPatchRequest
	if err := decode(r, &req); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	seat, err := h.catalog.PatchSeat(ctx, id, req.toPatch())
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toSeatResponse(seat))
}

func (h *Handler) handleDeleteSeat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := idParam(r)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	if err := h.catalog.DeleteSeat(ctx, id); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
