package transport

import (
	"net/http"

	"github.com/browbeat/event-marketplace/constant"
	"github.com/browbeat/event-marketplace/model"
)

// ListEventRequests handler
// @Summary List event requests
// @Description Filter by client or by vendor; userId wins when both are given.
// @Tags EventRequests
// @Produce json
// @Param userId query int false "Client user ID"
// @Param vendorId query int false "Vendor ID"
// @Success 200 {array} model.EventRequest
// @Failure 400 {object} ErrorResponse
// @Router /api/event-requests [get]
func (s *RestHandler) ListEventRequests(w http.ResponseWriter, r *http.Request) {
	userID, err := queryID(r, "userId")
	if err != nil {
		writeError(w, err)
		return
	}
	vendorID, err := queryID(r, "vendorId")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.EventRequestApp.ListEventRequests(r.Context(), &model.EventRequestFilter{
		UserID:   userID,
		VendorID: vendorID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetEventRequest handler
// @Summary Get event request
// @Tags EventRequests
// @Produce json
// @Param id path int true "Event request ID"
// @Success 200 {object} model.EventRequest
// @Failure 404 {object} ErrorResponse
// @Router /api/event-requests/{id} [get]
func (s *RestHandler) GetEventRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, constant.ErrEventRequestNotFound)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.EventRequestApp.GetEventRequest(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateEventRequest handler
// @Summary Create event request
// @Description New requests always start pending.
// @Tags EventRequests
// @Accept json
// @Produce json
// @Param request body model.CreateEventRequestRequest true "Event request"
// @Success 201 {object} model.EventRequest
// @Failure 400 {object} ErrorResponse
// @Router /api/event-requests [post]
func (s *RestHandler) CreateEventRequest(w http.ResponseWriter, r *http.Request) {
	var req model.CreateEventRequestRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.EventRequestApp.CreateEventRequest(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// UpdateEventRequest handler
// @Summary Update event request
// @Tags EventRequests
// @Accept json
// @Produce json
// @Param id path int true "Event request ID"
// @Param request body model.EventRequestPatch true "Fields to change"
// @Success 200 {object} model.EventRequest
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/event-requests/{id} [patch]
func (s *RestHandler) UpdateEventRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, constant.ErrEventRequestNotFound)
	if err != nil {
		writeError(w, err)
		return
	}

	if _, err := s.EventRequestApp.GetEventRequest(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	var patch model.EventRequestPatch
	if err := decodeAndValidate(r, &patch); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.EventRequestApp.UpdateEventRequest(r.Context(), id, &patch)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CompleteEventRequest handler
// @Summary Mark an accepted event request completed
// @Description Internal endpoint for the notifier. Other statuses are returned unchanged.
// @Tags Internal
// @Produce json
// @Param id path int true "Event request ID"
// @Success 200 {object} model.EventRequest
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /internal/v1/event-requests/{id}/complete [post]
func (s *RestHandler) CompleteEventRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, constant.ErrEventRequestNotFound)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.EventRequestApp.CompleteEventRequest(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
