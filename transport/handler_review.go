package transport

import (
	"net/http"

	"github.com/browbeat/event-marketplace/model"
)

// ListReviews handler
// @Summary List reviews
// @Tags Reviews
// @Produce json
// @Param vendorId query int false "Vendor ID"
// @Param userId query int false "Author user ID"
// @Success 200 {array} model.Review
// @Failure 400 {object} ErrorResponse
// @Router /api/reviews [get]
func (s *RestHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
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

	res, err := s.ReviewApp.ListReviews(r.Context(), &model.ReviewFilter{
		UserID:   userID,
		VendorID: vendorID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateReview handler
// @Summary Create review
// @Description Stores the review and updates the vendor's rating and review count.
// @Tags Reviews
// @Accept json
// @Produce json
// @Param request body model.CreateReviewRequest true "Review"
// @Success 201 {object} model.Review
// @Failure 400 {object} ErrorResponse
// @Router /api/reviews [post]
func (s *RestHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req model.CreateReviewRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ReviewApp.CreateReview(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}
