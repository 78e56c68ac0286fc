package transport

import (
	"net/http"

	"github.com/browbeat/event-marketplace/constant"
	"github.com/browbeat/event-marketplace/model"
)

// ListVendors handler
// @Summary List vendors
// @Description Filters combine with AND and match case-insensitively.
// @Tags Vendors
// @Produce json
// @Param category query string false "Vendor category"
// @Param city query string false "City"
// @Param search query string false "Substring of name, description, city or state"
// @Success 200 {array} model.Vendor
// @Router /api/vendors [get]
func (s *RestHandler) ListVendors(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res, err := s.VendorApp.ListVendors(r.Context(), &model.VendorFilter{
		Category: q.Get("category"),
		City:     q.Get("city"),
		Search:   q.Get("search"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListFeaturedVendors handler
// @Summary Top rated vendors
// @Tags Vendors
// @Produce json
// @Param limit query int false "Maximum number of vendors" default(6)
// @Success 200 {array} model.Vendor
// @Failure 400 {object} ErrorResponse
// @Router /api/vendors/featured [get]
func (s *RestHandler) ListFeaturedVendors(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.VendorApp.ListFeatured(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetVendor handler
// @Summary Get vendor
// @Tags Vendors
// @Produce json
// @Param id path int true "Vendor ID"
// @Success 200 {object} model.Vendor
// @Failure 404 {object} ErrorResponse
// @Router /api/vendors/{id} [get]
func (s *RestHandler) GetVendor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, constant.ErrVendorNotFound)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.VendorApp.GetVendor(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateVendor handler
// @Summary Create vendor
// @Description Creates the vendor profile and marks its owner as a vendor.
// @Tags Vendors
// @Accept json
// @Produce json
// @Param request body model.CreateVendorRequest true "Vendor"
// @Success 201 {object} model.Vendor
// @Failure 400 {object} ErrorResponse
// @Router /api/vendors [post]
func (s *RestHandler) CreateVendor(w http.ResponseWriter, r *http.Request) {
	var req model.CreateVendorRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.VendorApp.CreateVendor(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// UpdateVendor handler
// @Summary Update vendor
// @Tags Vendors
// @Accept json
// @Produce json
// @Param id path int true "Vendor ID"
// @Param request body model.VendorPatch true "Fields to change"
// @Success 200 {object} model.Vendor
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/vendors/{id} [patch]
func (s *RestHandler) UpdateVendor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, constant.ErrVendorNotFound)
	if err != nil {
		writeError(w, err)
		return
	}

	if _, err := s.VendorApp.GetVendor(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	var patch model.VendorPatch
	if err := decodeAndValidate(r, &patch); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.VendorApp.UpdateVendor(r.Context(), id, &patch)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
