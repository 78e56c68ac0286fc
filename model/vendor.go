package model

import "time"

type Vendor struct {
	ID            uint64     `db:"id" json:"id"`
	UserID        uint64     `db:"user_id" json:"userId"`
	BusinessName  string     `db:"business_name" json:"businessName"`
	Description   string     `db:"description" json:"description"`
	Category      string     `db:"category" json:"category"`
	Phone         string     `db:"phone" json:"phone"`
	Email         string     `db:"email" json:"email"`
	Website       *string    `db:"website" json:"website"`
	Address       *string    `db:"address" json:"address"`
	City          string     `db:"city" json:"city"`
	State         string     `db:"state" json:"state"`
	ZipCode       *string    `db:"zip_code" json:"zipCode"`
	ProfileImage  *string    `db:"profile_image" json:"profileImage"`
	CoverImage    *string    `db:"cover_image" json:"coverImage"`
	Gallery       StringList `db:"gallery" json:"gallery"`
	Services      StringList `db:"services" json:"services"`
	FeaturedEvent *string    `db:"featured_event" json:"featuredEvent"`
	Rating        float64    `db:"rating" json:"rating"`
	ReviewCount   int        `db:"review_count" json:"reviewCount"`
	RatingTotal   int64      `db:"rating_total" json:"-"`
	CreatedAt     time.Time  `db:"created_at" json:"createdAt"`
}

// AddRating folds one review rating into the running total and recomputes
// the displayed mean.
func (v *Vendor) AddRating(rating int) {
	v.RatingTotal += int64(rating)
	v.ReviewCount++
	v.Rating = AverageRating(v.RatingTotal, v.ReviewCount)
}

// AverageRating returns total/count rounded to one decimal, halves rounded up.
func AverageRating(total int64, count int) float64 {
	if count <= 0 {
		return 0
	}
	// integer hundredths so x.x5 never lands on the wrong side of a float
	tenths := (total*100/int64(count) + 5) / 10
	return float64(tenths) / 10
}

// VendorFilter narrows vendor listings. Category and City match
// case-insensitively; Search is a case-insensitive substring over
// business name, description, city and state.
type VendorFilter struct {
	Category string
	City     string
	Search   string
}

type CreateVendorRequest struct {
	UserID        uint64     `json:"userId" validate:"required"`
	BusinessName  string     `json:"businessName" validate:"required"`
	Description   string     `json:"description" validate:"required"`
	Category      string     `json:"category" validate:"required,vendor_category"`
	Phone         string     `json:"phone" validate:"required"`
	Email         string     `json:"email" validate:"required,email"`
	Website       *string    `json:"website" validate:"omitempty,url"`
	Address       *string    `json:"address"`
	City          string     `json:"city" validate:"required"`
	State         string     `json:"state" validate:"required"`
	ZipCode       *string    `json:"zipCode"`
	ProfileImage  *string    `json:"profileImage"`
	CoverImage    *string    `json:"coverImage"`
	Gallery       StringList `json:"gallery"`
	Services      StringList `json:"services"`
	FeaturedEvent *string    `json:"featuredEvent"`
}

// VendorPatch holds the fields of a partial vendor update; nil means unchanged.
// Owner, rating and review count are not patchable.
type VendorPatch struct {
	BusinessName  *string     `json:"businessName" validate:"omitempty,min=1"`
	Description   *string     `json:"description" validate:"omitempty,min=1"`
	Category      *string     `json:"category" validate:"omitempty,vendor_category"`
	Phone         *string     `json:"phone" validate:"omitempty,min=1"`
	Email         *string     `json:"email" validate:"omitempty,email"`
	Website       *string     `json:"website" validate:"omitempty,url"`
	Address       *string     `json:"address"`
	City          *string     `json:"city" validate:"omitempty,min=1"`
	State         *string     `json:"state" validate:"omitempty,min=1"`
	ZipCode       *string     `json:"zipCode"`
	ProfileImage  *string     `json:"profileImage"`
	CoverImage    *string     `json:"coverImage"`
	Gallery       *StringList `json:"gallery"`
	Services      *StringList `json:"services"`
	FeaturedEvent *string     `json:"featuredEvent"`
}

func (p *VendorPatch) Apply(v *Vendor) {
	if p == nil {
		return
	}
	if p.BusinessName != nil {
		v.BusinessName = *p.BusinessName
	}
	if p.Description != nil {
		v.Description = *p.Description
	}
	if p.Category != nil {
		v.Category = *p.Category
	}
	if p.Phone != nil {
		v.Phone = *p.Phone
	}
	if p.Email != nil {
		v.Email = *p.Email
	}
	if p.Website != nil {
		v.Website = p.Website
	}
	if p.Address != nil {
		v.Address = p.Address
	}
	if p.City != nil {
		v.City = *p.City
	}
	if p.State != nil {
		v.State = *p.State
	}
	if p.ZipCode != nil {
		v.ZipCode = p.ZipCode
	}
	if p.ProfileImage != nil {
		v.ProfileImage = p.ProfileImage
	}
	if p.CoverImage != nil {
		v.CoverImage = p.CoverImage
	}
	if p.Gallery != nil {
		v.Gallery = *p.Gallery
	}
	if p.Services != nil {
		v.Services = *p.Services
	}
	if p.FeaturedEvent != nil {
		v.FeaturedEvent = p.FeaturedEvent
	}
}
