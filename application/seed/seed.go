package seed

import (
	"context"
	"fmt"

	eventrequestapp "github.com/browbeat/event-marketplace/application/eventrequest"
	reviewapp "github.com/browbeat/event-marketplace/application/review"
	userapp "github.com/browbeat/event-marketplace/application/user"
	vendorapp "github.com/browbeat/event-marketplace/application/vendor"
	"github.com/browbeat/event-marketplace/model"
	"github.com/browbeat/event-marketplace/utils/logger"
	"go.uber.org/zap"
)

const unsplash = "https://images.unsplash.com/"

type Seeder struct {
	userApp         userapp.UserApp
	vendorApp       vendorapp.VendorApp
	eventRequestApp eventrequestapp.EventRequestApp
	reviewApp       reviewapp.ReviewApp
}

func NewSeeder(userApp userapp.UserApp, vendorApp vendorapp.VendorApp, eventRequestApp eventrequestapp.EventRequestApp, reviewApp reviewapp.ReviewApp) *Seeder {
	return &Seeder{
		userApp:         userApp,
		vendorApp:       vendorApp,
		eventRequestApp: eventRequestApp,
		reviewApp:       reviewApp,
	}
}

// Run loads the demo marketplace. It goes through the application layer so
// vendor flags and rating aggregates come out the same as for live traffic.
func (s *Seeder) Run(ctx context.Context) error {
	users := make(map[string]uint64)
	for _, req := range sampleUsers() {
		u, err := s.userApp.Register(ctx, req)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", req.Username, err)
		}
		users[u.Username] = u.ID
	}

	vendors := make(map[string]uint64)
	for _, sv := range sampleVendors() {
		owner, req := sv.owner, sv.req
		req.UserID = users[owner]
		v, err := s.vendorApp.CreateVendor(ctx, req)
		if err != nil {
			return fmt.Errorf("seed vendor %s: %w", req.BusinessName, err)
		}
		vendors[owner] = v.ID
	}

	client := users["client1"]
	requests := []*model.CreateEventRequestRequest{
		{
			UserID:            client,
			VendorID:          vendors["vendor1"],
			EventType:         "Wedding",
			EventDate:         "2024-12-15",
			GuestCount:        100,
			StartTime:         "17:00",
			Duration:          5,
			Budget:            intPtr(10000),
			AdditionalDetails: strPtr("Looking for a venue with garden setting for a winter wedding."),
		},
		{
			UserID:            client,
			VendorID:          vendors["vendor2"],
			EventType:         "Birthday",
			EventDate:         "2024-10-20",
			GuestCount:        50,
			StartTime:         "19:00",
			Duration:          4,
			Budget:            intPtr(5000),
			AdditionalDetails: strPtr("30th birthday celebration with an elegant theme."),
		},
	}
	for _, req := range requests {
		if _, err := s.eventRequestApp.CreateEventRequest(ctx, req); err != nil {
			return fmt.Errorf("seed event request: %w", err)
		}
	}

	reviews := []*model.CreateReviewRequest{
		{
			UserID:    client,
			VendorID:  vendors["vendor1"],
			Rating:    5,
			Comment:   strPtr("Amazing venue! Our wedding was perfect in every way."),
			EventType: strPtr("Wedding"),
			EventDate: strPtr("2024-06-10"),
		},
		{
			UserID:    client,
			VendorID:  vendors["vendor2"],
			Rating:    4,
			Comment:   strPtr("Beautiful decorations. Everything looked great."),
			EventType: strPtr("Birthday"),
			EventDate: strPtr("2024-05-15"),
		},
	}
	for _, req := range reviews {
		if _, err := s.reviewApp.CreateReview(ctx, req); err != nil {
			return fmt.Errorf("seed review: %w", err)
		}
	}

	logger.Info("sample data loaded",
		zap.Int("users", len(users)),
		zap.Int("vendors", len(vendors)),
		zap.Int("eventRequests", len(requests)),
		zap.Int("reviews", len(reviews)),
	)
	return nil
}

func sampleUsers() []*model.RegisterRequest {
	return []*model.RegisterRequest{
		{Username: "client1", Password: "password123", Email: "client1@example.com", FullName: strPtr("John Doe"), Phone: strPtr("555-123-4567")},
		{Username: "vendor1", Password: "password123", Email: "vendor1@example.com", FullName: strPtr("Jane Smith"), Phone: strPtr("555-987-6543")},
		{Username: "vendor2", Password: "password123", Email: "vendor2@example.com", FullName: strPtr("Robert Johnson"), Phone: strPtr("555-567-8910")},
		{Username: "vendor3", Password: "password123", Email: "vendor3@example.com", FullName: strPtr("Maria Garcia"), Phone: strPtr("555-111-2222")},
	}
}

type sampleVendor struct {
	owner string
	req   *model.CreateVendorRequest
}

func sampleVendors() []sampleVendor {
	return []sampleVendor{
		{"vendor1", &model.CreateVendorRequest{
			BusinessName: "Harmony Gardens",
			Description:  "Luxury wedding and event venue with stunning garden views",
			Category:     "Venue",
			Phone:        "555-987-6543",
			Email:        "contact@harmonygardens.com",
			Website:      strPtr("https://www.harmonygardens.com"),
			Address:      strPtr("123 Garden Lane"),
			City:         "San Francisco",
			State:        "CA",
			ZipCode:      strPtr("94101"),
			ProfileImage: strPtr(unsplash + "photo-1465495976277-4387d4b0b4c6?auto=format&fit=crop&w=800&q=80"),
			CoverImage:   strPtr(unsplash + "photo-1519225421980-715cb0215aed?auto=format&fit=crop&w=2000&q=80"),
			Gallery: model.StringList{
				unsplash + "photo-1519225421980-715cb0215aed?auto=format&fit=crop&w=800&q=80",
				unsplash + "photo-1511578314322-379afb476865?auto=format&fit=crop&w=800&q=80",
				unsplash + "photo-1465495976277-4387d4b0b4c6?auto=format&fit=crop&w=800&q=80",
				unsplash + "photo-1478146896981-b80fe463b330?auto=format&fit=crop&w=800&q=80",
			},
			Services: model.StringList{
				"Indoor and outdoor wedding ceremonies",
				"Reception space for up to 200 guests",
				"Bridal suite and groom's quarters",
				"On-site catering services",
			},
			FeaturedEvent: strPtr("Wedding"),
		}},
		{"vendor2", &model.CreateVendorRequest{
			BusinessName: "Elite Decorations",
			Description:  "Premium event decoration services for all occasions",
			Category:     "Decoration",
			Phone:        "555-567-8910",
			Email:        "info@elitedecorations.com",
			Website:      strPtr("https://www.elitedecorations.com"),
			Address:      strPtr("456 Design Blvd"),
			City:         "Los Angeles",
			State:        "CA",
			ZipCode:      strPtr("90001"),
			ProfileImage: strPtr(unsplash + "photo-1510076857177-7470076d4098?auto=format&fit=crop&w=800&q=80"),
			CoverImage:   strPtr(unsplash + "photo-1510076857177-7470076d4098?auto=format&fit=crop&w=2000&q=80"),
			Gallery: model.StringList{
				unsplash + "photo-1510076857177-7470076d4098?auto=format&fit=crop&w=800&q=80",
				unsplash + "photo-1519225421980-715cb0215aed?auto=format&fit=crop&w=800&q=80",
				unsplash + "photo-1511578314322-379afb476865?auto=format&fit=crop&w=800&q=80",
				unsplash + "photo-1465495976277-4387d4b0b4c6?auto=format&fit=crop&w=800&q=80",
			},
			Services: model.StringList{
				"Theme-based decoration packages",
				"Floral arrangements and centerpieces",
				"Lighting design and installation",
				"Custom props and backdrops",
			},
			FeaturedEvent: strPtr("Birthday"),
		}},
		{"vendor3", &model.CreateVendorRequest{
			BusinessName: "Gourmet Delights",
			Description:  "Exquisite catering service with customized menus",
			Category:     "Catering",
			Phone:        "555-111-2222",
			Email:        "info@gourmetdelights.com",
			Website:      strPtr("https://www.gourmetdelights.com"),
			Address:      strPtr("789 Cuisine Ave"),
			City:         "New York",
			State:        "NY",
			ZipCode:      strPtr("10001"),
			ProfileImage: strPtr(unsplash + "photo-1414235077428-338989a2e8c0?auto=format&fit=crop&w=800&q=80"),
			CoverImage:   strPtr(unsplash + "photo-1414235077428-338989a2e8c0?auto=format&fit=crop&w=2000&q=80"),
			Gallery: model.StringList{
				unsplash + "photo-1414235077428-338989a2e8c0?auto=format&fit=crop&w=800&q=80",
			},
			Services: model.StringList{
				"Customized menu planning",
				"Full-service staff",
				"Bar services",
				"Dessert stations",
			},
			FeaturedEvent: strPtr("Corporate Event"),
		}},
	}
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
