package transport

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	eventrequestapp "github.com/browbeat/event-marketplace/application/eventrequest"
	reviewapp "github.com/browbeat/event-marketplace/application/review"
	userapp "github.com/browbeat/event-marketplace/application/user"
	vendorapp "github.com/browbeat/event-marketplace/application/vendor"
	"github.com/browbeat/event-marketplace/cmd/config"
	eventrequestrepo "github.com/browbeat/event-marketplace/repository/eventrequest"
	redisrepo "github.com/browbeat/event-marketplace/repository/redis"
	reviewrepo "github.com/browbeat/event-marketplace/repository/review"
	txrepo "github.com/browbeat/event-marketplace/repository/tx"
	userrepo "github.com/browbeat/event-marketplace/repository/user"
	vendorrepo "github.com/browbeat/event-marketplace/repository/vendor"
	"github.com/browbeat/event-marketplace/thirdparty/rabbitmq"
	"github.com/browbeat/event-marketplace/utils/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testInternalKey = "internal-key"

func TestMain(m *testing.M) {
	logger.Set(zap.NewNop())
	os.Exit(m.Run())
}

type testServer struct {
	t       *testing.T
	handler http.Handler
}

func newTestServer(t *testing.T, cacheEnabled bool) *testServer {
	t.Helper()
	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret",
			JWTExpiration:   time.Hour,
			SessionExpTime:  time.Hour,
			InternalAPIKey:  testInternalKey,
			PasswordHashing: "plain",
		},
		Cache: config.CacheConfig{
			Enabled:      cacheEnabled,
			VendorTTL:    time.Minute,
			ReferenceTTL: time.Hour,
		},
	}

	txRepo := txrepo.NewMemoryTxRepository()
	userRepo := userrepo.NewMemoryUserRepository()
	vendorRepo := vendorrepo.NewMemoryVendorRepository()
	eventRequestRepo := eventrequestrepo.NewMemoryEventRequestRepository()
	reviewRepo := reviewrepo.NewMemoryReviewRepository()
	kv := redisrepo.NewMemoryRepository()
	publisher := rabbitmq.NoopPublisher{}

	handler := NewTransport(cfg, kv,
		userapp.NewUserApp(cfg, txRepo, userRepo, kv, publisher),
		vendorapp.NewVendorApp(txRepo, vendorRepo, userRepo, publisher),
		eventrequestapp.NewEventRequestApp(txRepo, eventRequestRepo, userRepo, vendorRepo, publisher),
		reviewapp.NewReviewApp(txRepo, reviewRepo, userRepo, vendorRepo, publisher),
	)
	return &testServer{t: t, handler: handler}
}

func (s *testServer) do(method, path, body string, headers ...string) *httptest.ResponseRecorder {
	s.t.Helper()
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func (s *testServer) createUser(username string) {
	s.t.Helper()
	rec := s.do(http.MethodPost, "/api/users",
		`{"username":"`+username+`","password":"password123","email":"`+username+`@example.com"}`)
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())
}

func (s *testServer) createVendor(userID, name, category, city string) {
	s.t.Helper()
	rec := s.do(http.MethodPost, "/api/vendors", `{
		"userId":`+userID+`,"businessName":"`+name+`","description":"Best in town",
		"category":"`+category+`","phone":"555-0100","email":"biz@example.com",
		"city":"`+city+`","state":"CA","gallery":["a.jpg"]}`)
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestUsers(t *testing.T) {
	s := newTestServer(t, false)

	rec := s.do(http.MethodPost, "/api/users", `{"username":"alice","password":"secret","email":"alice@example.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, false, body["isVendor"])
	assert.NotContains(t, body, "password")

	rec = s.do(http.MethodPost, "/api/users", `{"username":"ALICE","password":"x","email":"other@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Username already exists", decode(t, rec)["message"])

	rec = s.do(http.MethodPost, "/api/users", `{"username":"alice2","password":"x","email":"ALICE@Example.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email already exists", decode(t, rec)["message"])

	rec = s.do(http.MethodPost, "/api/users", `{"username":"bob","email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errs := decode(t, rec)["errors"].([]interface{})
	assert.Len(t, errs, 2)

	rec = s.do(http.MethodPost, "/api/users", `{"username":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body", decode(t, rec)["message"])
	assert.NotContains(t, decode(t, rec), "errors")

	rec = s.do(http.MethodPost, "/api/users", `{"username":"carol","password":"secret","email":"carol@example.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, float64(2), decode(t, rec)["id"])

	rec = s.do(http.MethodGet, "/api/users/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", decode(t, rec)["username"])

	rec = s.do(http.MethodPatch, "/api/users/1", `{"fullName":"Alice Smith"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Alice Smith", decode(t, rec)["fullName"])

	rec = s.do(http.MethodPatch, "/api/users/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	unchanged := decode(t, rec)
	assert.Equal(t, "alice", unchanged["username"])
	assert.Equal(t, "Alice Smith", unchanged["fullName"])
	assert.Equal(t, "alice@example.com", unchanged["email"])

	rec = s.do(http.MethodPatch, "/api/users/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", decode(t, rec)["message"])

	rec = s.do(http.MethodPatch, "/api/users/99", `{"email":"not-an-email"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodPatch, "/api/users/1", `{"email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodGet, "/api/users/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodGet, "/api/users/abc", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestAuthSession(t *testing.T) {
	s := newTestServer(t, false)
	s.createUser("alice")

	rec := s.do(http.MethodGet, "/api/auth/me", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodPost, "/api/auth/login", `{"username":"alice","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodPost, "/api/auth/login", `{"username":"alice","password":"password123"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	login := decode(t, rec)
	token, _ := login["token"].(string)
	require.NotEmpty(t, token)
	assert.NotContains(t, login, "password")

	rec = s.do(http.MethodGet, "/api/auth/me", "", "Authorization", "Bearer "+token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", decode(t, rec)["username"])

	rec = s.do(http.MethodPost, "/api/auth/logout", "", "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, "/api/auth/me", "", "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVendors(t *testing.T) {
	s := newTestServer(t, false)
	s.createUser("owner1")
	s.createUser("owner2")
	s.createUser("owner3")
	s.createVendor("1", "Harmony Gardens", "Venue", "San Francisco")
	s.createVendor("2", "Elite Decorations", "Decoration", "Los Angeles")

	rec := s.do(http.MethodGet, "/api/users/1", "")
	assert.Equal(t, true, decode(t, rec)["isVendor"])

	rec = s.do(http.MethodGet, "/api/users/1/vendor", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Harmony Gardens", decode(t, rec)["businessName"])

	rec = s.do(http.MethodGet, "/api/users/3/vendor", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodPost, "/api/vendors", `{"userId":1,"businessName":"Again","description":"d","category":"Venue","phone":"1","email":"a@b.co","city":"X","state":"Y"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "User is already a vendor", decode(t, rec)["message"])

	rec = s.do(http.MethodPost, "/api/vendors", `{"userId":42,"businessName":"Ghost","description":"d","category":"Venue","phone":"1","email":"a@b.co","city":"X","state":"Y"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/api/vendors", `{"userId":3,"businessName":"Bad","description":"d","category":"Juggling","phone":"1","email":"a@b.co","city":"X","state":"Y"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	tests := []struct {
		name      string
		query     string
		wantNames []string
	}{
		{name: "all", query: "", wantNames: []string{"Harmony Gardens", "Elite Decorations"}},
		{name: "category", query: "?category=venue", wantNames: []string{"Harmony Gardens"}},
		{name: "city", query: "?city=Los%20Angeles", wantNames: []string{"Elite Decorations"}},
		{name: "search", query: "?search=ELITE", wantNames: []string{"Elite Decorations"}},
		{name: "no match", query: "?category=Music", wantNames: []string{}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(http.MethodGet, "/api/vendors"+tt.query, "")
			require.Equal(t, http.StatusOK, rec.Code)
			names := []string{}
			for _, v := range decodeList(t, rec) {
				names = append(names, v["businessName"].(string))
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}

	rec = s.do(http.MethodPatch, "/api/vendors/2", `{"city":"San Diego","rating":5}`)
	require.Equal(t, http.StatusOK, rec.Code)
	patched := decode(t, rec)
	assert.Equal(t, "San Diego", patched["city"])
	assert.Equal(t, float64(0), patched["rating"])

	rec = s.do(http.MethodGet, "/api/vendors/9", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Vendor not found", decode(t, rec)["message"])

	rec = s.do(http.MethodPatch, "/api/vendors/99", `{"category":"Juggling"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Vendor not found", decode(t, rec)["message"])

	rec = s.do(http.MethodPatch, "/api/vendors/2", `{"category":"Juggling"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFeaturedVendors(t *testing.T) {
	s := newTestServer(t, false)
	for i, name := range []string{"A", "B", "C"} {
		s.createUser("owner" + name)
		s.createVendor(string(rune('1'+i)), name, "Venue", "Austin")
	}
	s.createUser("reviewer")
	rec := s.do(http.MethodPost, "/api/reviews", `{"userId":4,"vendorId":2,"rating":5}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/vendors/featured?limit=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	featured := decodeList(t, rec)
	require.Len(t, featured, 2)
	assert.Equal(t, "B", featured[0]["businessName"])
	assert.Equal(t, "A", featured[1]["businessName"])

	rec = s.do(http.MethodGet, "/api/vendors/featured", "")
	assert.Len(t, decodeList(t, rec), 3)

	for _, bad := range []string{"0", "-1", "abc"} {
		rec = s.do(http.MethodGet, "/api/vendors/featured?limit="+bad, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, bad)
	}
}

func TestReviewsUpdateRating(t *testing.T) {
	s := newTestServer(t, false)
	s.createUser("owner")
	s.createUser("client")
	s.createVendor("1", "Harmony Gardens", "Venue", "Austin")

	for _, body := range []string{
		`{"userId":2,"vendorId":1,"rating":5,"comment":"Great"}`,
		`{"userId":2,"vendorId":1,"rating":3}`,
	} {
		rec := s.do(http.MethodPost, "/api/reviews", body)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := s.do(http.MethodGet, "/api/vendors/1", "")
	vendor := decode(t, rec)
	assert.Equal(t, 4.0, vendor["rating"])
	assert.Equal(t, float64(2), vendor["reviewCount"])

	rec = s.do(http.MethodGet, "/api/reviews?vendorId=1", "")
	assert.Len(t, decodeList(t, rec), 2)

	rec = s.do(http.MethodPost, "/api/reviews", `{"userId":2,"vendorId":1,"rating":6}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/api/reviews", `{"userId":2,"vendorId":7,"rating":4}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{name: "rating as string", body: `{"userId":2,"vendorId":1,"rating":"5"}`, wantField: "rating"},
		{name: "userId as string", body: `{"userId":"2","vendorId":1,"rating":5}`, wantField: "userId"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(http.MethodPost, "/api/reviews", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			errs, ok := decode(t, rec)["errors"].([]interface{})
			require.True(t, ok, rec.Body.String())
			require.Len(t, errs, 1)
			fieldErr := errs[0].(map[string]interface{})
			assert.Equal(t, tt.wantField, fieldErr["field"])
			assert.Equal(t, "type", fieldErr["tag"])
		})
	}

	rec = s.do(http.MethodGet, "/api/vendors/1", "")
	assert.Equal(t, float64(2), decode(t, rec)["reviewCount"])

	rec = s.do(http.MethodGet, "/api/reviews?vendorId=x", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEventRequests(t *testing.T) {
	s := newTestServer(t, false)
	s.createUser("owner")
	s.createUser("client")
	s.createVendor("1", "Harmony Gardens", "Venue", "Austin")

	rec := s.do(http.MethodPost, "/api/event-requests", `{
		"userId":2,"vendorId":1,"eventType":"Wedding","eventDate":"2024-12-15",
		"guestCount":150,"startTime":"17:00","duration":5,"budget":15000,"status":"completed"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode(t, rec)
	assert.Equal(t, "pending", created["status"])

	rec = s.do(http.MethodPost, "/api/event-requests", `{
		"userId":2,"vendorId":1,"eventType":"Wedding","eventDate":"12/15/2024",
		"guestCount":150,"startTime":"17:00","duration":5}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPatch, "/api/event-requests/1", `{"status":"accepted"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "accepted", decode(t, rec)["status"])

	rec = s.do(http.MethodGet, "/api/event-requests/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode(t, rec)
	assert.Equal(t, "accepted", got["status"])
	for _, field := range []string{"eventType", "eventDate", "guestCount", "startTime", "duration", "budget", "userId", "vendorId", "createdAt"} {
		assert.Equal(t, created[field], got[field], field)
	}
	assert.Equal(t, "2024-12-15", got["eventDate"])
	assert.Equal(t, float64(150), got["guestCount"])
	assert.Equal(t, "17:00", got["startTime"])
	assert.Equal(t, float64(5), got["duration"])
	assert.Equal(t, float64(15000), got["budget"])
	assert.Equal(t, float64(2), got["userId"])
	assert.Equal(t, float64(1), got["vendorId"])

	rec = s.do(http.MethodPatch, "/api/event-requests/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodPatch, "/api/event-requests/1", `{"status":"archived"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodGet, "/api/event-requests?vendorId=1", "")
	assert.Len(t, decodeList(t, rec), 1)
	rec = s.do(http.MethodGet, "/api/event-requests?userId=1", "")
	assert.Len(t, decodeList(t, rec), 0)
	rec = s.do(http.MethodGet, "/api/event-requests?userId=0", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodGet, "/api/event-requests/5", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInternalComplete(t *testing.T) {
	s := newTestServer(t, false)
	s.createUser("owner")
	s.createUser("client")
	s.createVendor("1", "Harmony Gardens", "Venue", "Austin")
	rec := s.do(http.MethodPost, "/api/event-requests", `{"userId":2,"vendorId":1,"eventType":"Birthday","eventDate":"2024-10-20","guestCount":30,"startTime":"19:00","duration":4}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = s.do(http.MethodPost, "/internal/v1/event-requests/1/complete", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = s.do(http.MethodPost, "/internal/v1/event-requests/1/complete", "", "Authorization", "Bearer wrong")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// pending requests are left alone
	rec = s.do(http.MethodPost, "/internal/v1/event-requests/1/complete", "", "Authorization", "Bearer "+testInternalKey)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pending", decode(t, rec)["status"])

	rec = s.do(http.MethodPatch, "/api/event-requests/1", `{"status":"accepted"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodPost, "/internal/v1/event-requests/1/complete", "", "Authorization", "Bearer "+testInternalKey)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "completed", decode(t, rec)["status"])

	rec = s.do(http.MethodPost, "/internal/v1/event-requests/9/complete", "", "Authorization", "Bearer "+testInternalKey)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResponseCache(t *testing.T) {
	s := newTestServer(t, true)
	s.createUser("owner")
	s.createVendor("1", "Harmony Gardens", "Venue", "Austin")

	rec := s.do(http.MethodGet, "/api/vendors", "")
	assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))
	rec = s.do(http.MethodGet, "/api/vendors", "")
	assert.Equal(t, "HIT", rec.Header().Get("X-Cache"))
	assert.Len(t, decodeList(t, rec), 1)

	rec = s.do(http.MethodGet, "/api/vendors?category=Venue", "")
	assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))

	s.createUser("owner2")
	s.createVendor("2", "Elite Decorations", "Decoration", "Austin")

	rec = s.do(http.MethodGet, "/api/vendors", "")
	assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))
	assert.Len(t, decodeList(t, rec), 2)

	// failed writes keep the cache
	rec = s.do(http.MethodPost, "/api/vendors", `{"userId":1}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	rec = s.do(http.MethodGet, "/api/vendors", "")
	assert.Equal(t, "HIT", rec.Header().Get("X-Cache"))

	rec = s.do(http.MethodGet, "/api/users/1", "")
	assert.Empty(t, rec.Header().Get("X-Cache"))
}

func TestReferenceDataAndRouting(t *testing.T) {
	s := newTestServer(t, false)

	rec := s.do(http.MethodGet, "/api/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var categories []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
	assert.Contains(t, categories, "Venue")

	rec = s.do(http.MethodGet, "/api/event-types", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "Wedding"))

	rec = s.do(http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = s.do(http.MethodGet, "/healthz", "", "X-Request-ID", "trace-123")
	assert.Equal(t, "trace-123", rec.Header().Get("X-Request-ID"))

	rec = s.do(http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not found", decode(t, rec)["message"])

	rec = s.do(http.MethodDelete, "/api/vendors/1", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCORS(t *testing.T) {
	handler := CORSMiddleware([]string{"http://localhost:3000"})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/vendors", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/vendors", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
