package seed

import (
	"context"
	"os"
	"testing"
	"time"

	eventrequestapp "github.com/browbeat/event-marketplace/application/eventrequest"
	reviewapp "github.com/browbeat/event-marketplace/application/review"
	userapp "github.com/browbeat/event-marketplace/application/user"
	vendorapp "github.com/browbeat/event-marketplace/application/vendor"
	"github.com/browbeat/event-marketplace/cmd/config"
	"github.com/browbeat/event-marketplace/constant"
	"github.com/browbeat/event-marketplace/model"
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

func TestMain(m *testing.M) {
	logger.Set(zap.NewNop())
	os.Exit(m.Run())
}

func TestSeeder_Run(t *testing.T) {
	cfg := &config.Config{Auth: config.AuthConfig{JWTSecret: "s", JWTExpiration: time.Hour, SessionExpTime: time.Hour}}
	txRepo := txrepo.NewMemoryTxRepository()
	userRepo := userrepo.NewMemoryUserRepository()
	vendorRepo := vendorrepo.NewMemoryVendorRepository()
	publisher := rabbitmq.NoopPublisher{}

	users := userapp.NewUserApp(cfg, txRepo, userRepo, redisrepo.NewMemoryRepository(), publisher)
	vendors := vendorapp.NewVendorApp(txRepo, vendorRepo, userRepo, publisher)
	requests := eventrequestapp.NewEventRequestApp(txRepo, eventrequestrepo.NewMemoryEventRequestRepository(), userRepo, vendorRepo, publisher)
	reviews := reviewapp.NewReviewApp(txRepo, reviewrepo.NewMemoryReviewRepository(), userRepo, vendorRepo, publisher)

	ctx := context.Background()
	require.NoError(t, NewSeeder(users, vendors, requests, reviews).Run(ctx))

	all, err := vendors.ListVendors(ctx, &model.VendorFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Harmony Gardens", all[0].BusinessName)
	assert.Equal(t, 5.0, all[0].Rating)
	assert.Equal(t, 1, all[0].ReviewCount)
	assert.Equal(t, 4.0, all[1].Rating)
	assert.Zero(t, all[2].ReviewCount)

	// every vendor has its own owner
	owners := map[uint64]bool{}
	for _, v := range all {
		owners[v.UserID] = true
		u, err := users.GetUser(ctx, v.UserID)
		require.NoError(t, err)
		assert.True(t, u.IsVendor)
	}
	assert.Len(t, owners, 3)

	client, err := users.GetUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "client1", client.Username)
	assert.False(t, client.IsVendor)

	list, err := requests.ListEventRequests(ctx, &model.EventRequestFilter{UserID: client.ID})
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, r := range list {
		assert.Equal(t, constant.EventRequestStatusPending, r.Status)
	}

	login, err := users.Login(ctx, &model.LoginRequest{Username: "vendor3", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
}
