package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unilagyard/internal/domain/entity"
	"unilagyard/pkg/errors"
)

func newAdminTestCase(
	userRepo *fakeUserRepo,
	productRepo *fakeProductRepo,
	reportRepo *fakeReportRepo,
	chatRepo *fakeChatRepo,
	verificationRepo *fakeVerificationRepo,
	notificationRepo *fakeNotificationRepo,
	authClient *fakeAuthClient,
) *AdminUseCase {
	return NewAdminUseCase(userRepo, productRepo, reportRepo, chatRepo, verificationRepo, notificationRepo, authClient)
}

func TestBanUserDeactivatesActiveListings(t *testing.T) {
	seller := &entity.User{ID: "seller-1", Role: "user", Status: "active"}
	userRepo := newFakeUserRepo(seller)

	active1 := product("p1", false, false, time.Now())
	active2 := product("p2", true, false, time.Now())
	sold := product("p3", false, false, time.Now())
	sold.Status = "sold"
	productRepo := newFakeProductRepo(active1, active2, sold)

	authClient := newFakeAuthClient()
	uc := newAdminTestCase(userRepo, productRepo, newFakeReportRepo(), newFakeChatRepo(), newFakeVerificationRepo(), &fakeNotificationRepo{}, authClient)

	banned, err := uc.BanUser(context.Background(), "seller-1")

	require.NoError(t, err)
	assert.Equal(t, "banned", banned.Status)
	assert.True(t, authClient.disabled["seller-1"])

	assert.Equal(t, "inactive", productRepo.products["p1"].Status)
	assert.Equal(t, "inactive", productRepo.products["p2"].Status)
	// Only active listings are swept.
	assert.Equal(t, "sold", productRepo.products["p3"].Status)

	// The banned seller's listings no longer surface in the feed.
	feed, err := productRepo.ListActive(context.Background())
	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestBanUserRefusesAdmins(t *testing.T) {
	admin := &entity.User{ID: "admin-1", Role: "admin", Status: "active"}
	uc := newAdminTestCase(newFakeUserRepo(admin), newFakeProductRepo(), newFakeReportRepo(), newFakeChatRepo(), newFakeVerificationRepo(), &fakeNotificationRepo{}, newFakeAuthClient())

	_, err := uc.BanUser(context.Background(), "admin-1")

	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestResolveReportNotifiesReporter(t *testing.T) {
	report := &entity.Report{ID: "report-1", ReporterID: "buyer-1", Status: "pending"}
	reportRepo := newFakeReportRepo(report)
	notificationRepo := &fakeNotificationRepo{}
	uc := newAdminTestCase(newFakeUserRepo(), newFakeProductRepo(), reportRepo, newFakeChatRepo(), newFakeVerificationRepo(), notificationRepo, newFakeAuthClient())

	resolved, err := uc.ResolveReport(context.Background(), "report-1")

	require.NoError(t, err)
	assert.Equal(t, "resolved", resolved.Status)
	require.NotNil(t, resolved.ResolvedAt)

	require.Len(t, notificationRepo.notifications, 1)
	assert.Equal(t, "buyer-1", notificationRepo.notifications[0].UserID)
	assert.Equal(t, "report", notificationRepo.notifications[0].Type)
}

func TestCloseReportTwiceConflicts(t *testing.T) {
	report := &entity.Report{ID: "report-1", ReporterID: "buyer-1", Status: "pending"}
	uc := newAdminTestCase(newFakeUserRepo(), newFakeProductRepo(), newFakeReportRepo(report), newFakeChatRepo(), newFakeVerificationRepo(), &fakeNotificationRepo{}, newFakeAuthClient())

	_, err := uc.DismissReport(context.Background(), "report-1")
	require.NoError(t, err)

	_, err = uc.ResolveReport(context.Background(), "report-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestApproveVerificationUpdatesUserStatus(t *testing.T) {
	user := &entity.User{ID: "user-1", VerificationStatus: "pending"}
	userRepo := newFakeUserRepo(user)

	verificationRepo := newFakeVerificationRepo()
	require.NoError(t, verificationRepo.Upsert(context.Background(), &entity.VerificationRequest{
		UserID:       "user-1",
		MatricNumber: "180401001",
		Status:       "pending",
	}))

	notificationRepo := &fakeNotificationRepo{}
	uc := newAdminTestCase(userRepo, newFakeProductRepo(), newFakeReportRepo(), newFakeChatRepo(), verificationRepo, notificationRepo, newFakeAuthClient())

	request, err := uc.ApproveVerification(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, "approved", request.Status)

	updated, err := userRepo.GetByID(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "verified", updated.VerificationStatus)

	require.Len(t, notificationRepo.notifications, 1)
	assert.Equal(t, "verification", notificationRepo.notifications[0].Type)
}

func TestRejectVerificationLeavesUserRejected(t *testing.T) {
	user := &entity.User{ID: "user-1", VerificationStatus: "pending"}
	userRepo := newFakeUserRepo(user)

	verificationRepo := newFakeVerificationRepo()
	require.NoError(t, verificationRepo.Upsert(context.Background(), &entity.VerificationRequest{
		UserID: "user-1",
		Status: "pending",
	}))

	uc := newAdminTestCase(userRepo, newFakeProductRepo(), newFakeReportRepo(), newFakeChatRepo(), verificationRepo, &fakeNotificationRepo{}, newFakeAuthClient())

	request, err := uc.RejectVerification(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, "rejected", request.Status)

	updated, err := userRepo.GetByID(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "rejected", updated.VerificationStatus)
}

func TestGetDashboardStats(t *testing.T) {
	userRepo := newFakeUserRepo(
		&entity.User{ID: "u1"},
		&entity.User{ID: "u2"},
	)
	productRepo := newFakeProductRepo(
		product("p1", false, false, time.Now()),
	)
	reportRepo := newFakeReportRepo(
		&entity.Report{ID: "r1", Status: "pending"},
		&entity.Report{ID: "r2", Status: "resolved"},
	)
	chatRepo := newFakeChatRepo(directChat("c1", "u1", "u2"))

	uc := newAdminTestCase(userRepo, productRepo, reportRepo, chatRepo, newFakeVerificationRepo(), &fakeNotificationRepo{}, newFakeAuthClient())

	stats, err := uc.GetDashboardStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.ActiveProducts)
	assert.Equal(t, int64(1), stats.PendingReports)
	assert.Equal(t, int64(1), stats.Conversations)
}
