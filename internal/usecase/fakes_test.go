package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"unilagyard/internal/domain/entity"
	"unilagyard/internal/domain/service"
	"unilagyard/pkg/errors"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.User, int64, error) {
	var users []*entity.User
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, int64(len(users)), nil
}

func (r *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
	nextID   int
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		r.nextID++
		product.ID = fmt.Sprintf("product-%d", r.nextID)
	}
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	product, ok := r.products[id]
	if !ok || product.DeletedAt != nil {
		return nil, errors.NotFound("Product", nil)
	}
	return product, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) SoftDelete(ctx context.Context, id string) error {
	product, ok := r.products[id]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	now := time.Now()
	product.DeletedAt = &now
	return nil
}

func (r *fakeProductRepo) IncrementViews(ctx context.Context, id string) error {
	if product, ok := r.products[id]; ok {
		product.Views++
	}
	return nil
}

func (r *fakeProductRepo) ListActive(ctx context.Context) ([]*entity.Product, error) {
	var active []*entity.Product
	for _, p := range r.products {
		if p.Status == "active" && p.DeletedAt == nil {
			active = append(active, p)
		}
	}
	return active, nil
}

func (r *fakeProductRepo) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Product, int64, error) {
	var products []*entity.Product
	for _, p := range r.products {
		products = append(products, p)
	}
	return products, int64(len(products)), nil
}

func (r *fakeProductRepo) ListBySellerID(ctx context.Context, sellerID, status string, limit, offset int) ([]*entity.Product, int64, error) {
	var products []*entity.Product
	for _, p := range r.products {
		if p.SellerID != sellerID || p.DeletedAt != nil {
			continue
		}
		if status != "" && p.Status != status {
			continue
		}
		products = append(products, p)
	}
	return products, int64(len(products)), nil
}

func (r *fakeProductRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	for _, p := range r.products {
		if p.Status == status && p.DeletedAt == nil {
			count++
		}
	}
	return count, nil
}

type fakeChatRepo struct {
	chats              map[string]*entity.Chat
	messages           []*entity.Message
	createMessageCalls int
	updateCalls        int
	nextID             int
}

func newFakeChatRepo(chats ...*entity.Chat) *fakeChatRepo {
	repo := &fakeChatRepo{chats: make(map[string]*entity.Chat)}
	for _, c := range chats {
		repo.chats[c.ID] = c
	}
	return repo
}

func (r *fakeChatRepo) Create(ctx context.Context, chat *entity.Chat) error {
	if chat.ID == "" {
		r.nextID++
		chat.ID = fmt.Sprintf("chat-%d", r.nextID)
	}
	chat.CreatedAt = time.Now()
	r.chats[chat.ID] = chat
	return nil
}

func (r *fakeChatRepo) GetByID(ctx context.Context, id string) (*entity.Chat, error) {
	chat, ok := r.chats[id]
	if !ok {
		return nil, errors.NotFound("Chat", nil)
	}
	return chat, nil
}

func (r *fakeChatRepo) Update(ctx context.Context, chat *entity.Chat) error {
	r.updateCalls++
	r.chats[chat.ID] = chat
	return nil
}

func (r *fakeChatRepo) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Chat, int64, error) {
	var chats []*entity.Chat
	for _, c := range r.chats {
		for _, p := range c.Participants {
			if p == userID {
				chats = append(chats, c)
				break
			}
		}
	}
	return chats, int64(len(chats)), nil
}

func (r *fakeChatRepo) ListAll(ctx context.Context, limit, offset int) ([]*entity.Chat, int64, error) {
	var chats []*entity.Chat
	for _, c := range r.chats {
		chats = append(chats, c)
	}
	return chats, int64(len(chats)), nil
}

func (r *fakeChatRepo) FindByParticipants(ctx context.Context, userID, otherUserID, productID string) (*entity.Chat, error) {
	for _, c := range r.chats {
		if productID != "" && c.ProductID != productID {
			continue
		}
		var hasUser, hasOther bool
		for _, p := range c.Participants {
			if p == userID {
				hasUser = true
			}
			if p == otherUserID {
				hasOther = true
			}
		}
		if hasUser && hasOther {
			return c, nil
		}
	}
	return nil, errors.NotFound("Chat", nil)
}

func (r *fakeChatRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.chats)), nil
}

func (r *fakeChatRepo) CreateMessage(ctx context.Context, message *entity.Message) error {
	r.createMessageCalls++
	if message.ID == "" {
		message.ID = fmt.Sprintf("message-%d", r.createMessageCalls)
	}
	message.CreatedAt = time.Now()
	r.messages = append(r.messages, message)
	return nil
}

func (r *fakeChatRepo) GetMessagesByChat(ctx context.Context, chatID string, limit, offset int) ([]*entity.Message, int64, error) {
	var messages []*entity.Message
	for _, m := range r.messages {
		if m.ChatID == chatID {
			messages = append(messages, m)
		}
	}
	return messages, int64(len(messages)), nil
}

func (r *fakeChatRepo) ListUnreadMessages(ctx context.Context, chatID, userID string) ([]*entity.Message, error) {
	var unread []*entity.Message
	for _, m := range r.messages {
		if m.ChatID == chatID && !m.Read && m.SenderID != userID {
			unread = append(unread, m)
		}
	}
	return unread, nil
}

func (r *fakeChatRepo) MarkMessageRead(ctx context.Context, chatID, messageID string) error {
	for _, m := range r.messages {
		if m.ID == messageID {
			m.Read = true
			return nil
		}
	}
	return nil
}

type fakeSavedProductRepo struct {
	saved map[string]*entity.SavedProduct
}

func newFakeSavedProductRepo() *fakeSavedProductRepo {
	return &fakeSavedProductRepo{saved: make(map[string]*entity.SavedProduct)}
}

func (r *fakeSavedProductRepo) Create(ctx context.Context, saved *entity.SavedProduct) error {
	if saved.ID == "" {
		saved.ID = saved.UserID + ":" + saved.ProductID
	}
	r.saved[saved.ID] = saved
	return nil
}

func (r *fakeSavedProductRepo) GetByUserAndProduct(ctx context.Context, userID, productID string) (*entity.SavedProduct, error) {
	saved, ok := r.saved[userID+":"+productID]
	if !ok {
		return nil, errors.NotFound("Saved product", nil)
	}
	return saved, nil
}

func (r *fakeSavedProductRepo) Delete(ctx context.Context, id string) error {
	delete(r.saved, id)
	return nil
}

func (r *fakeSavedProductRepo) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.SavedProduct, int64, error) {
	var items []*entity.SavedProduct
	for _, s := range r.saved {
		if s.UserID == userID {
			items = append(items, s)
		}
	}
	return items, int64(len(items)), nil
}

type fakeNotificationRepo struct {
	notifications []*entity.Notification
}

func (r *fakeNotificationRepo) Create(ctx context.Context, notification *entity.Notification) error {
	notification.ID = fmt.Sprintf("notification-%d", len(r.notifications)+1)
	notification.CreatedAt = time.Now()
	r.notifications = append(r.notifications, notification)
	return nil
}

func (r *fakeNotificationRepo) GetByID(ctx context.Context, id string) (*entity.Notification, error) {
	for _, n := range r.notifications {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, errors.NotFound("Notification", nil)
}

func (r *fakeNotificationRepo) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Notification, int64, error) {
	var items []*entity.Notification
	for _, n := range r.notifications {
		if n.UserID == userID {
			items = append(items, n)
		}
	}
	return items, int64(len(items)), nil
}

func (r *fakeNotificationRepo) MarkRead(ctx context.Context, id string) error {
	for _, n := range r.notifications {
		if n.ID == id {
			n.Read = true
		}
	}
	return nil
}

type fakeVerificationRepo struct {
	requests map[string]*entity.VerificationRequest
}

func newFakeVerificationRepo() *fakeVerificationRepo {
	return &fakeVerificationRepo{requests: make(map[string]*entity.VerificationRequest)}
}

func (r *fakeVerificationRepo) Upsert(ctx context.Context, request *entity.VerificationRequest) error {
	request.ID = request.UserID
	r.requests[request.UserID] = request
	return nil
}

func (r *fakeVerificationRepo) GetByUserID(ctx context.Context, userID string) (*entity.VerificationRequest, error) {
	request, ok := r.requests[userID]
	if !ok {
		return nil, errors.NotFound("Verification request", nil)
	}
	return request, nil
}

func (r *fakeVerificationRepo) Update(ctx context.Context, request *entity.VerificationRequest) error {
	r.requests[request.UserID] = request
	return nil
}

func (r *fakeVerificationRepo) ListByStatus(ctx context.Context, status string, limit, offset int) ([]*entity.VerificationRequest, int64, error) {
	var items []*entity.VerificationRequest
	for _, req := range r.requests {
		if req.Status == status {
			items = append(items, req)
		}
	}
	return items, int64(len(items)), nil
}

type fakeReportRepo struct {
	reports map[string]*entity.Report
	nextID  int
}

func newFakeReportRepo(reports ...*entity.Report) *fakeReportRepo {
	repo := &fakeReportRepo{reports: make(map[string]*entity.Report)}
	for _, rep := range reports {
		repo.reports[rep.ID] = rep
	}
	return repo
}

func (r *fakeReportRepo) Create(ctx context.Context, report *entity.Report) error {
	if report.ID == "" {
		r.nextID++
		report.ID = fmt.Sprintf("report-%d", r.nextID)
	}
	report.CreatedAt = time.Now()
	r.reports[report.ID] = report
	return nil
}

func (r *fakeReportRepo) GetByID(ctx context.Context, id string) (*entity.Report, error) {
	report, ok := r.reports[id]
	if !ok {
		return nil, errors.NotFound("Report", nil)
	}
	return report, nil
}

func (r *fakeReportRepo) Update(ctx context.Context, report *entity.Report) error {
	r.reports[report.ID] = report
	return nil
}

func (r *fakeReportRepo) ListByStatus(ctx context.Context, status string, limit, offset int) ([]*entity.Report, int64, error) {
	var items []*entity.Report
	for _, rep := range r.reports {
		if rep.Status == status {
			items = append(items, rep)
		}
	}
	return items, int64(len(items)), nil
}

func (r *fakeReportRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	items, _, _ := r.ListByStatus(ctx, status, 0, 0)
	return int64(len(items)), nil
}

type fakePaymentRepo struct {
	payments map[string]*entity.PaymentRecord
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[string]*entity.PaymentRecord)}
}

func (r *fakePaymentRepo) Create(ctx context.Context, payment *entity.PaymentRecord) error {
	payment.ID = payment.TxRef
	payment.CreatedAt = time.Now()
	r.payments[payment.TxRef] = payment
	return nil
}

func (r *fakePaymentRepo) GetByTxRef(ctx context.Context, txRef string) (*entity.PaymentRecord, error) {
	payment, ok := r.payments[txRef]
	if !ok {
		return nil, errors.NotFound("Payment", nil)
	}
	return payment, nil
}

func (r *fakePaymentRepo) Update(ctx context.Context, payment *entity.PaymentRecord) error {
	r.payments[payment.TxRef] = payment
	return nil
}

func (r *fakePaymentRepo) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.PaymentRecord, int64, error) {
	var items []*entity.PaymentRecord
	for _, p := range r.payments {
		if p.UserID == userID {
			items = append(items, p)
		}
	}
	return items, int64(len(items)), nil
}

type fakeAuthClient struct {
	disabled map[string]bool
}

func newFakeAuthClient() *fakeAuthClient {
	return &fakeAuthClient{disabled: make(map[string]bool)}
}

func (c *fakeAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	return "uid-" + email, nil
}

func (c *fakeAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	return token, nil
}

func (c *fakeAuthClient) SignInWithEmailPassword(email, password string) (string, string, error) {
	return "token-" + email, "refresh-" + email, nil
}

func (c *fakeAuthClient) DisableUser(ctx context.Context, uid string) error {
	c.disabled[uid] = true
	return nil
}

type fakeUploader struct {
	calls int
}

func (u *fakeUploader) Upload(ctx context.Context, file io.Reader, filename, contentType string) (*service.HostedDocument, error) {
	u.calls++
	return &service.HostedDocument{
		URL:       "https://i.ibb.co/fake/" + filename,
		DeleteURL: "https://ibb.co/fake/delete",
	}, nil
}

type fakeGateway struct {
	verified    *service.VerifiedTransaction
	verifyErr   error
	verifyCalls int
}

func (g *fakeGateway) BuildCheckoutConfig(txRef string, amount float64, currency string, customer service.CustomerDetails, redirectURL string) service.CheckoutConfig {
	return service.CheckoutConfig{
		PublicKey:   "pk-test",
		TxRef:       txRef,
		Amount:      amount,
		Currency:    currency,
		RedirectURL: redirectURL,
		Customer:    customer,
	}
}

func (g *fakeGateway) VerifyTransaction(ctx context.Context, transactionID string) (*service.VerifiedTransaction, error) {
	g.verifyCalls++
	if g.verifyErr != nil {
		return nil, g.verifyErr
	}
	return g.verified, nil
}
