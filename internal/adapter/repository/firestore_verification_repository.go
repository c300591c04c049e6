package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"unilagyard/internal/domain/entity"
	"unilagyard/internal/domain/repository"
	"unilagyard/pkg/errors"
)

type firestoreVerificationRepository struct {
	client *firestore.Client
}

func NewFirestoreVerificationRepository(client *firestore.Client) repository.VerificationRepository {
	return &firestoreVerificationRepository{
		client: client,
	}
}

func (r *firestoreVerificationRepository) Upsert(ctx context.Context, request *entity.VerificationRequest) error {
	request.ID = request.UserID

	now := time.Now()
	if request.CreatedAt.IsZero() {
		request.CreatedAt = now
	}
	request.UpdatedAt = now

	_, err := r.client.Collection("verifications").Doc(request.ID).Set(ctx, request)
	if err != nil {
		return errors.Internal("Failed to save verification request", err)
	}

	return nil
}

func (r *firestoreVerificationRepository) GetByUserID(ctx context.Context, userID string) (*entity.VerificationRequest, error) {
	doc, err := r.client.Collection("verifications").Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Verification request", err)
		}
		return nil, errors.Internal("Failed to get verification request", err)
	}

	var request entity.VerificationRequest
	if err := doc.DataTo(&request); err != nil {
		return nil, errors.Internal("Failed to parse verification data", err)
	}

	return &request, nil
}

func (r *firestoreVerificationRepository) Update(ctx context.Context, request *entity.VerificationRequest) error {
	request.UpdatedAt = time.Now()

	_, err := r.client.Collection("verifications").Doc(request.ID).Set(ctx, request)
	if err != nil {
		return errors.Internal("Failed to update verification request", err)
	}

	return nil
}

func (r *firestoreVerificationRepository) ListByStatus(ctx context.Context, status string, limit, offset int) ([]*entity.VerificationRequest, int64, error) {
	query := r.client.Collection("verifications").Query

	if status != "" {
		query = query.Where("status", "==", status)
	}
	query = query.OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count verification requests", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var requests []*entity.VerificationRequest

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate verification requests", err)
		}

		var request entity.VerificationRequest
		if err := doc.DataTo(&request); err != nil {
			return nil, 0, errors.Internal("Failed to parse verification data", err)
		}
		requests = append(requests, &request)
	}

	return requests, total, nil
}
