package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"unilagyard/internal/domain/entity"
	"unilagyard/internal/domain/repository"
	"unilagyard/pkg/errors"
)

type firestoreSavedProductRepository struct {
	client *firestore.Client
}

func NewFirestoreSavedProductRepository(client *firestore.Client) repository.SavedProductRepository {
	return &firestoreSavedProductRepository{
		client: client,
	}
}

func (r *firestoreSavedProductRepository) Create(ctx context.Context, saved *entity.SavedProduct) error {
	if saved.ID == "" {
		saved.ID = uuid.New().String()
	}
	if saved.CreatedAt.IsZero() {
		saved.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("savedProducts").Doc(saved.ID).Set(ctx, saved)
	if err != nil {
		return errors.Internal("Failed to save product", err)
	}

	return nil
}

func (r *firestoreSavedProductRepository) GetByUserAndProduct(ctx context.Context, userID, productID string) (*entity.SavedProduct, error) {
	iter := r.client.Collection("savedProducts").
		Where("userId", "==", userID).
		Where("productId", "==", productID).
		Limit(1).
		Documents(ctx)

	doc, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Saved product", nil)
		}
		return nil, errors.Internal("Failed to query saved products", err)
	}

	var saved entity.SavedProduct
	if err := doc.DataTo(&saved); err != nil {
		return nil, errors.Internal("Failed to parse saved product data", err)
	}

	return &saved, nil
}

func (r *firestoreSavedProductRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("savedProducts").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete saved product", err)
	}

	return nil
}

func (r *firestoreSavedProductRepository) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.SavedProduct, int64, error) {
	query := r.client.Collection("savedProducts").
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count saved products", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var saved []*entity.SavedProduct

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate saved products", err)
		}

		var item entity.SavedProduct
		if err := doc.DataTo(&item); err != nil {
			return nil, 0, errors.Internal("Failed to parse saved product data", err)
		}
		saved = append(saved, &item)
	}

	return saved, total, nil
}
