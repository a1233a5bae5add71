package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/storefront-server/internal/model"
)

var _ model.DownloadVerificationStore = (*DownloadVerificationRepository)(nil)

type DownloadVerificationRepository struct {
	db *Connection
}

func NewDownloadVerificationRepository(db *Connection) *DownloadVerificationRepository {
	return &DownloadVerificationRepository{db: db}
}

func (r *DownloadVerificationRepository) Create(ctx context.Context, v model.DownloadVerification) (model.DownloadVerification, error) {
	const query = `
		INSERT INTO download_verifications (id, product_id, expires_at)
		VALUES ($1, $2, $3)
		RETURNING id, product_id, expires_at, created_at`

	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}

	var saved model.DownloadVerification
	err := r.db.conn(ctx).QueryRow(ctx, query, v.ID, v.ProductID, v.ExpiresAt).Scan(
		&saved.ID, &saved.ProductID, &saved.ExpiresAt, &saved.CreatedAt,
	)
	if err != nil {
		return model.DownloadVerification{}, fmt.Errorf("failed to create download verification: %w", err)
	}

	return saved, nil
}

func (r *DownloadVerificationRepository) GetByID(ctx context.Context, id uuid.UUID) (model.DownloadVerification, error) {
	const query = `SELECT id, product_id, expires_at, created_at FROM download_verifications WHERE id = $1`

	var v model.DownloadVerification
	err := r.db.conn(ctx).QueryRow(ctx, query, id).Scan(&v.ID, &v.ProductID, &v.ExpiresAt, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.DownloadVerification{}, model.ErrNotFound
		}
		return model.DownloadVerification{}, fmt.Errorf("failed to get download verification: %w", err)
	}

	return v, nil
}
