package repository

import (
	"context"

	"lumina-hotel-api/internal/infra"
	"lumina-hotel-api/internal/infra/db"
	"lumina-hotel-api/internal/pkg/pgconv"
	"lumina-hotel-api/internal/usecase"
	"lumina-hotel-api/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const galleryColumns = `id, title, category, image_url, caption, created_at, updated_at`

type GalleryRepository struct {
	db db.DBTX
}

func NewGalleryRepository(dbtx db.DBTX) *GalleryRepository {
	return &GalleryRepository{db: dbtx}
}

func (r *GalleryRepository) FindAll(ctx context.Context, category *string, limit *int32) ([]*readmodel.GalleryItemRM, error) {
	query := `SELECT ` + galleryColumns + ` FROM gallery_items`
	args := []any{}
	if category != nil {
		query += ` WHERE category = $1`
		args = append(args, *category)
	}
	query += ` ORDER BY created_at DESC`
	if limit != nil {
		args = append(args, *limit)
		if category != nil {
			query += ` LIMIT $2`
		} else {
			query += ` LIMIT $1`
		}
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list gallery items", err)
	}
	defer rows.Close()

	result := []*readmodel.GalleryItemRM{}
	for rows.Next() {
		rm, scanErr := scanGalleryItem(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan gallery item row", scanErr)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate gallery item rows", err)
	}
	return result, nil
}

func (r *GalleryRepository) Create(ctx context.Context, params usecase.GalleryItemParams) (*readmodel.GalleryItemRM, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO gallery_items (title, category, image_url, caption)
		VALUES ($1, $2, $3, $4)
		RETURNING `+galleryColumns,
		params.Title, params.Category, params.ImageURL, pgconv.StringPtrToPgtype(params.Caption),
	)
	rm, err := scanGalleryItem(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create gallery item", err)
	}
	return rm, nil
}

func (r *GalleryRepository) Update(ctx context.Context, id int64, patch usecase.GalleryItemPatch) (*readmodel.GalleryItemRM, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE gallery_items SET
			title      = COALESCE($2, title),
			category   = COALESCE($3, category),
			image_url  = COALESCE($4, image_url),
			caption    = COALESCE($5, caption),
			updated_at = now()
		WHERE id = $1
		RETURNING `+galleryColumns,
		id, patch.Title, patch.Category, patch.ImageURL, patch.Caption,
	)
	rm, err := scanGalleryItem(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("gallery item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update gallery item", err)
	}
	return rm, nil
}

func (r *GalleryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM gallery_items WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete gallery item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("gallery item not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func scanGalleryItem(row pgx.Row) (*readmodel.GalleryItemRM, error) {
	var (
		rm        readmodel.GalleryItemRM
		caption   pgtype.Text
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := row.Scan(&rm.ID, &rm.Title, &rm.Category, &rm.ImageURL, &caption, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	rm.Caption = pgconv.StringPtrFromPgtype(caption)
	rm.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	rm.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &rm, nil
}

var _ usecase.GalleryRepository = (*GalleryRepository)(nil)
