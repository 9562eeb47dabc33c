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

const amenityColumns = `id, name, description, category, hours, images, created_at, updated_at`

type AmenityRepository struct {
	db db.DBTX
}

func NewAmenityRepository(dbtx db.DBTX) *AmenityRepository {
	return &AmenityRepository{db: dbtx}
}

func (r *AmenityRepository) FindAll(ctx context.Context, category *string) ([]*readmodel.AmenityRM, error) {
	query := `SELECT ` + amenityColumns + ` FROM amenities`
	args := []any{}
	if category != nil {
		query += ` WHERE category = $1 ORDER BY name ASC`
		args = append(args, *category)
	} else {
		query += ` ORDER BY name ASC`
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list amenities", err)
	}
	defer rows.Close()

	result := []*readmodel.AmenityRM{}
	for rows.Next() {
		rm, scanErr := scanAmenity(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan amenity row", scanErr)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate amenity rows", err)
	}
	return result, nil
}

func (r *AmenityRepository) FindByID(ctx context.Context, id int64) (*readmodel.AmenityRM, error) {
	row := r.db.QueryRow(ctx, `SELECT `+amenityColumns+` FROM amenities WHERE id = $1`, id)
	rm, err := scanAmenity(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("amenity not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find amenity by ID", err)
	}
	return rm, nil
}

func (r *AmenityRepository) Create(ctx context.Context, params usecase.AmenityParams) (*readmodel.AmenityRM, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO amenities (name, description, category, hours, images)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+amenityColumns,
		params.Name, params.Description, params.Category,
		pgconv.StringPtrToPgtype(params.Hours), params.Images,
	)
	rm, err := scanAmenity(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create amenity", err)
	}
	return rm, nil
}

func (r *AmenityRepository) Update(ctx context.Context, id int64, patch usecase.AmenityPatch) (*readmodel.AmenityRM, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE amenities SET
			name        = COALESCE($2, name),
			description = COALESCE($3, description),
			category    = COALESCE($4, category),
			hours       = COALESCE($5, hours),
			images      = COALESCE($6, images),
			updated_at  = now()
		WHERE id = $1
		RETURNING `+amenityColumns,
		id, patch.Name, patch.Description, patch.Category, patch.Hours, patch.Images,
	)
	rm, err := scanAmenity(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("amenity not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update amenity", err)
	}
	return rm, nil
}

func (r *AmenityRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM amenities WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete amenity", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("amenity not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func scanAmenity(row pgx.Row) (*readmodel.AmenityRM, error) {
	var (
		rm        readmodel.AmenityRM
		hours     pgtype.Text
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := row.Scan(&rm.ID, &rm.Name, &rm.Description, &rm.Category, &hours, &rm.Images, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	rm.Hours = pgconv.StringPtrFromPgtype(hours)
	rm.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	rm.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &rm, nil
}

var _ usecase.AmenityRepository = (*AmenityRepository)(nil)
