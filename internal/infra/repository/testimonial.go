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

const testimonialColumns = `id, guest_name, content, rating, created_at, updated_at`

type TestimonialRepository struct {
	db db.DBTX
}

func NewTestimonialRepository(dbtx db.DBTX) *TestimonialRepository {
	return &TestimonialRepository{db: dbtx}
}

func (r *TestimonialRepository) FindAll(ctx context.Context, limit *int32) ([]*readmodel.TestimonialRM, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials ORDER BY created_at DESC`
	args := []any{}
	if limit != nil {
		query += ` LIMIT $1`
		args = append(args, *limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list testimonials", err)
	}
	defer rows.Close()

	result := []*readmodel.TestimonialRM{}
	for rows.Next() {
		rm, scanErr := scanTestimonial(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan testimonial row", scanErr)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate testimonial rows", err)
	}
	return result, nil
}

func (r *TestimonialRepository) Create(ctx context.Context, params usecase.TestimonialParams) (*readmodel.TestimonialRM, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO testimonials (guest_name, content, rating)
		VALUES ($1, $2, $3)
		RETURNING `+testimonialColumns,
		params.GuestName, params.Content, params.Rating,
	)
	rm, err := scanTestimonial(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create testimonial", err)
	}
	return rm, nil
}

func (r *TestimonialRepository) Update(ctx context.Context, id int64, patch usecase.TestimonialPatch) (*readmodel.TestimonialRM, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE testimonials SET
			guest_name = COALESCE($2, guest_name),
			content    = COALESCE($3, content),
			rating     = COALESCE($4, rating),
			updated_at = now()
		WHERE id = $1
		RETURNING `+testimonialColumns,
		id, patch.GuestName, patch.Content, patch.Rating,
	)
	rm, err := scanTestimonial(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("testimonial not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update testimonial", err)
	}
	return rm, nil
}

func (r *TestimonialRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete testimonial", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("testimonial not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func scanTestimonial(row pgx.Row) (*readmodel.TestimonialRM, error) {
	var (
		rm        readmodel.TestimonialRM
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := row.Scan(&rm.ID, &rm.GuestName, &rm.Content, &rm.Rating, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	rm.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	rm.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &rm, nil
}

var _ usecase.TestimonialRepository = (*TestimonialRepository)(nil)
