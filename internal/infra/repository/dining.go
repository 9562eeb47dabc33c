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

const diningColumns = `id, name, type, floor, hours, description, menu_url, images, created_at, updated_at`

type DiningRepository struct {
	db db.DBTX
}

func NewDiningRepository(dbtx db.DBTX) *DiningRepository {
	return &DiningRepository{db: dbtx}
}

func (r *DiningRepository) FindAll(ctx context.Context, venueType *string, orderByName bool) ([]*readmodel.DiningVenueRM, error) {
	query := `SELECT ` + diningColumns + ` FROM dining_venues`
	args := []any{}
	if venueType != nil {
		query += ` WHERE type = $1`
		args = append(args, *venueType)
	}
	if orderByName {
		query += ` ORDER BY name ASC`
	} else {
		query += ` ORDER BY created_at DESC`
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list dining venues", err)
	}
	defer rows.Close()

	result := []*readmodel.DiningVenueRM{}
	for rows.Next() {
		rm, scanErr := scanDiningVenue(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan dining venue row", scanErr)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate dining venue rows", err)
	}
	return result, nil
}

func (r *DiningRepository) FindByID(ctx context.Context, id int64) (*readmodel.DiningVenueRM, error) {
	row := r.db.QueryRow(ctx, `SELECT `+diningColumns+` FROM dining_venues WHERE id = $1`, id)
	rm, err := scanDiningVenue(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("dining venue not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find dining venue by ID", err)
	}
	return rm, nil
}

func (r *DiningRepository) Create(ctx context.Context, params usecase.DiningVenueParams) (*readmodel.DiningVenueRM, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO dining_venues (name, type, floor, hours, description, menu_url, images)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+diningColumns,
		params.Name, params.Type, pgconv.Int32PtrToPgtype(params.Floor),
		params.Hours, params.Description, pgconv.StringPtrToPgtype(params.MenuURL), params.Images,
	)
	rm, err := scanDiningVenue(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create dining venue", err)
	}
	return rm, nil
}

func (r *DiningRepository) Update(ctx context.Context, id int64, patch usecase.DiningVenuePatch) (*readmodel.DiningVenueRM, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE dining_venues SET
			name        = COALESCE($2, name),
			type        = COALESCE($3, type),
			floor       = COALESCE($4, floor),
			hours       = COALESCE($5, hours),
			description = COALESCE($6, description),
			menu_url    = COALESCE($7, menu_url),
			images      = COALESCE($8, images),
			updated_at  = now()
		WHERE id = $1
		RETURNING `+diningColumns,
		id, patch.Name, patch.Type, patch.Floor, patch.Hours,
		patch.Description, patch.MenuURL, patch.Images,
	)
	rm, err := scanDiningVenue(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("dining venue not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update dining venue", err)
	}
	return rm, nil
}

func (r *DiningRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM dining_venues WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete dining venue", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("dining venue not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func scanDiningVenue(row pgx.Row) (*readmodel.DiningVenueRM, error) {
	var (
		rm        readmodel.DiningVenueRM
		floor     pgtype.Int4
		menuURL   pgtype.Text
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := row.Scan(&rm.ID, &rm.Name, &rm.Type, &floor, &rm.Hours, &rm.Description, &menuURL, &rm.Images, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	rm.Floor = pgconv.Int32PtrFromPgtype(floor)
	rm.MenuURL = pgconv.StringPtrFromPgtype(menuURL)
	rm.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	rm.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &rm, nil
}

var _ usecase.DiningRepository = (*DiningRepository)(nil)
