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

const eventColumns = `id, title, description, date, venue, image_url, created_at, updated_at`

type EventRepository struct {
	db db.DBTX
}

func NewEventRepository(dbtx db.DBTX) *EventRepository {
	return &EventRepository{db: dbtx}
}

func (r *EventRepository) FindAll(ctx context.Context) ([]*readmodel.EventRM, error) {
	rows, err := r.db.Query(ctx, `SELECT `+eventColumns+` FROM events ORDER BY date ASC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list events", err)
	}
	defer rows.Close()

	result := []*readmodel.EventRM{}
	for rows.Next() {
		rm, scanErr := scanEvent(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan event row", scanErr)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate event rows", err)
	}
	return result, nil
}

func (r *EventRepository) Create(ctx context.Context, params usecase.EventParams) (*readmodel.EventRM, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO events (title, description, date, venue, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+eventColumns,
		params.Title, params.Description, params.Date, params.Venue,
		pgconv.StringPtrToPgtype(params.ImageURL),
	)
	rm, err := scanEvent(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create event", err)
	}
	return rm, nil
}

func (r *EventRepository) Update(ctx context.Context, id int64, patch usecase.EventPatch) (*readmodel.EventRM, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE events SET
			title       = COALESCE($2, title),
			description = COALESCE($3, description),
			date        = COALESCE($4, date),
			venue       = COALESCE($5, venue),
			image_url   = COALESCE($6, image_url),
			updated_at  = now()
		WHERE id = $1
		RETURNING `+eventColumns,
		id, patch.Title, patch.Description, patch.Date, patch.Venue, patch.ImageURL,
	)
	rm, err := scanEvent(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update event", err)
	}
	return rm, nil
}

func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete event", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("event not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func scanEvent(row pgx.Row) (*readmodel.EventRM, error) {
	var (
		rm        readmodel.EventRM
		date      pgtype.Timestamptz
		imageURL  pgtype.Text
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := row.Scan(&rm.ID, &rm.Title, &rm.Description, &date, &rm.Venue, &imageURL, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	rm.Date = pgconv.TimeFromPgtype(date)
	rm.ImageURL = pgconv.StringPtrFromPgtype(imageURL)
	rm.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	rm.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &rm, nil
}

var _ usecase.EventRepository = (*EventRepository)(nil)
