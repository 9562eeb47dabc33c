package repository

import (
	"context"

	"lumina-hotel-api/internal/domain/room"
	"lumina-hotel-api/internal/infra"
	"lumina-hotel-api/internal/infra/db"
	"lumina-hotel-api/internal/pkg/pgconv"
	"lumina-hotel-api/internal/usecase"
	"lumina-hotel-api/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const roomColumns = `id, slug, name, description, price, size_sqm, occupancy, images, highlights, created_at, updated_at`

type RoomRepository struct {
	db db.DBTX
}

func NewRoomRepository(dbtx db.DBTX) *RoomRepository {
	return &RoomRepository{db: dbtx}
}

func (r *RoomRepository) FindByID(ctx context.Context, id int64) (*readmodel.RoomRM, error) {
	row := r.db.QueryRow(ctx, `SELECT `+roomColumns+` FROM rooms WHERE id = $1`, id)
	rm, err := scanRoom(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	return rm, nil
}

func (r *RoomRepository) FindBySlug(ctx context.Context, slug string) (*readmodel.RoomRM, error) {
	row := r.db.QueryRow(ctx, `SELECT `+roomColumns+` FROM rooms WHERE slug = $1`, slug)
	rm, err := scanRoom(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by slug", err)
	}
	return rm, nil
}

func (r *RoomRepository) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM rooms WHERE slug = $1 AND id <> $2)`,
		slug, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check slug existence", err)
	}
	return exists, nil
}

func (r *RoomRepository) FindAllByPrice(ctx context.Context) ([]*readmodel.RoomRM, error) {
	return r.findAll(ctx, `SELECT `+roomColumns+` FROM rooms ORDER BY price ASC`)
}

func (r *RoomRepository) FindAllByCreated(ctx context.Context) ([]*readmodel.RoomRM, error) {
	return r.findAll(ctx, `SELECT `+roomColumns+` FROM rooms ORDER BY created_at DESC`)
}

func (r *RoomRepository) findAll(ctx context.Context, query string) ([]*readmodel.RoomRM, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	result := []*readmodel.RoomRM{}
	for rows.Next() {
		rm, scanErr := scanRoom(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", scanErr)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room rows", err)
	}
	return result, nil
}

func (r *RoomRepository) Create(ctx context.Context, entity *room.Room) (*readmodel.RoomRM, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO rooms (slug, name, description, price, size_sqm, occupancy, images, highlights)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+roomColumns,
		entity.Slug(), entity.Name(), entity.Description(),
		pgconv.MoneyToNumeric(entity.Price()),
		entity.SizeSqm(), entity.Occupancy(), entity.Images(), entity.Highlights(),
	)
	rm, err := scanRoom(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, infra.WrapRepoErr("room slug already taken", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to create room", err)
	}
	return rm, nil
}

func (r *RoomRepository) Update(ctx context.Context, id int64, params usecase.UpdateRoomParams, newSlug *string) (*readmodel.RoomRM, error) {
	var price *pgtype.Numeric
	if params.Price != nil {
		n := pgconv.MoneyToNumeric(*params.Price)
		price = &n
	}

	row := r.db.QueryRow(ctx, `
		UPDATE rooms SET
			slug        = COALESCE($2, slug),
			name        = COALESCE($3, name),
			description = COALESCE($4, description),
			price       = COALESCE($5, price),
			size_sqm    = COALESCE($6, size_sqm),
			occupancy   = COALESCE($7, occupancy),
			images      = COALESCE($8, images),
			highlights  = COALESCE($9, highlights),
			updated_at  = now()
		WHERE id = $1
		RETURNING `+roomColumns,
		id, newSlug, params.Name, params.Description, price,
		params.SizeSqm, params.Occupancy, params.Images, params.Highlights,
	)
	rm, err := scanRoom(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update room", err)
	}
	return rm, nil
}

func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("room still referenced by bookings", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to delete room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func scanRoom(row pgx.Row) (*readmodel.RoomRM, error) {
	var (
		rm        readmodel.RoomRM
		price     pgtype.Numeric
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&rm.ID, &rm.Slug, &rm.Name, &rm.Description, &price,
		&rm.SizeSqm, &rm.Occupancy, &rm.Images, &rm.Highlights,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	rm.Price, err = pgconv.MoneyFromNumeric(price)
	if err != nil {
		return nil, err
	}
	rm.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	rm.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &rm, nil
}

var _ usecase.RoomRepository = (*RoomRepository)(nil)
