package repository

import (
	"context"
	"fmt"
	"strings"

	"lumina-hotel-api/internal/domain/booking"
	"lumina-hotel-api/internal/infra"
	"lumina-hotel-api/internal/infra/db"
	"lumina-hotel-api/internal/pkg/pgconv"
	"lumina-hotel-api/internal/usecase"
	"lumina-hotel-api/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingSelect = `
	SELECT b.id, b.room_id, b.customer_name, b.customer_email, b.customer_phone,
	       b.check_in, b.check_out, b.guests, b.total_price,
	       b.status, b.payment_status, b.notes, b.created_at, b.updated_at,
	       r.id, r.slug, r.name, r.description, r.price, r.size_sqm, r.occupancy,
	       r.images, r.highlights, r.created_at, r.updated_at
	FROM bookings b
	JOIN rooms r ON r.id = b.room_id`

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (*readmodel.BookingRM, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO bookings (room_id, customer_name, customer_email, customer_phone,
		                      check_in, check_out, guests, total_price, status, payment_status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`,
		b.RoomID(), b.Customer().Name(), b.Customer().Email(),
		pgconv.StringPtrToPgtype(b.Customer().Phone()),
		b.Stay().CheckIn(), b.Stay().CheckOut(), b.Guests(),
		pgconv.MoneyToNumeric(b.TotalPrice()),
		b.Status().String(), b.PaymentStatus().String(),
		pgconv.StringPtrToPgtype(b.Notes()),
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, infra.WrapRepoErr("booking references missing room", err, infra.KindForeignKeyViolated)
		}
		return nil, infra.WrapRepoErr("failed to create booking", err)
	}

	// Read-after-write so the response carries the room snapshot.
	return r.FindByID(ctx, id)
}

func (r *BookingRepository) FindByID(ctx context.Context, id int64) (*readmodel.BookingRM, error) {
	row := r.db.QueryRow(ctx, bookingSelect+` WHERE b.id = $1`, id)
	rm, err := scanBooking(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return rm, nil
}

func (r *BookingRepository) FindAll(ctx context.Context, filters usecase.BookingFilters) ([]*readmodel.BookingRM, error) {
	var (
		conds []string
		args  []any
	)
	addCond := func(column string, value any) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if filters.Status != nil {
		addCond("b.status", *filters.Status)
	}
	if filters.PaymentStatus != nil {
		addCond("b.payment_status", *filters.PaymentStatus)
	}
	if filters.RoomID != nil {
		addCond("b.room_id", *filters.RoomID)
	}
	if filters.Email != nil {
		addCond("b.customer_email", *filters.Email)
	}

	query := bookingSelect
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY b.created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	result := []*readmodel.BookingRM{}
	for rows.Next() {
		rm, scanErr := scanBooking(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", scanErr)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return result, nil
}

func (r *BookingRepository) Update(ctx context.Context, id int64, params usecase.UpdateBookingParams) (*readmodel.BookingRM, error) {
	var updatedID int64
	err := r.db.QueryRow(ctx, `
		UPDATE bookings SET
			status         = COALESCE($2, status),
			payment_status = COALESCE($3, payment_status),
			notes          = COALESCE($4, notes),
			updated_at     = now()
		WHERE id = $1
		RETURNING id`,
		id, params.Status, params.PaymentStatus, params.Notes,
	).Scan(&updatedID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update booking", err)
	}

	return r.FindByID(ctx, updatedID)
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func scanBooking(row pgx.Row) (*readmodel.BookingRM, error) {
	var (
		rm         readmodel.BookingRM
		roomRM     readmodel.RoomRM
		phone      pgtype.Text
		checkIn    pgtype.Timestamptz
		checkOut   pgtype.Timestamptz
		totalPrice pgtype.Numeric
		notes      pgtype.Text
		createdAt  pgtype.Timestamptz
		updatedAt  pgtype.Timestamptz
		roomPrice  pgtype.Numeric
		roomCrt    pgtype.Timestamptz
		roomUpd    pgtype.Timestamptz
	)

	err := row.Scan(
		&rm.ID, &rm.RoomID, &rm.CustomerName, &rm.CustomerEmail, &phone,
		&checkIn, &checkOut, &rm.Guests, &totalPrice,
		&rm.Status, &rm.PaymentStatus, &notes, &createdAt, &updatedAt,
		&roomRM.ID, &roomRM.Slug, &roomRM.Name, &roomRM.Description, &roomPrice,
		&roomRM.SizeSqm, &roomRM.Occupancy, &roomRM.Images, &roomRM.Highlights,
		&roomCrt, &roomUpd,
	)
	if err != nil {
		return nil, err
	}

	rm.CustomerPhone = pgconv.StringPtrFromPgtype(phone)
	rm.CheckIn = pgconv.TimeFromPgtype(checkIn)
	rm.CheckOut = pgconv.TimeFromPgtype(checkOut)
	rm.Notes = pgconv.StringPtrFromPgtype(notes)
	rm.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	rm.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	rm.TotalPrice, err = pgconv.MoneyFromNumeric(totalPrice)
	if err != nil {
		return nil, err
	}
	roomRM.Price, err = pgconv.MoneyFromNumeric(roomPrice)
	if err != nil {
		return nil, err
	}
	roomRM.CreatedAt = pgconv.TimeFromPgtype(roomCrt)
	roomRM.UpdatedAt = pgconv.TimeFromPgtype(roomUpd)

	rm.Room = &roomRM
	return &rm, nil
}

var _ usecase.BookingRepository = (*BookingRepository)(nil)
