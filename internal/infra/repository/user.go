package repository

import (
	"context"

	"lumina-hotel-api/internal/domain/user"
	"lumina-hotel-api/internal/infra"
	"lumina-hotel-api/internal/infra/db"
	"lumina-hotel-api/internal/pkg/pgconv"
	"lumina-hotel-api/internal/usecase"
	"lumina-hotel-api/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5/pgtype"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*readmodel.AuthorizedUserRM, string, error) {
	var (
		rm        readmodel.AuthorizedUserRM
		hash      string
		createdAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, email, role, password_hash, created_at FROM users WHERE email = $1`,
		email,
	).Scan(&rm.ID, &rm.Email, &rm.Role, &hash, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	rm.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &rm, hash, nil
}

func (r *UserRepository) CountAdmins(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE role = $1`,
		user.RoleAdmin.String(),
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count admins", err)
	}
	return count, nil
}

func (r *UserRepository) Create(ctx context.Context, email, passwordHash string, role user.Role) (*readmodel.AuthorizedUserRM, error) {
	var (
		rm        readmodel.AuthorizedUserRM
		createdAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id, email, role, created_at`,
		email, passwordHash, role.String(),
	).Scan(&rm.ID, &rm.Email, &rm.Role, &createdAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to create user", err)
	}
	rm.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &rm, nil
}

var _ usecase.UserRepository = (*UserRepository)(nil)
