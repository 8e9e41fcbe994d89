package repo

import (
	"context"
	"database/sql"
)

type Profile struct {
	ID          int    `json:"id"`
	Login       string `json:"login"`
	Email       string `json:"email"`
	Description string `json:"description"`
	AvatarURL   string `json:"avatar_url"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetBylogin(ctx context.Context, login string) (int, string, error)
	GetProfileByID(ctx context.Context, id int) (Profile, error)
	UpdateProfile(ctx context.Context, id int, login, description string) (Profile, error)
	UpdateAvatar(ctx context.Context, id int, avatarURL string) error
}

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserDB(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) GetBylogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresUserRepository) GetProfileByID(ctx context.Context, id int) (Profile, error) {
	var p Profile
	var description, avatar sql.NullString

	query := "SELECT id, login, email, description, avatar_url FROM users WHERE id=$1"

	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Login, &p.Email, &description, &avatar)
	if err != nil {
		return Profile{}, err
	}
	p.Description = description.String
	p.AvatarURL = avatar.String
	return p, nil
}

func (r *PostgresUserRepository) UpdateProfile(ctx context.Context, id int, login, description string) (Profile, error) {
	query := "UPDATE users SET login=$2, description=$3 WHERE id=$1"
	if _, err := r.db.ExecContext(ctx, query, id, login, description); err != nil {
		return Profile{}, err
	}
	return r.GetProfileByID(ctx, id)
}

func (r *PostgresUserRepository) UpdateAvatar(ctx context.Context, id int, avatarURL string) error {
	query := "UPDATE users SET avatar_url=$2 WHERE id=$1"
	_, err := r.db.ExecContext(ctx, query, id, avatarURL)
	return err
}
