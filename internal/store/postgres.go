package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/speedscore/roundtracker/internal"
)

// PostgresRepository stores each account's UserData as a single JSONB row
// keyed by email, mirroring the whole-object-per-key contract of the file
// backend. Expected schema:
//
//	CREATE TABLE user_data (
//	    email TEXT PRIMARY KEY,
//	    data  JSONB NOT NULL
//	);
type PostgresRepository struct {
	pool   *pgxpool.Pool
	logger internal.Logger
}

func NewPostgresRepository(dsn string, logger internal.Logger) (*PostgresRepository, error) {
	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		logger.Errorf("store: failed to connect to postgres: %v", err)
		return nil, err
	}
	return &PostgresRepository{pool: pool, logger: logger}, nil
}

func (p *PostgresRepository) Load(ctx context.Context, email string) (*internal.UserData, error) {
	row := p.pool.QueryRow(ctx, `SELECT data FROM user_data WHERE email = $1`, email)
	var raw []byte
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		p.logger.Errorf("store: failed to load user data: %v", err)
		return nil, err
	}
	var data internal.UserData
	if err := json.Unmarshal(raw, &data); err != nil {
		p.logger.Errorf("store: corrupt user data for %s: %v", email, err)
		return nil, err
	}
	return &data, nil
}

func (p *PostgresRepository) Save(ctx context.Context, email string, data *internal.UserData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	_, err = p.pool.Exec(ctx,
		`INSERT INTO user_data (email, data) VALUES ($1, $2)
		 ON CONFLICT (email) DO UPDATE SET data = EXCLUDED.data`,
		email, raw)
	if err != nil {
		p.logger.Errorf("store: failed to save user data: %v", err)
		return err
	}
	return nil
}

func (p *PostgresRepository) Close() {
	p.pool.Close()
}

var _ UserDataRepository = (*PostgresRepository)(nil)
