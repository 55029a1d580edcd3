package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/theatrical-statements/internal/domain"
)

type PostgresPlayRepository struct {
	db *pgxpool.Pool
}

func NewPostgresPlayRepository(db *pgxpool.Pool) *PostgresPlayRepository {
	return &PostgresPlayRepository{
		db: db,
	}
}

func (p *PostgresPlayRepository) Create(ctx context.Context, play *domain.CatalogPlay) error {
	query := `INSERT INTO plays (id, name, lines, genre)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	err := p.db.QueryRow(ctx,
		query,
		play.ID,
		play.Play.Name(),
		play.Play.Lines(),
		play.Play.Genre().String()).Scan(&play.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrPlayAlreadyExists
		}

		return err
	}

	return nil
}

func (p *PostgresPlayRepository) GetByID(ctx context.Context, id string) (*domain.CatalogPlay, error) {
	query := `
		SELECT id, name, lines, genre, created_at
		FROM plays
		WHERE id = $1
	`

	play, err := scanPlay(p.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return play, nil
}

// GetByIDs returns the plays found among ids, keyed by id. Missing ids are
// simply absent from the result.
func (p *PostgresPlayRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*domain.CatalogPlay, error) {
	plays := make(map[string]*domain.CatalogPlay, len(ids))
	if len(ids) == 0 {
		return plays, nil
	}

	query := `
		SELECT id, name, lines, genre, created_at
		FROM plays
		WHERE id = ANY($1)
	`

	rows, err := p.db.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		play, err := scanPlay(rows)
		if err != nil {
			return nil, err
		}

		plays[play.ID] = play
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return plays, nil
}

func (p *PostgresPlayRepository) GetAll(ctx context.Context) ([]*domain.CatalogPlay, error) {
	query := `
		SELECT id, name, lines, genre, created_at
		FROM plays
		ORDER BY id
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plays := []*domain.CatalogPlay{}

	for rows.Next() {
		play, err := scanPlay(rows)
		if err != nil {
			return nil, err
		}

		plays = append(plays, play)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return plays, nil
}

func scanPlay(row pgx.Row) (*domain.CatalogPlay, error) {
	var (
		catalogPlay domain.CatalogPlay
		name        string
		lines       int
		genre       string
	)

	err := row.Scan(&catalogPlay.ID, &name, &lines, &genre, &catalogPlay.CreatedAt)
	if err != nil {
		return nil, err
	}

	catalogPlay.Play, err = domain.NewPlay(name, lines, domain.Genre(genre))
	if err != nil {
		return nil, fmt.Errorf("stored play %q: %w", catalogPlay.ID, err)
	}

	return &catalogPlay, nil
}
