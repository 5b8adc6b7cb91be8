package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ewintr.nl/ytcatalog/model"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

const pgUniqueViolation = "23505"

var pgDialect = dialect{
	createMigrationTable: `CREATE TABLE IF NOT EXISTS migration
("id" SERIAL PRIMARY KEY, "query" TEXT)`,
	insertMigration: `INSERT INTO migration
(query) VALUES ($1)`,
}

var pgMigration = []string{
	`CREATE TYPE difficulty AS ENUM ('Beginner', 'Intermediate', 'Advanced')`,
	`CREATE TABLE project (
id uuid PRIMARY KEY,
video_name VARCHAR(255) NOT NULL,
youtube_channel VARCHAR(255) NOT NULL,
length_in_hours DOUBLE PRECISION NOT NULL CHECK (length_in_hours >= 0),
tech_stack TEXT[] NOT NULL DEFAULT '{}',
difficulty difficulty NOT NULL,
link TEXT NOT NULL,
created_at TIMESTAMPTZ NOT NULL,
UNIQUE (video_name, youtube_channel)
)`,
}

type PostgresInfo struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

func (pi PostgresInfo) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", pi.Host, pi.Port, pi.User, pi.Password, pi.Database)
}

type Postgres struct {
	db *sql.DB
}

func NewPostgres(ctx context.Context, pgInfo PostgresInfo) (*Postgres, error) {
	db, err := sql.Open("postgres", pgInfo.DSN())
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	p := &Postgres{db: db}
	if err := migrate(ctx, db, pgDialect, pgMigration); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate postgres: %w", err)
	}

	return p, nil
}

func (p *Postgres) Close() error {
	return p.db.Close()
}

func (p *Postgres) Save(ctx context.Context, project model.Project) (model.Project, error) {
	if err := project.Validate(); err != nil {
		return model.Project{}, err
	}
	project.ID = uuid.New()
	project.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	if project.TechStack == nil {
		project.TechStack = []string{}
	}

	query := `INSERT INTO project
(id, video_name, youtube_channel, length_in_hours, tech_stack, difficulty, link, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err := p.db.ExecContext(ctx, query,
		project.ID,
		project.VideoName,
		project.YoutubeChannel,
		project.LengthInHours,
		pq.Array(project.TechStack),
		string(project.Difficulty),
		project.Link,
		project.CreatedAt,
	); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return model.Project{}, fmt.Errorf("%w: %q by %q", model.ErrDuplicate, project.VideoName, project.YoutubeChannel)
		}
		return model.Project{}, err
	}

	return project, nil
}

func (p *Postgres) FindAll(ctx context.Context) ([]model.Project, error) {
	query := `SELECT id, video_name, youtube_channel, length_in_hours, tech_stack, difficulty, link, created_at
FROM project
ORDER BY created_at, id`
	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		var (
			project    model.Project
			difficulty string
		)
		if err := rows.Scan(
			&project.ID,
			&project.VideoName,
			&project.YoutubeChannel,
			&project.LengthInHours,
			pq.Array(&project.TechStack),
			&difficulty,
			&project.Link,
			&project.CreatedAt,
		); err != nil {
			return nil, err
		}
		project.Difficulty = model.Difficulty(difficulty)
		if project.TechStack == nil {
			project.TechStack = []string{}
		}
		projects = append(projects, project)
	}

	return projects, rows.Err()
}
