package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ewintr.nl/ytcatalog/model"
	"github.com/google/uuid"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var sqliteDialect = dialect{
	createMigrationTable: `CREATE TABLE IF NOT EXISTS migration
("id" INTEGER PRIMARY KEY AUTOINCREMENT, "query" TEXT)`,
	insertMigration: `INSERT INTO migration
(query) VALUES (?)`,
}

var sqliteMigration = []string{
	`CREATE TABLE project (
id TEXT PRIMARY KEY,
video_name TEXT NOT NULL,
youtube_channel TEXT NOT NULL,
length_in_hours REAL NOT NULL CHECK (length_in_hours >= 0),
tech_stack TEXT NOT NULL DEFAULT '[]',
difficulty TEXT NOT NULL CHECK (difficulty IN ('Beginner', 'Intermediate', 'Advanced')),
link TEXT NOT NULL,
created_at TEXT NOT NULL,
UNIQUE (video_name, youtube_channel)
)`,
}

// SQLite stores projects in a single database file. It is meant for local
// use where running Postgres is not worth the trouble.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(ctx context.Context, path string) (*SQLite, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}
	if err := migrate(ctx, db, sqliteDialect, sqliteMigration); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) Save(ctx context.Context, project model.Project) (model.Project, error) {
	if err := project.Validate(); err != nil {
		return model.Project{}, err
	}
	project.ID = uuid.New()
	project.CreatedAt = time.Now().UTC()
	if project.TechStack == nil {
		project.TechStack = []string{}
	}
	techStack, err := json.Marshal(project.TechStack)
	if err != nil {
		return model.Project{}, fmt.Errorf("encode tech stack: %w", err)
	}

	query := `INSERT INTO project
(id, video_name, youtube_channel, length_in_hours, tech_stack, difficulty, link, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, query,
		project.ID.String(),
		project.VideoName,
		project.YoutubeChannel,
		project.LengthInHours,
		string(techStack),
		string(project.Difficulty),
		project.Link,
		project.CreatedAt.Format(time.RFC3339Nano),
	); err != nil {
		var sqliteErr *sqlite.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
			return model.Project{}, fmt.Errorf("%w: %q by %q", model.ErrDuplicate, project.VideoName, project.YoutubeChannel)
		}
		return model.Project{}, err
	}

	return project, nil
}

func (s *SQLite) FindAll(ctx context.Context) ([]model.Project, error) {
	query := `SELECT id, video_name, youtube_channel, length_in_hours, tech_stack, difficulty, link, created_at
FROM project
ORDER BY rowid`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		var (
			project                              model.Project
			id, techStack, difficulty, createdAt string
		)
		if err := rows.Scan(
			&id,
			&project.VideoName,
			&project.YoutubeChannel,
			&project.LengthInHours,
			&techStack,
			&difficulty,
			&project.Link,
			&createdAt,
		); err != nil {
			return nil, err
		}
		if project.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse id %q: %w", id, err)
		}
		if err := json.Unmarshal([]byte(techStack), &project.TechStack); err != nil {
			return nil, fmt.Errorf("decode tech stack of %s: %w", id, err)
		}
		if project.TechStack == nil {
			project.TechStack = []string{}
		}
		if project.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("parse created_at of %s: %w", id, err)
		}
		project.Difficulty = model.Difficulty(difficulty)
		projects = append(projects, project)
	}

	return projects, rows.Err()
}
