package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// Issue is the stored form of a citizen report. Filename holds the media
// storage key and is never empty; the remaining descriptive columns are
// nullable.
type Issue struct {
	ID           int64
	Filename     string
	OriginalName sql.NullString
	Description  sql.NullString
	Category     sql.NullString
	Lat          sql.NullFloat64
	Lon          sql.NullFloat64
	Status       string
	CreatedAt    time.Time
}

// CreateIssueParams carries intake input into the insert. Nil pointers map
// to NULL columns.
type CreateIssueParams struct {
	Filename     string
	OriginalName string
	Description  string
	Category     string
	Lat          *float64
	Lon          *float64
}

// IssueRepository is the persistence capability the handlers depend on.
type IssueRepository interface {
	CreateIssue(ctx context.Context, params CreateIssueParams) (*Issue, error)
	ListIssues(ctx context.Context) ([]Issue, error)
	CountIssues(ctx context.Context) (int64, error)
}

type Client struct {
	db *sql.DB
}

func NewClient(connectionString string) (*Client, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Client{db: db}, nil
}

func (c *Client) CreateIssue(ctx context.Context, params CreateIssueParams) (*Issue, error) {
	var issue Issue
	err := c.db.QueryRowContext(ctx, `
		INSERT INTO issues (filename, originalname, description, category, lat, lon)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, filename, originalname, description, category, lat, lon, status, created_at
	`, params.Filename,
		nullString(params.OriginalName),
		nullString(params.Description),
		nullString(params.Category),
		params.Lat, params.Lon,
	).Scan(
		&issue.ID, &issue.Filename, &issue.OriginalName, &issue.Description,
		&issue.Category, &issue.Lat, &issue.Lon, &issue.Status, &issue.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create issue: %w", err)
	}

	return &issue, nil
}

func (c *Client) ListIssues(ctx context.Context) ([]Issue, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, filename, originalname, description, category, lat, lon, status, created_at
		FROM issues
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list issues: %w", err)
	}
	defer rows.Close()

	var issues []Issue
	for rows.Next() {
		var issue Issue
		err := rows.Scan(
			&issue.ID, &issue.Filename, &issue.OriginalName, &issue.Description,
			&issue.Category, &issue.Lat, &issue.Lon, &issue.Status, &issue.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan issue: %w", err)
		}
		issues = append(issues, issue)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list issues: %w", err)
	}

	return issues, nil
}

func (c *Client) CountIssues(ctx context.Context) (int64, error) {
	var count int64
	if err := c.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM issues`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count issues: %w", err)
	}
	return count, nil
}

func (c *Client) Close() error {
	return c.db.Close()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
