package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nfrund/tinyhouse/internal/config"
	"github.com/surrealdb/surrealdb.go"
)

// DBConnection is the subset of *Connection the clients depend on.
type DBConnection interface {
	WithConnection(ctx context.Context, fn func(*surrealdb.DB) error) error
}

// Client is a type-safe query client for records of type T.
type Client[T any] interface {
	// Query executes a single SurrealQL statement and returns all rows.
	Query(ctx context.Context, query string, params map[string]any) ([]T, error)

	// QueryOne executes a statement and returns the first row, or (nil, nil).
	QueryOne(ctx context.Context, query string, params map[string]any) (*T, error)

	// Execute runs a statement whose result is not needed.
	Execute(ctx context.Context, query string, params map[string]any) error
}

type client[T any] struct {
	conn           DBConnection
	queryTimeout   time.Duration
	executeTimeout time.Duration
}

// NewClient creates a new type-safe database client.
func NewClient[T any](conn DBConnection, cfg config.Provider) (Client[T], error) {
	if conn == nil {
		return nil, NewDBError(ErrInvalidInput, "connection cannot be nil")
	}
	if cfg == nil {
		return nil, NewDBError(ErrInvalidInput, "config provider cannot be nil")
	}
	if cfg.GetDBQueryTimeout() <= 0 || cfg.GetDBExecuteTimeout() <= 0 {
		return nil, NewDBError(ErrInvalidInput, "database timeouts must be positive durations")
	}
	return &client[T]{
		conn:           conn,
		queryTimeout:   cfg.GetDBQueryTimeout(),
		executeTimeout: cfg.GetDBExecuteTimeout(),
	}, nil
}

func (c *client[T]) Query(ctx context.Context, query string, params map[string]any) ([]T, error) {
	ctx, cancel := timeoutFromContext(ctx, c.queryTimeout, ContextKeyQueryTimeout)
	defer cancel()

	var rows []T
	err := c.conn.WithConnection(ctx, func(db *surrealdb.DB) error {
		results, err := surrealdb.Query[[]T](ctx, db, query, params)
		if err != nil {
			return err
		}
		if results == nil || len(*results) == 0 {
			rows = nil
			return nil
		}
		first := (*results)[0]
		if first.Status != "" && first.Status != "OK" {
			return fmt.Errorf("%w: status %s", ErrQueryFailed, first.Status)
		}
		rows = first.Result
		return nil
	})
	if err != nil {
		return nil, NewDBError(err, "query failed").WithQuery(query)
	}
	return rows, nil
}

func (c *client[T]) QueryOne(ctx context.Context, query string, params map[string]any) (*T, error) {
	if isSelect(query) && !hasLimitClause(query) {
		query += " LIMIT 1"
	}
	rows, err := c.Query(ctx, query, params)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (c *client[T]) Execute(ctx context.Context, query string, params map[string]any) error {
	ctx, cancel := timeoutFromContext(ctx, c.executeTimeout, ContextKeyExecuteTimeout)
	defer cancel()

	err := c.conn.WithConnection(ctx, func(db *surrealdb.DB) error {
		_, err := surrealdb.Query[any](ctx, db, query, params)
		return err
	})
	if err != nil {
		return NewDBError(err, "execute failed").WithQuery(query)
	}
	return nil
}

func isSelect(query string) bool {
	return strings.HasPrefix(strings.ToUpper(strings.TrimSpace(query)), "SELECT")
}

func hasLimitClause(query string) bool {
	query = " " + strings.ToUpper(query) + " "
	return strings.Contains(query, " LIMIT ")
}
