package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apperrors "github.com/Platzhalten/tux/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Pool interface for abstracting pgx connection pool
type Pool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Close()
}

// Mapping describes how a record type maps onto a single table.
// Columns must be listed in the order Values and Scan handle them.
type Mapping[T any] struct {
	Table   string
	Columns []string
	OrderBy string
	Values  func(record *T) []any
	Scan    func(row pgx.Row) (*T, error)
}

// Eq is an equality condition on a column
type Eq struct {
	Column string
	Value  any
}

// Assign sets a column to a value in an update
type Assign struct {
	Column string
	Value  any
}

// Store provides generic persistence over a single table described by a Mapping.
// Lookups that match nothing fail with CodeNotFound; callers decide whether
// absence is an error or an empty result.
type Store[T any] struct {
	pool    Pool
	mapping Mapping[T]
}

// NewStore creates a Store for the given table mapping
func NewStore[T any](pool Pool, mapping Mapping[T]) *Store[T] {
	return &Store[T]{
		pool:    pool,
		mapping: mapping,
	}
}

// Create inserts a record and returns the stored row
func (s *Store[T]) Create(ctx context.Context, record *T) (*T, error) {
	columns := strings.Join(s.mapping.Columns, ", ")
	placeholders := make([]string, len(s.mapping.Columns))
	for i := range s.mapping.Columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	sql := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		s.mapping.Table, columns, strings.Join(placeholders, ", "), columns)

	row := s.pool.QueryRow(ctx, sql, s.mapping.Values(record)...)
	created, err := s.mapping.Scan(row)
	if err != nil {
		return nil, handlePostgreSQLError(err, "failed to create "+s.mapping.Table+" record")
	}

	return created, nil
}

// FindOne retrieves the first record matching all conditions
func (s *Store[T]) FindOne(ctx context.Context, conds ...Eq) (*T, error) {
	if len(conds) == 0 {
		return nil, apperrors.New(apperrors.CodeInvalidArg, "at least one condition is required")
	}

	where, args := buildWhere(conds, 1)
	sql := fmt.Sprintf("SELECT %s FROM %s WHERE %s%s LIMIT 1",
		strings.Join(s.mapping.Columns, ", "), s.mapping.Table, where, s.orderClause())

	row := s.pool.QueryRow(ctx, sql, args...)
	record, err := s.mapping.Scan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.Wrap(err, apperrors.CodeNotFound, s.mapping.Table+" record not found")
		}
		return nil, handlePostgreSQLError(err, "failed to find "+s.mapping.Table+" record")
	}

	return record, nil
}

// FindMany retrieves all records matching all conditions
func (s *Store[T]) FindMany(ctx context.Context, conds ...Eq) ([]*T, error) {
	if len(conds) == 0 {
		return nil, apperrors.New(apperrors.CodeInvalidArg, "at least one condition is required")
	}

	where, args := buildWhere(conds, 1)
	sql := fmt.Sprintf("SELECT %s FROM %s WHERE %s%s",
		strings.Join(s.mapping.Columns, ", "), s.mapping.Table, where, s.orderClause())

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, handlePostgreSQLError(err, "failed to list "+s.mapping.Table+" records")
	}
	defer rows.Close()

	var records []*T
	for rows.Next() {
		record, err := s.mapping.Scan(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to scan "+s.mapping.Table+" row")
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to iterate "+s.mapping.Table+" rows")
	}

	return records, nil
}

// UpdateByID applies the assignments to the record stored under key and returns the updated row
func (s *Store[T]) UpdateByID(ctx context.Context, key []Eq, assigns ...Assign) (*T, error) {
	if len(key) == 0 {
		return nil, apperrors.New(apperrors.CodeInvalidArg, "at least one key condition is required")
	}
	if len(assigns) == 0 {
		return nil, apperrors.New(apperrors.CodeInvalidArg, "at least one assignment is required")
	}

	setParts := make([]string, len(assigns))
	args := make([]any, 0, len(assigns)+len(key))
	for i, a := range assigns {
		setParts[i] = fmt.Sprintf("%s = $%d", a.Column, i+1)
		args = append(args, a.Value)
	}

	where, whereArgs := buildWhere(key, len(assigns)+1)
	args = append(args, whereArgs...)

	sql := fmt.Sprintf("UPDATE %s SET %s WHERE %s RETURNING %s",
		s.mapping.Table, strings.Join(setParts, ", "), where, strings.Join(s.mapping.Columns, ", "))

	row := s.pool.QueryRow(ctx, sql, args...)
	updated, err := s.mapping.Scan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.Wrap(err, apperrors.CodeNotFound, s.mapping.Table+" record not found")
		}
		return nil, handlePostgreSQLError(err, "failed to update "+s.mapping.Table+" record")
	}

	return updated, nil
}

// DeleteByID removes the record stored under key, reporting whether a row was removed
func (s *Store[T]) DeleteByID(ctx context.Context, key ...Eq) (bool, error) {
	if len(key) == 0 {
		return false, apperrors.New(apperrors.CodeInvalidArg, "at least one key condition is required")
	}

	where, args := buildWhere(key, 1)
	sql := fmt.Sprintf("DELETE FROM %s WHERE %s", s.mapping.Table, where)

	tag, err := s.pool.Exec(ctx, sql, args...)
	if err != nil {
		return false, handlePostgreSQLError(err, "failed to delete "+s.mapping.Table+" record")
	}

	return tag.RowsAffected() > 0, nil
}

// orderClause returns the mapping's ORDER BY clause, empty when none is set
func (s *Store[T]) orderClause() string {
	if s.mapping.OrderBy == "" {
		return ""
	}
	return " ORDER BY " + s.mapping.OrderBy
}

// buildWhere renders equality conditions into a WHERE body with placeholders starting at start
func buildWhere(conds []Eq, start int) (string, []any) {
	parts := make([]string, len(conds))
	args := make([]any, len(conds))
	for i, c := range conds {
		parts[i] = fmt.Sprintf("%s = $%d", c.Column, start+i)
		args[i] = c.Value
	}
	return strings.Join(parts, " AND "), args
}
