package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/SergeyBogomolovv/ride-dispatch/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// PostgresDocuments stores one profile document as the set of rows of a kind
// in the profiles table. Every save replaces all rows of the kind.
type PostgresDocuments[P any] struct {
	db        *sqlx.DB
	txManager trm.Manager
	qb        sq.StatementBuilderType
	kind      string
}

func NewPostgresDocuments[P any](db *sqlx.DB, txManager trm.Manager, kind string) *PostgresDocuments[P] {
	return &PostgresDocuments[P]{
		db:        db,
		txManager: txManager,
		qb:        sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		kind:      kind,
	}
}

func (r *PostgresDocuments[P]) Load(ctx context.Context) (map[string]P, error) {
	query, args := r.qb.Select("kind", "phone", "data").
		From("profiles").
		Where(sq.Eq{"kind": r.kind}).
		MustSql()

	var rows []ProfileRow
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select %s profiles: %w", r.kind, err)
	}

	docs := make(map[string]P, len(rows))
	for _, row := range rows {
		var p P
		if err := json.Unmarshal(row.Data, &p); err != nil {
			return nil, fmt.Errorf("failed to decode %s profile %s: %w", r.kind, row.Phone, err)
		}
		docs[row.Phone] = p
	}
	return docs, nil
}

func (r *PostgresDocuments[P]) Save(ctx context.Context, docs map[string]P) error {
	return r.txManager.Do(ctx, func(ctx context.Context) error {
		query, args := r.qb.Delete("profiles").
			Where(sq.Eq{"kind": r.kind}).
			MustSql()
		if _, err := r.execContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to clear %s profiles: %w", r.kind, err)
		}

		if len(docs) == 0 {
			return nil
		}

		phones := make([]string, 0, len(docs))
		for phone := range docs {
			phones = append(phones, phone)
		}
		sort.Strings(phones)

		q := r.qb.Insert("profiles").Columns("kind", "phone", "data")
		for _, phone := range phones {
			data, err := json.Marshal(docs[phone])
			if err != nil {
				return fmt.Errorf("failed to encode %s profile %s: %w", r.kind, phone, err)
			}
			q = q.Values(r.kind, phone, string(data))
		}

		query, args = q.MustSql()
		if _, err := r.execContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to save %s profiles: %w", r.kind, err)
		}
		return nil
	})
}

func (r *PostgresDocuments[P]) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *PostgresDocuments[P]) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
