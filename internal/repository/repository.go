package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"movie-catalog/internal/database"

	"gorm.io/gorm"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
)

type baseRepository struct {
	db      *database.Database
	timeout time.Duration
}

func newBaseRepository(db *database.Database) baseRepository {
	return baseRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *baseRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

// conn returns a handle bound to ctx (and to its transaction, if any).
func (r *baseRepository) conn(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	ctx, cancel := r.withTimeout(ctx)
	return r.db.Conn(ctx), cancel
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsAny builds a case-insensitive "text appears in any of columns"
// condition. Postgres uses ILIKE; SQLite compares LOWER() of both sides.
func containsAny(db *gorm.DB, text string, columns ...string) (string, []interface{}) {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(text)) + "%"

	format := `LOWER(%s) LIKE ? ESCAPE '\'`
	if db.Dialector.Name() == "postgres" {
		format = `%s ILIKE ? ESCAPE '\'`
	}

	conds := make([]string, len(columns))
	args := make([]interface{}, len(columns))
	for i, column := range columns {
		conds[i] = fmt.Sprintf(format, column)
		args[i] = pattern
	}
	return "(" + strings.Join(conds, " OR ") + ")", args
}
