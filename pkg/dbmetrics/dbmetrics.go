package dbmetrics

import (
	"context"
	"database/sql"
	"time"
)

// DBExecutor общий интерфейс *sql.DB и *DB
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// QueryObserver получатель длительности запросов
type QueryObserver interface {
	ObserveQuery(operation string, duration time.Duration, err error)
}

// DB обертка над *sql.DB, измеряющая длительность запросов
type DB struct {
	db       *sql.DB
	observer QueryObserver
}

// Wrap оборачивает соединение; observer может быть nil
func Wrap(db *sql.DB, observer QueryObserver) *DB {
	return &DB{db: db, observer: observer}
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	started := time.Now()
	result, err := d.db.ExecContext(ctx, query, args...)
	d.observe("exec", started, err)
	return result, err
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	started := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe("query", started, err)
	return rows, err
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	started := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe("query_row", started, row.Err())
	return row
}

// PingContext проверяет соединение
func (d *DB) PingContext(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

// Close закрывает соединение
func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) observe(operation string, started time.Time, err error) {
	if d.observer == nil {
		return
	}
	if err == sql.ErrNoRows {
		err = nil
	}
	d.observer.ObserveQuery(operation, time.Since(started), err)
}
