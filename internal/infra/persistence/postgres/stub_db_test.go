package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/callbacks"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var errStubUnsupported = errors.New("not supported by stub connection")

// stubConnPool answers gorm's statements with canned results instead of a database.
type stubConnPool struct {
	execErr      error
	rowsAffected int64
	queryErr     error
	statements   []string
}

func (p *stubConnPool) PrepareContext(context.Context, string) (*sql.Stmt, error) {
	return nil, errStubUnsupported
}

func (p *stubConnPool) ExecContext(_ context.Context, query string, _ ...interface{}) (sql.Result, error) {
	p.statements = append(p.statements, query)
	if p.execErr != nil {
		return nil, p.execErr
	}

	return stubResult{rowsAffected: p.rowsAffected}, nil
}

func (p *stubConnPool) QueryContext(_ context.Context, query string, _ ...interface{}) (*sql.Rows, error) {
	p.statements = append(p.statements, query)
	if p.queryErr != nil {
		return nil, p.queryErr
	}

	return nil, errStubUnsupported
}

func (p *stubConnPool) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

type stubResult struct {
	rowsAffected int64
}

func (r stubResult) LastInsertId() (int64, error) {
	return 0, errStubUnsupported
}

func (r stubResult) RowsAffected() (int64, error) {
	return r.rowsAffected, nil
}

// stubDialector registers gorm's default callbacks over a stubConnPool.
type stubDialector struct {
	pool *stubConnPool
}

func (d stubDialector) Name() string {
	return "stub"
}

func (d stubDialector) Initialize(db *gorm.DB) error {
	callbacks.RegisterDefaultCallbacks(db, &callbacks.Config{})
	db.ConnPool = d.pool

	return nil
}

func (d stubDialector) Migrator(*gorm.DB) gorm.Migrator {
	return nil
}

func (d stubDialector) DataTypeOf(*schema.Field) string {
	return ""
}

func (d stubDialector) DefaultValueOf(*schema.Field) clause.Expression {
	return clause.Expr{SQL: "DEFAULT"}
}

func (d stubDialector) BindVarTo(writer clause.Writer, _ *gorm.Statement, _ interface{}) {
	_ = writer.WriteByte('?')
}

func (d stubDialector) QuoteTo(writer clause.Writer, str string) {
	_, _ = writer.WriteString(`"` + str + `"`)
}

func (d stubDialector) Explain(sql string, _ ...interface{}) string {
	return sql
}

func newStubDB(t *testing.T, pool *stubConnPool) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(stubDialector{pool: pool}, &gorm.Config{
		Logger:                 logger.Discard,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db
}
