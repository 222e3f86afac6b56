package specification

import (
	"context"
	"testing"

	"catalog/domain/category"
	"catalog/domain/shared"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type categoryRow struct {
	CategoryID string `gorm:"primaryKey"`
	Name       string
	IsActive   bool
}

func (categoryRow) TableName() string { return "categories" }

func dryRun(t *testing.T, scope func(*gorm.DB) *gorm.DB) (string, []any) {
	t.Helper()
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{
		DryRun: true,
		Logger: gormlogger.Discard,
	})
	require.NoError(t, err)

	stmt := db.Scopes(scope).Find(&[]categoryRow{}).Statement
	return stmt.SQL.String(), stmt.Vars
}

type unknownSpec struct{}

func (unknownSpec) IsSatisfiedBy(context.Context, *category.Category) bool { return true }

func TestTranslate(t *testing.T) {
	name := category.NewNameContainsSpecification("TeSt")
	active := category.NewActiveSpecification(true)

	tests := []struct {
		name     string
		spec     shared.Specification[*category.Category]
		wantSQL  string
		wantVars []any
	}{
		{
			name:     "name contains",
			spec:     name,
			wantSQL:  "SELECT * FROM `categories` WHERE LOWER(name) LIKE ?",
			wantVars: []any{"%test%"},
		},
		{
			name:     "active",
			spec:     active,
			wantSQL:  "SELECT * FROM `categories` WHERE `is_active` = ?",
			wantVars: []any{true},
		},
		{
			name:     "and",
			spec:     shared.And(name, active),
			wantSQL:  "SELECT * FROM `categories` WHERE LOWER(name) LIKE ? AND `is_active` = ?",
			wantVars: []any{"%test%", true},
		},
		{
			name:     "or",
			spec:     shared.Or(name, active),
			wantSQL:  "SELECT * FROM `categories` WHERE (LOWER(name) LIKE ? OR `is_active` = ?)",
			wantVars: []any{"%test%", true},
		},
		{
			name:     "not",
			spec:     shared.Not(name),
			wantSQL:  "SELECT * FROM `categories` WHERE LOWER(name) NOT LIKE ?",
			wantVars: []any{"%test%"},
		},
		{
			name:     "not and",
			spec:     shared.Not(shared.And(name, active)),
			wantSQL:  "SELECT * FROM `categories` WHERE (LOWER(name) NOT LIKE ? OR `is_active` <> ?)",
			wantVars: []any{"%test%", true},
		},
		{
			name:     "not or",
			spec:     shared.Not(shared.Or(name, active)),
			wantSQL:  "SELECT * FROM `categories` WHERE LOWER(name) NOT LIKE ? AND `is_active` <> ?",
			wantVars: []any{"%test%", true},
		},
		{
			name:     "double negation",
			spec:     shared.Not(shared.Not(active)),
			wantSQL:  "SELECT * FROM `categories` WHERE `is_active` = ?",
			wantVars: []any{true},
		},
	}

	translator := NewGormTranslator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope := translator.Translate(tt.spec)
			require.NotNil(t, scope)

			sql, vars := dryRun(t, scope)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantVars, vars)
		})
	}
}

func TestTranslateUnknown(t *testing.T) {
	translator := NewGormTranslator()

	assert.Nil(t, translator.Translate(nil))
	assert.Nil(t, translator.Translate(unknownSpec{}))
	assert.Nil(t, translator.Translate(shared.And[*category.Category](unknownSpec{}, category.NewActiveSpecification(true))))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\%\_off\\`, EscapeLike(`50%_off\`))
	assert.Equal(t, "plain", EscapeLike("plain"))
}
