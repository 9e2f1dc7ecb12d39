package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venue-reservation-service/internal/pkg/errors"
)

func TestLocationRepository_FindCityByName(t *testing.T) {
	t.Run("exact match", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewLocationRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("FROM cities")).
			WithArgs("Bucaramanga").
			WillReturnRows(sqlmock.NewRows([]string{"id", "nombre_ciud", "department_id"}).
				AddRow("c1", "Bucaramanga", "d1"))

		city, err := repo.FindCityByName(context.Background(), "Bucaramanga")
		require.NoError(t, err)
		require.NotNil(t, city)
		assert.Equal(t, "c1", city.ID)
		assert.Equal(t, "d1", city.DepartmentID)
	})

	t.Run("no match is nil without error", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewLocationRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("FROM cities")).
			WithArgs("bucaramanga").
			WillReturnError(sql.ErrNoRows)

		city, err := repo.FindCityByName(context.Background(), "bucaramanga")
		assert.NoError(t, err)
		assert.Nil(t, city)
	})
}

func TestLocationRepository_FindDepartmentByName(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLocationRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM departments")).
		WithArgs("Santander").
		WillReturnRows(sqlmock.NewRows([]string{"id", "nombre_depart"}).AddRow("d1", "Santander"))

	dept, err := repo.FindDepartmentByName(context.Background(), "Santander")
	require.NoError(t, err)
	assert.Equal(t, "d1", dept.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocationRepository_ListCityIDsByDepartment(t *testing.T) {
	t.Run("all cities of the department", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewLocationRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT id::text FROM cities WHERE department_id::text = $1")).
			WithArgs("d1").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("c1").AddRow("c2").AddRow("c3"))

		ids, err := repo.ListCityIDsByDepartment(context.Background(), "d1")
		require.NoError(t, err)
		assert.Equal(t, []string{"c1", "c2", "c3"}, ids)
	})

	t.Run("database error", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewLocationRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("FROM cities")).WillReturnError(sql.ErrConnDone)

		_, err := repo.ListCityIDsByDepartment(context.Background(), "d1")
		assert.ErrorIs(t, err, errors.ErrDatabaseError)
	})
}
