package gopagebar

import (
	"database/sql"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newGORMMySQLMock() (string, *gorm.DB, sqlmock.Sqlmock, error) {
	return openGORMMock("mysql", func(conn *sql.DB) gorm.Dialector {
		return mysql.New(mysql.Config{
			Conn:                      conn,
			SkipInitializeWithVersion: true,
		})
	})
}

func newGORMPostgresMock() (string, *gorm.DB, sqlmock.Sqlmock, error) {
	return openGORMMock("postgres", func(conn *sql.DB) gorm.Dialector {
		return postgres.New(postgres.Config{
			Conn: conn,
		})
	})
}

// openGORMMock opens a gorm session over sqlmock using the given dialector.
func openGORMMock(dialect string, fnDialector func(*sql.DB) gorm.Dialector) (string, *gorm.DB, sqlmock.Sqlmock, error) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		return dialect, nil, nil, err
	}

	db, err := gorm.Open(fnDialector(mockDB), &gorm.Config{})
	if err != nil {
		return dialect, nil, nil, err
	}

	return dialect, db.Debug(), mock, nil
}
