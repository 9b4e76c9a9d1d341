package store

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"gitlab.com/webkontor/contactbook/internal/config"
	"gitlab.com/webkontor/contactbook/internal/model"
)

// db is a handle to the database.
var db *sqlx.DB

// selectContactWhereId is a prepared statement for selecting a contact with a given id.
var selectContactWhereId *sqlx.Stmt

// selectPhonesWhereContactId is a prepared statement for selecting the phones of a contact.
var selectPhonesWhereContactId *sqlx.Stmt

// selectUserWhereEmail is a prepared statement for selecting a user with a given email address.
var selectUserWhereEmail *sqlx.Stmt

// selectNewsReleaseWhereId is a prepared statement for selecting a news release with a given id.
var selectNewsReleaseWhereId *sqlx.Stmt

// insertUser is a prepared statement for creating a user on the database.
var insertUser *sqlx.NamedStmt

// insertNewsRelease is a prepared statement for creating a news release on the database.
var insertNewsRelease *sqlx.NamedStmt

// validate checks record candidates before they are written.
var validate = validator.New()

// ErrNotFound is returned when no record matches the requested key.
var ErrNotFound = errors.New("record not found")

// ValidationError reports why a record was rejected, as one message per
// offending field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// CreateDatabase initializes and returns a database connection with the
// parameters taken from the given configuration.
func CreateDatabase(cfg *config.Config) *sql.DB {
	dsn := fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBName)
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Fatal(err)
	}
	return sqlDB
}

// SetupDatabaseWrapper initializes the sqlx database wrapper with the specified sql database. It
// then prepares all statements. The database argument can be a real database for production use
// or a mock database within unit tests.
func SetupDatabaseWrapper(sqlDB *sql.DB) {
	var err error
	db = sqlx.NewDb(sqlDB, "mysql")

	// Prepared statements offer a significant speed increase if executed many times.
	selectContactWhereId, err = db.Preparex(`
		SELECT * FROM contacts WHERE id = ?
	`)
	if err != nil {
		log.Fatal(err)
	}
	selectPhonesWhereContactId, err = db.Preparex(`
		SELECT * FROM phones WHERE contact_id = ? ORDER BY id
	`)
	if err != nil {
		log.Fatal(err)
	}
	selectUserWhereEmail, err = db.Preparex(`
		SELECT * FROM users WHERE email = ?
	`)
	if err != nil {
		log.Fatal(err)
	}
	selectNewsReleaseWhereId, err = db.Preparex(`
		SELECT * FROM news_releases WHERE id = ?
	`)
	if err != nil {
		log.Fatal(err)
	}
	insertUser, err = db.PrepareNamed(`
		INSERT INTO users (id, email, password_hash, role, firstname, lastname)
		VALUES (:id, :email, :password_hash, :role, :firstname, :lastname)
	`)
	if err != nil {
		log.Fatal(err)
	}
	insertNewsRelease, err = db.PrepareNamed(`
		INSERT INTO news_releases (title, body, released_on)
		VALUES (:title, :body, :released_on)
	`)
	if err != nil {
		log.Fatal(err)
	}
}

// validateContact checks a candidate against the contact rules and converts
// any violations into a ValidationError.
func validateContact(contact model.Contact) error {
	err := validate.Struct(contact)
	if err == nil {
		return nil
	}
	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		return err
	}
	fields := make(map[string]string, len(violations))
	for _, violation := range violations {
		fields[violation.Field()] = messageForTag(violation.Tag())
	}
	return &ValidationError{Fields: fields}
}

// messageForTag translates a validator tag into a message fit for form
// re-display.
func messageForTag(tag string) string {
	switch tag {
	case "required":
		return "must not be blank"
	default:
		return "is invalid"
	}
}
