package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"

	"reservoria/internal/domain"
	"reservoria/internal/domain/models"
)

func TestFindByEmailNormalizes(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM users WHERE LOWER\\(email\\) = \\?").WithArgs("admin@reservoria.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "role", "status", "password_hash", "created_at"}).
			AddRow("1", "Admin User", "admin@reservoria.com", "admin", "active", "hash", time.Now()))

	u, err := UserRepository{DB: db}.FindByEmail(context.Background(), "  Admin@Reservoria.com ")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if u.ID != "1" || u.PasswordHash != "hash" {
		t.Fatalf("unexpected user %+v", u)
	}
}

func TestFindByEmailNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM users").WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = UserRepository{DB: db}.FindByEmail(context.Background(), "nobody@reservoria.com")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCreateUserDuplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	_, err = UserRepository{DB: db}.Create(context.Background(), models.User{Name: "A", Email: "a@b.co"})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestCreateUserAssignsID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), "New User", "new@reservoria.com", "staff", "active", "hash", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	u, err := UserRepository{DB: db}.Create(context.Background(), models.User{
		Name: "New User", Email: "New@Reservoria.com", Role: "staff", Status: "active", PasswordHash: "hash",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.ID == "" || u.Email != "new@reservoria.com" {
		t.Fatalf("unexpected user %+v", u)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
