package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsDuplicateKeyError(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "idx_reviews_doctor_patient"}

	if !IsDuplicateKeyError(dup, "idx_reviews_doctor_patient") {
		t.Error("expected match on exact constraint name")
	}
	if !IsDuplicateKeyError(dup, "doctor_patient") {
		t.Error("expected match on constraint substring")
	}
	if !IsDuplicateKeyError(fmt.Errorf("insert failed: %w", dup), "doctor_patient") {
		t.Error("expected match through wrapped error")
	}
	if IsDuplicateKeyError(dup, "email") {
		t.Error("expected no match for a different constraint")
	}
	if IsDuplicateKeyError(&pgconn.PgError{Code: "23503", ConstraintName: "idx_reviews_doctor_patient"}, "doctor_patient") {
		t.Error("expected no match for a non-unique-violation code")
	}
	if IsDuplicateKeyError(errors.New("plain error"), "email") {
		t.Error("expected no match for a non-pg error")
	}
	if IsDuplicateKeyError(nil, "email") {
		t.Error("expected no match for nil error")
	}
}

func TestIsForeignKeyError(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "fk_appointments_doctor"}

	if !IsForeignKeyError(fk, "doctor") {
		t.Error("expected match on constraint substring")
	}
	if IsForeignKeyError(fk, "patient") {
		t.Error("expected no match for a different constraint")
	}
	if IsForeignKeyError(&pgconn.PgError{Code: "23505", ConstraintName: "fk_appointments_doctor"}, "doctor") {
		t.Error("expected no match for a unique-violation code")
	}
}
