package usecase

import (
	"context"
	"testing"

	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"

	"github.com/google/uuid"
)

func TestRoundTo2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{4.666666666, 4.67},
		{4.664, 4.66},
		{3.005, 3.01},
		{5, 5},
		{1.999, 2},
	}

	for _, tc := range cases {
		if got := roundTo2(tc.in); got != tc.want {
			t.Errorf("roundTo2(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestUpsertReviewSecondSubmissionUpdatesSameRow(t *testing.T) {
	env := newReviewTestEnv(t)
	doctor := env.doctors.seed("Cardiology")
	userID := uuid.New()

	first, err := env.uc.Upsert(context.Background(), userID, &dto.UpsertReviewRequest{
		DoctorID:   doctor.ID.String(),
		Rating:     5,
		ReviewText: "very thorough",
	})
	if err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}

	second, err := env.uc.Upsert(context.Background(), userID, &dto.UpsertReviewRequest{
		DoctorID: doctor.ID.String(),
		Rating:   3,
	})
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("second upsert created row %s, want update of %s", second.ID, first.ID)
	}
	if len(env.reviews.reviews) != 1 {
		t.Errorf("review count = %d, want 1", len(env.reviews.reviews))
	}
	if env.doctors.lastRating != 3 || env.doctors.lastReviews != 1 {
		t.Errorf("doctor stats = %v/%d, want 3/1", env.doctors.lastRating, env.doctors.lastReviews)
	}
}

func TestUpsertReviewRecomputesAggregates(t *testing.T) {
	env := newReviewTestEnv(t)
	doctor := env.doctors.seed("Cardiology")

	for _, rating := range []int{5, 4, 5} {
		_, err := env.uc.Upsert(context.Background(), uuid.New(), &dto.UpsertReviewRequest{
			DoctorID: doctor.ID.String(),
			Rating:   rating,
		})
		if err != nil {
			t.Fatalf("upsert failed: %v", err)
		}
	}

	if env.doctors.lastRating != 4.67 {
		t.Errorf("rating = %v, want 4.67", env.doctors.lastRating)
	}
	if env.doctors.lastReviews != 3 {
		t.Errorf("total reviews = %d, want 3", env.doctors.lastReviews)
	}
	if doctor.Rating != 4.67 || doctor.TotalReviews != 3 {
		t.Errorf("doctor row = %v/%d, want 4.67/3", doctor.Rating, doctor.TotalReviews)
	}
}

func TestUpsertReviewRatingBounds(t *testing.T) {
	env := newReviewTestEnv(t)
	doctor := env.doctors.seed("Cardiology")

	for _, rating := range []int{0, 6, -1} {
		_, err := env.uc.Upsert(context.Background(), uuid.New(), &dto.UpsertReviewRequest{
			DoctorID: doctor.ID.String(),
			Rating:   rating,
		})
		if err != ErrInvalidRating {
			t.Errorf("rating %d: err = %v, want ErrInvalidRating", rating, err)
		}
	}
	if len(env.reviews.reviews) != 0 {
		t.Errorf("review count = %d, want 0 writes for rejected ratings", len(env.reviews.reviews))
	}
	if env.doctors.statCalls != 0 {
		t.Errorf("recompute ran %d times, want 0", env.doctors.statCalls)
	}
}

func TestUpsertReviewUnknownDoctor(t *testing.T) {
	env := newReviewTestEnv(t)

	_, err := env.uc.Upsert(context.Background(), uuid.New(), &dto.UpsertReviewRequest{
		DoctorID: uuid.New().String(),
		Rating:   4,
	})
	if err != ErrDoctorNotFound {
		t.Fatalf("err = %v, want ErrDoctorNotFound", err)
	}
}

func TestUpsertReviewLostInsertRaceUpdatesWinningRow(t *testing.T) {
	env := newReviewTestEnv(t)
	doctor := env.doctors.seed("Cardiology")
	userID := uuid.New()

	patient := &entity.Patient{ID: uuid.New(), UserID: userID}
	env.patients.patients[patient.ID] = patient

	winner := &entity.Review{
		ID:        uuid.New(),
		DoctorID:  doctor.ID,
		PatientID: patient.ID,
		Rating:    4,
	}
	env.reviews.createErr = duplicateKeyErr("idx_reviews_doctor_patient")
	env.reviews.raceRow = winner

	resp, err := env.uc.Upsert(context.Background(), userID, &dto.UpsertReviewRequest{
		DoctorID: doctor.ID.String(),
		Rating:   2,
	})
	if err != nil {
		t.Fatalf("upsert after lost insert race failed: %v", err)
	}

	if resp.ID != winner.ID {
		t.Errorf("resp.ID = %s, want the winning row %s", resp.ID, winner.ID)
	}
	if len(env.reviews.reviews) != 1 {
		t.Errorf("review count = %d, want 1", len(env.reviews.reviews))
	}
	if got := env.reviews.reviews[winner.ID].Rating; got != 2 {
		t.Errorf("stored rating = %d, want 2", got)
	}
	if env.doctors.lastRating != 2 || env.doctors.lastReviews != 1 {
		t.Errorf("doctor stats = %v/%d, want 2/1", env.doctors.lastRating, env.doctors.lastReviews)
	}
}

func TestDeleteReviewRecomputesToZero(t *testing.T) {
	env := newReviewTestEnv(t)
	doctor := env.doctors.seed("Cardiology")
	userID := uuid.New()

	resp, err := env.uc.Upsert(context.Background(), userID, &dto.UpsertReviewRequest{
		DoctorID: doctor.ID.String(),
		Rating:   5,
	})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	if err := env.uc.Delete(context.Background(), userID, resp.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if env.doctors.lastRating != 0 || env.doctors.lastReviews != 0 {
		t.Errorf("doctor stats = %v/%d, want 0/0 after emptying the set", env.doctors.lastRating, env.doctors.lastReviews)
	}

	if err := env.uc.Delete(context.Background(), userID, resp.ID); err != ErrReviewNotFound {
		t.Fatalf("second delete err = %v, want ErrReviewNotFound", err)
	}
}
