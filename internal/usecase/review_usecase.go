package usecase

import (
	"context"
	"errors"
	"math"

	"clinic-backend/internal/converter"
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/domain/repository"
	"clinic-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrReviewNotFound = errors.New("review not found")
)

// errReviewInsertRace signals that an insert lost the unique-index race to a
// concurrent upsert for the same (doctor, patient) pair.
var errReviewInsertRace = errors.New("review insert lost unique-index race")

type ReviewUsecase interface {
	Upsert(ctx context.Context, userID uuid.UUID, req *dto.UpsertReviewRequest) (*dto.ReviewResponse, error)
	Delete(ctx context.Context, userID uuid.UUID, reviewID uuid.UUID) error
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]dto.ReviewResponse, error)
}

type reviewUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	reviewRepo       repository.ReviewRepository
	doctorRepo       repository.DoctorRepository
	provisionService *service.ProvisionService
	auditService     *service.AuditService
}

func NewReviewUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	reviewRepo repository.ReviewRepository,
	doctorRepo repository.DoctorRepository,
	provisionService *service.ProvisionService,
	auditService *service.AuditService,
) ReviewUsecase {
	return &reviewUsecase{
		db:               db,
		log:              log,
		reviewRepo:       reviewRepo,
		doctorRepo:       doctorRepo,
		provisionService: provisionService,
		auditService:     auditService,
	}
}

func (u *reviewUsecase) Upsert(ctx context.Context, userID uuid.UUID, req *dto.UpsertReviewRequest) (*dto.ReviewResponse, error) {
	if req.Rating < entity.MinRating || req.Rating > entity.MaxRating {
		return nil, ErrInvalidRating
	}

	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		return nil, ErrDoctorNotFound
	}

	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	patient, err := u.provisionService.EnsurePatient(ctx, u.db.WithContext(ctx), userID)
	if err != nil {
		return nil, err
	}

	// Insert-vs-update is decided on the auto-commit connection. A unique
	// violation inside a transaction aborts it, which would poison the
	// rating recompute, so a lost insert race rolls the transaction back
	// and the winning row is re-read out here before retrying as an update.
	existing, err := u.reviewRepo.FindByDoctorAndPatient(u.db.WithContext(ctx), doctor.ID, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to find review: %+v", err)
		return nil, err
	}

	review, err := u.writeReview(ctx, doctor.ID, patient.ID, existing, req)
	if errors.Is(err, errReviewInsertRace) {
		existing, err = u.reviewRepo.FindByDoctorAndPatient(u.db.WithContext(ctx), doctor.ID, patient.ID)
		if err != nil {
			u.log.Warnf("Failed to re-read review after duplicate insert: %+v", err)
			return nil, err
		}
		if existing == nil {
			// The winning row was deleted before the re-read.
			u.log.Warnf("Review vanished after duplicate insert for doctor %s patient %s", doctor.ID, patient.ID)
			return nil, errReviewInsertRace
		}
		review, err = u.writeReview(ctx, doctor.ID, patient.ID, existing, req)
	}
	if err != nil {
		return nil, err
	}

	u.auditService.Record(&userID, entity.AuditActionReviewUpsert, entity.JSON{
		"review_id": review.ID.String(),
		"doctor_id": doctor.ID.String(),
		"rating":    review.Rating,
	})

	return converter.ReviewToResponse(review), nil
}

func (u *reviewUsecase) Delete(ctx context.Context, userID uuid.UUID, reviewID uuid.UUID) error {
	patient, err := u.provisionService.EnsurePatient(ctx, u.db.WithContext(ctx), userID)
	if err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	review, rows, err := u.reviewRepo.DeleteScoped(tx, reviewID, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to delete review: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrReviewNotFound
	}

	if err := u.recomputeRating(tx, review.DoctorID); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.auditService.Record(&userID, entity.AuditActionReviewDelete, entity.JSON{
		"review_id": reviewID.String(),
		"doctor_id": review.DoctorID.String(),
	})

	return nil
}

func (u *reviewUsecase) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]dto.ReviewResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindByID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	reviews, err := u.reviewRepo.FindByDoctorID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to list reviews: %+v", err)
		return nil, err
	}

	return converter.ReviewsToResponses(reviews), nil
}

// writeReview applies the review mutation and the rating recompute in one
// transaction. A nil existing row means insert; a lost insert race surfaces
// as errReviewInsertRace after the transaction is rolled back.
func (u *reviewUsecase) writeReview(ctx context.Context, doctorID, patientID uuid.UUID, existing *entity.Review, req *dto.UpsertReviewRequest) (*entity.Review, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	review := existing
	if review == nil {
		review = &entity.Review{
			DoctorID:   doctorID,
			PatientID:  patientID,
			Rating:     req.Rating,
			ReviewText: req.ReviewText,
		}
		if err := u.reviewRepo.Create(tx, review); err != nil {
			if service.IsDuplicateKeyError(err, "idx_reviews_doctor_patient") {
				return nil, errReviewInsertRace
			}
			u.log.Warnf("Failed to create review: %+v", err)
			return nil, err
		}
	} else {
		review.Rating = req.Rating
		review.ReviewText = req.ReviewText
		if err := u.reviewRepo.Update(tx, review); err != nil {
			u.log.Warnf("Failed to update review: %+v", err)
			return nil, err
		}
	}

	if err := u.recomputeRating(tx, doctorID); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return review, nil
}

// recomputeRating refreshes the doctor's denormalized rating columns from the
// full review set. An empty set resets both to zero.
func (u *reviewUsecase) recomputeRating(tx *gorm.DB, doctorID uuid.UUID) error {
	aggregate, err := u.reviewRepo.AggregateByDoctor(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to aggregate reviews: %+v", err)
		return err
	}

	average := roundTo2(aggregate.Average)
	if err := u.doctorRepo.UpdateRatingStats(tx, doctorID, average, int(aggregate.Count)); err != nil {
		u.log.Warnf("Failed to update doctor rating: %+v", err)
		return err
	}

	return nil
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
