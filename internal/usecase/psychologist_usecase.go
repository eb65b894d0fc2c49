package usecase

import (
	"context"

	"encontrapsi/internal/converter"
	"encontrapsi/internal/delivery/dto"
	"encontrapsi/internal/domain/entity"
	"encontrapsi/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type PsychologistUsecase interface {
	Register(ctx context.Context, req *dto.RegisterPsychologistRequest) (*dto.PsychologistResponse, error)
	GetOwnProfile(ctx context.Context, userID uuid.UUID) (*dto.PsychologistResponse, error)
	GetSubscription(ctx context.Context, userID uuid.UUID) (*entity.Subscription, error)
}

type psychologistUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	userRepo         repository.UserRepository
	psychologistRepo repository.PsychologistRepository
	subscriptionRepo repository.SubscriptionRepository
}

func NewPsychologistUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	psychologistRepo repository.PsychologistRepository,
	subscriptionRepo repository.SubscriptionRepository,
) PsychologistUsecase {
	return &psychologistUsecase{
		db:               db,
		log:              log,
		userRepo:         userRepo,
		psychologistRepo: psychologistRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

// Register creates the psychologist account with a pending subscription.
// The profile stays out of the directory until a payment activates it.
func (u *psychologistUsecase) Register(ctx context.Context, req *dto.RegisterPsychologistRequest) (*dto.PsychologistResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Email:    req.Email,
		Password: string(hashedPassword),
		FullName: req.FullName,
		Phone:    req.Phone,
		RoleID:   entity.RoleIDPsychologist,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		if isForeignKeyError(err, "role") {
			return nil, ErrRoleNotFound
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	registration := converter.RegistrationFromRequest(req)

	profile := &entity.PsychologistProfile{
		UserID:             user.ID,
		CRP:                registration.CRP,
		Phone:              registration.Phone,
		Approaches:         entity.ApproachList(registration.Approaches),
		Specialties:        entity.StringList(registration.Specialties),
		Bio:                registration.Bio,
		City:               registration.City,
		State:              registration.State,
		Neighborhood:       registration.Neighborhood,
		Modalities:         entity.ModalityList(registration.Modalities),
		PriceRange:         registration.PriceRange,
		SubscriptionStatus: entity.SubscriptionPending,
	}

	if err := u.psychologistRepo.Create(tx, profile); err != nil {
		if isDuplicateKeyError(err, "crp") {
			return nil, ErrCRPAlreadyExists
		}
		u.log.Warnf("Failed to create psychologist profile: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	profile.User = *user
	return converter.PsychologistToOwnerResponse(profile), nil
}

func (u *psychologistUsecase) GetOwnProfile(ctx context.Context, userID uuid.UUID) (*dto.PsychologistResponse, error) {
	profile, err := u.psychologistRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find psychologist profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrPsychologistNotFound
	}

	return converter.PsychologistToOwnerResponse(profile), nil
}

func (u *psychologistUsecase) GetSubscription(ctx context.Context, userID uuid.UUID) (*entity.Subscription, error) {
	subscription, err := u.subscriptionRepo.FindLatestByPsychologistID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find subscription: %+v", err)
		return nil, err
	}
	return subscription, nil
}
