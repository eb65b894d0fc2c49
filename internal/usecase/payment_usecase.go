package usecase

import (
	"context"
	"errors"
	"time"

	"encontrapsi/internal/delivery/dto"
	"encontrapsi/internal/domain/entity"
	"encontrapsi/internal/domain/repository"
	"encontrapsi/internal/gateway/mercadopago"
	"encontrapsi/internal/metrics"
	"encontrapsi/internal/service"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	// ErrMissingPaymentData rejects a checkout before any provider call:
	// the preference needs name, email and CRP.
	ErrMissingPaymentData = errors.New("full name, email and CRP are required")

	// ErrNoInitPoint is returned when the provider answers without a
	// redirect link.
	ErrNoInitPoint = errors.New("payment provider returned no checkout link")
)

// Checkout return outcomes.
const (
	PaymentOutcomeSuccess = "success"
	PaymentOutcomePending = "pending"
	PaymentOutcomeFailure = "failure"
)

type PaymentUsecase interface {
	CreatePreference(ctx context.Context, req *dto.CreatePreferenceRequest) (*dto.PreferenceResponse, error)
	HandleWebhook(ctx context.Context, req *dto.WebhookRequest) error
	InterpretReturn(paymentID, status, externalReference string) *dto.PaymentReturnResponse
}

type paymentUsecase struct {
	db                  *gorm.DB
	log                 *logrus.Logger
	gateway             mercadopago.Gateway
	psychologistRepo    repository.PsychologistRepository
	subscriptionRepo    repository.SubscriptionRepository
	notificationService service.NotificationService
	collector           metrics.Collector
	amount              decimal.Decimal
}

func NewPaymentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	gateway mercadopago.Gateway,
	psychologistRepo repository.PsychologistRepository,
	subscriptionRepo repository.SubscriptionRepository,
	notificationService service.NotificationService,
	collector metrics.Collector,
	amount decimal.Decimal,
) PaymentUsecase {
	return &paymentUsecase{
		db:                  db,
		log:                 log,
		gateway:             gateway,
		psychologistRepo:    psychologistRepo,
		subscriptionRepo:    subscriptionRepo,
		notificationService: notificationService,
		collector:           collector,
		amount:              amount,
	}
}

func (u *paymentUsecase) CreatePreference(ctx context.Context, req *dto.CreatePreferenceRequest) (*dto.PreferenceResponse, error) {
	// Validate locally before touching the provider.
	if req == nil || req.FullName == "" || req.Email == "" || req.CRP == "" {
		return nil, ErrMissingPaymentData
	}

	preference, err := u.gateway.CreateSubscriptionPreference(ctx, mercadopago.PreferenceInput{
		FullName: req.FullName,
		Email:    req.Email,
		CRP:      req.CRP,
	})
	if err != nil {
		u.log.Warnf("Failed to create payment preference: %+v", err)
		return nil, err
	}
	if preference.InitPoint == "" && preference.SandboxInitPoint == "" {
		return nil, ErrNoInitPoint
	}

	u.collector.RecordPreferenceCreated()

	return &dto.PreferenceResponse{
		PreferenceID:     preference.ID,
		InitPoint:        preference.InitPoint,
		SandboxInitPoint: preference.SandboxInitPoint,
	}, nil
}

// HandleWebhook processes a provider notification. Notifications other
// than payments are acknowledged and ignored; unknown or duplicate
// payments are acknowledged too, so the provider stops retrying.
func (u *paymentUsecase) HandleWebhook(ctx context.Context, req *dto.WebhookRequest) error {
	if req == nil || req.Type != "payment" || req.Data.ID == "" {
		return nil
	}

	payment, err := u.gateway.GetPayment(ctx, req.Data.ID)
	if err != nil {
		u.log.Warnf("Failed to fetch payment %s: %+v", req.Data.ID, err)
		return err
	}

	if payment.Status != "approved" {
		u.log.Infof("Ignoring payment %s with status %s", payment.ID, payment.Status)
		u.collector.RecordPaymentCallback(payment.Status)
		return nil
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// The preference carries the CRP as external reference.
	profile, err := u.psychologistRepo.FindByCRP(tx, payment.ExternalReference)
	if err != nil {
		u.log.Warnf("Failed to find psychologist by CRP: %+v", err)
		return err
	}
	if profile == nil {
		u.log.Warnf("Approved payment %s references unknown CRP %q", payment.ID, payment.ExternalReference)
		return nil
	}

	// Idempotent: the provider retries webhooks.
	existing, err := u.subscriptionRepo.FindByPaymentID(tx, payment.ID)
	if err != nil {
		u.log.Warnf("Failed to check existing subscription: %+v", err)
		return err
	}
	if existing != nil {
		return nil
	}

	startDate := time.Now()
	subscription := &entity.Subscription{
		PsychologistID: profile.UserID,
		Plan:           entity.PlanMonthly,
		Status:         entity.SubscriptionActive,
		PaymentID:      payment.ID,
		Amount:         u.amount,
		StartDate:      startDate,
		ExpiryDate:     startDate.AddDate(0, 1, 0),
	}

	if err := u.subscriptionRepo.Create(tx, subscription); err != nil {
		if isDuplicateKeyError(err, "payment_id") {
			return nil
		}
		u.log.Warnf("Failed to create subscription: %+v", err)
		return err
	}

	if err := u.psychologistRepo.UpdateSubscriptionStatus(tx, profile.UserID, entity.SubscriptionActive); err != nil {
		u.log.Warnf("Failed to activate subscription status: %+v", err)
		return err
	}

	u.notificationService.Notify(ctx, tx, profile.UserID,
		entity.NotificationSubscriptionActive,
		"Assinatura ativada",
		"Seu pagamento foi aprovado e seu perfil já aparece na busca de psicólogos.",
		subscription.PaymentID)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.collector.RecordPaymentCallback(payment.Status)
	u.log.Infof("Activated subscription for CRP %s via payment %s", profile.CRP, payment.ID)

	return nil
}

// InterpretReturn maps the checkout return query parameters to an
// outcome for the browser. Activation itself happens via webhook.
func (u *paymentUsecase) InterpretReturn(paymentID, status, externalReference string) *dto.PaymentReturnResponse {
	outcome := PaymentOutcomeFailure
	switch status {
	case "approved":
		outcome = PaymentOutcomeSuccess
	case "pending", "in_process":
		outcome = PaymentOutcomePending
	}

	return &dto.PaymentReturnResponse{
		Outcome:   outcome,
		PaymentID: paymentID,
		Status:    status,
		CRP:       externalReference,
	}
}
