package usecase

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"encontrapsi/internal/delivery/dto"
	"encontrapsi/internal/gateway/mercadopago"
)

type mockGateway struct {
	createFn    func(ctx context.Context, input mercadopago.PreferenceInput) (*mercadopago.Preference, error)
	getFn       func(ctx context.Context, paymentID string) (*mercadopago.Payment, error)
	createCalls int
}

func (m *mockGateway) CreateSubscriptionPreference(ctx context.Context, input mercadopago.PreferenceInput) (*mercadopago.Preference, error) {
	m.createCalls++
	return m.createFn(ctx, input)
}

func (m *mockGateway) GetPayment(ctx context.Context, paymentID string) (*mercadopago.Payment, error) {
	return m.getFn(ctx, paymentID)
}

type noopCollector struct{}

func (noopCollector) RecordQuizStarted()                 {}
func (noopCollector) RecordQuizCompleted(string)         {}
func (noopCollector) RecordDirectorySearch()             {}
func (noopCollector) RecordPreferenceCreated()           {}
func (noopCollector) RecordPaymentCallback(string)       {}
func (noopCollector) RecordAppointmentTransition(string) {}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newPaymentUsecaseForTest(gateway *mockGateway) PaymentUsecase {
	amount, _ := decimal.NewFromString("49.90")
	return NewPaymentUsecase(nil, quietLogger(), gateway, nil, nil, nil, noopCollector{}, amount)
}

func TestCreatePreference(t *testing.T) {
	gateway := &mockGateway{
		createFn: func(_ context.Context, input mercadopago.PreferenceInput) (*mercadopago.Preference, error) {
			if input.CRP != "06/12345" {
				t.Errorf("CRP = %q, want 06/12345", input.CRP)
			}
			return &mercadopago.Preference{
				ID:        "pref-1",
				InitPoint: "https://mercadopago.com/checkout/pref-1",
			}, nil
		},
	}
	u := newPaymentUsecaseForTest(gateway)

	resp, err := u.CreatePreference(context.Background(), &dto.CreatePreferenceRequest{
		FullName: "Dra. Ana Carolina Mendes",
		Email:    "ana@example.com",
		CRP:      "06/12345",
	})
	if err != nil {
		t.Fatalf("CreatePreference returned error: %v", err)
	}

	if resp.PreferenceID != "pref-1" {
		t.Errorf("PreferenceID = %q, want pref-1", resp.PreferenceID)
	}
	if resp.InitPoint == "" {
		t.Error("InitPoint is empty")
	}
}

func TestCreatePreferenceValidatesBeforeProviderCall(t *testing.T) {
	tests := []struct {
		name string
		req  *dto.CreatePreferenceRequest
	}{
		{"nil request", nil},
		{"missing name", &dto.CreatePreferenceRequest{Email: "a@b.com", CRP: "06/1"}},
		{"missing email", &dto.CreatePreferenceRequest{FullName: "Ana", CRP: "06/1"}},
		{"missing crp", &dto.CreatePreferenceRequest{FullName: "Ana", Email: "a@b.com"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gateway := &mockGateway{
				createFn: func(context.Context, mercadopago.PreferenceInput) (*mercadopago.Preference, error) {
					return &mercadopago.Preference{InitPoint: "https://x"}, nil
				},
			}
			u := newPaymentUsecaseForTest(gateway)

			_, err := u.CreatePreference(context.Background(), tc.req)
			if !errors.Is(err, ErrMissingPaymentData) {
				t.Errorf("error = %v, want ErrMissingPaymentData", err)
			}
			if gateway.createCalls != 0 {
				t.Errorf("provider called %d times for an invalid request", gateway.createCalls)
			}
		})
	}
}

func TestCreatePreferenceNoInitPoint(t *testing.T) {
	gateway := &mockGateway{
		createFn: func(context.Context, mercadopago.PreferenceInput) (*mercadopago.Preference, error) {
			return &mercadopago.Preference{ID: "pref-1"}, nil
		},
	}
	u := newPaymentUsecaseForTest(gateway)

	_, err := u.CreatePreference(context.Background(), &dto.CreatePreferenceRequest{
		FullName: "Ana", Email: "a@b.com", CRP: "06/1",
	})
	if !errors.Is(err, ErrNoInitPoint) {
		t.Errorf("error = %v, want ErrNoInitPoint", err)
	}
}

func TestCreatePreferenceSandboxLinkIsEnough(t *testing.T) {
	gateway := &mockGateway{
		createFn: func(context.Context, mercadopago.PreferenceInput) (*mercadopago.Preference, error) {
			return &mercadopago.Preference{ID: "pref-1", SandboxInitPoint: "https://sandbox"}, nil
		},
	}
	u := newPaymentUsecaseForTest(gateway)

	resp, err := u.CreatePreference(context.Background(), &dto.CreatePreferenceRequest{
		FullName: "Ana", Email: "a@b.com", CRP: "06/1",
	})
	if err != nil {
		t.Fatalf("CreatePreference returned error: %v", err)
	}
	if resp.SandboxInitPoint != "https://sandbox" {
		t.Errorf("SandboxInitPoint = %q", resp.SandboxInitPoint)
	}
}

func TestCreatePreferenceProviderError(t *testing.T) {
	providerErr := errors.New("provider unavailable")
	gateway := &mockGateway{
		createFn: func(context.Context, mercadopago.PreferenceInput) (*mercadopago.Preference, error) {
			return nil, providerErr
		},
	}
	u := newPaymentUsecaseForTest(gateway)

	_, err := u.CreatePreference(context.Background(), &dto.CreatePreferenceRequest{
		FullName: "Ana", Email: "a@b.com", CRP: "06/1",
	})
	if !errors.Is(err, providerErr) {
		t.Errorf("error = %v, want the provider error", err)
	}
}

func TestHandleWebhookIgnoresNonPayment(t *testing.T) {
	gateway := &mockGateway{
		getFn: func(context.Context, string) (*mercadopago.Payment, error) {
			t.Error("GetPayment called for a non-payment notification")
			return nil, nil
		},
	}
	u := newPaymentUsecaseForTest(gateway)

	tests := []*dto.WebhookRequest{
		nil,
		{Type: "merchant_order", Data: dto.WebhookData{ID: "123"}},
		{Type: "payment"},
	}
	for _, req := range tests {
		if err := u.HandleWebhook(context.Background(), req); err != nil {
			t.Errorf("HandleWebhook(%+v) returned error: %v", req, err)
		}
	}
}

func TestHandleWebhookIgnoresUnapprovedPayment(t *testing.T) {
	gateway := &mockGateway{
		getFn: func(_ context.Context, paymentID string) (*mercadopago.Payment, error) {
			return &mercadopago.Payment{ID: paymentID, Status: "rejected", ExternalReference: "06/1"}, nil
		},
	}
	u := newPaymentUsecaseForTest(gateway)

	// Unapproved payments are acknowledged without touching the
	// database; the nil handle would panic otherwise.
	err := u.HandleWebhook(context.Background(), &dto.WebhookRequest{
		Type: "payment",
		Data: dto.WebhookData{ID: "55"},
	})
	if err != nil {
		t.Errorf("HandleWebhook returned error: %v", err)
	}
}

func TestInterpretReturn(t *testing.T) {
	u := newPaymentUsecaseForTest(&mockGateway{})

	tests := []struct {
		status string
		want   string
	}{
		{"approved", PaymentOutcomeSuccess},
		{"pending", PaymentOutcomePending},
		{"in_process", PaymentOutcomePending},
		{"rejected", PaymentOutcomeFailure},
		{"cancelled", PaymentOutcomeFailure},
		{"", PaymentOutcomeFailure},
	}

	for _, tc := range tests {
		t.Run("status "+tc.status, func(t *testing.T) {
			resp := u.InterpretReturn("77", tc.status, "06/12345")
			if resp.Outcome != tc.want {
				t.Errorf("Outcome = %q, want %q", resp.Outcome, tc.want)
			}
			if resp.PaymentID != "77" || resp.CRP != "06/12345" {
				t.Errorf("response echoes wrong identifiers: %+v", resp)
			}
		})
	}
}
