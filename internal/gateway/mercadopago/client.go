// Package mercadopago wraps the Mercado Pago SDK behind a small
// gateway interface so the payment usecase can be tested without the
// provider.
package mercadopago

import (
	"context"
	"fmt"
	"strconv"

	appconfig "encontrapsi/config"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

// PreferenceInput carries the psychologist data attached to a
// subscription checkout.
type PreferenceInput struct {
	FullName string
	Email    string
	CRP      string
}

// Preference is the provider's checkout handle. The browser is
// redirected to InitPoint.
type Preference struct {
	ID               string
	InitPoint        string
	SandboxInitPoint string
}

// Payment is the subset of the provider's payment resource the webhook
// flow needs.
type Payment struct {
	ID                string
	Status            string
	ExternalReference string
}

// Gateway is the payment-provider surface consumed by the usecase
// layer.
type Gateway interface {
	CreateSubscriptionPreference(ctx context.Context, input PreferenceInput) (*Preference, error)
	GetPayment(ctx context.Context, paymentID string) (*Payment, error)
}

type client struct {
	cfg              appconfig.MercadoPagoConfig
	baseURL          string
	preferenceClient preference.Client
	paymentClient    payment.Client
}

// NewClient builds a Gateway from the application config.
func NewClient(appCfg *appconfig.Config) (Gateway, error) {
	sdkCfg, err := config.New(appCfg.MercadoPago.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize mercado pago client: %w", err)
	}

	return &client{
		cfg:              appCfg.MercadoPago,
		baseURL:          appCfg.App.BaseURL,
		preferenceClient: preference.NewClient(sdkCfg),
		paymentClient:    payment.NewClient(sdkCfg),
	}, nil
}

func (c *client) CreateSubscriptionPreference(ctx context.Context, input PreferenceInput) (*Preference, error) {
	amount, err := strconv.ParseFloat(c.cfg.Amount, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid subscription amount %q: %w", c.cfg.Amount, err)
	}

	request := preference.Request{
		Items: []preference.ItemRequest{
			{
				ID:          c.cfg.ItemID,
				Title:       c.cfg.ItemTitle,
				Description: "Plano mensal para divulgação profissional e gestão de agendamentos",
				Quantity:    1,
				UnitPrice:   amount,
				CurrencyID:  "BRL",
			},
		},
		Payer: &preference.PayerRequest{
			Name:  input.FullName,
			Email: input.Email,
		},
		BackURLs: &preference.BackURLsRequest{
			Success: c.baseURL + "/payment/success",
			Failure: c.baseURL + "/payment/failure",
			Pending: c.baseURL + "/payment/pending",
		},
		AutoReturn:        "approved",
		NotificationURL:   c.baseURL + "/api/v1/payments/webhook",
		ExternalReference: input.CRP,
		Metadata: map[string]any{
			"psychologist_crp":   input.CRP,
			"psychologist_email": input.Email,
			"subscription_type":  "monthly",
		},
	}

	resource, err := c.preferenceClient.Create(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment preference: %w", err)
	}

	return &Preference{
		ID:               resource.ID,
		InitPoint:        resource.InitPoint,
		SandboxInitPoint: resource.SandboxInitPoint,
	}, nil
}

func (c *client) GetPayment(ctx context.Context, paymentID string) (*Payment, error) {
	id, err := strconv.Atoi(paymentID)
	if err != nil {
		return nil, fmt.Errorf("invalid payment id %q: %w", paymentID, err)
	}

	resource, err := c.paymentClient.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment %s: %w", paymentID, err)
	}

	return &Payment{
		ID:                strconv.Itoa(resource.ID),
		Status:            resource.Status,
		ExternalReference: resource.ExternalReference,
	}, nil
}
