package payment

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

const statusApproved = "approved"

// minorUnitDigits maps the currencies MercadoPago settles in to their ISO
// 4217 minor unit exponent. The API takes decimal amounts, so the exponent
// decides how minor units are scaled.
var minorUnitDigits = map[string]int{
	"ARS": 2,
	"BRL": 2,
	"CLP": 0,
	"COP": 2,
	"MXN": 2,
	"PEN": 2,
	"UYU": 2,
}

type paymentCreator interface {
	Create(ctx context.Context, request payment.Request) (*payment.Response, error)
}

// MercadoPagoGateway charges card tokens through the MercadoPago payments API.
// The account's currency is fixed at construction.
type MercadoPagoGateway struct {
	client   paymentCreator
	methodID string
	currency string
	scale    float64
}

func NewMercadoPagoGateway(accessToken, methodID, currency string) (*MercadoPagoGateway, error) {
	if _, ok := minorUnitDigits[strings.ToUpper(currency)]; !ok {
		return nil, fmt.Errorf("mercadopago: %w %q", ErrUnsupportedCurrency, currency)
	}
	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}
	return newMercadoPagoGateway(payment.NewClient(cfg), methodID, currency)
}

func newMercadoPagoGateway(client paymentCreator, methodID, currency string) (*MercadoPagoGateway, error) {
	currency = strings.ToUpper(currency)
	digits, ok := minorUnitDigits[currency]
	if !ok {
		return nil, fmt.Errorf("mercadopago: %w %q", ErrUnsupportedCurrency, currency)
	}
	return &MercadoPagoGateway{
		client:   client,
		methodID: methodID,
		currency: currency,
		scale:    math.Pow10(digits),
	}, nil
}

func (g *MercadoPagoGateway) Charge(ctx context.Context, req ChargeRequest) (*Charge, error) {
	if !strings.EqualFold(req.Currency, g.currency) {
		return nil, fmt.Errorf("mercadopago: %w %q, account charges in %s", ErrUnsupportedCurrency, req.Currency, g.currency)
	}

	resp, err := g.client.Create(ctx, payment.Request{
		TransactionAmount: float64(req.Amount) / g.scale,
		Token:             req.Token,
		Description:       req.Description,
		Installments:      1,
		PaymentMethodID:   g.methodID,
		ExternalReference: req.IdempotencyKey,
		Payer:             &payment.PayerRequest{Email: req.PayerEmail},
	})
	if err != nil {
		return nil, fmt.Errorf("mercadopago create: %w", err)
	}
	if resp.Status != statusApproved {
		return nil, fmt.Errorf("%w: status %s (%s)", ErrDeclined, resp.Status, resp.StatusDetail)
	}

	return &Charge{
		ID:     strconv.FormatInt(int64(resp.ID), 10),
		Amount: int64(math.Round(resp.TransactionAmount * g.scale)),
	}, nil
}
