package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"theater_billing/internal/logger"
	"theater_billing/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	log      *zap.Logger
	now      func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, mockMode bool, log *zap.Logger) (*MercadoPagoGateway, error) {
	log = log.Named("payment.gateway")
	if mockMode {
		log.Info("mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, log: log, now: time.Now}, nil
	}

	if accessToken == "" {
		log.Error("missing access token")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Error("failed creating sdk config", zap.Error(err))
		return nil, err
	}
	log.Info("mercado pago client initialized", zap.String("access_token", logger.MaskSecret(accessToken)))

	return &MercadoPagoGateway{client: payment.NewClient(cfg), log: log, now: time.Now}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mockMode {
		return g.mockCreate(requestPayload)
	}

	if g == nil || g.client == nil {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	g.log.Debug("create start", zap.Int("payload_len", len(requestPayload)))

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		g.log.Warn("payload unmarshal failed", zap.Error(err))
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.log.Error("sdk create failed", zap.Error(err))
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		g.log.Error("response marshal failed", zap.Error(err))
		return "", "", nil, err
	}
	id := fmt.Sprintf("%d", resp.ID)
	g.log.Info("create success",
		zap.String("provider_payment_id", id),
		zap.String("provider_status", resp.Status))

	return id, resp.Status, b, nil
}

func (g *MercadoPagoGateway) mockCreate(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	g.log.Debug("mock create start", zap.Int("payload_len", len(requestPayload)))

	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	id := strconv.FormatInt(g.now().UTC().UnixNano(), 10)
	now := g.now().UTC().Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	if _, ok := resp["date_created"]; !ok {
		resp["date_created"] = now
	}
	if _, ok := resp["date_approved"]; !ok {
		resp["date_approved"] = now
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}

	g.log.Info("mock create success", zap.String("provider_payment_id", id))
	return id, "approved", b, nil
}
