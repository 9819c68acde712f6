package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/payOSHQ/payos-lib-golang"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"nyaya/internal/models/db_models"
	"nyaya/internal/models/response_models"
	"nyaya/internal/repositories"
	"nyaya/pkg/utils"
)

type PayOSConfig struct {
	ClientID     string
	APIKey       string
	ChecksumKey  string
	ReturnURL    string
	CancelURL    string
	ProviderName string
}

// PaymentService is the gateway boundary: it creates checkout links and turns
// verified webhooks into confirmed payment references. Subscription activation
// only ever runs after the webhook signature checks out, which is the
// required external verification before Activate.
type PaymentService interface {
	CreateCheckoutForPlan(ctx context.Context, accountID uuid.UUID, planID string) (*response_models.CreateCheckoutResponse, error)
	HandleWebhook(c *gin.Context)
}

type paymentService struct {
	db            *gorm.DB
	paymentRepo   repositories.PaymentRepository
	subscriptions SubscriptionServiceInterface
	cfg           PayOSConfig
}

func NewPaymentService(db *gorm.DB, paymentRepo repositories.PaymentRepository, subscriptions SubscriptionServiceInterface, cfg PayOSConfig) (PaymentService, error) {
	if cfg.ClientID == "" || cfg.APIKey == "" || cfg.ChecksumKey == "" {
		return nil, errors.New("missing payOS credentials")
	}
	if cfg.ProviderName == "" {
		cfg.ProviderName = "payos"
	}

	return &paymentService{
		db:            db,
		paymentRepo:   paymentRepo,
		subscriptions: subscriptions,
		cfg:           cfg,
	}, nil
}

func (p *paymentService) CreateCheckoutForPlan(ctx context.Context, accountID uuid.UUID, planID string) (*response_models.CreateCheckoutResponse, error) {
	plan := PlanByID(planID)
	if plan == nil {
		return nil, utils.ErrInvalidPlan
	}

	// payOS order codes are int64; unix seconds plus a short random keeps
	// collisions unlikely within the 13-digit limit.
	orderCode := time.Now().Unix()%1_000_000_000 + int64(rand.Intn(9000)+1000)

	record := &db_models.PaymentRecord{
		AccountID:   accountID,
		AmountMinor: plan.PriceMinor,
		Currency:    strings.ToUpper(plan.Currency),
		Provider:    p.cfg.ProviderName,
		ProviderRef: fmt.Sprintf("payos:%d", orderCode),
		PlanID:      plan.ID,
	}

	if err := p.paymentRepo.CreatePending(ctx, record); err != nil {
		return nil, fmt.Errorf("create payment record: %w", err)
	}

	if err := payos.Key(p.cfg.ClientID, p.cfg.APIKey, p.cfg.ChecksumKey); err != nil {
		return nil, fmt.Errorf("payos client init: %w", err)
	}

	body := payos.CheckoutRequestType{
		OrderCode: orderCode,
		Amount:    int(plan.PriceMinor),
		Items: []payos.Item{{
			Name:     fmt.Sprintf("%s (%s)", plan.Name, plan.ID),
			Price:    int(plan.PriceMinor),
			Quantity: 1,
		}},
		Description: fmt.Sprintf("Premium %s", plan.ID),
		CancelUrl:   p.cfg.CancelURL,
		ReturnUrl:   p.cfg.ReturnURL,
	}

	resp, err := payos.CreatePaymentLink(body)
	if err != nil {
		_ = p.paymentRepo.MarkFailed(ctx, record)
		return nil, fmt.Errorf("payos create link: %w", err)
	}

	if meta, _ := json.Marshal(map[string]any{"payos_link": resp}); meta != nil {
		_ = p.db.WithContext(ctx).Model(record).Update("metadata", meta).Error
	}

	return &response_models.CreateCheckoutResponse{
		OrderCode:  orderCode,
		Amount:     plan.PriceMinor,
		PaymentURL: resp.CheckoutUrl,
		Provider:   p.cfg.ProviderName,
	}, nil
}

func (p *paymentService) HandleWebhook(c *gin.Context) {
	if err := payos.Key(p.cfg.ClientID, p.cfg.APIKey, p.cfg.ChecksumKey); err != nil {
		log.Error().Err(err).Msg("payos key init")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "gateway not configured"})
		return
	}

	var body payos.WebhookType
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid webhook payload"})
		return
	}

	data, verifyErr := payos.VerifyPaymentWebhookData(body)
	if verifyErr != nil {
		log.Warn().Err(verifyErr).Msg("webhook signature verification failed")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "failed to verify webhook data"})
		return
	}

	providerRef := fmt.Sprintf("payos:%d", data.OrderCode)
	record, err := p.paymentRepo.FindByProviderRef(c.Request.Context(), providerRef)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load transaction"})
		return
	}
	if record == nil {
		// Ack unknown orders to avoid a retry storm, but log for follow-up.
		log.Warn().Int64("order_code", data.OrderCode).Msg("webhook for unknown transaction")
		c.JSON(http.StatusOK, gin.H{"message": "ignored"})
		return
	}

	if record.Status == db_models.PaymentStatusPaid {
		c.JSON(http.StatusOK, gin.H{"message": "already processed"})
		return
	}

	if _, err := p.settle(c.Request.Context(), record); err != nil {
		log.Error().Err(err).Int64("order_code", data.OrderCode).Msg("webhook processing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process transaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "subscription activated"})
}

// settle marks the record paid and grants the subscription in one transaction.
// If either step fails the record stays pending, so the gateway's retry runs
// the whole settlement again instead of hitting the already-paid short-circuit
// with no premium granted.
func (p *paymentService) settle(ctx context.Context, record *db_models.PaymentRecord) (response_models.ActivateSubscriptionResponse, error) {
	var resp response_models.ActivateSubscriptionResponse
	err := p.db.Transaction(func(tx *gorm.DB) error {
		if err := p.paymentRepo.MarkPaid(tx, record); err != nil {
			return err
		}
		var err error
		resp, err = p.subscriptions.ActivateInTx(ctx, tx, record.AccountID, record.PlanID, record.ProviderRef)
		return err
	})
	return resp, err
}
