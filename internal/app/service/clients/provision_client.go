package clients

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sethgrid/pester"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/celerysoft/scholar-tool-manager/internal/app/config"
	"github.com/celerysoft/scholar-tool-manager/internal/app/logger"
)

type (
	// ProvisionClient notifies the external service manager that a paid order
	// should be provisioned. The provisioning logic itself is opaque to this
	// backend.
	ProvisionClient interface {
		ActivateService(userUUID, orderUUID uuid.UUID) error
	}
	ProvisionClientImpl struct {
		ServiceURL   string
		pesterClient *pester.Client
		rateLimiter  ratelimit.Limiter
	}
	//easyjson:json
	ProvisionRequestDto struct {
		UserUUID  string `json:"user_uuid"`
		OrderUUID string `json:"order_uuid"`
	}
	LoggingRoundTripper struct {
		Proxied http.RoundTripper
	}
)

func NewProvisionClient(c config.AppConfig) *ProvisionClientImpl {
	ratePerSecond := c.ProvisionMaxRequestsPerMinute / 60
	if ratePerSecond < 1 {
		ratePerSecond = 1
	}

	rateLimiter := ratelimit.New(ratePerSecond)
	pesterClient := pester.New()

	pesterClient.Concurrency = 1 // Since we are rate-limiting, concurrency should be 1
	pesterClient.MaxRetries = 3
	pesterClient.Backoff = pester.ExponentialBackoff
	pesterClient.KeepLog = true
	pesterClient.Timeout = time.Duration(c.ProvisionRequestTimeoutSec) * time.Second
	pesterClient.Transport = &LoggingRoundTripper{Proxied: http.DefaultTransport}

	return &ProvisionClientImpl{
		ServiceURL:   c.ProvisionServiceAddress,
		pesterClient: pesterClient,
		rateLimiter:  rateLimiter,
	}
}

func (pc *ProvisionClientImpl) ActivateService(userUUID, orderUUID uuid.UUID) error {
	// Wait for the next available opportunity to send a request
	pc.rateLimiter.Take()

	dto := ProvisionRequestDto{
		UserUUID:  userUUID.String(),
		OrderUUID: orderUUID.String(),
	}
	body, err := dto.MarshalJSON()
	if err != nil {
		return fmt.Errorf("error marshalling provision request: %w", err)
	}

	resp, err := pc.pesterClient.Post(pc.ServiceURL+"/api/services/activation",
		"application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()
	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		return fmt.Errorf("error draining response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("error activating service for order %s: status %d", orderUUID, resp.StatusCode)
	}
	return nil
}

func (pc *LoggingRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	bodyMsg, err := getRequestBodyForLogging(r)
	if err != nil {
		logger.Log.Error("provision log request error", zap.Error(err))
	} else {
		logger.Log.Info("PROVISION REQUEST:",
			zap.String("Method", r.Method),
			zap.String("Path", r.URL.String()),
			zap.String("Body", bodyMsg),
		)
	}
	response, err := pc.Proxied.RoundTrip(r)
	if err != nil {
		logger.Log.Error("provision request error", zap.Error(err))
		return nil, err
	}
	logger.Log.Info("PROVISION RESPONSE:",
		zap.Int("Status", response.StatusCode),
		zap.Int64("Content-Length", response.ContentLength),
	)
	return response, nil
}

func getRequestBodyForLogging(r *http.Request) (string, error) {
	if r.Body == nil || r.ContentLength == 0 {
		return "empty body", nil
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return "", fmt.Errorf("error reading request body: %w", err)
	}
	defer r.Body.Close()
	r.Body = io.NopCloser(bytes.NewBuffer(body))
	return string(body), nil
}
