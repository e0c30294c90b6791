package captcha

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Verifier checks whether a client-supplied captcha token was solved by
// a human. Implemented against hCaptcha's siteverify endpoint.
type Verifier interface {
	Verify(ctx context.Context, token string) (bool, error)
}

type HCaptcha struct {
	secret    string
	verifyURL string
	client    *http.Client
	log       *zap.Logger
}

func NewHCaptcha(secret, verifyURL string, log *zap.Logger) *HCaptcha {
	return &HCaptcha{
		secret:    secret,
		verifyURL: verifyURL,
		client:    &http.Client{Timeout: 10 * time.Second},
		log:       log.With(zap.String("client", "hcaptcha")),
	}
}

type siteverifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify POSTs the token to the siteverify endpoint. A network or decode
// failure is returned as an error; a clean "not a human" answer is (false, nil).
func (h *HCaptcha) Verify(ctx context.Context, token string) (bool, error) {
	form := url.Values{}
	form.Set("response", token)
	form.Set("secret", h.secret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return false, fmt.Errorf("build siteverify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := h.client.Do(req)
	if err != nil {
		h.log.Error("Captcha verification request failed", zap.Error(err))
		return false, fmt.Errorf("siteverify request: %w", err)
	}
	defer resp.Body.Close()

	var result siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, fmt.Errorf("decode siteverify response: %w", err)
	}

	if !result.Success && len(result.ErrorCodes) > 0 {
		h.log.Warn("Captcha rejected", zap.Strings("error_codes", result.ErrorCodes))
	}

	return result.Success, nil
}
