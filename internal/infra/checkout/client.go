package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"apartment-booking/internal/pkg/errs"
	"apartment-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrCheckoutFailed = errs.New("checkout session could not be created")

const maxResponseBytes = 64 << 10

type TokenSigner interface {
	Sign(sessionID uuid.UUID) (string, error)
}

type createSessionRequest struct {
	SessionID             string  `json:"sessionId"`
	ApartmentID           string  `json:"apartmentId"`
	ApartmentName         string  `json:"apartmentName"`
	NightlyRateMinorUnits int64   `json:"nightlyRateMinorUnits"`
	TotalMinorUnits       int64   `json:"totalMinorUnits"`
	Currency              string  `json:"currency"`
	GuestEmail            string  `json:"guestEmail"`
	GuestName             string  `json:"guestName"`
	CheckIn               string  `json:"checkIn"`
	CheckOut              string  `json:"checkOut"`
	CouponCode            *string `json:"couponCode,omitempty"`
	DiscountPercent       *string `json:"discountPercent,omitempty"`
}

type createSessionResponse struct {
	URL string `json:"url"`
}

// Client hands a priced booking to the payment backend, which owns the provider credential.
type Client struct {
	endpoint   string
	currency   string
	signer     TokenSigner
	httpClient *http.Client
}

func NewClient(endpoint, currency string, timeout time.Duration, signer TokenSigner) *Client {
	return &Client{
		endpoint:   endpoint,
		currency:   strings.ToLower(currency),
		signer:     signer,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// CreateSession returns the hosted checkout URL. Any non-2xx answer or a reply without a usable URL is ErrCheckoutFailed.
func (c *Client) CreateSession(ctx context.Context, req shared.CheckoutRequest) (string, error) {
	token, err := c.signer.Sign(req.SessionID)
	if err != nil {
		return "", errs.Mark(errs.Wrap(err, "failed to sign checkout token"), ErrCheckoutFailed)
	}

	body, err := json.Marshal(c.toWire(req))
	if err != nil {
		return "", errs.Mark(errs.Wrap(err, "failed to encode checkout request"), ErrCheckoutFailed)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errs.Mark(errs.Wrap(err, "failed to build checkout request"), ErrCheckoutFailed)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Idempotency-Key", req.SessionID.String())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", errs.Mark(errs.Wrap(err, "checkout backend unreachable"), ErrCheckoutFailed)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", errs.Mark(errs.Wrap(err, "failed to read checkout response"), ErrCheckoutFailed)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Warn("checkout backend rejected request",
			"session_id", req.SessionID,
			"status", resp.StatusCode,
		)
		return "", errs.Mark(fmt.Errorf("checkout backend returned status %d", resp.StatusCode), ErrCheckoutFailed)
	}

	var out createSessionResponse
	if err := json.Unmarshal(payload, &out); err != nil {
		return "", errs.Mark(errs.Wrap(err, "failed to decode checkout response"), ErrCheckoutFailed)
	}
	if !isAbsoluteURL(out.URL) {
		return "", errs.Mark(errs.New("checkout response has no redirect URL"), ErrCheckoutFailed)
	}
	return out.URL, nil
}

func (c *Client) toWire(req shared.CheckoutRequest) createSessionRequest {
	w := createSessionRequest{
		SessionID:             req.SessionID.String(),
		ApartmentID:           req.ApartmentID.String(),
		ApartmentName:         req.ApartmentName,
		NightlyRateMinorUnits: req.NightlyRateMinorUnits,
		TotalMinorUnits:       req.TotalMinorUnits,
		Currency:              c.currency,
		GuestEmail:            req.GuestEmail,
		GuestName:             req.GuestName,
		CheckIn:               req.CheckIn.String(),
		CheckOut:              req.CheckOut.String(),
		CouponCode:            req.CouponCode,
	}
	if req.DiscountPercent != nil {
		pct := req.DiscountPercent.String()
		w.DiscountPercent = &pct
	}
	return w
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && (u.Scheme == "https" || u.Scheme == "http") && u.Host != ""
}
