// Package client is a typed HTTP client for the wallet gateway, used by
// the deposit and withdrawal flows.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"time"

	"github.com/peteresbull-alt/scopstrade-wallet/internal/jwt"
	"github.com/peteresbull-alt/scopstrade-wallet/internal/models"
)

// APIError is a non-2xx or success:false answer from the gateway.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("wallet api: %s (http %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("wallet api: http %d", e.StatusCode)
}

// Client talks to the wallet gateway. The session token is sent as the
// access_token cookie on every request.
type Client struct {
	BaseURL string
	HTTP    *http.Client

	token string
}

// New creates a client for the given base URL.
func New(base string) *Client {
	return &Client{
		BaseURL: base,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

// SetToken stores the session token attached to subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Login authenticates and stores the returned session token.
func (c *Client) Login(ctx context.Context, username, password string) error {
	body, err := json.Marshal(map[string]string{"username": username, "password": password})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/login", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	var out struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	if err := c.do(req, &out); err != nil {
		return err
	}
	c.token = out.Token
	return nil
}

// DepositOptions fetches the fundable currency list.
func (c *Client) DepositOptions(ctx context.Context) ([]models.WalletOption, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/deposits/options/", nil)
	if err != nil {
		return nil, err
	}

	var out struct {
		Success bool                  `json:"success"`
		Wallets []models.WalletOption `json:"wallets"`
	}
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return out.Wallets, nil
}

// CreateDeposit submits a deposit as multipart form data: the payload
// carries the receipt image, so it cannot be JSON.
func (c *Client) CreateDeposit(ctx context.Context, sub models.DepositSubmission) (models.DepositReceipt, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	_ = mw.WriteField("currency", sub.Currency)
	_ = mw.WriteField("dollar_amount", sub.DollarAmount)
	_ = mw.WriteField("currency_unit", sub.CurrencyUnit)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="receipt"; filename=%q`, sub.Receipt.Name))
	header.Set("Content-Type", sub.Receipt.ContentType)
	part, err := mw.CreatePart(header)
	if err != nil {
		return models.DepositReceipt{}, err
	}
	if _, err := io.Copy(part, bytes.NewReader(sub.Receipt.Data)); err != nil {
		return models.DepositReceipt{}, err
	}
	if err := mw.Close(); err != nil {
		return models.DepositReceipt{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/deposits/create/", &buf)
	if err != nil {
		return models.DepositReceipt{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out struct {
		Success     bool                  `json:"success"`
		Transaction models.DepositReceipt `json:"transaction"`
	}
	if err := c.do(req, &out); err != nil {
		return models.DepositReceipt{}, err
	}
	return out.Transaction, nil
}

// WithdrawalProfile fetches the withdrawable balance.
func (c *Client) WithdrawalProfile(ctx context.Context) (models.WalletProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/withdrawals/profile/", nil)
	if err != nil {
		return models.WalletProfile{}, err
	}

	var out struct {
		Success bool                 `json:"success"`
		User    models.WalletProfile `json:"user"`
	}
	if err := c.do(req, &out); err != nil {
		return models.WalletProfile{}, err
	}
	return out.User, nil
}

// WithdrawalMethods fetches the saved payout destinations.
func (c *Client) WithdrawalMethods(ctx context.Context) ([]models.WithdrawalMethod, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/withdrawals/methods/", nil)
	if err != nil {
		return nil, err
	}

	var out struct {
		Success bool                      `json:"success"`
		Methods []models.WithdrawalMethod `json:"methods"`
	}
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return out.Methods, nil
}

// WithdrawalHistory fetches the most recent withdrawals.
func (c *Client) WithdrawalHistory(ctx context.Context, limit int) ([]models.Transaction, error) {
	u := c.BaseURL + "/withdrawals/history/"
	if limit > 0 {
		u += "?" + url.Values{"limit": []string{strconv.Itoa(limit)}}.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	var out struct {
		Success      bool                 `json:"success"`
		Transactions []models.Transaction `json:"transactions"`
	}
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return out.Transactions, nil
}

// CreateWithdrawal submits a withdrawal. The returned receipt's NewBalance
// is the authoritative post-withdrawal balance.
func (c *Client) CreateWithdrawal(ctx context.Context, sub models.WithdrawalSubmission) (models.WithdrawalReceipt, error) {
	body, err := json.Marshal(sub)
	if err != nil {
		return models.WithdrawalReceipt{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/withdrawals/create/", bytes.NewReader(body))
	if err != nil {
		return models.WithdrawalReceipt{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	var out struct {
		Success     bool                     `json:"success"`
		Transaction models.WithdrawalReceipt `json:"transaction"`
	}
	if err := c.do(req, &out); err != nil {
		return models.WithdrawalReceipt{}, err
	}
	return out.Transaction, nil
}

// do sends the request with the session cookie attached and decodes the
// response into out, converting failures into *APIError.
func (c *Client) do(req *http.Request, out any) error {
	if c.token != "" {
		req.AddCookie(&http.Cookie{Name: jwt.AccessTokenCookie, Value: c.token})
	}

	res, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		var errBody struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(res.Body).Decode(&errBody)
		return &APIError{StatusCode: res.StatusCode, Message: errBody.Error}
	}

	return json.NewDecoder(res.Body).Decode(out)
}
