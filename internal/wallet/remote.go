package wallet

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/celo-academy/academy-engine/internal/adapter"
	"github.com/celo-academy/academy-engine/internal/logger"
)

// remoteAuthenticator fronts the hosted wallet service's sidecar API.
// The sidecar owns the actual key material; the engine only reads session
// state and forwards signing requests.
type remoteAuthenticator struct {
	http    adapter.HTTPClient
	baseURL string

	mu    sync.Mutex
	state sidecarState
}

type sidecarState struct {
	Ready         bool `json:"ready"`
	Authenticated bool `json:"authenticated"`
	Wallets       []struct {
		Address  string `json:"address"`
		Embedded bool   `json:"embedded"`
	} `json:"wallets"`
}

// NewRemoteAuthenticator creates an authenticator backed by the wallet
// sidecar at baseURL
func NewRemoteAuthenticator(baseURL string, httpClient adapter.HTTPClient) Authenticator {
	return &remoteAuthenticator{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// refresh pulls the sidecar's session state. Failures leave the previous
// snapshot in place: a blip must not flip an authenticated session to
// logged-out.
func (a *remoteAuthenticator) refresh() {
	var state sidecarState
	if err := a.http.GetJSON(context.Background(), a.baseURL+"/session/state", &state); err != nil {
		logger.Debug("wallet sidecar state refresh failed", zap.Error(err))
		return
	}

	a.mu.Lock()
	a.state = state
	a.mu.Unlock()
}

func (a *remoteAuthenticator) Ready() bool {
	a.refresh()
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state.Ready
}

func (a *remoteAuthenticator) Authenticated() bool {
	a.refresh()
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state.Authenticated
}

func (a *remoteAuthenticator) Wallets() []Wallet {
	a.refresh()
	a.mu.Lock()
	defer a.mu.Unlock()

	wallets := make([]Wallet, 0, len(a.state.Wallets))
	for _, w := range a.state.Wallets {
		wallets = append(wallets, Wallet{Address: w.Address, Embedded: w.Embedded})
	}
	return wallets
}

func (a *remoteAuthenticator) Provider(ctx context.Context, address string) (Provider, error) {
	if address == "" {
		return nil, fmt.Errorf("wallet address is required")
	}
	return &remoteProvider{
		http:     a.http,
		endpoint: fmt.Sprintf("%s/session/wallets/%s/rpc", a.baseURL, strings.ToLower(address)),
	}, nil
}

func (a *remoteAuthenticator) Login(ctx context.Context) error {
	if _, err := a.http.PostJSON(ctx, a.baseURL+"/session/login", struct{}{}); err != nil {
		return fmt.Errorf("wallet sidecar login failed: %w", err)
	}
	a.refresh()
	return nil
}

func (a *remoteAuthenticator) Logout(ctx context.Context) error {
	if _, err := a.http.PostJSON(ctx, a.baseURL+"/session/logout", struct{}{}); err != nil {
		return fmt.Errorf("wallet sidecar logout failed: %w", err)
	}
	a.refresh()
	return nil
}

// remoteProvider forwards JSON-RPC requests to one wallet's signing
// endpoint on the sidecar
type remoteProvider struct {
	http     adapter.HTTPClient
	endpoint string
}

type providerRequest struct {
	Method string        `json:"method"`
	Params []interface{} `json:"params"`
}

type providerResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *string         `json:"error,omitempty"`
}

func (p *remoteProvider) Request(ctx context.Context, method string, params ...interface{}) (json.RawMessage, error) {
	if params == nil {
		params = []interface{}{}
	}

	raw, err := p.http.PostJSON(ctx, p.endpoint, providerRequest{Method: method, Params: params})
	if err != nil {
		return nil, err
	}

	var resp providerResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("malformed provider response for %s: %w", method, err)
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("provider error for %s: %s", method, *resp.Error)
	}
	return resp.Result, nil
}
