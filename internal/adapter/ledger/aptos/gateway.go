// Package aptos implements ports.LedgerGateway against an Aptos-style
// fullnode REST API plus an external signing bridge. Key management and
// signature generation live entirely in the bridge; this adapter only
// shuttles payloads.
package aptos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/heavensaji/fundtos/internal/core/ports"

	"github.com/rs/zerolog"
)

const defaultPollInterval = 500 * time.Millisecond

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Gateway talks to the fullnode (read path) and the signing bridge
// (mutating path).
type Gateway struct {
	nodeURL      string // fullnode base, e.g. https://fullnode.devnet.aptoslabs.com/v1
	signerURL    string // signing bridge base
	httpClient   HTTPClient
	pollInterval time.Duration
	log          zerolog.Logger
}

// New creates a Gateway. pollInterval <= 0 falls back to the default.
func New(nodeURL, signerURL string, httpClient HTTPClient, pollInterval time.Duration, log zerolog.Logger) *Gateway {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	return &Gateway{
		nodeURL:      nodeURL,
		signerURL:    signerURL,
		httpClient:   httpClient,
		pollInterval: pollInterval,
		log:          log,
	}
}

type viewRequest struct {
	Function string   `json:"function"`
	TypeArgs []string `json:"type_arguments"`
	Args     []any    `json:"arguments"`
}

// Query implements ports.LedgerGateway via POST /view.
func (g *Gateway) Query(ctx context.Context, functionID string, typeArgs []string, args []any) ([]any, error) {
	if typeArgs == nil {
		typeArgs = []string{}
	}
	if args == nil {
		args = []any{}
	}

	body, err := json.Marshal(viewRequest{Function: functionID, TypeArgs: typeArgs, Args: args})
	if err != nil {
		return nil, fmt.Errorf("marshal view request: %w", err)
	}

	resp, err := g.post(ctx, g.nodeURL+"/view", body)
	if err != nil {
		return nil, fmt.Errorf("view %s: %w", functionID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("view %s: %s", functionID, readError(resp))
	}

	var result []any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode view result: %w", err)
	}
	return result, nil
}

type submitRequest struct {
	Sender  string              `json:"sender"`
	Payload ports.EntryFunction `json:"payload"`
}

// Submit implements ports.LedgerGateway. The bridge signs with the sender's
// connected wallet and forwards to the node, returning the transaction hash.
// A user-rejected signature or malformed payload surfaces as an error here.
func (g *Gateway) Submit(ctx context.Context, sender ports.Identity, op ports.EntryFunction) (ports.Receipt, error) {
	if op.TypeArgs == nil {
		op.TypeArgs = []string{}
	}

	body, err := json.Marshal(submitRequest{Sender: sender.Address, Payload: op})
	if err != nil {
		return ports.Receipt{}, fmt.Errorf("marshal submit request: %w", err)
	}

	resp, err := g.post(ctx, g.signerURL+"/v1/transactions", body)
	if err != nil {
		return ports.Receipt{}, fmt.Errorf("submit %s: %w", op.FunctionID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return ports.Receipt{}, fmt.Errorf("submit %s: %s", op.FunctionID, readError(resp))
	}

	var receipt ports.Receipt
	if err := json.NewDecoder(resp.Body).Decode(&receipt); err != nil {
		return ports.Receipt{}, fmt.Errorf("decode submit response: %w", err)
	}
	if receipt.Hash == "" {
		return ports.Receipt{}, fmt.Errorf("submit %s: bridge returned no transaction hash", op.FunctionID)
	}

	g.log.Debug().Str("function", op.FunctionID).Str("hash", receipt.Hash).Msg("transaction submitted")
	return receipt, nil
}

type transactionStatus struct {
	Type     string `json:"type"`
	Success  bool   `json:"success"`
	VMStatus string `json:"vm_status"`
}

// AwaitFinality implements ports.LedgerGateway by polling
// GET /transactions/by_hash/{hash} until the node reports a committed
// outcome. There is no client-side deadline beyond ctx: a slow ledger keeps
// the caller in processing rather than reporting a premature error.
func (g *Gateway) AwaitFinality(ctx context.Context, hash string) error {
	url := fmt.Sprintf("%s/transactions/by_hash/%s", g.nodeURL, hash)

	for {
		status, retry, err := g.pollOnce(ctx, url)
		if err != nil {
			return fmt.Errorf("await finality %s: %w", hash, err)
		}
		if !retry {
			if status.Success {
				return nil
			}
			return fmt.Errorf("transaction %s failed: %s", hash, status.VMStatus)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(g.pollInterval):
		}
	}
}

func (g *Gateway) pollOnce(ctx context.Context, url string) (transactionStatus, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return transactionStatus{}, false, err
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return transactionStatus{}, false, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		// Not yet in the mempool view; keep polling.
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return transactionStatus{}, true, nil
	case resp.StatusCode != http.StatusOK:
		return transactionStatus{}, false, fmt.Errorf("node returned %s", readError(resp))
	}

	var status transactionStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return transactionStatus{}, false, fmt.Errorf("decode transaction status: %w", err)
	}
	if status.Type == "pending_transaction" {
		return transactionStatus{}, true, nil
	}
	return status, false, nil
}

// Ping implements ports.HealthChecker by hitting the node's ledger info
// endpoint.
func (g *Gateway) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.nodeURL, nil)
	if err != nil {
		return err
	}
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("node returned status %d", resp.StatusCode)
	}
	return nil
}

// Name implements ports.HealthChecker.
func (g *Gateway) Name() string {
	return "ledger"
}

func (g *Gateway) post(ctx context.Context, url string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return g.httpClient.Do(req)
}

// readError extracts a short error description from a non-2xx response.
func readError(resp *http.Response) string {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	var apiErr struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
		return fmt.Sprintf("status %d: %s", resp.StatusCode, apiErr.Message)
	}
	return fmt.Sprintf("status %d", resp.StatusCode)
}
