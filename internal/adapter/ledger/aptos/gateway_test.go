package aptos

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/heavensaji/fundtos/internal/core/ports"
	"github.com/heavensaji/fundtos/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(nodeURL, signerURL string) *Gateway {
	return New(nodeURL, signerURL, nil, 5*time.Millisecond, logger.New("error", false))
}

func TestQuery_PostsViewRequest(t *testing.T) {
	var got viewRequest
	node := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/view", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[[{"id":"1","is_active":true}]]`))
	}))
	defer node.Close()

	g := newTestGateway(node.URL, "")

	result, err := g.Query(context.Background(),
		"0xabc::Fundraising::get_campaigns", nil, []any{"0xme"})
	require.NoError(t, err)

	assert.Equal(t, "0xabc::Fundraising::get_campaigns", got.Function)
	assert.Equal(t, []string{}, got.TypeArgs)
	assert.Equal(t, []any{"0xme"}, got.Args)

	require.Len(t, result, 1)
	payload, ok := result[0].([]any)
	require.True(t, ok)
	require.Len(t, payload, 1)
}

func TestQuery_NodeError(t *testing.T) {
	node := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"invalid function identifier"}`))
	}))
	defer node.Close()

	g := newTestGateway(node.URL, "")

	_, err := g.Query(context.Background(), "bad::fn", nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
	assert.Contains(t, err.Error(), "invalid function identifier")
}

func TestSubmit_ForwardsToSigningBridge(t *testing.T) {
	var got submitRequest
	signer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/transactions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte(`{"hash":"0xdeadbeef"}`))
	}))
	defer signer.Close()

	g := newTestGateway("", signer.URL)

	receipt, err := g.Submit(context.Background(), ports.Identity{Address: "0xme"}, ports.EntryFunction{
		FunctionID: "0xabc::Fundraising::donate",
		Args:       []any{"0xowner", "1", "102"},
	})
	require.NoError(t, err)

	assert.Equal(t, "0xdeadbeef", receipt.Hash)
	assert.Equal(t, "0xme", got.Sender)
	assert.Equal(t, "0xabc::Fundraising::donate", got.Payload.FunctionID)
	assert.Equal(t, []string{}, got.Payload.TypeArgs)
}

func TestSubmit_BridgeRejection(t *testing.T) {
	signer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"signature rejected by user"}`))
	}))
	defer signer.Close()

	g := newTestGateway("", signer.URL)

	_, err := g.Submit(context.Background(), ports.Identity{Address: "0xme"}, ports.EntryFunction{
		FunctionID: "0xabc::Fundraising::donate",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "signature rejected by user")
}

func TestSubmit_MissingHash(t *testing.T) {
	signer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer signer.Close()

	g := newTestGateway("", signer.URL)

	_, err := g.Submit(context.Background(), ports.Identity{Address: "0xme"}, ports.EntryFunction{
		FunctionID: "0xabc::Fundraising::donate",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no transaction hash")
}

func TestAwaitFinality_PendingThenCommitted(t *testing.T) {
	var polls atomic.Int64
	node := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/transactions/by_hash/0xabc123", r.URL.Path)

		switch polls.Add(1) {
		case 1:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"transaction not found"}`))
		case 2:
			w.Write([]byte(`{"type":"pending_transaction"}`))
		default:
			w.Write([]byte(`{"type":"user_transaction","success":true,"vm_status":"Executed successfully"}`))
		}
	}))
	defer node.Close()

	g := newTestGateway(node.URL, "")

	err := g.AwaitFinality(context.Background(), "0xabc123")
	require.NoError(t, err)
	assert.Equal(t, int64(3), polls.Load())
}

func TestAwaitFinality_VMFailure(t *testing.T) {
	node := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"type":"user_transaction","success":false,"vm_status":"Move abort: EINSUFFICIENT_BALANCE"}`))
	}))
	defer node.Close()

	g := newTestGateway(node.URL, "")

	err := g.AwaitFinality(context.Background(), "0xfail")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EINSUFFICIENT_BALANCE")
}

func TestAwaitFinality_ContextCancelled(t *testing.T) {
	node := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Never committed; the caller's deadline is the only way out.
		w.WriteHeader(http.StatusNotFound)
	}))
	defer node.Close()

	g := newTestGateway(node.URL, "")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	err := g.AwaitFinality(ctx, "0xslow")
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPing(t *testing.T) {
	node := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chain_id":4}`))
	}))
	defer node.Close()

	g := newTestGateway(node.URL, "")
	assert.NoError(t, g.Ping(context.Background()))
	assert.Equal(t, "ledger", g.Name())
}

func TestPing_Down(t *testing.T) {
	node := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	node.Close()

	g := newTestGateway(node.URL, "")
	assert.Error(t, g.Ping(context.Background()))
}
