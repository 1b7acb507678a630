package solana

import (
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ybbus/jsonrpc"
)

type rpcRequest struct {
	ID     int               `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

type testServer struct {
	sync.Mutex
	requests []rpcRequest
	handlers map[string]func(req rpcRequest) (interface{}, *jsonrpc.RPCError)
}

func newTestServer(t *testing.T) (*testServer, Client) {
	ts := &testServer{
		handlers: make(map[string]func(req rpcRequest) (interface{}, *jsonrpc.RPCError)),
	}

	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		ts.Lock()
		ts.requests = append(ts.requests, req)
		handler, ok := ts.handlers[req.Method]
		ts.Unlock()

		resp := map[string]interface{}{
			"jsonrpc": "2.0",
			"id":      req.ID,
		}
		if !ok {
			resp["error"] = &jsonrpc.RPCError{Code: -32601, Message: "method not found"}
		} else if result, rpcErr := handler(req); rpcErr != nil {
			resp["error"] = rpcErr
		} else {
			resp["result"] = result
		}

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(s.Close)

	return ts, New(s.URL)
}

func (ts *testServer) handle(method string, h func(req rpcRequest) (interface{}, *jsonrpc.RPCError)) {
	ts.Lock()
	defer ts.Unlock()
	ts.handlers[method] = h
}

func (ts *testServer) calls(method string) []rpcRequest {
	ts.Lock()
	defer ts.Unlock()

	var matched []rpcRequest
	for _, r := range ts.requests {
		if r.Method == method {
			matched = append(matched, r)
		}
	}
	return matched
}

func encodedAccount(owner ed25519.PublicKey, data []byte) map[string]interface{} {
	return map[string]interface{}{
		"lamports":   1000,
		"owner":      base58.Encode(owner),
		"data":       []string{base64.StdEncoding.EncodeToString(data), "base64"},
		"executable": false,
		"rentEpoch":  0,
	}
}

func TestClient_GetAccountInfo(t *testing.T) {
	ts, c := newTestServer(t)

	keys := generateKeys(t, 3)
	existing, missing, owner := public(keys[0]), public(keys[1]), public(keys[2])

	ts.handle("getAccountInfo", func(req rpcRequest) (interface{}, *jsonrpc.RPCError) {
		var addr string
		require.NoError(t, json.Unmarshal(req.Params[0], &addr))

		var value interface{}
		if addr == base58.Encode(existing) {
			value = encodedAccount(owner, []byte{1, 2, 3})
		}
		return map[string]interface{}{
			"context": map[string]interface{}{"slot": 1},
			"value":   value,
		}, nil
	})

	info, err := c.GetAccountInfo(context.Background(), existing, CommitmentConfirmed)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, info.Data)
	assert.Equal(t, owner, info.Owner)
	assert.EqualValues(t, 1000, info.Lamports)

	_, err = c.GetAccountInfo(context.Background(), missing, CommitmentConfirmed)
	assert.ErrorIs(t, err, ErrNoAccountInfo)

	calls := ts.calls("getAccountInfo")
	require.Len(t, calls, 2)

	var config accountConfig
	require.NoError(t, json.Unmarshal(calls[0].Params[1], &config))
	assert.Equal(t, "base64", config.Encoding)
	assert.Equal(t, "confirmed", config.Commitment)
}

func TestClient_GetMultipleAccounts(t *testing.T) {
	ts, c := newTestServer(t)

	keys := generateKeys(t, 4)
	a, missing, b, owner := public(keys[0]), public(keys[1]), public(keys[2]), public(keys[3])

	ts.handle("getMultipleAccounts", func(req rpcRequest) (interface{}, *jsonrpc.RPCError) {
		var addrs []string
		require.NoError(t, json.Unmarshal(req.Params[0], &addrs))

		values := make([]interface{}, len(addrs))
		for i, addr := range addrs {
			switch addr {
			case base58.Encode(a):
				values[i] = encodedAccount(owner, []byte("a"))
			case base58.Encode(b):
				values[i] = encodedAccount(owner, []byte("b"))
			}
		}
		return map[string]interface{}{
			"context": map[string]interface{}{"slot": 1},
			"value":   values,
		}, nil
	})

	infos, err := c.GetMultipleAccounts(context.Background(), []ed25519.PublicKey{b, missing, a}, CommitmentConfirmed)
	require.NoError(t, err)
	require.Len(t, infos, 3)
	assert.Equal(t, []byte("b"), infos[0].Data)
	assert.Nil(t, infos[1])
	assert.Equal(t, []byte("a"), infos[2].Data)

	// A single round trip regardless of the number of accounts.
	assert.Len(t, ts.calls("getMultipleAccounts"), 1)

	infos, err = c.GetMultipleAccounts(context.Background(), nil, CommitmentConfirmed)
	assert.NoError(t, err)
	assert.Empty(t, infos)
	assert.Len(t, ts.calls("getMultipleAccounts"), 1)

	_, err = c.GetMultipleAccounts(context.Background(), make([]ed25519.PublicKey, maxMultipleAccounts+1), CommitmentConfirmed)
	assert.Error(t, err)
}

func TestClient_GetMultipleAccounts_LengthMismatch(t *testing.T) {
	ts, c := newTestServer(t)

	ts.handle("getMultipleAccounts", func(req rpcRequest) (interface{}, *jsonrpc.RPCError) {
		return map[string]interface{}{
			"value": []interface{}{nil},
		}, nil
	})

	keys := generateKeys(t, 2)
	_, err := c.GetMultipleAccounts(context.Background(), []ed25519.PublicKey{public(keys[0]), public(keys[1])}, CommitmentConfirmed)
	assert.Error(t, err)
}

func TestClient_GetLatestBlockhash(t *testing.T) {
	ts, c := newTestServer(t)

	var expected Blockhash
	for i := range expected {
		expected[i] = byte(i)
	}

	ts.handle("getLatestBlockhash", func(req rpcRequest) (interface{}, *jsonrpc.RPCError) {
		return map[string]interface{}{
			"context": map[string]interface{}{"slot": 1},
			"value": map[string]interface{}{
				"blockhash":            base58.Encode(expected[:]),
				"lastValidBlockHeight": 100,
			},
		}, nil
	})

	actual, err := c.GetLatestBlockhash(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expected, actual)

	// Served from cache within the refresh window.
	actual, err = c.GetLatestBlockhash(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expected, actual)
	assert.Len(t, ts.calls("getLatestBlockhash"), 1)
}

func TestClient_SubmitTransaction(t *testing.T) {
	ts, c := newTestServer(t)

	keys := generateKeys(t, 2)
	txn := NewTransaction(
		public(keys[0]),
		NewInstruction(public(keys[1]), []byte{1}, NewAccountMeta(public(keys[0]), true)),
	)
	require.NoError(t, txn.Sign(keys[0]))

	ts.handle("sendTransaction", func(req rpcRequest) (interface{}, *jsonrpc.RPCError) {
		var encoded string
		require.NoError(t, json.Unmarshal(req.Params[0], &encoded))

		raw, err := base58.Decode(encoded)
		require.NoError(t, err)

		var decoded Transaction
		require.NoError(t, decoded.Unmarshal(raw))
		return decoded.Signatures[0].String(), nil
	})

	sig, err := c.SubmitTransaction(context.Background(), txn, CommitmentConfirmed)
	require.NoError(t, err)
	assert.Equal(t, txn.Signatures[0], sig)

	calls := ts.calls("sendTransaction")
	require.Len(t, calls, 1)

	var config struct {
		SkipPreflight       bool   `json:"skipPreflight"`
		PreflightCommitment string `json:"preflightCommitment"`
	}
	require.NoError(t, json.Unmarshal(calls[0].Params[1], &config))
	assert.False(t, config.SkipPreflight)
	assert.Equal(t, "confirmed", config.PreflightCommitment)
}

func TestClient_SubmitTransaction_PreflightFailure(t *testing.T) {
	ts, c := newTestServer(t)

	keys := generateKeys(t, 2)
	txn := NewTransaction(
		public(keys[0]),
		NewInstruction(public(keys[1]), []byte{1}, NewAccountMeta(public(keys[0]), true)),
	)
	require.NoError(t, txn.Sign(keys[0]))

	ts.handle("sendTransaction", func(req rpcRequest) (interface{}, *jsonrpc.RPCError) {
		return nil, &jsonrpc.RPCError{
			Code:    -32002,
			Message: "Transaction simulation failed: Error processing Instruction 1: custom program error: 0x1",
			Data: map[string]interface{}{
				"err": map[string]interface{}{
					"InstructionError": []interface{}{1, map[string]interface{}{"Custom": 1}},
				},
				"logs": []string{"Program log: insufficient funds"},
			},
		}
	})

	_, err := c.SubmitTransaction(context.Background(), txn, CommitmentConfirmed)
	require.Error(t, err)

	txErr, ok := err.(*TransactionError)
	require.True(t, ok)
	assert.Equal(t, TransactionErrorInstructionError, txErr.ErrorKey())
	assert.Equal(t, CustomError(1), *txErr.InstructionError().CustomError())
	assert.Equal(t, []string{"Program log: insufficient funds"}, txErr.Logs)

	// Never retried.
	assert.Len(t, ts.calls("sendTransaction"), 1)
}

func TestClient_SubmitTransaction_RPCFailureNotRetried(t *testing.T) {
	ts, c := newTestServer(t)

	keys := generateKeys(t, 2)
	txn := NewTransaction(
		public(keys[0]),
		NewInstruction(public(keys[1]), []byte{1}, NewAccountMeta(public(keys[0]), true)),
	)
	require.NoError(t, txn.Sign(keys[0]))

	ts.handle("sendTransaction", func(req rpcRequest) (interface{}, *jsonrpc.RPCError) {
		return nil, &jsonrpc.RPCError{Code: rpcNodeUnhealthyCode, Message: "node is unhealthy"}
	})

	_, err := c.SubmitTransaction(context.Background(), txn, CommitmentConfirmed)
	assert.Error(t, err)
	assert.Len(t, ts.calls("sendTransaction"), 1)
}

func TestCommitmentFromString(t *testing.T) {
	for _, c := range []Commitment{CommitmentProcessed, CommitmentConfirmed, CommitmentFinalized} {
		actual, err := CommitmentFromString(c.Commitment)
		require.NoError(t, err)
		assert.Equal(t, c, actual)
	}

	_, err := CommitmentFromString("max")
	assert.Error(t, err)
}
