package bridge_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/tdex-network/mvs-vault/pkg/bridge"
)

var ctx = context.Background()

const (
	testRate  = `{"depositMax":1000,"depositMin":"0.5","instantRate":0.25,"receiveCoinFee":1,"depositCoinFeeRate":0.002}`
	testPairs = `{"ETP":["BTC","ETH"],"BTC":["ETP"]}`
	testOrder = `{"id":"abc","status":"wait_deposit","deposit":{"symbol":"ETP","amount":100,"fee":0.2,"feeRate":0.002,"status":"pending"},"receive":{"symbol":"BTC","amount":24.95,"address":"1BvBM","txid":""},"refund":{"address":"MSCHL3"}}`
)

func TestClient(t *testing.T) {
	var created bridge.CreateOrderParameters

	mux := http.NewServeMux()
	mux.HandleFunc("/api/rate/ETP/BTC", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testRate))
	})
	mux.HandleFunc("/api/pairs", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testPairs))
	})
	mux.HandleFunc("/api/order/abc", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testOrder))
	})
	mux.HandleFunc("/api/order", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&created); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(testOrder))
	})
	mux.HandleFunc("/api/order/missing", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "order not found", http.StatusNotFound)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client, err := bridge.NewClient(bridge.Opts{URL: server.URL + "/api/"})
	require.NoError(t, err)

	t.Run("rate", func(t *testing.T) {
		rate, err := client.GetRate(ctx, "ETP", "BTC")
		require.NoError(t, err)
		require.Equal(t, "1000", rate.DepositMax.String())
		require.Equal(t, "0.5", rate.DepositMin.String())
		require.Nil(t, rate.MinerFee)
		require.NotNil(t, rate.DepositCoinFeeRate)

		require.True(t, rate.IsValidDepositAmount(decimal.NewFromInt(100)))
		require.False(t, rate.IsValidDepositAmount(decimal.RequireFromString("0.1")))

		// 100 * 0.25 * (1 - 0.002) - 1
		require.Equal(t, "23.95", rate.ReceiveAmount(decimal.NewFromInt(100)).String())
	})

	t.Run("pairs", func(t *testing.T) {
		pairs, err := client.GetPairs(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"BTC", "ETH"}, pairs["ETP"])
		require.Len(t, pairs, 2)
	})

	t.Run("order", func(t *testing.T) {
		order, err := client.GetOrder(ctx, "abc")
		require.NoError(t, err)
		require.Equal(t, "abc", order.ID)
		require.Equal(t, "ETP", order.Deposit.Symbol)
		require.Equal(t, "24.95", order.Receive.Amount.String())
		require.Nil(t, order.Refund.Amount)
	})

	t.Run("create order", func(t *testing.T) {
		params := bridge.CreateOrderParameters{
			DepositSymbol:  "ETP",
			DepositAmount:  decimal.NewFromInt(100),
			RefundAddress:  "MSCHL3",
			ReceiveSymbol:  "BTC",
			ReceiveAmount:  decimal.RequireFromString("23.95"),
			ReceiveAddress: "1BvBM",
		}
		order, err := client.CreateOrder(ctx, params)
		require.NoError(t, err)
		require.Equal(t, "wait_deposit", order.Status)
		require.Equal(t, params.RefundAddress, created.RefundAddress)
		require.True(t, params.DepositAmount.Equal(created.DepositAmount))
	})

	t.Run("bad response", func(t *testing.T) {
		_, err := client.GetOrder(ctx, "missing")
		require.ErrorIs(t, err, bridge.ErrBadResponse)
		require.ErrorContains(t, err, "404")
	})
}

func TestFailingClient(t *testing.T) {
	_, err := bridge.NewClient(bridge.Opts{URL: "ftp://bridge"})
	require.ErrorIs(t, err, bridge.ErrInvalidURL)

	client, err := bridge.NewClient(bridge.Opts{})
	require.NoError(t, err)

	_, err = client.GetRate(ctx, "", "BTC")
	require.ErrorIs(t, err, bridge.ErrNullSymbol)

	_, err = client.GetOrder(ctx, "")
	require.ErrorIs(t, err, bridge.ErrNullOrderID)

	_, err = client.CreateOrder(ctx, bridge.CreateOrderParameters{
		DepositSymbol:  "ETP",
		ReceiveSymbol:  "BTC",
		RefundAddress:  "MSCHL3",
		ReceiveAddress: "1BvBM",
	})
	require.ErrorIs(t, err, bridge.ErrInvalidAmount)

	_, err = client.CreateOrder(ctx, bridge.CreateOrderParameters{
		DepositSymbol: "ETP",
		ReceiveSymbol: "BTC",
		DepositAmount: decimal.NewFromInt(1),
	})
	require.ErrorIs(t, err, bridge.ErrNullAddress)
}
