package coinmarketcap

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const listingsBody = `{
	"status": {"error_code": 0, "error_message": null},
	"data": [
		{
			"id": 1,
			"name": "Bitcoin",
			"symbol": "BTC",
			"cmc_rank": 1,
			"quote": {
				"USD": {
					"price": 51234.5,
					"volume_24h": 31000000000,
					"percent_change_1h": 0.12,
					"percent_change_24h": -1.4,
					"percent_change_7d": 5.2,
					"market_cap": 1000000000000
				}
			}
		},
		{
			"id": 1027,
			"name": "Ethereum",
			"symbol": "ETH",
			"cmc_rank": 2,
			"quote": {
				"USD": {
					"price": 3050.25,
					"volume_24h": 15000000000,
					"percent_change_1h": 0.05,
					"percent_change_24h": 2.1,
					"percent_change_7d": -0.8,
					"market_cap": 370000000000
				}
			}
		}
	]
}`

func TestGetLatestListings(t *testing.T) {
	t.Run("two listings", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/v1/cryptocurrency/listings/latest", r.URL.Path)
			require.Equal(t, "test-key", r.Header.Get("X-CMC_PRO_API_KEY"))
			require.Equal(t, "10", r.URL.Query().Get("limit"))
			require.Equal(t, "USD", r.URL.Query().Get("convert"))
			w.Write([]byte(listingsBody))
		}))
		defer server.Close()

		c := NewClient(server.Client(), "test-key", server.URL)

		out, err := c.GetLatestListings(10, "USD")
		require.NoError(t, err)
		require.Len(t, out, 2)

		require.Equal(t, int64(1), out[0].ID)
		require.Equal(t, "BTC", out[0].Symbol)
		require.Equal(t, int32(1), *out[0].CmcRank)
		require.Equal(t, 51234.5, *out[0].Quote["USD"].Price)
		require.Equal(t, -1.4, *out[0].Quote["USD"].PercentChange24h)
		require.Equal(t, "Ethereum", out[1].Name)
	})

	t.Run("error envelope", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(401)
			w.Write([]byte(`{"status": {"error_code": 1002, "error_message": "API key missing."}}`))
		}))
		defer server.Close()

		c := NewClient(server.Client(), "bad-key", server.URL)

		_, err := c.GetLatestListings(10, "USD")
		require.ErrorContains(t, err, "401")
		require.ErrorContains(t, err, "API key missing.")
	})

	t.Run("unconfigured", func(t *testing.T) {
		c := NewClient(http.DefaultClient, "  ", "https://example.com")
		require.False(t, c.IsConfigured())

		_, err := c.GetLatestListings(10, "USD")
		require.Error(t, err)
	})
}

func TestGetLatestQuotes(t *testing.T) {
	t.Run("single quote", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/v1/cryptocurrency/quotes/latest", r.URL.Path)
			require.Equal(t, "BTC", r.URL.Query().Get("symbol"))
			w.Write([]byte(`{
				"status": {"error_code": 0},
				"data": {
					"BTC": {
						"id": 1,
						"name": "Bitcoin",
						"symbol": "BTC",
						"cmc_rank": 1,
						"quote": {"USD": {"price": 50123.0}}
					}
				}
			}`))
		}))
		defer server.Close()

		c := NewClient(server.Client(), "test-key", server.URL)

		out, err := c.GetLatestQuotes("BTC", "USD")
		require.NoError(t, err)
		require.Len(t, out, 1)
		require.Equal(t, 50123.0, *out[0].Quote["USD"].Price)
	})
}

func TestClientTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(listingsBody))
	}))
	defer server.Close()

	c := NewClient(&http.Client{Timeout: 20 * time.Millisecond}, "test-key", server.URL)

	_, err := c.GetLatestListings(10, "USD")
	require.Error(t, err)
}
