package coinmarketcap

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Client wraps the CoinMarketCap pro api. The caller owns the
// http.Client and must set its Timeout - a stalled quote request has to
// fail fast so the fallback chain can move on.
type Client interface {
	GetLatestListings(limit int, convert string) ([]CryptoQuote, error)
	GetLatestQuotes(symbol string, convert string) ([]CryptoQuote, error)
	IsConfigured() bool
}

type client struct {
	HttpClient *http.Client
	ApiKey     string
	BaseUrl    string
}

func NewClient(httpClient *http.Client, apiKey, baseUrl string) Client {
	return client{
		HttpClient: httpClient,
		ApiKey:     apiKey,
		BaseUrl:    strings.TrimRight(baseUrl, "/"),
	}
}

type Quote struct {
	Price            *float64 `json:"price"`
	Volume24h        *float64 `json:"volume_24h"`
	PercentChange1h  *float64 `json:"percent_change_1h"`
	PercentChange24h *float64 `json:"percent_change_24h"`
	PercentChange7d  *float64 `json:"percent_change_7d"`
	MarketCap        *float64 `json:"market_cap"`
}

type CryptoQuote struct {
	ID      int64            `json:"id"`
	Name    string           `json:"name"`
	Symbol  string           `json:"symbol"`
	CmcRank *int32           `json:"cmc_rank"`
	Quote   map[string]Quote `json:"quote"`
}

type statusEnvelope struct {
	Status struct {
		ErrorCode    int    `json:"error_code"`
		ErrorMessage string `json:"error_message"`
	} `json:"status"`
}

type listingsResponse struct {
	statusEnvelope
	Data []CryptoQuote `json:"data"`
}

type quotesResponse struct {
	statusEnvelope
	Data map[string]CryptoQuote `json:"data"`
}

func (c client) IsConfigured() bool {
	return strings.TrimSpace(c.ApiKey) != ""
}

func (c client) GetLatestListings(limit int, convert string) ([]CryptoQuote, error) {
	if !c.IsConfigured() {
		return nil, fmt.Errorf("coinmarketcap api key not configured")
	}

	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("convert", convert)

	body, err := c.get("/v1/cryptocurrency/listings/latest", params)
	if err != nil {
		return nil, err
	}

	responseJson := listingsResponse{}
	if err := json.Unmarshal(body, &responseJson); err != nil {
		return nil, fmt.Errorf("failed to parse listings response: %w", err)
	}

	return responseJson.Data, nil
}

func (c client) GetLatestQuotes(symbol string, convert string) ([]CryptoQuote, error) {
	if !c.IsConfigured() {
		return nil, fmt.Errorf("coinmarketcap api key not configured")
	}

	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("convert", convert)

	body, err := c.get("/v1/cryptocurrency/quotes/latest", params)
	if err != nil {
		return nil, err
	}

	responseJson := quotesResponse{}
	if err := json.Unmarshal(body, &responseJson); err != nil {
		return nil, fmt.Errorf("failed to parse quotes response: %w", err)
	}

	out := []CryptoQuote{}
	for _, q := range responseJson.Data {
		out = append(out, q)
	}

	return out, nil
}

func (c client) get(path string, params url.Values) ([]byte, error) {
	requestUrl := fmt.Sprintf("%s%s?%s", c.BaseUrl, path, params.Encode())
	req, err := http.NewRequest(http.MethodGet, requestUrl, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-CMC_PRO_API_KEY", c.ApiKey)
	req.Header.Set("Accept", "application/json")

	response, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("coinmarketcap request failed: %w", err)
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode != 200 {
		errJson := statusEnvelope{}
		err = json.Unmarshal(responseBytes, &errJson)
		if err != nil {
			return nil, fmt.Errorf("coinmarketcap returned status code %d", response.StatusCode)
		}
		return nil, fmt.Errorf("coinmarketcap returned status code %d: %s", response.StatusCode, errJson.Status.ErrorMessage)
	}

	return responseBytes, nil
}
