package portafolio

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// The portfolio is kept in pesos but the capital history also tracks the
// dollar figure, so we need the day's USD rates. One public endpoint, one
// blocking GET, no retries: on any failure the user's manual rates stand in.

const ratesURL = "https://api.exchangerate-api.com/v4/latest/USD"

const (
	fetchTimeout = 10 * time.Second
	ratesTTL     = time.Minute
)

// Rates are the two conversions the application uses.
type Rates struct {
	USDCOP float64 `json:"usd_cop"`
	USDEUR float64 `json:"usd_eur"`
	// Manual marks rates that came from the fallback instead of the API.
	Manual    bool      `json:"manual,omitempty"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Convert converts a dollar amount to pesos.
func (r Rates) Convert(usd Money) Money {
	return COP(usd.AsFloat() * r.USDCOP)
}

// ToUSD converts a peso amount to dollars, zero when no rate is known.
func (r Rates) ToUSD(cop Money) Money {
	if r.USDCOP <= 0 {
		return M(0, "USD")
	}
	return M(cop.AsFloat()/r.USDCOP, "USD")
}

// RateProvider fetches the current rates with a short-lived cache and a
// manual fallback.
type RateProvider struct {
	client *http.Client
	url    string

	// Fallback holds the user-entered manual rates used when the fetch
	// fails.
	Fallback Rates
}

// NewRateProvider returns a provider against the public endpoint. Fetches
// inside a one minute window reuse the previous response.
func NewRateProvider(fallback Rates) *RateProvider {
	return NewRateProviderAt(ratesURL, fallback)
}

// NewRateProviderAt returns a provider against an arbitrary endpoint.
func NewRateProviderAt(url string, fallback Rates) *RateProvider {
	return &RateProvider{
		client:   cachedClient(fetchTimeout, ratesTTL),
		url:      url,
		Fallback: fallback,
	}
}

// Current returns today's rates. On any fetch or decode failure it falls
// back to the manual rates, flags them as such, and reports the cause: the
// session continues either way.
func (p *RateProvider) Current() (Rates, error) {
	rates, err := p.fetch()
	if err != nil {
		log.Printf("rate fetch failed, using manual rates: %v", err)
		fallback := p.Fallback
		fallback.Manual = true
		fallback.FetchedAt = time.Now()
		return fallback, err
	}
	return rates, nil
}

func (p *RateProvider) fetch() (Rates, error) {
	var jobj any
	if err := jwget(p.client, p.url, &jobj); err != nil {
		return Rates{}, fmt.Errorf("error fetching %q: %w", p.url, err)
	}
	cop, err := jsonFloat(jobj, "$.rates.COP")
	if err != nil {
		return Rates{}, err
	}
	eur, err := jsonFloat(jobj, "$.rates.EUR")
	if err != nil {
		return Rates{}, err
	}
	return Rates{USDCOP: cop, USDEUR: eur, FetchedAt: time.Now()}, nil
}

// jsonFloat extracts one float from a decoded JSON document.
func jsonFloat(jobj any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("error reading %q: %w", path, err)
	}
	// jsonpath sometimes wraps a single answer in a list, unwrap it
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("error reading %q: not a number: %v", path, jval)
	}
	return val, nil
}
