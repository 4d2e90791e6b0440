package portafolio

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateProviderFetch(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		fmt.Fprint(w, `{"base":"USD","rates":{"COP":4100.55,"EUR":0.91}}`)
	}))
	defer srv.Close()

	p := &RateProvider{client: cachedClient(time.Second, time.Minute), url: srv.URL}
	rates, err := p.Current()
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	if rates.USDCOP != 4100.55 || rates.USDEUR != 0.91 {
		t.Errorf("rates = %+v, want 4100.55 / 0.91", rates)
	}
	if rates.Manual {
		t.Error("fetched rates should not be flagged manual")
	}

	// a second call inside the cache window must not hit the server again
	if _, err := p.Current(); err != nil {
		t.Fatalf("second Current() error = %v", err)
	}
	if hits != 1 {
		t.Errorf("server hit %d times, want 1 (cached)", hits)
	}
}

func TestRateProviderFallsBackToManual(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	fallback := Rates{USDCOP: 4000, USDEUR: 0.92}
	p := &RateProvider{client: cachedClient(time.Second, time.Minute), url: srv.URL, Fallback: fallback}
	rates, err := p.Current()
	if err == nil {
		t.Error("Current() against a broken endpoint should report the cause")
	}
	if rates.USDCOP != 4000 || !rates.Manual {
		t.Errorf("rates = %+v, want the manual fallback flagged as such", rates)
	}
}

func TestRateProviderRejectsMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"rates":{"COP":"not a number"}}`)
	}))
	defer srv.Close()

	p := &RateProvider{client: cachedClient(time.Second, time.Minute), url: srv.URL, Fallback: Rates{USDCOP: 3900}}
	rates, err := p.Current()
	if err == nil {
		t.Error("Current() on a malformed payload should report the cause")
	}
	if rates.USDCOP != 3900 || !rates.Manual {
		t.Errorf("rates = %+v, want the manual fallback", rates)
	}
}

func TestRatesConversions(t *testing.T) {
	r := Rates{USDCOP: 4000}
	if got := r.Convert(M(10, "USD")); !got.Equal(COP(40_000)) {
		t.Errorf("Convert($10) = %v, want $40.000", got)
	}
	usd := r.ToUSD(COP(40_000))
	approx(t, "ToUSD", usd.AsFloat(), 10, 1e-9)
	if usd.Currency() != "USD" {
		t.Errorf("ToUSD currency = %q, want USD", usd.Currency())
	}

	none := Rates{}
	if got := none.ToUSD(COP(40_000)); !got.IsZero() {
		t.Errorf("ToUSD without a rate = %v, want 0", got)
	}
}
