package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"tabboz/internal/config"
	"tabboz/internal/game"
)

func newTestServer(t *testing.T, funds int64) *httptest.Server {
	t.Helper()
	cfg := config.APIConfig{
		MaxSessions: 4,
		Game:        config.GameConfig{StartingFunds: funds, StartingReputation: 95},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(New(cfg, logger).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body any, out any) int {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		rdr = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, url, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
	return resp.StatusCode
}

func createSession(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	var created summaryResponse
	if code := doJSON(t, http.MethodPost, srv.URL+"/v1/sessions", nil, &created); code != http.StatusCreated {
		t.Fatalf("create session status %d", code)
	}
	if created.ID == "" {
		t.Fatalf("missing session id")
	}
	return created.ID
}

func TestBuyAndSellPhone(t *testing.T) {
	srv := newTestServer(t, 1000)
	id := createSession(t, srv)
	base := srv.URL + "/v1/sessions/" + id

	var bought actionResponse
	if code := doJSON(t, http.MethodPost, base+"/phone/buy", map[string]any{"index": 0}, &bought); code != http.StatusOK {
		t.Fatalf("buy status %d", code)
	}
	phone := game.DefaultPhones()[0]
	if bought.Outcome != "committed" || bought.Summary.Funds != 1000-phone.Price {
		t.Fatalf("got %+v", bought)
	}
	if bought.Summary.Reputation != 100 || bought.Summary.PhoneName != phone.Name {
		t.Fatalf("got summary %+v", bought.Summary)
	}

	var declined actionResponse
	doJSON(t, http.MethodPost, base+"/phone/sell", map[string]any{"accept": false}, &declined)
	if declined.Outcome != "declined" || len(declined.Notices) != 1 || declined.Notices[0] != game.MsgSaleDeclined {
		t.Fatalf("got %+v", declined)
	}

	var sold actionResponse
	doJSON(t, http.MethodPost, base+"/phone/sell", map[string]any{"accept": true}, &sold)
	want := 1000 - phone.Price + game.ResaleOffer(phone.Price)
	if sold.Outcome != "committed" || sold.Summary.Funds != want || sold.Summary.HasPhone {
		t.Fatalf("got %+v want funds %d", sold, want)
	}

	var nothing actionResponse
	doJSON(t, http.MethodPost, base+"/phone/sell", map[string]any{"accept": true}, &nothing)
	if nothing.Outcome != "nothing_to_sell" || nothing.Summary.Funds != want {
		t.Fatalf("got %+v", nothing)
	}
}

func TestBuyPhoneInsufficientFunds(t *testing.T) {
	srv := newTestServer(t, 10)
	id := createSession(t, srv)

	var out actionResponse
	doJSON(t, http.MethodPost, srv.URL+"/v1/sessions/"+id+"/phone/buy", map[string]any{"index": 1}, &out)
	if out.Outcome != "insufficient_funds" || out.Summary.Funds != 10 || out.Summary.HasPhone {
		t.Fatalf("got %+v", out)
	}
	if len(out.Notices) != 1 || out.Notices[0] != game.MsgCannotAfford {
		t.Fatalf("got notices %q", out.Notices)
	}
}

func TestHolidayClosesShop(t *testing.T) {
	srv := newTestServer(t, 1000)
	id := createSession(t, srv)
	base := srv.URL + "/v1/sessions/" + id

	var cal summaryResponse
	doJSON(t, http.MethodPost, base+"/calendar", map[string]any{"holiday": true}, &cal)
	if !cal.Holiday {
		t.Fatalf("expected holiday set")
	}
	bodies := map[string]map[string]any{
		"/phone/buy":    {"index": 0},
		"/subscription": {"index": 0},
		"/phone/sell":   {"accept": true},
	}
	for path, body := range bodies {
		var out actionResponse
		doJSON(t, http.MethodPost, base+path, body, &out)
		if out.Outcome != "shop_closed" || out.Summary.Funds != 1000 {
			t.Fatalf("%s: got %+v", path, out)
		}
		if out.Notices[0] != game.MsgShopClosed {
			t.Fatalf("%s: got notices %q", path, out.Notices)
		}
	}
}

func TestSubscriptionTopUpWithoutSIM(t *testing.T) {
	srv := newTestServer(t, 1000)
	id := createSession(t, srv)

	var out actionResponse
	doJSON(t, http.MethodPost, srv.URL+"/v1/sessions/"+id+"/subscription", map[string]any{"index": 1}, &out)
	if out.Outcome != "no_subscription" || out.Summary.Funds != 1000 || out.Summary.Subscription {
		t.Fatalf("got %+v", out)
	}
}

func TestSelectionValidation(t *testing.T) {
	srv := newTestServer(t, 1000)
	id := createSession(t, srv)
	base := srv.URL + "/v1/sessions/" + id

	for _, idx := range []int{-1, 3, 99} {
		if code := doJSON(t, http.MethodPost, base+"/phone/buy", map[string]any{"index": idx}, nil); code != http.StatusBadRequest {
			t.Fatalf("index %d: got status %d", idx, code)
		}
	}
	if code := doJSON(t, http.MethodPost, base+"/phone/buy", map[string]any{"bogus": 1}, nil); code != http.StatusBadRequest {
		t.Fatalf("unknown field: got status %d", code)
	}

	for _, path := range []string{"/phone/buy", "/subscription"} {
		req, err := http.NewRequest(http.MethodPost, base+path, nil)
		if err != nil {
			t.Fatalf("new request: %v", err)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("do request: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s empty body: got status %d", path, resp.StatusCode)
		}
		if code := doJSON(t, http.MethodPost, base+path, map[string]any{}, nil); code != http.StatusBadRequest {
			t.Fatalf("%s without index: got status %d", path, code)
		}
	}
	var after summaryResponse
	doJSON(t, http.MethodGet, base, nil, &after)
	if after.Summary.Funds != 1000 || after.Summary.HasPhone || after.Summary.Subscription {
		t.Fatalf("rejected requests changed the ledger: %+v", after.Summary)
	}

	var cancelled actionResponse
	doJSON(t, http.MethodPost, base+"/phone/buy", map[string]any{"cancel": true}, &cancelled)
	if cancelled.Outcome != "cancelled" || cancelled.Summary.Funds != 1000 {
		t.Fatalf("got %+v", cancelled)
	}
}

func TestUnknownSessionAndLimits(t *testing.T) {
	srv := newTestServer(t, 0)
	if code := doJSON(t, http.MethodGet, srv.URL+"/v1/sessions/not-a-uuid", nil, nil); code != http.StatusNotFound {
		t.Fatalf("got status %d", code)
	}
	if code := doJSON(t, http.MethodDelete, srv.URL+"/v1/sessions/not-a-uuid", nil, nil); code != http.StatusNotFound {
		t.Fatalf("delete malformed id: got status %d", code)
	}
	if code := doJSON(t, http.MethodGet, srv.URL+"/v1/sessions/8a4d8a5e-6c1c-4a39-a3a4-0d3b0f2a7b11", nil, nil); code != http.StatusNotFound {
		t.Fatalf("got status %d", code)
	}

	ids := make([]string, 0, 4)
	for i := 0; i < 4; i++ {
		ids = append(ids, createSession(t, srv))
	}
	if code := doJSON(t, http.MethodPost, srv.URL+"/v1/sessions", nil, nil); code != http.StatusServiceUnavailable {
		t.Fatalf("expected session cap, got %d", code)
	}
	if code := doJSON(t, http.MethodDelete, srv.URL+"/v1/sessions/"+ids[0], nil, nil); code != http.StatusOK {
		t.Fatalf("delete status %d", code)
	}
	createSession(t, srv)
}

func TestBuyResponseCarriesOnlyMenuFields(t *testing.T) {
	srv := newTestServer(t, 1000)
	id := createSession(t, srv)

	var out actionResponse
	doJSON(t, http.MethodPost, srv.URL+"/v1/sessions/"+id+"/subscription", map[string]any{"index": 0}, &out)
	if out.Outcome != "committed" {
		t.Fatalf("got %+v", out)
	}
	for field := range out.Fields {
		switch field {
		case game.FieldFunds, game.FieldPhoneName, game.FieldPlanName, game.FieldPlanCredit:
		default:
			t.Fatalf("unexpected field %d in %+v", field, out.Fields)
		}
	}
	if out.Fields[game.FieldPlanName] != game.DefaultPlans()[0].Name {
		t.Fatalf("got fields %+v", out.Fields)
	}
}

func TestCatalog(t *testing.T) {
	srv := newTestServer(t, 0)
	var out struct {
		Phones []catalogRow `json:"phones"`
		Plans  []catalogRow `json:"plans"`
	}
	if code := doJSON(t, http.MethodGet, srv.URL+"/v1/catalog", nil, &out); code != http.StatusOK {
		t.Fatalf("catalog status %d", code)
	}
	if len(out.Phones) != 3 || len(out.Plans) != 9 {
		t.Fatalf("got %d phones %d plans", len(out.Phones), len(out.Plans))
	}
	if out.Plans[1].Kind != "top-up" {
		t.Fatalf("got plan kind %q", out.Plans[1].Kind)
	}
}
