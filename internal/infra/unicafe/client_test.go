package unicafe

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/unicafe/internal/domain/menu"
)

func TestClientRestaurants(t *testing.T) {
	srv := newAPIServer(t, map[string]apiReply{
		"/publicapi/restaurants": {status: http.StatusOK, body: `{"status":"OK","data":[{"id":1,"name":"Chemicum","areacode":1},{"id":2,"name":"Exactum"}]}`},
	})
	client := newTestClient(srv.URL + "/publicapi/")

	got, err := client.Restaurants(context.Background())
	require.NoError(t, err)
	require.Equal(t, []menu.Restaurant{{ID: 1, Name: "Chemicum"}, {ID: 2, Name: "Exactum"}}, got)
}

func TestClientMenus(t *testing.T) {
	srv := newAPIServer(t, map[string]apiReply{
		"/publicapi/restaurant/7": {status: http.StatusOK, body: `{"status":"OK","data":[
			{"date":"ignored","date_text":"Ma 3.11","data":[{"name":"Soup","price":{"name":"Keitto","value":{"student":"1,20"}}}]},
			{"date_text":"Ti 4.11","data":[]}
		]}`},
	})
	client := newTestClient(srv.URL + "/publicapi")

	got, err := client.Menus(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, menu.Date{Year: 2025, Month: time.November, Day: 3}, got[0].Date)
	require.Equal(t, []menu.Food{{Name: "Soup", Price: menu.Price{Name: menu.PriceKeitto}}}, got[0].Foods)
	require.True(t, got[1].IsEmpty())
}

func TestClientUsageCountsCalls(t *testing.T) {
	srv := newAPIServer(t, map[string]apiReply{
		"/publicapi/restaurants":  {status: http.StatusOK, body: `{"status":"OK","data":[]}`},
		"/publicapi/restaurant/7": {status: http.StatusBadGateway, body: ``},
	})
	client := newTestClient(srv.URL + "/publicapi")

	_, err := client.Restaurants(context.Background())
	require.NoError(t, err)
	_, err = client.Menus(context.Background(), 7)
	require.Error(t, err)

	usage := client.Usage()
	require.Equal(t, int64(2), usage.Requests)
	require.Equal(t, map[string]int64{"bad_status": 1}, usage.Failures)
}

func TestClientIgnoresEnvelopeStatus(t *testing.T) {
	srv := newAPIServer(t, map[string]apiReply{
		"/publicapi/restaurants": {status: http.StatusOK, body: `{"status":"error","data":[]}`},
	})
	client := newTestClient(srv.URL + "/publicapi")

	got, err := client.Restaurants(context.Background())
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestClientBadStatusSkipsBody(t *testing.T) {
	srv := newAPIServer(t, map[string]apiReply{
		"/publicapi/restaurant/7": {status: http.StatusServiceUnavailable, body: `{"status":"OK","data":[`},
	})
	client := newTestClient(srv.URL + "/publicapi")

	_, err := client.Menus(context.Background(), 7)
	var apiErr *menu.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, menu.KindBadStatus, apiErr.Kind)
	require.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
}

func TestClientDecodeFailures(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"invalid json", `{"status":"OK","data":[`, "decode error"},
		{"wrong type", `{"status":"OK","data":{"id":1}}`, "cannot unmarshal"},
		{"missing data", `{"status":"OK"}`, `missing field "data"`},
		{"missing status", `{"data":[]}`, `missing field "status"`},
		{"unknown price", `{"status":"OK","data":[{"date_text":"Ma 3.11","data":[{"name":"Steak","price":{"name":"Luksus"}}]}]}`, "unknown price Luksus"},
		{"missing price", `{"status":"OK","data":[{"date_text":"Ma 3.11","data":[{"name":"Steak"}]}]}`, `missing field "price"`},
		{"bad date", `{"status":"OK","data":[{"date_text":"3.11.2025","data":[]}]}`, "no date found"},
		{"bad month", `{"status":"OK","data":[{"date_text":"Ma 3.13","data":[]}]}`, "invalid month"},
		{"bad day", `{"status":"OK","data":[{"date_text":"La 31.11","data":[]}]}`, "invalid day"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newAPIServer(t, map[string]apiReply{
				"/publicapi/restaurant/3": {status: http.StatusOK, body: tt.body},
			})
			client := newTestClient(srv.URL + "/publicapi")

			_, err := client.Menus(context.Background(), 3)
			require.Equal(t, menu.KindDecode, menu.KindOf(err))
			require.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestClientAcceptsMisCasedKeys(t *testing.T) {
	srv := newAPIServer(t, map[string]apiReply{
		"/publicapi/restaurant/3": {status: http.StatusOK, body: `{"STATUS":"OK","Data":[{"DATE_TEXT":"Ma 3.11","DATA":[{"NAME":"Soup","PRICE":{"Name":"Keitto"}}]}]}`},
	})
	client := newTestClient(srv.URL + "/publicapi")

	got, err := client.Menus(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, []menu.Menu{{
		Date:  menu.Date{Year: 2025, Month: time.November, Day: 3},
		Foods: []menu.Food{{Name: "Soup", Price: menu.Price{Name: menu.PriceKeitto}}},
	}}, got)
}

func TestClientRestaurantMissingID(t *testing.T) {
	srv := newAPIServer(t, map[string]apiReply{
		"/publicapi/restaurants": {status: http.StatusOK, body: `{"status":"OK","data":[{"name":"Chemicum"}]}`},
	})
	client := newTestClient(srv.URL + "/publicapi")

	_, err := client.Restaurants(context.Background())
	require.Equal(t, menu.KindDecode, menu.KindOf(err))
	require.Contains(t, err.Error(), `missing field "id"`)
}

func TestClientTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	client := newTestClient(url)

	_, err := client.Restaurants(context.Background())
	require.Equal(t, menu.KindTransport, menu.KindOf(err))
}

func TestClientTruncatedBodyIsTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "1000")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"OK",`))
	}))
	t.Cleanup(srv.Close)
	client := newTestClient(srv.URL)

	_, err := client.Restaurants(context.Background())
	require.Equal(t, menu.KindTransport, menu.KindOf(err))
}

func TestClientSendsHeaders(t *testing.T) {
	var gotUA, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		_, _ = w.Write([]byte(`{"status":"OK","data":[]}`))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(Config{BaseURL: srv.URL, UserAgent: "menu-test"}, discardLogger())
	_, err := client.Restaurants(context.Background())
	require.NoError(t, err)
	require.Equal(t, "menu-test", gotUA)
	require.Equal(t, "application/json", gotAccept)
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient(Config{}, discardLogger())
	require.Equal(t, DefaultBaseURL, client.baseURL)
	require.Equal(t, DefaultUserAgent, client.userAgent)
	require.Equal(t, DefaultTimeout, client.httpClient.Timeout)
}

type apiReply struct {
	status int
	body   string
}

func newAPIServer(t *testing.T, routes map[string]apiReply) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reply, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(reply.status)
		_, _ = io.WriteString(w, reply.body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(baseURL string) *Client {
	client := NewClient(Config{BaseURL: baseURL, Timeout: 2 * time.Second}, discardLogger())
	return client.WithClock(func() time.Time {
		return time.Date(2025, time.November, 3, 9, 0, 0, 0, time.UTC)
	})
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
