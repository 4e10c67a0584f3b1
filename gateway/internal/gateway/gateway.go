package gateway

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	OrderSvcURL  string
	DemandSvcURL string
}

// orderPrefixes are the API roots served by order-svc.
var orderPrefixes = []string{
	"/api/products",
	"/api/order/",
	"/api/orders",
	"/api/restaurants",
	"/api/categories",
}

type Gateway struct {
	config Config
	client HTTPClient
}

func NewGateway(config Config, client HTTPClient) *Gateway {
	return &Gateway{
		config: config,
		client: client,
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "gateway",
	})
}

// ProxyRequest forwards r to targetURL keeping method, path, query, headers
// and body, and streams the upstream response back.
func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	url := strings.TrimRight(targetURL, "/") + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to build upstream request", "url", url, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	for k, v := range r.Header {
		req.Header[k] = v
	}

	resp, err := g.client.Do(req)
	if err != nil {
		slog.ErrorContext(r.Context(), "upstream unavailable", "target", targetURL, "error", err)
		writeError(w, http.StatusBadGateway, "upstream unavailable")
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		slog.WarnContext(r.Context(), "failed to copy upstream response", "error", err)
	}
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	slog.DebugContext(r.Context(), "route", "method", r.Method, "path", path)

	if strings.HasPrefix(path, "/api/demand/") {
		g.ProxyRequest(w, r, g.config.DemandSvcURL)
		return
	}

	for _, prefix := range orderPrefixes {
		if strings.HasPrefix(path, prefix) {
			g.ProxyRequest(w, r, g.config.OrderSvcURL)
			return
		}
	}

	writeError(w, http.StatusNotFound, "API route not found")
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/api/").HandlerFunc(g.RouteHandler)
	return r
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
