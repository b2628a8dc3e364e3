package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/corehuman/bazi-engine/internal/bazi"
	"github.com/corehuman/bazi-engine/internal/fingerprint"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const version = "1.0.0"

var startTime = time.Now()

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// ComputeRequest is the wire shape of a POST /v1/compute body, mapping
// one-to-one to bazi.Input with string enums instead of Go iota values.
type ComputeRequest struct {
	DateType      string  `json:"dateType"`
	Year          int     `json:"year"`
	Month         int     `json:"month"`
	Day           int     `json:"day"`
	IsLeapMonth   bool    `json:"isLeapMonth,omitempty"`
	Hour          int     `json:"hour"`
	Minute        int     `json:"minute"`
	TimeType      string  `json:"timeType,omitempty"`
	Gender        string  `json:"gender"`
	Longitude     float64 `json:"longitude"`
	DSTConfirmed  bool    `json:"dstConfirmed,omitempty"`
	EarlyRatSplit bool    `json:"earlyRatSplit,omitempty"`
}

func (req ComputeRequest) toInput() (bazi.Input, error) {
	in := bazi.Input{
		Year:          req.Year,
		Month:         req.Month,
		Day:           req.Day,
		IsLeapMonth:   req.IsLeapMonth,
		Hour:          req.Hour,
		Minute:        req.Minute,
		Longitude:     req.Longitude,
		DSTConfirmed:  req.DSTConfirmed,
		EarlyRatSplit: req.EarlyRatSplit,
	}

	switch strings.ToLower(req.DateType) {
	case "", "solar":
		in.DateType = bazi.Solar
	case "lunar":
		in.DateType = bazi.LunarCalendar
	default:
		return bazi.Input{}, fmt.Errorf("unknown dateType %q, want \"solar\" or \"lunar\"", req.DateType)
	}

	switch strings.ToLower(req.TimeType) {
	case "", "standard":
		in.TimeType = bazi.StandardTime
	case "truesolar":
		in.TimeType = bazi.TrueSolarTime
	default:
		return bazi.Input{}, fmt.Errorf("unknown timeType %q, want \"standard\" or \"trueSolar\"", req.TimeType)
	}

	switch strings.ToLower(req.Gender) {
	case "male", "m":
		in.Gender = bazi.Male
	case "female", "f":
		in.Gender = bazi.Female
	default:
		return bazi.Input{}, fmt.Errorf("unknown gender %q, want \"male\" or \"female\"", req.Gender)
	}

	return in, nil
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:*",
			"https://localhost:*",
			"http://127.0.0.1:*",
			"https://127.0.0.1:*",
			"https://*.vercel.app",
			"https://vercel.app",
		},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", handleRoot)
	r.Get("/health", handleHealth)
	r.Post("/v1/compute", handleCompute)

	addr := fmt.Sprintf(":%s", port)
	log.Printf("bazi-engine API v%s starting on %s", version, addr)

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server failed to start: %v", err)
	}
}

func handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"service": "bazi-engine",
		"version": version,
		"status":  "running",
	})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:  "healthy",
		Version: version,
		Uptime:  formatDuration(time.Since(startTime)),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func handleCompute(w http.ResponseWriter, r *http.Request) {
	var req ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "invalid JSON", err.Error())
		return
	}

	input, err := req.toInput()
	if err != nil {
		sendError(w, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	result, err := bazi.Compute(input)
	if err != nil {
		if baziErr, ok := err.(*bazi.Error); ok {
			sendError(w, http.StatusUnprocessableEntity, baziErr.Kind.String(), baziErr.Message)
			return
		}
		sendError(w, http.StatusUnprocessableEntity, "computation failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(newComputeResponse(r, result))
}

func sendError(w http.ResponseWriter, code int, errText, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(ErrorResponse{Error: errText, Message: message, Code: code})
}

func formatDuration(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}

// newComputeResponse attaches a fingerprint signature when a signing key
// is configured in the environment; an unconfigured key is not an error,
// it just means the response carries no signature block.
func newComputeResponse(r *http.Request, result *bazi.Result) ResultView {
	view := toResultView(result)

	canonical, err := fingerprint.CanonicalBytes(result)
	if err != nil {
		return view
	}
	secret, err := fingerprint.LoadSigningKey()
	if err != nil {
		return view
	}
	salt := []byte(middleware.GetReqID(r.Context()))
	sig, err := fingerprint.Sign(canonical, secret, salt)
	if err != nil {
		return view
	}
	view.Fingerprint = &FingerprintView{HMAC: sig.HMAC, Blake3: sig.Blake3}
	return view
}
