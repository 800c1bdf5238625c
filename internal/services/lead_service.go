package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"drivestyle/internal/models/request_models"
	"drivestyle/internal/models/response_models"
	"drivestyle/pkg/utils"
)

// RelayConfig holds the external lead-store settings. Both fields are
// required for any forward.
type RelayConfig struct {
	WebhookURL string
	Token      string
}

// RelayConfigSource yields the current relay settings. It is called on every
// request so an environment change takes effect without a restart.
type RelayConfigSource func() RelayConfig

func EnvRelayConfig() RelayConfig {
	return RelayConfig{
		WebhookURL: os.Getenv("DRIVESTYLE_SHEETS_WEBAPP_URL"),
		Token:      os.Getenv("DRIVESTYLE_LEAD_TOKEN"),
	}
}

type LeadServiceInterface interface {
	ForwardLead(ctx context.Context, req request_models.LeadRequest) (*response_models.RelayResponse, error)
	ForwardRouteFinder(ctx context.Context, req request_models.RouteFinderRequest) (*response_models.RelayResponse, error)
}

type LeadService struct {
	client *http.Client
	config RelayConfigSource
}

func NewLeadService(client *http.Client, config RelayConfigSource) LeadServiceInterface {
	return &LeadService{client: client, config: config}
}

type leadForward struct {
	Token       string `json:"token"`
	SubmittedAt string `json:"submittedAt"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Budget      string `json:"budget"`
	Message     string `json:"message"`
	Source      string `json:"source"`
}

type routeFinderForward struct {
	Token       string `json:"token"`
	Type        string `json:"type"`
	SubmittedAt string `json:"submittedAt"`

	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	Urgency      string `json:"urgency"`
	Trigger      string `json:"trigger"`
	WeekdayDrive string `json:"weekdayDrive"`
	Parking      string `json:"parking"`
	Passengers   string `json:"passengers"`
	AfterLongDay string `json:"afterLongDay"`
	TwoYears     string `json:"twoYears"`

	TradeSpaceVsParking       string `json:"trade_space_vs_parking"`
	TradePerformanceVsEconomy string `json:"trade_performance_vs_economy"`
	TradeNewVsSpec            string `json:"trade_new_vs_spec"`
	TradeBadgeVsReliability   string `json:"trade_badge_vs_reliability"`
	TradeTechVsSimple         string `json:"trade_tech_vs_simple"`

	BudgetBand  string `json:"budgetBand"`
	NewVsUsed   string `json:"newVsUsed"`
	NiceToHaves string `json:"niceToHaves"`
	Notes       string `json:"notes"`
}

// ForwardLead relays a homepage contact submission. A filled honeypot field
// reports success without any outbound call.
func (l *LeadService) ForwardLead(ctx context.Context, req request_models.LeadRequest) (*response_models.RelayResponse, error) {
	if req.Company != "" {
		return &response_models.RelayResponse{OK: true, Honeypot: true}, nil
	}

	cfg := l.config()
	if cfg.WebhookURL == "" || cfg.Token == "" {
		return nil, utils.ErrMissingRelayConfig
	}

	source := req.Source
	if source == "" {
		source = "unknown"
	}

	return l.forward(ctx, cfg.WebhookURL, leadForward{
		Token:       cfg.Token,
		SubmittedAt: time.Now().UTC().Format(time.RFC3339),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Budget:      req.Budget,
		Message:     req.Message,
		Source:      source,
	})
}

// ForwardRouteFinder relays the long-form questionnaire with its
// route_finder type marker.
func (l *LeadService) ForwardRouteFinder(ctx context.Context, req request_models.RouteFinderRequest) (*response_models.RelayResponse, error) {
	if req.Company != "" {
		return &response_models.RelayResponse{OK: true, Honeypot: true}, nil
	}

	cfg := l.config()
	if cfg.WebhookURL == "" || cfg.Token == "" {
		return nil, utils.ErrMissingRelayConfig
	}

	return l.forward(ctx, cfg.WebhookURL, routeFinderForward{
		Token:       cfg.Token,
		Type:        "route_finder",
		SubmittedAt: time.Now().UTC().Format(time.RFC3339),

		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,

		Urgency:      req.Urgency,
		Trigger:      req.Trigger,
		WeekdayDrive: req.WeekdayDrive,
		Parking:      req.Parking,
		Passengers:   req.Passengers,
		AfterLongDay: req.AfterLongDay,
		TwoYears:     req.TwoYears,

		TradeSpaceVsParking:       req.TradeSpaceVsParking,
		TradePerformanceVsEconomy: req.TradePerformanceVsEconomy,
		TradeNewVsSpec:            req.TradeNewVsSpec,
		TradeBadgeVsReliability:   req.TradeBadgeVsReliability,
		TradeTechVsSimple:         req.TradeTechVsSimple,

		BudgetBand:  req.BudgetBand,
		NewVsUsed:   req.NewVsUsed,
		NiceToHaves: strings.Join(req.NiceToHaves, "; "),
		Notes:       req.Notes,
	})
}

// forward performs the single outbound call and relays the upstream status
// and body back verbatim. No retries: a failed upstream surfaces once.
func (l *LeadService) forward(ctx context.Context, url string, payload any) (*response_models.RelayResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode relay payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build relay request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := l.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUpstreamUnreachable, err)
	}
	defer resp.Body.Close()

	upstreamBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read upstream response: %w", err)
	}

	return &response_models.RelayResponse{
		OK:             resp.StatusCode >= 200 && resp.StatusCode < 300,
		UpstreamStatus: resp.StatusCode,
		UpstreamBody:   string(upstreamBody),
	}, nil
}
