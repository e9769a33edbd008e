package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"tripagent/internal/catalog"
	"tripagent/internal/models/trip_models"
	"tripagent/pkg/utils"
)

// DefaultExtractionTimeout bounds one semantic extraction call.
const DefaultExtractionTimeout = 20 * time.Second

type ExtractorServiceInterface interface {
	// Extract never fails: when the model cannot be used the rule extractor answers.
	Extract(ctx context.Context, rawText string) trip_models.TripRequest
}

type ExtractorService struct {
	client  utils.CompletionClientInterface
	rules   *RuleExtractor
	catalog *catalog.Catalog
	clock   utils.Clock
	timeout time.Duration
	logger  *zap.Logger
}

// NewExtractorService wires the semantic extractor. A nil client means rules only.
func NewExtractorService(
	client utils.CompletionClientInterface,
	c *catalog.Catalog,
	clock utils.Clock,
	timeout time.Duration,
	logger *zap.Logger,
) ExtractorServiceInterface {
	if clock == nil {
		clock = utils.SystemClock
	}
	if timeout <= 0 {
		timeout = DefaultExtractionTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExtractorService{
		client:  client,
		rules:   NewRuleExtractor(c, clock),
		catalog: c,
		clock:   clock,
		timeout: timeout,
		logger:  logger.Named("extractor"),
	}
}

func (e *ExtractorService) Extract(ctx context.Context, rawText string) trip_models.TripRequest {
	if e.client == nil {
		return e.rules.Extract(rawText)
	}

	req, err := e.extractSemantic(ctx, rawText)
	if err != nil {
		e.logger.Warn("semantic extraction failed, using rules", zap.Error(err))
		return e.rules.Extract(rawText)
	}
	return req
}

func (e *ExtractorService) extractSemantic(ctx context.Context, rawText string) (trip_models.TripRequest, error) {
	today := utils.DateOnly(e.clock())

	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	start := time.Now()
	response, err := e.client.GenerateText(callCtx, e.buildPrompt(rawText, today))
	if err != nil {
		return trip_models.TripRequest{}, fmt.Errorf("generate: %w", err)
	}
	e.logger.Debug("model responded", zap.Duration("latency", time.Since(start)), zap.String("response", response))

	return e.parseResponse(rawText, response, today)
}

func (e *ExtractorService) buildPrompt(rawText string, today time.Time) string {
	var prompt strings.Builder

	prompt.WriteString("Extract the key travel-planning details from the user request below.\n\n")
	prompt.WriteString(fmt.Sprintf("User request: %q\n\n", rawText))
	prompt.WriteString(fmt.Sprintf("Today is %s. Resolve relative dates (tomorrow, next Monday, 后天, 下周一) against it.\n\n", utils.FormatDate(today)))
	prompt.WriteString("Fields:\n")
	prompt.WriteString(fmt.Sprintf("1. destination - the city, in English if it is one of: %s\n", strings.Join(e.catalog.CityNames(), ", ")))
	prompt.WriteString("2. travel_date - format YYYY-MM-DD\n")
	prompt.WriteString("3. nights - a whole number\n")
	prompt.WriteString("4. guest_name - the traveller's name as written\n\n")
	prompt.WriteString(fmt.Sprintf("If no date is given use %s.\n\n", utils.FormatDate(today)))
	prompt.WriteString("Return ONLY this JSON object, nothing else:\n")
	prompt.WriteString(`{"destination": "...", "travel_date": "YYYY-MM-DD", "nights": 2, "guest_name": "..."}`)

	return prompt.String()
}

// parseResponse turns a model reply into a request. Blank or missing keys
// take the rule-path defaults; a reply that cannot be trusted is an error.
func (e *ExtractorService) parseResponse(rawText, response string, today time.Time) (trip_models.TripRequest, error) {
	obj, err := utils.ExtractFirstJSONObject(response)
	if err != nil {
		return trip_models.TripRequest{}, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(obj), &fields); err != nil {
		return trip_models.TripRequest{}, fmt.Errorf("%w: %v", utils.ErrUnexpectedBehaviorOfAI, err)
	}

	req := trip_models.TripRequest{
		RawText:    rawText,
		GuestName:  trip_models.DefaultGuestName,
		TravelDate: today,
		Nights:     trip_models.DefaultNights,
		Source:     trip_models.SourceSemantic,
	}

	destination := stringField(fields, "destination")
	switch city, ok := e.catalog.Lookup(destination); {
	case destination == "":
		req.Destination = e.catalog.PrimaryCity()
		req.RequestedDestination = req.Destination
	case ok:
		req.Destination = city.Name
		req.RequestedDestination = city.Name
	default:
		req.Destination = trip_models.UnsupportedDestination
		req.RequestedDestination = destination
	}

	if date := stringField(fields, "travel_date"); date != "" {
		parsed, err := utils.ParseDate(date)
		if err != nil {
			return trip_models.TripRequest{}, fmt.Errorf("%w: travel_date %q", utils.ErrUnexpectedBehaviorOfAI, date)
		}
		req.TravelDate = parsed
	}

	if raw := stringField(fields, "nights"); raw != "" {
		n, err := parseNights(raw)
		if err != nil {
			return trip_models.TripRequest{}, err
		}
		req.Nights = n
	}

	if name := cleanGuestName(stringField(fields, "guest_name")); name != "" {
		req.GuestName = name
	}

	return req, nil
}

// stringField reads a key as text whether the model sent a string, a
// number or null.
func stringField(fields map[string]json.RawMessage, key string) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(string(raw))
}

func parseNights(raw string) (int, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: nights %q", utils.ErrUnexpectedBehaviorOfAI, raw)
	}
	n := int(f)
	if float64(n) != f || n < 1 {
		return 0, fmt.Errorf("%w: nights %q", utils.ErrUnexpectedBehaviorOfAI, raw)
	}
	return n, nil
}
