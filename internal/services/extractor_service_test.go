package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripagent/internal/catalog"
	"tripagent/internal/models/trip_models"
	"tripagent/pkg/utils"
)

func newTestExtractor(client utils.CompletionClientInterface, timeout time.Duration) ExtractorServiceInterface {
	return NewExtractorService(client, catalog.Default(), utils.FixedClock(monday), timeout, nil)
}

func TestExtractorService_NilClientUsesRules(t *testing.T) {
	got := newTestExtractor(nil, 0).Extract(context.Background(), "去成都三晚")
	assert.Equal(t, trip_models.SourceRules, got.Source)
	assert.Equal(t, "Chengdu", got.Destination)
	assert.Equal(t, 3, got.Nights)
}

func TestExtractorService_Semantic(t *testing.T) {
	tests := []struct {
		name        string
		response    string
		destination string
		requested   string
		date        string
		nights      int
		guest       string
	}{
		{
			name:        "clean object",
			response:    `{"destination":"Tokyo","travel_date":"2024-02-01","nights":4,"guest_name":"Sato"}`,
			destination: "Tokyo", requested: "Tokyo", date: "2024-02-01", nights: 4, guest: "Sato",
		},
		{
			name:        "reasoning block, fence and chinese city",
			response:    "<think>user wants Shanghai</think>\n```json\n{\"destination\":\"上海\",\"travel_date\":\"2024-01-02\",\"nights\":\"3\",\"guest_name\":\"李四。\"}\n```",
			destination: "Shanghai", requested: "Shanghai", date: "2024-01-02", nights: 3, guest: "李四",
		},
		{
			name:        "unsupported city is kept for messages",
			response:    `{"destination":"Paris","travel_date":"2024-01-05","nights":2,"guest_name":"Marie"}`,
			destination: trip_models.UnsupportedDestination, requested: "Paris", date: "2024-01-05", nights: 2, guest: "Marie",
		},
		{
			name:        "missing and blank keys are backfilled",
			response:    `{"destination":"","guest_name":null}`,
			destination: "Beijing", requested: "Beijing", date: "2024-01-01", nights: 2, guest: trip_models.DefaultGuestName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &stubCompletionClient{response: tt.response}
			got := newTestExtractor(client, time.Second).Extract(context.Background(), "whatever")

			assert.Equal(t, trip_models.SourceSemantic, got.Source)
			assert.Equal(t, tt.destination, got.Destination)
			assert.Equal(t, tt.requested, got.RequestedDestination)
			assert.Equal(t, tt.date, utils.FormatDate(got.TravelDate))
			assert.Equal(t, tt.nights, got.Nights)
			assert.Equal(t, tt.guest, got.GuestName)
			assert.Equal(t, "whatever", got.RawText)
			assert.Equal(t, int32(1), client.calls.Load())
		})
	}
}

func TestExtractorService_FallsBackToRules(t *testing.T) {
	input := "明天去深圳两晚，我叫王五"

	tests := []struct {
		name   string
		client *stubCompletionClient
	}{
		{"call error", &stubCompletionClient{err: errors.New("503")}},
		{"no object", &stubCompletionClient{response: "Sorry, I can't help."}},
		{"broken json", &stubCompletionClient{response: `{"destination": Tokyo}`}},
		{"bad date", &stubCompletionClient{response: `{"destination":"Tokyo","travel_date":"next week"}`}},
		{"zero nights", &stubCompletionClient{response: `{"destination":"Tokyo","nights":0}`}},
		{"fractional nights", &stubCompletionClient{response: `{"destination":"Tokyo","nights":1.5}`}},
		{"timeout", &stubCompletionClient{response: `{"destination":"Tokyo"}`, delay: time.Second}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newTestExtractor(tt.client, 20*time.Millisecond).Extract(context.Background(), input)

			assert.Equal(t, trip_models.SourceRules, got.Source)
			assert.Equal(t, "Shenzhen", got.Destination)
			assert.Equal(t, "2024-01-02", utils.FormatDate(got.TravelDate))
			assert.Equal(t, 2, got.Nights)
			assert.Equal(t, "王五", got.GuestName)
			assert.Equal(t, int32(1), tt.client.calls.Load(), "no retry")
		})
	}
}

func TestExtractorService_PromptMentionsToday(t *testing.T) {
	client := &stubCompletionClient{response: `{}`}
	newTestExtractor(client, time.Second).Extract(context.Background(), "Beijing please")

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "2024-01-01")
	assert.Contains(t, client.prompts[0], "Beijing please")
	assert.Contains(t, client.prompts[0], "travel_date")
}

func TestExtractorService_Totality(t *testing.T) {
	inputs := []string{"", "   ", "???", "去火星", "我叫", "9999-99-99"}
	e := newTestExtractor(nil, 0)

	for _, in := range inputs {
		got := e.Extract(context.Background(), in)
		assert.NotEmpty(t, got.Destination, in)
		assert.NotEmpty(t, got.GuestName, in)
		assert.GreaterOrEqual(t, got.Nights, 1, in)
		assert.False(t, got.TravelDate.IsZero(), in)
	}
}
