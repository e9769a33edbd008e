package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tripagent/internal/catalog"
	"tripagent/internal/models/trip_models"
	"tripagent/pkg/utils"
)

func TestRuleExtractor_Extract(t *testing.T) {
	r := NewRuleExtractor(catalog.Default(), utils.FixedClock(monday))

	tests := []struct {
		name        string
		input       string
		destination string
		date        string
		nights      int
		guest       string
	}{
		{
			name:        "english request",
			input:       "I want to go to Beijing for 3 nights, my name is Zhang San",
			destination: "Beijing", date: "2024-01-01", nights: 3, guest: "Zhang San",
		},
		{
			name:        "chinese request",
			input:       "明天去上海玩两晚，我叫李四",
			destination: "Shanghai", date: "2024-01-02", nights: 2, guest: "李四",
		},
		{
			name:        "day after tomorrow",
			input:       "后天去东京三天",
			destination: "Tokyo", date: "2024-01-03", nights: 3, guest: trip_models.DefaultGuestName,
		},
		{
			name:        "english day after tomorrow is not tomorrow",
			input:       "the day after tomorrow in Shenzhen",
			destination: "Shenzhen", date: "2024-01-03", nights: 2, guest: trip_models.DefaultGuestName,
		},
		{
			name:        "next monday on a monday is a week out",
			input:       "下周一去杭州",
			destination: "Hangzhou", date: "2024-01-08", nights: 2, guest: trip_models.DefaultGuestName,
		},
		{
			name:        "next friday",
			input:       "next Friday to Chengdu, call me Alice",
			destination: "Chengdu", date: "2024-01-05", nights: 2, guest: "Alice",
		},
		{
			name:        "iso date and spelled nights",
			input:       "Trip to Singapore on 2024-02-10 for five nights, I'm Bob",
			destination: "Singapore", date: "2024-02-10", nights: 5, guest: "Bob",
		},
		{
			name:        "priority order decides between cities",
			input:       "Shanghai or Beijing, one night",
			destination: "Beijing", date: "2024-01-01", nights: 1, guest: trip_models.DefaultGuestName,
		},
		{
			name:        "trailing punctuation stripped",
			input:       "我是王五。去广州4晚",
			destination: "Guangzhou", date: "2024-01-01", nights: 4, guest: "王五",
		},
		{
			name:        "lowercase after I am is not a name",
			input:       "I am going to Guangzhou today",
			destination: "Guangzhou", date: "2024-01-01", nights: 2, guest: trip_models.DefaultGuestName,
		},
		{
			name:        "empty input gets defaults",
			input:       "",
			destination: "Beijing", date: "2024-01-01", nights: 2, guest: trip_models.DefaultGuestName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Extract(tt.input)

			assert.Equal(t, tt.input, got.RawText)
			assert.Equal(t, tt.destination, got.Destination)
			assert.Equal(t, tt.destination, got.RequestedDestination)
			assert.Equal(t, tt.date, utils.FormatDate(got.TravelDate))
			assert.Equal(t, tt.nights, got.Nights)
			assert.Equal(t, tt.guest, got.GuestName)
			assert.Equal(t, trip_models.SourceRules, got.Source)
		})
	}
}

func TestRuleExtractor_NightsBoundaries(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"1 night", 1},
		{"2-day trip", 2},
		{"for four days", 4},
		{"a 3-day trip", 3},
		{"four days", trip_models.DefaultNights},
		{"One day off work, so Tokyo for 3 nights", 3},
		{"13 nights", trip_models.DefaultNights},
		{"一晚", 1},
		{"五天", 5},
		{"3晚", 3},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, nights(tt.input))
		})
	}
}

// Requests often mention more than one date or name phrase; the more
// specific one has to win.
func TestRuleExtractor_CompetingPhrases(t *testing.T) {
	wednesday := time.Date(2024, 1, 3, 15, 0, 0, 0, time.UTC)
	r := NewRuleExtractor(catalog.Default(), utils.FixedClock(wednesday))

	tests := []struct {
		name   string
		input  string
		date   string
		nights int
		guest  string
	}{
		{
			name:  "today and 下周一",
			input: "我今天想预订下周一去上海的行程，住两晚",
			date:  "2024-01-08", nights: 2, guest: trip_models.DefaultGuestName,
		},
		{
			name:  "today and next monday",
			input: "Booking today: next Monday to Shanghai, two nights",
			date:  "2024-01-08", nights: 2, guest: trip_models.DefaultGuestName,
		},
		{
			name:  "明天 and 下周三 on a wednesday",
			input: "明天出发？不，下周三去北京",
			date:  "2024-01-10", nights: 2, guest: trip_models.DefaultGuestName,
		},
		{
			name:  "tomorrow and next friday",
			input: "not tomorrow, next Friday please, Beijing",
			date:  "2024-01-05", nights: 2, guest: trip_models.DefaultGuestName,
		},
		{
			name:  "today alone is today",
			input: "Shanghai today, one night",
			date:  "2024-01-03", nights: 1, guest: trip_models.DefaultGuestName,
		},
		{
			name:  "I am beats call me",
			input: "I am Li Lei, friends call me Lei, Beijing 2 nights",
			date:  "2024-01-03", nights: 2, guest: "Li Lei",
		},
		{
			name:  "call me needs a capitalised name",
			input: "Beijing for 2 nights, please call me tomorrow",
			date:  "2024-01-04", nights: 2, guest: trip_models.DefaultGuestName,
		},
		{
			name:  "my name is beats I am",
			input: "I'm Bob's assistant, my name is Carol Wu, Tokyo for 3 nights",
			date:  "2024-01-03", nights: 3, guest: "Carol Wu",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Extract(tt.input)
			assert.Equal(t, tt.date, utils.FormatDate(got.TravelDate))
			assert.Equal(t, tt.nights, got.Nights)
			assert.Equal(t, tt.guest, got.GuestName)
		})
	}
}

func TestRuleExtractor_InvalidISODateFallsThrough(t *testing.T) {
	r := NewRuleExtractor(catalog.Default(), utils.FixedClock(monday))
	got := r.Extract("2024-13-45 tomorrow")
	assert.Equal(t, "2024-01-02", utils.FormatDate(got.TravelDate))
}

func TestCleanGuestName(t *testing.T) {
	assert.Equal(t, "张三", cleanGuestName(" 张三！"))
	assert.Equal(t, "李四", cleanGuestName("李，四"))
	assert.Equal(t, "Zhang San", cleanGuestName("Zhang San."))
	assert.Equal(t, "", cleanGuestName("。"))
}
