package services

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"tripagent/internal/catalog"
	"tripagent/internal/models/trip_models"
	"tripagent/pkg/utils"
)

type nightsPattern struct {
	re     *regexp.Regexp
	nights int
}

// nightsPatterns is checked in order; the first hit wins.
var nightsPatterns = buildNightsPatterns()

func buildNightsPatterns() []nightsPattern {
	chinese := map[int][]string{
		1: {"一"},
		2: {"两", "二"},
		3: {"三"},
		4: {"四"},
		5: {"五"},
	}
	english := []string{"", "one", "two", "three", "four", "five"}

	var patterns []nightsPattern
	for n := 1; n <= 5; n++ {
		var alts []string
		for _, numeral := range append(chinese[n], fmt.Sprint(n)) {
			alts = append(alts, numeral+"晚", numeral+"天")
		}
		patterns = append(patterns,
			nightsPattern{regexp.MustCompile(strings.Join(alts, "|")), n},
			nightsPattern{regexp.MustCompile(fmt.Sprintf(`(?i)\b(?:%d|%s)[\s-]*nights?\b`, n, english[n])), n},
			// day counts only when phrased as a stay: "for 3 days", "3-day trip"
			nightsPattern{regexp.MustCompile(fmt.Sprintf(
				`(?i)\bfor\s+(?:%[1]d|%[2]s)[\s-]*days?\b|\b(?:%[1]d|%[2]s)-day\s+(?:trip|stay|visit)\b`, n, english[n])), n},
		)
	}
	return patterns
}

var (
	isoDateRegex       = regexp.MustCompile(`\b(\d{4}[-/]\d{2}[-/]\d{2})\b`)
	nextWeekdayRegex   = regexp.MustCompile(`(?i)\bnext\s+(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
	nextWeekdayCNRegex = regexp.MustCompile(`下(?:周|星期)([一二三四五六日天])`)
)

var englishWeekdays = map[string]time.Weekday{
	"sunday": time.Sunday, "monday": time.Monday, "tuesday": time.Tuesday,
	"wednesday": time.Wednesday, "thursday": time.Thursday,
	"friday": time.Friday, "saturday": time.Saturday,
}

var chineseWeekdays = map[string]time.Weekday{
	"一": time.Monday, "二": time.Tuesday, "三": time.Wednesday, "四": time.Thursday,
	"五": time.Friday, "六": time.Saturday, "日": time.Sunday, "天": time.Sunday,
}

type relativeDay struct {
	phrases []string
	offset  int
}

// Longer phrases first: "day after tomorrow" contains "tomorrow".
var relativeDays = []relativeDay{
	{[]string{"day after tomorrow", "后天"}, 2},
	{[]string{"tomorrow", "明天"}, 1},
}

const nameStopChars = `\s，。！？、；,.!?`

var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i:my name is)\s+(\p{L}[\p{L}'\-]*(?:\s+\p{Lu}[\p{L}'\-]*)*)`),
	regexp.MustCompile(`\b(?:I am|I'm)\s+(\p{Lu}[\p{L}'\-]*(?:\s+\p{Lu}[\p{L}'\-]*)*)`),
	regexp.MustCompile(`(?i:call me)\s+(\p{Lu}[\p{L}'\-]*(?:\s+\p{Lu}[\p{L}'\-]*)*)`),
	regexp.MustCompile(`名字是([^` + nameStopChars + `]{2,4})`),
	regexp.MustCompile(`我叫([^` + nameStopChars + `]{2,4})`),
	regexp.MustCompile(`姓名([^` + nameStopChars + `]{2,4})`),
	regexp.MustCompile(`我是([^` + nameStopChars + `]{2,4})`),
	regexp.MustCompile(`称我为([^` + nameStopChars + `]{2,4})`),
}

var namePunctuation = "，。！？、；：,.!?;:\"'“”‘’ "

// RuleExtractor is the deterministic keyword extractor. It never fails.
type RuleExtractor struct {
	catalog *catalog.Catalog
	clock   utils.Clock
}

func NewRuleExtractor(c *catalog.Catalog, clock utils.Clock) *RuleExtractor {
	if clock == nil {
		clock = utils.SystemClock
	}
	return &RuleExtractor{catalog: c, clock: clock}
}

func (r *RuleExtractor) Extract(rawText string) trip_models.TripRequest {
	today := utils.DateOnly(r.clock())
	destination := r.destination(rawText)

	return trip_models.TripRequest{
		RawText:              rawText,
		GuestName:            guestName(rawText),
		Destination:          destination,
		RequestedDestination: destination,
		TravelDate:           travelDate(rawText, today),
		Nights:               nights(rawText),
		Source:               trip_models.SourceRules,
	}
}

func (r *RuleExtractor) destination(text string) string {
	if city, ok := r.catalog.FindInText(text); ok {
		return city.Name
	}
	return r.catalog.PrimaryCity()
}

func nights(text string) int {
	for _, p := range nightsPatterns {
		if p.re.MatchString(text) {
			return p.nights
		}
	}
	return trip_models.DefaultNights
}

func travelDate(text string, today time.Time) time.Time {
	if m := isoDateRegex.FindStringSubmatch(text); m != nil {
		if d, err := utils.ParseDate(m[1]); err == nil {
			return d
		}
	}

	// a named weekday is more specific than a relative day
	if m := nextWeekdayRegex.FindStringSubmatch(text); m != nil {
		return utils.NextWeekday(today, englishWeekdays[strings.ToLower(m[1])])
	}
	if m := nextWeekdayCNRegex.FindStringSubmatch(text); m != nil {
		return utils.NextWeekday(today, chineseWeekdays[m[1]])
	}

	lower := strings.ToLower(text)
	for _, rel := range relativeDays {
		for _, phrase := range rel.phrases {
			if strings.Contains(lower, phrase) {
				return today.AddDate(0, 0, rel.offset)
			}
		}
	}

	return today
}

func guestName(text string) string {
	for _, re := range namePatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if name := cleanGuestName(m[1]); len([]rune(name)) >= 2 {
			return name
		}
	}
	return trip_models.DefaultGuestName
}

// cleanGuestName trims surrounding whitespace and punctuation and drops any
// full-width punctuation left inside the name.
func cleanGuestName(name string) string {
	name = strings.Trim(name, namePunctuation)
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune("，。！？、；：“”‘’", r) {
			return -1
		}
		return r
	}, name)
	return strings.TrimSpace(name)
}
