// Package catalog holds the inventory behind the mock flight, hotel and booking
// services: supported cities, flight candidates, fares and hotel listings.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embedded []byte

// Catalog is the full inventory. Cities are kept in priority order.
type Catalog struct {
	DepartureTimes []string `yaml:"departure_times" json:"departure_times"`
	Cities         []City   `yaml:"cities" json:"cities"`
}

// City is a supported destination.
type City struct {
	Name          string   `yaml:"name" json:"name"`
	Aliases       []string `yaml:"aliases" json:"aliases"`
	BasePrice     int      `yaml:"base_price" json:"base_price"`
	FlightNumbers []string `yaml:"flight_numbers" json:"flight_numbers"`
	Hotels        []Hotel  `yaml:"hotels" json:"hotels"`
}

// Hotel is one listing in a city's hotel catalog.
type Hotel struct {
	Name          string  `yaml:"name" json:"name"`
	PricePerNight int     `yaml:"price_per_night" json:"price_per_night"`
	Rating        float64 `yaml:"rating" json:"rating"`
	Available     bool    `yaml:"available" json:"available"`
}

// Shape every catalog must have. Flight lookup draws from exactly this many
// candidates and departure slots.
const (
	FlightsPerCity = 3
	HotelsPerCity  = 3
	DepartureSlots = 6
)

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(embedded)
		if err != nil {
			panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadFromFile reads a catalog from path. An empty path yields the default catalog.
func LoadFromFile(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Validate checks the catalog is usable by the mock services.
func (c *Catalog) Validate() error {
	if len(c.DepartureTimes) != DepartureSlots {
		return fmt.Errorf("catalog: need %d departure_times, got %d", DepartureSlots, len(c.DepartureTimes))
	}
	if len(c.Cities) == 0 {
		return fmt.Errorf("catalog: no cities configured")
	}

	seen := make(map[string]bool)
	for i, city := range c.Cities {
		if strings.TrimSpace(city.Name) == "" {
			return fmt.Errorf("catalog: city %d has no name", i)
		}
		key := strings.ToLower(city.Name)
		if seen[key] {
			return fmt.Errorf("catalog: duplicate city %q", city.Name)
		}
		seen[key] = true

		if city.BasePrice <= 0 {
			return fmt.Errorf("catalog: %s base_price must be positive", city.Name)
		}
		if len(city.FlightNumbers) != FlightsPerCity {
			return fmt.Errorf("catalog: %s needs %d flight numbers, got %d", city.Name, FlightsPerCity, len(city.FlightNumbers))
		}
		if len(city.Hotels) != HotelsPerCity {
			return fmt.Errorf("catalog: %s needs %d hotels, got %d", city.Name, HotelsPerCity, len(city.Hotels))
		}
		for _, fn := range city.FlightNumbers {
			if len(fn) < 3 {
				return fmt.Errorf("catalog: %s flight number %q is too short", city.Name, fn)
			}
		}
		for _, h := range city.Hotels {
			if h.PricePerNight <= 0 {
				return fmt.Errorf("catalog: hotel %q price_per_night must be positive", h.Name)
			}
			if h.Rating < 0 || h.Rating > 5 {
				return fmt.Errorf("catalog: hotel %q rating must be between 0 and 5", h.Name)
			}
		}
	}
	return nil
}

// Lookup resolves a canonical name or alias to its city.
func (c *Catalog) Lookup(name string) (*City, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil, false
	}
	for i := range c.Cities {
		city := &c.Cities[i]
		if strings.ToLower(city.Name) == needle {
			return city, true
		}
		for _, alias := range city.Aliases {
			if strings.ToLower(alias) == needle {
				return city, true
			}
		}
	}
	return nil, false
}

// FindInText returns the first city, in priority order, whose name or any
// alias occurs in text. Matching is case-insensitive; Latin names must stand
// as whole words, so "Cantonese" does not match "canton".
func (c *Catalog) FindInText(text string) (*City, bool) {
	lower := strings.ToLower(text)
	for i := range c.Cities {
		city := &c.Cities[i]
		if containsName(lower, strings.ToLower(city.Name)) {
			return city, true
		}
		for _, alias := range city.Aliases {
			if alias != "" && containsName(lower, strings.ToLower(alias)) {
				return city, true
			}
		}
	}
	return nil, false
}

// containsName reports whether name occurs in text. Names that start or end
// with a Latin letter or digit need a non-word rune (or the text edge) on that
// side; CJK names have no word boundaries and match anywhere.
func containsName(text, name string) bool {
	for offset := 0; offset < len(text); {
		i := strings.Index(text[offset:], name)
		if i < 0 {
			return false
		}
		start := offset + i
		end := start + len(name)

		first, _ := utf8.DecodeRuneInString(name)
		last, _ := utf8.DecodeLastRuneInString(name)
		before, _ := utf8.DecodeLastRuneInString(text[:start])
		after, _ := utf8.DecodeRuneInString(text[end:])

		okStart := !isLatinWord(first) || start == 0 || !isLatinWord(before)
		okEnd := !isLatinWord(last) || end == len(text) || !isLatinWord(after)
		if okStart && okEnd {
			return true
		}
		offset = start + utf8.RuneLen(first)
	}
	return false
}

func isLatinWord(r rune) bool {
	return r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_')
}

// CityNames lists canonical names in priority order.
func (c *Catalog) CityNames() []string {
	names := make([]string, 0, len(c.Cities))
	for _, city := range c.Cities {
		names = append(names, city.Name)
	}
	return names
}

// PrimaryCity is the first city in priority order; extraction falls back to it.
func (c *Catalog) PrimaryCity() string {
	return c.Cities[0].Name
}
