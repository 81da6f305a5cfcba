package lifecycle

import (
	"math"

	"github.com/bitmark-inc/relief-api/schema"
	"github.com/bitmark-inc/relief-api/store"
)

// Summary is the severity report over every help request
type Summary struct {
	Total          int                       `json:"total"`
	AverageUrgency float64                   `json:"averageUrgency"`
	MaxUrgency     int                       `json:"maxUrgency"`
	MinUrgency     int                       `json:"minUrgency"`
	ByStatus       map[schema.HelpStatus]int `json:"byStatus"`
	ByLocation     map[string]float64        `json:"byLocation"`
	ByType         map[string]float64        `json:"byType"`
}

// roundUrgency rounds a mean urgency half away from zero to two decimals
func roundUrgency(v float64) float64 {
	return math.Round(v*100) / 100
}

// meanUrgencyBy groups requests by key and returns the mean urgency of each
// group. An empty input gives an empty map.
func meanUrgencyBy(helps []schema.HelpRequest, key func(schema.HelpRequest) string) map[string]float64 {
	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, h := range helps {
		k := key(h)
		sums[k] += h.Urgency
		counts[k]++
	}

	means := make(map[string]float64, len(sums))
	for k, sum := range sums {
		means[k] = roundUrgency(float64(sum) / float64(counts[k]))
	}
	return means
}

func byLocation(h schema.HelpRequest) string {
	return h.Location
}

func byType(h schema.HelpRequest) string {
	return h.Type
}

// AggregateByLocation returns the mean urgency of every location
func (m *Manager) AggregateByLocation() (map[string]float64, error) {
	helps, err := m.store.ListHelps(store.HelpFilter{})
	if err != nil {
		return nil, err
	}
	return meanUrgencyBy(helps, byLocation), nil
}

// AggregateByType returns the mean urgency of every request type
func (m *Manager) AggregateByType() (map[string]float64, error) {
	helps, err := m.store.ListHelps(store.HelpFilter{})
	if err != nil {
		return nil, err
	}
	return meanUrgencyBy(helps, byType), nil
}

// Summary computes the severity report from a single snapshot of requests
func (m *Manager) Summary() (*Summary, error) {
	helps, err := m.store.ListHelps(store.HelpFilter{})
	if err != nil {
		return nil, err
	}
	return summarize(helps), nil
}

func summarize(helps []schema.HelpRequest) *Summary {
	s := &Summary{
		Total:      len(helps),
		ByStatus:   make(map[schema.HelpStatus]int, len(schema.HelpStatuses)),
		ByLocation: meanUrgencyBy(helps, byLocation),
		ByType:     meanUrgencyBy(helps, byType),
	}

	for _, status := range schema.HelpStatuses {
		s.ByStatus[status] = 0
	}

	if len(helps) == 0 {
		return s
	}

	sum := 0
	s.MaxUrgency = helps[0].Urgency
	s.MinUrgency = helps[0].Urgency
	for _, h := range helps {
		sum += h.Urgency
		s.ByStatus[h.Status]++
		if h.Urgency > s.MaxUrgency {
			s.MaxUrgency = h.Urgency
		}
		if h.Urgency < s.MinUrgency {
			s.MinUrgency = h.Urgency
		}
	}
	s.AverageUrgency = roundUrgency(float64(sum) / float64(len(helps)))

	return s
}
