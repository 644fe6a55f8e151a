package domain

import (
	"errors"
	"math"
	"sort"
	"time"
)

// ErrEmptyCatalog is returned when there is no scenario to pick a daily challenge from.
var ErrEmptyCatalog = errors.New("no scenarios available for the daily challenge")

// DailySelection is the challenge shared by every user for one calendar date.
type DailySelection struct {
	Scenario         Scenario       `json:"scenario"`
	CommunityStats   map[string]int `json:"communityStats"`
	CorrectPct       int            `json:"correctPct"`
	SecondsRemaining int            `json:"secondsRemaining"`
	Date             string         `json:"date"`
}

// SelectDaily picks the scenario for the calendar date of now and builds the
// synthetic community answer distribution shown next to it. The result only
// depends on the date and the set of scenarios.
func SelectDaily(scenarios []Scenario, now time.Time) (*DailySelection, error) {
	if len(scenarios) == 0 {
		return nil, ErrEmptyCatalog
	}

	ordered := make([]Scenario, len(scenarios))
	copy(ordered, scenarios)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	dayOfYear := now.YearDay()
	scenario := ordered[dayOfYear%len(ordered)]

	seed := dayOfYear*7 + scenario.ID
	correctPct := 35 + mod(seed, 30)

	return &DailySelection{
		Scenario:         scenario,
		CommunityStats:   communityStats(scenario, seed, correctPct),
		CorrectPct:       correctPct,
		SecondsRemaining: SecondsUntilMidnight(now),
		Date:             now.Format(DateLayout),
	}, nil
}

// communityStats gives the correct option correctPct and splits the rest over
// the other options in option order; the last one absorbs the remainder.
func communityStats(s Scenario, seed, correctPct int) map[string]int {
	stats := make(map[string]int, len(s.Options))
	others := make([]string, 0, len(s.Options))
	for _, opt := range s.Options {
		if opt == s.CorrectAnswer {
			stats[opt] = correctPct
			continue
		}
		others = append(others, opt)
	}
	if _, ok := stats[s.CorrectAnswer]; !ok {
		stats[s.CorrectAnswer] = correctPct
	}

	left := 100 - correctPct
	for i, opt := range others {
		if i == len(others)-1 {
			stats[opt] = left
			break
		}
		share := int(math.Floor(float64(left) * (0.30 + float64(mod(seed+i, 20))/100)))
		stats[opt] = share
		left -= share
	}
	return stats
}

// SecondsUntilMidnight counts whole seconds from now to the next midnight in now's location.
func SecondsUntilMidnight(now time.Time) int {
	y, m, d := now.Date()
	next := time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
	return int(next.Sub(now) / time.Second)
}

func mod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}
