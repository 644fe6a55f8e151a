package domain

import "math"

// RangeScore is the comparison of a submitted hand set against a reference range.
type RangeScore struct {
	OverlapScore float64
	CorrectHands []string
	MissedHands  []string
	ExtraHands   []string
}

// ScoreRange scores submitted against reference as
// 100 * |submitted ∩ reference| / |submitted ∪ reference|, rounded to one decimal.
// Correct and extra hands keep submission order, missed hands keep reference order.
func ScoreRange(reference, submitted []string) RangeScore {
	refSet := make(map[string]struct{}, len(reference))
	for _, h := range reference {
		refSet[h] = struct{}{}
	}
	subSet := make(map[string]struct{}, len(submitted))
	for _, h := range submitted {
		subSet[h] = struct{}{}
	}

	res := RangeScore{
		CorrectHands: []string{},
		MissedHands:  []string{},
		ExtraHands:   []string{},
	}
	for _, h := range submitted {
		if _, ok := refSet[h]; ok {
			res.CorrectHands = append(res.CorrectHands, h)
		} else {
			res.ExtraHands = append(res.ExtraHands, h)
		}
	}
	for _, h := range reference {
		if _, ok := subSet[h]; !ok {
			res.MissedHands = append(res.MissedHands, h)
		}
	}

	union := make(map[string]struct{}, len(refSet)+len(subSet))
	for h := range refSet {
		union[h] = struct{}{}
	}
	for h := range subSet {
		union[h] = struct{}{}
	}
	if len(union) == 0 {
		return res
	}

	res.OverlapScore = roundTenth(float64(len(res.CorrectHands)) / float64(len(union)) * 100)
	return res
}

func roundTenth(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}
