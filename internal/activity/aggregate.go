package activity

import "sort"

// Summary holds report aggregates over a filtered record set: distance and
// calories per activity type, and distance per calendar month.
type Summary struct {
	DistanceByType  map[Type]float64   `json:"distance_by_type"`
	CaloriesByType  map[Type]int       `json:"calories_by_type"`
	DistanceByMonth map[string]float64 `json:"distance_by_month"`
}

// Aggregate computes a Summary in a single pass. Every supported activity
// type is present in the per-type maps even with no matching records, so a
// report always shows all categories. Months appear only when at least one
// record falls in them; keys are "YYYY-MM".
func Aggregate(records []Record) Summary {
	s := Summary{
		DistanceByType:  make(map[Type]float64, len(Types())),
		CaloriesByType:  make(map[Type]int, len(Types())),
		DistanceByMonth: make(map[string]float64),
	}
	for _, t := range Types() {
		s.DistanceByType[t] = 0
		s.CaloriesByType[t] = 0
	}

	for _, r := range records {
		s.DistanceByType[r.Type] += r.DistanceKm
		s.CaloriesByType[r.Type] += r.Calories

		if len(r.Date) >= 7 {
			s.DistanceByMonth[r.Date[:7]] += r.DistanceKm
		}
	}

	return s
}

// Months returns the month keys sorted lexicographically, which is also
// chronological for zero-padded "YYYY-MM" keys.
func (s Summary) Months() []string {
	months := make([]string, 0, len(s.DistanceByMonth))
	for m := range s.DistanceByMonth {
		months = append(months, m)
	}
	sort.Strings(months)
	return months
}
