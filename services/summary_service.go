package services

import (
	"context"
	"math"
	"sort"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

// SummaryService reduces raw meal items and water logs into per-day
// rollups. Summaries are derived on every read; nothing here writes.
type SummaryService struct{ db *gorm.DB }

func NewSummaryService(db *gorm.DB) *SummaryService { return &SummaryService{db: db} }

type DailySummary struct {
	Date     string  `json:"date"` // YYYY-MM-DD in the requested zone
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	WaterMl  float64 `json:"water_ml"`
}

type RangeSummary struct {
	From        string         `json:"from"`
	To          string         `json:"to"`
	Days        []DailySummary `json:"days"` // most recent first, observed days only
	AvgCalories float64        `json:"avg_calories"`
	AvgProtein  float64        `json:"avg_protein"`
	AvgWaterMl  float64        `json:"avg_water_ml"`
	DaysTracked int            `json:"days_tracked"`
}

// DaySummary aggregates one calendar day, [local midnight, +24h) in loc.
// Missing data is a zero summary, not an error.
func (s *SummaryService) DaySummary(ctx context.Context, userID uint, date time.Time, loc *time.Location) (DailySummary, error) {
	from := dayStart(date, loc)
	to := from.Add(24 * time.Hour)

	out := DailySummary{Date: from.Format("2006-01-02")}

	// bounds reach the store as UTC instants: sqlite keeps RFC3339 text
	// and compares it lexicographically, so zone-offset bounds miss rows
	fromQ, toQ := from.UTC(), to.UTC()

	var meals []models.Meal
	if err := s.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ? AND eaten_at >= ? AND eaten_at < ?", userID, fromQ, toQ).
		Find(&meals).Error; err != nil {
		return out, err
	}
	for _, m := range meals {
		for _, it := range m.Items {
			out.Calories += it.Calories
			out.Protein += it.Protein
			out.Carbs += it.Carbs
			out.Fat += it.Fat
		}
	}

	var logs []models.WaterLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, fromQ, toQ).
		Find(&logs).Error; err != nil {
		return out, err
	}
	for _, l := range logs {
		out.WaterMl += l.AmountMl
	}

	return out, nil
}

// Range aggregates the trailing window of `days` days ending now.
// Only days with at least one meal or water log appear in the result;
// averages divide by observed days, not by the window length.
func (s *SummaryService) Range(ctx context.Context, userID uint, days int, now time.Time, loc *time.Location) (*RangeSummary, error) {
	if days <= 0 {
		days = 7
	}
	to := dayStart(now, loc).Add(24 * time.Hour)
	from := to.AddDate(0, 0, -days)
	fromQ, toQ := from.UTC(), to.UTC() // UTC bounds, as in DaySummary

	byDay := map[string]*DailySummary{}
	day := func(t time.Time) *DailySummary {
		key := t.In(loc).Format("2006-01-02")
		if byDay[key] == nil {
			byDay[key] = &DailySummary{Date: key}
		}
		return byDay[key]
	}

	var meals []models.Meal
	if err := s.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ? AND eaten_at >= ? AND eaten_at < ?", userID, fromQ, toQ).
		Find(&meals).Error; err != nil {
		return nil, err
	}
	for _, m := range meals {
		d := day(m.EatenAt)
		for _, it := range m.Items {
			d.Calories += it.Calories
			d.Protein += it.Protein
			d.Carbs += it.Carbs
			d.Fat += it.Fat
		}
	}

	var logs []models.WaterLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, fromQ, toQ).
		Find(&logs).Error; err != nil {
		return nil, err
	}
	for _, l := range logs {
		day(l.LoggedAt).WaterMl += l.AmountMl
	}

	out := &RangeSummary{
		From: from.Format("2006-01-02"),
		To:   to.AddDate(0, 0, -1).Format("2006-01-02"),
		Days: make([]DailySummary, 0, len(byDay)),
	}
	for _, d := range byDay {
		out.Days = append(out.Days, *d)
	}
	sort.Slice(out.Days, func(i, j int) bool { return out.Days[i].Date > out.Days[j].Date })

	out.DaysTracked = len(out.Days)
	var cals, prot, water float64
	for _, d := range out.Days {
		cals += d.Calories
		prot += d.Protein
		water += d.WaterMl
	}
	out.AvgCalories = avg(cals, out.DaysTracked)
	out.AvgProtein = avg(prot, out.DaysTracked)
	out.AvgWaterMl = avg(water, out.DaysTracked)

	return out, nil
}

func dayStart(t time.Time, loc *time.Location) time.Time {
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

func avg(sum float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return round2(sum / float64(n))
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
