package services

import (
	"context"
	"time"

	"dashboard/backend/models"
	"dashboard/backend/store"

	"go.uber.org/zap"
)

// Окна по умолчанию для недельной активности и серии дней
const (
	DefaultActivityDays   = 7
	DefaultStreakWindow   = 30
	activityDateISOFormat = "2006-01-02"
)

// ActivityService сводит сырые записи активности в дневные корзины и серию
// подряд идущих дней. Записи с нечитаемой датой в ключе пропускаются
// с записью в лог — одна битая запись не должна ронять весь дашборд
type ActivityService struct {
	store  store.Querier
	logger *zap.Logger
}

func NewActivityService(st store.Querier, logger *zap.Logger) *ActivityService {
	return &ActivityService{store: st, logger: logger}
}

// WeeklyActivity возвращает по одной корзине на каждую дату окна из days
// календарных дней UTC, заканчивающегося днём now, от старых к новым.
// Дни без записей получают 0 минут
func (s *ActivityService) WeeklyActivity(ctx context.Context, userID string, days int, now time.Time) (models.WeeklyActivity, error) {
	if days <= 0 {
		days = DefaultActivityDays
	}

	to := utcDate(now)
	from := to.AddDate(0, 0, -(days - 1))
	fromISO := from.Format(activityDateISOFormat)
	toISO := to.Format(activityDateISOFormat)

	items, err := s.queryActivityRange(ctx, userID, fromISO, toISO)
	if err != nil {
		return models.WeeklyActivity{}, err
	}

	buckets := make([]models.ActivityBucket, 0, days)
	index := make(map[string]int, days)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		iso := d.Format(activityDateISOFormat)
		index[iso] = len(buckets)
		buckets = append(buckets, models.ActivityBucket{Date: iso})
	}

	for _, it := range items {
		date, ok := store.DateFromActivityKey(it.SK)
		if !ok {
			s.logger.Warn("skipping activity record with unparsable date",
				zap.String("sk", it.SK),
				zap.String("userId", userID))
			continue
		}
		// Даты вне инициализированного окна игнорируются
		if i, ok := index[date]; ok {
			buckets[i].Minutes += it.Minutes
		}
	}

	return models.WeeklyActivity{From: fromISO, To: toISO, Buckets: buckets}, nil
}

// Streak считает, сколько подряд идущих дней (начиная с сегодняшнего и
// назад) имеют хотя бы одну запись активности. Нет записи за сегодня —
// серия равна нулю
func (s *ActivityService) Streak(ctx context.Context, userID string, maxWindowDays int, now time.Time) (models.Streak, error) {
	if maxWindowDays <= 0 {
		maxWindowDays = DefaultStreakWindow
	}

	to := utcDate(now)
	from := to.AddDate(0, 0, -(maxWindowDays - 1))

	items, err := s.queryActivityRange(ctx, userID, from.Format(activityDateISOFormat), to.Format(activityDateISOFormat))
	if err != nil {
		return models.Streak{}, err
	}

	present := make(map[string]struct{}, len(items))
	for _, it := range items {
		date, ok := store.DateFromActivityKey(it.SK)
		if !ok {
			s.logger.Warn("skipping activity record with unparsable date",
				zap.String("sk", it.SK),
				zap.String("userId", userID))
			continue
		}
		present[date] = struct{}{}
	}

	streak := 0
	for d := to; !d.Before(from); d = d.AddDate(0, 0, -1) {
		if _, ok := present[d.Format(activityDateISOFormat)]; !ok {
			break
		}
		streak++
	}

	return models.Streak{StreakCurrent: streak}, nil
}

func (s *ActivityService) queryActivityRange(ctx context.Context, userID, fromISO, toISO string) ([]store.Item, error) {
	return s.store.QueryByRange(ctx, store.UserPK(userID),
		store.ActivitySKFrom(fromISO), store.ActivitySKTo(toISO))
}

// utcDate отбрасывает время, оставляя календарную дату UTC
func utcDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
