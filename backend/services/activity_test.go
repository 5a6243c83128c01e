package services

import (
	"context"
	"testing"
	"time"

	"dashboard/backend/store"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// Воскресенье; окно недели — с понедельника 2025-03-03 по 2025-03-09
var activityNow = time.Date(2025, 3, 9, 15, 30, 0, 0, time.UTC)

func putActivity(st *store.MemoryStore, userID, dateISO, eventID string, minutes int) {
	st.Put(store.Item{
		PK:      store.UserPK(userID),
		SK:      store.ActivitySK(dateISO, eventID),
		Minutes: minutes,
	})
}

func newActivityService(st *store.MemoryStore) *ActivityService {
	return NewActivityService(st, zap.NewNop())
}

func TestWeeklyActivityScenario(t *testing.T) {
	st := store.NewMemoryStore()
	// Вторник: две записи складываются в одну корзину
	putActivity(st, "u1", "2025-03-04", "evt-1", 20)
	putActivity(st, "u1", "2025-03-04", "evt-2", 10)
	// Четверг
	putActivity(st, "u1", "2025-03-06", "evt-1", 15)

	week, err := newActivityService(st).WeeklyActivity(context.Background(), "u1", 7, activityNow)
	assert.NoError(t, err)

	assert.Equal(t, "2025-03-03", week.From)
	assert.Equal(t, "2025-03-09", week.To)
	assert.Len(t, week.Buckets, 7)

	byDate := map[string]int{}
	for i, b := range week.Buckets {
		byDate[b.Date] = b.Minutes
		// Корзины идут от старых дат к новым
		if i > 0 {
			assert.Greater(t, b.Date, week.Buckets[i-1].Date)
		}
	}
	assert.Equal(t, 30, byDate["2025-03-04"])
	assert.Equal(t, 15, byDate["2025-03-06"])
	assert.Equal(t, 0, byDate["2025-03-03"])
	assert.Equal(t, 0, byDate["2025-03-09"])
}

func TestWeeklyActivityWindowAlwaysFull(t *testing.T) {
	st := store.NewMemoryStore()

	week, err := newActivityService(st).WeeklyActivity(context.Background(), "u1", 3, activityNow)
	assert.NoError(t, err)
	assert.Len(t, week.Buckets, 3)
	assert.Equal(t, "2025-03-07", week.From)
	assert.Equal(t, "2025-03-09", week.To)
	for _, b := range week.Buckets {
		assert.Equal(t, 0, b.Minutes)
	}
}

func TestWeeklyActivityDefaultDays(t *testing.T) {
	st := store.NewMemoryStore()

	week, err := newActivityService(st).WeeklyActivity(context.Background(), "u1", 0, activityNow)
	assert.NoError(t, err)
	assert.Len(t, week.Buckets, 7)
}

func TestWeeklyActivityPerDayGranularity(t *testing.T) {
	st := store.NewMemoryStore()
	// Запись с дневной гранулярностью, без под-ключа события
	putActivity(st, "u1", "2025-03-05", "", 5)

	week, err := newActivityService(st).WeeklyActivity(context.Background(), "u1", 7, activityNow)
	assert.NoError(t, err)
	assert.Equal(t, 5, week.Buckets[2].Minutes)
}

func TestWeeklyActivitySkipsMalformedDate(t *testing.T) {
	st := store.NewMemoryStore()
	putActivity(st, "u1", "2025-03-04", "evt-1", 30)
	// Ключ попадает в диапазон запроса, но поле даты нечитаемо
	st.Put(store.Item{PK: store.UserPK("u1"), SK: "ACT#2025-03-04x#evt", Minutes: 999})

	week, err := newActivityService(st).WeeklyActivity(context.Background(), "u1", 7, activityNow)
	assert.NoError(t, err)

	total := 0
	for _, b := range week.Buckets {
		total += b.Minutes
	}
	assert.Equal(t, 30, total)
}

func TestStreakScenario(t *testing.T) {
	st := store.NewMemoryStore()
	// Сегодня и вчера есть активность, позавчера — нет
	putActivity(st, "u1", "2025-03-09", "evt-1", 10)
	putActivity(st, "u1", "2025-03-08", "evt-1", 10)
	putActivity(st, "u1", "2025-03-06", "evt-1", 10)

	streak, err := newActivityService(st).Streak(context.Background(), "u1", 30, activityNow)
	assert.NoError(t, err)
	assert.Equal(t, 2, streak.StreakCurrent)
}

func TestStreakZeroWithoutToday(t *testing.T) {
	st := store.NewMemoryStore()
	putActivity(st, "u1", "2025-03-08", "evt-1", 10)
	putActivity(st, "u1", "2025-03-07", "evt-1", 10)

	streak, err := newActivityService(st).Streak(context.Background(), "u1", 30, activityNow)
	assert.NoError(t, err)
	assert.Equal(t, 0, streak.StreakCurrent)
}

func TestStreakFullWindow(t *testing.T) {
	st := store.NewMemoryStore()
	day := utcDate(activityNow)
	for i := 0; i < 30; i++ {
		putActivity(st, "u1", day.AddDate(0, 0, -i).Format(activityDateISOFormat), "evt-1", 10)
	}

	streak, err := newActivityService(st).Streak(context.Background(), "u1", 30, activityNow)
	assert.NoError(t, err)
	assert.Equal(t, 30, streak.StreakCurrent)
}

func TestStreakIgnoresMalformedToday(t *testing.T) {
	st := store.NewMemoryStore()
	// Единственная запись за сегодня — с нечитаемой датой в ключе
	st.Put(store.Item{PK: store.UserPK("u1"), SK: "ACT#2025-03-09x#evt", Minutes: 10})

	streak, err := newActivityService(st).Streak(context.Background(), "u1", 30, activityNow)
	assert.NoError(t, err)
	assert.Equal(t, 0, streak.StreakCurrent)
}

func TestActivityIdempotent(t *testing.T) {
	st := store.NewMemoryStore()
	putActivity(st, "u1", "2025-03-09", "evt-1", 10)
	putActivity(st, "u1", "2025-03-08", "evt-1", 25)
	svc := newActivityService(st)

	firstWeek, err := svc.WeeklyActivity(context.Background(), "u1", 7, activityNow)
	assert.NoError(t, err)
	secondWeek, err := svc.WeeklyActivity(context.Background(), "u1", 7, activityNow)
	assert.NoError(t, err)
	assert.Equal(t, firstWeek, secondWeek)
}
