package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCourseIDFromEnrollmentKey(t *testing.T) {
	assert.Equal(t, "go-101", CourseIDFromEnrollmentKey("COURSE#go-101"))
	assert.Equal(t, "", CourseIDFromEnrollmentKey("COURSE#"))
	assert.Equal(t, "", CourseIDFromEnrollmentKey("PROFILE"))
	assert.Equal(t, "", CourseIDFromEnrollmentKey("course#go-101"))
}

func TestParseLessonKey(t *testing.T) {
	lk, err := ParseLessonKey("LESSON#1#2#l-abc")
	assert.NoError(t, err)
	assert.Equal(t, LessonKey{ModulePos: 1, Order: 2, LessonID: "l-abc"}, lk)

	// Многозначные позиции разбираются числом
	lk, err = ParseLessonKey("LESSON#10#12#l-x")
	assert.NoError(t, err)
	assert.Equal(t, 10, lk.ModulePos)
	assert.Equal(t, 12, lk.Order)
}

func TestParseLessonKeyMalformed(t *testing.T) {
	cases := []string{
		"LESSON#1#2",      // не хватает поля
		"LESSON#a#2#l-x",  // нечисловая позиция модуля
		"LESSON#1#b#l-x",  // нечисловой порядок
		"LESSON#1#2#",     // пустой id урока
		"MODULE#1",        // чужой тип записи
		"",
	}
	for _, sk := range cases {
		_, err := ParseLessonKey(sk)
		assert.ErrorIs(t, err, ErrMalformedKey, "key %q", sk)
	}
}

func TestLessonIDFromProgressKey(t *testing.T) {
	assert.Equal(t, "l-abc", LessonIDFromProgressKey("PROGRESS#LESSON#l-abc"))
}

func TestDateFromActivityKey(t *testing.T) {
	date, ok := DateFromActivityKey("ACT#2025-03-04#evt-1")
	assert.True(t, ok)
	assert.Equal(t, "2025-03-04", date)

	// Запись с дневной гранулярностью, без под-ключа
	date, ok = DateFromActivityKey("ACT#2025-03-04")
	assert.True(t, ok)
	assert.Equal(t, "2025-03-04", date)
}

func TestDateFromActivityKeyMalformed(t *testing.T) {
	cases := []string{
		"ACT#202a-01-01#evt",  // буква в поле даты
		"ACT#20250304#evt",    // дата без дефисов
		"ACT#2025-03-04x#evt", // мусор после даты
		"ACT#2025-03",         // слишком короткое поле
		"SESSION#2025-03-04",  // чужой префикс
		"ACT#",
	}
	for _, sk := range cases {
		_, ok := DateFromActivityKey(sk)
		assert.False(t, ok, "key %q", sk)
	}
}

func TestLessonKeyRoundTrip(t *testing.T) {
	sk := LessonSK(3, 7, "l-42")
	assert.Equal(t, "LESSON#3#7#l-42", sk)

	lk, err := ParseLessonKey(sk)
	assert.NoError(t, err)
	assert.Equal(t, LessonKey{ModulePos: 3, Order: 7, LessonID: "l-42"}, lk)
}
