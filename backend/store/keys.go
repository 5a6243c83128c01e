package store

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedKey возвращается, когда составной ключ не соответствует ожидаемой форме
var ErrMalformedKey = errors.New("malformed key")

// Sort key prefixes
const (
	EnrollmentSKPrefix     = "COURSE#"
	LessonSKPrefix         = "LESSON#"
	ProgressLessonSKPrefix = "PROGRESS#LESSON#"
	ActivitySKPrefix       = "ACT#"
)

// Partition keys
func UserPK(userID string) string { return "USER#" + userID }
func CoursePK(userID, courseID string) string {
	return "UC#" + userID + "#" + courseID
}

// Sort keys
func EnrollmentSK(courseID string) string { return EnrollmentSKPrefix + courseID }
func LessonSK(modulePos, order int, lessonID string) string {
	return fmt.Sprintf("%s%d#%d#%s", LessonSKPrefix, modulePos, order, lessonID)
}
func ProgressLessonSK(lessonID string) string { return ProgressLessonSKPrefix + lessonID }
func ActivitySK(dateISO, eventID string) string {
	if eventID == "" {
		return ActivitySKPrefix + dateISO
	}
	return ActivitySKPrefix + dateISO + "#" + eventID
}

// Границы диапазона активности: '~' больше любого символа ключа,
// поэтому верхняя граница захватывает и под-ключи последнего дня
func ActivitySKFrom(dateISO string) string { return ActivitySKPrefix + dateISO }
func ActivitySKTo(dateISO string) string   { return ActivitySKPrefix + dateISO + "~" }

// CourseIDFromEnrollmentKey извлекает id курса из ключа записи о зачислении.
// Возвращает "", если ключ не имеет префикса COURSE# — вызывающая сторона
// трактует пустой id как нераспознанную запись
func CourseIDFromEnrollmentKey(sk string) string {
	if !strings.HasPrefix(sk, EnrollmentSKPrefix) {
		return ""
	}
	return strings.TrimPrefix(sk, EnrollmentSKPrefix)
}

// LessonKey — разобранный ключ урока
type LessonKey struct {
	ModulePos int
	Order     int
	LessonID  string
}

// ParseLessonKey разбирает ключ LESSON#<modulePos>#<order>#<lessonId>.
// Порядок модулей и уроков хранится числом в строке: лексикографический
// порядок ключей не совпадает с числовым для многозначных позиций
func ParseLessonKey(sk string) (LessonKey, error) {
	parts := strings.Split(sk, "#")
	if len(parts) < 4 || parts[0]+"#" != LessonSKPrefix {
		return LessonKey{}, fmt.Errorf("%w: lesson key %q", ErrMalformedKey, sk)
	}
	modulePos, err := strconv.Atoi(parts[1])
	if err != nil {
		return LessonKey{}, fmt.Errorf("%w: lesson key %q: module position: %v", ErrMalformedKey, sk, err)
	}
	order, err := strconv.Atoi(parts[2])
	if err != nil {
		return LessonKey{}, fmt.Errorf("%w: lesson key %q: order: %v", ErrMalformedKey, sk, err)
	}
	if parts[3] == "" {
		return LessonKey{}, fmt.Errorf("%w: lesson key %q: empty lesson id", ErrMalformedKey, sk)
	}
	return LessonKey{ModulePos: modulePos, Order: order, LessonID: parts[3]}, nil
}

// LessonIDFromProgressKey извлекает id урока из ключа записи прогресса
func LessonIDFromProgressKey(sk string) string {
	return strings.TrimPrefix(sk, ProgressLessonSKPrefix)
}

// DateFromActivityKey извлекает дату из ключа ACT#<YYYY-MM-DD>[#<event>].
// Возвращает ("", false), если поле даты не проходит строгую проверку формы —
// такие записи пропускаются, а не приводят к ошибке
func DateFromActivityKey(sk string) (string, bool) {
	if !strings.HasPrefix(sk, ActivitySKPrefix) {
		return "", false
	}
	rest := sk[len(ActivitySKPrefix):]
	if len(rest) < 10 {
		return "", false
	}
	if len(rest) > 10 && rest[10] != '#' {
		return "", false
	}
	date := rest[:10]
	if !isISODate(date) {
		return "", false
	}
	return date, true
}

func isISODate(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	for i, c := range []byte(s) {
		if i == 4 || i == 7 {
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
