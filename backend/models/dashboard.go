package models

import "dashboard/backend/store"

// Статусы записи о зачислении
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// Enrollment — запись о зачислении пользователя на курс, с заполненными
// умолчаниями: отсутствующий статус считается active, отсутствующие
// числовые поля — нулём. ProgressPercent и TotalLessons из хранилища могут
// быть устаревшими, агрегатор перезаписывает их живыми значениями
type Enrollment struct {
	CourseID         string
	Title            string
	Status           string
	UpdatedAt        string
	Tags             []string
	TotalLessons     int
	ProgressPercent  float64
	CompletedLessons int
}

// EnrollmentFromItem декодирует запись хранилища один раз на границе,
// чтобы агрегаторы работали с полностью заполненными значениями
func EnrollmentFromItem(it store.Item) Enrollment {
	status := it.Status
	if status == "" {
		status = StatusActive
	}
	tags := it.Tags
	if tags == nil {
		tags = []string{}
	}
	return Enrollment{
		CourseID:        store.CourseIDFromEnrollmentKey(it.SK),
		Title:           it.Title,
		Status:          status,
		UpdatedAt:       it.UpdatedAt,
		Tags:            tags,
		TotalLessons:    it.TotalLessons,
		ProgressPercent: it.ProgressPercent,
	}
}

// CourseProgress — живые показатели прохождения одного курса
type CourseProgress struct {
	ProgressPercent  float64 `json:"progressPercent"`
	TotalLessons     int     `json:"totalLessons"`
	CompletedLessons int     `json:"completedLessons"`
}

// CourseLesson — урок из дерева курса вместе с признаком прохождения
type CourseLesson struct {
	LessonID        string `json:"lessonId"`
	ModuleID        string `json:"moduleId"`
	ModulePos       int    `json:"modulePos"`
	Order           int    `json:"order"`
	Title           string `json:"title"`
	DurationMinutes int    `json:"durationMinutes"`
	Completed       bool   `json:"completed"`
}

type KPIs struct {
	CoursesActive      int     `json:"coursesActive"`
	CoursesCompleted   int     `json:"coursesCompleted"`
	AvgProgressPercent float64 `json:"avgProgressPercent"`
	TotalLessons       int     `json:"totalLessons"`
}

type ActiveCourse struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	ProgressPercent float64  `json:"progressPercent"`
	Tags            []string `json:"tags"`
}

type CourseSummary struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	ProgressPercent float64 `json:"progressPercent"`
	LessonsTotal    int     `json:"lessonsTotal"`
	Status          string  `json:"status"`
}

// Summary — сводка дашборда пользователя
type Summary struct {
	KPIs           KPIs            `json:"kpis"`
	ActiveCourse   *ActiveCourse   `json:"activeCourse"`
	CoursesSummary []CourseSummary `json:"coursesSummary"`
	NextLessons    []CourseLesson  `json:"nextLessons"`
}

type ActivityBucket struct {
	Date    string `json:"date"`
	Minutes int    `json:"minutes"`
}

// WeeklyActivity — серия дневных корзин за запрошенное окно,
// по одной корзине на каждую дату независимо от наличия данных
type WeeklyActivity struct {
	From    string           `json:"from"`
	To      string           `json:"to"`
	Buckets []ActivityBucket `json:"buckets"`
}

type Streak struct {
	StreakCurrent int `json:"streakCurrent"`
}
