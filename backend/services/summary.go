package services

import (
	"context"

	"dashboard/backend/models"
	"dashboard/backend/store"

	"golang.org/x/sync/errgroup"
)

// SummaryService собирает сводку дашборда по всем зачислениям пользователя
type SummaryService struct {
	store    store.Querier
	progress *ProgressService
}

func NewSummaryService(st store.Querier, progress *ProgressService) *SummaryService {
	return &SummaryService{store: st, progress: progress}
}

// Summary выдаёт KPI, активный курс, список курсов и ближайшие уроки.
// Прогресс каждого курса пересчитывается живьём; хранимым в записи
// о зачислении процентам не доверяем
func (s *SummaryService) Summary(ctx context.Context, userID string) (models.Summary, error) {
	items, err := s.store.QueryByPrefix(ctx, store.UserPK(userID), store.EnrollmentSKPrefix, true)
	if err != nil {
		return models.Summary{}, err
	}

	enrolls := make([]models.Enrollment, len(items))
	for i, it := range items {
		enrolls[i] = models.EnrollmentFromItem(it)
	}

	// Обогащение живым прогрессом: по запросу на зачисление, все сразу.
	// Любая ошибка роняет всю сводку — частичных KPI не бывает
	g, gctx := errgroup.WithContext(ctx)
	for i := range enrolls {
		if enrolls[i].CourseID == "" {
			// Нераспознанный ключ курса: запись остаётся с тем, что было
			continue
		}
		i := i
		g.Go(func() error {
			cp, err := s.progress.CourseProgress(gctx, userID, enrolls[i].CourseID)
			if err != nil {
				return err
			}
			enrolls[i].ProgressPercent = cp.ProgressPercent
			enrolls[i].TotalLessons = cp.TotalLessons
			enrolls[i].CompletedLessons = cp.CompletedLessons
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return models.Summary{}, err
	}

	var active, completedList []models.Enrollment
	for _, e := range enrolls {
		switch e.Status {
		case models.StatusActive:
			active = append(active, e)
		case models.StatusCompleted:
			completedList = append(completedList, e)
		}
	}

	// Средний процент — по всем зачислениям независимо от статуса
	avg := 0.0
	if len(enrolls) > 0 {
		sum := 0.0
		for _, e := range enrolls {
			sum += e.ProgressPercent
		}
		avg = round2(sum / float64(len(enrolls)))
	}

	// Сумма уроков — только по active и completed
	totalLessons := 0
	for _, e := range active {
		totalLessons += e.TotalLessons
	}
	for _, e := range completedList {
		totalLessons += e.TotalLessons
	}

	activeCourse := pickActiveCourse(active)

	nextLessons := []models.CourseLesson{}
	if activeCourse != nil {
		nextLessons, err = s.progress.NextLessons(ctx, userID, activeCourse.ID, DefaultNextLessonsLimit)
		if err != nil {
			return models.Summary{}, err
		}
	}

	coursesSummary := make([]models.CourseSummary, len(enrolls))
	for i, e := range enrolls {
		coursesSummary[i] = models.CourseSummary{
			ID:              e.CourseID,
			Title:           e.Title,
			ProgressPercent: e.ProgressPercent,
			LessonsTotal:    e.TotalLessons,
			Status:          e.Status,
		}
	}

	return models.Summary{
		KPIs: models.KPIs{
			CoursesActive:      len(active),
			CoursesCompleted:   len(completedList),
			AvgProgressPercent: avg,
			TotalLessons:       totalLessons,
		},
		ActiveCourse:   activeCourse,
		CoursesSummary: coursesSummary,
		NextLessons:    nextLessons,
	}, nil
}

// pickActiveCourse выбирает активное зачисление с наибольшим updatedAt
// (пустые значения сортируются в конец); при равенстве — более раннее
// в исходном порядке выдачи. nil, если активных нет
func pickActiveCourse(active []models.Enrollment) *models.ActiveCourse {
	if len(active) == 0 {
		return nil
	}
	best := 0
	for i := 1; i < len(active); i++ {
		if active[i].UpdatedAt > active[best].UpdatedAt {
			best = i
		}
	}
	e := active[best]
	return &models.ActiveCourse{
		ID:              e.CourseID,
		Title:           e.Title,
		ProgressPercent: e.ProgressPercent,
		Tags:            e.Tags,
	}
}
