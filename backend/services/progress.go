package services

import (
	"context"
	"math"
	"sort"

	"dashboard/backend/models"
	"dashboard/backend/store"

	"golang.org/x/sync/errgroup"
)

// DefaultNextLessonsLimit — сколько ближайших уроков показывает дашборд
const DefaultNextLessonsLimit = 4

// ProgressService считает живой прогресс по одному курсу пользователя.
// Ничего не кэширует: каждый вызов заново читает дерево курса и записи
// прохождения из хранилища
type ProgressService struct {
	store store.Querier
}

func NewProgressService(st store.Querier) *ProgressService {
	return &ProgressService{store: st}
}

// CourseProgress возвращает число уроков, число пройденных и процент
func (s *ProgressService) CourseProgress(ctx context.Context, userID, courseID string) (models.CourseProgress, error) {
	lessons, completed, err := s.courseState(ctx, userID, courseID)
	if err != nil {
		return models.CourseProgress{}, err
	}
	return models.CourseProgress{
		ProgressPercent:  progressPercent(completed, len(lessons)),
		TotalLessons:     len(lessons),
		CompletedLessons: completed,
	}, nil
}

// NextLessons возвращает не более limit ещё не пройденных уроков
// в порядке (позиция модуля, порядок урока)
func (s *ProgressService) NextLessons(ctx context.Context, userID, courseID string, limit int) ([]models.CourseLesson, error) {
	if limit <= 0 {
		limit = DefaultNextLessonsLimit
	}

	lessons, _, err := s.courseState(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	next := []models.CourseLesson{}
	for _, l := range lessons {
		if l.Completed {
			continue
		}
		next = append(next, l)
		if len(next) == limit {
			break
		}
	}
	return next, nil
}

// courseState читает дерево уроков и записи прохождения двумя
// параллельными запросами и склеивает их в упорядоченный список уроков
func (s *ProgressService) courseState(ctx context.Context, userID, courseID string) ([]models.CourseLesson, int, error) {
	pk := store.CoursePK(userID, courseID)

	var tree, progress []store.Item
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tree, err = s.store.QueryByPrefix(gctx, pk, store.LessonSKPrefix, false)
		return err
	})
	g.Go(func() error {
		var err error
		progress, err = s.store.QueryByPrefix(gctx, pk, store.ProgressLessonSKPrefix, false)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	completedSet := make(map[string]struct{}, len(progress))
	for _, it := range progress {
		if it.Status == models.StatusCompleted {
			completedSet[store.LessonIDFromProgressKey(it.SK)] = struct{}{}
		}
	}

	lessons := make([]models.CourseLesson, 0, len(tree))
	completed := 0
	for _, it := range tree {
		lk, err := store.ParseLessonKey(it.SK)
		if err != nil {
			// Битый ключ урока — ошибка авторских данных; молча выбросить
			// урок значит исказить проценты по всему курсу
			return nil, 0, err
		}
		_, done := completedSet[lk.LessonID]
		if done {
			// Пересечение с деревом: запись прохождения удалённого урока
			// не должна завышать счётчик
			completed++
		}
		lessons = append(lessons, models.CourseLesson{
			LessonID:        lk.LessonID,
			ModuleID:        it.ModuleID,
			ModulePos:       lk.ModulePos,
			Order:           lk.Order,
			Title:           it.Title,
			DurationMinutes: it.DurationMinutes,
			Completed:       done,
		})
	}

	// Числовая сортировка: лексикографический порядок ключей ломается
	// на многозначных позициях модулей
	sort.SliceStable(lessons, func(i, j int) bool {
		if lessons[i].ModulePos != lessons[j].ModulePos {
			return lessons[i].ModulePos < lessons[j].ModulePos
		}
		return lessons[i].Order < lessons[j].Order
	})

	return lessons, completed, nil
}

// progressPercent = round(completed/total*10000)/100, в пределах [0, 100]
func progressPercent(completed, total int) float64 {
	if total <= 0 {
		return 0
	}
	p := math.Round(float64(completed)/float64(total)*10000) / 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
