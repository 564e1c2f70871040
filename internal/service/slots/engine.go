package slots

import (
	"math/rand/v2"
	"time"

	"github.com/m04kA/SMC-MeetingService/internal/domain"
)

// RandomShuffler глобальный источник math/rand/v2, потокобезопасен
type RandomShuffler struct{}

func (RandomShuffler) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// NoShuffle сохраняет хронологический порядок
type NoShuffle struct{}

func (NoShuffle) Shuffle(int, func(i, j int)) {}

// Engine делит окно на слоты фиксированной длины, отбрасывает занятые и выбирает из остальных
type Engine struct {
	shuffler Shuffler
}

// NewEngine создает движок слотов. nil shuffler означает RandomShuffler.
func NewEngine(shuffler Shuffler) *Engine {
	if shuffler == nil {
		shuffler = RandomShuffler{}
	}
	return &Engine{shuffler: shuffler}
}

// Candidates делит [window.Start, window.End) на последовательные слоты по slotMinutes
// от window.Start. Неполный слот в конце не создается.
func Candidates(window domain.Interval, slotMinutes int) []domain.Interval {
	if slotMinutes <= 0 || window.IsEmpty() {
		return nil
	}

	step := time.Duration(slotMinutes) * time.Minute
	candidates := make([]domain.Interval, 0, int(window.Duration()/step))
	for start := window.Start; ; start = start.Add(step) {
		end := start.Add(step)
		if end.After(window.End) {
			break
		}
		candidates = append(candidates, domain.Interval{Start: start, End: end})
	}
	return candidates
}

// FreeCandidates кандидаты окна, не пересекающиеся ни с одним занятым интервалом, по порядку
func FreeCandidates(window domain.Interval, busy []domain.Interval, slotMinutes int) []domain.Interval {
	candidates := Candidates(window, slotMinutes)
	free := make([]domain.Interval, 0, len(candidates))
	for _, candidate := range candidates {
		if !candidate.OverlapsAny(busy) {
			free = append(free, candidate)
		}
	}
	return free
}

// Generate возвращает не более limit свободных слотов окна в равномерно случайном порядке
func (e *Engine) Generate(window domain.Interval, busy []domain.Interval, slotMinutes, limit int) []domain.Interval {
	if limit <= 0 {
		return []domain.Interval{}
	}

	free := FreeCandidates(window, busy, slotMinutes)
	e.shuffler.Shuffle(len(free), func(i, j int) {
		free[i], free[j] = free[j], free[i]
	})

	if len(free) > limit {
		free = free[:limit]
	}
	return free
}
