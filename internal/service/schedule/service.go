package schedule

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/courtservice"
	createBooking "github.com/m04kA/SMC-ScheduleService/internal/usecase/create_booking"
	getWeekSchedule "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_week_schedule"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Session состояние страницы расписания одного оператора.
// Single-writer: выбор корта, опорная дата и набор броней меняются только
// методами сессии; черновик принадлежит открытому потоку быстрого бронирования.
type Session struct {
	mu sync.Mutex

	catalog      CourtCatalogClient
	weekUC       WeekScheduleUseCase
	createUC     CreateBookingUseCase
	timeProvider TimeProvider
	logger       Logger

	courtTypes    []domain.CourtType
	courts        []domain.Court // только доступные
	selectedType  int64
	selectedCourt int64
	anchor        time.Time

	initialized bool
	schedule    *getWeekSchedule.Response // nil = пустая сетка

	// fetchSeq растет при каждом запуске рефреша; завершение с другим номером
	// или другой парой (корт, неделя) отбрасывается как устаревшее
	fetchSeq uint64

	draft *draftState
}

// NewSession создает новую сессию страницы расписания
func NewSession(
	catalog CourtCatalogClient,
	weekUC WeekScheduleUseCase,
	createUC CreateBookingUseCase,
	logger Logger,
) *Session {
	return &Session{
		catalog:      catalog,
		weekUC:       weekUC,
		createUC:     createUC,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Init выполняет начальную загрузку: типы кортов, затем корты.
// Список кортов должен существовать до выбора дефолтного корта, поэтому
// загрузка последовательная. После выбора дефолтов загружается расписание.
func (s *Session) Init(ctx context.Context) error {
	courtTypes, err := s.catalog.ListCourtTypes(ctx)
	if err != nil {
		s.logger.Error("Session.Init: failed to list court types: %v", err)
		return fmt.Errorf("%w: failed to list court types: %w", ErrInternal, err)
	}

	courts, err := s.catalog.ListCourts(ctx)
	if err != nil {
		s.logger.Error("Session.Init: failed to list courts: %v", err)
		return fmt.Errorf("%w: failed to list courts: %w", ErrInternal, err)
	}

	s.mu.Lock()
	s.initialized = true
	s.courtTypes = courtTypes

	// Оператору предлагаются только доступные корты
	s.courts = make([]domain.Court, 0, len(courts))
	for _, c := range courts {
		if c.IsAvailable() {
			s.courts = append(s.courts, c)
		}
	}

	s.anchor = s.timeProvider.Now()

	// Дефолтный выбор: первый тип и первый его корт
	s.selectedType = 0
	s.selectedCourt = 0
	if len(s.courtTypes) > 0 {
		s.selectedType = s.courtTypes[0].ID
		if filtered := domain.FilterAvailableCourts(s.courts, s.selectedType); len(filtered) > 0 {
			s.selectedCourt = filtered[0].ID
		}
	}
	hasCourt := s.selectedCourt != 0
	s.mu.Unlock()

	s.logger.Info("Session.Init: types=%d, courts=%d, selected_type=%d, selected_court=%d",
		len(courtTypes), len(courts), s.selectedType, s.selectedCourt)

	if !hasCourt {
		return nil
	}
	return s.Refresh(ctx)
}

// SelectCourtType выбирает тип корта; выбранным становится первый корт типа
func (s *Session) SelectCourtType(ctx context.Context, typeID int64) error {
	s.mu.Lock()
	s.selectedType = typeID
	s.selectedCourt = 0
	s.schedule = nil
	if filtered := domain.FilterAvailableCourts(s.courts, typeID); len(filtered) > 0 {
		s.selectedCourt = filtered[0].ID
	}
	hasCourt := s.selectedCourt != 0
	s.mu.Unlock()

	if !hasCourt {
		return nil
	}
	return s.Refresh(ctx)
}

// SelectCourt выбирает корт среди доступных
func (s *Session) SelectCourt(ctx context.Context, courtID int64) error {
	s.mu.Lock()
	found := false
	for _, c := range s.courts {
		if c.ID == courtID {
			found = true
			break
		}
	}
	if !found {
		s.mu.Unlock()
		return ErrCourtNotFound
	}
	s.selectedCourt = courtID
	s.mu.Unlock()

	return s.Refresh(ctx)
}

// SelectDate делает выбранную дату новой опорной: текущей становится её неделя
func (s *Session) SelectDate(ctx context.Context, date time.Time) error {
	s.mu.Lock()
	s.anchor = date
	s.mu.Unlock()
	return s.Refresh(ctx)
}

// NextWeek сдвигает опорную дату ровно на 7 дней вперед (день недели сохраняется)
func (s *Session) NextWeek(ctx context.Context) error {
	s.mu.Lock()
	s.anchor = s.anchor.AddDate(0, 0, 7)
	s.mu.Unlock()
	return s.Refresh(ctx)
}

// PrevWeek сдвигает опорную дату ровно на 7 дней назад
func (s *Session) PrevWeek(ctx context.Context) error {
	s.mu.Lock()
	s.anchor = s.anchor.AddDate(0, 0, -7)
	s.mu.Unlock()
	return s.Refresh(ctx)
}

// Refresh перечитывает расписание текущей пары (корт, неделя).
// Запрос помечается номером и параметрами, для которых он был выпущен;
// завершение, которое больше не соответствует актуальной паре, отбрасывается —
// устаревший ответ не может затереть состояние новой пары. При неуспехе
// сетка сбрасывается в пустую, а не остается от прошлой недели.
func (s *Session) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if s.selectedCourt == 0 {
		s.schedule = nil
		s.mu.Unlock()
		return ErrNoCourtSelected
	}
	s.fetchSeq++
	seq := s.fetchSeq
	courtID := s.selectedCourt
	anchor := s.anchor
	s.mu.Unlock()

	resp, err := s.weekUC.Execute(ctx, &getWeekSchedule.Request{
		CourtID: courtID,
		Anchor:  anchor,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.fetchSeq || courtID != s.selectedCourt || !anchor.Equal(s.anchor) {
		s.logger.Info("Session.Refresh: discarding stale fetch: court=%d, anchor=%s",
			courtID, anchor.Format(domain.DateFormat))
		return nil
	}

	if err != nil {
		s.schedule = nil
		s.logger.Warn("Session.Refresh: fetch failed, schedule reset: court=%d: %v", courtID, err)
		return err
	}

	s.schedule = resp
	return nil
}

// OccupantAt возвращает бронирование, занимающее ячейку, либо nil.
// Используется для перехода к карточке бронирования по клику на занятый слот.
func (s *Session) OccupantAt(date string, start types.TimeString) *domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.schedule == nil {
		return nil
	}
	if cell := s.schedule.CellAt(date, start); cell != nil {
		return cell.Booking
	}
	return nil
}

// OpenDraft открывает черновик быстрого бронирования на пустом слоте.
// Клик по занятому слоту черновик не открывает (ErrSlotOccupied).
// Ключ идемпотентности выпускается при открытии и живет до закрытия черновика.
func (s *Session) OpenDraft(date string, start types.TimeString) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.schedule == nil {
		return ErrNoCourtSelected
	}
	if s.draft != nil && s.draft.submitting {
		return ErrSubmissionInFlight
	}

	cell := s.schedule.CellAt(date, start)
	if cell == nil {
		return ErrUnknownSlot
	}
	if cell.Booking != nil {
		return ErrSlotOccupied
	}

	s.draft = &draftState{
		target: domain.SlotRef{
			CourtID:   s.schedule.CourtID,
			Date:      date,
			StartTime: cell.Slot.StartTime,
			EndTime:   cell.Slot.EndTime,
		},
		idempotencyKey: uuid.NewString(),
	}

	s.logger.Info("Session.OpenDraft: court=%d, date=%s, slot=%s-%s",
		s.schedule.CourtID, date, cell.Slot.StartTime, cell.Slot.EndTime)
	return nil
}

// UpdateDraft заменяет поля формы открытого черновика
func (s *Session) UpdateDraft(form domain.BookingDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return ErrDraftNotOpen
	}
	if s.draft.submitting {
		return ErrSubmissionInFlight
	}
	s.draft.form = form
	return nil
}

// CloseDraft отбрасывает черновик без отправки
func (s *Session) CloseDraft() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return ErrDraftNotOpen
	}
	if s.draft.submitting {
		return ErrSubmissionInFlight
	}
	s.draft = nil
	return nil
}

// Submit отправляет открытый черновик.
// Пока отправка выполняется, повторная невозможна (ErrSubmissionInFlight).
// При успехе черновик закрывается и запускается рефреш — это единственный
// механизм консистентности, оптимистичной локальной вставки нет.
// При отказе черновик сохраняется вместе с текстом ошибки для исправления.
func (s *Session) Submit(ctx context.Context) (*domain.Booking, error) {
	s.mu.Lock()
	if s.draft == nil {
		s.mu.Unlock()
		return nil, ErrDraftNotOpen
	}
	if s.draft.submitting {
		s.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	s.draft.submitting = true
	req := &createBooking.Request{
		Target:         s.draft.target,
		Draft:          s.draft.form,
		IdempotencyKey: s.draft.idempotencyKey,
	}
	s.mu.Unlock()

	resp, err := s.createUC.Execute(ctx, req)

	s.mu.Lock()
	if err != nil {
		if s.draft != nil {
			s.draft.submitting = false
			s.draft.lastError = submissionErrorText(err)
		}
		s.mu.Unlock()
		return nil, err
	}
	s.draft = nil
	s.mu.Unlock()

	// Сетка отражает нового занимающего только после рефреша
	if rerr := s.Refresh(ctx); rerr != nil {
		s.logger.Warn("Session.Submit: post-submit refresh failed: %v", rerr)
	}

	return resp.Booking, nil
}

// Initialized сообщает, прошла ли начальная загрузка каталога
func (s *Session) Initialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized
}

// CourtTypes возвращает загруженные типы кортов
func (s *Session) CourtTypes() []domain.CourtType {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.courtTypes
}

// FilteredCourts возвращает доступные корты выбранного типа
func (s *Session) FilteredCourts() []domain.Court {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.FilterAvailableCourts(s.courts, s.selectedType)
}

// SelectedCourtType возвращает ID выбранного типа корта (0 — не выбран)
func (s *Session) SelectedCourtType() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedType
}

// SelectedCourt возвращает ID выбранного корта (0 — не выбран)
func (s *Session) SelectedCourt() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedCourt
}

// Week возвращает текущее окно недели
func (s *Session) Week() domain.WeekWindow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.NewWeekWindow(s.anchor)
}

// Schedule возвращает текущую сетку (nil — пустая)
func (s *Session) Schedule() *getWeekSchedule.Response {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.schedule
}

// Draft возвращает снимок открытого черновика, либо nil
func (s *Session) Draft() *DraftView {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return nil
	}
	return &DraftView{
		Target:     s.draft.target,
		Form:       s.draft.form,
		Submitting: s.draft.submitting,
		LastError:  s.draft.lastError,
	}
}

// submissionErrorText извлекает текст для показа оператору:
// сообщения платформы — дословно, одной строкой
func submissionErrorText(err error) string {
	var apiErr *courtservice.APIError
	if errors.As(err, &apiErr) {
		return apiErr.JoinedMessage()
	}
	return err.Error()
}
