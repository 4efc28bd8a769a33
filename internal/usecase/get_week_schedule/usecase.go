package get_week_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	courtClient "github.com/m04kA/SMC-ScheduleService/internal/integrations/courtservice"
)

// UseCase use case построения недельной сетки занятости корта
type UseCase struct {
	courtClient  CourtServiceClient
	openHour     int
	closeHour    int
	slotDuration int
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// Геометрия сетки (часы работы, шаг слота) — константа деплоя из конфигурации.
func NewUseCase(client CourtServiceClient, openHour, closeHour, slotDurationMinutes int, logger Logger) *UseCase {
	return &UseCase{
		courtClient:  client,
		openHour:     openHour,
		closeHour:    closeHour,
		slotDuration: slotDurationMinutes,
		logger:       logger,
	}
}

// Execute выполняет use case получения недельного расписания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetWeekSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Вычисляем окно недели от опорной даты
	week := domain.NewWeekWindow(req.Anchor)

	uc.logger.Info("GetWeekSchedule: court=%d, week=%s..%s",
		req.CourtID, week.StartDate(), week.EndDate())

	// 3. Получаем бронирования корта за неделю (одна попытка, без ретраев)
	bookings, err := uc.courtClient.ListBookings(ctx, req.CourtID, week.StartDate(), week.EndDate())
	if err != nil {
		if errors.Is(err, courtClient.ErrUnauthorized) {
			uc.logger.Warn("GetWeekSchedule: unauthorized for court=%d", req.CourtID)
			return nil, ErrUnauthorized
		}
		uc.logger.Error("GetWeekSchedule: failed to list bookings for court=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: %v", ErrScheduleUnavailable, err)
	}

	// 4. Генерируем каталог слотов дня
	slots := generateTimeSlots(uc.openHour, uc.closeHour, uc.slotDuration)

	// 5. Раскладываем брони по ячейкам сетки
	resp := &Response{
		CourtID:  req.CourtID,
		Week:     week,
		Slots:    slots,
		Bookings: bookings,
	}
	for i, day := range week.Days {
		resp.Days[i] = buildDay(day.Format(domain.DateFormat), slots, bookings)
	}

	uc.logger.Info("GetWeekSchedule: court=%d, week=%s..%s, bookings=%d, slots=%d",
		req.CourtID, week.StartDate(), week.EndDate(), len(bookings), len(slots))

	return resp, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}
	if req.Anchor.IsZero() {
		return fmt.Errorf("%w: anchor date is required", ErrInvalidInput)
	}
	return nil
}
