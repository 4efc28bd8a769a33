package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/courtservice"
)

// UseCase use case быстрого бронирования: валидация черновика и отправка на платформу
type UseCase struct {
	courtClient CourtServiceClient
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client CourtServiceClient, logger Logger) *UseCase {
	return &UseCase{
		courtClient: client,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования.
// При отказе платформы возвращает *courtservice.APIError с её сообщениями
// дословно; локальное состояние не меняется, черновик остается у вызывающего.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: court=%d, date=%s, slot=%s-%s",
		req.Target.CourtID, req.Target.Date, req.Target.StartTime, req.Target.EndTime)

	// 1. Валидация целевого слота
	if err := validateTarget(req.Target); err != nil {
		uc.logger.Warn("CreateBooking: target validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация и нормализация черновика (имя, телефон, email, заметки)
	draft, err := normalizeDraft(req.Draft)
	if err != nil {
		uc.logger.Warn("CreateBooking: draft validation failed: %v", err)
		return nil, err
	}

	// 3. Собираем payload создания; быстрый путь поддерживает только оплату наличными
	payload := buildPayload(req.Target, draft)

	// 4. Отправляем на платформу (одна попытка, без ретраев)
	booking, err := uc.courtClient.CreateBooking(ctx, payload, req.IdempotencyKey)
	if err != nil {
		var apiErr *courtservice.APIError
		if errors.As(err, &apiErr) {
			uc.logger.Warn("CreateBooking: rejected by platform: court=%d, status=%d, message=%q",
				req.Target.CourtID, apiErr.StatusCode, apiErr.JoinedMessage())
			return nil, err
		}
		uc.logger.Error("CreateBooking: submission failed: court=%d: %v", req.Target.CourtID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d for court=%d",
		booking.ID, booking.CourtID)

	return &Response{Booking: booking}, nil
}

// buildPayload собирает payload платформы из валидированных данных
func buildPayload(target domain.SlotRef, draft domain.BookingDraft) *courtservice.CreateBookingRequest {
	return &courtservice.CreateBookingRequest{
		CourtID:       target.CourtID,
		Date:          target.Date,
		StartTime:     target.StartTime.String(),
		EndTime:       target.EndTime.String(),
		RenterName:    draft.CustomerName,
		RenterPhone:   draft.CustomerPhone,
		RenterEmail:   draft.CustomerEmail,
		Notes:         draft.Notes,
		PaymentMethod: domain.PaymentMethodCash,
	}
}
