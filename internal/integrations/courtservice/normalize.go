package courtservice

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// toDomainBooking нормализует сырую запись платформы в каноническую.
// Идентичность клиента разрешается по цепочке приоритетов:
// fullname привязанного аккаунта → username аккаунта → свободное поле → плейсхолдер гостя.
// Телефон и email разрешаются с тем же приоритетом привязанного аккаунта.
func toDomainBooking(raw *RawBooking) *domain.Booking {
	b := &domain.Booking{
		ID:            raw.BookingID,
		CourtID:       raw.CourtID,
		Date:          raw.Date,
		StartTime:     types.TimeString(raw.StartTime),
		EndTime:       types.TimeString(raw.EndTime),
		Status:        domain.BookingStatus(raw.Status),
		PaymentStatus: domain.PaymentPending,
		CustomerName:  resolveCustomerName(raw),
		CustomerPhone: resolveCustomerPhone(raw),
		CustomerEmail: resolveCustomerEmail(raw),
	}

	if raw.PaymentStatus != nil && *raw.PaymentStatus != "" {
		b.PaymentStatus = domain.PaymentStatus(*raw.PaymentStatus)
	}
	if raw.TotalAmount != nil {
		b.TotalAmount = *raw.TotalAmount
	}
	if raw.Notes != nil {
		b.Notes = *raw.Notes
	}

	return b
}

func resolveCustomerName(raw *RawBooking) string {
	if raw.User != nil {
		if raw.User.Fullname != nil && *raw.User.Fullname != "" {
			return *raw.User.Fullname
		}
		if raw.User.Username != "" {
			return raw.User.Username
		}
	}
	if raw.CustomerName != nil && *raw.CustomerName != "" {
		return *raw.CustomerName
	}
	return domain.GuestCustomerName
}

func resolveCustomerPhone(raw *RawBooking) string {
	if raw.User != nil && raw.User.Phone != nil && *raw.User.Phone != "" {
		return *raw.User.Phone
	}
	if raw.CustomerPhone != nil {
		return *raw.CustomerPhone
	}
	return ""
}

func resolveCustomerEmail(raw *RawBooking) string {
	if raw.User != nil && raw.User.Email != "" {
		return raw.User.Email
	}
	if raw.CustomerEmail != nil {
		return *raw.CustomerEmail
	}
	return ""
}

func toDomainCourt(dto CourtDTO) domain.Court {
	return domain.Court{
		ID:         dto.CourtID,
		Name:       dto.Name,
		TypeID:     dto.TypeID,
		TypeName:   dto.TypeName,
		VenueName:  dto.VenueName,
		HourlyRate: dto.HourlyRate,
		Status:     dto.Status,
	}
}

func toDomainCourtType(dto CourtTypeDTO) domain.CourtType {
	ct := domain.CourtType{
		ID:   dto.TypeID,
		Name: dto.Name,
	}
	if dto.Description != nil {
		ct.Description = *dto.Description
	}
	return ct
}
