package courtservice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

func rawBooking() *RawBooking {
	return &RawBooking{
		BookingID: 42,
		CourtID:   7,
		Date:      "2026-03-10",
		StartTime: "10:00",
		EndTime:   "11:00",
		Status:    "confirmed",
	}
}

func TestToDomainBooking_Defaults(t *testing.T) {
	b := toDomainBooking(rawBooking())

	assert.Equal(t, int64(42), b.ID)
	assert.Equal(t, domain.StatusConfirmed, b.Status)
	// Отсутствующие поля получают дефолты, а не нули статусов
	assert.Equal(t, domain.PaymentPending, b.PaymentStatus)
	assert.Zero(t, b.TotalAmount)
	assert.Empty(t, b.Notes)
}

func TestToDomainBooking_ExplicitFields(t *testing.T) {
	raw := rawBooking()
	raw.PaymentStatus = ptr.Ptr("paid")
	raw.TotalAmount = ptr.Ptr(250000.0)
	raw.Notes = ptr.Ptr("после работы")

	b := toDomainBooking(raw)

	assert.Equal(t, domain.PaymentPaid, b.PaymentStatus)
	assert.Equal(t, 250000.0, b.TotalAmount)
	assert.Equal(t, "после работы", b.Notes)
}

func TestResolveCustomerName_Precedence(t *testing.T) {
	tests := []struct {
		name string
		raw  func() *RawBooking
		want string
	}{
		{
			name: "fullname wins over everything",
			raw: func() *RawBooking {
				r := rawBooking()
				r.CustomerName = ptr.Ptr("Walk-in")
				r.User = &LinkedUser{Username: "nguyen", Fullname: ptr.Ptr("Nguyen Van A")}
				return r
			},
			want: "Nguyen Van A",
		},
		{
			name: "empty fullname falls back to username",
			raw: func() *RawBooking {
				r := rawBooking()
				r.CustomerName = ptr.Ptr("Walk-in")
				r.User = &LinkedUser{Username: "nguyen", Fullname: ptr.Ptr("")}
				return r
			},
			want: "nguyen",
		},
		{
			name: "no linked account uses free-text name",
			raw: func() *RawBooking {
				r := rawBooking()
				r.CustomerName = ptr.Ptr("Walk-in")
				return r
			},
			want: "Walk-in",
		},
		{
			name: "nothing at all uses guest placeholder",
			raw:  rawBooking,
			want: domain.GuestCustomerName,
		},
		{
			name: "empty free-text name uses guest placeholder",
			raw: func() *RawBooking {
				r := rawBooking()
				r.CustomerName = ptr.Ptr("")
				return r
			},
			want: domain.GuestCustomerName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, toDomainBooking(tt.raw()).CustomerName)
		})
	}
}

func TestResolveCustomerContacts(t *testing.T) {
	raw := rawBooking()
	raw.CustomerPhone = ptr.Ptr("0911111111")
	raw.CustomerEmail = ptr.Ptr("freetext@example.com")
	raw.User = &LinkedUser{
		Username: "nguyen",
		Email:    "linked@example.com",
		Phone:    ptr.Ptr("0922222222"),
	}

	b := toDomainBooking(raw)

	// Контакты привязанного аккаунта приоритетнее свободных полей
	assert.Equal(t, "0922222222", b.CustomerPhone)
	assert.Equal(t, "linked@example.com", b.CustomerEmail)

	raw.User = nil
	b = toDomainBooking(raw)
	assert.Equal(t, "0911111111", b.CustomerPhone)
	assert.Equal(t, "freetext@example.com", b.CustomerEmail)
}

func TestToDomainCourtType(t *testing.T) {
	ct := toDomainCourtType(CourtTypeDTO{TypeID: 3, Name: "Badminton"})
	assert.Equal(t, domain.CourtType{ID: 3, Name: "Badminton"}, ct)

	ct = toDomainCourtType(CourtTypeDTO{TypeID: 3, Name: "Badminton", Description: ptr.Ptr("indoor")})
	assert.Equal(t, "indoor", ct.Description)
}
