package create_booking

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

var (
	// Телефон: ровно 10 цифр, начинается с 0
	phoneRegexp = regexp.MustCompile(`^0\d{9}$`)

	// Email: local@domain.tld, без пробелов и лишних @, в домене есть точка
	emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// validateTarget валидирует целевой слот запроса
func validateTarget(target domain.SlotRef) error {
	if target.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	if _, err := time.Parse(domain.DateFormat, target.Date); err != nil {
		return fmt.Errorf("%w: invalid date %q", ErrInvalidInput, target.Date)
	}

	if err := target.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}
	if err := target.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid end time: %v", ErrInvalidInput, err)
	}
	if !target.StartTime.IsBefore(target.EndTime) {
		return fmt.Errorf("%w: start time must be before end time", ErrInvalidInput)
	}

	return nil
}

// normalizeDraft валидирует черновик и приводит его к отправляемой форме.
// Проверки идут по порядку и останавливаются на первой ошибке; каждая ошибка —
// отдельный sentinel, блокирующий отправку. Пустой email заменяется гостевым
// плейсхолдером, заметки передаются обрезанными.
func normalizeDraft(draft domain.BookingDraft) (domain.BookingDraft, error) {
	name := strings.TrimSpace(draft.CustomerName)
	if name == "" {
		return domain.BookingDraft{}, ErrMissingCustomerName
	}

	phone := strings.TrimSpace(draft.CustomerPhone)
	if phone == "" {
		return domain.BookingDraft{}, ErrMissingCustomerPhone
	}
	if !phoneRegexp.MatchString(phone) {
		return domain.BookingDraft{}, ErrInvalidCustomerPhone
	}

	email := strings.TrimSpace(draft.CustomerEmail)
	if email == "" {
		email = domain.GuestCustomerEmail
	} else if !emailRegexp.MatchString(email) {
		return domain.BookingDraft{}, ErrInvalidCustomerEmail
	}

	return domain.BookingDraft{
		CustomerName:  name,
		CustomerPhone: phone,
		CustomerEmail: email,
		Notes:         strings.TrimSpace(draft.Notes),
	}, nil
}
