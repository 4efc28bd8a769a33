package domain

import "time"

// WeekWindow 7 последовательных календарных дат с понедельника по воскресенье,
// построенных от опорной даты. Не хранится, пересчитывается при смене опоры.
type WeekWindow struct {
	Anchor time.Time
	Days   [7]time.Time
}

// NewWeekWindow строит неделю, содержащую опорную дату.
// Календарная арифметика делегирована time.AddDate, корректна на границах
// месяцев и лет и в високосные годы.
func NewWeekWindow(anchor time.Time) WeekWindow {
	anchor = time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, anchor.Location())

	// time.Weekday: воскресенье = 0, нам нужен понедельник как начало недели
	offset := (int(anchor.Weekday()) + 6) % 7
	monday := anchor.AddDate(0, 0, -offset)

	var w WeekWindow
	w.Anchor = anchor
	for i := range w.Days {
		w.Days[i] = monday.AddDate(0, 0, i)
	}
	return w
}

// Next returns the window anchored exactly 7 days later (day-of-week preserved).
func (w WeekWindow) Next() WeekWindow {
	return NewWeekWindow(w.Anchor.AddDate(0, 0, 7))
}

// Prev returns the window anchored exactly 7 days earlier.
func (w WeekWindow) Prev() WeekWindow {
	return NewWeekWindow(w.Anchor.AddDate(0, 0, -7))
}

// StartDate returns the ISO date of the window's Monday.
func (w WeekWindow) StartDate() string {
	return w.Days[0].Format(DateFormat)
}

// EndDate returns the ISO date of the window's Sunday.
func (w WeekWindow) EndDate() string {
	return w.Days[6].Format(DateFormat)
}

// Contains reports whether the given date falls inside the window.
func (w WeekWindow) Contains(date time.Time) bool {
	d := date.Format(DateFormat)
	return d >= w.StartDate() && d <= w.EndDate()
}
