package domain

// Court represents a bookable court of the facility
type Court struct {
	ID         int64
	Name       string
	TypeID     int64
	TypeName   string
	VenueName  string
	HourlyRate float64
	Status     string
}

// IsAvailable returns true if the court can be selected for booking
func (c *Court) IsAvailable() bool {
	return c.Status == CourtStatusAvailable
}

// CourtType категория кортов, используется только для фильтрации списка
type CourtType struct {
	ID          int64
	Name        string
	Description string
}

// FilterAvailableCourts возвращает корты указанного типа со статусом "available".
// Чистая функция от (courts, typeID); пересчитывается при каждом изменении входа.
func FilterAvailableCourts(courts []Court, typeID int64) []Court {
	filtered := make([]Court, 0, len(courts))
	for _, c := range courts {
		if c.TypeID == typeID && c.IsAvailable() {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
