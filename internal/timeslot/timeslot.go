// Package timeslot разбирает текстовые диапазоны времени из каталога слотов
// и из сохранённых заявок. Слоты хранятся строками вида
// "07:00 AM - 09:00 AM"; исторические записи встречаются и в других форматах
// ("7:00 AM", "07:00", "7 PM"), поэтому разбор терпимый.
package timeslot

import (
	"strings"
	"time"
)

// Порядок имеет значение: первый подошедший layout выигрывает.
var layouts = []string{
	"3:04 PM",
	"15:04",
	"3 PM",
	"15",
}

// Range — полуинтервал [Start, End) в минутах от полуночи.
type Range struct {
	Start int
	End   int
}

// Overlaps — пересечение полуинтервалов; касание границ пересечением не считается.
func (r Range) Overlaps(other Range) bool {
	return r.Start < other.End && other.Start < r.End
}

// ParseEndpoint нормализует одну границу диапазона в минуты от полуночи.
func ParseEndpoint(s string) (int, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0, false
	}

	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return t.Hour()*60 + t.Minute(), true
	}

	return 0, false
}

// ParseRange разбирает строку слота "start - end". Строка без разделителя или
// с нечитаемой границей не даёт диапазона: такая запись намеренно не
// накладывает ограничений и никогда не помечает слот занятым.
func ParseRange(s string) (Range, bool) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return Range{}, false
	}

	start, ok := ParseEndpoint(parts[0])
	if !ok {
		return Range{}, false
	}
	end, ok := ParseEndpoint(parts[1])
	if !ok {
		return Range{}, false
	}

	return Range{Start: start, End: end}, true
}

// AnyOverlaps сообщает, пересекает ли слот хотя бы один из диапазонов booked.
// Нечитаемые строки из booked молча пропускаются.
func AnyOverlaps(slot Range, booked []string) bool {
	for _, s := range booked {
		r, ok := ParseRange(s)
		if !ok {
			continue
		}
		if slot.Overlaps(r) {
			return true
		}
	}
	return false
}

// InCatalog проверяет точное совпадение строки слота с каталогом.
func InCatalog(slot string, catalog []string) bool {
	for _, s := range catalog {
		if s == slot {
			return true
		}
	}
	return false
}
