package game

type Calendar struct {
	Holiday bool `json:"holiday"`
}

// Day kinds used by the day clock.
const (
	DayWorking = 0
	DaySunday  = 1
	DayHoliday = 2
)

// CalendarFromDayKind maps the clock's day kind onto a Calendar. Only public
// holidays close the shop; Sundays do not.
func CalendarFromDayKind(kind int) Calendar {
	return Calendar{Holiday: kind == DayHoliday}
}

func IsOpenForBusiness(cal Calendar) bool {
	return !cal.Holiday
}
