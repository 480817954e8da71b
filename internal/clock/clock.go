package clock

import "time"

// Форматы дат исходного блога — строки, не timestamp'ы
const (
	PostDateLayout    = "January 2, 2006"
	CommentDateLayout = "3:04 PM Jan 02, 2006"
	BriefDateLayout   = "02 Jan 2006"
	LogDateLayout     = "2006-01-02"
)

// Блог всегда показывал время в IST
var ist = loadIST()

func loadIST() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(ist)
}

func PostDate(t time.Time) string {
	return t.In(ist).Format(PostDateLayout)
}

func CommentDate(t time.Time) string {
	return t.In(ist).Format(CommentDateLayout)
}

func BriefDate(t time.Time) string {
	return t.In(ist).Format(BriefDateLayout)
}

func LogDate(t time.Time) string {
	return t.In(ist).Format(LogDateLayout)
}

func Weekday(t time.Time) string {
	return t.In(ist).Format("Monday")
}
