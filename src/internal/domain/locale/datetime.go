package locale

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ===========================
// 日期 DD/MM/YYYY
// ===========================

var datePattern = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)

// ParseDate 解析 DD/MM/YYYY，回傳 UTC 午夜
//
// 日期必須真實存在：32/12/2023、29/02/2023 等會被月曆進位的輸入回傳 false。
// 年份小於 100 一律拒絕。
func ParseDate(input string) (time.Time, bool) {
	m := datePattern.FindStringSubmatch(input)
	if m == nil {
		return time.Time{}, false
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	if year < 100 {
		return time.Time{}, false
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || int(date.Month()) != month || date.Day() != day {
		return time.Time{}, false
	}
	return date, true
}

// FormatDate 輸出 DD/MM/YYYY（日、月補零）
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%02d/%02d/%d", t.Day(), int(t.Month()), t.Year())
}

// ===========================
// 時間
// ===========================

var (
	// 時間與 AM/PM 之間允許 Unicode 空白（含 U+00A0、U+202F）
	time12Pattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})[\s\p{Zs}\x{2028}\x{2029}\x{FEFF}]*((?i:am|pm))?$`)
	time24Pattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
)

// ParseTime 轉為 24 小時制 HH:MM
//
//	"2:30 PM" → "14:30"
//	"12:00 am" → "00:00"
//	"9:05"    → "09:05"
//
// 不符合格式時原樣回傳。時數不檢查範圍。
func ParseTime(input string) string {
	m := time12Pattern.FindStringSubmatch(input)
	if m == nil {
		return input
	}

	hour, _ := strconv.Atoi(m[1])
	switch strings.ToUpper(m[3]) {
	case "PM":
		if hour != 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}
	return fmt.Sprintf("%02d:%s", hour, m[2])
}

// FormatTime 將 HH:MM 轉為 12 小時制 "H:MM AM|PM"，use12Hour 為 false 時輸出補零的 24 小時制
//
// 不符合格式時原樣回傳。
func FormatTime(input string, use12Hour bool) string {
	m := time24Pattern.FindStringSubmatch(input)
	if m == nil {
		return input
	}

	hour, _ := strconv.Atoi(m[1])
	if !use12Hour {
		return fmt.Sprintf("%02d:%s", hour, m[2])
	}

	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	if hour > 12 {
		hour -= 12
	}
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%s %s", hour, m[2], period)
}
