package ktp

import (
	"fmt"
	"regexp"

	"github.com/jackyeh168/idcheck/src/internal/domain/digits"
)

// ===========================
// KTP (NIK) 定位式編碼
// ===========================

// Length KTP 號碼長度
const Length = 16

// femaleDayOffset 女性出生日 +40
const femaleDayOffset = 40

// KTP 欄位配置（0-based offset）
//
//	PP RR DD dd MM YY SSSS
//	│  │  │  │  │  │  └ sequence  (12-15) 1..9999
//	│  │  │  │  │  └── year      (10-11) 00..99，世紀不明
//	│  │  │  │  └───── month     (8-9)   1..12
//	│  │  │  └──────── day       (6-7)   1..31 男 / 41..71 女
//	│  │  └─────────── district  (4-5)   1..99
//	│  └────────────── regency   (2-3)   1..99
//	└───────────────── province  (0-1)   11..99
var (
	fieldProvince = digits.Field{Name: "province", Offset: 0, Width: 2}
	fieldRegency  = digits.Field{Name: "regency", Offset: 2, Width: 2}
	fieldDistrict = digits.Field{Name: "district", Offset: 4, Width: 2}
	fieldDay      = digits.Field{Name: "day", Offset: 6, Width: 2}
	fieldMonth    = digits.Field{Name: "month", Offset: 8, Width: 2}
	fieldYear     = digits.Field{Name: "year", Offset: 10, Width: 2}
	fieldSequence = digits.Field{Name: "sequence", Offset: 12, Width: 4}
)

var ktpPattern = regexp.MustCompile(`^\d{16}$`)

// Gender 由出生日欄位推得的性別
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Identity 解碼後的 KTP 內容
//
// BirthDate 格式為 DD/MM/YY（兩位數年份，世紀不明）
type Identity struct {
	ProvinceCode string
	CityCode     string
	DistrictCode string
	BirthDate    string
	Gender       Gender
	RandomDigits string
}

// ProvinceName 省份名稱（查表）
func (i Identity) ProvinceName() (string, bool) {
	return ProvinceName(i.ProvinceCode)
}

// fields 通過驗證的欄位值
type fields struct {
	province int
	regency  int
	district int
	rawDay   int
	day      int
	month    int
	year     int
	sequence int
}

// decode 逐欄位檢查，任一欄位失敗即回傳 false
//
// 出生日欄位同時編碼「日」與「性別」：41..71 代表女性，需減 40 還原日期。
// 這是 KTP 的既有規則，不是資料錯誤。
func decode(clean string) (fields, bool) {
	if !ktpPattern.MatchString(clean) {
		return fields{}, false
	}

	var f fields
	var ok bool

	if f.province, ok = fieldProvince.Int(clean); !ok || f.province < 11 || f.province > 99 {
		return fields{}, false
	}
	if f.regency, ok = fieldRegency.Int(clean); !ok || f.regency < 1 || f.regency > 99 {
		return fields{}, false
	}
	if f.district, ok = fieldDistrict.Int(clean); !ok || f.district < 1 || f.district > 99 {
		return fields{}, false
	}

	if f.rawDay, ok = fieldDay.Int(clean); !ok {
		return fields{}, false
	}
	f.day = f.rawDay
	if f.day >= 41 && f.day <= 71 {
		f.day -= femaleDayOffset
	}
	if f.day < 1 || f.day > 31 {
		return fields{}, false
	}

	if f.month, ok = fieldMonth.Int(clean); !ok || f.month < 1 || f.month > 12 {
		return fields{}, false
	}
	if f.year, ok = fieldYear.Int(clean); !ok || f.year < 0 || f.year > 99 {
		return fields{}, false
	}
	if f.sequence, ok = fieldSequence.Int(clean); !ok || f.sequence < 1 || f.sequence > 9999 {
		return fields{}, false
	}

	return f, true
}

// IsValid 驗證 KTP 號碼（忽略空白）
//
// 只檢查結構（各欄位範圍），不檢查日曆合法性，例如 31/02 仍視為有效
func IsValid(input string) bool {
	_, ok := decode(digits.Strip(input))
	return ok
}

// Parse 解碼 KTP 號碼；無效時回傳 (Identity{}, false)
//
// 性別依還原後的日期奇偶判斷：奇數為 male，偶數為 female。
// 因為偏移量 40 為偶數，與原始欄位奇偶一致。
func Parse(input string) (Identity, bool) {
	clean := digits.Strip(input)
	f, ok := decode(clean)
	if !ok {
		return Identity{}, false
	}

	gender := GenderFemale
	if f.day%2 == 1 {
		gender = GenderMale
	}

	return Identity{
		ProvinceCode: fieldProvince.Slice(clean),
		CityCode:     fieldRegency.Slice(clean),
		DistrictCode: fieldDistrict.Slice(clean),
		BirthDate:    fmt.Sprintf("%02d/%s/%s", f.day, fieldMonth.Slice(clean), fieldYear.Slice(clean)),
		Gender:       gender,
		RandomDigits: fieldSequence.Slice(clean),
	}, true
}

// Mask 僅顯示最後 4 碼；清除空白後長度不是 16 時原樣回傳
func Mask(input string) string {
	clean := digits.Strip(input)
	if len([]rune(clean)) != Length {
		return input
	}
	return digits.MaskTail(clean, 4)
}
