package phone

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/jackyeh168/idcheck/src/internal/domain/digits"
)

// CountryCode 印尼國碼（標準形式前綴）
const CountryCode = "+62"

// 印尼電話號碼格式（輸入已去除空白）
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(\+62|62|0)8[1-9][0-9]{6,9}$`), // 手機
	regexp.MustCompile(`^(\+62|62|0)2[1-9][0-9]{6,8}$`), // 市話
	regexp.MustCompile(`^(\+62|62|0)4[1-9][0-9]{6,8}$`), // 部分市話
	regexp.MustCompile(`^8[1-9][0-9]{6,9}$`),            // 手機（無前綴）
}

// prefixPattern 開頭的國碼或長途冠碼，只移除一次
var prefixPattern = regexp.MustCompile(`^(\+62|62|0)`)

// IsValid 驗證印尼電話號碼
func IsValid(input string) bool {
	clean := digits.Strip(input)
	for _, pattern := range phonePatterns {
		if pattern.MatchString(clean) {
			return true
		}
	}
	return false
}

// Format 轉為 +62 開頭的形式
//
// 不做驗證：任何輸入都會得到 +62 前綴的字串，結果不一定是有效號碼
func Format(input string) string {
	return CountryCode + subscriber(input)
}

// subscriber 去除空白與一次前綴後的號碼
func subscriber(input string) string {
	return prefixPattern.ReplaceAllString(digits.Strip(input), "")
}

// WhatsAppLink 產生 wa.me 連結，message 為空時不帶 text 參數
func WhatsAppLink(input, message string) string {
	return deepLink("https://wa.me/", input, message)
}

// TelegramLink 產生 t.me 連結，message 為空時不帶 text 參數
func TelegramLink(input, message string) string {
	return deepLink("https://t.me/", input, message)
}

func deepLink(base, input, message string) string {
	link := base + "62" + subscriber(input)
	if message == "" {
		return link
	}
	// 空白編碼為 %20 而非 +
	return link + "?text=" + strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
}
