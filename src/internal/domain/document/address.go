package document

import (
	"regexp"
	"strings"
)

// ===========================
// 地址（Alamat）
// ===========================

// addressAbbreviation 地址關鍵字與標準縮寫，原本帶的 "." 一併吸收
type addressAbbreviation struct {
	pattern *regexp.Regexp
	replace string
}

var (
	whitespaceRun = regexp.MustCompile(`\s+`)

	addressAbbreviations = []addressAbbreviation{
		{regexp.MustCompile(`(?i)\b(?:jl|jalan)\b\.?`), "Jl."},
		{regexp.MustCompile(`(?i)\b(?:no|nomor)\b\.?`), "No."},
		{regexp.MustCompile(`(?i)\b(?:kel|kelurahan)\b\.?`), "Kel."},
		{regexp.MustCompile(`(?i)\b(?:kec|kecamatan)\b\.?`), "Kec."},
		{regexp.MustCompile(`(?i)\b(?:kab|kabupaten)\b\.?`), "Kab."},
		{regexp.MustCompile(`(?i)\b(?:prov|provinsi)\b\.?`), "Prov."},
	}

	neighbourhoodPattern = regexp.MustCompile(`(?i)\b(?:rt|rw)\b`)

	// "Jl. merdeka" → 街名首字母大寫
	streetNamePattern = regexp.MustCompile(`\bJl\. ([a-z])`)
)

// FormatAddress 標準化印尼地址
//
// 連續空白合併為一個；jalan/jl → "Jl."、nomor/no → "No."、
// kelurahan → "Kel."、kecamatan → "Kec."、kabupaten → "Kab."、provinsi → "Prov."；
// RT / RW 轉大寫；"Jl." 後的街名首字母大寫。其餘文字不變。
//
//	FormatAddress("jalan merdeka no 10 rt 01 rw 02") == "Jl. Merdeka No. 10 RT 01 RW 02"
func FormatAddress(address string) string {
	out := whitespaceRun.ReplaceAllString(address, " ")
	for _, a := range addressAbbreviations {
		out = a.pattern.ReplaceAllLiteralString(out, a.replace)
	}
	out = neighbourhoodPattern.ReplaceAllStringFunc(out, strings.ToUpper)
	out = streetNamePattern.ReplaceAllStringFunc(out, func(m string) string {
		last := len(m) - 1
		return m[:last] + strings.ToUpper(m[last:])
	})
	return strings.TrimSpace(out)
}
