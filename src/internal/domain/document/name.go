package document

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ===========================
// 姓名（Nama）
// ===========================

// 名字前的稱謂，只在第一個字時套用
var namePrefixes = map[string]string{
	"dr":    "Dr.",
	"dr.":   "Dr.",
	"prof":  "Prof.",
	"prof.": "Prof.",
	"ir":    "Ir.",
	"ir.":   "Ir.",
	"s.e":   "S.E.",
	"s.e.":  "S.E.",
	"s.h":   "S.H.",
	"s.h.":  "S.H.",
}

// 名字後的學位，只在最後一個字時套用
var nameSuffixes = map[string]string{
	"s.e":  "S.E.",
	"s.e.": "S.E.",
	"s.h":  "S.H.",
	"s.h.": "S.H.",
	"m.m":  "M.M.",
	"m.m.": "M.M.",
	"mba":  "MBA",
	"mba.": "MBA",
}

// FormatName 印尼姓名轉為首字母大寫，稱謂與學位使用標準寫法
//
// 以單一空白切字，連續空白保留原樣
//
//	FormatName("dr budi santoso s.h") == "Dr. Budi Santoso S.H."
func FormatName(name string) string {
	words := strings.Split(strings.ToLower(name), " ")
	last := len(words) - 1

	for i, word := range words {
		if i == 0 {
			if title, ok := namePrefixes[word]; ok {
				words[i] = title
				continue
			}
		}
		if i == last {
			if degree, ok := nameSuffixes[word]; ok {
				words[i] = degree
				continue
			}
		}
		words[i] = capitalize(word)
	}
	return strings.Join(words, " ")
}

func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if size == 0 {
		return word
	}
	return string(unicode.ToUpper(r)) + word[size:]
}
