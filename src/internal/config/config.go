// Package config 從環境變數與 .env 讀取應用程式設定
package config

import (
	"os"
	"path/filepath"

	"github.com/allisson/go-env"
	validation "github.com/jellydator/validation"
	"github.com/joho/godotenv"

	"github.com/jackyeh168/idcheck/src/internal/domain/locale"
)

// Config 應用程式設定
type Config struct {
	// 資料庫
	DBConnectionString   string
	DBMaxOpenConnections int
	DBLogLevel           string

	// 日誌
	LogLevel string

	// 貨幣格式
	LocaleCurrencySymbol   string
	LocaleGroupSeparator   string
	LocaleDecimalSeparator string
	LocaleFractionDigits   int

	// 驗證紀錄列表的預設筆數與上限
	VerificationListLimit int
}

// Load 讀取 .env 與環境變數，未設定的欄位使用預設值
func Load() *Config {
	loadDotEnv()

	return &Config{
		DBConnectionString:   env.GetString("DB_CONNECTION_STRING", "file:idcheck.db?_foreign_keys=on"),
		DBMaxOpenConnections: env.GetInt("DB_MAX_OPEN_CONNECTIONS", 1),
		DBLogLevel:           env.GetString("DB_LOG_LEVEL", "silent"),

		LogLevel: env.GetString("LOG_LEVEL", "info"),

		LocaleCurrencySymbol:   env.GetString("LOCALE_CURRENCY_SYMBOL", locale.Indonesian.CurrencySymbol),
		LocaleGroupSeparator:   env.GetString("LOCALE_GROUP_SEPARATOR", locale.Indonesian.GroupSeparator),
		LocaleDecimalSeparator: env.GetString("LOCALE_DECIMAL_SEPARATOR", locale.Indonesian.DecimalSeparator),
		LocaleFractionDigits:   env.GetInt("LOCALE_FRACTION_DIGITS", int(locale.Indonesian.FractionDigits)),

		VerificationListLimit: env.GetInt("VERIFICATION_LIST_LIMIT", 50),
	}
}

// Validate 檢查設定值
//
// 千分位與小數分隔符號必須不同，否則解析金額時無法區分
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.DBConnectionString, validation.Required),
		validation.Field(&c.DBMaxOpenConnections, validation.Min(1)),
		validation.Field(&c.DBLogLevel, validation.In("silent", "error", "warn", "info")),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.LocaleGroupSeparator, validation.Required),
		validation.Field(&c.LocaleDecimalSeparator,
			validation.Required,
			validation.NotIn(c.LocaleGroupSeparator).Error("must differ from the group separator"),
		),
		validation.Field(&c.LocaleFractionDigits, validation.Min(0), validation.Max(4)),
		validation.Field(&c.VerificationListLimit, validation.Min(1)),
	)
}

// Locale 以印尼盾為基礎，套用設定中的符號與分隔符號
func (c *Config) Locale() locale.Locale {
	l := locale.Indonesian
	l.CurrencySymbol = c.LocaleCurrencySymbol
	l.GroupSeparator = c.LocaleGroupSeparator
	l.DecimalSeparator = c.LocaleDecimalSeparator
	l.FractionDigits = int32(c.LocaleFractionDigits)
	return l
}

// loadDotEnv 從目前目錄往上尋找 .env，找到第一個就載入
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}
