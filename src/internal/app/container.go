// Package app 組裝應用程式元件（依賴注入容器）
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"gorm.io/gorm"

	appcurrency "github.com/jackyeh168/idcheck/src/internal/application/currency"
	appverification "github.com/jackyeh168/idcheck/src/internal/application/verification"
	"github.com/jackyeh168/idcheck/src/internal/config"
	"github.com/jackyeh168/idcheck/src/internal/domain/locale"
	"github.com/jackyeh168/idcheck/src/internal/domain/shared"
	"github.com/jackyeh168/idcheck/src/internal/domain/verification"
	"github.com/jackyeh168/idcheck/src/internal/infrastructure/persistence"
	verificationrepo "github.com/jackyeh168/idcheck/src/internal/infrastructure/persistence/verification"
)

var errContainerClosed = errors.New("container is shut down")

// Container 延遲初始化的依賴容器，每個元件第一次取用時才建立
type Container struct {
	config *config.Config

	logger    *slog.Logger
	db        *gorm.DB
	txManager shared.TransactionManager
	repo      verification.Repository

	verifyDocument    appverification.VerifyDocumentUseCase
	getVerification   appverification.GetVerificationUseCase
	listVerifications appverification.ListVerificationsUseCase
	normalizeAmount   appcurrency.NormalizeAmountUseCase

	mu                    sync.Mutex
	closed                bool
	loggerInit            sync.Once
	normalizeAmountInit   sync.Once
	dbInit                sync.Once
	verifyDocumentInit    sync.Once
	getVerificationInit   sync.Once
	listVerificationsInit sync.Once
	dbErr                 error
	verifyDocumentErr     error
	getVerificationErr    error
	listVerificationsErr  error
}

// NewContainer 創建容器
func NewContainer(cfg *config.Config) *Container {
	return &Container{config: cfg}
}

// Config 取得設定
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger 依 LOG_LEVEL 建立 JSON 日誌（stdout）
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: parseLogLevel(c.config.LogLevel),
		}))
	})
	return c.logger
}

// Locale 依 LOCALE_* 設定組出的貨幣格式
func (c *Container) Locale() locale.Locale {
	return c.config.Locale()
}

// NormalizeAmountUseCase 取得金額解析 Use Case（不需要資料庫）
func (c *Container) NormalizeAmountUseCase() appcurrency.NormalizeAmountUseCase {
	c.normalizeAmountInit.Do(func() {
		c.normalizeAmount = appcurrency.NewNormalizeAmountUseCase(c.Locale())
	})
	return c.normalizeAmount
}

// DB 開啟資料庫並建立資料表，同時準備交易管理器與 Repository
func (c *Container) DB() (*gorm.DB, error) {
	if c.isClosed() {
		return nil, errContainerClosed
	}
	c.dbInit.Do(func() {
		db, err := persistence.OpenDatabase(persistence.DatabaseOptions{
			ConnectionString:   c.config.DBConnectionString,
			MaxOpenConnections: c.config.DBMaxOpenConnections,
			LogLevel:           c.config.DBLogLevel,
		})
		if err != nil {
			c.dbErr = fmt.Errorf("failed to connect to database: %w", err)
			return
		}
		if err := verificationrepo.AutoMigrate(db); err != nil {
			_ = persistence.CloseDatabase(db)
			c.dbErr = fmt.Errorf("failed to migrate database: %w", err)
			return
		}

		c.mu.Lock()
		c.db = db
		c.mu.Unlock()
		c.txManager = persistence.NewGORMTransactionManager(db)
		c.repo = verificationrepo.NewRepository(db)
	})
	if c.dbErr != nil {
		return nil, c.dbErr
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, errContainerClosed
	}
	return c.db, nil
}

func (c *Container) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// VerifyDocumentUseCase 取得證件檢查 Use Case
func (c *Container) VerifyDocumentUseCase() (appverification.VerifyDocumentUseCase, error) {
	if c.isClosed() {
		return nil, errContainerClosed
	}
	c.verifyDocumentInit.Do(func() {
		if _, err := c.DB(); err != nil {
			c.verifyDocumentErr = fmt.Errorf("failed to get database for verify document use case: %w", err)
			return
		}
		c.verifyDocument = appverification.NewVerifyDocumentUseCase(c.repo, c.txManager, c.Logger())
	})
	if c.verifyDocumentErr != nil {
		return nil, c.verifyDocumentErr
	}
	return c.verifyDocument, nil
}

// GetVerificationUseCase 取得單筆查詢 Use Case
func (c *Container) GetVerificationUseCase() (appverification.GetVerificationUseCase, error) {
	if c.isClosed() {
		return nil, errContainerClosed
	}
	c.getVerificationInit.Do(func() {
		if _, err := c.DB(); err != nil {
			c.getVerificationErr = fmt.Errorf("failed to get database for get verification use case: %w", err)
			return
		}
		c.getVerification = appverification.NewGetVerificationUseCase(c.repo)
	})
	if c.getVerificationErr != nil {
		return nil, c.getVerificationErr
	}
	return c.getVerification, nil
}

// ListVerificationsUseCase 取得列表 Use Case
func (c *Container) ListVerificationsUseCase() (appverification.ListVerificationsUseCase, error) {
	if c.isClosed() {
		return nil, errContainerClosed
	}
	c.listVerificationsInit.Do(func() {
		if _, err := c.DB(); err != nil {
			c.listVerificationsErr = fmt.Errorf("failed to get database for list verifications use case: %w", err)
			return
		}
		c.listVerifications = appverification.NewListVerificationsUseCase(c.repo, c.config.VerificationListLimit)
	})
	if c.listVerificationsErr != nil {
		return nil, c.listVerificationsErr
	}
	return c.listVerifications, nil
}

// Shutdown 關閉已開啟的資源，可重複呼叫
//
// 關閉後所有需要資料庫的 getter 回傳 errContainerClosed；
// 關閉前已取得的 Use Case 仍持有原連線，之後的 Execute 會回傳資料庫已關閉的錯誤
func (c *Container) Shutdown() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	if c.db == nil {
		return nil
	}
	if err := persistence.CloseDatabase(c.db); err != nil {
		return fmt.Errorf("database close: %w", err)
	}
	c.db = nil
	return nil
}

func parseLogLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
