// Package db は各リポジトリ実装が使うgorm接続を開きます。
package db

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Config.Driver に指定できる値
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// retryInterval は接続リトライの間隔です。
var retryInterval = 3 * time.Second

// Config はデータベースへの接続情報です。
type Config struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	// Path はDriverがsqliteのときに使うファイル（または ":memory:"）
	Path string
	// Migrate が true なら接続後に登録モデルをAutoMigrateする
	Migrate bool
}

// Opener はDSNからgorm接続を開きます。テストでは差し替えます。
type Opener func(dsn string) (*gorm.DB, error)

// BuildDSN はcfgから接続文字列を組み立てます。
func BuildDSN(cfg Config) string {
	if cfg.Driver == DriverSQLite {
		return cfg.Path
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, cfg.SSLMode)
}

// gormConfig はドライバーエラーの変換を有効にし、重複キーを gorm.ErrDuplicatedKey として返します。
func gormConfig() *gorm.Config {
	return &gorm.Config{TranslateError: true}
}

// OpenerFor は設定されたドライバーに対応するOpenerを返します。
func OpenerFor(driver string) Opener {
	if driver == DriverSQLite {
		return func(dsn string) (*gorm.DB, error) {
			return gorm.Open(sqlite.Open(dsn), gormConfig())
		}
	}
	return func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.Open(dsn), gormConfig())
	}
}

// ConnectWithRetry は成功するかtimeoutを過ぎるまでopenerを呼び続けます。
func ConnectWithRetry(dsn string, timeout time.Duration, opener Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		slog.Warn("db connect failed, retrying", "error", err, "retry_in", retryInterval)
		time.Sleep(retryInterval)
	}
}

// Open はcfgで接続し、cfg.Migrate が true ならmodelsをマイグレーションします。
func Open(cfg Config, models ...any) (*gorm.DB, error) {
	db, err := ConnectWithRetry(BuildDSN(cfg), 60*time.Second, OpenerFor(cfg.Driver))
	if err != nil {
		return nil, err
	}
	if cfg.Driver == DriverSQLite {
		if err := tuneSQLite(db); err != nil {
			return nil, err
		}
	}
	if cfg.Migrate {
		if err := db.AutoMigrate(models...); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
		slog.Info("database migrated", "driver", cfg.Driver, "models", len(models))
	}
	return db, nil
}

// tuneSQLite は接続プールを1本に固定し（":memory:" は接続ごとに別DBになるため）、
// カスケード削除のために外部キー制約を有効にします。
func tuneSQLite(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(1)
	return db.Exec("PRAGMA foreign_keys = ON").Error
}
