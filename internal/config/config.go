package config

import (
	"os"
	"strconv"
)

// Configはアプリ全体の設定
type Config struct {
	SecretKey     string // セッションクッキーの署名キー
	AdminPassword string // 管理画面の共有パスワード
	DatabasePath  string // SQLiteファイルのパス
	Host          string // バインドするホスト
	Port          string // サーバーポート
	Debug         bool   // SQLログなどを出すか
}

// Loadは環境変数から読む。全てデフォルトあり。
func Load() Config {
	return Config{
		SecretKey:     getenv("SECRET_KEY", "dev_secret_change_me"),
		AdminPassword: getenv("ADMIN_PASSWORD", "adminpass"),
		DatabasePath:  getenv("DATABASE_PATH", "db.sqlite"),
		Host:          getenv("HOST", ""),
		Port:          getenv("PORT", "8080"),
		Debug:         getbool("DEBUG", false),
	}
}

func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getbool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
