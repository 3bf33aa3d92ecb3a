package tokenrelay

import (
	"errors"
	"os"
)

// Config はToken Relayサービスの設定。
// 起動時に一度だけ環境変数から構築し、以降は変更しない。
type Config struct {
	// APIKey はElevenLabs APIの認証キー。
	APIKey string
	// APIURL はElevenLabs APIのベースURL。
	APIURL string
	// FrontendURL はCORSで許可するフロントエンドのオリジン。
	FrontendURL string
	// Port はサーバーのリッスンポート。
	Port string
}

// ErrMissingAPIKey はElevenLabs APIキーが設定されていない場合のエラー。
var ErrMissingAPIKey = errors.New("環境変数ELEVEN_API_KEYが設定されていません")

// LoadConfig は環境変数からサービス設定を構築する。
// APIキーが設定されていない場合はエラーを返し、起動を失敗させる。
func LoadConfig() (Config, error) {
	apiKey := os.Getenv("ELEVEN_API_KEY")
	if apiKey == "" {
		return Config{}, ErrMissingAPIKey
	}

	return Config{
		APIKey:      apiKey,
		APIURL:      getEnvOr("ELEVEN_API_URL", "https://api.elevenlabs.io"),
		FrontendURL: getEnvOr("FRONTEND_URL", "http://localhost:3000"),
		Port:        getEnvOr("PORT", "8080"),
	}, nil
}

// getEnvOr は環境変数を取得し、設定されていない場合はデフォルト値を返す。
func getEnvOr(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
