package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// headerAPIKey はElevenLabs APIの認証に使用するHTTPヘッダーキー。
const headerAPIKey = "xi-api-key"

// singleUseTokenPath はシングルユーストークン発行APIのパス。
const singleUseTokenPath = "/v1/single-use-tokens"

// Client はElevenLabs APIと通信するHTTPクライアント。
type Client struct {
	// httpClient は内部で使用するHTTPクライアント。
	httpClient *http.Client
	// baseURL はElevenLabs APIのベースURL。
	baseURL string
	// apiKey はElevenLabs APIの認証キー。
	apiKey string
}

// NewClient は新しいElevenLabs APIクライアントを生成する。
// baseURLにはAPIのベースURL（例: "https://api.elevenlabs.io"）を指定する。
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// TokenResult はトークン発行APIのレスポンスを表す。
// ボディは解析せずそのまま保持する。
type TokenResult struct {
	// StatusCode はElevenLabs APIが返したHTTPステータスコード。
	StatusCode int
	// ContentType はレスポンスのContent-Typeヘッダー。
	ContentType string
	// Body はレスポンスボディ。トークンオブジェクトを含むが解析はしない。
	Body []byte
}

// tokenRequest はトークン発行APIのリクエストボディ。
type tokenRequest struct {
	// TokenType は発行するトークンの種別。
	TokenType string `json:"token_type"`
}

// CreateSingleUseToken は指定された種別のシングルユーストークンを発行する。
// ElevenLabs APIがエラーステータスを返した場合もエラーとせず、
// ステータスコードとボディをそのまま返す。エラーを返すのは
// リクエストの構築・送信自体に失敗した場合のみ。
func (c *Client) CreateSingleUseToken(ctx context.Context, tokenType string) (*TokenResult, error) {
	jsonBody, err := json.Marshal(tokenRequest{TokenType: tokenType})
	if err != nil {
		return nil, fmt.Errorf("リクエストボディのシリアライズに失敗: %w", err)
	}

	url := c.baseURL + singleUseTokenPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("HTTPリクエストの作成に失敗: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerAPIKey, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTPリクエストの送信に失敗: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("レスポンスボディの読み取りに失敗: %w", err)
	}

	return &TokenResult{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}
