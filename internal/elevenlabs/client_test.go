package elevenlabs

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// testRequest はテストサーバーが受け取ったリクエスト情報を保持する構造体。
type testRequest struct {
	// Method はHTTPメソッド。
	Method string
	// Path はリクエストパス。
	Path string
	// Body はリクエストボディ。
	Body []byte
	// Headers はリクエストヘッダー。
	Headers http.Header
}

// TestNewClient はNewClient関数でクライアントが正しく生成されることを検証する。
func TestNewClient(t *testing.T) {
	t.Parallel()

	t.Run("クライアントが正常に生成されること", func(t *testing.T) {
		t.Parallel()

		client := NewClient("https://api.elevenlabs.io", "test-api-key")
		if client == nil {
			t.Fatal("NewClient()がnilを返した")
		}
		if client.baseURL != "https://api.elevenlabs.io" {
			t.Errorf("baseURL = %q, want %q", client.baseURL, "https://api.elevenlabs.io")
		}
		if client.apiKey != "test-api-key" {
			t.Errorf("apiKey = %q, want %q", client.apiKey, "test-api-key")
		}
		if client.httpClient == nil {
			t.Fatal("httpClientがnil")
		}
	})

	t.Run("タイムアウトが30秒に設定されていること", func(t *testing.T) {
		t.Parallel()

		client := NewClient("https://api.elevenlabs.io", "test-api-key")
		if client.httpClient.Timeout.Seconds() != 30 {
			t.Errorf("Timeout = %v, want 30s", client.httpClient.Timeout)
		}
	})
}

// TestCreateSingleUseToken はCreateSingleUseToken関数を検証する。
func TestCreateSingleUseToken(t *testing.T) {
	t.Parallel()

	t.Run("正しいリクエストを送信してレスポンスをそのまま返すこと", func(t *testing.T) {
		t.Parallel()

		var received testRequest
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			received.Method = r.Method
			received.Path = r.URL.Path
			received.Body, _ = io.ReadAll(r.Body)
			received.Headers = r.Header.Clone()

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"token":"abc123","expires_in":60}`))
		}))
		defer ts.Close()

		client := NewClient(ts.URL, "test-api-key")
		result, err := client.CreateSingleUseToken(context.Background(), "realtime_scribe")
		if err != nil {
			t.Fatalf("CreateSingleUseToken()でエラーが発生: %v", err)
		}

		// リクエストの検証
		if received.Method != http.MethodPost {
			t.Errorf("Method = %q, want %q", received.Method, http.MethodPost)
		}
		if received.Path != "/v1/single-use-tokens" {
			t.Errorf("Path = %q, want %q", received.Path, "/v1/single-use-tokens")
		}
		if got := received.Headers.Get("xi-api-key"); got != "test-api-key" {
			t.Errorf("xi-api-keyヘッダー = %q, want %q", got, "test-api-key")
		}
		if got := received.Headers.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Typeヘッダー = %q, want %q", got, "application/json")
		}

		var sentBody map[string]string
		if err := json.Unmarshal(received.Body, &sentBody); err != nil {
			t.Fatalf("リクエストボディのパースに失敗: %v", err)
		}
		if sentBody["token_type"] != "realtime_scribe" {
			t.Errorf("token_type = %q, want %q", sentBody["token_type"], "realtime_scribe")
		}

		// レスポンスの検証
		if result.StatusCode != http.StatusOK {
			t.Errorf("StatusCode = %d, want %d", result.StatusCode, http.StatusOK)
		}
		if result.ContentType != "application/json" {
			t.Errorf("ContentType = %q, want %q", result.ContentType, "application/json")
		}
		if got := string(result.Body); got != `{"token":"abc123","expires_in":60}` {
			t.Errorf("Body = %q, want %q", got, `{"token":"abc123","expires_in":60}`)
		}
	})

	t.Run("APIがエラーステータスを返した場合もエラーとせずそのまま返すこと", func(t *testing.T) {
		t.Parallel()

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"invalid api key"}`))
		}))
		defer ts.Close()

		client := NewClient(ts.URL, "wrong-api-key")
		result, err := client.CreateSingleUseToken(context.Background(), "realtime_scribe")
		if err != nil {
			t.Fatalf("CreateSingleUseToken()でエラーが発生: %v", err)
		}

		if result.StatusCode != http.StatusUnauthorized {
			t.Errorf("StatusCode = %d, want %d", result.StatusCode, http.StatusUnauthorized)
		}
		if got := string(result.Body); got != `{"detail":"invalid api key"}` {
			t.Errorf("Body = %q, want %q", got, `{"detail":"invalid api key"}`)
		}
	})

	t.Run("接続先に到達できない場合はエラーを返すこと", func(t *testing.T) {
		t.Parallel()

		// サーバーを起動直後に停止し、接続エラーを発生させる
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		ts.Close()

		client := NewClient(ts.URL, "test-api-key")
		result, err := client.CreateSingleUseToken(context.Background(), "realtime_scribe")
		if err == nil {
			t.Fatal("エラーが返されなかった")
		}
		if result != nil {
			t.Errorf("result = %+v, want nil", result)
		}
	})

	t.Run("コンテキストがキャンセル済みの場合はエラーを返すこと", func(t *testing.T) {
		t.Parallel()

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer ts.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		client := NewClient(ts.URL, "test-api-key")
		if _, err := client.CreateSingleUseToken(ctx, "realtime_scribe"); err == nil {
			t.Fatal("エラーが返されなかった")
		}
	})
}
