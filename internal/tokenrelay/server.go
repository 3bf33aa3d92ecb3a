package tokenrelay

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/tokenrelay/internal/elevenlabs"
	"github.com/nao1215/tokenrelay/pkg/middleware"
)

// tokenTypeRealtimeScribe は音声認識WebSocket接続用のトークン種別。
// デプロイ時定数であり、呼び出し元のリクエスト内容から導出してはならない。
const tokenTypeRealtimeScribe = "realtime_scribe"

// TokenIssuer はシングルユーストークンの発行機能を抽象化するインターフェース。
// 本番ではelevenlabs.Clientが実装し、テストでは代替実装に差し替える。
type TokenIssuer interface {
	// CreateSingleUseToken は指定された種別のシングルユーストークンを発行する。
	CreateSingleUseToken(ctx context.Context, tokenType string) (*elevenlabs.TokenResult, error)
}

// Server はToken RelayサービスのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// cfg はサービス設定。起動後は変更しない。
	cfg Config
	// issuer はシングルユーストークンの発行クライアント。
	issuer TokenIssuer
}

// NewServer は新しいToken Relayサーバーを生成する。
func NewServer(cfg Config) *Server {
	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS([]string{cfg.FrontendURL}))

	s := &Server{
		router: router,
		cfg:    cfg,
		issuer: elevenlabs.NewClient(cfg.APIURL, cfg.APIKey),
	}
	s.setupRoutes()

	return s
}

// Run はHTTPサーバーを起動する。
func (s *Server) Run() error {
	return s.router.Run(fmt.Sprintf(":%s", s.cfg.Port))
}

// setupRoutes はAPIルーティングを設定する。
func (s *Server) setupRoutes() {
	// 死活確認
	s.router.GET("/", s.handleRoot())

	// シングルユーストークン発行
	s.router.GET("/token", s.handleToken())

	// ヘルスチェック
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "tokenrelay"})
	})
}

// handleRoot は死活確認用の固定レスポンスを返すハンドラを返す。
func (s *Server) handleRoot() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Hello World"})
	}
}

// handleToken はElevenLabs APIにトークン発行を中継するハンドラを返す。
// 呼び出し元からのパラメータは受け付けず、トークン種別は固定値を使用する。
// ElevenLabs APIのレスポンスはステータスコードとボディをそのまま転送する。
func (s *Server) handleToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := s.issuer.CreateSingleUseToken(c.Request.Context(), tokenTypeRealtimeScribe)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "ElevenLabs APIとの通信に失敗しました"})
			log.Printf("トークン発行エラー: request_id=%s, error=%v", middleware.GetRequestID(c), err)
			return
		}

		contentType := result.ContentType
		if contentType == "" {
			contentType = "application/json"
		}
		c.Data(result.StatusCode, contentType, result.Body)
	}
}
