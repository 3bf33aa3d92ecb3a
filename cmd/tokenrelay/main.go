// Token Relayサービスのエントリポイント。
// フロントエンドからのトークン発行リクエストをElevenLabs APIに中継する。
// 外部からアクセス可能な唯一のサービスであり、APIキーを秘匿する境界線となる。
package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/nao1215/tokenrelay/internal/tokenrelay"
)

func main() {
	// .envファイルはローカル開発用。存在しない場合は環境変数のみを使用する。
	_ = godotenv.Load(".env")

	cfg, err := tokenrelay.LoadConfig()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗: %v", err)
	}

	server := tokenrelay.NewServer(cfg)

	log.Printf("Token Relayサービスを起動します: :%s", cfg.Port)
	if err := server.Run(); err != nil {
		log.Fatalf("Token Relayサービスの起動に失敗: %v", err)
	}
}
