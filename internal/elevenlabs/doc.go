// Package elevenlabs はElevenLabs APIと通信するHTTPクライアントを提供する。
//
// WebSocket接続用のシングルユーストークン発行APIのみを扱う。
// レスポンスボディは解析せず、不透明なペイロードとしてそのまま呼び出し元に返す。
package elevenlabs
