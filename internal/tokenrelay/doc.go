// Package tokenrelay はToken Relayサービスの内部実装を提供する。
//
// フロントエンドからのリクエストを受け、ElevenLabs APIの
// シングルユーストークン発行に中継する。APIキーはサーバー側で保持し、
// クライアントに露出させない。トークン自体は解析せず、
// ElevenLabs APIのレスポンスをそのまま呼び出し元に返す。
package tokenrelay
