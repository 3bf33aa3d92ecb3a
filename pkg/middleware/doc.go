// Package middleware はGinベースのHTTP APIで使用する共通ミドルウェアを提供する。
//
// CORS設定、リクエストID付与、パニックリカバリなど、
// サービス全体で共通して使用するミドルウェアを含む。
package middleware
