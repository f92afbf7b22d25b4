package domain

import "errors"

// Бизнес-ошибки (маппятся на HTTP коды и тексты конверта в слое v1)
var (
	ErrBadParams    = errors.New("bad_params")          // 400
	ErrUserExists   = errors.New("user_exists")         // отдаётся как 400, не 409
	ErrInvalidCreds = errors.New("invalid_credentials") // 401 — намеренно не уточняем, что именно не совпало
	ErrTokenMissing = errors.New("token_missing")       // 401 — токен не предъявлен
	ErrTokenInvalid = errors.New("token_invalid")       // 401 — битый токен или плохая подпись
	ErrTokenExpired = errors.New("token_expired")       // 401 — подпись валидна, срок вышел
	ErrNotFound     = errors.New("not_found")           // 404
	ErrUnexpected   = errors.New("unexpected")          // 500
)
