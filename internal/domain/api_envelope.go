package domain

// Конверты ответа. Успех и ошибка имеют разноимённые поля —
// клиенты различают их по наличию "error".
type APIResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       any    `json:"data"`
}

type APIErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"` // текст HTTP-статуса: "Bad Request", "Unauthorized"...
	Message    string `json:"message"`
}

// Утилиты для сборки конвертов
func Ok(status int, message string, data any) APIResponse {
	return APIResponse{StatusCode: status, Message: message, Data: data}
}

func Fail(status int, statusText, message string) APIErrorResponse {
	return APIErrorResponse{StatusCode: status, Error: statusText, Message: message}
}
