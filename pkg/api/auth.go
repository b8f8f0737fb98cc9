package api

// AnonymousSignInResponse представляет ответ на анонимную регистрацию устройства
type AnonymousSignInResponse struct {
	UserID       string `json:"user_id"`       // UUID пользователя
	DeviceSecret string `json:"device_secret"` // секрет устройства для повторной выдачи токена
	AccessToken  string `json:"access_token"`  // JWT access token
	ExpiresIn    int64  `json:"expires_in"`    // время жизни access token в секундах
}

// TokenRequest представляет запрос на выдачу нового access token
type TokenRequest struct {
	UserID       string `json:"user_id"`
	DeviceSecret string `json:"device_secret"`
}

// TokenResponse представляет ответ с токеном доступа
type TokenResponse struct {
	AccessToken string `json:"access_token"` // JWT access token
	ExpiresIn   int64  `json:"expires_in"`   // время жизни access token в секундах
}
