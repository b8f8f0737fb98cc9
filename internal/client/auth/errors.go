package auth

import "errors"

// ErrNotSignedIn устройство еще не прошло анонимную регистрацию
var ErrNotSignedIn = errors.New("not signed in")
