package domain

// Envelope es el sobre de respuesta común a los tres servicios.
// Éxito implica Error == nil; fallo implica Data == nil y el status HTTP
// igual a Error.Code.
type Envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data"`
	Error   *ErrorBody `json:"error"`
}

// ErrorBody describe un error cruzando el límite de un servicio.
type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewSuccess arma un sobre de éxito
func NewSuccess(data any) Envelope {
	return Envelope{Success: true, Data: data, Error: nil}
}

// NewError arma un sobre de error
func NewError(code int, message string) Envelope {
	return Envelope{Success: false, Data: nil, Error: &ErrorBody{Code: code, Message: message}}
}
