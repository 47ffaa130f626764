package utils

import (
	"konsulin-admin-console/internal/pkg/constvars"
	"konsulin-admin-console/internal/pkg/dto/responses"
	"konsulin-admin-console/internal/pkg/exceptions"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := exceptions.StatusCodeOf(err)
	clientMessage := exceptions.ClientMessageOf(err, constvars.ErrClientSomethingWrongWithApplication)

	log.Error("request failed",
		zap.String(constvars.LoggingErrorKindKey, string(exceptions.KindOf(err))),
		zap.Error(err),
	)

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(responses.ResponseDTO{
		Success: false,
		Message: clientMessage,
	})
}
