package middlewares

import (
	"errors"
	"fmt"
	"konsulin-admin-console/internal/pkg/constvars"
	"konsulin-admin-console/internal/pkg/exceptions"
	"konsulin-admin-console/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				var err error
				switch x := rec.(type) {
				case string:
					err = errors.New(x)
				case error:
					err = x
				default:
					err = fmt.Errorf("unknown panic: %v", x)
				}

				m.Log.Error("Middlewares.ErrorHandler recovered from panic",
					zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(r.Context())),
					zap.Error(err),
				)
				utils.BuildErrorResponse(m.Log, w, exceptions.BuildNewCustomError(err, exceptions.KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, err.Error()))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
