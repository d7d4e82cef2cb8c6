package recoverer

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"tireshop/internal/pkg/httpresponse"
	"tireshop/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
}

// Middleware перехватывает панику обработчика, логирует стек и отвечает 500.
func Middleware(log handlerLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.Error("panic in http handler",
					logger.NewField("panic", fmt.Sprint(rec)),
					logger.NewField("method", r.Method),
					logger.NewField("path", r.URL.Path),
					logger.NewField("stack", string(debug.Stack())),
				)
				httpresponse.WriteInternalError(w, log)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
