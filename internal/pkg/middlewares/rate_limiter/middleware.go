package rate_limiter

import (
	"net"
	"net/http"
	"net/netip"
	"strconv"
	"strings"

	"tireshop/internal/pkg/httpresponse"
	"tireshop/internal/pkg/middlewares/metrics"
	"tireshop/pkg/logger"
)

const (
	msgTooManyRequests = "Too many requests. Try again later."

	scopeGlobal = "global"
	scopeClient = "client"
)

// Middleware глобальный лимит на весь сервер.
func Middleware(log handlerLogger, rateLimiterQPS int, rlimiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rlimiter.Allow() {
				reject(w, r, log, scopeGlobal, strconv.Itoa(rateLimiterQPS))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ClientMiddleware лимит на IP клиента, вешается на отдельные маршруты (заказ, вход в админку).
// X-Forwarded-For учитывается только от прокси из trustedProxies.
func ClientMiddleware(log handlerLogger, limit int, trustedProxies []netip.Prefix, rlimiter KeyedLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rlimiter.AllowKey(ClientIP(r, trustedProxies)) {
				reject(w, r, log, scopeClient, strconv.Itoa(limit))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP возвращает адрес клиента. Если соединение пришло от доверенного прокси,
// X-Forwarded-For разбирается справа налево до первого недоверенного адреса.
// Иначе заголовок игнорируется и используется RemoteAddr.
func ClientIP(r *http.Request, trustedProxies []netip.Prefix) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	peer, err := netip.ParseAddr(host)
	if err != nil || !trusted(peer.Unmap(), trustedProxies) {
		return host
	}

	client := peer.Unmap()
	hops := strings.Split(strings.Join(r.Header.Values("X-Forwarded-For"), ","), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		if hop == "" {
			continue
		}

		addr, err := netip.ParseAddr(hop)
		if err != nil {
			break
		}
		client = addr.Unmap()
		if !trusted(client, trustedProxies) {
			break
		}
	}

	return client.String()
}

func trusted(addr netip.Addr, trustedProxies []netip.Prefix) bool {
	for _, prefix := range trustedProxies {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

func reject(w http.ResponseWriter, r *http.Request, log handlerLogger, scope, limit string) {
	handlerPath := metrics.RouteTemplate(r)

	log.With(
		logger.NewField("method", r.Method),
		logger.NewField("path", r.URL.Path),
		logger.NewField("route", handlerPath),
		logger.NewField("remote_addr", r.RemoteAddr),
		logger.NewField("scope", scope),
	).Warn("rate limit exceeded")

	RateLimitExceededTotal.WithLabelValues(r.Method, handlerPath, scope).Inc()

	w.Header().Set("X-RateLimit-Limit", limit)
	w.Header().Set("Retry-After", "1")
	httpresponse.WriteError(w, log, http.StatusTooManyRequests, msgTooManyRequests, nil)
}
