package server

import (
	"go.uber.org/zap"
	"messenger/internal/identity"
	"net/http"
	"strconv"
	"time"
)

type Option interface {
	apply(*config)
}

type optionFunc func(c *config)

func (f optionFunc) apply(c *config) { f(c) }

// config is assembled by options before http.Server starts
type config struct {
	httpServer *http.Server
	handlers   map[string]http.Handler
	// streams are long-lived handlers (websocket) which are never wrapped by timeout
	streams       map[string]http.Handler
	afterShutdown []func()
}

// EnvConfig defines fields used for parsing from environment variables
type EnvConfig struct {
	Host           string        `env:"HOST" envDefault:"0.0.0.0"`
	Port           uint16        `env:"PORT" envDefault:"9000"`
	JWTSecret      string        `env:"JWT_SECRET,required"`
	ReadTimeout    time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	HandlerTimeout time.Duration `env:"HANDLER_TIMEOUT" envDefault:"10s"`
}

// WithEnvConfig takes listen address and read timeout of http.Server from cfg
func WithEnvConfig(cfg EnvConfig) Option {
	return optionFunc(func(c *config) {
		c.httpServer.Addr = cfg.Host + ":" + strconv.FormatUint(uint64(cfg.Port), 10)
		c.httpServer.ReadTimeout = cfg.ReadTimeout
	})
}

// RegisterAfterShutdown adds f to be run by Start once http.Server is shut down, in registration order
func RegisterAfterShutdown(f func()) Option {
	return optionFunc(func(c *config) {
		c.afterShutdown = append(c.afterShutdown, f)
	})
}

// TimeoutHandler bounds every regular handler with http.TimeoutHandler, streams stay unbounded
func TimeoutHandler(d time.Duration, msg string) Option {
	return optionFunc(func(c *config) {
		for pattern, h := range c.handlers {
			c.handlers[pattern] = http.TimeoutHandler(h, d, msg)
		}
	})
}

// registerHandlers mounts handlers and streams on a new http.ServeMux serving http.Server
func registerHandlers() Option {
	return optionFunc(func(c *config) {
		mux := http.NewServeMux()
		for pattern, h := range c.handlers {
			mux.Handle(pattern, h)
		}
		for pattern, h := range c.streams {
			mux.Handle(pattern, h)
		}
		c.httpServer.Handler = mux
	})
}

// applyAuthenticate wraps each handler and stream with authenticate middleware,
// streams also accept token from query string
func applyAuthenticate(v *identity.Verifier) Option {
	return optionFunc(func(c *config) {
		for pattern, h := range c.handlers {
			c.handlers[pattern] = authenticate(h, v, false)
		}
		for pattern, h := range c.streams {
			c.streams[pattern] = authenticate(h, v, true)
		}
	})
}

// applyLog wraps each handler and stream with log middleware
func applyLog(logger *zap.Logger) Option {
	return optionFunc(func(c *config) {
		for pattern, h := range c.handlers {
			c.handlers[pattern] = log(h, logger)
		}
		for pattern, h := range c.streams {
			c.streams[pattern] = log(h, logger)
		}
	})
}
