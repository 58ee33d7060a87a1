// Package config resolves the server's settings from defaults, the environment, and explicit option functions.
package config

import (
	"net"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jt0/varasto/logs"
)

const (
	DefaultPort      = 8080
	DefaultHost      = "localhost"
	DefaultSecretKey = "dev-secret-key"
)

type Options struct {
	Host string
	Port uint16
	// SecretKey signs the flash message cookie.
	SecretKey string
	// Mode is one of gin's modes: debug, release or test.
	Mode string
}

func (o Options) Addr() string {
	return net.JoinHostPort(o.Host, strconv.Itoa(int(o.Port)))
}

// New applies optFns, in order, over the defaults.
func New(optFns ...func(*Options)) Options {
	o := Options{
		Host:      DefaultHost,
		Port:      DefaultPort,
		SecretKey: DefaultSecretKey,
		Mode:      gin.DebugMode,
	}

	for _, optFn := range optFns {
		optFn(&o)
	}

	return o
}

// FromEnv reads HOST, PORT, SECRET_KEY and GIN_MODE. Any optFns are applied after the environment.
func FromEnv(optFns ...func(*Options)) Options {
	envFns := []func(*Options){
		Host(os.Getenv("HOST")),
		Port(os.Getenv("PORT")),
		SecretKey(os.Getenv("SECRET_KEY")),
		Mode(os.Getenv(gin.EnvGinMode)),
	}

	return New(append(envFns, optFns...)...)
}

func noOptFn(*Options) {}

func Host(h string) func(*Options) {
	if h == "" {
		return noOptFn
	}
	return func(o *Options) {
		o.Host = h
	}
}

func Port(p string) func(*Options) {
	i, err := strconv.ParseUint(p, 10, 16)
	if err != nil || i == 0 {
		if p != "" {
			logs.Error.Println("invalid port value, ignoring:", p)
		}
		return noOptFn
	}
	return func(o *Options) {
		o.Port = uint16(i)
	}
}

func SecretKey(k string) func(*Options) {
	if k == "" {
		return noOptFn
	}
	return func(o *Options) {
		o.SecretKey = k
	}
}

func Mode(m string) func(*Options) {
	switch m {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		return func(o *Options) {
			o.Mode = m
		}
	case "":
	default:
		logs.Error.Println("invalid gin mode, ignoring:", m)
	}
	return noOptFn
}
