package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jt0/varasto/api/web"
	"github.com/jt0/varasto/config"
	"github.com/jt0/varasto/inventory"
	"github.com/jt0/varasto/logs"
)

const shutdownTimeout = 5 * time.Second

func main() {
	o := config.FromEnv()
	gin.SetMode(o.Mode)

	if o.SecretKey == config.DefaultSecretKey && o.Mode == gin.ReleaseMode {
		logs.Error.Println("[Warning] Using the default secret key - set SECRET_KEY in production!!")
	}

	engine, ge := web.GinEngine(inventory.NewStore(), o.SecretKey)
	if ge != nil {
		logs.Error.Fatal(ge.String())
	}

	server := &http.Server{
		Addr:              o.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logs.Info.Println("Serving on:", o.Addr())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logs.Error.Println("server failed:", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logs.Error.Println("server shutdown due to:", err)
		return
	}
	logs.Info.Println("server shutdown cleanly")
}
