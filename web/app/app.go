package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/Astemirdum/shelfshare/pkg/kafka"
	"github.com/Astemirdum/shelfshare/pkg/logger"
	"github.com/Astemirdum/shelfshare/pkg/tracing"
	"github.com/Astemirdum/shelfshare/web/config"
	"github.com/Astemirdum/shelfshare/web/internal/handler"
	"github.com/Astemirdum/shelfshare/web/internal/server"
	"github.com/Astemirdum/shelfshare/web/internal/service/shelf"
)

const serviceName = "shelfshare-web"

func Run(cfg config.Config) {
	log := logger.NewLogger(cfg.Log, "web")

	tracer, shutdownTracer, err := tracing.NewTracer(cfg.Tracing, serviceName)
	if err != nil {
		log.Fatal("tracer", zap.Error(err))
	}

	var producer sarama.AsyncProducer
	if cfg.Kafka.Enabled() {
		producer, err = kafka.NewAsyncProducer(cfg.Kafka)
		if err != nil {
			log.DPanic("kafka", zap.Error(err))
		} else {
			go func() {
				for perr := range producer.Errors() {
					log.Warn("activity event dropped", zap.Error(perr.Err))
				}
			}()
		}
	}

	svc := shelf.NewService(log, cfg.Upstream, tracer)
	h, err := handler.New(log, cfg, svc, handler.NewActivityLog(producer, cfg.Kafka.Topic))
	if err != nil {
		log.Fatal("handler", zap.Error(err))
	}

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)),
		zap.String("upstream", cfg.Upstream.Origin))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Warn("kafka close", zap.Error(err))
		}
	}
	if err := shutdownTracer(closeCtx); err != nil {
		log.Warn("tracer shutdown", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
	_ = log.Sync()
}
