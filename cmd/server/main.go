// @title Citation Recognition API
// @version 1.0
// @description Extracts structured legal citations from free-form Russian text.

// @host localhost:8978
// @BasePath /
// @schemes http

package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/MuratKramin/nlp-hw1/internal/alias"
	"github.com/MuratKramin/nlp-hw1/internal/config"
	"github.com/MuratKramin/nlp-hw1/internal/httpapi"
	"github.com/MuratKramin/nlp-hw1/internal/recognizer"
)

const buildVersion = "1.0.0"

func main() {
	log.Println("═══════════════════════════════════════════════════════")
	log.Println("🚀 Запуск сервиса распознавания правовых ссылок...")

	cfg, err := config.LoadConfig("config.toml")
	if err != nil {
		log.Fatalf("✗ Ошибка загрузки конфигурации: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("✗ Некорректная конфигурация: %v", err)
	}

	setLogLevel(cfg.LogLevel)

	dict, err := alias.LoadFile(cfg.AliasDictPath)
	if err != nil {
		log.Fatalf("✗ КРИТИЧЕСКАЯ ОШИБКА: не удалось загрузить словарь алиасов: %v", err)
	}
	log.Printf("✓ Словарь алиасов загружен: %d кодексов (%s)", len(dict), cfg.AliasDictPath)

	cr, err := recognizer.Compile(dict)
	if err != nil {
		log.Fatalf("✗ КРИТИЧЕСКАЯ ОШИБКА: не удалось скомпилировать распознаватель: %v", err)
	}
	log.Println("✓ Распознаватель скомпилирован")

	srv := httpapi.NewServer(cfg, cr, httpapi.BuildInfo{
		Version:   buildVersion,
		GoVersion: runtime.Version(),
	})
	router := httpapi.NewRouter(srv)

	addr := "0.0.0.0:" + cfg.Port
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.RequestTimeout,
		WriteTimeout: cfg.RequestTimeout,
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Fatalf("✗ КРИТИЧЕСКАЯ ОШИБКА: паника при запуске сервера: %v", r)
			}
		}()
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("✗ КРИТИЧЕСКАЯ ОШИБКА: ошибка запуска сервера: %v", err)
		}
	}()

	log.Println("═══════════════════════════════════════════════════════")
	log.Printf("✓ Сервер успешно запущен: http://%s", addr)
	log.Printf("  Для остановки нажмите Ctrl+C")
	log.Println("═══════════════════════════════════════════════════════")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Println("═══════════════════════════════════════════════════════")
	log.Println("⏹  Получен сигнал завершения, останавливаю сервер...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("✗ Ошибка при остановке сервера: %v", err)
	} else {
		log.Println("✓ Сервер успешно остановлен")
	}
}

func setLogLevel(level string) {
	var lvl slog.Level
	switch level {
	case "DEBUG":
		lvl = slog.LevelDebug
	case "WARN":
		lvl = slog.LevelWarn
	case "ERROR":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetLogLoggerLevel(lvl)
}
