package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/simplido/internal/auth"
	"github.com/BuzzLyutic/simplido/internal/config"
	"github.com/BuzzLyutic/simplido/internal/handler"
	"github.com/BuzzLyutic/simplido/internal/repo"
	"github.com/BuzzLyutic/simplido/internal/service"
	"github.com/BuzzLyutic/simplido/pkg/respond"
)

var version string // задается через ldflags: -X main.version=...

func appVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "0.1.0"
}

func main() {
	// Подключаем логгер
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Загрузка конфигурации: секрет, алгоритм и TTL читаются один раз
	// и дальше передаются в конструкторы явно
	cfg := config.Load()

	// Подключаем БД
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to Database.") // Fatal потому что дальнейшая работа теряет смысл
	}
	defer pool.Close() // Запланированное закрытие соединения

	if err := pool.Ping(context.Background()); err != nil { // Пытаемся пингануть БД
		log.Fatal("Failed to ping the Database.")
	}
	logger.Info("Successfully connected to the Database!")

	// Собираем зависимости
	userRepo := repo.NewUserRepo(pool)
	taskRepo := repo.NewTaskRepo(pool)

	hasher := auth.NewPasswordHasher()
	tokens := auth.NewTokenService(cfg.SecretKey, cfg.Algorithm, cfg.AccessTokenTTL)
	gate := auth.NewGate(tokens, userRepo, logger)

	userService := service.NewUserService(userRepo, hasher, tokens)
	taskService := service.NewTaskService(taskRepo)

	userHandler := handler.NewUserHandler(userService, logger)
	taskHandler := handler.NewTaskHandler(taskService, logger)

	r := chi.NewRouter() // Создаем роутер
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, r, http.StatusOK, map[string]string{
			"message": "Welcome to Simplido",
			"version": appVersion(),
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/register", userHandler.Register)
	r.Post("/login", userHandler.Login)

	r.Route("/tasks", func(r chi.Router) {
		r.Use(gate.Middleware)
		r.Post("/", taskHandler.Create)
		r.Get("/", taskHandler.List)
		r.Get("/stats", taskHandler.Stats)
		r.Put("/{id}", taskHandler.Update)
		r.Delete("/{id}", taskHandler.Delete)
	})

	srv := http.Server{ // Создаем сервер
		Addr: ":" + cfg.Port,
		Handler: r,
		ReadTimeout: 10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func ()  { // Запуск сервера и обработка ошибок
		logger.Info("Server started at ", zap.String("port", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed: ", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10 * time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Shutdown error: ", zap.Error(err))
	}
	logger.Info("Server stopped succsessfully!")
}
