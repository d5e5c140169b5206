package server

import (
	"errors"
	"log/slog"
	"os"

	"notes/internal/config"
	"notes/internal/database"
	"notes/internal/database/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// accessLogFormat mirrors ":method :url :status :res[content-length] - :response-time ms".
const accessLogFormat = "${time} ${locals:requestid} ${method} ${url} ${status} ${bytesSent} - ${latency}\n"

type FiberServer struct {
	*fiber.App

	db database.Service
}

func New(cfg config.Config, db database.Service) *FiberServer {
	server := &FiberServer{
		App: fiber.New(fiber.Config{
			ServerHeader:          cfg.AppName,
			AppName:               cfg.AppName,
			ErrorHandler:          errorHandler,
			DisableStartupMessage: true,
		}),
		db: db,
	}
	server.App.Use(recover.New())
	server.App.Use(requestid.New(requestid.Config{
		// random v4 ids; the default generator counts up from a single seed
		Generator: uuid.NewString,
	}))
	server.App.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
	}))
	server.App.Use(logger.New(logger.Config{
		Format: accessLogFormat,
	}))
	if cfg.EnablePprof {
		server.App.Use(pprof.New())
	}
	if cfg.StaticDir != "" {
		if info, err := os.Stat(cfg.StaticDir); err == nil && info.IsDir() {
			slog.Info("serving static files", "dir", cfg.StaticDir)
			server.App.Static("/", cfg.StaticDir)
		}
	}
	return server
}

// errorHandler is the last stop for any error a handler returns, including
// recovered panics.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	if code >= fiber.StatusInternalServerError {
		slog.Error("request failed", "method", c.Method(), "path", c.Path(), "err", err)
	}
	return c.Status(code).JSON(dto.ErrorResponse{Error: err.Error()})
}
