// @title                       Inventario Restaurante API
// @version                     1.0
// @description                 Control de stock del restaurante: libro de movimientos, faltantes y reportes.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/jhoicas/inventario-restaurante/docs"
	"github.com/jhoicas/inventario-restaurante/internal/application/auth"
	"github.com/jhoicas/inventario-restaurante/internal/application/dto"
	"github.com/jhoicas/inventario-restaurante/internal/application/inventory"
	"github.com/jhoicas/inventario-restaurante/internal/application/report"
	"github.com/jhoicas/inventario-restaurante/internal/application/usecase"
	infrapdf "github.com/jhoicas/inventario-restaurante/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/inventario-restaurante/internal/interfaces/http"
	"github.com/jhoicas/inventario-restaurante/pkg/config"
	"github.com/jhoicas/inventario-restaurante/pkg/logger"
	"github.com/jhoicas/inventario-restaurante/pkg/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}
	loc, err := cfg.Report.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("zona horaria del reporte")
	}

	ctx := context.Background()
	tel, err := telemetry.Setup(ctx, telemetry.Config{
		Endpoint:    cfg.Telemetry.Endpoint,
		ServiceName: cfg.Telemetry.ServiceName,
		Insecure:    cfg.Telemetry.Insecure,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("telemetría")
	}
	if tel.Enabled() {
		log.Info().Str("endpoint", cfg.Telemetry.Endpoint).Msg("exportando trazas y métricas OTLP")
	}

	st, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer st.close()

	applyMovementUC := inventory.NewApplyMovementUseCase(st.tx, log.Component("ledger"))
	movementQueryUC := inventory.NewMovementQueryUseCase(st.products, st.movements, st.tx)
	lowStockUC := inventory.NewLowStockUseCase(st.products)
	productUC := usecase.NewProductUseCase(st.products, st.categories)
	categoryUC := usecase.NewCategoryUseCase(st.categories)
	reportUC := report.NewReportUseCase(st.products, infrapdf.NewMarotoPDFGenerator(cfg.App.Name), loc)
	authUC := auth.NewAuthUseCase(st.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	httpLog := log.Component("http")
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			return c.Status(code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: utils.StatusMessage(code)})
		},
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(httpLog))
	if cfg.HTTP.CORSOrigins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins: cfg.HTTP.CORSOrigins,
			AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		}))
	}

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FileContent: []byte(docs.SwaggerInfo.ReadDoc()),
		Path:        "docs",
		Title:       "Inventario Restaurante API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CategoryUC:    categoryUC,
		ProductUC:     productUC,
		ApplyMovement: applyMovementUC,
		MovementQuery: movementQueryUC,
		LowStock:      lowStockUC,
		Report:        reportUC,
		JWTSecret:     cfg.JWT.Secret,
		Log:           httpLog,
		Ping:          st.ping,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if err := tel.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("cierre de telemetría")
	}

	log.Info().Msg("aplicación detenida")
}
