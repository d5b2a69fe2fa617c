package main

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"github.com/Zero58021/Aplicacion-Hotel-Admin/internal/application"
	"github.com/Zero58021/Aplicacion-Hotel-Admin/internal/auth"
	"github.com/Zero58021/Aplicacion-Hotel-Admin/internal/config"
	"github.com/Zero58021/Aplicacion-Hotel-Admin/internal/domain"
	"github.com/Zero58021/Aplicacion-Hotel-Admin/internal/email"
	"github.com/Zero58021/Aplicacion-Hotel-Admin/internal/infrastructure/gateway"
	handlers "github.com/Zero58021/Aplicacion-Hotel-Admin/internal/interfaces/http"
	"github.com/Zero58021/Aplicacion-Hotel-Admin/internal/logger"
	"github.com/Zero58021/Aplicacion-Hotel-Admin/internal/scheduler"
	services "github.com/Zero58021/Aplicacion-Hotel-Admin/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer zlog.Sync()

	// Redis para sesiones
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		zlog.Fatal("error conectando con redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Gateway contra el almacén de datos externo
	storeClient := gateway.NewStoreClient(cfg.StoreBaseURL, cfg.StoreTimeout, zlog)
	reservaRepo := gateway.NewReservaGateway(storeClient, gateway.NewListCache(cfg.CacheTTL), zlog)
	habitacionRepo := gateway.NewHabitacionGateway(storeClient, gateway.NewListCache(cfg.CacheTTL), zlog)
	empleadoRepo := gateway.NewEmpleadoGateway(storeClient, gateway.NewListCache(cfg.CacheTTL), zlog)

	// Email Client
	emailClient, err := email.NewClient(
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUser,
		cfg.SMTPPassword,
		cfg.SMTPFromName,
		cfg.SMTPFromEmail,
	)
	if err != nil {
		zlog.Warn("cliente de email no disponible, se continúa sin confirmaciones", zap.Error(err))
		emailClient = nil
	}

	// S3 para fotos de habitaciones
	s3Service, err := services.NewS3Service(cfg.S3Bucket, cfg.S3Region)
	if err != nil {
		zlog.Warn("almacenamiento de imágenes no disponible", zap.Error(err))
		s3Service = nil
	}

	// Núcleo de la aplicación
	notificaciones := application.NewNotificationService()
	pricing := application.NewPricingEngine(application.TarifasPension{
		Desayuno:     cfg.PensionDesayuno,
		Media:        cfg.PensionMedia,
		Completa:     cfg.PensionCompleta,
		TodoIncluido: cfg.PensionTodoIncluido,
	})
	disponibilidad := application.NewAvailabilityChecker()
	reconciler := application.NewReconciler(disponibilidad)
	roster := application.NewRosterManager()

	reservaService := application.NewReservaService(
		reservaRepo, habitacionRepo, pricing, disponibilidad,
		reconciler, roster, notificaciones, emailClient, zlog)
	habitacionService := application.NewHabitacionService(habitacionRepo, notificaciones, zlog)
	empleadoService := application.NewEmpleadoService(empleadoRepo, notificaciones, zlog)
	calendarioService := application.NewCalendarioService(reservaRepo, habitacionRepo, pricing, zlog)

	// Sesiones y límite de intentos de login
	sesiones := auth.NewSessionStore(redisClient, cfg.SessionTTL)
	loginLimiter := application.NewRateLimiter(5*time.Minute, 10)

	// Handlers
	authHandler := handlers.NewAuthHandler(empleadoService, sesiones, loginLimiter)
	reservaHandler := handlers.NewReservaHandler(reservaService)
	habitacionHandler := handlers.NewHabitacionHandler(habitacionService, s3Service)
	empleadoHandler := handlers.NewEmpleadoHandler(empleadoService)
	calendarioHandler := handlers.NewCalendarioHandler(calendarioService, notificaciones)
	authMW := handlers.NewAuthMiddleware(sesiones)

	// Barrido diario de reservas completadas
	reservaScheduler := scheduler.NewReservationScheduler(reservaRepo, zlog)
	reservaScheduler.Start()
	defer reservaScheduler.Stop()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: true,
		ExposeHeaders:    "Content-Length",
		MaxAge:           86400,
	}))

	api := app.Group("/api")

	// Autenticación
	autenticacion := api.Group("/auth")
	autenticacion.Post("/login", authHandler.Login)
	autenticacion.Post("/logout", authMW.RequiereSesion(), authHandler.Logout)
	autenticacion.Get("/me", authMW.RequiereSesion(), authHandler.Me)

	// Rutas de reservas
	reservas := api.Group("/reservas", authMW.RequiereSesion())
	reservas.Get("/", authMW.RequierePermiso(domain.PermisoReservasVer), reservaHandler.ListReservas)
	reservas.Post("/", authMW.RequierePermiso(domain.PermisoReservasEditar), reservaHandler.CreateReserva)
	reservas.Post("/presupuesto", authMW.RequierePermiso(domain.PermisoReservasVer), reservaHandler.Presupuesto)
	reservas.Post("/disponibilidad", authMW.RequierePermiso(domain.PermisoReservasVer), reservaHandler.Disponibilidad)
	reservas.Get("/:id", authMW.RequierePermiso(domain.PermisoReservasVer), reservaHandler.GetReservaByID)
	reservas.Put("/:id", authMW.RequierePermiso(domain.PermisoReservasEditar), reservaHandler.UpdateReserva)
	reservas.Patch("/:id/estado", authMW.RequierePermiso(domain.PermisoReservasConfirmar), reservaHandler.UpdateReservaEstado)
	reservas.Delete("/:id", authMW.RequierePermiso(domain.PermisoReservasBorrar), reservaHandler.DeleteReserva)

	// Rutas de habitaciones
	habitaciones := api.Group("/habitaciones", authMW.RequiereSesion())
	habitaciones.Get("/", authMW.RequierePermiso(domain.PermisoHabitacionesVer), habitacionHandler.ListHabitaciones)
	habitaciones.Get("/opciones", authMW.RequierePermiso(domain.PermisoHabitacionesVer), habitacionHandler.GetOpciones)
	habitaciones.Post("/", authMW.RequierePermiso(domain.PermisoHabitacionesEditar), habitacionHandler.CreateHabitacion)
	habitaciones.Get("/:id", authMW.RequierePermiso(domain.PermisoHabitacionesVer), habitacionHandler.GetHabitacionByID)
	habitaciones.Put("/:id", authMW.RequierePermiso(domain.PermisoHabitacionesEditar), habitacionHandler.UpdateHabitacion)
	habitaciones.Patch("/:id/estado", authMW.RequierePermiso(domain.PermisoHabitacionesEstado), habitacionHandler.UpdateHabitacionEstado)
	habitaciones.Patch("/:id/precio", authMW.RequierePermiso(domain.PermisoHabitacionesEditar), habitacionHandler.UpdateHabitacionPrecio)
	habitaciones.Post("/:id/imagenes", authMW.RequierePermiso(domain.PermisoHabitacionesEditar), habitacionHandler.UploadImagen)
	habitaciones.Delete("/:id", authMW.RequierePermiso(domain.PermisoHabitacionesEditar), habitacionHandler.DeleteHabitacion)

	// Rutas de empleados
	empleados := api.Group("/empleados", authMW.RequiereSesion())
	empleados.Get("/", authMW.RequierePermiso(domain.PermisoEquipoVer), empleadoHandler.ListEmpleados)
	empleados.Post("/", authMW.RequierePermiso(domain.PermisoEquipoEditar), empleadoHandler.CreateEmpleado)
	empleados.Get("/:id", authMW.RequierePermiso(domain.PermisoEquipoVer), empleadoHandler.GetEmpleadoByID)
	empleados.Put("/:id", authMW.RequierePermiso(domain.PermisoEquipoEditar), empleadoHandler.UpdateEmpleado)
	empleados.Patch("/:id/estado", authMW.RequierePermiso(domain.PermisoEquipoEditar), empleadoHandler.UpdateEmpleadoEstado)
	empleados.Get("/:id/turnos", authMW.RequierePermiso(domain.PermisoEquipoVer), empleadoHandler.GetTurnos)
	empleados.Put("/:id/turnos", authMW.RequierePermiso(domain.PermisoEquipoEditar), empleadoHandler.UpdateTurnos)
	empleados.Delete("/:id", authMW.RequierePermiso(domain.PermisoEquipoEditar), empleadoHandler.DeleteEmpleado)

	// Calendario y notificaciones
	calendario := api.Group("/calendario", authMW.RequiereSesion(), authMW.RequierePermiso(domain.PermisoCalendarioVer))
	calendario.Get("/", calendarioHandler.GetMes)
	calendario.Get("/:fecha", calendarioHandler.GetDia)

	api.Get("/notificaciones", authMW.RequiereSesion(), calendarioHandler.GetNotificaciones)

	zlog.Info("server starting", zap.String("port", cfg.ServerPort))
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		zlog.Fatal("error starting server", zap.Error(err))
	}
}
