package main

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/delivery/http/controllers"
	"clinic-service/internal/app/delivery/http/middlewares"
	"clinic-service/internal/app/delivery/http/routers"
	"clinic-service/internal/app/drivers/database"
	"clinic-service/internal/app/drivers/logger"
	messagingdriver "clinic-service/internal/app/drivers/messaging"
	storagedriver "clinic-service/internal/app/drivers/storage"
	"clinic-service/internal/app/services/appointments"
	"clinic-service/internal/app/services/auth"
	"clinic-service/internal/app/services/doctors"
	"clinic-service/internal/app/services/patients"
	"clinic-service/internal/app/services/shared/messaging"
	"clinic-service/internal/app/services/shared/redis"
	"clinic-service/internal/app/services/shared/storage"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messagingdriver.NewRabbitMQ(driverConfig)
	minioClient := storagedriver.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Shared infrastructure
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	minioStorage := storage.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig)
	eventPublisher := messaging.NewRabbitMQPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.NotificationQueue)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Repositories
	doctorMongoRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	patientMongoRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)

	// Auth
	authUsecase := auth.NewAuthUsecase(patientMongoRepository, bootstrap.InternalConfig, bootstrap.Logger)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase)

	// Doctor
	doctorUsecase := doctors.NewDoctorUsecase(doctorMongoRepository, redisRepository, minioStorage, bootstrap.InternalConfig, bootstrap.Logger)
	doctorController := controllers.NewDoctorController(bootstrap.Logger, doctorUsecase, bootstrap.InternalConfig)

	// Patient
	patientUsecase := patients.NewPatientUsecase(patientMongoRepository, minioStorage, bootstrap.Logger)
	patientController := controllers.NewPatientController(bootstrap.Logger, patientUsecase, bootstrap.InternalConfig)

	// Appointment
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentMongoRepository,
		doctorMongoRepository,
		patientMongoRepository,
		redisRepository,
		eventPublisher,
		bootstrap.Logger,
	)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		doctorController,
		patientController,
		appointmentController,
	)
}
