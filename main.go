// File: campusspots/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"campusspots/config"
	"campusspots/cron"
	"campusspots/database"
	checkinRepo "campusspots/database/repository/checkin"
	classroomRepo "campusspots/database/repository/classroom"
	studyspotRepo "campusspots/database/repository/studyspot"
	"campusspots/handlers"
	"campusspots/middleware"
	"campusspots/routes"
	"campusspots/services/calendar"
	"campusspots/services/checkin"
	"campusspots/services/search"
	"campusspots/services/sensor"
	"campusspots/services/tasks"
	"campusspots/services/weather"
	"campusspots/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitSensorCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	classrooms := classroomRepo.NewMongoClassroomRepo()
	studySpots := studyspotRepo.NewMongoStudySpotRepo()
	checkIns := checkinRepo.NewMongoCheckInRepo()

	if err := classrooms.EnsureIndexes(); err != nil {
		logger.Warn("failed to ensure classroom indexes", zap.Error(err))
	}
	if err := studySpots.EnsureIndexes(); err != nil {
		logger.Warn("failed to ensure study spot indexes", zap.Error(err))
	}
	if err := checkIns.EnsureIndexes(); err != nil {
		logger.Warn("failed to ensure check-in indexes", zap.Error(err))
	}

	// services.
	searchService := search.NewDefaultSearchService(nil)

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()

	checkInService := &checkin.DefaultCheckInService{
		Repo:     checkIns,
		Store:    checkin.NewRedisOccupancyStore(utils.GetCacheClient()),
		Enqueuer: tasks.NewOccupancyEnqueuer(asynqClient),
	}

	weatherProvider := weather.NewOpenWeatherProvider(
		config.AppConfig.OpenWeatherAPIKey,
		config.AppConfig.OpenWeatherBaseURL,
		utils.GetCacheClient(),
	)
	calendarService := calendar.NewDefaultCalendarService(config.AppConfig.CalendarFeedURL)
	sensorService := sensor.NewRedisSensorService(utils.GetSensorCacheClient())

	// Background occupancy worker fed by check-in submissions.
	cron.InitOccupancyWorker(checkInService)

	// Periodic dependency health checks behind /health.
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetSensorCacheClient()},
		database.MongoClient,
	)

	resultCache := handlers.NewRedisResultCache(utils.GetCacheClient())

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Classroom:    handlers.NewClassroomHandler(classrooms, searchService, resultCache),
		StudySpot:    handlers.NewStudySpotHandler(studySpots, searchService, resultCache, nil),
		SearchResult: handlers.NewSearchResultHandler(resultCache),
		CheckIn:      handlers.NewCheckInHandler(checkInService),
		Weather:      handlers.NewWeatherHandler(weatherProvider, studySpots),
		Calendar:     handlers.NewCalendarHandler(calendarService),
		Sensor:       handlers.NewSensorHandler(sensorService),
		Admin:        handlers.NewAdminHandler(classrooms, studySpots),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
