package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/smartattend/attendance-backend-go/internal/config"
	appHTTP "github.com/smartattend/attendance-backend-go/internal/handler/http"
	"github.com/smartattend/attendance-backend-go/internal/pkg/cron"
	"github.com/smartattend/attendance-backend-go/internal/pkg/jwt"
	"github.com/smartattend/attendance-backend-go/internal/pkg/kv"
	attendanceService "github.com/smartattend/attendance-backend-go/internal/service/attendance"
	authService "github.com/smartattend/attendance-backend-go/internal/service/auth"
	broadcastService "github.com/smartattend/attendance-backend-go/internal/service/broadcast"
	holidayService "github.com/smartattend/attendance-backend-go/internal/service/holiday"
	leaveService "github.com/smartattend/attendance-backend-go/internal/service/leave"
	reportService "github.com/smartattend/attendance-backend-go/internal/service/report"
	userService "github.com/smartattend/attendance-backend-go/internal/service/user"
	"github.com/smartattend/attendance-backend-go/internal/state"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	ctx := context.Background()

	var backend kv.Store
	switch cfg.Storage.Driver {
	case "postgres":
		backend, err = kv.NewPostgres(ctx, cfg.DatabaseURL())
		if err != nil {
			log.Fatal("Failed to connect to postgres:", err)
		}
	case "redis":
		backend, err = kv.NewRedis(ctx, cfg.RedisAddr(), cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal("Failed to connect to redis:", err)
		}
	case "memory":
		backend = kv.NewMemory()
	default:
		log.Fatal("Unsupported storage driver: ", cfg.Storage.Driver)
	}

	store := state.Load(ctx, backend, state.Seed(time.Now()))

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(store, JWTService)
	attendanceSvc := attendanceService.NewAttendanceService(store, cfg.Attendance.WeeklyOffDay, nil)
	leaveSvc := leaveService.NewLeaveService(store, nil)
	holidaySvc := holidayService.NewHolidayService(store)
	broadcastSvc := broadcastService.NewBroadcastService(store, nil)
	userSvc := userService.NewUserService(store)
	reportSvc := reportService.NewReportService(store)

	router := appHTTP.NewRouter(JWTService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Holiday:    appHTTP.NewHolidayHandler(holidaySvc),
		Broadcast:  appHTTP.NewBroadcastHandler(broadcastSvc),
		User:       appHTTP.NewUserHandler(userSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
	}, cfg.App.Env)

	scheduler := cron.NewScheduler()
	cron.NewShiftJobs(store, time.Now).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
