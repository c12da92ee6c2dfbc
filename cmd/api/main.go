package main

import (
	"fmt"
	"net/http"

	"github.com/netsg-cyber/Holidays-app/internal/config"
	appHTTP "github.com/netsg-cyber/Holidays-app/internal/handler/http"
	"github.com/netsg-cyber/Holidays-app/internal/pkg/cron"
	"github.com/netsg-cyber/Holidays-app/internal/pkg/database"
	"github.com/netsg-cyber/Holidays-app/internal/pkg/google"
	"github.com/netsg-cyber/Holidays-app/internal/pkg/identity"
	"github.com/netsg-cyber/Holidays-app/internal/pkg/sse"
	"github.com/netsg-cyber/Holidays-app/internal/pkg/token"
	"github.com/netsg-cyber/Holidays-app/internal/repository/postgresql"
	authService "github.com/netsg-cyber/Holidays-app/internal/service/auth"
	holidayService "github.com/netsg-cyber/Holidays-app/internal/service/holiday"
	"github.com/netsg-cyber/Holidays-app/internal/service/integration"
	"github.com/netsg-cyber/Holidays-app/internal/service/notification"
	settingsService "github.com/netsg-cyber/Holidays-app/internal/service/settings"
	userService "github.com/netsg-cyber/Holidays-app/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	sessionRepo := postgresql.NewSessionRepository(db)
	creditRepo := postgresql.NewCreditRepository(db)
	requestRepo := postgresql.NewRequestRepository(db)
	publicHolidayRepo := postgresql.NewPublicHolidayRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)

	tokenService := token.NewService(cfg.Session.Secret)
	identityClient := identity.NewClient(cfg.Identity.ExchangeURL)
	googleService := google.NewService(
		cfg.OAuth2Google.ClientID,
		cfg.OAuth2Google.ClientSecret,
		cfg.OAuth2Google.RedirectURL,
	)

	hub := sse.NewHub()
	googleIntegration := integration.NewGoogleIntegration(settingsRepo, googleService)
	notifier := notification.NewService(googleIntegration, userRepo, hub)

	creditSvc := holidayService.NewCreditService(creditRepo, userRepo, notifier)
	requestSvc := holidayService.NewRequestService(db, requestRepo, creditRepo, userRepo, notifier, googleIntegration)
	publicHolidaySvc := holidayService.NewPublicHolidayService(publicHolidayRepo, googleIntegration)
	calendarSvc := holidayService.NewCalendarService(requestRepo, publicHolidayRepo)
	settingsSvc := settingsService.NewService(settingsRepo)
	authSvc := authService.NewService(db, identityClient, tokenService, sessionRepo, userRepo, creditSvc)
	userSvc := userService.NewService(db, userRepo, creditRepo, requestRepo, sessionRepo, creditSvc)

	scheduler := cron.NewScheduler()
	cron.NewMaintenanceJobs(authSvc, creditSvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(appHTTP.RouterDeps{
		TokenService:  tokenService,
		AuthService:   authSvc,
		Auth:          appHTTP.NewAuthHandler(authSvc, tokenService),
		Category:      appHTTP.NewCategoryHandler(),
		Request:       appHTTP.NewRequestHandler(requestSvc),
		Credit:        appHTTP.NewCreditHandler(creditSvc),
		PublicHoliday: appHTTP.NewPublicHolidayHandler(publicHolidaySvc),
		Calendar:      appHTTP.NewCalendarHandler(calendarSvc),
		User:          appHTTP.NewUserHandler(userSvc),
		Settings:      appHTTP.NewSettingsHandler(settingsSvc),
		OAuth:         appHTTP.NewOAuthHandler(googleService, settingsSvc, cfg.App.FrontendURL),
		Notification:  appHTTP.NewNotificationHandler(hub),
		FrontendURL:   cfg.App.FrontendURL,
		Environment:   cfg.App.Env,
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
