package main

import (
	"fmt"
	"os"
	"strconv"

	"kirana/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()

	app := cmd.NewCompositionRoot(configs)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// A missing .env is fine; the environment and the defaults below cover it.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:              envString("HTTP_PORT", "3000"),
		ShopName:              envString("SHOP_NAME", "Kirana Store"),
		ShopPhone:             envString("SHOP_PHONE", "919963321819"),
		ShopLatitude:          envFloat("SHOP_LATITUDE", 17.547264),
		ShopLongitude:         envFloat("SHOP_LONGITUDE", 78.2270464),
		FreeTierSubtotal:      envFloat("FREE_TIER_SUBTOTAL", 1000),
		FreeTierRadiusKm:      envFloat("FREE_TIER_RADIUS_KM", 3),
		NearTierSubtotal:      envFloat("NEAR_TIER_SUBTOTAL", 500),
		NearTierRadiusKm:      envFloat("NEAR_TIER_RADIUS_KM", 1),
		BaseDeliveryFee:       envFloat("BASE_DELIVERY_FEE", 50),
		RetentionDays:         envInt("ORDER_RETENTION_DAYS", 30),
		NotificationQueueSize: envInt("NOTIFICATION_QUEUE_SIZE", 64),
	}
}

func envString(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Fatalf("Invalid value for %s: %v", key, err)
	}
	return parsed
}

func envInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf("Invalid value for %s: %v", key, err)
	}
	return parsed
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())

	server := app.CreateHTTPServer()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
