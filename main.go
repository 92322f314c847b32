package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/barberbook/booking-api/controllers"
	"github.com/barberbook/booking-api/controllers/admin"
	"github.com/barberbook/booking-api/cron"
	"github.com/barberbook/booking-api/db"
	"github.com/barberbook/booking-api/quota"
	"github.com/barberbook/booking-api/redis"
	"github.com/barberbook/booking-api/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	db.Migrate()
	redis.InitRedis()
	defer redis.Close()

	controllers.DeviceQuota = quota.NewTracker(redis.Client)
	admin.LoginQuota = quota.NewLoginThrottle(redis.Client)

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Booking API is running!")
	})
	routes.SetupPublicRoutes(app)
	routes.SetupAdminRoutes(app)

	cron.StartCronJobs()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Fatal(app.Listen(":" + port))
}
