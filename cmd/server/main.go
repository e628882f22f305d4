package main

import (
	"log"
	"strings"

	"lankastay-backend/internal/auth"
	"lankastay-backend/internal/config"
	"lankastay-backend/internal/database"
	"lankastay-backend/internal/listing"
	"lankastay-backend/internal/media"
	"lankastay-backend/internal/public"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg)

	uploader, err := media.NewCloudinaryUploader(cfg)
	if err != nil {
		log.Fatalf("cloudinary init failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Something went wrong, please try again",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register", auth.RegisterHandler(db))
	api.Post("/auth/login", auth.LoginHandler(db, cfg))

	// Public browsing (published listings only)
	api.Get("/properties", public.ListPublishedHandler(db))
	api.Get("/properties/:id", public.GetPublishedHandler(db))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler(db))

	// Photo uploads (batched, pre-submit)
	protected.Post("/uploads", media.UploadHandler(uploader))

	// Owner dashboard & submission wizard
	owner := protected.Group("/owner")
	owner.Get("/listings", listing.ListOwnedHandler(db))
	owner.Post("/listings", listing.CreateHandler(db))
	owner.Get("/listings/:id", listing.GetHandler(db))
	owner.Put("/listings/:id", listing.UpdateHandler(db))
	owner.Delete("/listings/:id", listing.DeleteHandler(db))
	owner.Post("/listings/validate-step", listing.ValidateStepHandler())

	log.Println("Server listening on port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
