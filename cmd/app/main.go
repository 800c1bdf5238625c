package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"drivestyle/cmd/fx/advice_fx"
	"drivestyle/cmd/fx/catalog_fx"
	"drivestyle/cmd/fx/controllers_fx"
	"drivestyle/cmd/fx/lead_fx"
	"drivestyle/internal/api/controllers"
	"drivestyle/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	app := fx.New(
		catalog_fx.Module,
		advice_fx.Module,
		lead_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	adviceController *controllers.AdviceController,
	leadController *controllers.LeadController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, adviceController, leadController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	adviceController *controllers.AdviceController,
	leadController *controllers.LeadController) {

	api := r.Group("/api")
	api.POST("/advice", adviceController.GenerateAdvice)
	api.POST("/lead", leadController.SubmitLead)
	api.POST("/route", leadController.SubmitRouteFinder)
}
