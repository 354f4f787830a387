package cmd

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"itac-api/core/arc"
	"itac-api/core/config"
	"itac-api/core/database"
	"itac-api/core/loader"
	"itac-api/core/logger"
	"itac-api/core/middleware/rayid"
	"itac-api/core/naics"

	"itac-api/feature/analytics"
	arcfeature "itac-api/feature/arc"
	"itac-api/feature/payload"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "itac-api/docs/swagger"
)

// @title ITAC Dashboard API
// @version 1.0
// @description API serving enriched ITAC recommendation data.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the ITAC API server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Load Hierarchy Documents (Required)
		// Without the hierarchies every row would carry a sentinel description,
		// so a missing document is fatal before the listener comes up.
		naicsResolver, err := naics.Load(cfg.Naics.Path)
		if err != nil {
			logg.Fatal("Failed to load NAICS hierarchy", zap.Error(err), zap.String("path", cfg.Naics.Path))
		}
		logg.Info("Loaded NAICS hierarchy", zap.Int("codes", naicsResolver.Size()))

		arcResolver, err := arc.Load(cfg.Arc.Path)
		if err != nil {
			logg.Fatal("Failed to load ARC hierarchy", zap.Error(err), zap.String("path", cfg.Arc.Path))
		}

		// 4. Connect to Database (Optional)
		// Requests that need the database will fail individually until it
		// becomes available, the hierarchy endpoints keep working.
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to ITAC database", zap.String("driver", cfg.Database.Driver))

			if gaps, err := database.VerifySchema(db); err != nil {
				logg.Warn("Schema verification failed", zap.Error(err))
			} else if len(gaps) > 0 {
				logg.Warn("Schema is missing expected columns", zap.Strings("gaps", gaps))
			}
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()

		// Register Features
		mgr.Register(payload.NewFeature(db, naicsResolver, arcResolver, cfg.Server, logg))
		mgr.Register(arcfeature.NewFeature(arcResolver, logg))
		mgr.Register(analytics.NewFeature(db, arcResolver, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. CORS (Dashboard frontend is served from another origin)
		app.Use(cors.New(cors.Config{
			AllowOrigins: cfg.Server.AllowOrigins,
			AllowMethods: strings.Join([]string{fiber.MethodGet, fiber.MethodHead, fiber.MethodOptions}, ","),
		}))

		// 3. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			// Log error if happened
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 4. Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 5. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
