package main

import (
	"flag"
	"log"
	"strings"

	"github.com/correia-jilson/pennywise-tracker/config"
	"github.com/correia-jilson/pennywise-tracker/database"
	"github.com/correia-jilson/pennywise-tracker/router"
)

// @title Pennywise Expense Tracker API
// @version 1.0
// @description A personal expense-tracking dashboard API: categories, expenses and exports for a demo user.
// @host localhost:8080
// @BasePath /

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "path to external config file (optional)")
	flag.StringVar(&configFile, "c", "", "path to external config file (shorthand)")
	flag.StringVar(&port, "port", "", "listen port, e.g. 8080 or :8080")
	flag.StringVar(&port, "p", "", "listen port (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.BoolVar(&showVersion, "v", false, "print version (shorthand)")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("pennywise v1.0.0")
		return
	}

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Command line port overrides the config.
	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("port set from command line: %s", port)
	}

	config.PrintConfig()

	if err := database.Init(cfg); err != nil {
		log.Fatalf("database init: %v", err)
	}

	r := router.SetupRouter(cfg)

	log.Printf("==========================================")
	log.Printf("  💰 Pennywise is up")
	log.Printf("==========================================")
	log.Printf("  Dashboard: http://localhost%s/", cfg.Server.Port)
	log.Printf("  Swagger:   http://localhost%s/swagger/index.html", cfg.Server.Port)
	log.Printf("  API:       http://localhost%s/api/", cfg.Server.Port)
	log.Printf("==========================================")

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("server start: %v", err)
	}
}
