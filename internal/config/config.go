package config

import (
	"log"
	"os"
)

type Config struct {
	Port        string
	CatalogFile string
	LogFile     string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	catalog := os.Getenv("CATALOG_FILE")
	if catalog == "" {
		catalog = "./data/produtos.csv" // flat-file catalog in project root
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./cadastro.log" // default log sink in project root
	}

	cfg := Config{Port: port, CatalogFile: catalog, LogFile: logFile}
	log.Printf("[config] PORT=%s CATALOG_FILE=%s LOG_FILE=%s", cfg.Port, cfg.CatalogFile, cfg.LogFile)
	return cfg
}
