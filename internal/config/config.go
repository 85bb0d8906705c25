package config

import (
	"log"
	"os"
)

type Config struct {
	Port              string
	DataDir           string
	UploadDir         string
	AdminDir          string
	FrontendDir       string
	LogFile           string
	LogPretty         bool
	AdminPasswordHash string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	data := os.Getenv("DATA_DIR")
	if data == "" {
		data = "./data"
	}
	uploads := os.Getenv("UPLOAD_DIR")
	if uploads == "" {
		uploads = "./uploads"
	}
	adminDir := os.Getenv("ADMIN_DIR")
	if adminDir == "" {
		adminDir = "./admin/dist"
	}
	frontend := os.Getenv("FRONTEND_DIR")
	if frontend == "" {
		frontend = "."
	}

	cfg := Config{
		Port:              port,
		DataDir:           data,
		UploadDir:         uploads,
		AdminDir:          adminDir,
		FrontendDir:       frontend,
		LogFile:           os.Getenv("LOG_FILE"),
		LogPretty:         os.Getenv("LOG_PRETTY") == "1",
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}
	log.Printf("[config] PORT=%s DATA_DIR=%s UPLOAD_DIR=%s ADMIN_DIR=%s FRONTEND_DIR=%s",
		cfg.Port, cfg.DataDir, cfg.UploadDir, cfg.AdminDir, cfg.FrontendDir)
	return cfg
}
