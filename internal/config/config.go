package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort               string
	DatabaseDSN            string
	JWTSecret              string
	CORSOrigins            string
	CloudinaryURL          string
	CloudinaryUploadPreset string
	CloudinaryFolder       string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[WARN] no .env file found, reading configuration from the environment")
	}

	cfg := &Config{
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:            getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=lankastay port=5432 sslmode=disable"),
		JWTSecret:              getEnv("JWT_SECRET", ""),
		CORSOrigins:            getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		CloudinaryURL:          getEnv("CLOUDINARY_URL", ""),
		CloudinaryUploadPreset: getEnv("CLOUDINARY_UPLOAD_PRESET", "lankastay_unsigned"),
		CloudinaryFolder:       getEnv("CLOUDINARY_FOLDER", "lankastay"),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET is not set, refusing to start")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET must be at least 32 characters")
	}
	if cfg.CloudinaryURL == "" {
		log.Fatal("[FATAL] CLOUDINARY_URL is not set, photo uploads cannot work without it")
	}
	if cfg.DatabaseDSN == "host=localhost user=postgres password=postgres dbname=lankastay port=5432 sslmode=disable" {
		log.Println("[WARN] DATABASE_DSN is the local default, set your own Postgres connection string for production")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS is the local default, set your own frontend origin for production")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
