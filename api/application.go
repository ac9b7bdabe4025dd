package api

import (
	"github.com/chromatone/api/reports"
)

type Config struct {
	HTTPPort          string
	ReportDir         string
	JwtSecret         string
	JwtAccessDuration int // seconds
	JwtDomain         string
	AdminEmail        string
	AdminPasswordHash string
	AllowedOrigins    []string
	DevMode           bool
}

type Application struct {
	Config  Config
	Reports reports.Generator
}
