package main

import (
	"flag"

	"github.com/KianoushAmirpour/medical_image_analyzer/internal/application"
	config "github.com/KianoushAmirpour/medical_image_analyzer/internal/infrastructure/configs"
)

// @title        Medical Image Analyzer API
// @version      1.0
// @description  Uploads a medical image with optional patient context and returns a generative-AI analysis.
// @BasePath     /
func main() {

	envFile := flag.String("env", ".env", "path to an optional .env file")
	flag.Parse()

	cfg, err := config.LoadConfigs(*envFile)
	if err != nil {
		panic(err)
	}

	app := application.App{Cfg: cfg}
	app.Run()

}
