package main

import (
	"log"

	"hotel-booking/cmd"

	"go.uber.org/zap"
)

func main() {
	rt, err := cmd.Bootstrap(false)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer rt.Close()

	// Start server
	rt.Logger.Info("Starting HTTP server", zap.String("port", rt.Config.App.Port))

	cmd.APIServer(rt.App.Router, rt.Config.App.Port)
}
