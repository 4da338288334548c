package main

import (
	"flag"
	"strconv"

	"github.com/vskvj3/deques/internal/core"
	"github.com/vskvj3/deques/internal/network"
	"github.com/vskvj3/deques/internal/utils"
)

func main() {
	configPtr := flag.String("config", utils.DefaultConfigPath(), "Path of the YAML config file")
	portPtr := flag.String("port", "", "Port of server")
	dequePtr := flag.String("deque", "", "Deque variant to serve: array, linked or averaging")
	flag.Parse()

	// Load configurations
	config, err := utils.LoadConfig(*configPtr)
	if err != nil {
		utils.NewLogger("", true).Error("Error loading configuration: " + err.Error())
		return
	}
	logger := utils.NewLogger(config.LogFile, config.Debug)
	logger.Info("Loaded configurations from " + *configPtr)

	kind := config.Deque
	if *dequePtr != "" {
		kind = *dequePtr
	}
	deque, err := core.NewDeque(kind)
	if err != nil {
		logger.Error(err.Error())
		return
	}
	logger.Info("Serving a " + kind + " deque")

	port := strconv.Itoa(config.Port)
	if *portPtr != "" {
		port = *portPtr
	}

	server, err := network.NewServer(port, core.NewCommandHandler(deque, logger), logger)
	if err != nil {
		logger.Error("Server creation failed: " + err.Error())
		return
	}
	if err := server.Listen(); err != nil {
		logger.Error(err.Error())
		return
	}
	defer server.Close()

	if err := server.Serve(); err != nil {
		logger.Error(err.Error())
	}
}
