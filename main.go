package main

import (
	"flag"
	"fmt"
	"os"

	"PulseMap/internal/server"
)

func main() {
	addr := flag.String("addr", "", "address to listen on (overrides config)")
	configPath := flag.String("config", "configs/pulsemap.yaml", "path to config file")
	flag.Parse()

	cfg, err := server.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	if err := server.StartApp(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
