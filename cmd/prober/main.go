package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	myenergi "github.com/mgazza/myenergi-totals"
)

func main() {
	// Hub serial number (username) - found on hub or in myenergi app.
	serial := os.Getenv("MYENERGI_SERIAL")
	// API key from myaccount.myenergi.com -> Products -> Advanced -> Generate API key.
	apiKey := os.Getenv("MYENERGI_API_KEY")

	if serial == "" || apiKey == "" {
		fmt.Println("Set MYENERGI_SERIAL and MYENERGI_API_KEY environment variables")
		os.Exit(1)
	}

	service := myenergi.NewMyEnergiService(http.DefaultTransport, myenergi.DirectorHost, serial, apiKey, 10*time.Second)

	status, err := service.Probe()
	if err != nil {
		log.Fatalf("Probe failed: %v", err)
	}

	fmt.Println(string(status))
}
