package main

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/golangid/questionario-service/configs"
	"github.com/golangid/questionario-service/internal"
	"github.com/golangid/questionario-service/pkg/app"
)

const serviceName = "questionario-service"

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer func() {
		cancel()
		if r := recover(); r != nil {
			fmt.Println("Failed to start questionario service:", r)
			fmt.Printf("Stack trace: \n%s\n", debug.Stack())
		}
	}()

	deps, closeDeps := configs.Init(serviceName)
	defer closeDeps(ctx)

	service := internal.NewService(serviceName, deps)
	app.New(service).Run()
}
