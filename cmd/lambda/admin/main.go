package main

import (
	"log"

	"hotel-booking/cmd"

	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	rt, err := cmd.Bootstrap(true)
	if err != nil {
		log.Fatalf("Failed to start admin function: %v", err)
	}
	defer rt.Close()

	lambda.Start(rt.App.Functions.Admin)
}
