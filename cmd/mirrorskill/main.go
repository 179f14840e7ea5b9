// Command mirrorskill is the AWS Lambda entry point of the mirror skill.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/hupe1980/mirrorskill"
	"github.com/hupe1980/mirrorskill/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger := cfg.NewLogger()

	s, err := mirrorskill.New(context.Background(), cfg, func(o *mirrorskill.Options) { o.Logger = logger })
	if err != nil {
		logger.Error("mirrorskill.init.failed", "error", err.Error())
		os.Exit(1)
	}

	lambda.Start(s.Handle)
}
