package main

import (
	"context"
	"flag"
	"log"

	"github.com/aevtikheev/dvmn-support-bot/internal/config"
	"github.com/aevtikheev/dvmn-support-bot/internal/dialogflow"
	"github.com/aevtikheev/dvmn-support-bot/internal/logger"
)

func main() {
	intentsFile := flag.String("intents", "intents.json", "path to a JSON file with intent definitions")
	stopOnError := flag.Bool("stop-on-error", false, "abort on the first intent that fails to upload")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logg := logger.New(cfg.LogLevel, cfg.LogFormat)

	intents, err := dialogflow.ReadIntentsFile(*intentsFile)
	if err != nil {
		log.Fatalf("load intents: %v", err)
	}

	var opts []dialogflow.TrainerOption
	if *stopOnError {
		opts = append(opts, dialogflow.WithStopOnError())
	}

	trainer := dialogflow.NewTrainer(cfg.GoogleAppCredsFile, logg, opts...)
	if err := trainer.TrainAgent(context.Background(), intents); err != nil {
		log.Fatalf("train agent: %v", err)
	}
}
