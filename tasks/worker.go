package tasks

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"inclusivehub/config"
	placeRepo "inclusivehub/database/repository/place"
	"inclusivehub/services/assistant"

	"github.com/hibiken/asynq"
)

func redisClientOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	}
}

// NewTaskClient returns an enqueue-side client for the task queue.
func NewTaskClient() *asynq.Client {
	return asynq.NewClient(redisClientOpt())
}

// InitAnalysisWorker runs the async worker in background. It picks up
// place-photo analysis tasks and writes detected accessibility features back
// to the place document.
func InitAnalysisWorker(assistantSvc assistant.AssistantService, places placeRepo.PlaceRepository) {
	srv := asynq.NewServer(
		redisClientOpt(),
		asynq.Config{
			Concurrency: 4,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAnalyzePlaceImage, handleAnalyzePlaceImage(assistantSvc, places))

	go func() {
		log.Println("[AnalysisWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[AnalysisWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[AnalysisWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleAnalyzePlaceImage(assistantSvc assistant.AssistantService, places placeRepo.PlaceRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p AnalyzePlaceImagePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[AnalysisWorker] invalid payload: %v", err)
			return err
		}

		analysis, err := assistantSvc.AnalyzeAccessibilityImage(ctx, p.ImageBase64)
		if err != nil {
			log.Printf("[AnalysisWorker] analysis failed for place %s: %v", p.PlaceID, err)
			return err
		}

		if err := places.UpdateAccessibility(ctx, p.PlaceID, analysis.Features, analysis.Description); err != nil {
			log.Printf("[AnalysisWorker] failed to store analysis for place %s: %v", p.PlaceID, err)
			return err
		}

		log.Printf("[AnalysisWorker] place %s updated with %d detected features", p.PlaceID, len(analysis.Features))
		return nil
	}
}
