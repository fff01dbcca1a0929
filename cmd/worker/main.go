package main

import (
	"context"
	"log"
	"os"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"

	"dressapi/dbhelper"
	"dressapi/tasks"
)

func runScheduler() {

	scheduler := asynq.NewScheduler(asynq.RedisClientOpt{Addr: os.Getenv("ASYNC_BROKER_ADDRESS")}, &asynq.SchedulerOpts{
		LogLevel: asynq.InfoLevel,
	})

	scheduled := []struct {
		cron string
		task *asynq.Task
		desc string
	}{
		{
			cron: "0 3 * * *", // 3:00 AM daily
			task: tasks.NewChatPruneTask(),
			desc: "Chat log retention pruning",
		},
	}

	for _, t := range scheduled {
		// the server below only consumes the chatlog queue, so scheduled
		// tasks must be enqueued there and not to default
		entryID, err := scheduler.Register(t.cron, t.task, asynq.Queue("chatlog"))
		if err != nil {
			log.Fatalf("Failed to register task '%s': %v", t.desc, err)
		}
		log.Printf("Registered task '%s' with ID: %s, cron: %s", t.desc, entryID, t.cron)
	}

	log.Println("Starting scheduler...")
	if err := scheduler.Run(); err != nil {
		log.Fatalf("Scheduler failed: %v", err)
	}
}

func main() {
	godotenv.Load()

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: os.Getenv("ASYNC_BROKER_ADDRESS")},
		asynq.Config{Concurrency: 10, Queues: map[string]int{
			"chatlog": 7,
		}},
	)

	db := dbhelper.SetupDB()
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeChatLog, func(ctx context.Context, t *asynq.Task) error {
		return tasks.HandleChatLogTask(ctx, t, db)
	})
	mux.HandleFunc(tasks.TypeChatPrune, func(ctx context.Context, t *asynq.Task) error {
		return tasks.HandleChatPruneTask(ctx, t, db)
	})

	go runScheduler()
	if err := srv.Run(mux); err != nil {
		log.Fatal(err)
	}
}
