// seed inserts development sample records for local testing.
// Idempotent: already-seeded records (duplicate record_id) are skipped.
package main

import (
	"context"
	"errors"
	"log"
	"time"

	"stresswatch/backend/internal/config"
	"stresswatch/backend/internal/db"
	"stresswatch/backend/internal/stress/domain"
	"stresswatch/backend/internal/stress/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set; create a .env from .env.example or set DATABASE_URL")
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer conn.Close()

	store := repository.NewPostgresRepository(conn)
	ctx := context.Background()
	now := time.Now().UTC()

	records := []*domain.StressRecord{
		{
			RecordID:          "seed-record-001",
			UserID:            "7d9f1a3e-0c52-4f6b-9a1d-2b8e4c6d8f01",
			StressScore:       72.5,
			Analysis:          "Elevated stress_level readings across all rows with sleep_hours below 5.",
			ThresholdExceeded: true,
			CreatedAt:         now.Add(-2 * time.Hour),
		},
		{
			RecordID:          "seed-record-002",
			UserID:            "3c1b7e5a-8d94-4a2f-b6c0-1f9d5e7a2b02",
			StressScore:       18.0,
			Analysis:          "Stress indicators within normal range; sleep and mood stable.",
			ThresholdExceeded: false,
			CreatedAt:         now.Add(-1 * time.Hour),
		},
		{
			RecordID:          "seed-record-003",
			UserID:            "9e4d2c6f-1a83-4b5e-8f7a-6c0b3d9e1a03",
			StressScore:       55.0,
			Analysis:          "Moderate stress with declining mood_score over the sampled window.",
			ThresholdExceeded: true,
			CreatedAt:         now,
		},
	}

	seeded := 0
	for _, rec := range records {
		if err := store.Save(ctx, rec); err != nil {
			if errors.Is(err, domain.ErrDuplicateRecord) {
				log.Printf("record %s already seeded, skipping", rec.RecordID)
				continue
			}
			log.Fatalf("seed %s: %v", rec.RecordID, err)
		}
		seeded++
	}

	log.Printf("Seed completed: %d inserted, %d skipped.", seeded, len(records)-seeded)
}
