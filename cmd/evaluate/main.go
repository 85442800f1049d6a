package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"masteryengine/mastery"
)

func main() {
	baseURL := flag.String("url", mastery.DefaultBaseURL, "inference service base url")
	correct := flag.Bool("correct", false, "whether the attempt was correct")
	timeMs := flag.Float64("time_ms", 0, "time spent on the attempt in milliseconds")
	hints := flag.Float64("hint_count", 0, "number of hints used")
	timeout := flag.Duration("timeout", 5*time.Second, "request timeout")
	flag.Parse()

	client := mastery.NewClient(*baseURL, *timeout)
	result, err := client.Evaluate(context.Background(), mastery.Attempt{
		Correct:   *correct,
		TimeMs:    *timeMs,
		HintCount: *hints,
	})
	if err != nil {
		log.Fatalf("evaluate failed: %v", err)
	}

	if err := json.NewEncoder(os.Stdout).Encode(result); err != nil {
		log.Fatalf("write result: %v", err)
	}
}
