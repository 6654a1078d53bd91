package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/catreq-service/internal/models/m_outbox"
)

func main() {
	defaultDB := os.Getenv("SPANNER_DB")
	if defaultDB == "" {
		defaultDB = "projects/test-project/instances/dev-instance/databases/catreq-db"
	}

	spannerDB := flag.String("db", defaultDB, "Spanner database path")
	status := flag.String("status", "", "filter by event status (pending, completed, failed)")
	limit := flag.Int("limit", 10, "max events to print")
	flag.Parse()

	ctx := context.Background()

	client, err := spanner.NewClient(ctx, *spannerDB)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}
	defer client.Close()

	stmt := spanner.Statement{
		SQL:    "SELECT event_id, event_type, aggregate_id, status, created_at FROM request_events ORDER BY created_at DESC LIMIT @limit",
		Params: map[string]interface{}{"limit": int64(*limit)},
	}
	if *status != "" {
		stmt.SQL = "SELECT event_id, event_type, aggregate_id, status, created_at FROM request_events WHERE status = @status ORDER BY created_at DESC LIMIT @limit"
		stmt.Params["status"] = *status
	}

	iter := client.Single().Query(ctx, stmt)
	defer iter.Stop()

	fmt.Printf("Events in %s table:\n", m_outbox.TableName)
	count := 0
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			log.Fatalf("Failed to iterate: %v", err)
		}

		var eventID, eventType, aggregateID, eventStatus string
		var createdAt spanner.NullTime
		if err := row.Columns(&eventID, &eventType, &aggregateID, &eventStatus, &createdAt); err != nil {
			log.Fatalf("Failed to scan: %v", err)
		}

		fmt.Printf("%d. %s - %s (request: %s, status: %s)\n", count+1, eventType, eventID, aggregateID, eventStatus)
		count++
	}

	if count == 0 {
		fmt.Println("No events found!")
	} else {
		fmt.Printf("\nTotal: %d events\n", count)
	}
}
