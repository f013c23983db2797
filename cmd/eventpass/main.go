// cmd/eventpass/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"eventpass/internal/account"
	"eventpass/internal/api"
	"eventpass/internal/events"
	"eventpass/internal/organizer"
	"eventpass/internal/tickets"
)

func main() {
	// A missing .env is fine; plain environment variables still apply.
	_ = godotenv.Load(".env")

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	baseURL := flag.String("base-url", getEnv("EVENTPASS_API_URL", "http://localhost:8080"), "API base URL")
	email := flag.String("email", os.Getenv("EVENTPASS_EMAIL"), "account email")
	password := flag.String("password", os.Getenv("EVENTPASS_PASSWORD"), "account password")
	eventID := flag.String("event", "", "event id for book/favorite")
	ticketID := flag.String("ticket", "", "ticket id for cancel")
	quantity := flag.Int("quantity", 1, "tickets per booking")
	flag.Parse()

	shutdown, err := initTracing(context.Background())
	if err != nil {
		log.Warn().Err(err).Msg("tracing disabled")
	} else {
		defer shutdown(context.Background())
	}

	session := api.NewSession()
	client := api.NewClient(*baseURL, session, &log)
	store := events.NewStore()

	accounts := account.NewService(client, &log)
	catalog := events.NewService(client, store, &log)
	orders := tickets.NewService(client, store, &log)
	backoffice := organizer.NewService(client, &log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if *email != "" {
		if _, err := accounts.Login(ctx, account.Credentials{Email: *email, Password: *password}); err != nil {
			log.Fatal().Str("reason", api.AsError(err).Message()).Msg("login failed")
		}
	}

	switch flag.Arg(0) {
	case "events", "":
		listEvents(ctx, catalog, &log)
	case "popular":
		items, err := catalog.Popular(ctx)
		exitOn(err, &log)
		printEvents(items)
	case "upcoming":
		items, err := catalog.Upcoming(ctx)
		exitOn(err, &log)
		printEvents(items)
	case "favorites":
		items, err := catalog.Favorites(ctx)
		exitOn(err, &log)
		printEvents(items)
	case "book":
		result, err := orders.Book(ctx, tickets.BookingRequest{EventID: *eventID, Quantity: *quantity})
		exitOn(err, &log)
		fmt.Printf("order %s: %d ticket(s)\n", result.OrderNumber, len(result.Tickets))
		if first, ok := result.FirstTicket(); ok {
			fmt.Printf("first ticket code: %s\n", first.Code)
		}
	case "cancel":
		err := orders.Cancel(ctx, tickets.CancelRequest{TicketID: *ticketID, Reason: tickets.ReasonNoLongerInterested})
		exitOn(err, &log)
		fmt.Println("ticket cancelled")
	case "tickets":
		mine, err := orders.List(ctx)
		exitOn(err, &log)
		for _, t := range mine {
			fmt.Printf("%s  %-10s  %s\n", t.ID, t.Status, t.Event.Title)
		}
	case "stats":
		st, err := backoffice.Stats(ctx)
		exitOn(err, &log)
		fmt.Printf("revenue: %.2f, tickets sold: %d, events: %d\n", st.Revenue, st.TicketsSold, st.EventCount)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", flag.Arg(0))
		os.Exit(2)
	}
}

func listEvents(ctx context.Context, catalog events.Service, log *zerolog.Logger) {
	items, err := catalog.List(ctx, events.ListParams{Page: 1, Limit: 20})
	exitOn(err, log)
	printEvents(items)
}

func printEvents(items []events.CanonicalEvent) {
	for _, ev := range items {
		category := "-"
		if ev.CategoryName != nil {
			category = *ev.CategoryName
		}
		fmt.Printf("%s  %-30s  %-12s  %d/%d seats\n", ev.ID, ev.Title, category, ev.AvailableCapacity, ev.TotalCapacity)
	}
}

func exitOn(err error, log *zerolog.Logger) {
	if err != nil {
		log.Fatal().Str("reason", api.AsError(err).Message()).Msg("command failed")
	}
}

// initTracing wires the OTLP HTTP exporter when an endpoint is configured.
func initTracing(ctx context.Context) (func(context.Context) error, error) {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		return nil, fmt.Errorf("no OTLP endpoint configured")
	}
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}
	provider := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(provider)
	return provider.Shutdown, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
