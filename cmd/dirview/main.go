package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"log/slog"

	"github.com/RomanyU1662160/docker-kuberents/pkg/aggregate"
	apiclient "github.com/RomanyU1662160/docker-kuberents/pkg/api/client"
	"github.com/RomanyU1662160/docker-kuberents/pkg/config"
)

var buildVersion = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "health":
		err = commandHealth(args)
	case "users":
		err = commandUsers(args)
	case "version", "--version", "-v":
		printVersion()
		return
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newClient(base string) (*apiclient.Client, error) {
	if base == "" {
		base = config.GetString("DIRECTORY_URL", "http://localhost:3000")
	}
	return apiclient.New(base)
}

func commandHealth(args []string) error {
	fs := flag.NewFlagSet("health", flag.ExitOnError)
	apiBase := fs.String("api", "", "Directory base URL (default http://localhost:3000)")
	fs.Parse(args)

	api, err := newClient(*apiBase)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	local, err := api.Health(ctx)
	if err != nil {
		fmt.Printf("directory:   unreachable (%v)\n", err)
	} else {
		fmt.Printf("directory:   %s (uptime %.0fs)\n", local.Status, local.Uptime)
	}

	downstream, err := api.GatewayHealth(ctx)
	if err != nil {
		fmt.Printf("fulfillment: unreachable (%v)\n", err)
		return nil
	}
	fmt.Printf("fulfillment: %s (uptime %.0fs)\n", downstream.Status, downstream.Uptime)
	return nil
}

func commandUsers(args []string) error {
	fs := flag.NewFlagSet("users", flag.ExitOnError)
	apiBase := fs.String("api", "", "Directory base URL (default http://localhost:3000)")
	fs.Parse(args)

	api, err := newClient(*apiBase)
	if err != nil {
		return err
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	agg := aggregate.New(api, log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	views, err := agg.UsersWithOrders(ctx)
	if err != nil {
		return fmt.Errorf("fetch users: %w", err)
	}
	if len(views) == 0 {
		fmt.Println("no users found")
		return nil
	}
	for _, view := range views {
		fmt.Printf("%d  %s <%s>\n", view.User.ID, view.User.Name, view.User.Email)
		switch {
		case view.Err != nil:
			fmt.Printf("   orders unavailable: %v\n", view.Err)
		case len(view.Orders) == 0:
			fmt.Println("   no orders found")
		default:
			for _, order := range view.Orders {
				fmt.Printf("   #%d %s x%d\n", order.ID, order.Item, order.Quantity)
			}
		}
	}
	return nil
}

func printVersion() {
	fmt.Printf("dirview %s\n", buildVersion)
}

func printUsage() {
	fmt.Println(`dirview - terminal view of the user/order directory

Usage:
  dirview health [-api URL]   Show directory and fulfillment health
  dirview users  [-api URL]   Show users with their aggregated orders
  dirview version             Print version`)
}
