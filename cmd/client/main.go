// Command client is a small command-line front end for the itemvault API.
//
// Usage:
//
//	client -addr http://localhost:8080 register -name Alice -email a@example.com -password secret
//	client -addr http://localhost:8080 login -email a@example.com -password secret
//	ITEMVAULT_TOKEN=<token> client list
//	ITEMVAULT_TOKEN=<token> client create -title "first" -description "notes"
//	ITEMVAULT_TOKEN=<token> client update -id 1 -title "renamed"
//	ITEMVAULT_TOKEN=<token> client delete -id 1
//
// register and login print the issued token; authenticated commands read it
// from the ITEMVAULT_TOKEN environment variable or the -token flag.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/itemvault/itemvault/internal/apiclient"
	"github.com/itemvault/itemvault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	addr := flag.String("addr", "http://localhost:8080", "server base URL")
	token := flag.String("token", os.Getenv("ITEMVAULT_TOKEN"), "session token for authenticated commands")
	version := flag.Bool("version", false, "print build info and exit")
	flag.Parse()

	if *version {
		printBuildInfo()
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "expected a command: register, login, profile, list, create, update, delete")
		os.Exit(2)
	}

	client := apiclient.New(apiclient.Config{BaseURL: *addr, Timeout: 15 * time.Second})
	if *token != "" {
		client.SetToken(*token)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := runCommand(ctx, client, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", args[0], err)
		os.Exit(1)
	}
}

func runCommand(ctx context.Context, client *apiclient.Client, command string, args []string) error {
	switch command {
	case "register":
		return runRegister(ctx, client, args)
	case "login":
		return runLogin(ctx, client, args)
	case "profile":
		return runProfile(ctx, client, args)
	case "list":
		return runList(ctx, client)
	case "create":
		return runCreate(ctx, client, args)
	case "update":
		return runUpdate(ctx, client, args)
	case "delete":
		return runDelete(ctx, client, args)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func runRegister(ctx context.Context, client *apiclient.Client, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	auth, err := client.Register(ctx, models.RegisterRequest{
		Name:     *name,
		Email:    *email,
		Password: *password,
	})
	if err != nil {
		return err
	}

	return printJSON(auth)
}

func runLogin(ctx context.Context, client *apiclient.Client, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	auth, err := client.Login(ctx, models.LoginRequest{
		Email:    *email,
		Password: *password,
	})
	if err != nil {
		return err
	}

	return printJSON(auth)
}

func runProfile(ctx context.Context, client *apiclient.Client, args []string) error {
	fs := flag.NewFlagSet("profile", flag.ExitOnError)
	name := fs.String("name", "", "new display name")
	email := fs.String("email", "", "new email address")
	password := fs.String("password", "", "new password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var req models.ProfileUpdateRequest
	if *name != "" {
		req.Name = name
	}
	if *email != "" {
		req.Email = email
	}
	if *password != "" {
		req.Password = password
	}

	auth, err := client.UpdateProfile(ctx, req)
	if err != nil {
		return err
	}

	return printJSON(auth)
}

func runList(ctx context.Context, client *apiclient.Client) error {
	items, err := client.ListItems(ctx)
	if err != nil {
		return err
	}

	return printJSON(items)
}

func runCreate(ctx context.Context, client *apiclient.Client, args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	title := fs.String("title", "", "item title")
	description := fs.String("description", "", "item description")
	if err := fs.Parse(args); err != nil {
		return err
	}

	item, err := client.CreateItem(ctx, models.CreateItemRequest{
		Title:       *title,
		Description: *description,
	})
	if err != nil {
		return err
	}

	return printJSON(item)
}

func runUpdate(ctx context.Context, client *apiclient.Client, args []string) error {
	fs := flag.NewFlagSet("update", flag.ExitOnError)
	id := fs.Int64("id", 0, "item id")
	title := fs.String("title", "", "new title")
	description := fs.String("description", "", "new description")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var req models.UpdateItemRequest
	if *title != "" {
		req.Title = title
	}
	if *description != "" {
		req.Description = description
	}

	item, err := client.UpdateItem(ctx, *id, req)
	if err != nil {
		return err
	}

	return printJSON(item)
}

func runDelete(ctx context.Context, client *apiclient.Client, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	id := fs.Int64("id", 0, "item id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	deletedID, err := client.DeleteItem(ctx, *id)
	if err != nil {
		return err
	}

	return printJSON(models.DeletedItemResponse{ID: deletedID})
}

func printJSON(data any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(data)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
