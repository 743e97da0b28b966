package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/AbdullahNaeem1090/vidflow-final/internal/app"
	"github.com/AbdullahNaeem1090/vidflow-final/internal/config"
	"github.com/AbdullahNaeem1090/vidflow-final/internal/domain"
	"github.com/AbdullahNaeem1090/vidflow-final/internal/log"
	"github.com/AbdullahNaeem1090/vidflow-final/internal/notify"
	"github.com/AbdullahNaeem1090/vidflow-final/internal/store"
)

// Version is set at build time via -ldflags
var Version = "dev"

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

const usage = `vidflow — single-process video platform demo

Usage:
  vidflow [flags] <command> [args]

Commands:
  home                     print the home feed
  channel <user-id>        print a channel page (requires login)
  login <email> <password> log in and persist the session
  logout                   clear the session
  suggest <query>          print typeahead suggestions
  search <query> [page]    print one page of search results
  keys                     list persisted documents
  reset                    wipe all persisted state
`

func main() {
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if showVersion {
		fmt.Printf("vidflow %s\n", Version)
		return
	}

	if err := run(flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)
	logger.Info("starting vidflow", "version", Version)

	blobs, err := store.Open(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer blobs.Close()

	seed := app.Seed{}
	if cfg.Seed.Demo {
		seed = app.DemoSeed()
	}

	a := app.New(cfg, blobs, notify.NewConsole(os.Stdout), logger, seed)

	if len(args) == 0 {
		flag.Usage()
		return nil
	}

	switch args[0] {
	case "home":
		for _, v := range a.Media.Home() {
			fmt.Printf("%s %s\n", titleStyle.Render(v.Title), dimStyle.Render("("+v.Duration+")"))
			fmt.Printf("  %s · %s · %s\n", v.Channel, v.Views, v.TimeAgo)
		}
		return nil

	case "channel":
		if len(args) < 2 {
			return fmt.Errorf("usage: vidflow channel <user-id>")
		}
		ch, err := a.Identity.Channel(args[1])
		if err != nil {
			return err
		}
		fmt.Printf("%s %s\n", titleStyle.Render(ch.Name), dimStyle.Render(fmt.Sprintf("%d subscribers", ch.Subscribers)))
		for _, v := range ch.Videos {
			fmt.Printf("  %s · %s\n", v.Title, v.Views)
		}
		for _, p := range ch.Playlists {
			fmt.Printf("  [playlist] %s (%d videos)\n", p.Title, p.VideoCount)
		}
		return nil

	case "login":
		if len(args) < 3 {
			return fmt.Errorf("usage: vidflow login <email> <password>")
		}
		return a.Identity.Login(args[1], args[2])

	case "logout":
		a.Identity.Logout()
		return nil

	case "suggest":
		if len(args) < 2 {
			return fmt.Errorf("usage: vidflow suggest <query>")
		}
		sug := a.Search.Suggest(args[1])
		for _, v := range sug.Videos {
			fmt.Printf("%s %s\n", v.Title, dimStyle.Render("by "+v.Owner.Username))
		}
		for _, u := range sug.Users {
			fmt.Printf("%s %s\n", u.Username, dimStyle.Render("channel"))
		}
		return nil

	case "search":
		if len(args) < 2 {
			return fmt.Errorf("usage: vidflow search <query> [page]")
		}
		page := 1
		if len(args) > 2 {
			if p, err := strconv.Atoi(args[2]); err == nil {
				page = p
			}
		}
		res := a.Search.Find(args[1], domain.ScopeAll, page)
		if res == nil {
			return nil
		}
		for _, v := range res.Videos {
			fmt.Printf("%s %s\n", v.Title, dimStyle.Render("by "+v.Owner.Username))
		}
		for _, u := range res.Users {
			fmt.Printf("%s %s\n", u.Username, dimStyle.Render("channel"))
		}
		fmt.Println(dimStyle.Render(fmt.Sprintf("page %d of %d (%d videos, %d users)",
			res.Page, res.TotalPages, res.TotalVideos, res.TotalUsers)))
		return nil

	case "keys":
		for _, k := range blobs.Keys() {
			fmt.Println(k)
		}
		return nil

	case "reset":
		blobs.Reset()
		fmt.Println("storage cleared")
		return nil

	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}
