package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"

	"menuparser/internal/client"
)

func main() {
	server := flag.String("server", "http://localhost:8080", "base URL of the menu parser API")
	copyOut := flag.Bool("copy", false, "copy the extracted items to the clipboard as JSON")
	asJSON := flag.Bool("json", false, "print items as JSON instead of a table")
	verbose := flag.Bool("v", false, "log state transitions")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <image>...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	files := make([]client.File, 0, flag.NArg())
	for _, path := range flag.Args() {
		f, err := client.ReadFile(path)
		if err != nil {
			log.Fatalf("❌ Read %s: %v", path, err)
		}
		files = append(files, f)
	}

	var clip client.Clipboard
	if *copyOut {
		c, err := client.NewCommandClipboard()
		if err != nil {
			log.Fatalf("❌ Clipboard: %v", err)
		}
		clip = c
	}

	page := client.NewPage(*server, clip, client.WithOnChange(func(s client.State) {
		log.WithFields(log.Fields{
			"uploading": s.IsUploading,
			"items":     len(s.MenuItems),
			"copied":    s.Copied,
		}).Debug("State changed")
	}))
	defer page.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	widget := client.NewWidget(page.HandleUpload, page.IsUploading)
	if err := widget.Drop(ctx, files); err != nil {
		if msg := page.State().Error; msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		} else {
			log.Error(err)
		}
		os.Exit(1)
	}

	items := page.State().MenuItems
	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(items); err != nil {
			log.Fatal(err)
		}
	} else if err := client.RenderTable(os.Stdout, items); err != nil {
		log.Fatal(err)
	}

	if *copyOut {
		if err := page.Copy(); err != nil {
			log.Fatalf("❌ Copy: %v", err)
		}
		fmt.Fprintln(os.Stderr, "Copied!")
	}
}
