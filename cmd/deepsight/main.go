package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"text/tabwriter"

	"deepsight/internal/app"
	deepsightclient "deepsight/internal/client"
	"deepsight/internal/config"
	"deepsight/internal/logging"
	"deepsight/internal/types"
)

const usageText = `deepsight is a research deep-dive workspace.

Usage:
  deepsight <command> [flags]

Commands:
  ui            run the terminal workspace
  papers        list papers
  paper         show one paper
  conferences   list conferences
  stats         show collection statistics
  chat          ask one question from the command line
  version       print version
  help          show help

Flags:
  -h, --help   show help

Examples:
  deepsight ui
  deepsight papers --conference NeurIPS --year 2017
  deepsight chat "what is the attention mechanism?"
`

const version = "dev"

func printUsage() {
	fmt.Fprint(os.Stderr, usageText)
}

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		exitOnErr("ui", runUI(nil))
		return
	}

	switch args[0] {
	case "-h", "--help", "help":
		printUsage()
	case "ui":
		exitOnErr("ui", runUI(args[1:]))
	case "papers":
		exitOnErr("papers", runPapers(args[1:]))
	case "paper":
		exitOnErr("paper", runPaper(args[1:]))
	case "conferences":
		exitOnErr("conferences", runConferences(args[1:]))
	case "stats":
		exitOnErr("stats", runStats(args[1:]))
	case "chat":
		exitOnErr("chat", runChat(args[1:]))
	case "version":
		fmt.Println(buildVersion())
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		printUsage()
		os.Exit(2)
	}
}

func runUI(args []string) error {
	fs := flag.NewFlagSet("ui", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadCoreConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := uiLogger(logging.ParseLevel(cfg.LogLevel()))
	if err != nil {
		return err
	}
	defer closeLog()

	client := deepsightclient.NewWithBaseURL(cfg.ServerBaseURL())
	return app.Run(client, cfg, logger)
}

// uiLogger writes to a file under the data dir; stderr belongs to the
// terminal UI while it is running.
func uiLogger(level logging.Level) (logging.Logger, func(), error) {
	dataDir, err := config.DataDir()
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, nil, err
	}
	logFile, err := os.OpenFile(dataDir+"/ui.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return logging.New(logFile, level), func() { _ = logFile.Close() }, nil
}

func runPapers(args []string) error {
	fs := flag.NewFlagSet("papers", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	conference := fs.String("conference", "", "filter by conference name")
	year := fs.Int("year", 0, "filter by publication year")
	keyword := fs.String("keyword", "", "filter by keyword")
	limit := fs.Int("limit", 50, "maximum papers to list")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := deepsightclient.New()
	if err != nil {
		return err
	}
	papers, err := client.FetchPapers(context.Background(), deepsightclient.PaperQuery{
		Conference: *conference,
		Year:       *year,
		Keyword:    *keyword,
		Limit:      *limit,
	})
	if err != nil {
		return err
	}

	printPapers(papers)
	return nil
}

func runPaper(args []string) error {
	fs := flag.NewFlagSet("paper", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: deepsight paper <id>")
	}

	client, err := deepsightclient.New()
	if err != nil {
		return err
	}
	paper, err := client.GetPaper(context.Background(), fs.Arg(0))
	if err != nil {
		return err
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintf(writer, "title\t%s\n", paper.Title)
	fmt.Fprintf(writer, "authors\t%s\n", strings.Join(paper.Authors, ", "))
	fmt.Fprintf(writer, "conference\t%s %d\n", paper.Conference, paper.Year)
	fmt.Fprintf(writer, "citations\t%d\n", paper.Citations)
	if paper.Organization != "" {
		fmt.Fprintf(writer, "organization\t%s\n", paper.Organization)
	}
	if len(paper.Keywords) > 0 {
		fmt.Fprintf(writer, "keywords\t%s\n", strings.Join(paper.Keywords, ", "))
	}
	if err := writer.Flush(); err != nil {
		return err
	}
	if paper.Abstract != "" {
		fmt.Println()
		fmt.Println(paper.Abstract)
	}
	return nil
}

func runConferences(args []string) error {
	fs := flag.NewFlagSet("conferences", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := deepsightclient.New()
	if err != nil {
		return err
	}
	conferences, err := client.ListConferences(context.Background())
	if err != nil {
		return err
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tPAPERS\tYEARS\tIMPACT\tACCEPTANCE")
	for _, conference := range conferences {
		fmt.Fprintf(writer, "%s\t%d\t%s\t%.1f\t%s\n",
			conference.Name, conference.TotalPapers, conference.YearRange, conference.ImpactScore, conference.AcceptanceRate)
	}
	return writer.Flush()
}

func runStats(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := deepsightclient.New()
	if err != nil {
		return err
	}
	stats, err := client.GetConferenceStats(context.Background())
	if err != nil {
		return err
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintf(writer, "conferences\t%d\n", stats.TotalConferences)
	fmt.Fprintf(writer, "papers\t%d\n", stats.TotalPapers)
	fmt.Fprintf(writer, "years covered\t%d\n", stats.YearsCovered)
	fmt.Fprintf(writer, "papers per year\t%.1f\n", stats.AvgPapersPerYear)
	return writer.Flush()
}

func runChat(args []string) error {
	fs := flag.NewFlagSet("chat", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	message := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if message == "" {
		// No argument: read one question from stdin.
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("read question: %w", err)
		}
		message = strings.TrimSpace(line)
	}
	if message == "" {
		return fmt.Errorf("a question is required")
	}

	client, err := deepsightclient.New()
	if err != nil {
		return err
	}
	reply, err := client.PostChatMessage(context.Background(), message)
	if err != nil {
		return err
	}
	fmt.Println(reply.Response)
	return nil
}

func printPapers(papers []*types.Paper) {
	writer := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tTITLE\tCONFERENCE\tYEAR\tCITATIONS")
	for _, paper := range papers {
		title := paper.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%d\t%d\n", paper.ID, title, paper.Conference, paper.Year, paper.Citations)
	}
	_ = writer.Flush()
}

func exitOnErr(label string, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "%s error: %v\n", label, err)
	os.Exit(1)
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		var revision string
		var modified string
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				revision = setting.Value
			case "vcs.modified":
				modified = setting.Value
			}
		}
		if revision != "" {
			short := revision
			if len(short) > 12 {
				short = short[:12]
			}
			if modified == "true" {
				short += "-dirty"
			}
			return version + "+" + short
		}
	}
	return version
}
