package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/devkimani/imgfetch"
)

var (
	dirFlag      string
	yesFlag      bool
	checkDupFlag bool
	verboseFlag  bool
)

var failMark = color.New(color.FgRed).Sprint("✗")

var rootCmd = &cobra.Command{
	Use:   "imgfetch [url]",
	Short: "Mindfully fetch a single image from the web",
	Long: `Ubuntu Image Fetcher downloads one image from a URL into a local
directory, validating the content type and confirming overwrites and large
files before any bytes are kept.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Welcome to the Ubuntu Image Fetcher")
		fmt.Println("A tool for mindfully collecting images from the web")
		fmt.Println()

		var rawURL string
		if len(args) == 1 {
			rawURL = args[0]
		} else {
			rawURL = readLine("Please enter the image URL: ")
		}
		if strings.TrimSpace(rawURL) == "" {
			fmt.Printf("%s No URL provided. Ubuntu thrives on connection.\n", failMark)
			return nil
		}

		fmt.Println("Connecting to the global community...")
		if _, err := newFetcher().Fetch(rawURL); err != nil {
			report(err)
			return nil
		}

		fmt.Println("\nConnection strengthened. Community enriched.")
		return nil
	},
}

var batchCmd = &cobra.Command{
	Use:   "batch [url...]",
	Short: "Fetch several images in sequence",
	RunE: func(cmd *cobra.Command, args []string) error {
		urls := args
		if len(urls) == 0 {
			urls = collectURLs()
		}
		if len(urls) == 0 {
			fmt.Println("No URLs provided.")
			return nil
		}

		fetcher := newFetcher()
		fetcher.Quiet = true

		fmt.Printf("\nProcessing %d URLs...\n", len(urls))
		successful := 0
		for _, r := range fetcher.FetchAll(urls) {
			if r.Err != nil {
				report(r.Err)
				continue
			}
			successful++
		}

		fmt.Printf("\nBatch complete: %d/%d successful downloads\n", successful, len(urls))
		return nil
	},
}

func newFetcher() *imgfetch.Fetcher {
	fetcher := imgfetch.NewFetcher()
	fetcher.Dir = dirFlag
	fetcher.CheckDuplicates = checkDupFlag
	if yesFlag {
		fetcher.Prompter = imgfetch.AcceptAll{}
	}
	return fetcher
}

// report prints one classified message per failure; declined prompts are not
// failures and keep their own wording. The process exits 0 either way.
func report(err error) {
	if imgfetch.IsCancel(err) {
		fmt.Println(err.Error())
		return
	}
	fmt.Printf("%s %s\n", failMark, imgfetch.Classify(err))
}

func readLine(prompt string) string {
	fmt.Print(prompt)
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	return strings.TrimSpace(line)
}

func collectURLs() []string {
	fmt.Println("Enter multiple URLs (one per line). Press Enter twice when done.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	var urls []string
	for {
		fmt.Print("URL: ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}
		urls = append(urls, line)
	}
	return urls
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dirFlag, "dir", "d", imgfetch.DefaultDir, "directory to save images into")
	rootCmd.PersistentFlags().BoolVarP(&yesFlag, "yes", "y", false, "answer yes to every confirmation prompt")
	rootCmd.PersistentFlags().BoolVar(&checkDupFlag, "check-duplicates", false, "skip files whose content already exists in the directory")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log request and response details")
	rootCmd.AddCommand(batchCmd)

	cobra.OnInitialize(func() {
		if verboseFlag {
			logrus.SetLevel(logrus.DebugLevel)
		} else {
			logrus.SetLevel(logrus.WarnLevel)
		}
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
