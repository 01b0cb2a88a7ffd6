package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"sort"
	"strings"
	"time"

	"github.com/kjerosky/cryptogram"
	"github.com/kjerosky/cryptogram/pkg/dictionary"
)

func main() {

	firstOnly := flag.Bool("first", false, "Only report the first solution")
	doAll := flag.Bool("all", false, "Report all solutions without prompting")
	dictFile := flag.String("dict", "", "The file to load dictionary words from")
	cloud := flag.Bool("cloud", false, "Load dictionary words from the cloud word table")
	scope := flag.String("scope", "regular", "The cloud word scope to load")
	obscure := flag.Bool("obscure", false, "Include obscure cloud words")
	mapSelf := flag.Bool("map-self", false, "Allow letters to map to themselves")

	timeout := flag.Duration("timeout", 1*time.Minute, "The timeout for the solver")

	profile := flag.Bool("profile", false, "Profile the solver")
	profileFile := flag.String("profile-file", "cpu.pprof", "The file to write the CPU profile to")
	memoryProfileFile := flag.String("memory-profile-file", "mem.pprof", "The file to write the memory profile to")

	flag.Parse()

	if *firstOnly && *doAll {
		fmt.Println("Cannot use both -first and -all")
		os.Exit(1)
	}
	if *dictFile == "" && !*cloud {
		fmt.Println("Must use either -dict or -cloud")
		os.Exit(1)
	}

	ctx := context.Background()

	loadStart := time.Now()
	var words []string
	if *dictFile != "" {
		fmt.Println("Loading words from file...")
		var err error
		if words, err = loadFromFile(*dictFile); err != nil {
			fmt.Println("Error loading words from file:", err)
			os.Exit(1)
		}
	}
	if *cloud {
		fmt.Println("Loading words from the cloud...")
		cloudWords, err := cryptogram.LoadWordsFromCloud(ctx, *scope, *obscure)
		if err != nil {
			fmt.Println("Error loading words from the cloud:", err)
			os.Exit(1)
		}
		words = append(words, cloudWords...)
	}

	trie := dictionary.NewTrie()
	for _, word := range words {
		trie.Insert(word)
	}

	fmt.Printf("Loaded %d words in %v\n", trie.Len(), time.Since(loadStart))
	printLengthHistogram(words)

	ciphertext := strings.Join(flag.Args(), " ")
	if ciphertext == "" {
		fmt.Print("Enter the cryptogram: ")
		scanner := bufio.NewScanner(os.Stdin)
		if scanner.Scan() {
			ciphertext = scanner.Text()
		}
	}
	ciphertext = strings.ToLower(strings.TrimSpace(ciphertext))
	if ciphertext == "" {
		fmt.Println("No cryptogram given")
		os.Exit(1)
	}

	var mf *os.File
	if *profile {
		f, err := os.Create(*profileFile)
		if err != nil {
			fmt.Println("Error creating profile file:", err)
			os.Exit(1)
		}
		defer f.Close()

		mf, err = os.Create(*memoryProfileFile)
		if err != nil {
			fmt.Println("Error creating memory profile file:", err)
			os.Exit(1)
		}
		defer mf.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Println("Error starting CPU profile:", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	solver := cryptogram.NewSolver(trie, cryptogram.SolverParams{
		AllowIdentity: *mapSelf,
	})

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	solveStart := time.Now()
	var solutions []string
	for sol := range solver.Solutions(ctx, ciphertext) {
		if err := ctx.Err(); err != nil {
			fmt.Println("Context error:", err)
			break
		}

		fmt.Println("--------------------------------")
		fmt.Println("SOLUTION FOUND:", sol.Plaintext)
		solutions = append(solutions, sol.Plaintext)

		if *firstOnly {
			break
		}

		if *doAll {
			continue
		}

		// Wait for user input and determine if they want to continue.
		// Continue (any key), show the cipher key (k), or stop (n)
		fmt.Print("Continue? [Y/n]: ")
		var input string
		fmt.Scanln(&input)
		if input == "k" || input == "K" {
			fmt.Println(sol.Key)
		}
		if input == "n" || input == "N" {
			break
		}
	}

	fmt.Println("--------------------------------")
	for i, plaintext := range solutions {
		fmt.Printf("%d. %s\n", i+1, plaintext)
	}
	fmt.Printf("%d solution(s) derived in %v\n", len(solutions), time.Since(solveStart))

	if mf != nil {
		pprof.WriteHeapProfile(mf)
	}

	if ctx.Err() != nil {
		fmt.Println("Context error:", ctx.Err())
	}
}

func loadFromFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return dictionary.ReadWords(f)
}

func printLengthHistogram(words []string) {
	countsByLength := make(map[int]int)
	for _, word := range words {
		countsByLength[len(word)]++
	}

	lengths := make([]int, 0, len(countsByLength))
	for length := range countsByLength {
		lengths = append(lengths, length)
	}
	sort.Ints(lengths)

	fmt.Println("Words by length:")
	for _, length := range lengths {
		fmt.Printf("  %d: %d\n", length, countsByLength[length])
	}
}
