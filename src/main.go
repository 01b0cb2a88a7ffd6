package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"

	"github.com/kjerosky/cryptogram"
	"github.com/kjerosky/cryptogram/pkg/dictionary"
)

type SolveCryptogramRequest struct {
	Cryptogram     string   `json:"cryptogram"`
	WordScope      string   `json:"wordScope"`
	IncludeObscure bool     `json:"includeObscure"`
	ExtraWords     []string `json:"extraWords"`
	AllowIdentity  bool     `json:"allowIdentity"`
	MaxSolutions   int      `json:"maxSolutions"`
}

type SolveCryptogramResponse struct {
	Success   bool     `json:"success"`
	Solutions []string `json:"solutions"`
	Error     string   `json:"error,omitempty"`
}

func execute(ctx context.Context, req SolveCryptogramRequest) ([]string, error) {
	req.Cryptogram = strings.ToLower(strings.TrimSpace(req.Cryptogram))
	if req.Cryptogram == "" {
		return nil, fmt.Errorf("cryptogram must not be empty")
	}
	if req.MaxSolutions <= 0 {
		return nil, fmt.Errorf("maxSolutions must be at least 1")
	}
	if req.MaxSolutions > 25 {
		return nil, fmt.Errorf("maxSolutions must be at most 25")
	}

	for i, word := range req.ExtraWords {
		req.ExtraWords[i] = strings.ToLower(word)
	}

	words := req.ExtraWords
	if req.WordScope != "" {
		cloudWords, err := cryptogram.LoadWordsFromCloud(ctx, req.WordScope, req.IncludeObscure)
		if err != nil {
			return nil, fmt.Errorf("LoadWordsFromCloud: %w", err)
		}
		fmt.Printf("Loaded %d words from the cloud\n", len(cloudWords))

		words = append(words, cloudWords...)
	}

	trie := dictionary.NewTrie()
	for _, word := range words {
		if dictionary.IsWord(word) {
			trie.Insert(word)
		}
	}
	if trie.Len() == 0 {
		return nil, fmt.Errorf("the dictionary must not be empty")
	}

	solver := cryptogram.NewSolver(trie, cryptogram.SolverParams{
		AllowIdentity: req.AllowIdentity,
	})

	// Solve the cryptogram
	var solutions []string
	count := 0

	deadline, ok := ctx.Deadline()
	timeout := 1 * time.Minute
	if ok {
		timeout = time.Until(deadline) - 5*time.Second
		fmt.Printf("Setting timeout to %v\n", timeout)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	for sol := range solver.Solutions(ctx, req.Cryptogram) {
		fmt.Printf("Found solution %d of at most %d\n", 1+count, req.MaxSolutions)

		solutions = append(solutions, sol.Plaintext)
		count++
		if count >= req.MaxSolutions {
			break
		}
	}

	return solutions, ctx.Err()
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Content-Type", "application/json")
}

func solveCryptogram(w http.ResponseWriter, r *http.Request) {
	// Set CORS headers
	setCORSHeaders(w)

	// Handle OPTIONS request for CORS preflight
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		fmt.Fprintf(w, `{"success": false, "error": "Method %s not allowed"}`, r.Method)
		return
	}

	var req SolveCryptogramRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fmt.Printf("Error parsing JSON body: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		response := SolveCryptogramResponse{
			Success: false,
			Error:   fmt.Sprintf("Invalid JSON: %v", err),
		}
		json.NewEncoder(w).Encode(response)
		return
	}

	solutions, err := execute(r.Context(), req)

	response := SolveCryptogramResponse{
		Success:   err == nil,
		Solutions: solutions,
	}

	if err != nil {
		response.Error = err.Error()
	} else if len(solutions) == 0 {
		response.Error = "No solutions could be derived for the given cryptogram"
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		fmt.Printf("Error marshaling response: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"success": false, "error": "Internal server error"}`)
		return
	}
}

func main() {
	funcframework.RegisterHTTPFunction("/solve-cryptogram", solveCryptogram)

	port := "8080"
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}
	hostname := ""
	if localOnly := os.Getenv("LOCAL_ONLY"); localOnly == "true" {
		hostname = "127.0.0.1"
	}
	if err := funcframework.StartHostPort(hostname, port); err != nil {
		log.Fatalf("funcframework.StartHostPort: %v\n", err)
	}
}
