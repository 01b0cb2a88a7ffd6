package cryptogram

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"

	"github.com/kjerosky/cryptogram/pkg/dictionary"
)

// wordsProject is the cloud project that owns the word table.
const wordsProject = "xword-x"

// LoadWordsFromCloud fetches the dictionary words for a scope from BigQuery.
// Obscure words are rarely-known entries, excluded unless includeObscure is
// set. Results are lowercased and filtered to purely alphabetic words, ready
// for Trie.Insert.
func LoadWordsFromCloud(ctx context.Context, scope string, includeObscure bool) ([]string, error) {
	client, err := bigquery.NewClient(ctx, wordsProject)
	if err != nil {
		return nil, fmt.Errorf("bigquery.NewClient: %w", err)
	}
	defer client.Close()

	obscureValues := []string{"false"}
	if includeObscure {
		obscureValues = append(obscureValues, "true")
	}
	query := fmt.Sprintf("SELECT word_key FROM `%s.FirestoreQuery.all_words` WHERE scope = %q AND obscure IN (%s)", wordsProject, scope, strings.Join(obscureValues, ","))
	q := client.Query(query)
	q.Location = "US"

	job, err := q.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.Run: %w", err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Wait: %w", err)
	}
	if err := status.Err(); err != nil {
		return nil, fmt.Errorf("status.Err: %w", err)
	}
	it, err := job.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Read: %w", err)
	}

	var words []string
	for {
		var row []bigquery.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("it.Next: %w", err)
		}

		word, ok := row[0].(string)
		if !ok {
			return nil, fmt.Errorf("row[0] is not a string: %v", row[0])
		}
		word = strings.ToLower(word)
		if !dictionary.IsWord(word) {
			continue
		}
		words = append(words, word)
	}
	return words, nil
}
