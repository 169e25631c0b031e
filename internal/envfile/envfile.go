// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package envfile loads KEY=value settings from a .env file into the process
// environment so that configuration lookups see them. Variables already set
// in the environment win over the file.
package envfile

import (
	"fmt"
	"os"
	"sort"

	"github.com/joho/godotenv"
)

// Load reads the dotenv file at path and sets each variable that is not
// already present in the environment. It returns the names it set, sorted.
// A missing file is not an error; Load returns nil.
func Load(path string) ([]string, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}

	var set []string
	for k, v := range vars {
		if _, ok := os.LookupEnv(k); ok {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			return set, fmt.Errorf("setting %s: %w", k, err)
		}
		set = append(set, k)
	}
	sort.Strings(set)
	return set, nil
}
