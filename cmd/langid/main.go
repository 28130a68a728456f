// Copyright 2024 The langid Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command langid detects the natural language of text given on stdin or
// as command-line arguments.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/go-langid/langid"
)

func main() {
	confidences := flag.Bool("confidences", false, "print every candidate language's confidence instead of just the best match")
	low := flag.Bool("low_accuracy", false, "cap scoring at trigrams for faster, less precise detection")
	minDist := flag.Float64("min_relative_distance", 0, "minimum relative distance between the best and second-best match before committing to an answer")
	flag.Parse()

	b := langid.NewBuilderFromAllLanguages().MinimumRelativeDistance(*minDist)
	if *low {
		b = b.LowAccuracyMode()
	}
	detector, err := b.Build()
	if err != nil {
		log.Fatalf("langid: %v", err)
	}
	defer detector.UnloadModels()

	lines := flag.Args()
	if len(lines) == 0 {
		var err error
		lines, err = readLines(os.Stdin)
		if err != nil {
			log.Fatalf("langid: %v", err)
		}
	}

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if *confidences {
			cs, err := detector.Confidences(line)
			if err != nil {
				log.Fatalf("langid: %v", err)
			}
			for _, c := range cs {
				fmt.Printf("%s\t%s\t%.4f\n", line, c.Language, c.Confidence)
			}
			continue
		}
		lang, err := detector.Detect(line)
		if err != nil {
			log.Fatalf("langid: %v", err)
		}
		fmt.Printf("%s\t%s\n", line, lang)
	}
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
